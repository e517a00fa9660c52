package controllers

import (
	"net/http"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthResponse{Status: "ok"})
}
