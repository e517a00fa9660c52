package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/hostelworks/hostel-service/internal/dtos"
	"github.com/hostelworks/hostel-service/internal/models"
	"github.com/hostelworks/hostel-service/internal/repositories"
)

// BoardService covers the notice board: announcements and the weekly mess
// menu. Pure CRUD, no invariants.
type BoardService struct {
	announcementRepo repositories.AnnouncementRepository
	menuRepo         repositories.MenuRepository
}

func NewBoardService(announcementRepo repositories.AnnouncementRepository, menuRepo repositories.MenuRepository) *BoardService {
	return &BoardService{announcementRepo: announcementRepo, menuRepo: menuRepo}
}

func (s *BoardService) PostAnnouncement(ctx context.Context, req dtos.CreateAnnouncementRequest) (*models.Announcement, error) {
	a := &models.Announcement{
		ID:    uuid.New(),
		Title: req.Title,
		Body:  req.Body,
	}
	if err := s.announcementRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *BoardService) ListAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	return s.announcementRepo.ListAll(ctx)
}

func (s *BoardService) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	return s.announcementRepo.Delete(ctx, id)
}

func (s *BoardService) UpsertMenuDay(ctx context.Context, req dtos.UpsertMenuDayRequest) (*models.MenuDay, error) {
	m := &models.MenuDay{
		Weekday:   req.Weekday,
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		Dinner:    req.Dinner,
	}
	if err := s.menuRepo.Upsert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *BoardService) WeeklyMenu(ctx context.Context) ([]*models.MenuDay, error) {
	return s.menuRepo.ListWeek(ctx)
}
