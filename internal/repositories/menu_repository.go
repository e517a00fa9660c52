package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/hostelworks/hostel-service/internal/models"
)

type MenuRepository interface {
	Upsert(ctx context.Context, m *models.MenuDay) error
	ListWeek(ctx context.Context) ([]*models.MenuDay, error)
}

type menuRepo struct{ db DB }

func NewMenuRepository(db DB) MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) Upsert(ctx context.Context, m *models.MenuDay) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_days (id, weekday, breakfast, lunch, dinner, updated_at)
		VALUES ($1,$2,$3,$4,$5, NOW())
		ON CONFLICT (weekday) DO UPDATE
		SET breakfast=EXCLUDED.breakfast, lunch=EXCLUDED.lunch,
		    dinner=EXCLUDED.dinner, updated_at=NOW()
	`, m.ID, m.Weekday, m.Breakfast, m.Lunch, m.Dinner)
	return err
}

func (r *menuRepo) ListWeek(ctx context.Context) ([]*models.MenuDay, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id,weekday,breakfast,lunch,dinner,updated_at FROM menu_days
		ORDER BY array_position(ARRAY['monday','tuesday','wednesday','thursday','friday','saturday','sunday'], weekday)
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.MenuDay
	for rows.Next() {
		var m models.MenuDay
		if err := rows.Scan(&m.ID, &m.Weekday, &m.Breakfast, &m.Lunch, &m.Dinner, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}
