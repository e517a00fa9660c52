package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/hostelworks/hostel-service/internal/models"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) error
	ListAll(ctx context.Context) ([]*models.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type announcementRepo struct{ db DB }

func NewAnnouncementRepository(db DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *models.Announcement) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO announcements (id, title, body, created_at)
		VALUES ($1,$2,$3, NOW())
	`, a.ID, a.Title, a.Body)
	return err
}

func (r *announcementRepo) ListAll(ctx context.Context) ([]*models.Announcement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id,title,body,created_at FROM announcements ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *announcementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
