package sqlxrepos

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Bshaarr/Morox-platform/core/announcement"
)

type announcementRepository struct {
	db *sqlx.DB
}

var _ announcement.Repository = (*announcementRepository)(nil) // interface compliance check

func NewAnnouncementRepository(db *sqlx.DB) *announcementRepository {
	return &announcementRepository{db: db}
}

func (repo *announcementRepository) CreateAnnouncement(ctx context.Context, ann announcement.Announcement) (announcement.Announcement, error) {
	ann.ID = uuid.New().String()

	var row announcementRow
	err := repo.db.QueryRowxContext(ctx,
		`INSERT INTO announcements (id, title, content, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING *`,
		ann.ID, ann.Title, ann.Content, ann.IsActive, ann.CreatedAt,
	).StructScan(&row)
	if err != nil {
		return announcement.Announcement{}, errors.Wrap(err, "inserting announcement")
	}
	return row.domain(), nil
}

func (repo *announcementRepository) GetAnnouncementByID(ctx context.Context, id string) (announcement.Announcement, error) {
	var row announcementRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM announcements WHERE id = $1`, id); err != nil {
		return announcement.Announcement{}, trapNoRows(err, announcement.ErrNotFound, "getting announcement")
	}
	return row.domain(), nil
}

func (repo *announcementRepository) QueryAllAnnouncements(ctx context.Context) ([]announcement.Announcement, error) {
	var rows []announcementRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM announcements ORDER BY created_at DESC`); err != nil {
		return nil, errors.Wrap(err, "querying announcements")
	}
	anns := make([]announcement.Announcement, 0, len(rows))
	for _, row := range rows {
		anns = append(anns, row.domain())
	}
	return anns, nil
}

func (repo *announcementRepository) UpdateAnnouncement(ctx context.Context, id string, up announcement.UpdateAnnouncement) (announcement.Announcement, error) {
	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	if up.Title != "" {
		args = append(args, up.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if up.Content != "" {
		args = append(args, up.Content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}
	if up.IsActive != nil {
		args = append(args, *up.IsActive)
		sets = append(sets, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if len(sets) == 0 {
		return repo.GetAnnouncementByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE announcements SET %s WHERE id = $%d RETURNING *`,
		strings.Join(sets, ", "), len(args),
	)

	var row announcementRow
	if err := repo.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if err == sql.ErrNoRows {
			return announcement.Announcement{}, announcement.ErrNotFound
		}
		return announcement.Announcement{}, errors.Wrap(err, "updating announcement")
	}
	return row.domain(), nil
}

func (repo *announcementRepository) DeleteAnnouncement(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting announcement")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "deleting announcement")
	}
	if n == 0 {
		return announcement.ErrNotFound
	}
	return nil
}
