package sqlxrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Bshaarr/Morox-platform/core/admin"
)

type adminRepository struct {
	db *sqlx.DB
}

var _ admin.Repository = (*adminRepository)(nil) // interface compliance check

func NewAdminRepository(db *sqlx.DB) *adminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) CreateAdmin(ctx context.Context, adm admin.Admin) (admin.Admin, error) {
	adm.ID = uuid.New().String()

	var row adminRow
	err := repo.db.QueryRowxContext(ctx,
		`INSERT INTO admins (id, username, password_hash, created_at)
		 VALUES ($1, $2, $3, $4) RETURNING *`,
		adm.ID, adm.Username, adm.PasswordHash, adm.CreatedAt,
	).StructScan(&row)
	if err != nil {
		return admin.Admin{}, trapUniqueViolation(err, admin.ErrUsernameExists, "inserting admin")
	}
	return row.domain(), nil
}

func (repo *adminRepository) GetAdminByUsername(ctx context.Context, username string) (admin.Admin, error) {
	var row adminRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM admins WHERE username = $1`, username); err != nil {
		return admin.Admin{}, trapNoRows(err, admin.ErrNotFound, "getting admin by username")
	}
	return row.domain(), nil
}
