package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/Bshaarr/Morox-platform/core/admin"
)

type adminRepository struct {
	db *DB
}

var _ admin.Repository = (*adminRepository)(nil) // interface compliance check

func NewAdminRepository(db *DB) *adminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) CreateAdmin(_ context.Context, adm admin.Admin) (admin.Admin, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for _, existing := range repo.db.admins {
		if existing.Username == adm.Username {
			return admin.Admin{}, admin.ErrUsernameExists
		}
	}

	adm.ID = uuid.New().String()
	repo.db.admins[adm.ID] = &adm
	return adm, nil
}

func (repo *adminRepository) GetAdminByUsername(_ context.Context, username string) (admin.Admin, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, adm := range repo.db.admins {
		if adm.Username == username {
			return *adm, nil
		}
	}
	return admin.Admin{}, admin.ErrNotFound
}
