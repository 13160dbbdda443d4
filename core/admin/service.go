package admin

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound       = errors.New("admin not found")
	ErrUsernameExists = errors.New("an admin with this username already exists")
)

type (
	Repository interface {
		CreateAdmin(ctx context.Context, adm Admin) (Admin, error)
		GetAdminByUsername(ctx context.Context, username string) (Admin, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, na NewAdmin) (Admin, error) {
	adm := Admin{
		Username:  na.Username,
		CreatedAt: time.Now().UTC(),
	}
	if err := adm.SetPassword(na.Password); err != nil {
		return Admin{}, err
	}
	return svc.repo.CreateAdmin(ctx, adm)
}

// Authenticate returns the admin matching the credentials, or ErrNotFound when
// either the username is unknown or the password does not match.
func (svc *Service) Authenticate(ctx context.Context, creds Credentials) (Admin, error) {
	adm, err := svc.repo.GetAdminByUsername(ctx, creds.Username)
	if err != nil {
		return Admin{}, err
	}
	if err := adm.CheckPassword(creds.Password); err != nil {
		return Admin{}, ErrNotFound
	}
	return adm, nil
}
