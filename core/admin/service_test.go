package admin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Bshaarr/Morox-platform/core/admin"
	inmemdb "github.com/Bshaarr/Morox-platform/storage/database/inmem"
)

func setup(t *testing.T) *admin.Service {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return admin.NewService(inmemdb.NewAdminRepository(db))
}

func Test_Service_Authenticate(t *testing.T) {
	svc := setup(t)
	ctx := context.Background()

	adm, err := svc.Create(ctx, admin.NewAdmin{Username: "boss", Password: "s3cr3tpwd"})
	assert.NoError(t, err)
	assert.NotEmpty(t, adm.ID)

	_, err = svc.Create(ctx, admin.NewAdmin{Username: "boss", Password: "otherpwd1"})
	assert.Equal(t, admin.ErrUsernameExists, err)

	got, err := svc.Authenticate(ctx, admin.Credentials{Username: "boss", Password: "s3cr3tpwd"})
	assert.NoError(t, err)
	assert.Equal(t, adm.ID, got.ID)

	_, err = svc.Authenticate(ctx, admin.Credentials{Username: "boss", Password: "wrong"})
	assert.Equal(t, admin.ErrNotFound, err)
	_, err = svc.Authenticate(ctx, admin.Credentials{Username: "nobody", Password: "s3cr3tpwd"})
	assert.Equal(t, admin.ErrNotFound, err)
}
