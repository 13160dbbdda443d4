package main

import (
	"context"
	"testing"

	"github.com/Bshaarr/Morox-platform/core/admin"
	"github.com/Bshaarr/Morox-platform/core/course"
	inmemdb "github.com/Bshaarr/Morox-platform/storage/database/inmem"
)

func setup(t *testing.T) (*commandLine, *admin.Service, *course.Service) {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	adminSvc := admin.NewService(inmemdb.NewAdminRepository(db))
	courseSvc := course.NewService(inmemdb.NewCourseRepository(db))
	return &commandLine{adminSvc: adminSvc, courseSvc: courseSvc}, adminSvc, courseSvc
}

type cliTest struct {
	name    string
	args    []string // without program name
	pwd     string
	wantErr error
}

func Test_commandLine_addAdmin(t *testing.T) {
	cli, adminSvc, _ := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no username", args: []string{"addadmin"}, wantErr: errHelp},
		{name: "empty password", args: []string{"addadmin", "-username", "boss"}, wantErr: errHelp},
		{name: "ok", args: []string{"addadmin", "-username", "boss"}, pwd: "s3cr3tpwd"},
		{name: "duplicate username", args: []string{"addadmin", "-username", "boss"}, pwd: "s3cr3tpwd", wantErr: admin.ErrUsernameExists},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			readPasswordFunc = func(fd int) ([]byte, error) { return []byte(tt.pwd), nil }

			err := cli.run(args)
			if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	// the created admin can authenticate
	if _, err := adminSvc.Authenticate(context.Background(), admin.Credentials{Username: "boss", Password: "s3cr3tpwd"}); err != nil {
		t.Errorf("Authenticate() error = %v", err)
	}
}

func Test_commandLine_seed(t *testing.T) {
	cli, _, courseSvc := setup(t)

	for i := 0; i < 2; i++ { // seeding twice is a no-op
		if err := cli.run([]string{"admin", "seed"}); err != nil {
			t.Fatalf("cli.run() error = %v", err)
		}
		courses, err := courseSvc.QueryAll(context.Background())
		if err != nil {
			t.Fatalf("QueryAll() error = %v", err)
		}
		if len(courses) != len(course.DefaultCourses) {
			t.Errorf("got %d courses; want %d", len(courses), len(course.DefaultCourses))
		}
	}
}
