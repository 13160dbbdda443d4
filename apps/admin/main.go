package main

import (
	"context"
	"log"
	"os"

	"github.com/Bshaarr/Morox-platform/core"
	"github.com/Bshaarr/Morox-platform/core/admin"
	"github.com/Bshaarr/Morox-platform/core/course"
	"github.com/Bshaarr/Morox-platform/storage/database"
	inmemdb "github.com/Bshaarr/Morox-platform/storage/database/inmem"
	sqlxrepos "github.com/Bshaarr/Morox-platform/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up repos; the in-memory fallback is only useful for dry runs
	var adminRepo admin.Repository
	var courseRepo course.Repository
	if conf.Database.URL == "" {
		db, err := inmemdb.Open()
		errAndDie(err)
		adminRepo = inmemdb.NewAdminRepository(db)
		courseRepo = inmemdb.NewCourseRepository(db)
	} else {
		db, err := database.Open(conf)
		errAndDie(err)
		defer db.Close()
		errAndDie(database.EnsureSchema(context.Background(), db))
		adminRepo = sqlxrepos.NewAdminRepository(db)
		courseRepo = sqlxrepos.NewCourseRepository(db)
	}

	// start CLI
	cli := commandLine{
		adminSvc:  admin.NewService(adminRepo),
		courseSvc: course.NewService(courseRepo),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
