package database

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/Bshaarr/Morox-platform/core"
)

// Open connects to the configured PostgreSQL database and waits for it to be
// reachable.
func Open(conf *core.Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", conf.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err = ping(db); err != nil {
		return nil, err
	}
	return db, nil
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id varchar PRIMARY KEY,
		name text NOT NULL,
		phone text NOT NULL UNIQUE,
		enrolled_courses jsonb NOT NULL DEFAULT '[]',
		certificates jsonb NOT NULL DEFAULT '[]',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id varchar PRIMARY KEY,
		title text NOT NULL,
		description text NOT NULL,
		detailed_description text NOT NULL DEFAULT '',
		category text NOT NULL,
		duration text NOT NULL,
		icon text NOT NULL,
		is_active boolean NOT NULL DEFAULT true,
		enrollment_count text NOT NULL DEFAULT '0',
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS certificates (
		id varchar PRIMARY KEY,
		student_id varchar NOT NULL REFERENCES students (id),
		course_id varchar NOT NULL REFERENCES courses (id),
		issue_date timestamptz NOT NULL DEFAULT now(),
		certificate_url text NOT NULL DEFAULT '',
		verification_code text NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS admins (
		id varchar PRIMARY KEY,
		username text NOT NULL UNIQUE,
		password_hash bytea NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS announcements (
		id varchar PRIMARY KEY,
		title text NOT NULL,
		content text NOT NULL,
		is_active boolean NOT NULL DEFAULT true,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
}

// EnsureSchema creates the tables when missing. It is idempotent and meant to
// run once at startup, before any request is served.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "ensuring schema")
		}
	}
	return nil
}
