package sqlxrepos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/Bshaarr/Morox-platform/core/certificate"
)

type certificateRepository struct {
	db *sqlx.DB
}

var _ certificate.Repository = (*certificateRepository)(nil) // interface compliance check

func NewCertificateRepository(db *sqlx.DB) *certificateRepository {
	return &certificateRepository{db: db}
}

func (repo *certificateRepository) CreateCertificate(ctx context.Context, cert certificate.Certificate) (certificate.Certificate, error) {
	cert.ID = uuid.New().String()

	var row certificateRow
	err := repo.db.QueryRowxContext(ctx,
		`INSERT INTO certificates (id, student_id, course_id, issue_date, certificate_url, verification_code)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING *`,
		cert.ID, cert.StudentID, cert.CourseID, cert.IssueDate, cert.CertificateURL, cert.VerificationCode,
	).StructScan(&row)
	if err != nil {
		return certificate.Certificate{}, trapUniqueViolation(err, certificate.ErrCodeExists, "inserting certificate")
	}
	return row.domain(), nil
}

func (repo *certificateRepository) QueryAllCertificates(ctx context.Context) ([]certificate.Certificate, error) {
	var rows []certificateRow
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM certificates ORDER BY issue_date DESC`); err != nil {
		return nil, errors.Wrap(err, "querying certificates")
	}
	certs := make([]certificate.Certificate, 0, len(rows))
	for _, row := range rows {
		certs = append(certs, row.domain())
	}
	return certs, nil
}

func (repo *certificateRepository) GetCertificateByCode(ctx context.Context, code string) (certificate.Certificate, error) {
	var row certificateRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM certificates WHERE verification_code = $1`, code); err != nil {
		return certificate.Certificate{}, trapNoRows(err, certificate.ErrNotFound, "getting certificate by code")
	}
	return row.domain(), nil
}

func (repo *certificateRepository) DeleteCertificate(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting certificate")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "deleting certificate")
	}
	if n == 0 {
		return certificate.ErrNotFound
	}
	return nil
}
