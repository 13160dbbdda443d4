package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Bshaarr/Morox-platform/core/certificate"
)

type certificateRepository struct {
	db *DB
}

var _ certificate.Repository = (*certificateRepository)(nil) // interface compliance check

func NewCertificateRepository(db *DB) *certificateRepository {
	return &certificateRepository{db: db}
}

func (repo *certificateRepository) CreateCertificate(_ context.Context, cert certificate.Certificate) (certificate.Certificate, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	// mimics the relational backend's unique constraint on verification_code
	for _, existing := range repo.db.certificates {
		if existing.VerificationCode == cert.VerificationCode {
			return certificate.Certificate{}, certificate.ErrCodeExists
		}
	}

	cert.ID = uuid.New().String()
	repo.db.certificates[cert.ID] = &cert
	return cert, nil
}

func (repo *certificateRepository) QueryAllCertificates(_ context.Context) ([]certificate.Certificate, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	certs := make([]certificate.Certificate, 0, len(repo.db.certificates))
	for _, cert := range repo.db.certificates {
		certs = append(certs, *cert)
	}
	sort.Slice(certs, func(i, j int) bool { return certs[i].IssueDate.After(certs[j].IssueDate) })
	return certs, nil
}

func (repo *certificateRepository) GetCertificateByCode(_ context.Context, code string) (certificate.Certificate, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, cert := range repo.db.certificates {
		if cert.VerificationCode == code {
			return *cert, nil
		}
	}
	return certificate.Certificate{}, certificate.ErrNotFound
}

func (repo *certificateRepository) DeleteCertificate(_ context.Context, id string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	if _, ok := repo.db.certificates[id]; !ok {
		return certificate.ErrNotFound
	}
	delete(repo.db.certificates, id)
	return nil
}
