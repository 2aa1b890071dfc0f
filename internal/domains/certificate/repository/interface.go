package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/certificate/model"
	"portfolio-backend/internal/shared/pagination"
)

type CertificateRepository interface {
	Create(ctx context.Context, c *model.Certificate) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Certificate, error)
	Update(ctx context.Context, c *model.Certificate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.CertificateFilter, page pagination.Params) ([]*model.Certificate, int64, error)

	// Stats counts by status and groups by category and level. Expiring soon means
	// active with an expiry between now and now + 30 days.
	Stats(ctx context.Context, now time.Time) (*model.Stats, error)
}
