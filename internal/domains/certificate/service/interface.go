package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/certificate/model"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/pagination"
)

// ServiceInterface returns certificates annotated with their expiry projection.
type ServiceInterface interface {
	Create(ctx context.Context, actorID uuid.UUID, in *model.CertificateInput, image *storage.File) (*model.Certificate, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Certificate, error)
	Update(ctx context.Context, id uuid.UUID, in *model.CertificateInput, image *storage.File) (*model.Certificate, bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.CertificateFilter, page pagination.Params) (*pagination.Page[*model.Certificate], error)
	Stats(ctx context.Context) (*model.Stats, error)

	GetPublic(ctx context.Context, id uuid.UUID) (*model.PublicCertificate, error)
	ListPublic(ctx context.Context, filter model.CertificateFilter, page pagination.Params) (*pagination.Page[*model.PublicCertificate], error)
}
