package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/certificate/model"
	"portfolio-backend/internal/domains/certificate/repository"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
)

type certificateService struct {
	repo   repository.CertificateRepository
	assets storage.Assets
	now    func() time.Time
}

func NewCertificateService(repo repository.CertificateRepository, assets storage.Assets) ServiceInterface {
	return &certificateService{repo: repo, assets: assets, now: time.Now}
}

// =====================================================
// ADMIN OPERATIONS
// =====================================================

func (s *certificateService) Create(
	ctx context.Context,
	actorID uuid.UUID,
	in *model.CertificateInput,
	image *storage.File,
) (*model.Certificate, error) {
	if err := in.ValidateCreate(); err != nil {
		return nil, apperror.Validation(err)
	}

	cert := in.NewCertificate(actorID, utils.Now())

	if image != nil {
		ref, err := s.assets.Store(ctx, image, model.AssetCategory)
		if err != nil {
			return nil, err
		}
		cert.ImageURL = ref
	}

	if err := s.repo.Create(ctx, cert); err != nil {
		if image != nil {
			s.assets.Discard(ctx, cert.ImageURL)
		}
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}
	return cert.Annotate(s.now()), nil
}

func (s *certificateService) Get(ctx context.Context, id uuid.UUID) (*model.Certificate, error) {
	cert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return cert.Annotate(s.now()), nil
}

func (s *certificateService) Update(
	ctx context.Context,
	id uuid.UUID,
	in *model.CertificateInput,
	image *storage.File,
) (*model.Certificate, bool, error) {
	if err := in.ValidateUpdate(); err != nil {
		return nil, false, apperror.Validation(err)
	}

	cert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, mapRepoError(err)
	}
	previousImage := cert.ImageURL

	changed := in.Apply(cert)

	var newImage string
	if image != nil {
		if newImage, err = s.assets.Store(ctx, image, model.AssetCategory); err != nil {
			return nil, false, err
		}
		cert.ImageURL = newImage
		changed = true
	}
	if !changed {
		return cert.Annotate(s.now()), false, nil
	}

	cert.UpdatedAt = utils.NextTimestamp(cert.UpdatedAt)
	if err := s.repo.Update(ctx, cert); err != nil {
		if newImage != "" {
			s.assets.Discard(ctx, newImage)
		}
		return nil, false, mapRepoError(err)
	}

	storage.ReleaseReplaced(ctx, s.assets, previousImage, cert.ImageURL)
	return cert.Annotate(s.now()), true, nil
}

func (s *certificateService) Delete(ctx context.Context, id uuid.UUID) error {
	cert, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	if cert.ImageURL != "" {
		s.assets.Discard(ctx, cert.ImageURL)
	}
	return nil
}

func (s *certificateService) List(
	ctx context.Context,
	filter model.CertificateFilter,
	page pagination.Params,
) (*pagination.Page[*model.Certificate], error) {
	certs, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}

	now := s.now()
	for _, c := range certs {
		c.Annotate(now)
	}
	return pagination.NewPage(certs, total, page), nil
}

func (s *certificateService) Stats(ctx context.Context) (*model.Stats, error) {
	stats, err := s.repo.Stats(ctx, s.now())
	if err != nil {
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}
	if stats.Categories == nil {
		stats.Categories = []model.NameCount{}
	}
	if stats.Levels == nil {
		stats.Levels = []model.NameCount{}
	}
	return stats, nil
}

// =====================================================
// PUBLIC OPERATIONS
// =====================================================

func (s *certificateService) GetPublic(ctx context.Context, id uuid.UUID) (*model.PublicCertificate, error) {
	cert, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return cert.ToPublic(s.assets.PublicURL), nil
}

func (s *certificateService) ListPublic(
	ctx context.Context,
	filter model.CertificateFilter,
	page pagination.Params,
) (*pagination.Page[*model.PublicCertificate], error) {
	result, err := s.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	return pagination.Map(result, func(c *model.Certificate) *model.PublicCertificate {
		return c.ToPublic(s.assets.PublicURL)
	}), nil
}

func mapRepoError(err error) error {
	if errors.Is(err, model.ErrCertificateNotFound) {
		return model.NewCertificateNotFoundError()
	}
	return apperror.Upstream(apperror.CodeInternal, err)
}
