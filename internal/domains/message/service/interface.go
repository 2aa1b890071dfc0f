package service

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/message/model"
	"portfolio-backend/internal/shared/pagination"
)

type ServiceInterface interface {
	// Submit stores a public contact message and notifies the owner in the background.
	Submit(ctx context.Context, in *model.ContactInput) (*model.Receipt, error)

	Get(ctx context.Context, id uuid.UUID) (*model.Message, error)
	MarkRead(ctx context.Context, id uuid.UUID, read bool) (*model.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.MessageFilter, page pagination.Params) (*pagination.Page[*model.Message], error)
}
