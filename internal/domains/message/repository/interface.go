package repository

import (
	"context"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/message/model"
	"portfolio-backend/internal/shared/pagination"
)

type MessageRepository interface {
	Create(ctx context.Context, m *model.Message) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Message, error)
	// SetRead stores the flag and returns the message as written.
	SetRead(ctx context.Context, id uuid.UUID, read bool) (*model.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.MessageFilter, page pagination.Params) ([]*model.Message, int64, error)
}
