package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/message/model"
	"portfolio-backend/internal/domains/message/repository"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/internal/shared/apperror"
	"portfolio-backend/internal/shared/pagination"
	"portfolio-backend/internal/shared/utils"
)

// Notifier receives each stored submission. Implementations must not block.
type Notifier interface {
	NotifyContact(c email.ContactNotification)
}

type messageService struct {
	repo     repository.MessageRepository
	notifier Notifier
}

// NewMessageService accepts a nil notifier.
func NewMessageService(repo repository.MessageRepository, notifier Notifier) ServiceInterface {
	return &messageService{repo: repo, notifier: notifier}
}

func (s *messageService) Submit(ctx context.Context, in *model.ContactInput) (*model.Receipt, error) {
	if err := in.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	msg := in.NewMessage(utils.Now())
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}

	if s.notifier != nil {
		s.notifier.NotifyContact(email.ContactNotification{
			Name:       msg.Name,
			Email:      msg.Email,
			Subject:    msg.Subject,
			Message:    msg.Message,
			Platform:   msg.Platform,
			ReceivedAt: msg.CreatedAt,
		})
	}
	return &model.Receipt{ID: msg.ID, CreatedAt: msg.CreatedAt}, nil
}

func (s *messageService) Get(ctx context.Context, id uuid.UUID) (*model.Message, error) {
	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return msg, nil
}

func (s *messageService) MarkRead(ctx context.Context, id uuid.UUID, read bool) (*model.Message, error) {
	msg, err := s.repo.SetRead(ctx, id, read)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return msg, nil
}

func (s *messageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func (s *messageService) List(
	ctx context.Context,
	filter model.MessageFilter,
	page pagination.Params,
) (*pagination.Page[*model.Message], error) {
	messages, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, apperror.Upstream(apperror.CodeInternal, err)
	}
	return pagination.NewPage(messages, total, page), nil
}

func mapRepoError(err error) error {
	if errors.Is(err, model.ErrMessageNotFound) {
		return model.NewMessageNotFoundError()
	}
	return apperror.Upstream(apperror.CodeInternal, err)
}
