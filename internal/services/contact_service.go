package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harentsoaR/contact-directory/internal/apperr"
	"github.com/harentsoaR/contact-directory/internal/dto"
	"github.com/harentsoaR/contact-directory/internal/models"
	"github.com/harentsoaR/contact-directory/internal/repository"
)

// ContactService validates and persists contacts.
type ContactService interface {
	Create(ctx context.Context, req *dto.ContactRequest) (string, error)
	Update(ctx context.Context, id string, req *dto.ContactRequest) error
	List(ctx context.Context) ([]models.Contact, error)
	// Delete removes every contact with phone and reports how many went.
	Delete(ctx context.Context, phone string) (int64, error)
}

type contactService struct {
	repo     repository.ContactRepository
	validate *validator.Validate
	logger   *zap.Logger
	newID    func() string
}

func NewContactService(repo repository.ContactRepository, validate *validator.Validate, logger *zap.Logger) ContactService {
	return &contactService{
		repo:     repo,
		validate: validate,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

func (s *contactService) Create(ctx context.Context, req *dto.ContactRequest) (string, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return "", apperr.Validation(MsgMissingFields)
	}

	contact := req.ToContact(s.newID())
	if err := s.repo.Create(ctx, contact); err != nil {
		s.logger.Error("add contact failed", zap.Error(err))
		return "", apperr.Storage(MsgAddContactFailed, err)
	}

	return contact.ID, nil
}

func (s *contactService) Update(ctx context.Context, id string, req *dto.ContactRequest) error {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return apperr.Validation(MsgMissingFields)
	}
	// IDs are always UUIDs; anything else cannot match a row.
	if _, err := uuid.Parse(id); err != nil {
		return apperr.NotFound(MsgContactNotFound)
	}

	if err := s.repo.Update(ctx, req.ToContact(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(MsgContactNotFound)
		}
		s.logger.Error("update contact failed", zap.String("id", id), zap.Error(err))
		return apperr.Storage(MsgUpdateContactFailed, err)
	}
	return nil
}

func (s *contactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("list contacts failed", zap.Error(err))
		return nil, apperr.Storage(MsgListContactsFailed, err)
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts, nil
}

func (s *contactService) Delete(ctx context.Context, phone string) (int64, error) {
	n, err := s.repo.DeleteByPhone(ctx, phone)
	if err != nil {
		s.logger.Error("delete contact failed", zap.Error(err))
		return 0, apperr.Storage(MsgDeleteContactFailed, err)
	}
	if n == 0 {
		return 0, apperr.NotFound(MsgContactNotFound)
	}
	if n > 1 {
		s.logger.Info("deleted several contacts sharing a phone", zap.Int64("count", n))
	}
	return n, nil
}
