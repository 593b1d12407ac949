// Package repository declares the storage contracts used by the services.
// Implementations live in the postgres, mongo and memory subpackages.
package repository

import (
	"context"
	"errors"

	"github.com/harentsoaR/contact-directory/internal/models"
)

var (
	// ErrNotFound is returned when no record matches a lookup or update.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate key")
)

// ContactRepository persists contacts.
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	// Update replaces every attribute of the contact with contact.ID.
	// Returns ErrNotFound when no row matches.
	Update(ctx context.Context, contact *models.Contact) error
	List(ctx context.Context) ([]models.Contact, error)
	// DeleteByPhone removes every contact with phone and reports how many
	// were removed.
	DeleteByPhone(ctx context.Context, phone string) (int64, error)
}

// UserRepository persists credentials.
type UserRepository interface {
	// Create returns ErrDuplicate when the phone is already registered.
	Create(ctx context.Context, user *models.User) error
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
}

// Store is the process-wide handle to a backing store. It is opened once at
// startup and closed on shutdown.
type Store interface {
	Contacts() ContactRepository
	Users() UserRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
