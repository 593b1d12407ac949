// Package memory is an in-process Store for local runs and tests.
package memory

import (
	"context"
	"sync"

	"github.com/harentsoaR/contact-directory/internal/models"
	"github.com/harentsoaR/contact-directory/internal/repository"
)

type Store struct {
	mu       sync.RWMutex
	contacts []models.Contact
	users    map[string]models.User
}

func NewStore() *Store {
	return &Store{users: make(map[string]models.User)}
}

func (s *Store) Contacts() repository.ContactRepository { return contactRepo{s} }

func (s *Store) Users() repository.UserRepository { return userRepo{s} }

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close(context.Context) error { return nil }

type contactRepo struct{ s *Store }

func (r contactRepo) Create(_ context.Context, contact *models.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.contacts {
		if c.ID == contact.ID {
			return repository.ErrDuplicate
		}
	}
	r.s.contacts = append(r.s.contacts, *contact)
	return nil
}

func (r contactRepo) Update(_ context.Context, contact *models.Contact) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, c := range r.s.contacts {
		if c.ID == contact.ID {
			r.s.contacts[i] = *contact
			return nil
		}
	}
	return repository.ErrNotFound
}

// List returns contacts in insertion order.
func (r contactRepo) List(_ context.Context) ([]models.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Contact, len(r.s.contacts))
	copy(out, r.s.contacts)
	return out, nil
}

func (r contactRepo) DeleteByPhone(_ context.Context, phone string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	kept := r.s.contacts[:0]
	var removed int64
	for _, c := range r.s.contacts {
		if c.Phone == phone {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	r.s.contacts = kept
	return removed, nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.Phone]; ok {
		return repository.ErrDuplicate
	}
	r.s.users[user.Phone] = *user
	return nil
}

func (r userRepo) GetByPhone(_ context.Context, phone string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[phone]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}
