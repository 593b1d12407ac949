package services

import (
	"context"

	"github.com/harentsoaR/contact-directory/internal/models"
	"github.com/harentsoaR/contact-directory/internal/repository"
)

// ── Mock ContactRepository ──

type mockContactRepo struct {
	contacts []models.Contact
	err      error // returned by every call when set
}

func newMockContactRepo() *mockContactRepo {
	return &mockContactRepo{}
}

func (m *mockContactRepo) Create(_ context.Context, c *models.Contact) error {
	if m.err != nil {
		return m.err
	}
	m.contacts = append(m.contacts, *c)
	return nil
}

func (m *mockContactRepo) Update(_ context.Context, c *models.Contact) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.contacts {
		if m.contacts[i].ID == c.ID {
			m.contacts[i] = *c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockContactRepo) List(_ context.Context) ([]models.Contact, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.contacts, nil
}

func (m *mockContactRepo) DeleteByPhone(_ context.Context, phone string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var kept []models.Contact
	var n int64
	for _, c := range m.contacts {
		if c.Phone == phone {
			n++
			continue
		}
		kept = append(kept, c)
	}
	m.contacts = kept
	return n, nil
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users     map[string]*models.User
	getErr    error
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, ok := m.users[u.Phone]; ok {
		return repository.ErrDuplicate
	}
	m.users[u.Phone] = u
	return nil
}

func (m *mockUserRepo) GetByPhone(_ context.Context, phone string) (*models.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if u, ok := m.users[phone]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}
