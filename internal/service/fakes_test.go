package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/inventory-service/internal/domain"
)

type fakeUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByLogin(_ context.Context, login string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == login || user.Email == login {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

type fakeCustomerRepo struct {
	seq       int
	customers map[string]*domain.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*domain.Customer{}}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	f.seq++
	customer.ID = fmt.Sprintf("cust-%d", f.seq)
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	copied := *customer
	f.customers[customer.ID] = &copied
	return nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	if _, ok := f.customers[customer.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *customer
	f.customers[customer.ID] = &copied
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *customer
	return &copied, nil
}

func (f *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, customer := range f.customers {
		if customer.Email == email {
			copied := *customer
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeSessionRepo struct {
	seq      int
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*domain.Session{}}
}

func (f *fakeSessionRepo) Create(_ context.Context, customerID, token string, ttl time.Duration) (*domain.Session, error) {
	f.seq++
	session := &domain.Session{
		ID:         fmt.Sprintf("sess-%d", f.seq),
		CustomerID: customerID,
		Token:      token,
		CreatedAt:  time.Now(),
		ExpiresAt:  time.Now().Add(ttl),
	}
	f.sessions[token] = session
	return session, nil
}

func (f *fakeSessionRepo) IsValid(_ context.Context, token string) (bool, error) {
	session, ok := f.sessions[token]
	return ok && session.ExpiresAt.After(time.Now()), nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

type fakeDenylist struct {
	entries map[string]bool
	err     error
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{entries: map[string]bool{}}
}

func (f *fakeDenylist) Add(_ context.Context, token string, _ time.Duration) error {
	if f.err != nil {
		return f.err
	}
	f.entries[token] = true
	return nil
}

func (f *fakeDenylist) Contains(_ context.Context, token string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.entries[token], nil
}

type fakeFeatureRepo struct {
	flags []domain.FeatureFlag
	pages []domain.PageDescriptor
	err   error
}

func (f *fakeFeatureRepo) ListEnabledFlags(_ context.Context) ([]domain.FeatureFlag, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.flags, nil
}

func (f *fakeFeatureRepo) ListEnabledPages(_ context.Context) ([]domain.PageDescriptor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}
