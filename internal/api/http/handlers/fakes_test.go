package handlers_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/inventory-service/internal/domain"
)

type memUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*domain.User{}}
}

func (f *memUserRepo) Create(_ context.Context, user *domain.User) error {
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *memUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *memUserRepo) GetByLogin(_ context.Context, login string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == login || user.Email == login {
			copied := *user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *memUserRepo) List(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

type memCustomerRepo struct {
	seq       int
	customers map[string]*domain.Customer
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{customers: map[string]*domain.Customer{}}
}

func (f *memCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	f.seq++
	customer.ID = fmt.Sprintf("cust-%d", f.seq)
	copied := *customer
	f.customers[customer.ID] = &copied
	return nil
}

func (f *memCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	if _, ok := f.customers[customer.ID]; !ok {
		return pgx.ErrNoRows
	}
	copied := *customer
	f.customers[customer.ID] = &copied
	return nil
}

func (f *memCustomerRepo) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *customer
	return &copied, nil
}

func (f *memCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	for _, customer := range f.customers {
		if customer.Email == email {
			copied := *customer
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memSessionRepo struct {
	sessions map[string]*domain.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]*domain.Session{}}
}

func (f *memSessionRepo) Create(_ context.Context, customerID, token string, ttl time.Duration) (*domain.Session, error) {
	session := &domain.Session{
		ID:         fmt.Sprintf("sess-%d", len(f.sessions)+1),
		CustomerID: customerID,
		Token:      token,
		CreatedAt:  time.Now(),
		ExpiresAt:  time.Now().Add(ttl),
	}
	f.sessions[token] = session
	return session, nil
}

func (f *memSessionRepo) IsValid(_ context.Context, token string) (bool, error) {
	session, ok := f.sessions[token]
	return ok && session.ExpiresAt.After(time.Now()), nil
}

func (f *memSessionRepo) Revoke(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

type memDenylist struct {
	entries map[string]bool
}

func newMemDenylist() *memDenylist {
	return &memDenylist{entries: map[string]bool{}}
}

func (f *memDenylist) Add(_ context.Context, token string, _ time.Duration) error {
	f.entries[token] = true
	return nil
}

func (f *memDenylist) Contains(_ context.Context, token string) (bool, error) {
	return f.entries[token], nil
}
