package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/config"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/events"
	"github.com/spec-kit/inventory-service/internal/repository"
)

// AuthService coordinates login, registration, logout and identity queries
// for both audiences.
type AuthService struct {
	users       repository.UserRepository
	customers   repository.CustomerRepository
	sessions    repository.SessionRepository
	denylist    auth.TokenDenylist
	dispatcher  events.Dispatcher
	tokenMgr    *auth.TokenManager
	bcryptCost  int
	customerTTL time.Duration
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	CustomerRepo repository.CustomerRepository
	SessionRepo  repository.SessionRepository
	Denylist     auth.TokenDenylist
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:       deps.UserRepo,
		customers:   deps.CustomerRepo,
		sessions:    deps.SessionRepo,
		denylist:    deps.Denylist,
		dispatcher:  deps.Dispatcher,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.StaffTokenTTL(), cfg.Auth.CustomerTokenTTL()),
		bcryptCost:  cfg.Auth.BcryptCost,
		customerTTL: cfg.Auth.CustomerTokenTTL(),
	}
}

// LoginStaff authenticates a staff user by username or email and returns a
// role-bearing token. Bad login and bad password report the same message.
func (s *AuthService) LoginStaff(ctx context.Context, login, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, errors.New("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if !user.Active {
		return nil, "", time.Time{}, errors.New("invalid credentials")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, errors.New("invalid credentials")
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, domain.AudienceStaff, &user.Role)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventStaffLogin, domain.AudienceStaff, user.ID,
		events.StaffLoginPayload{Username: user.Username, Role: user.Role})
	return user, token, exp, nil
}

// LogoutStaff denylists the token for the remainder of its embedded life.
// An unverifiable token is already dead, so logout is a no-op for it.
func (s *AuthService) LogoutStaff(ctx context.Context, token string) error {
	claims, err := s.tokenMgr.Verify(token, domain.AudienceStaff)
	if err != nil {
		return nil
	}

	remaining := s.customerTTL
	if claims.ExpiresAt != nil {
		remaining = time.Until(claims.ExpiresAt.Time)
	}
	if err := s.denylist.Add(ctx, token, remaining); err != nil {
		return err
	}

	s.publish(ctx, events.EventStaffLogout, domain.AudienceStaff, claims.SubjectID,
		events.SessionRevokedPayload{Audience: domain.AudienceStaff})
	return nil
}

// WhoAmIStaff resolves the current staff principal by re-reading the user
// row, so deactivation and profile changes show up without re-issuing the
// token. Denylist and active checks run on every resolution.
func (s *AuthService) WhoAmIStaff(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokenMgr.Verify(token, domain.AudienceStaff)
	if err != nil {
		return nil, err
	}

	denied, err := s.denylist.Contains(ctx, token)
	if err != nil {
		return nil, err
	}
	if denied {
		return nil, auth.ErrSessionRevoked
	}

	user, err := s.users.GetByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrSessionRevoked
		}
		return nil, err
	}
	if !user.Active {
		return nil, auth.ErrSessionRevoked
	}
	return user, nil
}

// RegisterCustomer creates a storefront account, issues a customer token and
// persists the backing session row.
func (s *AuthService) RegisterCustomer(ctx context.Context, fullName, email, password string) (*domain.Customer, string, time.Time, error) {
	if _, err := s.customers.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, errors.New("email already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	customer := &domain.Customer{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Active:       true,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.issueCustomerSession(ctx, customer.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventCustomerRegistered, domain.AudienceCustomer, customer.ID,
		events.CustomerRegisteredPayload{Email: customer.Email})
	return customer, token, exp, nil
}

// LoginCustomer authenticates a customer. Each login creates a fresh session
// row; earlier sessions stay valid.
func (s *AuthService) LoginCustomer(ctx context.Context, email, password string) (*domain.Customer, string, time.Time, error) {
	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, errors.New("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if !customer.Active {
		return nil, "", time.Time{}, errors.New("invalid credentials")
	}
	if err := auth.ComparePassword(customer.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, errors.New("invalid credentials")
	}

	token, exp, err := s.issueCustomerSession(ctx, customer.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.EventCustomerLogin, domain.AudienceCustomer, customer.ID, nil)
	return customer, token, exp, nil
}

// LogoutCustomer deletes the matching session row. Idempotent.
func (s *AuthService) LogoutCustomer(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil {
		return err
	}
	s.publish(ctx, events.EventSessionRevoked, domain.AudienceCustomer, "",
		events.SessionRevokedPayload{Audience: domain.AudienceCustomer})
	return nil
}

// WhoAmICustomer resolves the current customer principal. The token is valid
// only while its session row exists and has not expired; deleting the row
// revokes the token regardless of its embedded expiry.
func (s *AuthService) WhoAmICustomer(ctx context.Context, token string) (*domain.Customer, error) {
	claims, err := s.tokenMgr.Verify(token, domain.AudienceCustomer)
	if err != nil {
		return nil, err
	}

	valid, err := s.sessions.IsValid(ctx, token)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, auth.ErrSessionRevoked
	}

	customer, err := s.customers.GetByID(ctx, claims.SubjectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrSessionRevoked
		}
		return nil, err
	}
	if !customer.Active {
		return nil, auth.ErrSessionRevoked
	}
	return customer, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) issueCustomerSession(ctx context.Context, customerID string) (string, time.Time, error) {
	token, exp, err := s.tokenMgr.Issue(customerID, domain.AudienceCustomer, nil)
	if err != nil {
		return "", time.Time{}, err
	}
	if _, err := s.sessions.Create(ctx, customerID, token, s.customerTTL); err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, audience domain.Audience, subjectID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     events.Actor{Audience: audience, SubjectID: subjectID},
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
