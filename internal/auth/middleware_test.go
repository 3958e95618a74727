package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/inventory-service/internal/api/http"
	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/observability"
)

const testCookieName = "auth_token"

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.users[user.ID] = user
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

type fakeDenylist struct {
	entries map[string]bool
	err     error
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

type guardFixture struct {
	guard    *auth.AccessGuard
	tokens   *auth.TokenManager
	users    *fakeUserRepo
	denylist *fakeDenylist
}

func newGuardFixture(t *testing.T) *guardFixture {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret", time.Hour, time.Hour)
	users := &fakeUserRepo{users: map[string]*domain.User{
		"admin-1": {ID: "admin-1", Name: "Ada Admin", Username: "ada", Role: domain.StaffRoleAdmin, Active: true},
		"staff-1": {ID: "staff-1", Name: "Sam Staff", Username: "sam", Role: domain.StaffRoleStaff, Active: true},
		"gone-1":  {ID: "gone-1", Name: "Gone", Username: "gone", Role: domain.StaffRoleStaff, Active: false},
	}}
	denylist := &fakeDenylist{entries: map[string]bool{}}
	guard := auth.NewAccessGuard(
		auth.NewRouteClassifier(),
		tokens,
		users,
		denylist,
		zap.NewNop(),
		observability.NewMetrics(),
		testCookieName,
		"/login",
	)
	return &guardFixture{guard: guard, tokens: tokens, users: users, denylist: denylist}
}

func (fx *guardFixture) staffToken(t *testing.T, id string, role domain.StaffRole) string {
	t.Helper()
	token, _, err := fx.tokens.Issue(id, domain.AudienceStaff, &role)
	require.NoError(t, err)
	return token
}

func TestDecideBypassAndPublicPaths(t *testing.T) {
	fx := newGuardFixture(t)

	decision := fx.guard.Decide(context.Background(), "/shop/item/1", "", "")
	assert.True(t, decision.Allowed)
	assert.Nil(t, decision.Principal)

	decision = fx.guard.Decide(context.Background(), "/about", "", "")
	assert.True(t, decision.Allowed)
}

func TestDecideNoToken(t *testing.T) {
	fx := newGuardFixture(t)

	decision := fx.guard.Decide(context.Background(), "/api/items", "", "")
	assert.False(t, decision.Allowed)
	assert.Equal(t, auth.RejectNoToken, decision.Reason)
}

func TestDecideRejectsCustomerToken(t *testing.T) {
	fx := newGuardFixture(t)
	token, _, err := fx.tokens.Issue("cust-1", domain.AudienceCustomer, nil)
	require.NoError(t, err)

	decision := fx.guard.Decide(context.Background(), "/api/items", token, "")
	assert.False(t, decision.Allowed)
	assert.Equal(t, auth.RejectInvalidToken, decision.Reason)
}

func TestDecideAllowsStaffAndAttachesIdentity(t *testing.T) {
	fx := newGuardFixture(t)
	token := fx.staffToken(t, "staff-1", domain.StaffRoleStaff)

	decision := fx.guard.Decide(context.Background(), "/api/items", token, "")
	require.True(t, decision.Allowed)
	require.NotNil(t, decision.Principal)
	assert.Equal(t, "staff-1", decision.Principal.ID)
	assert.Equal(t, domain.StaffRoleStaff, decision.Principal.Role)
	assert.Equal(t, "Sam Staff", decision.Principal.DisplayName)
	assert.Equal(t, token, decision.Principal.Token)
}

func TestDecideDenylistedToken(t *testing.T) {
	fx := newGuardFixture(t)
	token := fx.staffToken(t, "staff-1", domain.StaffRoleStaff)
	fx.denylist.entries[token] = true

	decision := fx.guard.Decide(context.Background(), "/api/items", token, "")
	assert.False(t, decision.Allowed)
	assert.Equal(t, auth.RejectInvalidToken, decision.Reason)
}

func TestDecideDenylistFailureFailsClosed(t *testing.T) {
	fx := newGuardFixture(t)
	token := fx.staffToken(t, "staff-1", domain.StaffRoleStaff)
	fx.denylist.err = errors.New("redis down")

	decision := fx.guard.Decide(context.Background(), "/api/items", token, "")
	assert.False(t, decision.Allowed)
	assert.Equal(t, auth.RejectInvalidToken, decision.Reason)
}

func TestDecideInactiveUser(t *testing.T) {
	fx := newGuardFixture(t)
	token := fx.staffToken(t, "gone-1", domain.StaffRoleStaff)

	decision := fx.guard.Decide(context.Background(), "/api/items", token, "")
	assert.False(t, decision.Allowed)
	assert.Equal(t, auth.RejectInvalidToken, decision.Reason)
}

func TestDecideAdminOnly(t *testing.T) {
	fx := newGuardFixture(t)

	staffToken := fx.staffToken(t, "staff-1", domain.StaffRoleStaff)
	decision := fx.guard.Decide(context.Background(), "/dashboard/settings", staffToken, "")
	assert.False(t, decision.Allowed)
	assert.Equal(t, auth.RejectForbidden, decision.Reason)

	adminToken := fx.staffToken(t, "admin-1", domain.StaffRoleAdmin)
	decision = fx.guard.Decide(context.Background(), "/dashboard/settings", adminToken, "")
	assert.True(t, decision.Allowed)
}

func TestDecidePrefersCookieOverHeader(t *testing.T) {
	fx := newGuardFixture(t)
	cookieToken := fx.staffToken(t, "staff-1", domain.StaffRoleStaff)

	decision := fx.guard.Decide(context.Background(), "/api/items", cookieToken, "garbage-header-token")
	assert.True(t, decision.Allowed)
}

func newGuardedApp(t *testing.T, fx *guardFixture) *fiber.App {
	t.Helper()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	app.Use(fx.guard.Handle)
	handler := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/dashboard/settings", handler)
	app.Get("/api/items", handler)
	return app
}

// Unauthenticated hits on a protected page redirect to login with the
// original path and proactively expire the credential cookie, even when no
// cookie was sent.
func TestHandleRedirectsAndClearsCookie(t *testing.T) {
	fx := newGuardFixture(t)
	app := newGuardedApp(t, fx)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/settings", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	location, err := url.Parse(resp.Header.Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/login", location.Path)
	assert.Equal(t, "/dashboard/settings", location.Query().Get("redirect"))

	var cleared bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == testCookieName {
			assert.Empty(t, cookie.Value)
			assert.True(t, cookie.Expires.Before(time.Now()))
			cleared = true
		}
	}
	assert.True(t, cleared, "expected an expired auth cookie on the rejection")
}

// Forbidden is reported distinctly and keeps the credential: it stays valid
// for non-admin routes.
func TestHandleForbiddenKeepsCookie(t *testing.T) {
	fx := newGuardFixture(t)
	app := newGuardedApp(t, fx)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/settings", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: fx.staffToken(t, "staff-1", domain.StaffRoleStaff)})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	for _, cookie := range resp.Cookies() {
		assert.NotEqual(t, testCookieName, cookie.Name, "forbidden must not touch the auth cookie")
	}
}

func TestHandleAllowsWithBearerHeader(t *testing.T) {
	fx := newGuardFixture(t)
	app := newGuardedApp(t, fx)

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	req.Header.Set("Authorization", "Bearer "+fx.staffToken(t, "staff-1", domain.StaffRoleStaff))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
