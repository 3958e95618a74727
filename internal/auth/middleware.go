package auth

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/observability"
	"github.com/spec-kit/inventory-service/internal/repository"
	"github.com/spec-kit/inventory-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal is the identity context attached to allowed requests. The raw
// token rides along so downstream endpoints can run their own session check.
type Principal struct {
	ID          string
	Role        domain.StaffRole
	DisplayName string
	Token       string
}

// RejectReason tags why the guard refused a request.
type RejectReason string

const (
	RejectNoToken      RejectReason = "no_token"
	RejectInvalidToken RejectReason = "invalid_token"
	RejectForbidden    RejectReason = "forbidden"
)

// Decision is the terminal outcome of the guard pipeline for one request.
type Decision struct {
	Allowed   bool
	Reason    RejectReason
	Principal *Principal
}

// AccessGuard gates protected routes: classify, extract, verify, confirm
// session, authorize. Each request is a single decision, no retries.
type AccessGuard struct {
	classifier *RouteClassifier
	tokens     *TokenManager
	users      repository.UserRepository
	denylist   TokenDenylist
	logger     *zap.Logger
	metrics    *observability.Metrics
	cookieName string
	loginPath  string
}

// NewAccessGuard constructs the guard.
func NewAccessGuard(
	classifier *RouteClassifier,
	tokens *TokenManager,
	users repository.UserRepository,
	denylist TokenDenylist,
	logger *zap.Logger,
	metrics *observability.Metrics,
	cookieName, loginPath string,
) *AccessGuard {
	return &AccessGuard{
		classifier: classifier,
		tokens:     tokens,
		users:      users,
		denylist:   denylist,
		logger:     logger,
		metrics:    metrics,
		cookieName: cookieName,
		loginPath:  loginPath,
	}
}

// Decide runs the gating pipeline for one request. The cookie token is
// preferred over the header token. Store failures fail closed: identity
// that cannot be confirmed is treated as an invalid token.
func (g *AccessGuard) Decide(ctx context.Context, path, cookieToken, headerToken string) Decision {
	route := g.classifier.Classify(path)
	if route.Skip || route.Protection == ProtectionPublic {
		return Decision{Allowed: true}
	}

	token := cookieToken
	if token == "" {
		token = headerToken
	}
	if token == "" {
		return Decision{Reason: RejectNoToken}
	}

	claims, err := g.tokens.Verify(token, domain.AudienceStaff)
	if err != nil {
		return Decision{Reason: RejectInvalidToken}
	}

	denied, err := g.denylist.Contains(ctx, token)
	if err != nil {
		g.logger.Warn("denylist lookup failed", zap.Error(err))
		return Decision{Reason: RejectInvalidToken}
	}
	if denied {
		return Decision{Reason: RejectInvalidToken}
	}

	user, err := g.users.GetByID(ctx, claims.SubjectID)
	if err != nil {
		return Decision{Reason: RejectInvalidToken}
	}
	if !user.Active {
		return Decision{Reason: RejectInvalidToken}
	}

	if route.Protection == ProtectionAdminOnly && user.Role != domain.StaffRoleAdmin {
		return Decision{Reason: RejectForbidden}
	}

	return Decision{Allowed: true, Principal: &Principal{
		ID:          user.ID,
		Role:        user.Role,
		DisplayName: user.Name,
		Token:       token,
	}}
}

// Handle enforces the guard decision on incoming requests. Unauthenticated
// rejections redirect to the login entry point with the original path and
// expire any stale credential cookie so a corrupted cookie cannot loop.
// Forbidden keeps the cookie: it stays valid for non-admin routes.
func (g *AccessGuard) Handle(c *fiber.Ctx) error {
	decision := g.Decide(
		c.UserContext(),
		c.Path(),
		c.Cookies(g.cookieName),
		bearerToken(c.Get(fiber.HeaderAuthorization)),
	)

	if decision.Allowed {
		if decision.Principal != nil {
			c.Locals(principalKey, decision.Principal)
		}
		return c.Next()
	}

	g.metrics.RecordAuthReject(c.Path(), string(decision.Reason))

	if decision.Reason == RejectForbidden {
		return util.NewForbidden("access denied")
	}

	ExpireAuthCookie(c, g.cookieName)
	return c.Redirect(g.loginPath+"?redirect="+url.QueryEscape(c.Path()), fiber.StatusFound)
}

// PrincipalFromContext retrieves the identity attached by the guard.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// SetAuthCookie attaches the auth token as an HTTP-only same-site cookie.
func SetAuthCookie(c *fiber.Ctx, name, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
}

// ExpireAuthCookie overwrites the auth cookie with an immediately expired one.
func ExpireAuthCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
}

// TokenFromRequest extracts the bearer credential, cookie first, then the
// Authorization header.
func TokenFromRequest(c *fiber.Ctx, cookieName string) string {
	if token := c.Cookies(cookieName); token != "" {
		return token
	}
	return bearerToken(c.Get(fiber.HeaderAuthorization))
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
