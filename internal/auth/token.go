package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/inventory-service/internal/domain"
)

// TokenManager issues and verifies signed bearer tokens for both audiences.
type TokenManager struct {
	secret      []byte
	staffTTL    time.Duration
	customerTTL time.Duration
}

// NewTokenManager builds a new manager. The secret is resolved once at
// startup and passed in explicitly.
func NewTokenManager(secret string, staffTTL, customerTTL time.Duration) *TokenManager {
	if staffTTL <= 0 {
		staffTTL = 7 * 24 * time.Hour
	}
	if customerTTL <= 0 {
		customerTTL = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), staffTTL: staffTTL, customerTTL: customerTTL}
}

// Claims describes the JWT payload.
type Claims struct {
	SubjectID string            `json:"sub"`
	Audience  domain.Audience   `json:"audience"`
	Role      *domain.StaffRole `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for the subject. The TTL depends on the
// audience: staff tokens live for days, customer tokens for a single day.
func (tm *TokenManager) Issue(subjectID string, audience domain.Audience, role *domain.StaffRole) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl(audience))
	claims := &Claims{
		SubjectID: subjectID,
		Audience:  audience,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks signature, expiry and audience, in that order. A token
// issued for one audience never verifies against the other, even when its
// signature and expiry are fine.
func (tm *TokenManager) Verify(tokenStr string, expected domain.Audience) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Audience != expected {
		return nil, ErrAudienceMismatch
	}
	return claims, nil
}

func (tm *TokenManager) ttl(audience domain.Audience) time.Duration {
	if audience == domain.AudienceCustomer {
		return tm.customerTTL
	}
	return tm.staffTTL
}
