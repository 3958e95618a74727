package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/inventory-service/internal/auth"
	"github.com/spec-kit/inventory-service/internal/domain"
	"github.com/spec-kit/inventory-service/internal/repository"
)

// FeatureService resolves visible features and pages for a caller. Unlike the
// access guard it fails open: if the backing store is unreachable or the
// token does not verify, the caller gets the baseline set, never an error.
type FeatureService struct {
	tokens *auth.TokenManager
	store  repository.FeatureRepository
	logger *zap.Logger
}

// NewFeatureService builds the service.
func NewFeatureService(tokens *auth.TokenManager, store repository.FeatureRepository, logger *zap.Logger) *FeatureService {
	return &FeatureService{tokens: tokens, store: store, logger: logger}
}

// ResolveFeatures lists enabled feature flags for the caller.
func (s *FeatureService) ResolveFeatures(ctx context.Context, token string) []domain.FeatureFlag {
	if !s.tokenVerifies(token) {
		return BaselineFeatures()
	}
	flags, err := s.store.ListEnabledFlags(ctx)
	if err != nil {
		s.logger.Warn("feature store unavailable, serving baseline", zap.Error(err))
		return BaselineFeatures()
	}
	return flags
}

// ResolvePages lists enabled pages for the caller.
func (s *FeatureService) ResolvePages(ctx context.Context, token string) []domain.PageDescriptor {
	if !s.tokenVerifies(token) {
		return BaselinePages()
	}
	pages, err := s.store.ListEnabledPages(ctx)
	if err != nil {
		s.logger.Warn("page store unavailable, serving baseline", zap.Error(err))
		return BaselinePages()
	}
	return pages
}

// tokenVerifies accepts either audience; the gate cares about identity being
// plausible, not about roles or sessions.
func (s *FeatureService) tokenVerifies(token string) bool {
	if token == "" {
		return false
	}
	if _, err := s.tokens.Verify(token, domain.AudienceStaff); err == nil {
		return true
	}
	if _, err := s.tokens.Verify(token, domain.AudienceCustomer); err == nil {
		return true
	}
	return false
}

// BaselineFeatures is the hard-coded set served before authentication and
// whenever the store is unavailable. Never empty.
func BaselineFeatures() []domain.FeatureFlag {
	return []domain.FeatureFlag{
		{Key: "storefront", Name: "Storefront", Enabled: true, Category: "shop", SortOrder: 1},
		{Key: "item-browse", Name: "Browse Items", Enabled: true, Category: "shop", SortOrder: 2},
		{Key: "login", Name: "Sign In", Enabled: true, Category: "account", SortOrder: 1},
	}
}

// BaselinePages mirrors BaselineFeatures for navigable pages.
func BaselinePages() []domain.PageDescriptor {
	return []domain.PageDescriptor{
		{Key: "home", Name: "Home", Path: "/", Enabled: true, Category: "shop", SortOrder: 1},
		{Key: "shop", Name: "Shop", Path: "/shop", Enabled: true, Category: "shop", SortOrder: 2},
		{Key: "login", Name: "Sign In", Path: "/login", Enabled: true, Category: "account", SortOrder: 1},
	}
}
