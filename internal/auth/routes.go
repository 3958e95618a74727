package auth

import "strings"

// Protection is the gating level a route requires.
type Protection int

const (
	ProtectionPublic Protection = iota
	ProtectionProtected
	ProtectionAdminOnly
)

// RouteDecision is the classification result for one path.
type RouteDecision struct {
	Skip       bool
	Protection Protection
}

// RouteClassifier maps request paths to protection levels using static
// prefix tables resolved once at startup. Evaluation order matters: bypass
// wins over protection, even when a path would also match a protected
// prefix, so storefront and auth-machinery paths stay reachable.
type RouteClassifier struct {
	bypass    []string
	protected []string
	adminOnly []string
}

// NewRouteClassifier builds the classifier with the service route table.
func NewRouteClassifier() *RouteClassifier {
	return &RouteClassifier{
		bypass: []string{
			"/login",
			"/register",
			"/shop",
			"/auth/",
			"/api/customer/",
			"/api/features",
			"/api/pages",
			"/assets/",
			"/health/",
			"/favicon.ico",
		},
		protected: []string{
			"/dashboard",
			"/api/",
		},
		adminOnly: []string{
			"/dashboard/settings",
			"/dashboard/users",
			"/api/users",
			"/api/customers",
			"/api/reports",
		},
	}
}

// Classify resolves the protection level for path. First match wins.
func (rc *RouteClassifier) Classify(path string) RouteDecision {
	if path == "/" || matchesPrefix(rc.bypass, path) {
		return RouteDecision{Skip: true, Protection: ProtectionPublic}
	}
	if !matchesPrefix(rc.protected, path) {
		return RouteDecision{Protection: ProtectionPublic}
	}
	if matchesPrefix(rc.adminOnly, path) {
		return RouteDecision{Protection: ProtectionAdminOnly}
	}
	return RouteDecision{Protection: ProtectionProtected}
}

func matchesPrefix(prefixes []string, path string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
