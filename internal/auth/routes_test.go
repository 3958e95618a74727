package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	rc := NewRouteClassifier()

	tests := []struct {
		path       string
		skip       bool
		protection Protection
	}{
		{"/", true, ProtectionPublic},
		{"/login", true, ProtectionPublic},
		{"/shop", true, ProtectionPublic},
		{"/shop/item/42", true, ProtectionPublic},
		{"/auth/staff/login", true, ProtectionPublic},
		{"/assets/app.css", true, ProtectionPublic},
		{"/health/live", true, ProtectionPublic},
		{"/about", false, ProtectionPublic},
		{"/dashboard", false, ProtectionProtected},
		{"/dashboard/items", false, ProtectionProtected},
		{"/dashboard/settings", false, ProtectionAdminOnly},
		{"/dashboard/users", false, ProtectionAdminOnly},
		{"/api/items", false, ProtectionProtected},
		{"/api/users", false, ProtectionAdminOnly},
		{"/api/customers", false, ProtectionAdminOnly},
		{"/api/reports/stock", false, ProtectionAdminOnly},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			decision := rc.Classify(tt.path)
			assert.Equal(t, tt.skip, decision.Skip)
			assert.Equal(t, tt.protection, decision.Protection)
		})
	}
}

// Bypass must win before the protected set is consulted, so customer-facing
// paths stay reachable even though they sit under the protected /api prefix.
func TestClassifyBypassPrecedence(t *testing.T) {
	rc := NewRouteClassifier()

	decision := rc.Classify("/api/customer/profile")
	assert.True(t, decision.Skip)
	assert.Equal(t, ProtectionPublic, decision.Protection)

	decision = rc.Classify("/api/customers")
	assert.False(t, decision.Skip)
	assert.Equal(t, ProtectionAdminOnly, decision.Protection)
}
