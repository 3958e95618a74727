package domain

// FeatureFlag is an administratively managed switch read by the feature gate.
// The core never mutates these rows.
type FeatureFlag struct {
	ID           string
	Key          string
	Name         string
	Enabled      bool
	Category     string
	RequiredRole *StaffRole
	SortOrder    int
}

// PageDescriptor describes a navigable page surfaced to a principal.
type PageDescriptor struct {
	ID        string
	Key       string
	Name      string
	Path      string
	Enabled   bool
	Category  string
	SortOrder int
}
