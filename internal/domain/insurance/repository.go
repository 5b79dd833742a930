package insurance

import "context"

// InsuranceRepository defines data access methods for insurance policies.
type InsuranceRepository interface {
	// GetPolicyByID retrieves a policy by ID
	GetPolicyByID(ctx context.Context, id string) (Policy, error)
}
