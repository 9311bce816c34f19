package partner

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Organization is the tenant owning deals, clients and products
type Organization struct {
	ID               uuid.UUID
	OrganizationName string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrganizationRepository defines read-only access to organization records
type OrganizationRepository interface {
	// FindNamesByIDs resolves organization names for the given IDs.
	// IDs without a record are absent from the result map; a missing
	// organization degrades to an empty display name, never an error.
	FindNamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
