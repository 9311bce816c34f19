package deal

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the read-side persistence interface for deals. The deal
// collection is written by an external path; this engine only reads.
type Repository interface {
	// FindActiveByOrganization returns all deals of the organization except
	// opportunities, projected to the fields a filter query needs. The
	// nested window predicates are evaluated in-process by the caller.
	FindActiveByOrganization(ctx context.Context, organizationID uuid.UUID) ([]Deal, error)
}
