package partner

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Client is the business counterparty of a deal. Only the display name is
// resolved at query time; the rest of the record belongs to the write path.
type Client struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	BusinessName   string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ClientRepository defines read-only access to client records
type ClientRepository interface {
	// FindNamesByIDs resolves business names for the given client IDs.
	// IDs without a record are absent from the result map.
	FindNamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
