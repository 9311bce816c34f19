package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the catalog item a deal was sold against
type Product struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	ProductName    string
	Slug           string
	Price          decimal.Decimal
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProductRepository defines read-only access to product records
type ProductRepository interface {
	// FindNamesByIDs resolves product names for the given IDs. IDs without
	// a record are absent from the result map; missing products degrade to
	// an empty display name.
	FindNamesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
