package deals

import (
	"time"

	"github.com/bizroot/backend/internal/domain/deal"
	"github.com/shopspring/decimal"
)

// QueryRequest carries the raw filter parameters of a deal query. Fields are
// strings as received on the wire; the service validates and parses them.
type QueryRequest struct {
	OrganizationID string
	StartDate      string
	EndDate        string
	DealType       string
}

// FlattenedDeal is the transport shape of a deal: the original projected
// fields plus the three display names flattened from the resolved references.
// Field names follow the wire contract of the dashboard frontend.
type FlattenedDeal struct {
	ID               string            `json:"id"`
	Amount           decimal.Decimal   `json:"amount"`
	Status           string            `json:"status"`
	WonDate          time.Time         `json:"wonDate"`
	ProductName      string            `json:"productName"`
	ClientFullName   string            `json:"clientFullName"`
	OrganizationName string            `json:"organizationName"`
	Installments     deal.Installments `json:"installments"`
}
