package deal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle status of a deal
type Status string

const (
	StatusOpportunity       Status = "opportunity"
	StatusInProgress        Status = "in_progress"
	StatusPaused            Status = "paused"
	StatusCancelled         Status = "cancelled"
	StatusRefunded          Status = "refunded"
	StatusPartiallyRefunded Status = "partially_refunded"
	StatusFullyPaid         Status = "fully_paid"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// ContractType distinguishes one-off deals from recurring ones
type ContractType string

const (
	ContractTypeOneTime   ContractType = "one_time"
	ContractTypeRecurring ContractType = "recurring"
)

// Deal is the aggregate root for a sales transaction and its payment schedule.
// Installments (and the payments and refunds below them) are value objects owned
// exclusively by the deal; they are never addressed outside their parent.
type Deal struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	ClientID       uuid.UUID
	ProductID      uuid.UUID
	ContractType   ContractType
	Amount         decimal.Decimal
	Status         Status
	WonDate        time.Time
	Installments   Installments
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOpportunity reports whether the deal is still an unclosed opportunity.
// Opportunity deals never appear in filter results.
func (d *Deal) IsOpportunity() bool {
	return d.Status == StatusOpportunity
}
