package models

import (
	"time"

	"github.com/bizroot/backend/internal/domain/deal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DealModel is the persistence model for the Deal aggregate. Installments,
// with their payments and refunds, are stored as a single JSONB document
// because they are value objects never addressed outside their deal.
type DealModel struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID uuid.UUID         `gorm:"type:uuid;not null;index:idx_deals_org_status,priority:1"`
	ClientID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID         `gorm:"type:uuid;not null;index"`
	ContractType   deal.ContractType `gorm:"type:varchar(20);not null;default:'one_time'"`
	Amount         decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	Status         deal.Status       `gorm:"type:varchar(30);not null;index:idx_deals_org_status,priority:2"`
	WonDate        time.Time         `gorm:"type:timestamptz;not null;index"`
	Installments   deal.Installments `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt      time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName returns the table name for GORM
func (DealModel) TableName() string {
	return "deals"
}

// ToDomain converts the persistence model to a domain Deal entity.
func (m *DealModel) ToDomain() *deal.Deal {
	return &deal.Deal{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		ClientID:       m.ClientID,
		ProductID:      m.ProductID,
		ContractType:   m.ContractType,
		Amount:         m.Amount,
		Status:         m.Status,
		WonDate:        m.WonDate,
		Installments:   m.Installments,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Deal entity.
func (m *DealModel) FromDomain(d *deal.Deal) {
	m.ID = d.ID
	m.OrganizationID = d.OrganizationID
	m.ClientID = d.ClientID
	m.ProductID = d.ProductID
	m.ContractType = d.ContractType
	m.Amount = d.Amount
	m.Status = d.Status
	m.WonDate = d.WonDate
	m.Installments = d.Installments
	m.CreatedAt = d.CreatedAt
	m.UpdatedAt = d.UpdatedAt
}

// DealModelFromDomain creates a new persistence model from a domain Deal entity.
func DealModelFromDomain(d *deal.Deal) *DealModel {
	m := &DealModel{}
	m.FromDomain(d)
	return m
}
