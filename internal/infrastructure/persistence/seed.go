package persistence

import (
	"fmt"
	"time"

	"github.com/bizroot/backend/internal/domain/catalog"
	"github.com/bizroot/backend/internal/domain/deal"
	"github.com/bizroot/backend/internal/domain/partner"
	"github.com/bizroot/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// seedFixture is a small coherent data set for local development: one
// organization with two clients, two products and three deals covering the
// main status and installment shapes.
type seedFixture struct {
	organization *partner.Organization
	clients      []*partner.Client
	products     []*catalog.Product
	deals        []*deal.Deal
}

// newSeedFixture builds the fixture with dates anchored on now, so a query
// over the current month matches the seeded deals.
func newSeedFixture(now time.Time) *seedFixture {
	orgID := uuid.New()
	clientA := &partner.Client{
		ID:             uuid.New(),
		OrganizationID: orgID,
		BusinessName:   "Harbor Lane Consulting",
		IsActive:       true,
	}
	clientB := &partner.Client{
		ID:             uuid.New(),
		OrganizationID: orgID,
		BusinessName:   "Bluefield Logistics",
		IsActive:       true,
	}
	productA := &catalog.Product{
		ID:             uuid.New(),
		OrganizationID: orgID,
		ProductName:    "Growth Retainer",
		Slug:           "growth-retainer",
		Price:          decimal.NewFromInt(2500),
		IsActive:       true,
	}
	productB := &catalog.Product{
		ID:             uuid.New(),
		OrganizationID: orgID,
		ProductName:    "Launch Package",
		Slug:           "launch-package",
		Price:          decimal.NewFromInt(7500),
		IsActive:       true,
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	paidDeal := &deal.Deal{
		ID:             uuid.New(),
		OrganizationID: orgID,
		ClientID:       clientA.ID,
		ProductID:      productB.ID,
		ContractType:   deal.ContractTypeOneTime,
		Amount:         decimal.NewFromInt(7500),
		Status:         deal.StatusFullyPaid,
		WonDate:        monthStart.AddDate(0, -2, 4),
		Installments: deal.Installments{{
			ScheduledDate:   monthStart.AddDate(0, -2, 10),
			Amount:          decimal.NewFromInt(7500),
			Status:          deal.InstallmentStatusPaid,
			TotalPaidAmount: decimal.NewFromInt(7500),
			Payments: []deal.Payment{{
				Status: "paid",
				Amount: decimal.NewFromInt(7500),
				Date:   monthStart.AddDate(0, -2, 11),
			}},
		}},
	}

	recurringDeal := &deal.Deal{
		ID:             uuid.New(),
		OrganizationID: orgID,
		ClientID:       clientB.ID,
		ProductID:      productA.ID,
		ContractType:   deal.ContractTypeRecurring,
		Amount:         decimal.NewFromInt(7500),
		Status:         deal.StatusInProgress,
		WonDate:        monthStart.AddDate(0, -1, 2),
		Installments: deal.Installments{
			{
				ScheduledDate:    monthStart.AddDate(0, 0, -14),
				Amount:           decimal.NewFromInt(2500),
				Status:           deal.InstallmentStatusOverdue,
				IsRecurring:      true,
				RemainingBalance: decimal.NewFromInt(2500),
			},
			{
				ScheduledDate:    monthStart.AddDate(0, 0, 14),
				Amount:           decimal.NewFromInt(2500),
				Status:           deal.InstallmentStatusScheduled,
				IsRecurring:      true,
				RemainingBalance: decimal.NewFromInt(2500),
			},
		},
	}

	refundedDeal := &deal.Deal{
		ID:             uuid.New(),
		OrganizationID: orgID,
		ClientID:       clientA.ID,
		ProductID:      productA.ID,
		ContractType:   deal.ContractTypeOneTime,
		Amount:         decimal.NewFromInt(2500),
		Status:         deal.StatusPartiallyRefunded,
		WonDate:        monthStart.AddDate(0, -3, 7),
		Installments: deal.Installments{{
			ScheduledDate:   monthStart.AddDate(0, -3, 14),
			Amount:          decimal.NewFromInt(2500),
			Status:          deal.InstallmentStatusPaid,
			TotalPaidAmount: decimal.NewFromInt(2500),
			Payments: []deal.Payment{{
				Status: "paid",
				Amount: decimal.NewFromInt(2500),
				Date:   monthStart.AddDate(0, -3, 15),
				Refunds: []deal.Refund{{
					Status: "refunded",
					Amount: decimal.NewFromInt(1000),
					Date:   monthStart.AddDate(0, 0, 3),
				}},
			}},
		}},
	}

	return &seedFixture{
		organization: &partner.Organization{ID: orgID, OrganizationName: "Harbor Lane Group"},
		clients:      []*partner.Client{clientA, clientB},
		products:     []*catalog.Product{productA, productB},
		deals:        []*deal.Deal{paidDeal, recurringDeal, refundedDeal},
	}
}

// Seed inserts the development fixture. It expects the schema to exist
// already (run the schema migration first) and always inserts fresh rows.
func Seed(db *gorm.DB) error {
	f := newSeedFixture(time.Now().UTC())

	return db.Transaction(func(tx *gorm.DB) error {
		var org models.OrganizationModel
		org.FromDomain(f.organization)
		if err := tx.Create(&org).Error; err != nil {
			return fmt.Errorf("seed organization: %w", err)
		}

		for _, c := range f.clients {
			var m models.ClientModel
			m.FromDomain(c)
			if err := tx.Create(&m).Error; err != nil {
				return fmt.Errorf("seed client %q: %w", c.BusinessName, err)
			}
		}

		for _, p := range f.products {
			var m models.ProductModel
			m.FromDomain(p)
			if err := tx.Create(&m).Error; err != nil {
				return fmt.Errorf("seed product %q: %w", p.ProductName, err)
			}
		}

		for _, d := range f.deals {
			if err := tx.Create(models.DealModelFromDomain(d)).Error; err != nil {
				return fmt.Errorf("seed deal %s: %w", d.ID, err)
			}
		}

		return nil
	})
}
