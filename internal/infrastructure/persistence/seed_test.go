package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizroot/backend/internal/domain/deal"
	"github.com/bizroot/backend/internal/infrastructure/persistence/models"
)

func TestSeedFixtureReferentialConsistency(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	f := newSeedFixture(now)

	require.NotNil(t, f.organization)
	require.NotEmpty(t, f.clients)
	require.NotEmpty(t, f.products)
	require.NotEmpty(t, f.deals)

	clientIDs := make(map[string]bool)
	for _, c := range f.clients {
		assert.Equal(t, f.organization.ID, c.OrganizationID)
		clientIDs[c.ID.String()] = true
	}
	productIDs := make(map[string]bool)
	for _, p := range f.products {
		assert.Equal(t, f.organization.ID, p.OrganizationID)
		productIDs[p.ID.String()] = true
	}

	for _, d := range f.deals {
		assert.Equal(t, f.organization.ID, d.OrganizationID)
		assert.True(t, clientIDs[d.ClientID.String()], "deal references a seeded client")
		assert.True(t, productIDs[d.ProductID.String()], "deal references a seeded product")
		assert.False(t, d.IsOpportunity(), "seeded deals are closed")
	}
}

func TestSeedFixtureMapperRoundTrip(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	f := newSeedFixture(now)

	var org models.OrganizationModel
	org.FromDomain(f.organization)
	assert.Equal(t, f.organization.OrganizationName, org.ToDomain().OrganizationName)

	for _, c := range f.clients {
		var m models.ClientModel
		m.FromDomain(c)
		back := m.ToDomain()
		assert.Equal(t, c.ID, back.ID)
		assert.Equal(t, c.BusinessName, back.BusinessName)
	}

	for _, p := range f.products {
		var m models.ProductModel
		m.FromDomain(p)
		back := m.ToDomain()
		assert.Equal(t, p.ID, back.ID)
		assert.True(t, p.Price.Equal(back.Price))
	}

	for _, d := range f.deals {
		back := models.DealModelFromDomain(d).ToDomain()
		assert.Equal(t, d.ID, back.ID)
		assert.Equal(t, d.Status, back.Status)
		assert.Equal(t, d.WonDate, back.WonDate)
		require.Len(t, back.Installments, len(d.Installments))
		for i, ins := range d.Installments {
			assert.Equal(t, ins.ScheduledDate, back.Installments[i].ScheduledDate)
			assert.Equal(t, ins.Status, back.Installments[i].Status)
		}
	}
}

func TestSeedFixtureCoversInstallmentShapes(t *testing.T) {
	f := newSeedFixture(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))

	var sawPayment, sawRefund, sawOverdue bool
	for _, d := range f.deals {
		for _, ins := range d.Installments {
			if ins.Status == deal.InstallmentStatusOverdue {
				sawOverdue = true
			}
			for _, p := range ins.Payments {
				sawPayment = true
				if len(p.Refunds) > 0 {
					sawRefund = true
				}
			}
		}
	}
	assert.True(t, sawPayment, "fixture includes a paid installment with a payment")
	assert.True(t, sawRefund, "fixture includes a refund record")
	assert.True(t, sawOverdue, "fixture includes an overdue installment")
}
