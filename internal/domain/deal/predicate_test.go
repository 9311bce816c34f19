package deal

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func januaryWindow() Window {
	return NewWindow(date(2024, 1, 1), date(2024, 1, 31))
}

func newDeal(status Status, wonDate time.Time, installments ...Installment) *Deal {
	return &Deal{
		ID:             uuid.New(),
		OrganizationID: uuid.New(),
		ClientID:       uuid.New(),
		ProductID:      uuid.New(),
		ContractType:   ContractTypeOneTime,
		Amount:         decimal.NewFromInt(1000),
		Status:         status,
		WonDate:        wonDate,
		Installments:   installments,
	}
}

func TestBaseClause(t *testing.T) {
	w := januaryWindow()

	t.Run("matches on wonDate within lookback", func(t *testing.T) {
		d := newDeal(StatusInProgress, date(2023, 6, 15))
		assert.True(t, BaseClause(w)(d))
	})

	t.Run("rejects wonDate before lookback with no installment activity", func(t *testing.T) {
		d := newDeal(StatusInProgress, date(2022, 6, 15))
		assert.False(t, BaseClause(w)(d))
	})

	t.Run("matches on installment scheduled in range", func(t *testing.T) {
		d := newDeal(StatusInProgress, date(2022, 6, 15), Installment{
			ScheduledDate: date(2024, 1, 10),
			Status:        InstallmentStatusScheduled,
		})
		assert.True(t, BaseClause(w)(d))
	})

	t.Run("matches on payment dated in range", func(t *testing.T) {
		d := newDeal(StatusInProgress, date(2022, 6, 15), Installment{
			ScheduledDate: date(2023, 11, 1),
			Status:        InstallmentStatusPaid,
			Payments:      []Payment{{Status: "paid", Date: date(2024, 1, 20)}},
		})
		assert.True(t, BaseClause(w)(d))
	})
}

func TestQueryPredicate(t *testing.T) {
	w := januaryWindow()

	t.Run("opportunity deals are always excluded", func(t *testing.T) {
		d := newDeal(StatusOpportunity, date(2024, 1, 10), Installment{
			ScheduledDate: date(2024, 1, 15),
			Status:        InstallmentStatusOverdue,
		})
		assert.False(t, QueryPredicate(FilterMissPay, w)(d))
		assert.False(t, QueryPredicate("", w)(d))
	})

	t.Run("miss_pay includes overdue installment in range", func(t *testing.T) {
		d := newDeal(StatusInProgress, date(2024, 1, 5), Installment{
			ScheduledDate: date(2024, 1, 15),
			Status:        InstallmentStatusOverdue,
		})
		assert.True(t, QueryPredicate(FilterMissPay, w)(d))
	})

	t.Run("miss_pay excludes deal with only scheduled installment in range", func(t *testing.T) {
		d := newDeal(StatusInProgress, date(2022, 1, 5), Installment{
			ScheduledDate: date(2024, 1, 15),
			Status:        InstallmentStatusScheduled,
		})
		assert.False(t, QueryPredicate(FilterMissPay, w)(d))
	})

	t.Run("upco_pay includes scheduled installment in range", func(t *testing.T) {
		d := newDeal(StatusInProgress, date(2022, 1, 5), Installment{
			ScheduledDate: date(2024, 1, 15),
			Status:        InstallmentStatusScheduled,
		})
		assert.True(t, QueryPredicate(FilterUpcoPay, w)(d))
	})

	t.Run("cash_coll requires a paid payment dated in range", func(t *testing.T) {
		paid := newDeal(StatusInProgress, date(2022, 12, 1), Installment{
			ScheduledDate: date(2024, 1, 5),
			Status:        InstallmentStatusPaid,
			Payments:      []Payment{{Status: "paid", Date: date(2024, 1, 6)}},
		})
		failed := newDeal(StatusInProgress, date(2022, 12, 1), Installment{
			ScheduledDate: date(2024, 1, 5),
			Status:        InstallmentStatusScheduled,
			Payments:      []Payment{{Status: "failed", Date: date(2024, 1, 6)}},
		})

		assert.True(t, QueryPredicate(FilterCashColl, w)(paid))
		assert.False(t, QueryPredicate(FilterCashColl, w)(failed))
	})

	t.Run("deal_closed and con_rav match on wonDate in explicit range", func(t *testing.T) {
		inRange := newDeal(StatusFullyPaid, date(2024, 1, 10))
		wonBeforeLookback := newDeal(StatusFullyPaid, date(2022, 6, 10))

		assert.True(t, QueryPredicate(FilterDealClosed, w)(inRange))
		assert.True(t, QueryPredicate(FilterConRav, w)(inRange))
		assert.False(t, QueryPredicate(FilterDealClosed, w)(wonBeforeLookback))
	})

	t.Run("lookback wonDate is included regardless of filter type", func(t *testing.T) {
		// won inside the trailing 12-month window, no activity matching
		// the deal_closed clause
		lookbackOnly := newDeal(StatusFullyPaid, date(2023, 6, 10))

		assert.True(t, QueryPredicate(FilterDealClosed, w)(lookbackOnly))
		assert.True(t, QueryPredicate(FilterMissPay, w)(lookbackOnly))
	})

	t.Run("unknown filter type falls back to base clause only", func(t *testing.T) {
		d := newDeal(StatusInProgress, date(2023, 6, 10))
		assert.True(t, QueryPredicate("something_new", w)(d))
	})
}

func TestQueryPredicateRefunded(t *testing.T) {
	refundedDeal := func(wonDate time.Time) *Deal {
		return newDeal(StatusPartiallyRefunded, wonDate, Installment{
			ScheduledDate: date(2024, 6, 5),
			Status:        InstallmentStatusPaid,
			Payments: []Payment{{
				Status: "paid",
				Date:   date(2024, 5, 2),
				Refunds: []Refund{{
					Status: "refunded",
					Amount: decimal.NewFromInt(250),
					Date:   date(2024, 6, 1),
				}},
			}},
		})
	}

	t.Run("refund dated inside range is included", func(t *testing.T) {
		w := NewWindow(date(2024, 6, 1), date(2024, 6, 30))
		assert.True(t, QueryPredicate(FilterRefunded, w)(refundedDeal(date(2022, 1, 1))))
	})

	t.Run("refund outside range still includes a deal won in lookback", func(t *testing.T) {
		w := NewWindow(date(2024, 7, 1), date(2024, 7, 31))
		// no refund falls in July, but the deal was won inside the
		// trailing 12-month window
		assert.True(t, QueryPredicate(FilterRefunded, w)(refundedDeal(date(2024, 3, 1))))
	})

	t.Run("refund outside range with wonDate before lookback is excluded", func(t *testing.T) {
		w := NewWindow(date(2024, 7, 1), date(2024, 7, 31))
		assert.False(t, QueryPredicate(FilterRefunded, w)(refundedDeal(date(2022, 1, 1))))
	})

	t.Run("non-refunded status on the refund record does not match", func(t *testing.T) {
		w := NewWindow(date(2024, 6, 1), date(2024, 6, 30))
		d := refundedDeal(date(2022, 1, 1))
		d.Installments[0].Payments[0].Refunds[0].Status = "pending"
		assert.False(t, QueryPredicate(FilterRefunded, w)(d))
	})
}

func TestNestedCombinators(t *testing.T) {
	t.Run("AnyInstallment on empty list is false", func(t *testing.T) {
		d := newDeal(StatusInProgress, date(2024, 1, 1))
		assert.False(t, AnyInstallment(d, func(Installment) bool { return true }))
	})

	t.Run("AnyPayment and AnyRefund are existential", func(t *testing.T) {
		ins := Installment{Payments: []Payment{
			{Status: "failed"},
			{Status: "paid", Refunds: []Refund{{Status: "refunded"}}},
		}}

		assert.True(t, AnyPayment(ins, func(p Payment) bool { return p.Status == "paid" }))
		assert.False(t, AnyPayment(ins, func(p Payment) bool { return p.Status == "offline" }))
		assert.True(t, AnyPayment(ins, func(p Payment) bool {
			return AnyRefund(p, func(r Refund) bool { return r.Status == "refunded" })
		}))
	})
}

func TestFilterTypeDisplayLabel(t *testing.T) {
	assert.Equal(t, "Cash Collected", FilterCashColl.DisplayLabel())
	assert.Equal(t, "All Deals", FilterType("").DisplayLabel())
	assert.Equal(t, "Custom Segment", FilterType("custom_segment").DisplayLabel())
}
