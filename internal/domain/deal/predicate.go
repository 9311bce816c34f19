package deal

// Predicate decides membership of a deal in a filter result.
type Predicate func(*Deal) bool

// InstallmentPredicate matches a single installment.
type InstallmentPredicate func(Installment) bool

// PaymentPredicate matches a single payment.
type PaymentPredicate func(Payment) bool

// RefundPredicate matches a single refund.
type RefundPredicate func(Refund) bool

// AnyInstallment reports whether at least one installment of the deal matches.
func AnyInstallment(d *Deal, pred InstallmentPredicate) bool {
	for _, ins := range d.Installments {
		if pred(ins) {
			return true
		}
	}
	return false
}

// AnyPayment reports whether at least one payment of the installment matches.
func AnyPayment(ins Installment, pred PaymentPredicate) bool {
	for _, p := range ins.Payments {
		if pred(p) {
			return true
		}
	}
	return false
}

// AnyRefund reports whether at least one refund of the payment matches.
func AnyRefund(p Payment, pred RefundPredicate) bool {
	for _, r := range p.Refunds {
		if pred(r) {
			return true
		}
	}
	return false
}

// BaseClause is the always-applied time clause of a deal query:
//
//	wonDate in [lookbackStart, end]
//	OR exists installment with scheduledDate in [start, end]
//	OR exists payment in an installment with date in [start, end]
func BaseClause(w Window) Predicate {
	return func(d *Deal) bool {
		if w.ContainsLookback(d.WonDate) {
			return true
		}
		return AnyInstallment(d, func(ins Installment) bool {
			if w.Contains(ins.ScheduledDate) {
				return true
			}
			return AnyPayment(ins, func(p Payment) bool {
				return w.Contains(p.Date)
			})
		})
	}
}

// FilterClause is the filter-type-specific clause ANDed with the base clause.
// Unknown filter types add no further narrowing.
func FilterClause(t FilterType, w Window) Predicate {
	switch t {
	case FilterDealClosed, FilterConRav:
		// con_rav shares the closed-deal predicate until its own logic lands.
		return func(d *Deal) bool {
			return w.Contains(d.WonDate)
		}
	case FilterCashColl:
		return func(d *Deal) bool {
			return AnyInstallment(d, func(ins Installment) bool {
				return AnyPayment(ins, func(p Payment) bool {
					return p.Status == "paid" && w.Contains(p.Date)
				})
			})
		}
	case FilterMissPay:
		return func(d *Deal) bool {
			return AnyInstallment(d, func(ins Installment) bool {
				return ins.Status == InstallmentStatusOverdue && w.Contains(ins.ScheduledDate)
			})
		}
	case FilterUpcoPay:
		return func(d *Deal) bool {
			return AnyInstallment(d, func(ins Installment) bool {
				return ins.Status == InstallmentStatusScheduled && w.Contains(ins.ScheduledDate)
			})
		}
	case FilterRefunded:
		return func(d *Deal) bool {
			return AnyInstallment(d, func(ins Installment) bool {
				return AnyPayment(ins, func(p Payment) bool {
					return AnyRefund(p, func(r Refund) bool {
						return r.Status == "refunded" && w.Contains(r.Date)
					})
				})
			})
		}
	default:
		return func(*Deal) bool { return true }
	}
}

// QueryPredicate combines the invariants of every deal query (opportunity
// deals excluded) with the base clause and the filter-type clause. The
// lookback anchor is ORed alongside the filter clause: a deal won inside the
// trailing 12-month window is included regardless of the active filter type.
func QueryPredicate(t FilterType, w Window) Predicate {
	base := BaseClause(w)
	filter := FilterClause(t, w)
	return func(d *Deal) bool {
		if d.IsOpportunity() {
			return false
		}
		return base(d) && (w.ContainsLookback(d.WonDate) || filter(d))
	}
}
