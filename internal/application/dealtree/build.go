package dealtree

import (
	"fmt"

	"github.com/bizroot/backend/internal/application/deals"
)

// TreeView is the renderer's view model: a four-level deal → installment →
// payment → refund hierarchy with every display field pre-formatted. It is
// built fresh from a query snapshot on every render and holds no entity
// copies across requests.
type TreeView struct {
	Empty bool       `json:"empty"`
	Deals []DealNode `json:"deals,omitempty"`
}

// DealNode is the top-level collapsible panel of one deal
type DealNode struct {
	Key          string            `json:"key"`
	Title        string            `json:"title"`
	Amount       string            `json:"amount"`
	ClientName   string            `json:"clientName"`
	ProductName  string            `json:"productName"`
	WonDate      string            `json:"wonDate"`
	Badge        Badge             `json:"badge"`
	Open         bool              `json:"open"`
	Installments []InstallmentNode `json:"installments,omitempty"`
}

// InstallmentNode is the second-level panel of one installment
type InstallmentNode struct {
	Key       string        `json:"key"`
	Title     string        `json:"title"`
	Amount    string        `json:"amount"`
	DueDate   string        `json:"dueDate"`
	TotalPaid string        `json:"totalPaid"`
	Remaining string        `json:"remaining"`
	Badge     Badge         `json:"badge"`
	Open      bool          `json:"open"`
	Payments  []PaymentNode `json:"payments,omitempty"`
}

// PaymentNode is the third-level panel of one payment
type PaymentNode struct {
	Key     string       `json:"key"`
	Title   string       `json:"title"`
	Amount  string       `json:"amount"`
	Date    string       `json:"date"`
	Badge   Badge        `json:"badge"`
	Open    bool         `json:"open"`
	Refunds []RefundNode `json:"refunds,omitempty"`
}

// RefundNode renders inline once its parent payment is expanded; it has no
// independent open state.
type RefundNode struct {
	Title  string `json:"title"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
	Badge  Badge  `json:"badge"`
}

// Build produces the tree view for a query snapshot. An empty snapshot yields
// the empty-state view, not an empty tree shell. A nil state is treated as
// fully collapsed.
func Build(flattened []deals.FlattenedDeal, state *TreeState) *TreeView {
	if len(flattened) == 0 {
		return &TreeView{Empty: true}
	}
	if state == nil {
		state = NewTreeState()
	}

	view := &TreeView{Deals: make([]DealNode, 0, len(flattened))}
	for i, d := range flattened {
		dealKey := fmt.Sprintf("deal-%d", i)
		node := DealNode{
			Key:         dealKey,
			Title:       fmt.Sprintf("Deal #%d", i+1),
			Amount:      FormatCurrency(d.Amount),
			ClientName:  fallback(d.ClientFullName, "Unknown Client"),
			ProductName: fallback(d.ProductName, "No Product"),
			WonDate:     FormatDate(d.WonDate),
			Badge:       ClassifyStatus(d.Status),
			Open:        state.IsOpen(dealKey),
		}

		for j, ins := range d.Installments {
			instKey := fmt.Sprintf("inst-%d-%d", i, j)
			instNode := InstallmentNode{
				Key:       instKey,
				Title:     fmt.Sprintf("Installment #%d", j+1),
				Amount:    FormatCurrency(ins.Amount),
				DueDate:   FormatDate(ins.ScheduledDate),
				TotalPaid: FormatCurrency(ins.TotalPaidAmount),
				Remaining: FormatCurrency(ins.RemainingBalance),
				Badge:     ClassifyStatus(ins.Status.String()),
				Open:      state.IsOpen(instKey),
			}

			for k, pay := range ins.Payments {
				payKey := fmt.Sprintf("pay-%d-%d-%d", i, j, k)
				payNode := PaymentNode{
					Key:    payKey,
					Title:  fmt.Sprintf("Payment #%d", k+1),
					Amount: FormatCurrency(pay.Amount),
					Date:   FormatDate(pay.Date),
					Badge:  ClassifyStatus(pay.Status),
					Open:   state.IsOpen(payKey),
				}

				for r, ref := range pay.Refunds {
					payNode.Refunds = append(payNode.Refunds, RefundNode{
						Title:  fmt.Sprintf("Refund #%d", r+1),
						Amount: FormatCurrency(ref.Amount),
						Date:   FormatDate(ref.Date),
						Badge:  ClassifyStatus(ref.Status),
					})
				}

				instNode.Payments = append(instNode.Payments, payNode)
			}

			node.Installments = append(node.Installments, instNode)
		}

		view.Deals = append(view.Deals, node)
	}
	return view
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
