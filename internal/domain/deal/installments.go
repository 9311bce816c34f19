package deal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentStatus represents the status of a single installment
type InstallmentStatus string

const (
	InstallmentStatusScheduled     InstallmentStatus = "scheduled"
	InstallmentStatusOffline       InstallmentStatus = "offline"
	InstallmentStatusPaid          InstallmentStatus = "paid"
	InstallmentStatusPartiallyPaid InstallmentStatus = "partially_paid"
	InstallmentStatusOverdue       InstallmentStatus = "overdue"
	InstallmentStatusCancelled     InstallmentStatus = "cancelled"
)

// String returns the string representation of InstallmentStatus
func (s InstallmentStatus) String() string {
	return string(s)
}

// Refund is a reversal recorded against a payment. Status is free text as
// written by the payment gateway (e.g. "refunded").
type Refund struct {
	Status string          `json:"status"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// Payment is a recorded transaction applied against an installment. Status is
// free text (e.g. "paid", "completed", "failed").
type Payment struct {
	Status  string          `json:"status"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
	Refunds []Refund        `json:"refunds,omitempty"`
}

// Installment is one scheduled portion of a deal's total amount.
// TotalPaidAmount + RemainingBalance is expected to equal Amount; the engine
// does not enforce this, the display layer assumes it.
type Installment struct {
	ScheduledDate    time.Time         `json:"scheduledDate"`
	Amount           decimal.Decimal   `json:"amount"`
	Status           InstallmentStatus `json:"status"`
	IsRecurring      bool              `json:"isRecurring,omitempty"`
	RemainingBalance decimal.Decimal   `json:"remainingBalance"`
	TotalPaidAmount  decimal.Decimal   `json:"totalPaidAmount"`
	Payments         []Payment         `json:"payments,omitempty"`
}

// Installments is the ordered installment list of a deal, stored as JSONB
type Installments []Installment

// Value implements driver.Valuer so GORM can store the list as JSONB
func (ins Installments) Value() (driver.Value, error) {
	if ins == nil {
		return "[]", nil
	}
	return json.Marshal(ins)
}

// Scan implements sql.Scanner so GORM can read the list from JSONB
func (ins *Installments) Scan(value interface{}) error {
	if value == nil {
		*ins = Installments{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan Installments: unsupported type")
	}

	if len(bytes) == 0 {
		*ins = Installments{}
		return nil
	}

	return json.Unmarshal(bytes, ins)
}
