package models

import "time"

// PayableKind distinguishes fees from fines.
type PayableKind string

const (
	PayableFee  PayableKind = "FEE"
	PayableFine PayableKind = "FINE"
)

// PayableStatus is derived from how much of a payable has been settled.
type PayableStatus string

const (
	PayableUnpaid  PayableStatus = "UNPAID"
	PayablePartial PayableStatus = "PARTIAL"
	PayablePaid    PayableStatus = "PAID"
)

// Payable is a fee or fine owed by a student.
type Payable struct {
	Amount      float64       `json:"amount"`
	Balance     float64       `json:"balance"`
	CreatedAt   time.Time     `json:"created_at"`
	Description string        `json:"description"`
	EventID     *int64        `json:"event_id"`
	ID          int64         `json:"id"`
	Kind        PayableKind   `json:"kind"`
	PaidAmount  float64       `json:"paid_amount"`
	Status      PayableStatus `json:"status"`
	StudentID   int64         `json:"student_id"`
}

// Settle derives Balance and Status from Amount and PaidAmount.
func (p *Payable) Settle() {
	p.Balance = RoundMoney(p.Amount - p.PaidAmount)
	switch {
	case p.Balance <= 0:
		p.Balance = 0
		p.Status = PayablePaid
	case p.PaidAmount > 0:
		p.Status = PayablePartial
	default:
		p.Status = PayableUnpaid
	}
}

// Receipt records a payment against a payable.
type Receipt struct {
	Amount        float64   `json:"amount"`
	ID            int64     `json:"id"`
	PaidAt        time.Time `json:"paid_at"`
	PayableID     int64     `json:"payable_id"`
	ReceiptNumber string    `json:"receipt_number"`
}
