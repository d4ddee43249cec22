package requests

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/revams/api/internal/app/models"
)

// CreatePayableRequest backs POST /api/payables.
type CreatePayableRequest struct {
	Base
	input struct {
		StudentID   int64   `json:"student_id" validate:"required,min=1"`
		EventID     *int64  `json:"event_id" validate:"omitempty,min=1"`
		Kind        string  `json:"kind" validate:"required,oneof=FEE FINE"`
		Description string  `json:"description" validate:"required,min=1,max=255"`
		Amount      float64 `json:"amount" validate:"required,gte=0.01,lte=1000000"`
	}
}

func (r *CreatePayableRequest) Rules() any { return &r.input }

func (r *CreatePayableRequest) Prepare(*gin.Context) error {
	r.input.Description = strings.TrimSpace(r.input.Description)
	r.input.Amount = models.RoundMoney(r.input.Amount)
	return nil
}

func (r *CreatePayableRequest) Payable() *models.Payable {
	r.mustBeValidated()
	return &models.Payable{
		Amount:      r.input.Amount,
		Description: r.input.Description,
		EventID:     r.input.EventID,
		Kind:        models.PayableKind(r.input.Kind),
		StudentID:   r.input.StudentID,
	}
}

// CreateReceiptRequest backs POST /api/payables/:id/receipts.
type CreateReceiptRequest struct {
	Base
	input struct {
		PayableID     int64   `json:"-" uri:"id" validate:"required,min=1"`
		ReceiptNumber string  `json:"receipt_number" validate:"required,min=1,max=50"`
		Amount        float64 `json:"amount" validate:"required,gte=0.01"`
	}
}

func (r *CreateReceiptRequest) Rules() any { return &r.input }

func (r *CreateReceiptRequest) Prepare(*gin.Context) error {
	r.input.ReceiptNumber = strings.TrimSpace(r.input.ReceiptNumber)
	r.input.Amount = models.RoundMoney(r.input.Amount)
	return nil
}

func (r *CreateReceiptRequest) Receipt() *models.Receipt {
	r.mustBeValidated()
	return &models.Receipt{
		Amount:        r.input.Amount,
		PayableID:     r.input.PayableID,
		ReceiptNumber: r.input.ReceiptNumber,
	}
}
