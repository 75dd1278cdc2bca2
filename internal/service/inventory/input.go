package inventory

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/powerline/gridstock/internal/domain"
)

const maxNotesLen = 2000

// LogUsageInput holds parameters for recording material consumption.
type LogUsageInput struct {
	ProjectID  uuid.UUID
	MaterialID uuid.UUID
	Quantity   float64
	LoggedBy   uuid.UUID
	Notes      *string
}

// Validate validates the usage input. Consumption logged through the API is
// always positive; reservations are written internally at project creation.
func (i LogUsageInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.MaterialID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "material_id", Message: "required"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if i.LoggedBy == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "logged_by", Message: "required"})
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LogDeliveryInput holds parameters for recording a material receipt.
// A nil ProjectID records warehouse-level stocking. A nil UnitCost falls
// back to the material's master cost.
type LogDeliveryInput struct {
	MaterialID uuid.UUID
	ProjectID  *uuid.UUID
	SupplierID *uuid.UUID
	Quantity   float64
	UnitCost   *decimal.Decimal
	ReceivedBy uuid.UUID
	PORef      *string
	InvoiceRef *string
	Notes      *string
}

// Validate validates the delivery input.
func (i LogDeliveryInput) Validate() error {
	var errs []domain.FieldError

	if i.MaterialID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "material_id", Message: "required"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}
	if i.UnitCost != nil && i.UnitCost.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "unit_cost", Message: "must not be negative"})
	}
	if i.ReceivedBy == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "received_by", Message: "required"})
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
