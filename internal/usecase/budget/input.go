package budget

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/clinica-api/internal/httperr"
	"github.com/BruksfildServices01/clinica-api/internal/validators"
)

var (
	ErrMissingDate     = httperr.Validation("missing_date", "Data do orçamento é obrigatória.")
	ErrInvalidDate     = httperr.Validation("invalid_date", "Data inválida (use AAAA-MM-DD).")
	ErrNoItems         = httperr.Validation("missing_items", "O orçamento precisa de pelo menos um item.")
	ErrItemFields      = httperr.Validation("missing_item_fields", "Data e preço do item são obrigatórios.")
	ErrPaymentFields   = httperr.Validation("missing_payment_fields", "Data e valor da parcela são obrigatórios.")
	ErrNegativeAmount  = httperr.Validation("negative_amount", "Valor não pode ser negativo.")
	ErrMissingBudgetID = httperr.Validation("missing_budget_id", "Orçamento inválido.")
)

type ItemInput struct {
	Date        string
	Price       *decimal.Decimal
	Description string
}

func (in ItemInput) validate() error {
	if strings.TrimSpace(in.Date) == "" || in.Price == nil {
		return ErrItemFields
	}
	if !validators.IsDate(in.Date) {
		return ErrInvalidDate
	}
	if in.Price.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

type PaymentInput struct {
	Date   string
	Amount *decimal.Decimal
	Method string
}

func (in PaymentInput) validate() error {
	if strings.TrimSpace(in.Date) == "" || in.Amount == nil {
		return ErrPaymentFields
	}
	if !validators.IsDate(in.Date) {
		return ErrInvalidDate
	}
	if in.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

func validateDate(date string) error {
	if strings.TrimSpace(date) == "" {
		return ErrMissingDate
	}
	if !validators.IsDate(date) {
		return ErrInvalidDate
	}
	return nil
}
