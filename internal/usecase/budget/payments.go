package budget

import (
	"context"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/clinica-api/internal/audit"
	domain "github.com/BruksfildServices01/clinica-api/internal/domain/budget"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

// Payments registra parcelas pagas. Não altera o total do orçamento.
type Payments struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPayments(repo domain.Repository, audit *audit.Dispatcher) *Payments {
	return &Payments{repo: repo, audit: audit}
}

func (uc *Payments) Add(ctx context.Context, orcamentoID uint, in PaymentInput) (*models.Pagamento, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := requireBudget(ctx, uc.repo, orcamentoID); err != nil {
		return nil, err
	}

	p := &models.Pagamento{
		OrcamentoID:   orcamentoID,
		DataPagamento: strings.TrimSpace(in.Date),
		ValorParcela:  *in.Amount,
		MeioPagamento: strings.TrimSpace(in.Method),
	}
	if err := uc.repo.AddPayment(ctx, p); err != nil {
		return nil, err
	}
	uc.dispatch("added", orcamentoID, p.ID)
	return p, nil
}

func (uc *Payments) Update(ctx context.Context, orcamentoID, paymentID uint, in PaymentInput) (*models.Pagamento, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := requireBudget(ctx, uc.repo, orcamentoID); err != nil {
		return nil, err
	}

	p := &models.Pagamento{
		ID:            paymentID,
		OrcamentoID:   orcamentoID,
		DataPagamento: strings.TrimSpace(in.Date),
		ValorParcela:  *in.Amount,
		MeioPagamento: strings.TrimSpace(in.Method),
	}
	if err := uc.repo.UpdatePayment(ctx, p); err != nil {
		return nil, err
	}
	uc.dispatch("updated", orcamentoID, paymentID)
	return p, nil
}

func (uc *Payments) Delete(ctx context.Context, orcamentoID, paymentID uint) error {
	if err := requireBudget(ctx, uc.repo, orcamentoID); err != nil {
		return err
	}
	if err := uc.repo.DeletePayment(ctx, orcamentoID, paymentID); err != nil {
		return err
	}
	uc.dispatch("deleted", orcamentoID, paymentID)
	return nil
}

func (uc *Payments) dispatch(op string, orcamentoID, paymentID uint) {
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionPaymentChange,
		Entity:   "orcamento",
		EntityID: strconv.FormatUint(uint64(orcamentoID), 10),
		Metadata: map[string]any{"op": op, "payment_id": paymentID},
	})
}
