package budget

import (
	"context"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/clinica-api/internal/domain/budget"
	patientdomain "github.com/BruksfildServices01/clinica-api/internal/domain/patient"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

// View é o orçamento montado com total e valor pago calculados.
type View struct {
	Budget models.Orcamento
	Total  decimal.Decimal
	Paid   decimal.Decimal
}

func newView(o models.Orcamento) View {
	if o.Itens == nil {
		o.Itens = []models.OrcamentoItem{}
	}
	if o.Pagamentos == nil {
		o.Pagamentos = []models.Pagamento{}
	}
	return View{
		Budget: o,
		Total:  domain.Total(o.Itens),
		Paid:   domain.Paid(o.Pagamentos),
	}
}

type ListBudgets struct {
	repo     domain.Repository
	patients patientdomain.Repository
}

func NewListBudgets(repo domain.Repository, patients patientdomain.Repository) *ListBudgets {
	return &ListBudgets{repo: repo, patients: patients}
}

func (uc *ListBudgets) Execute(ctx context.Context, cpf string) ([]View, error) {
	ok, err := uc.patients.Exists(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, patientdomain.ErrNotFound
	}

	budgets, err := uc.repo.ListByPatient(ctx, cpf)
	if err != nil {
		return nil, err
	}

	out := make([]View, 0, len(budgets))
	for _, o := range budgets {
		out = append(out, newView(o))
	}
	return out, nil
}

// ======================================================
// DESCRIÇÕES (autocomplete)
// ======================================================

type ListDescriptions struct {
	repo     domain.Repository
	patients patientdomain.Repository
}

func NewListDescriptions(repo domain.Repository, patients patientdomain.Repository) *ListDescriptions {
	return &ListDescriptions{repo: repo, patients: patients}
}

func (uc *ListDescriptions) Execute(ctx context.Context, cpf string) ([]string, error) {
	ok, err := uc.patients.Exists(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, patientdomain.ErrNotFound
	}
	return uc.repo.DistinctDescriptions(ctx, cpf)
}
