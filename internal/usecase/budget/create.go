package budget

import (
	"context"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/clinica-api/internal/audit"
	domain "github.com/BruksfildServices01/clinica-api/internal/domain/budget"
	patientdomain "github.com/BruksfildServices01/clinica-api/internal/domain/patient"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBudgetInput struct {
	CPF   string
	Date  string
	Items []ItemInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateBudget struct {
	repo     domain.Repository
	patients patientdomain.Repository
	audit    *audit.Dispatcher
}

func NewCreateBudget(
	repo domain.Repository,
	patients patientdomain.Repository,
	audit *audit.Dispatcher,
) *CreateBudget {
	return &CreateBudget{repo: repo, patients: patients, audit: audit}
}

// Execute grava orçamento e itens numa transação: ou entra tudo, ou nada.
func (uc *CreateBudget) Execute(ctx context.Context, in CreateBudgetInput) (*View, error) {

	// --------------------------------------------------
	// Validação
	// --------------------------------------------------
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, ErrNoItems
	}
	items := make([]models.OrcamentoItem, 0, len(in.Items))
	for _, it := range in.Items {
		// item sem data herda a do orçamento
		if strings.TrimSpace(it.Date) == "" {
			it.Date = in.Date
		}
		if err := it.validate(); err != nil {
			return nil, err
		}
		items = append(items, models.OrcamentoItem{
			DataItem:  strings.TrimSpace(it.Date),
			Preco:     *it.Price,
			Descricao: strings.TrimSpace(it.Description),
		})
	}

	// --------------------------------------------------
	// Paciente
	// --------------------------------------------------
	ok, err := uc.patients.Exists(ctx, in.CPF)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, patientdomain.ErrNotFound
	}

	// --------------------------------------------------
	// Persistência
	// --------------------------------------------------
	o := &models.Orcamento{
		IDPaciente:    in.CPF,
		DataOrcamento: strings.TrimSpace(in.Date),
	}
	if err := uc.repo.CreateWithItems(ctx, o, items); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBudgetCreated,
		Entity:   "orcamento",
		EntityID: strconv.FormatUint(uint64(o.ID), 10),
		Metadata: map[string]any{"itens": len(items)},
	})

	view := newView(*o)
	return &view, nil
}
