package budget

import (
	"context"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/clinica-api/internal/audit"
	domain "github.com/BruksfildServices01/clinica-api/internal/domain/budget"
)

// ======================================================
// UPDATE (só a data)
// ======================================================

type UpdateBudget struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBudget(repo domain.Repository, audit *audit.Dispatcher) *UpdateBudget {
	return &UpdateBudget{repo: repo, audit: audit}
}

func (uc *UpdateBudget) Execute(ctx context.Context, cpf string, id uint, date string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	if err := uc.repo.UpdateDate(ctx, cpf, id, strings.TrimSpace(date)); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBudgetUpdated,
		Entity:   "orcamento",
		EntityID: strconv.FormatUint(uint64(id), 10),
	})
	return nil
}

// ======================================================
// DELETE (leva itens e pagamentos)
// ======================================================

type DeleteBudget struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBudget(repo domain.Repository, audit *audit.Dispatcher) *DeleteBudget {
	return &DeleteBudget{repo: repo, audit: audit}
}

func (uc *DeleteBudget) Execute(ctx context.Context, cpf string, id uint) error {
	if err := uc.repo.Delete(ctx, cpf, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionBudgetDeleted,
		Entity:   "orcamento",
		EntityID: strconv.FormatUint(uint64(id), 10),
	})
	return nil
}
