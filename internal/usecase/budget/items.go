package budget

import (
	"context"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/clinica-api/internal/audit"
	domain "github.com/BruksfildServices01/clinica-api/internal/domain/budget"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

// Items reúne as operações sobre os itens de um orçamento já existente.
type Items struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewItems(repo domain.Repository, audit *audit.Dispatcher) *Items {
	return &Items{repo: repo, audit: audit}
}

func (uc *Items) Add(ctx context.Context, orcamentoID uint, in ItemInput) (*models.OrcamentoItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := requireBudget(ctx, uc.repo, orcamentoID); err != nil {
		return nil, err
	}

	item := &models.OrcamentoItem{
		OrcamentoID: orcamentoID,
		DataItem:    strings.TrimSpace(in.Date),
		Preco:       *in.Price,
		Descricao:   strings.TrimSpace(in.Description),
	}
	if err := uc.repo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	uc.dispatch("added", orcamentoID, item.ID)
	return item, nil
}

func (uc *Items) Update(ctx context.Context, orcamentoID, itemID uint, in ItemInput) (*models.OrcamentoItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := requireBudget(ctx, uc.repo, orcamentoID); err != nil {
		return nil, err
	}

	item := &models.OrcamentoItem{
		ID:          itemID,
		OrcamentoID: orcamentoID,
		DataItem:    strings.TrimSpace(in.Date),
		Preco:       *in.Price,
		Descricao:   strings.TrimSpace(in.Description),
	}
	if err := uc.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	uc.dispatch("updated", orcamentoID, itemID)
	return item, nil
}

func (uc *Items) Delete(ctx context.Context, orcamentoID, itemID uint) error {
	if err := requireBudget(ctx, uc.repo, orcamentoID); err != nil {
		return err
	}
	if err := uc.repo.DeleteItem(ctx, orcamentoID, itemID); err != nil {
		return err
	}
	uc.dispatch("deleted", orcamentoID, itemID)
	return nil
}

func (uc *Items) dispatch(op string, orcamentoID, itemID uint) {
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionItemChanged,
		Entity:   "orcamento",
		EntityID: strconv.FormatUint(uint64(orcamentoID), 10),
		Metadata: map[string]any{"op": op, "item_id": itemID},
	})
}

func requireBudget(ctx context.Context, repo domain.Repository, id uint) error {
	if id == 0 {
		return ErrMissingBudgetID
	}
	ok, err := repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
