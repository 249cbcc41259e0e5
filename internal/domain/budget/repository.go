package budget

import (
	"context"

	"github.com/BruksfildServices01/clinica-api/internal/httperr"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

var (
	ErrNotFound        = httperr.NotFound("budget_not_found", "Orçamento não encontrado.")
	ErrItemNotFound    = httperr.NotFound("item_not_found", "Item não encontrado.")
	ErrPaymentNotFound = httperr.NotFound("payment_not_found", "Pagamento não encontrado.")
)

type Repository interface {
	// -------- Orçamento --------

	// CreateWithItems grava o orçamento e todos os itens numa única transação.
	CreateWithItems(ctx context.Context, o *models.Orcamento, items []models.OrcamentoItem) error

	// Orçamentos mais recentes primeiro; itens na ordem de inserção;
	// pagamentos mais recentes primeiro.
	ListByPatient(ctx context.Context, cpf string) ([]models.Orcamento, error)

	Exists(ctx context.Context, id uint) (bool, error)
	UpdateDate(ctx context.Context, cpf string, id uint, date string) error
	Delete(ctx context.Context, cpf string, id uint) error

	// -------- Itens --------
	AddItem(ctx context.Context, item *models.OrcamentoItem) error
	UpdateItem(ctx context.Context, item *models.OrcamentoItem) error
	DeleteItem(ctx context.Context, orcamentoID, itemID uint) error

	// -------- Pagamentos --------
	AddPayment(ctx context.Context, p *models.Pagamento) error
	UpdatePayment(ctx context.Context, p *models.Pagamento) error
	DeletePayment(ctx context.Context, orcamentoID, paymentID uint) error

	// Descrições distintas, não vazias, ordenadas.
	DistinctDescriptions(ctx context.Context, cpf string) ([]string, error)
}
