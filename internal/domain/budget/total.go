package budget

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/clinica-api/internal/models"
)

// Total nunca é gravado: é sempre a soma dos preços dos itens.
func Total(items []models.OrcamentoItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Preco)
	}
	return total
}

// Paid soma as parcelas pagas. Não interfere no total do orçamento.
func Paid(payments []models.Pagamento) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.ValorParcela)
	}
	return paid
}
