package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/clinica-api/internal/models"
)

func items(prices ...string) []models.OrcamentoItem {
	out := make([]models.OrcamentoItem, 0, len(prices))
	for _, p := range prices {
		out = append(out, models.OrcamentoItem{Preco: decimal.RequireFromString(p)})
	}
	return out
}

func TestTotal(t *testing.T) {
	assert.True(t, Total(items("100", "50")).Equal(decimal.NewFromInt(150)))
	assert.True(t, Total(nil).IsZero())
}

func TestTotal_DecimalSafe(t *testing.T) {
	// 0.1 + 0.2 em float64 dá 0.30000000000000004
	assert.Equal(t, "0.3", Total(items("0.1", "0.2")).String())
	assert.Equal(t, "300.03", Total(items("100.01", "100.01", "100.01")).String())
}

func TestPaid(t *testing.T) {
	payments := []models.Pagamento{
		{ValorParcela: decimal.RequireFromString("75")},
		{ValorParcela: decimal.RequireFromString("25.50")},
	}
	assert.Equal(t, "100.5", Paid(payments).String())
}
