package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinica-api/internal/models"
)

func TestFlexString(t *testing.T) {
	var req AnnotationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"tooth": 18, "observation": "x"}`), &req))
	assert.Equal(t, "18", req.Tooth.String())
	assert.Equal(t, "x", req.NoteText())

	require.NoError(t, json.Unmarshal([]byte(`{"tooth": " Boca toda ", "note": "y", "observation": "x"}`), &req))
	assert.Equal(t, "Boca toda", req.Tooth.String())
	assert.Equal(t, "y", req.NoteText())

	assert.Error(t, json.Unmarshal([]byte(`{"tooth": true}`), &req))
}

func TestAnnotationDTO_ToothSentinel(t *testing.T) {
	n := 21
	out, err := json.Marshal(ToAnnotationDTOs([]models.InformacaoTratamento{
		{EpochCriacao: 1, Data: "2024-01-01", Anotacao: "a", Face: "N/A"},
		{EpochCriacao: 2, NumeroDente: &n, Data: "2024-01-02", Anotacao: "b", Face: "Oclusal"},
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"tooth":"Boca toda","date":"2024-01-01","note":"a","face":"N/A","epoch":1},
		{"tooth":21,"date":"2024-01-02","note":"b","face":"Oclusal","epoch":2}
	]`, string(out))
}

func TestBudgetRequest_AcceptsNumbersAndStrings(t *testing.T) {
	var req CreateBudgetRequest
	require.NoError(t, json.Unmarshal([]byte(`{"data_orcamento":"2024-01-01","itens":[{"preco":100.5},{"preco":"50"},{}]}`), &req))
	require.Len(t, req.Itens, 3)
	assert.Equal(t, "100.5", req.Itens[0].Preco.String())
	assert.Equal(t, "50", req.Itens[1].Preco.String())
	assert.Nil(t, req.Itens[2].Preco)
}

func TestBudgetDTO_Shape(t *testing.T) {
	o := models.Orcamento{
		ID:            3,
		DataOrcamento: "2024-01-01",
		Itens:         []models.OrcamentoItem{{ID: 1, DataItem: "2024-01-01", Preco: decimal.RequireFromString("100"), Descricao: "Canal"}},
	}
	out, err := json.Marshal(ToBudgetDTO(o, decimal.RequireFromString("100"), decimal.RequireFromString("40.5")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"data_orcamento":"2024-01-01","itens":[{"id":1,"data_item":"2024-01-01","preco":100,"descricao":"Canal"}],"total":100,"pagamentos":[],"pago":40.5,"saldo":59.5}`, string(out))
}
