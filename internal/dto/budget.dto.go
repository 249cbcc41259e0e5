package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/clinica-api/internal/models"
)

// ======================================================
// REQUESTS
// ======================================================

// Na criação do orçamento o item sem data herda a do orçamento.
type BudgetItemRequest struct {
	DataItem  string           `json:"data_item" binding:"omitempty,datetime=2006-01-02"`
	Preco     *decimal.Decimal `json:"preco" binding:"required"`
	Descricao string           `json:"descricao"`
}

type CreateBudgetRequest struct {
	DataOrcamento string              `json:"data_orcamento" binding:"required,datetime=2006-01-02"`
	Itens         []BudgetItemRequest `json:"itens" binding:"required,min=1,dive"`
}

type UpdateBudgetRequest struct {
	DataOrcamento string `json:"data_orcamento" binding:"required,datetime=2006-01-02"`
}

type PaymentRequest struct {
	DataPagamento string           `json:"data_pagamento" binding:"required,datetime=2006-01-02"`
	ValorParcela  *decimal.Decimal `json:"valor_parcela" binding:"required"`
	MeioPagamento string           `json:"meio_pagamento"`
}

// ======================================================
// RESPONSES
// ======================================================

// Valores saem como número JSON; o cálculo continua em decimal.
type BudgetItemDTO struct {
	ID        uint    `json:"id"`
	DataItem  string  `json:"data_item"`
	Preco     float64 `json:"preco"`
	Descricao string  `json:"descricao"`
}

type PaymentDTO struct {
	ID            uint    `json:"id"`
	DataPagamento string  `json:"data_pagamento"`
	ValorParcela  float64 `json:"valor_parcela"`
	MeioPagamento string  `json:"meio_pagamento"`
}

type BudgetDTO struct {
	ID            uint            `json:"id"`
	DataOrcamento string          `json:"data_orcamento"`
	Itens         []BudgetItemDTO `json:"itens"`
	Total         float64         `json:"total"`
	Pagamentos    []PaymentDTO    `json:"pagamentos"`
	Pago          float64         `json:"pago"`
	// negativo quando pagaram além do total
	Saldo float64 `json:"saldo"`
}

func ToBudgetItemDTO(it models.OrcamentoItem) BudgetItemDTO {
	return BudgetItemDTO{
		ID:        it.ID,
		DataItem:  it.DataItem,
		Preco:     it.Preco.InexactFloat64(),
		Descricao: it.Descricao,
	}
}

func ToPaymentDTO(p models.Pagamento) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID,
		DataPagamento: p.DataPagamento,
		ValorParcela:  p.ValorParcela.InexactFloat64(),
		MeioPagamento: p.MeioPagamento,
	}
}

func ToBudgetDTO(o models.Orcamento, total, paid decimal.Decimal) BudgetDTO {
	items := make([]BudgetItemDTO, 0, len(o.Itens))
	for _, it := range o.Itens {
		items = append(items, ToBudgetItemDTO(it))
	}
	payments := make([]PaymentDTO, 0, len(o.Pagamentos))
	for _, p := range o.Pagamentos {
		payments = append(payments, ToPaymentDTO(p))
	}
	return BudgetDTO{
		ID:            o.ID,
		DataOrcamento: o.DataOrcamento,
		Itens:         items,
		Total:         total.InexactFloat64(),
		Pagamentos:    payments,
		Pago:          paid.InexactFloat64(),
		Saldo:         total.Sub(paid).InexactFloat64(),
	}
}
