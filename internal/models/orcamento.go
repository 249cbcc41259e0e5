package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Orcamento struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	IDPaciente    string `gorm:"column:id_paciente;size:20;not null;index" json:"id_paciente"`
	DataOrcamento string `gorm:"column:data_orcamento;size:10;not null" json:"data_orcamento"`

	Itens      []OrcamentoItem `gorm:"foreignKey:OrcamentoID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"itens"`
	Pagamentos []Pagamento     `gorm:"foreignKey:OrcamentoID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pagamentos"`

	CreatedAt time.Time `json:"created_at"`
}

func (Orcamento) TableName() string { return "orcamentos" }

type OrcamentoItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrcamentoID uint            `gorm:"column:orcamento_id;not null;index" json:"orcamento_id"`
	DataItem    string          `gorm:"column:data_item;size:10;not null" json:"data_item"`
	Preco       decimal.Decimal `gorm:"column:preco;type:decimal(10,2);not null" json:"preco"`
	Descricao   string          `gorm:"column:descricao;size:255" json:"descricao"`
}

func (OrcamentoItem) TableName() string { return "orcamento_itens" }

type Pagamento struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	OrcamentoID   uint            `gorm:"column:orcamento_id;not null;index" json:"orcamento_id"`
	DataPagamento string          `gorm:"column:data_pagamento;size:10;not null" json:"data_pagamento"`
	ValorParcela  decimal.Decimal `gorm:"column:valor_parcela;type:decimal(10,2);not null" json:"valor_parcela"`
	MeioPagamento string          `gorm:"column:meio_pagamento;size:50" json:"meio_pagamento"`
}

func (Pagamento) TableName() string { return "pagamentos" }
