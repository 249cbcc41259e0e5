package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinica-api/internal/domain/budget"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

type BudgetGormRepository struct {
	db *gorm.DB
}

func NewBudgetGormRepository(db *gorm.DB) *BudgetGormRepository {
	return &BudgetGormRepository{db: db}
}

// ==================================================
// Orçamento
// ==================================================

func (r *BudgetGormRepository) CreateWithItems(
	ctx context.Context,
	o *models.Orcamento,
	items []models.OrcamentoItem,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Itens", "Pagamentos").Create(o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].OrcamentoID = o.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		o.Itens = items
		return nil
	})
}

func (r *BudgetGormRepository) ListByPatient(ctx context.Context, cpf string) ([]models.Orcamento, error) {
	out := []models.Orcamento{}
	if err := r.db.WithContext(ctx).
		Where("id_paciente = ?", cpf).
		Preload("Itens", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Pagamentos", func(db *gorm.DB) *gorm.DB {
			return db.Order("data_pagamento DESC").Order("id DESC")
		}).
		Order("data_orcamento DESC").
		Order("id DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BudgetGormRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Orcamento{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BudgetGormRepository) ownedBy(tx *gorm.DB, cpf string, id uint) (bool, error) {
	var count int64
	if err := tx.Model(&models.Orcamento{}).
		Where("id = ? AND id_paciente = ?", id, cpf).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BudgetGormRepository) UpdateDate(ctx context.Context, cpf string, id uint, date string) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&models.Orcamento{}).
		Where("id = ? AND id_paciente = ?", id, cpf).
		Update("data_orcamento", date)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		ok, err := r.ownedBy(db, cpf, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
	}
	return nil
}

// Delete apaga pagamentos, itens e o orçamento na mesma transação. As FKs
// também têm ON DELETE CASCADE, mas não dependemos do dialeto para isso.
func (r *BudgetGormRepository) Delete(ctx context.Context, cpf string, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := r.ownedBy(tx, cpf, id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}

		if err := tx.Where("orcamento_id = ?", id).Delete(&models.Pagamento{}).Error; err != nil {
			return err
		}
		if err := tx.Where("orcamento_id = ?", id).Delete(&models.OrcamentoItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Orcamento{}).Error
	})
}

// ==================================================
// Itens
// ==================================================

func (r *BudgetGormRepository) AddItem(ctx context.Context, item *models.OrcamentoItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *BudgetGormRepository) UpdateItem(ctx context.Context, item *models.OrcamentoItem) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&models.OrcamentoItem{}).
		Where("id = ? AND orcamento_id = ?", item.ID, item.OrcamentoID).
		Updates(map[string]interface{}{
			"data_item": item.DataItem,
			"preco":     item.Preco,
			"descricao": item.Descricao,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.confirmChild(db, &models.OrcamentoItem{}, item.OrcamentoID, item.ID, domain.ErrItemNotFound)
	}
	return nil
}

func (r *BudgetGormRepository) DeleteItem(ctx context.Context, orcamentoID, itemID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND orcamento_id = ?", itemID, orcamentoID).
		Delete(&models.OrcamentoItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// ==================================================
// Pagamentos
// ==================================================

func (r *BudgetGormRepository) AddPayment(ctx context.Context, p *models.Pagamento) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *BudgetGormRepository) UpdatePayment(ctx context.Context, p *models.Pagamento) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&models.Pagamento{}).
		Where("id = ? AND orcamento_id = ?", p.ID, p.OrcamentoID).
		Updates(map[string]interface{}{
			"data_pagamento": p.DataPagamento,
			"valor_parcela":  p.ValorParcela,
			"meio_pagamento": p.MeioPagamento,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return r.confirmChild(db, &models.Pagamento{}, p.OrcamentoID, p.ID, domain.ErrPaymentNotFound)
	}
	return nil
}

func (r *BudgetGormRepository) DeletePayment(ctx context.Context, orcamentoID, paymentID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND orcamento_id = ?", paymentID, orcamentoID).
		Delete(&models.Pagamento{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

// confirmChild distingue "nada mudou" (MySQL) de "linha inexistente".
func (r *BudgetGormRepository) confirmChild(db *gorm.DB, model interface{}, orcamentoID, id uint, notFound error) error {
	var count int64
	if err := db.Model(model).
		Where("id = ? AND orcamento_id = ?", id, orcamentoID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFound
	}
	return nil
}

// --------------------------------------------------
// Autocomplete
// --------------------------------------------------

func (r *BudgetGormRepository) DistinctDescriptions(ctx context.Context, cpf string) ([]string, error) {
	out := []string{}
	if err := r.db.WithContext(ctx).
		Model(&models.OrcamentoItem{}).
		Joins("JOIN orcamentos ON orcamentos.id = orcamento_itens.orcamento_id").
		Where("orcamentos.id_paciente = ?", cpf).
		Where("orcamento_itens.descricao IS NOT NULL AND orcamento_itens.descricao <> ''").
		Distinct().
		Order("orcamento_itens.descricao ASC").
		Pluck("orcamento_itens.descricao", &out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

var _ domain.Repository = (*BudgetGormRepository)(nil)
