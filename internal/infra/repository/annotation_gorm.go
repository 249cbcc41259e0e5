package repository

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinica-api/internal/domain/annotation"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

type AnnotationGormRepository struct {
	db *gorm.DB
}

func NewAnnotationGormRepository(db *gorm.DB) *AnnotationGormRepository {
	return &AnnotationGormRepository{db: db}
}

func (r *AnnotationGormRepository) Create(ctx context.Context, a *models.InformacaoTratamento) error {
	err := r.db.WithContext(ctx).Create(a).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *AnnotationGormRepository) ListByPatient(ctx context.Context, cpf string) ([]models.InformacaoTratamento, error) {
	out := []models.InformacaoTratamento{}
	if err := r.db.WithContext(ctx).
		Where("id_paciente = ?", cpf).
		Order("data DESC").
		Order("epoch_criacao DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AnnotationGormRepository) MaxEpoch(ctx context.Context, cpf string) (int64, error) {
	var latest sql.NullInt64
	row := r.db.WithContext(ctx).
		Model(&models.InformacaoTratamento{}).
		Where("id_paciente = ?", cpf).
		Select("MAX(epoch_criacao)").
		Row()
	if err := row.Scan(&latest); err != nil {
		return 0, err
	}
	return latest.Int64, nil
}

func (r *AnnotationGormRepository) exists(ctx context.Context, cpf string, epoch int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InformacaoTratamento{}).
		Where("id_paciente = ? AND epoch_criacao = ?", cpf, epoch).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AnnotationGormRepository) Update(ctx context.Context, a *models.InformacaoTratamento) error {
	res := r.db.WithContext(ctx).
		Model(&models.InformacaoTratamento{}).
		Where("id_paciente = ? AND epoch_criacao = ?", a.IDPaciente, a.EpochCriacao).
		Updates(map[string]interface{}{
			"numero_dente": a.NumeroDente,
			"face":         a.Face,
			"anotacao":     a.Anotacao,
			"data":         a.Data,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		ok, err := r.exists(ctx, a.IDPaciente, a.EpochCriacao)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *AnnotationGormRepository) Delete(ctx context.Context, cpf string, epoch int64) error {
	res := r.db.WithContext(ctx).
		Where("id_paciente = ? AND epoch_criacao = ?", cpf, epoch).
		Delete(&models.InformacaoTratamento{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.Repository = (*AnnotationGormRepository)(nil)
