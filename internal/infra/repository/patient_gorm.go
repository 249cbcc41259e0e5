package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinica-api/internal/domain/patient"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

type PatientGormRepository struct {
	db *gorm.DB
}

func NewPatientGormRepository(db *gorm.DB) *PatientGormRepository {
	return &PatientGormRepository{db: db}
}

func (r *PatientGormRepository) Create(ctx context.Context, p *models.Paciente) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrExists
	}
	return err
}

func (r *PatientGormRepository) List(ctx context.Context) ([]models.Paciente, error) {
	var out []models.Paciente
	if err := r.db.WithContext(ctx).
		Order("nome ASC").
		Order("cpf ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PatientGormRepository) GetByCPF(ctx context.Context, cpf string) (*models.Paciente, error) {
	var p models.Paciente
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientGormRepository) Exists(ctx context.Context, cpf string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Paciente{}).
		Where("cpf = ?", cpf).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PatientGormRepository) Update(ctx context.Context, p *models.Paciente) error {
	res := r.db.WithContext(ctx).
		Model(&models.Paciente{}).
		Where("cpf = ?", p.CPF).
		Updates(map[string]interface{}{
			"nome":            p.Nome,
			"telefone":        p.Telefone,
			"data_nascimento": p.DataNascimento,
			"endereco":        p.Endereco,
			"convenio":        p.Convenio,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// MySQL conta só linhas alteradas; confirma antes de responder 404
		ok, err := r.Exists(ctx, p.CPF)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
	}
	return nil
}

// Delete remove só a linha do paciente; anotações e orçamentos saem pela FK.
func (r *PatientGormRepository) Delete(ctx context.Context, cpf string) error {
	res := r.db.WithContext(ctx).
		Where("cpf = ?", cpf).
		Delete(&models.Paciente{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.Repository = (*PatientGormRepository)(nil)
