package patient

import (
	"context"

	"github.com/BruksfildServices01/clinica-api/internal/httperr"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

var (
	ErrNotFound = httperr.NotFound("patient_not_found", "Paciente não encontrado.")
	ErrExists   = httperr.Conflict("patient_exists", "Paciente já cadastrado.")
)

type Repository interface {
	Create(ctx context.Context, p *models.Paciente) error
	List(ctx context.Context) ([]models.Paciente, error)
	GetByCPF(ctx context.Context, cpf string) (*models.Paciente, error)
	Exists(ctx context.Context, cpf string) (bool, error)

	// Update substitui todos os campos mutáveis; ErrNotFound se nenhuma linha casar.
	Update(ctx context.Context, p *models.Paciente) error
	Delete(ctx context.Context, cpf string) error
}
