package annotation

import (
	"context"

	"github.com/BruksfildServices01/clinica-api/internal/httperr"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

var (
	ErrNotFound  = httperr.NotFound("annotation_not_found", "Anotação não encontrada.")
	ErrDuplicate = httperr.Conflict("annotation_exists", "Já existe anotação com este epoch para o paciente.")
)

type Repository interface {
	Create(ctx context.Context, a *models.InformacaoTratamento) error

	// Ordenado pela data clínica, mais recente primeiro.
	ListByPatient(ctx context.Context, cpf string) ([]models.InformacaoTratamento, error)

	// MaxEpoch devolve 0 quando o paciente não tem anotações.
	MaxEpoch(ctx context.Context, cpf string) (int64, error)

	// Update casa por (id_paciente, epoch_criacao).
	Update(ctx context.Context, a *models.InformacaoTratamento) error
	Delete(ctx context.Context, cpf string, epoch int64) error
}
