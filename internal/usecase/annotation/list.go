package annotation

import (
	"context"

	domain "github.com/BruksfildServices01/clinica-api/internal/domain/annotation"
	patientdomain "github.com/BruksfildServices01/clinica-api/internal/domain/patient"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

type ListAnnotations struct {
	repo     domain.Repository
	patients patientdomain.Repository
}

func NewListAnnotations(repo domain.Repository, patients patientdomain.Repository) *ListAnnotations {
	return &ListAnnotations{repo: repo, patients: patients}
}

func (uc *ListAnnotations) Execute(ctx context.Context, cpf string) ([]models.InformacaoTratamento, error) {
	ok, err := uc.patients.Exists(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, patientdomain.ErrNotFound
	}
	return uc.repo.ListByPatient(ctx, cpf)
}
