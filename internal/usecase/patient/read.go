package patient

import (
	"context"

	annotationdomain "github.com/BruksfildServices01/clinica-api/internal/domain/annotation"
	domain "github.com/BruksfildServices01/clinica-api/internal/domain/patient"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

// ======================================================
// LIST / GET
// ======================================================

type ListPatients struct {
	repo domain.Repository
}

func NewListPatients(repo domain.Repository) *ListPatients {
	return &ListPatients{repo: repo}
}

func (uc *ListPatients) Execute(ctx context.Context) ([]models.Paciente, error) {
	return uc.repo.List(ctx)
}

type GetPatient struct {
	repo domain.Repository
}

func NewGetPatient(repo domain.Repository) *GetPatient {
	return &GetPatient{repo: repo}
}

func (uc *GetPatient) Execute(ctx context.Context, cpf string) (*models.Paciente, error) {
	return uc.repo.GetByCPF(ctx, cpf)
}

// ======================================================
// DETAILS (paciente + anotações)
// ======================================================

type Details struct {
	Patient    models.Paciente
	Treatments []models.InformacaoTratamento
}

type GetDetails struct {
	patients    domain.Repository
	annotations annotationdomain.Repository
}

func NewGetDetails(patients domain.Repository, annotations annotationdomain.Repository) *GetDetails {
	return &GetDetails{patients: patients, annotations: annotations}
}

func (uc *GetDetails) Execute(ctx context.Context, cpf string) (*Details, error) {
	p, err := uc.patients.GetByCPF(ctx, cpf)
	if err != nil {
		return nil, err
	}

	treatments, err := uc.annotations.ListByPatient(ctx, cpf)
	if err != nil {
		return nil, err
	}

	return &Details{Patient: *p, Treatments: treatments}, nil
}
