package patient

import (
	"context"

	"github.com/BruksfildServices01/clinica-api/internal/audit"
	domain "github.com/BruksfildServices01/clinica-api/internal/domain/patient"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

type CreatePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreatePatient(repo domain.Repository, audit *audit.Dispatcher) *CreatePatient {
	return &CreatePatient{repo: repo, audit: audit}
}

func (uc *CreatePatient) Execute(ctx context.Context, in Input) (*models.Paciente, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	p := in.toModel()
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionPatientCreated,
		Entity:   "paciente",
		EntityID: p.CPF,
	})
	return p, nil
}
