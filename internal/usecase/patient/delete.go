package patient

import (
	"context"

	"github.com/BruksfildServices01/clinica-api/internal/audit"
	domain "github.com/BruksfildServices01/clinica-api/internal/domain/patient"
)

// DeletePatient remove o cadastro. As fotos ficam no storage.
type DeletePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePatient(repo domain.Repository, audit *audit.Dispatcher) *DeletePatient {
	return &DeletePatient{repo: repo, audit: audit}
}

func (uc *DeletePatient) Execute(ctx context.Context, cpf string) error {
	if err := uc.repo.Delete(ctx, cpf); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionPatientDeleted,
		Entity:   "paciente",
		EntityID: cpf,
	})
	return nil
}
