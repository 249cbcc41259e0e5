package patient

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/clinica-api/internal/audit"
	domain "github.com/BruksfildServices01/clinica-api/internal/domain/patient"
	"github.com/BruksfildServices01/clinica-api/internal/logger"
	"github.com/BruksfildServices01/clinica-api/internal/models"
	"github.com/BruksfildServices01/clinica-api/internal/observability"
)

// FolderRenamer leva a pasta de fotos para o novo nome do paciente.
type FolderRenamer interface {
	Execute(ctx context.Context, cpf, oldName, newName string) error
}

type UpdatePatient struct {
	repo    domain.Repository
	renamer FolderRenamer
	audit   *audit.Dispatcher
	log     *logger.Logger
}

func NewUpdatePatient(
	repo domain.Repository,
	renamer FolderRenamer,
	audit *audit.Dispatcher,
	log *logger.Logger,
) *UpdatePatient {
	return &UpdatePatient{
		repo:    repo,
		renamer: renamer,
		audit:   audit,
		log:     log.With("component", "UpdatePatient"),
	}
}

// Execute grava o cadastro e só depois mexe na pasta de fotos. Falha no
// rename não desfaz nem falha a atualização.
func (uc *UpdatePatient) Execute(ctx context.Context, in Input) (*models.Paciente, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	current, err := uc.repo.GetByCPF(ctx, in.CPF)
	if err != nil {
		return nil, err
	}
	oldName := current.Nome

	p := in.toModel()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionPatientUpdated,
		Entity:   "paciente",
		EntityID: p.CPF,
	})

	if uc.renamer != nil {
		if err := uc.renamer.Execute(ctx, p.CPF, oldName, p.Nome); err != nil {
			uc.reportRenameFailure(ctx, p.CPF, err)
		}
	}

	return p, nil
}

func (uc *UpdatePatient) reportRenameFailure(ctx context.Context, cpf string, err error) {
	uc.log.Error("photo folder rename failed", "cpf", cpf, "error", err)

	observability.CaptureError(ctx, fmt.Errorf("photo folder rename: %w", err), map[string]string{
		"operation": "photo_folder_rename",
	})

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionPhotoFolderRenameFailed,
		Entity:   "paciente",
		EntityID: cpf,
		Metadata: map[string]any{"error": err.Error()},
	})
}
