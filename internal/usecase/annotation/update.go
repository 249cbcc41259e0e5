package annotation

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/clinica-api/internal/audit"
	domain "github.com/BruksfildServices01/clinica-api/internal/domain/annotation"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

// ======================================================
// UPDATE
// ======================================================

type UpdateAnnotation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAnnotation(repo domain.Repository, audit *audit.Dispatcher) *UpdateAnnotation {
	return &UpdateAnnotation{repo: repo, audit: audit}
}

func (uc *UpdateAnnotation) Execute(ctx context.Context, epoch int64, in Input) (*models.InformacaoTratamento, error) {
	a, err := in.toModel()
	if err != nil {
		return nil, err
	}
	a.EpochCriacao = epoch

	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAnnotationUpdated,
		Entity:   "informacao_tratamento",
		EntityID: in.CPF + ":" + strconv.FormatInt(epoch, 10),
	})
	return a, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteAnnotation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAnnotation(repo domain.Repository, audit *audit.Dispatcher) *DeleteAnnotation {
	return &DeleteAnnotation{repo: repo, audit: audit}
}

func (uc *DeleteAnnotation) Execute(ctx context.Context, cpf string, epoch int64) error {
	if err := uc.repo.Delete(ctx, cpf, epoch); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAnnotationDeleted,
		Entity:   "informacao_tratamento",
		EntityID: cpf + ":" + strconv.FormatInt(epoch, 10),
	})
	return nil
}
