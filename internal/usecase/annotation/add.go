package annotation

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/BruksfildServices01/clinica-api/internal/audit"
	domain "github.com/BruksfildServices01/clinica-api/internal/domain/annotation"
	patientdomain "github.com/BruksfildServices01/clinica-api/internal/domain/patient"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

const maxEpochAttempts = 3

type AddInput struct {
	Input
	// Epoch enviado pelo cliente; só é respeitado no modo de compatibilidade.
	Epoch *int64
}

type AddAnnotation struct {
	repo        domain.Repository
	patients    patientdomain.Repository
	audit       *audit.Dispatcher
	clientEpoch bool
	now         func() time.Time
}

func NewAddAnnotation(
	repo domain.Repository,
	patients patientdomain.Repository,
	audit *audit.Dispatcher,
	clientEpoch bool,
) *AddAnnotation {
	return &AddAnnotation{
		repo:        repo,
		patients:    patients,
		audit:       audit,
		clientEpoch: clientEpoch,
		now:         time.Now,
	}
}

// Execute gera o epoch no servidor (segundos unix, max+1 se já usado). Com
// clientEpoch ligado e epoch informado, usa o do cliente; repetido dá 409.
func (uc *AddAnnotation) Execute(ctx context.Context, in AddInput) (*models.InformacaoTratamento, error) {
	a, err := in.toModel()
	if err != nil {
		return nil, err
	}

	ok, err := uc.patients.Exists(ctx, in.CPF)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, patientdomain.ErrNotFound
	}

	if uc.clientEpoch && in.Epoch != nil {
		a.EpochCriacao = *in.Epoch
		if err := uc.repo.Create(ctx, a); err != nil {
			return nil, err
		}
		uc.dispatch(a)
		return a, nil
	}

	for attempt := 1; ; attempt++ {
		latest, err := uc.repo.MaxEpoch(ctx, in.CPF)
		if err != nil {
			return nil, err
		}
		a.EpochCriacao = domain.NextEpoch(uc.now().Unix(), latest)

		err = uc.repo.Create(ctx, a)
		if err == nil {
			break
		}
		// outra requisição pegou o mesmo epoch; recalcula
		if !errors.Is(err, domain.ErrDuplicate) || attempt == maxEpochAttempts {
			return nil, err
		}
	}

	uc.dispatch(a)
	return a, nil
}

func (uc *AddAnnotation) dispatch(a *models.InformacaoTratamento) {
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAnnotationCreated,
		Entity:   "informacao_tratamento",
		EntityID: a.IDPaciente + ":" + strconv.FormatInt(a.EpochCriacao, 10),
	})
}
