package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinica-api/internal/db/dbtest"
	domain "github.com/BruksfildServices01/clinica-api/internal/domain/patient"
	"github.com/BruksfildServices01/clinica-api/internal/infra/repository"
	"github.com/BruksfildServices01/clinica-api/internal/logger"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

type renamerFunc func(ctx context.Context, cpf, oldName, newName string) error

func (f renamerFunc) Execute(ctx context.Context, cpf, oldName, newName string) error {
	return f(ctx, cpf, oldName, newName)
}

func strPtr(s string) *string { return &s }

func validInput() Input {
	return Input{
		CPF:            "12345678900",
		Nome:           "João Silva",
		Telefone:       strPtr("11 98888-7777"),
		DataNascimento: "1985-07-20",
		Endereco:       strPtr("  "),
	}
}

func TestCreatePatient(t *testing.T) {
	repo := repository.NewPatientGormRepository(dbtest.New(t))
	uc := NewCreatePatient(repo, nil)
	ctx := context.Background()

	p, err := uc.Execute(ctx, validInput())
	require.NoError(t, err)
	assert.Equal(t, "12345678900", p.CPF)
	assert.Nil(t, p.Endereco)

	_, err = uc.Execute(ctx, validInput())
	assert.ErrorIs(t, err, domain.ErrExists)

	in := validInput()
	in.Nome = " "
	_, err = uc.Execute(ctx, in)
	assert.ErrorIs(t, err, ErrMissingFields)

	in = validInput()
	in.DataNascimento = "20/07/1985"
	_, err = uc.Execute(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestUpdatePatient_RenamesAfterCommit(t *testing.T) {
	repo := repository.NewPatientGormRepository(dbtest.New(t))
	ctx := context.Background()
	_, err := NewCreatePatient(repo, nil).Execute(ctx, validInput())
	require.NoError(t, err)

	var calls [][3]string
	uc := NewUpdatePatient(repo, renamerFunc(func(ctx context.Context, cpf, oldName, newName string) error {
		stored, err := repo.GetByCPF(ctx, cpf)
		require.NoError(t, err)
		assert.Equal(t, newName, stored.Nome)
		calls = append(calls, [3]string{cpf, oldName, newName})
		return nil
	}), nil, logger.Nop())

	in := validInput()
	in.Nome = "João Souza"
	_, err = uc.Execute(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, [][3]string{{"12345678900", "João Silva", "João Souza"}}, calls)
}

func TestUpdatePatient_RenameFailureIsNotFatal(t *testing.T) {
	repo := repository.NewPatientGormRepository(dbtest.New(t))
	ctx := context.Background()
	_, err := NewCreatePatient(repo, nil).Execute(ctx, validInput())
	require.NoError(t, err)

	uc := NewUpdatePatient(repo, renamerFunc(func(context.Context, string, string, string) error {
		return errors.New("permission denied")
	}), nil, logger.Nop())

	in := validInput()
	in.Nome = "Outro Nome"
	p, err := uc.Execute(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "Outro Nome", p.Nome)

	stored, err := repo.GetByCPF(ctx, in.CPF)
	require.NoError(t, err)
	assert.Equal(t, "Outro Nome", stored.Nome)
}

func TestUpdatePatient_NotFound(t *testing.T) {
	repo := repository.NewPatientGormRepository(dbtest.New(t))
	uc := NewUpdatePatient(repo, nil, nil, logger.Nop())

	_, err := uc.Execute(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteAndDetails(t *testing.T) {
	db := dbtest.New(t)
	repo := repository.NewPatientGormRepository(db)
	annotations := repository.NewAnnotationGormRepository(db)
	ctx := context.Background()

	_, err := NewCreatePatient(repo, nil).Execute(ctx, validInput())
	require.NoError(t, err)
	require.NoError(t, annotations.Create(ctx, &models.InformacaoTratamento{
		IDPaciente: "12345678900", EpochCriacao: 1, Face: "N/A", Anotacao: "Avaliação", Data: "2024-01-01",
	}))

	details, err := NewGetDetails(repo, annotations).Execute(ctx, "12345678900")
	require.NoError(t, err)
	assert.Equal(t, "João Silva", details.Patient.Nome)
	assert.Len(t, details.Treatments, 1)

	del := NewDeletePatient(repo, nil)
	require.NoError(t, del.Execute(ctx, "12345678900"))
	assert.ErrorIs(t, del.Execute(ctx, "12345678900"), domain.ErrNotFound)

	_, err = NewGetDetails(repo, annotations).Execute(ctx, "12345678900")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
