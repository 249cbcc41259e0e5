package patient

import (
	"strings"

	"github.com/BruksfildServices01/clinica-api/internal/httperr"
	"github.com/BruksfildServices01/clinica-api/internal/models"
	"github.com/BruksfildServices01/clinica-api/internal/validators"
)

var (
	ErrMissingFields = httperr.Validation("missing_fields", "CPF, nome e data de nascimento são obrigatórios.")
	ErrInvalidDate   = httperr.Validation("invalid_birthdate", "Data de nascimento inválida (use AAAA-MM-DD).")
)

// Input são os campos editáveis de um paciente. CPF chega já normalizado.
type Input struct {
	CPF            string
	Nome           string
	Telefone       *string
	DataNascimento string
	Endereco       *string
	Convenio       *string
}

func (in Input) validate() error {
	if in.CPF == "" || strings.TrimSpace(in.Nome) == "" || strings.TrimSpace(in.DataNascimento) == "" {
		return ErrMissingFields
	}
	if !validators.IsDate(in.DataNascimento) {
		return ErrInvalidDate
	}
	return nil
}

func (in Input) toModel() *models.Paciente {
	return &models.Paciente{
		CPF:            in.CPF,
		Nome:           strings.TrimSpace(in.Nome),
		Telefone:       trimmed(in.Telefone),
		DataNascimento: strings.TrimSpace(in.DataNascimento),
		Endereco:       trimmed(in.Endereco),
		Convenio:       trimmed(in.Convenio),
	}
}

// campo opcional vazio vira NULL
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
