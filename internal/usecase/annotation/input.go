package annotation

import (
	"strings"

	domain "github.com/BruksfildServices01/clinica-api/internal/domain/annotation"
	"github.com/BruksfildServices01/clinica-api/internal/httperr"
	"github.com/BruksfildServices01/clinica-api/internal/models"
	"github.com/BruksfildServices01/clinica-api/internal/validators"
)

var (
	ErrMissingFields = httperr.Validation("missing_fields", "Dente, data e anotação são obrigatórios.")
	ErrInvalidDate   = httperr.Validation("invalid_date", "Data inválida (use AAAA-MM-DD).")
)

// Input é o corpo de criação/edição. Tooth vem cru: número ou "Boca toda".
type Input struct {
	CPF   string
	Tooth string
	Date  string
	Note  string
	Face  string
}

func (in Input) toModel() (*models.InformacaoTratamento, error) {
	if strings.TrimSpace(in.Tooth) == "" || strings.TrimSpace(in.Date) == "" || strings.TrimSpace(in.Note) == "" {
		return nil, ErrMissingFields
	}
	if !validators.IsDate(in.Date) {
		return nil, ErrInvalidDate
	}
	tooth, err := domain.ParseTooth(in.Tooth)
	if err != nil {
		return nil, err
	}
	return &models.InformacaoTratamento{
		IDPaciente:  in.CPF,
		NumeroDente: tooth,
		Face:        domain.NormalizeFace(in.Face),
		Anotacao:    strings.TrimSpace(in.Note),
		Data:        strings.TrimSpace(in.Date),
	}, nil
}
