package dto

import (
	"encoding/json"

	"github.com/BruksfildServices01/clinica-api/internal/domain/annotation"
	"github.com/BruksfildServices01/clinica-api/internal/models"
)

type AnnotationRequest struct {
	Tooth FlexString `json:"tooth" binding:"required"`
	Date  string     `json:"date" binding:"required,datetime=2006-01-02"`
	Note  string     `json:"note" binding:"required_without=Observation"`
	// nome usado pelo formulário antigo
	Observation string `json:"observation"`
	Face        string `json:"face"`
	Epoch       *int64 `json:"epoch"`
}

func (r AnnotationRequest) NoteText() string {
	if r.Note != "" {
		return r.Note
	}
	return r.Observation
}

// Tooth sai como número, ou "Boca toda" quando o dente é nulo.
type Tooth struct {
	Number *int
}

func (t Tooth) MarshalJSON() ([]byte, error) {
	if annotation.IsWholeMouth(t.Number) {
		return json.Marshal(annotation.WholeMouth)
	}
	return json.Marshal(*t.Number)
}

type AnnotationDTO struct {
	Tooth Tooth  `json:"tooth"`
	Date  string `json:"date"`
	Note  string `json:"note"`
	Face  string `json:"face"`
	Epoch int64  `json:"epoch"`
}

func ToAnnotationDTO(a models.InformacaoTratamento) AnnotationDTO {
	return AnnotationDTO{
		Tooth: Tooth{Number: a.NumeroDente},
		Date:  a.Data,
		Note:  a.Anotacao,
		Face:  a.Face,
		Epoch: a.EpochCriacao,
	}
}

func ToAnnotationDTOs(as []models.InformacaoTratamento) []AnnotationDTO {
	out := make([]AnnotationDTO, 0, len(as))
	for _, a := range as {
		out = append(out, ToAnnotationDTO(a))
	}
	return out
}
