package dto

import "github.com/BruksfildServices01/clinica-api/internal/models"

// PatientRequest é o corpo do PUT; o CPF vem da rota.
type PatientRequest struct {
	Nome           string  `json:"nome" binding:"required"`
	Telefone       *string `json:"telefone"`
	DataNascimento string  `json:"dataNascimento" binding:"required,datetime=2006-01-02"`
	Endereco       *string `json:"endereco"`
	Convenio       *string `json:"convenio"`
}

type CreatePatientRequest struct {
	CPF FlexString `json:"cpf" binding:"required"`
	PatientRequest
}

type PatientDTO struct {
	CPF            string  `json:"cpf"`
	Nome           string  `json:"nome"`
	Telefone       *string `json:"telefone"`
	DataNascimento string  `json:"dataNascimento"`
	Endereco       *string `json:"endereco"`
	Convenio       *string `json:"convenio"`
}

func ToPatientDTO(p models.Paciente) PatientDTO {
	return PatientDTO{
		CPF:            p.CPF,
		Nome:           p.Nome,
		Telefone:       p.Telefone,
		DataNascimento: p.DataNascimento,
		Endereco:       p.Endereco,
		Convenio:       p.Convenio,
	}
}

func ToPatientDTOs(ps []models.Paciente) []PatientDTO {
	out := make([]PatientDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToPatientDTO(p))
	}
	return out
}

// PatientDetailsDTO é a visão da tela de detalhes: cadastro + anotações.
type PatientDetailsDTO struct {
	CPF        string          `json:"cpf"`
	Name       string          `json:"name"`
	Phone      *string         `json:"phone"`
	Birthdate  string          `json:"birthdate"`
	Address    *string         `json:"address"`
	Convenio   *string         `json:"convenio"`
	Treatments []AnnotationDTO `json:"treatments"`
}

func ToPatientDetailsDTO(p models.Paciente, treatments []models.InformacaoTratamento) PatientDetailsDTO {
	return PatientDetailsDTO{
		CPF:        p.CPF,
		Name:       p.Nome,
		Phone:      p.Telefone,
		Birthdate:  p.DataNascimento,
		Address:    p.Endereco,
		Convenio:   p.Convenio,
		Treatments: ToAnnotationDTOs(treatments),
	}
}
