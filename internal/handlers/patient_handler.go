package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinica-api/internal/domain/patient"
	"github.com/BruksfildServices01/clinica-api/internal/dto"
	"github.com/BruksfildServices01/clinica-api/internal/httperr"
	"github.com/BruksfildServices01/clinica-api/internal/httpresp"
	ucPatient "github.com/BruksfildServices01/clinica-api/internal/usecase/patient"
)

// ======================================================
// HANDLER
// ======================================================

type PatientHandler struct {
	create  *ucPatient.CreatePatient
	list    *ucPatient.ListPatients
	get     *ucPatient.GetPatient
	details *ucPatient.GetDetails
	update  *ucPatient.UpdatePatient
	delete  *ucPatient.DeletePatient
}

func NewPatientHandler(
	create *ucPatient.CreatePatient,
	list *ucPatient.ListPatients,
	get *ucPatient.GetPatient,
	details *ucPatient.GetDetails,
	update *ucPatient.UpdatePatient,
	del *ucPatient.DeletePatient,
) *PatientHandler {
	return &PatientHandler{
		create:  create,
		list:    list,
		get:     get,
		details: details,
		update:  update,
		delete:  del,
	}
}

func toPatientInput(cpf string, req dto.PatientRequest) ucPatient.Input {
	return ucPatient.Input{
		CPF:            cpf,
		Nome:           req.Nome,
		Telefone:       req.Telefone,
		DataNascimento: req.DataNascimento,
		Endereco:       req.Endereco,
		Convenio:       req.Convenio,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *PatientHandler) Create(c *gin.Context) {
	var req dto.CreatePatientRequest
	if !bindJSON(c, &req) {
		return
	}

	in := toPatientInput(patient.NormalizeCPF(req.CPF.String()), req.PatientRequest)
	if _, err := h.create.Execute(c.Request.Context(), in); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusCreated, "Paciente cadastrado com sucesso!")
}

// ======================================================
// READ
// ======================================================

func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.ToPatientDTOs(patients))
}

func (h *PatientHandler) Get(c *gin.Context) {
	p, err := h.get.Execute(c.Request.Context(), cpfParam(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.ToPatientDTO(*p))
}

// Details é a tela do paciente: cadastro + histórico de anotações.
func (h *PatientHandler) Details(c *gin.Context) {
	d, err := h.details.Execute(c.Request.Context(), cpfParam(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.ToPatientDetailsDTO(d.Patient, d.Treatments))
}

// ======================================================
// UPDATE / DELETE
// ======================================================

// Update usa o CPF da rota.
func (h *PatientHandler) Update(c *gin.Context) {
	var req dto.PatientRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.update.Execute(c.Request.Context(), toPatientInput(cpfParam(c), req)); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Paciente atualizado com sucesso!")
}

func (h *PatientHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), cpfParam(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, http.StatusOK, "Paciente excluído com sucesso!")
}
