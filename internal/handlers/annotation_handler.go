package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinica-api/internal/dto"
	"github.com/BruksfildServices01/clinica-api/internal/httperr"
	"github.com/BruksfildServices01/clinica-api/internal/httpresp"
	ucAnnotation "github.com/BruksfildServices01/clinica-api/internal/usecase/annotation"
)

type AnnotationHandler struct {
	add    *ucAnnotation.AddAnnotation
	list   *ucAnnotation.ListAnnotations
	update *ucAnnotation.UpdateAnnotation
	delete *ucAnnotation.DeleteAnnotation
}

func NewAnnotationHandler(
	add *ucAnnotation.AddAnnotation,
	list *ucAnnotation.ListAnnotations,
	update *ucAnnotation.UpdateAnnotation,
	del *ucAnnotation.DeleteAnnotation,
) *AnnotationHandler {
	return &AnnotationHandler{add: add, list: list, update: update, delete: del}
}

func toAnnotationInput(cpf string, req dto.AnnotationRequest) ucAnnotation.Input {
	return ucAnnotation.Input{
		CPF:   cpf,
		Tooth: req.Tooth.String(),
		Date:  req.Date,
		Note:  req.NoteText(),
		Face:  req.Face,
	}
}

func (h *AnnotationHandler) List(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context(), cpfParam(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.ToAnnotationDTOs(items))
}

func (h *AnnotationHandler) Create(c *gin.Context) {
	var req dto.AnnotationRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.add.Execute(c.Request.Context(), ucAnnotation.AddInput{
		Input: toAnnotationInput(cpfParam(c), req),
		Epoch: req.Epoch,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.ToAnnotationDTO(*created))
}

func (h *AnnotationHandler) Update(c *gin.Context) {
	epoch, ok := int64Param(c, "epoch")
	if !ok {
		return
	}

	var req dto.AnnotationRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := h.update.Execute(c.Request.Context(), epoch, toAnnotationInput(cpfParam(c), req))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.ToAnnotationDTO(*updated))
}

func (h *AnnotationHandler) Delete(c *gin.Context) {
	epoch, ok := int64Param(c, "epoch")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), cpfParam(c), epoch); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Anotação excluída com sucesso!")
}
