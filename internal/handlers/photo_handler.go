package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinica-api/internal/domain/patient"
	"github.com/BruksfildServices01/clinica-api/internal/dto"
	"github.com/BruksfildServices01/clinica-api/internal/httperr"
	"github.com/BruksfildServices01/clinica-api/internal/httpresp"
	ucPhoto "github.com/BruksfildServices01/clinica-api/internal/usecase/photo"
)

type PhotoHandler struct {
	save   *ucPhoto.SaveImage
	list   *ucPhoto.ListImages
	update *ucPhoto.UpdateImage
	delete *ucPhoto.DeleteImage
}

func NewPhotoHandler(
	save *ucPhoto.SaveImage,
	list *ucPhoto.ListImages,
	update *ucPhoto.UpdateImage,
	del *ucPhoto.DeleteImage,
) *PhotoHandler {
	return &PhotoHandler{save: save, list: list, update: update, delete: del}
}

func (h *PhotoHandler) Save(c *gin.Context) {
	var req dto.SaveImageRequest
	if !bindJSON(c, &req) {
		return
	}

	name, err := h.save.Execute(c.Request.Context(), ucPhoto.SaveImageInput{
		CPF:       patient.NormalizeCPF(req.CPF.String()),
		Image:     req.Image,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Imagem salva com sucesso!",
		"file":    name,
	})
}

func (h *PhotoHandler) Update(c *gin.Context) {
	var req dto.UpdateImageRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.update.Execute(c.Request.Context(), ucPhoto.UpdateImageInput{
		CPF:          patient.NormalizeCPF(req.CPF.String()),
		Image:        req.Image,
		TimestampISO: req.TimestampISO,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, http.StatusOK, "Imagem atualizada com sucesso!")
}

func (h *PhotoHandler) List(c *gin.Context) {
	images, err := h.list.Execute(c.Request.Context(), patient.NormalizeCPF(c.Query("cpf")))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.ImageDTO, 0, len(images))
	for _, img := range images {
		out = append(out, dto.ImageDTO{
			Image:        img.DataURI,
			Timestamp:    img.Display,
			TimestampISO: img.TimestampISO,
		})
	}
	httpresp.OK(c, out)
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	cpf := patient.NormalizeCPF(c.Query("cpf"))
	if err := h.delete.Execute(c.Request.Context(), cpf, c.Query("timestamp_iso")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Message(c, http.StatusOK, "Imagem excluída com sucesso!")
}
