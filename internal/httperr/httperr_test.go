package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(Validation("missing_fields", "x")))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("patient_not_found", "x")))
	assert.Equal(t, http.StatusConflict, Status(Conflict("duplicate", "x")))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("db down")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("load budget: %w", NotFound("budget_not_found", "Orçamento não encontrado."))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsKind(err, KindValidation))
	assert.Equal(t, http.StatusNotFound, Status(err))
}

func TestRespond_HidesStorageDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Erro interno do servidor."}`, w.Body.String())
	assert.Len(t, c.Errors, 1)
}

func TestRespond_BusinessMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Respond(c, NotFound("patient_not_found", "Paciente não encontrado."))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Paciente não encontrado."}`, w.Body.String())
}
