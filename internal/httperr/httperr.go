package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Erro interno do servidor."

type HTTPError struct {
	Error string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Error: message})
}

func Internal(c *gin.Context) {
	Write(c, http.StatusInternalServerError, internalMessage)
}

func Status(err error) int {
	var be BusinessError
	if !errors.As(err, &be) {
		return http.StatusInternalServerError
	}
	switch be.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond escreve o erro no formato {"error": ...}. Falhas de storage nunca
// expõem detalhe ao cliente; ficam no c.Error para o access log.
func Respond(c *gin.Context, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		Internal(c)
		return
	}
	Write(c, status, err.Error())
}
