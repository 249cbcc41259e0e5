package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/clinica-api/internal/domain/patient"
	"github.com/BruksfildServices01/clinica-api/internal/httperr"
	ucBudget "github.com/BruksfildServices01/clinica-api/internal/usecase/budget"
)

var (
	errInvalidBody = httperr.Validation("invalid_request", "Dados inválidos.")
	errInvalidID   = httperr.Validation("invalid_id", "Identificador inválido.")
	errInvalidDate = httperr.Validation("invalid_date", "Data inválida (use AAAA-MM-DD).")
)

func init() {
	// erros de validação passam a citar o nome do campo no JSON
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// cpfParam lê o CPF da rota já normalizado.
func cpfParam(c *gin.Context) string {
	return patient.NormalizeCPF(c.Param("id"))
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.Respond(c, errInvalidID)
		return 0, false
	}
	return uint(v), true
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		httperr.Respond(c, errInvalidID)
		return 0, false
	}
	return v, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.Respond(c, bindingError(err))
		return false
	}
	return true
}

// bindingError traduz as falhas das tags binding para as mensagens da API.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errInvalidBody
	}

	var missing []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "datetime":
			return errInvalidDate
		case "min":
			if fe.Field() == "itens" {
				return ucBudget.ErrNoItems
			}
			return errInvalidBody
		case "required", "required_without":
			missing = append(missing, fe.Field())
		default:
			return errInvalidBody
		}
	}
	return httperr.Validation(
		"missing_fields",
		fmt.Sprintf("Campos obrigatórios ausentes: %s.", strings.Join(missing, ", ")),
	)
}
