package annotation

import (
	"strconv"
	"strings"

	"github.com/BruksfildServices01/clinica-api/internal/httperr"
)

const (
	// WholeMouth é o valor que o cliente manda (e recebe) quando a anotação
	// vale para a boca toda. No banco vira numero_dente NULL.
	WholeMouth = "Boca toda"

	DefaultFace = "N/A"
)

var ErrInvalidTooth = httperr.Validation("invalid_tooth", "Número do dente inválido.")

// ParseTooth converte o valor recebido em numero_dente. Vazio deve ser tratado
// como campo ausente por quem chama.
func ParseTooth(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, WholeMouth) {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return nil, ErrInvalidTooth
	}
	return &n, nil
}

func IsWholeMouth(tooth *int) bool {
	return tooth == nil
}

func NormalizeFace(face string) string {
	if f := strings.TrimSpace(face); f != "" {
		return f
	}
	return DefaultFace
}
