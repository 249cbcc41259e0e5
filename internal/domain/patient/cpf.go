package patient

import "strings"

// NormalizeCPF remove a pontuação de um CPF ("123.456.789-00" -> "12345678900").
// Toda rota que recebe um CPF passa por aqui antes de tocar no banco ou nas fotos.
func NormalizeCPF(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, ".", "")
	raw = strings.ReplaceAll(raw, "-", "")
	return raw
}
