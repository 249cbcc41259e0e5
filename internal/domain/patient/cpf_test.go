package patient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCPF(t *testing.T) {
	cases := map[string]string{
		"123.456.789-00":   "12345678900",
		"12345678900":      "12345678900",
		" 123.456.789-00 ": "12345678900",
		"123-456.789.00":   "12345678900",
		"":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeCPF(in), "input %q", in)
	}
}

func TestNormalizeCPF_Idempotent(t *testing.T) {
	once := NormalizeCPF("987.654.321-99")
	assert.Equal(t, once, NormalizeCPF(once))
}
