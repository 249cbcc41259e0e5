package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinica-api/internal/httperr"
)

func TestParseTooth(t *testing.T) {
	n, err := ParseTooth("18")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 18, *n)

	n, err = ParseTooth(" boca TODA ")
	require.NoError(t, err)
	assert.True(t, IsWholeMouth(n))

	for _, bad := range []string{"abc", "0", "-3", "1.5"} {
		_, err = ParseTooth(bad)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation), "input %q", bad)
	}
}

func TestNormalizeFace(t *testing.T) {
	assert.Equal(t, DefaultFace, NormalizeFace(""))
	assert.Equal(t, DefaultFace, NormalizeFace("   "))
	assert.Equal(t, "Vestibular", NormalizeFace(" Vestibular "))
}

func TestNextEpoch(t *testing.T) {
	assert.Equal(t, int64(100), NextEpoch(100, 0))
	assert.Equal(t, int64(100), NextEpoch(100, 99))
	assert.Equal(t, int64(101), NextEpoch(100, 100))
	assert.Equal(t, int64(121), NextEpoch(100, 120))
}
