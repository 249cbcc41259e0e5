package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeKVs_HashesPatientIdentity(t *testing.T) {
	out := sanitizeKVs([]interface{}{"cpf", "12345678900", "status", 200})

	assert.Len(t, out, 4)
	assert.Equal(t, "cpf", out[0])
	hashed, ok := out[1].(string)
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(hashed, "hash:"))
	assert.NotContains(t, hashed, "12345678900")
	assert.Equal(t, 200, out[3])
}

func TestSanitizeKVs_RedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{"s3_secret", "abc", "dangling"})
	assert.Equal(t, []interface{}{"s3_secret", "[REDACTED]", "dangling"}, out)
}

func TestHashValue_Stable(t *testing.T) {
	assert.Equal(t, hashValue("123"), hashValue("123"))
	assert.NotEqual(t, hashValue("123"), hashValue("124"))
	assert.Equal(t, "", hashValue(""))
}
