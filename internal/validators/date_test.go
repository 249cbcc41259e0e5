package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDate(t *testing.T) {
	for _, ok := range []string{"2024-01-01", "2024-02-29", " 1990-12-31 "} {
		assert.True(t, IsDate(ok), ok)
	}
	for _, bad := range []string{"", "2024-1-1", "01/02/2024", "2023-02-29", "2024-13-01", "2024-01-01T00:00:00"} {
		assert.False(t, IsDate(bad), bad)
	}
}
