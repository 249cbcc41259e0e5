package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "DATABASE_DRIVER", "PHOTO_STORAGE", "CORS_ORIGINS", "ANNOTATION_CLIENT_EPOCH"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "local", cfg.PhotoStorage)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.AnnotationClientEpoch)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8081")
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("CORS_ORIGINS", "http://a.local, http://b.local ,")
	t.Setenv("ANNOTATION_CLIENT_EPOCH", "true")

	cfg := Load()
	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORSOrigins)
	assert.True(t, cfg.AnnotationClientEpoch)
}
