package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinica-api/internal/config"
	"github.com/BruksfildServices01/clinica-api/internal/logger"
)

func TestSetupTracing_DisabledByDefault(t *testing.T) {
	shutdown, err := SetupTracing(context.Background(), &config.Config{ServiceName: "clinica-api"}, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupTracing_RejectsUnknownExporter(t *testing.T) {
	_, err := SetupTracing(context.Background(), &config.Config{TracingExporter: "jaeger"}, logger.Nop())
	assert.Error(t, err)
}

func TestSentry_NoDSNIsNoop(t *testing.T) {
	flush, err := InitSentry(&config.Config{})
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		CaptureError(context.Background(), errors.New("rename failed"), map[string]string{"operation": "rename"})
		flush()
	})
}
