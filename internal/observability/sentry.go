package observability

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/BruksfildServices01/clinica-api/internal/config"
)

// InitSentry só liga o cliente quando SENTRY_DSN está definido; sem ele,
// CaptureError vira no-op.
func InitSentry(cfg *config.Config) (flush func(), err error) {
	if cfg.SentryDSN == "" {
		return func() {}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		ServerName:       cfg.ServiceName,
		AttachStacktrace: true,
	}); err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}

// CaptureError envia o erro com as tags dadas. Nunca passe CPF ou nome
// de paciente em tags.
func CaptureError(ctx context.Context, err error, tags map[string]string) {
	if err == nil {
		return
	}
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		hub.CaptureException(err)
	})
}
