// Package dbtest abre bancos sqlite em memória para os testes dos outros pacotes.
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinica-api/internal/db"
)

var seq atomic.Int64

// New devolve um banco migrado e isolado por teste, com FKs ligadas.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf(
		"file:testdb_%s_%d_%d?mode=memory&cache=shared&_foreign_keys=on",
		name, time.Now().UnixNano(), seq.Add(1),
	)

	gdb, err := db.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// o banco em memória some quando a última conexão fecha
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxIdleTime(0)
	sqlDB.SetConnMaxLifetime(0)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}
	return gdb
}
