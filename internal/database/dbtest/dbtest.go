// Package dbtest provides throwaway in-memory databases for tests.
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/emilythestrangee/yanews/internal/database"
)

var seq atomic.Int64

// New returns a migrated gorm handle backed by a private in-memory SQLite
// database that is closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	return Service(t).GetDB()
}

// Service is New wrapped in the database.Service used by the server.
func Service(t testing.TB) database.Service {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, seq.Add(1))

	svc, err := database.Open(sqlite.Open(dsn), zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := svc.GetDB().DB()
	if err != nil {
		t.Fatalf("test database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = svc.Close() })
	return svc
}
