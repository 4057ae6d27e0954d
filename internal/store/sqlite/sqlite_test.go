package sqlite

import (
	"context"
	"testing"

	"github.com/memoirhq/memoir-backend/internal/store"
	"github.com/memoirhq/memoir-backend/internal/store/storetest"
)

func makeSQLiteStore(t *testing.T) store.Store {
	t.Helper()
	db, err := Open(t.TempDir() + "/memoir.db")
	if err != nil {
		t.Fatalf("sqlite open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Bootstrap(context.Background(), db); err != nil {
		t.Fatalf("sqlite bootstrap: %v", err)
	}
	return NewWithDB(db)
}

func TestSQLiteStore_Compliance(t *testing.T) {
	storetest.Run(t, makeSQLiteStore)
}
