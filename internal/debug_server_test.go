package internal

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func TestDebugServer_Lists_Entries_Under_Prefix(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	req.NoError(db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("msg-id:42"), []byte("msg:abc"))
	}))

	debug := NewDebugServer(slog.Default(), db, 0, "/inspect", func() map[string]any {
		return map[string]any{"goroutines": 12}
	})
	recorder := httptest.NewRecorder()
	debug.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/inspect?prefix=msg-id:", nil))

	req.Equal(http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	req.True(strings.Contains(body, "message index"))
	req.True(strings.Contains(body, "msg:abc"))
	req.True(strings.Contains(body, "goroutines"))
}
