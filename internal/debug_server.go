package internal

import (
	"chat-gate/repositories"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

const maxInspectRows = 500

type StatsProvider func() map[string]any

type PageData struct {
	Prefix   string
	Prefixes []string
	Items    []repositories.Record
	Stats    map[string]any
	Capped   bool
}

// DebugServer serves a read-only HTML view of the store and of the last
// process sample. It is only started at debug log level.
type DebugServer struct {
	log    *slog.Logger
	server *http.Server
}

func NewDebugServer(log *slog.Logger, db *badger.DB, port int, endpoint string, stats StatsProvider) *DebugServer {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	mux := http.NewServeMux()
	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = repositories.Prefixes()[0]
		}
		data := PageData{Prefix: prefix, Prefixes: repositories.Prefixes(), Stats: map[string]any{}}
		if stats != nil {
			data.Stats = stats()
		}
		err := db.View(func(txn *badger.Txn) error {
			opts := badger.DefaultIteratorOptions
			opts.Prefix = []byte(prefix)
			it := txn.NewIterator(opts)
			defer it.Close()
			for it.Rewind(); it.Valid(); it.Next() {
				if len(data.Items) == maxInspectRows {
					data.Capped = true
					return nil
				}
				item := it.Item()
				val, err := item.ValueCopy(nil)
				if err != nil {
					return err
				}
				data.Items = append(data.Items, repositories.DescribeRecord(string(item.Key()), val))
			}
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err = tmpl.Execute(w, data); err != nil {
			log.Error("Failed to render inspector", "error", err)
		}
	})

	return &DebugServer{
		log: log,
		server: &http.Server{
			Addr:              fmt.Sprintf("0.0.0.0:%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (d *DebugServer) Handler() http.Handler {
	return d.server.Handler
}

// Start listens in the background.
func (d *DebugServer) Start() {
	go func() {
		if err := d.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			d.log.Error("Debug server stopped", "error", err)
		}
	}()
}

func (d *DebugServer) Shutdown(ctx context.Context) error {
	return d.server.Shutdown(ctx)
}
