package cli

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"time-travel-tasks/internal/config"
)

func testConfig(backend string, skipSeed bool) *config.Config {
	cfg := config.NewConfig()
	cfg.HTTP.Address = "127.0.0.1:0"
	cfg.HTTP.ShutdownTimeout = 5 * time.Second
	cfg.Store.Backend = backend
	cfg.Store.SkipSeed = skipSeed
	return cfg
}

func startTestApp(t *testing.T, cfg *config.Config) string {
	t.Helper()

	app, err := NewApp(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	addr, err := app.Listen()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("app did not shut down")
		}
	})

	return "http://" + addr.String()
}

func countTasks(t *testing.T, baseURL string) int {
	t.Helper()
	resp, err := http.Get(baseURL + "/tasks")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tasks []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tasks))
	return len(tasks)
}

func TestApp_Seeding(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		skipSeed bool
		expected int
	}{
		{"memory seeded", config.BackendMemory, false, 5},
		{"memory empty", config.BackendMemory, true, 0},
		{"sqlite seeded", config.BackendSQLite, false, 5},
		{"sqlite empty", config.BackendSQLite, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseURL := startTestApp(t, testConfig(tt.backend, tt.skipSeed))
			assert.Equal(t, tt.expected, countTasks(t, baseURL))
		})
	}
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(config.BackendMemory, false), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, app.Run(ctx))
}

func TestApp_ListenError(t *testing.T) {
	cfg := testConfig(config.BackendMemory, true)
	cfg.HTTP.Address = "127.0.0.1:-1"

	app, err := NewApp(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer app.Close()

	_, err = app.Listen()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen on 127.0.0.1:-1")
}

func TestNewApp_RepositoryError(t *testing.T) {
	cfg := testConfig(config.BackendSQLite, false)
	cfg.Store.SQLiteDSN = t.TempDir() + "/missing/dir/tasks.db"

	_, err := NewApp(context.Background(), cfg, slog.New(slog.DiscardHandler))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create repository")
}
