package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/eazybank-api/internal/cache"
	"github.com/phrazzld/eazybank-api/internal/config"
	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/dto"
	"github.com/phrazzld/eazybank-api/internal/platform/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMobile = "4354437687"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "info",
			LogFormat:              "json",
			ShutdownTimeoutSeconds: 1,
			CORSAllowedOrigins:     []string{"https://eazybank.example"},
		},
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
		Cache:    config.CacheConfig{TTLSeconds: 60},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mapCache is an in-process cache.Cache that counts reads.
type mapCache struct {
	mu     sync.Mutex
	data   map[string][]byte
	reads  int
	closed bool
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string][]byte)}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reads++
	v, ok := c.data[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func (c *mapCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func TestNewApplication_MemoryStores(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(), quietLogger(), nil, nil)
	require.NoError(t, err)

	assert.IsType(t, &memory.CustomerStore{}, app.customerStore)
	assert.IsType(t, &memory.AccountStore{}, app.accountStore)
	assert.IsType(t, memory.NewLoanStore(nil), app.loanStore)
	assert.IsType(t, memory.NewCardStore(nil), app.cardStore)
	assert.NotNil(t, app.accountService)
	assert.NotNil(t, app.loanService)
	assert.NotNil(t, app.cardService)
}

func TestNewApplication_CachedStores(t *testing.T) {
	c := newMapCache()
	app, err := newApplication(context.Background(), testConfig(), quietLogger(), nil, c)
	require.NoError(t, err)

	assert.IsType(t, &cache.NumberedStore[domain.Loan, *domain.Loan]{}, app.loanStore)
	assert.IsType(t, &cache.NumberedStore[domain.Card, *domain.Card]{}, app.cardStore)

	ctx := context.Background()
	require.NoError(t, app.loanService.CreateLoan(ctx, testMobile))
	first, err := app.loanService.FetchLoan(ctx, testMobile)
	require.NoError(t, err)
	second, err := app.loanService.FetchLoan(ctx, testMobile)
	require.NoError(t, err)
	assert.Equal(t, first.LoanNumber, second.LoanNumber)
	assert.NotZero(t, c.reads)

	app.cleanup()
	assert.True(t, c.closed, "cleanup closes the cache")
}

func TestSetupRouter(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(), quietLogger(), nil, nil)
	require.NoError(t, err)
	router := app.setupRouter()

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"UP"}`, rec.Body.String())
	})

	t.Run("routes reach the services", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/cards/create?mobileNumber="+testMobile, nil))
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cards/fetch?mobileNumber="+testMobile, nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var card dto.CardsDto
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &card))
		assert.Equal(t, testMobile, card.MobileNumber)
		assert.Len(t, card.CardNumber, 12)
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/loans/create", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/loans/update", nil)
		req.Header.Set("Origin", "https://eazybank.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, "https://eazybank.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestServe_GracefulShutdown(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(), quietLogger(), nil, nil)
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, listener, app.setupRouter()) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestSetupHelpers_MemoryDefaults(t *testing.T) {
	cfg := testConfig()
	ctx := context.Background()

	db, err := setupAppDatabase(ctx, cfg, quietLogger())
	assert.NoError(t, err)
	assert.Nil(t, db)

	c, err := setupAppCache(ctx, cfg, quietLogger())
	assert.NoError(t, err)
	assert.Nil(t, c)

	err = runMigrations(ctx, cfg, "up", quietLogger())
	assert.ErrorContains(t, err, "database.driver=postgres")
}
