package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Greenhouse_Go/internal/achievement"
	"github.com/osse101/Greenhouse_Go/internal/auth"
	"github.com/osse101/Greenhouse_Go/internal/challenge"
	"github.com/osse101/Greenhouse_Go/internal/cooldown"
	"github.com/osse101/Greenhouse_Go/internal/database/memory"
	"github.com/osse101/Greenhouse_Go/internal/domain"
	"github.com/osse101/Greenhouse_Go/internal/event"
	"github.com/osse101/Greenhouse_Go/internal/garden"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewStore()
	bus := event.NewMemoryBus()

	gardenSvc := garden.NewService(store, store, achievement.NewEvaluator(achievement.CountModeProxy),
		cooldown.NewGuard(cooldown.Config{Window: time.Hour}), bus)
	challengeSvc := challenge.NewService(store, store, gardenSvc, bus)
	challenge.NewEventHandler(challengeSvc).Register(bus)

	srv := NewServer(Options{
		Port:           0,
		JWTSecret:      testSecret,
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	}, Services{
		Store:        store,
		Garden:       gardenSvc,
		Achievements: achievement.NewService(store, gardenSvc),
		Challenges:   challengeSvc,
	})
	return srv.Handler()
}

func bearer(t *testing.T, accountID string) string {
	t.Helper()
	token, err := auth.GenerateToken(accountID, testSecret, time.Hour)
	require.NoError(t, err)
	return auth.BearerPrefix + token
}

func send(t *testing.T, h http.Handler, method, path, authorization string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_PublicEndpoints(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := send(t, h, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRoutes_RequireToken(t *testing.T) {
	h := newTestServer(t)

	rec := send(t, h, http.MethodGet, "/api/v1/garden", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"kind":"unauthenticated"`)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRoutes_GardenLifecycle(t *testing.T) {
	h := newTestServer(t)
	token := bearer(t, "acct-7")

	rec := send(t, h, http.MethodGet, "/api/v1/garden", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var g domain.GardenSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	require.Len(t, g.Plants, len(domain.StarterPlants))

	rec = send(t, h, http.MethodPost, "/api/v1/garden/action", token,
		map[string]string{"plantId": g.Plants[0].ID, "actionType": "water"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "new plants start on cooldown")
	assert.Contains(t, rec.Body.String(), `"timeRemaining":60`)

	rec = send(t, h, http.MethodPost, "/api/v1/garden/plants", token,
		map[string]string{"name": "Basil", "type": "herb"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = send(t, h, http.MethodGet, "/api/v1/achievements", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = send(t, h, http.MethodGet, "/api/v1/challenges", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = send(t, h, http.MethodPost, "/api/v1/challenges/participate", token,
		map[string]string{"challengeId": "MISSING"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_OversizedBody(t *testing.T) {
	h := newTestServer(t)
	token := bearer(t, "acct-8")
	send(t, h, http.MethodGet, "/api/v1/garden", token, nil)

	rec := send(t, h, http.MethodPost, "/api/v1/garden/plants", token,
		map[string]string{"name": string(bytes.Repeat([]byte("a"), maxRequestBodyBytes)), "type": "herb"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
