// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/animelar/internal/api"
	"github.com/taibuivan/animelar/internal/platform/config"
	"github.com/taibuivan/animelar/internal/platform/metrics"
	"github.com/taibuivan/animelar/internal/platform/sec"
	"github.com/taibuivan/animelar/internal/store"
	"github.com/taibuivan/animelar/pkg/idgen"
)

const superAdminID = "6526385624"

// client drives the full router in-process.
type client struct {
	t       *testing.T
	handler http.Handler
}

func newClient(t *testing.T, repo store.Repository) *client {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	recorder := metrics.New()

	cfg, err := config.ParseFrom(map[string]string{"STORE_DRIVER": "memory"})
	require.NoError(t, err)

	gateway := store.NewGateway(repo, cfg.SuperAdminID, recorder)
	handlers := api.NewHandlers(api.Dependencies{
		Gateway: gateway,
		Hasher:  sec.NewBcryptHasher(4),
		IDs:     idgen.New(),
		Metrics: recorder,
		Logger:  logger,
	})

	return &client{t: t, handler: api.NewServer(cfg, logger, recorder, handlers).Handler()}
}

func (c *client) do(method, path string, body any) (int, map[string]any) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	c.handler.ServeHTTP(recorder, request)

	decoded := map[string]any{}
	if recorder.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(c.t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder.Code, decoded
}

// field walks nested JSON objects.
func field(body map[string]any, path ...string) any {
	var current any = body
	for _, key := range path {
		object, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = object[key]
	}
	return current
}

func (c *client) register(email string) string {
	c.t.Helper()
	status, body := c.do(http.MethodPost, "/register", map[string]any{"name": "Fan", "email": email, "password": "pw"})
	require.Equal(c.t, http.StatusCreated, status, body)
	return field(body, "user", "id").(string)
}

func (c *client) topup(userID string, amount int64) {
	c.t.Helper()
	status, body := c.do(http.MethodPost, "/topup", map[string]any{"userId": userID, "amount": amount})
	require.Equal(c.t, http.StatusOK, status, body)
}

func (c *client) createAnime(price int64) string {
	c.t.Helper()
	status, body := c.do(http.MethodPost, "/anime", map[string]any{
		"title": "Frieren", "genre": "fantasy", "desc": "after the journey",
		"price": price, "posterUrl": "https://cdn/p.jpg", "addedBy": superAdminID,
	})
	require.Equal(c.t, http.StatusCreated, status, body)
	return field(body, "anime", "id").(string)
}

/*
TestPing returns ok and the server time.
*/
func TestPing(t *testing.T) {
	status, body := newClient(t, store.NewMemoryRepository()).do(http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, body["time"])
}

/*
TestRegister_Duplicate yields user_exists on the second attempt.
*/
func TestRegister_Duplicate(t *testing.T) {
	c := newClient(t, store.NewMemoryRepository())
	c.register("dup@animelar.tv")

	status, body := c.do(http.MethodPost, "/register", map[string]any{"email": "dup@animelar.tv", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "user_exists", body["error"])
	assert.Equal(t, false, body["ok"])
}

/*
TestPurchaseFlow: register, topup 6000, buy at 5900, repeat.
*/
func TestPurchaseFlow(t *testing.T) {
	c := newClient(t, store.NewMemoryRepository())
	userID := c.register("buyer@animelar.tv")
	c.topup(userID, 6000)
	animeID := c.createAnime(5900)

	status, body := c.do(http.MethodPost, "/anime/"+animeID+"/purchase", map[string]any{"userId": userID})
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, true, body["purchased"])
	assert.Equal(t, float64(100), body["newBalance"])
	assert.Equal(t, "Frieren", body["anime"])

	status, body = c.do(http.MethodPost, "/anime/"+animeID+"/purchase", map[string]any{"userId": userID})
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, true, body["alreadyPurchased"])

	_, body = c.do(http.MethodGet, "/user/"+userID+"/balance", nil)
	assert.Equal(t, float64(100), body["balance"])
	assert.Equal(t, []any{animeID}, body["purchasedAnimes"])

	_, body = c.do(http.MethodGet, "/anime/"+animeID, nil)
	assert.Equal(t, float64(1), field(body, "anime", "purchases"))
	assert.Equal(t, float64(5900), field(body, "anime", "revenue"))

	_, body = c.do(http.MethodPost, "/login", map[string]any{"email": "buyer@animelar.tv", "password": "pw"})
	assert.Equal(t, []any{animeID}, field(body, "user", "purchasedAnimes"))
}

/*
TestPurchase_InsufficientBalance returns 402 with amounts.
*/
func TestPurchase_InsufficientBalance(t *testing.T) {
	c := newClient(t, store.NewMemoryRepository())
	userID := c.register("poor@animelar.tv")
	animeID := c.createAnime(2900)

	status, body := c.do(http.MethodPost, "/anime/"+animeID+"/purchase", map[string]any{"userId": userID})
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "insufficient_balance", body["error"])
	assert.Equal(t, float64(2900), body["required"])
	assert.Equal(t, float64(0), body["current"])
}

/*
TestCreateAnime_Prices accepts only 2900 and 5900.
*/
func TestCreateAnime_Prices(t *testing.T) {
	c := newClient(t, store.NewMemoryRepository())

	status, body := c.do(http.MethodPost, "/anime", map[string]any{
		"title": "t", "genre": "g", "desc": "d", "price": 1000, "posterUrl": "p", "addedBy": superAdminID,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid_price", body["error"])
	assert.Equal(t, []any{float64(2900), float64(5900)}, body["allowed"])

	c.createAnime(2900)
	c.createAnime(5900)

	status, body = c.do(http.MethodPost, "/anime", map[string]any{
		"title": "t", "genre": "g", "desc": "d", "price": 2900, "posterUrl": "p", "addedBy": "nobody",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "not_admin", body["error"])
}

/*
TestAds_FeeAndRevenue charges 500 and refuses when the balance is short.
*/
func TestAds_FeeAndRevenue(t *testing.T) {
	c := newClient(t, store.NewMemoryRepository())
	userID := c.register("ads@animelar.tv")
	c.topup(userID, 600)

	status, body := c.do(http.MethodPost, "/ad", map[string]any{"title": "Watch", "imageUrl": "i", "userId": userID})
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, float64(100), body["newBalance"])
	adID := field(body, "ad", "id").(string)

	status, body = c.do(http.MethodPost, "/ad", map[string]any{"title": "Again", "imageUrl": "i", "userId": userID})
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "insufficient_balance", body["error"])

	_, body = c.do(http.MethodGet, "/user/"+userID+"/balance", nil)
	assert.Equal(t, float64(100), body["balance"])

	_, body = c.do(http.MethodGet, "/stats", nil)
	assert.Equal(t, float64(500), field(body, "stats", "totalRevenue"))
	assert.Equal(t, float64(1), field(body, "stats", "totalAds"))

	_, body = c.do(http.MethodGet, "/ads", nil)
	assert.Len(t, body["ads"], 1)

	_, body = c.do(http.MethodPost, "/ad/"+adID+"/view", nil)
	assert.Equal(t, float64(1), body["views"])

	status, body = c.do(http.MethodPost, "/ad/missing/view", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "ad_not_found", body["error"])
}

/*
TestAdmins_SuperAdminOnly covers the hierarchy end to end.
*/
func TestAdmins_SuperAdminOnly(t *testing.T) {
	c := newClient(t, store.NewMemoryRepository())

	status, body := c.do(http.MethodPost, "/add_admin", map[string]any{"userId": "dub-1", "dubbingName": "One", "addedBy": superAdminID})
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, "admin", field(body, "admin", "role"))

	for _, caller := range []string{"dub-1", "random"} {
		status, body = c.do(http.MethodPost, "/add_admin", map[string]any{"userId": "dub-9", "dubbingName": "Nine", "addedBy": caller})
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "only_super_admin_can_add", body["error"])
	}

	status, body = c.do(http.MethodPost, "/banner", map[string]any{"text": "t", "imageUrl": "i", "addedBy": "dub-1"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "only_super_admin_can_add_banners", body["error"])

	status, _ = c.do(http.MethodPost, "/banner", map[string]any{"text": "t", "imageUrl": "i", "addedBy": superAdminID})
	assert.Equal(t, http.StatusCreated, status)

	_, body = c.do(http.MethodGet, "/admins", nil)
	assert.Len(t, body["admins"], 2)

	_, body = c.do(http.MethodGet, "/banners", nil)
	assert.Len(t, body["banners"], 1)
}

/*
TestAddAdmin_SuperAdminWithoutRecord succeeds on an empty admin list.
*/
func TestAddAdmin_SuperAdminWithoutRecord(t *testing.T) {
	repo := store.NewMemoryRepository()
	require.NoError(t, repo.Save(context.Background(), &store.Document{}))
	c := newClient(t, repo)

	status, body := c.do(http.MethodPost, "/add_admin", map[string]any{"userId": "dub-1", "dubbingName": "One", "addedBy": superAdminID})
	assert.Equal(t, http.StatusCreated, status, body)
}

/*
TestEpisodesAndViews exercises creator checks and counters.
*/
func TestEpisodesAndViews(t *testing.T) {
	c := newClient(t, store.NewMemoryRepository())
	animeID := c.createAnime(2900)

	status, body := c.do(http.MethodPost, "/anime/"+animeID+"/episode", map[string]any{"title": "Ep 1", "videoUrl": "v", "addedBy": superAdminID})
	require.Equal(t, http.StatusCreated, status, body)
	assert.Equal(t, float64(1), body["totalEpisodes"])
	assert.Equal(t, float64(1), field(body, "episode", "episodeNumber"))

	status, body = c.do(http.MethodPost, "/anime/"+animeID+"/episode", map[string]any{"title": "Ep 2", "videoUrl": "v", "addedBy": "intruder"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "not_authorized", body["error"])

	_, body = c.do(http.MethodPost, "/anime/"+animeID+"/view", map[string]any{"userId": "anyone"})
	assert.Equal(t, float64(1), body["views"])

	status, body = c.do(http.MethodGet, "/anime/missing", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "anime_not_found", body["error"])

	_, body = c.do(http.MethodGet, "/stats", nil)
	assert.Equal(t, float64(1), field(body, "stats", "totalViews"))
	assert.Len(t, body["topAnimes"], 1)

	_, body = c.do(http.MethodGet, "/admin/"+superAdminID+"/stats", nil)
	animes, ok := body["animes"].([]any)
	require.True(t, ok)
	require.Len(t, animes, 1)
	assert.Equal(t, float64(1), animes[0].(map[string]any)["episodeCount"])

	status, body = c.do(http.MethodGet, "/admin/nobody/stats", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "admin_not_found", body["error"])
}

/*
TestStats_RevenueIdentity: totalRevenue equals ad fees plus purchase revenue.
*/
func TestStats_RevenueIdentity(t *testing.T) {
	c := newClient(t, store.NewMemoryRepository())
	first := c.register("a@animelar.tv")
	second := c.register("b@animelar.tv")
	c.topup(first, 20000)
	c.topup(second, 20000)

	cheap := c.createAnime(2900)
	premium := c.createAnime(5900)

	c.do(http.MethodPost, "/ad", map[string]any{"title": "x", "imageUrl": "i", "userId": first})
	c.do(http.MethodPost, "/ad", map[string]any{"title": "y", "imageUrl": "i", "userId": second})
	c.do(http.MethodPost, "/anime/"+cheap+"/purchase", map[string]any{"userId": first})
	c.do(http.MethodPost, "/anime/"+premium+"/purchase", map[string]any{"userId": first})
	c.do(http.MethodPost, "/anime/"+premium+"/purchase", map[string]any{"userId": second})
	c.do(http.MethodPost, "/anime/"+premium+"/purchase", map[string]any{"userId": second})

	_, body := c.do(http.MethodGet, "/stats", nil)
	assert.Equal(t, float64(2*500+2900+5900*2), field(body, "stats", "totalRevenue"))
	assert.Equal(t, float64(3), field(body, "stats", "totalPurchases"))
	assert.Equal(t, float64(2), field(body, "stats", "totalUsers"))
}

/*
TestMissingFieldsBeforeAuthorization reports presence failures first.
*/
func TestMissingFieldsBeforeAuthorization(t *testing.T) {
	c := newClient(t, store.NewMemoryRepository())

	status, body := c.do(http.MethodPost, "/add_admin", map[string]any{"addedBy": "random"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "missing_fields", body["error"])
	assert.Equal(t, []any{"userId", "dubbingName"}, body["fields"])
}

/*
TestInfrastructureRoutes covers health, readiness, metrics and unknown routes.
*/
func TestInfrastructureRoutes(t *testing.T) {
	c := newClient(t, store.NewMemoryRepository())

	status, body := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	status, body = c.do(http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ready", body["status"])

	status, _ = c.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = c.do(http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not_found", body["error"])
}

// failingRepository simulates an unreachable backend.
type failingRepository struct{ store.MemoryRepository }

func (*failingRepository) Load(context.Context) (*store.Document, error) {
	return nil, errors.New("disk unplugged")
}

func (*failingRepository) Ping(context.Context) error { return errors.New("disk unplugged") }

/*
TestStorageFailure hides the cause and reports degraded readiness.
*/
func TestStorageFailure(t *testing.T) {
	c := newClient(t, &failingRepository{})

	status, body := c.do(http.MethodGet, "/animes", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal_error", body["error"])
	assert.NotContains(t, body, "cause")

	status, body = c.do(http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "degraded", body["status"])
}
