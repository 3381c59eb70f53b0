package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iliyamo/cine-app/internal/config"
)

func newContext(method, target, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.7")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	return c, rec
}

func cacheConfig() config.CacheConfig {
	return config.CacheConfig{
		Enabled:     true,
		Methods:     map[string]bool{"GET": true},
		TTL:         time.Minute,
		KeyStrategy: "route_query",
		Prefix:      "cine:cache",
	}
}

func TestCacheDisabledIsPassthrough(t *testing.T) {
	called := false
	h := NewRedisCache(config.CacheConfig{}, nil)(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})
	c, rec := newContext(http.MethodGet, "/v1/cinemas", "/v1/cinemas")
	require.NoError(t, h(c))
	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestCacheHitServesStoredResponse(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cfg := cacheConfig()
	c, rec := newContext(http.MethodGet, "/v1/cinemas?x=1", "/v1/cinemas")

	hdr := http.Header{"Content-Type": {"application/json"}}
	payload, err := encodePayload(http.StatusOK, hdr, []byte(`{"items":[]}`))
	require.NoError(t, err)
	mock.ExpectGet(cacheKeyFrom(cfg, c)).SetVal(string(payload))

	h := NewRedisCache(cfg, rdb)(func(c echo.Context) error {
		t.Fatal("handler must not run on a cache hit")
		return nil
	})
	require.NoError(t, h(c))
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"items":[]}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheMissRunsHandler(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	cfg := cacheConfig()
	c, rec := newContext(http.MethodGet, "/v1/cinemas", "/v1/cinemas")
	mock.ExpectGet(cacheKeyFrom(cfg, c)).RedisNil()

	h := NewRedisCache(cfg, rdb)(func(c echo.Context) error {
		return c.String(http.StatusOK, "fresh")
	})
	require.NoError(t, h(c))
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))
	assert.Equal(t, "fresh", rec.Body.String())
}

func TestCacheSkipsUnlistedMethods(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	c, rec := newContext(http.MethodPost, "/v1/cinemas", "/v1/cinemas")
	h := NewRedisCache(cacheConfig(), rdb)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheKeyIncludesPathParams(t *testing.T) {
	cfg := cacheConfig()
	a, _ := newContext(http.MethodGet, "/v1/cinemas/1", "/v1/cinemas/:id")
	a.SetParamNames("id")
	a.SetParamValues("1")
	b, _ := newContext(http.MethodGet, "/v1/cinemas/2", "/v1/cinemas/:id")
	b.SetParamNames("id")
	b.SetParamValues("2")
	assert.NotEqual(t, cacheKeyFrom(cfg, a), cacheKeyFrom(cfg, b))
	assert.Contains(t, cacheKeyFrom(cfg, a), "cine:cache:")
}

func TestDecodePayloadRejectsTruncatedInput(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{0, 0, 0})
	assert.False(t, ok)
	_, _, _, ok = decodePayload([]byte{0, 0, 0, 200, 0, 0, 0, 50, '{'})
	assert.False(t, ok)

	payload, err := encodePayload(http.StatusOK, nil, []byte("body"))
	require.NoError(t, err)
	status, _, body, ok := decodePayload(payload)
	assert.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "body", string(body))
}

func TestBuildRateKey(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/movie/tt1", "/movie/:movieId")
	cfg := config.RateLimitConfig{Prefix: "rl"}

	cfg.KeyStrategy = "ip"
	assert.Equal(t, "rl:ip:10.0.0.7", buildRateKey(cfg, c))
	cfg.KeyStrategy = "route"
	assert.Equal(t, "rl:route:GET /movie/:movieId", buildRateKey(cfg, c))
	cfg.KeyStrategy = ""
	assert.Equal(t, "rl:ip:10.0.0.7:route:GET /movie/:movieId", buildRateKey(cfg, c))
}

func TestAsInt64(t *testing.T) {
	assert.Equal(t, int64(3), asInt64(int64(3)))
	assert.Equal(t, int64(4), asInt64(float64(4)))
	assert.Equal(t, int64(5), asInt64("5"))
	assert.Equal(t, int64(0), asInt64("x"))
	assert.Equal(t, int64(0), asInt64(nil))
}

func TestTokenBucketDisabledIsPassthrough(t *testing.T) {
	h := NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil, zap.NewNop())(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	c, rec := newContext(http.MethodGet, "/", "/")
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := echo.New()
	e.Use(RequestLogger(zap.New(core)))
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/healthz", fields["uri"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}
