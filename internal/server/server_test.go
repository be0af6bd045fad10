package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DeluxeGrabber_Go/internal/catalog"
	"github.com/osse101/DeluxeGrabber_Go/internal/config"
	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/event"
	"github.com/osse101/DeluxeGrabber_Go/internal/farmer"
	"github.com/osse101/DeluxeGrabber_Go/internal/grabber"
	"github.com/osse101/DeluxeGrabber_Go/internal/tuning"
	"github.com/osse101/DeluxeGrabber_Go/internal/worker"
	"github.com/osse101/DeluxeGrabber_Go/internal/world"
)

const testAPIKey = "secret-key"

func newTestRouter(t *testing.T) (http.Handler, *world.World) {
	t.Helper()
	w := world.New(1, tuning.Defaults())
	farm := world.NewLocation("Farm")
	farm.SetObject(domain.Tile(0, 0), w.NewCollector(165, "Auto-Grabber"))
	w.AddLocation(farm)
	w.AddLocation(world.NewLocation("Forest"))

	bus := event.NewMemoryBus()
	actor := farmer.New(farmer.Profile{Location: "Farm"}, bus)
	svc := grabber.NewService(w, actor, config.NewMemoryStore(config.DefaultGrabberSettings()), catalog.Default(), bus)
	svc.Register(bus)

	pool := worker.NewPool(1, 8)
	pool.Start()
	t.Cleanup(pool.Stop)

	return NewRouter(Options{APIKey: testAPIKey, ServiceName: "deluxe-grabber", Version: "test"}, svc, pool), w
}

func do(h http.Handler, method, path, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if key != "" {
		req.Header.Set(HeaderAPIKey, key)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Auth(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		path   string
		key    string
		status int
	}{
		{"Valid API Key", "/api/v1/config", testAPIKey, http.StatusOK},
		{"Invalid API Key", "/api/v1/config", "wrong-key", http.StatusUnauthorized},
		{"Missing API Key", "/api/v1/collectors", "", http.StatusUnauthorized},
		{"Public Path - Healthz", "/healthz", "", http.StatusOK},
		{"Public Path - Metrics", "/metrics", "", http.StatusOK},
		{"Public Path - Version", "/version", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(router, http.MethodGet, tt.path, tt.key, "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(router, http.MethodGet, "/healthz", "", "")

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueDeny, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerNoReferrer, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRouter_SwaggerIsPublic(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(router, http.MethodGet, "/swagger/index.html", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")
}

func TestRouter_Commands(t *testing.T) {
	router, w := newTestRouter(t)

	rec := do(router, http.MethodPut, "/api/v1/player/location", testAPIKey, `{"location":"forest","x":2,"y":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(router, http.MethodGet, "/api/v1/player/location", testAPIKey, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"location":"Forest"`)

	rec = do(router, http.MethodPost, "/api/v1/forager", testAPIKey, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"GlobalForageMap":"Forest"`)

	rec = do(router, http.MethodPost, "/api/v1/locations/Farm/objects", testAPIKey,
		`{"objects":[{"x":4,"y":4,"item_id":430,"name":"Truffle"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, w.Locations[0].ObjectAt(domain.Tile(4, 4)), "truffle is grabbed by the farm collector")

	rec = do(router, http.MethodPost, "/api/v1/day", testAPIKey, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"days_played":2`)

	rec = do(router, http.MethodGet, "/api/v1/collectors", testAPIKey, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Truffle"`)
}

func TestRouter_PlaceOntoCollector(t *testing.T) {
	router, w := newTestRouter(t)

	rec := do(router, http.MethodPost, "/api/v1/locations/Farm/objects", testAPIKey,
		`{"objects":[{"x":0,"y":0,"item_id":390,"name":"Stone"}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "occupied")
	assert.True(t, w.Locations[0].ObjectAt(domain.Tile(0, 0)).IsCollector())
}

func TestRouter_UnknownLocation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(router, http.MethodPost, "/api/v1/locations/Frm/objects", testAPIKey,
		`{"objects":[{"item_id":430,"name":"Truffle"}]}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "did you mean")
}

func TestSuspiciousActivityDetector_RateLimit(t *testing.T) {
	d := NewSuspiciousActivityDetector(2)
	now := time.Now()
	d.now = func() time.Time { return now }

	assert.True(t, d.RecordRequest("1.2.3.4"))
	assert.True(t, d.RecordRequest("1.2.3.4"))
	assert.False(t, d.RecordRequest("1.2.3.4"))
	assert.True(t, d.RecordRequest("5.6.7.8"))

	now = now.Add(RateWindow + time.Second)
	assert.True(t, d.RecordRequest("1.2.3.4"))
}

func TestRateLimitMiddleware(t *testing.T) {
	d := NewSuspiciousActivityDetector(1)
	h := RateLimitMiddleware(d)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	h.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	second := httptest.NewRecorder()
	h.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
