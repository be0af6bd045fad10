package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/event"
)

func TestEventMetricsCollector_CollectionCompleted(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))

	eggs := ItemsCollected.WithLabelValues("test-buildings", "Egg")
	full := CollectorsFull.WithLabelValues("test-buildings")
	aborted := PassesAborted.WithLabelValues("test-buildings", "collector_full")
	beforeEggs := testutil.ToFloat64(eggs)
	beforeFull := testutil.ToFloat64(full)
	beforeAborted := testutil.ToFloat64(aborted)

	err := bus.Publish(context.Background(), event.NewCollectionCompletedEvent(event.CollectionCompletedPayloadV1{
		Pass:           "test-buildings",
		Items:          map[string]int{"Egg": 4},
		CollectorsFull: 1,
		Aborted:        true,
		Reason:         "collector_full",
		DurationMs:     3,
	}))

	require.NoError(t, err)
	assert.Equal(t, beforeEggs+4, testutil.ToFloat64(eggs))
	assert.Equal(t, beforeFull+1, testutil.ToFloat64(full))
	assert.Equal(t, beforeAborted+1, testutil.ToFloat64(aborted))
}

func TestEventMetricsCollector_Experience(t *testing.T) {
	collector := NewEventMetricsCollector()
	xp := ExperienceAwarded.WithLabelValues(string(domain.SkillForaging))
	levels := SkillLevelUps.WithLabelValues(string(domain.SkillForaging))
	beforeXP := testutil.ToFloat64(xp)
	beforeLevels := testutil.ToFloat64(levels)

	require.NoError(t, collector.HandleEvent(context.Background(), event.NewExperienceAwardedEvent(domain.SkillForaging, 7, 107)))
	require.NoError(t, collector.HandleEvent(context.Background(), event.NewSkillLevelUpEvent(domain.SkillForaging, 0, 1)))

	assert.Equal(t, beforeXP+7, testutil.ToFloat64(xp))
	assert.Equal(t, beforeLevels+1, testutil.ToFloat64(levels))
}

func TestEventMetricsCollector_DecodesMapPayload(t *testing.T) {
	collector := NewEventMetricsCollector()
	added := ObjectsAdded.WithLabelValues("Farm")
	before := testutil.ToFloat64(added)

	evt := event.Event{
		Type: event.ObjectsAdded,
		Payload: map[string]interface{}{
			"location": "Farm",
			"objects":  []interface{}{map[string]interface{}{"item_id": 430, "name": "Truffle"}},
		},
	}

	require.NoError(t, collector.HandleEvent(context.Background(), evt))
	assert.Equal(t, before+1, testutil.ToFloat64(added))
}

func TestEventMetricsCollector_BadPayload(t *testing.T) {
	collector := NewEventMetricsCollector()
	errs := EventHandlerErrors.WithLabelValues(string(event.CollectionCompleted))
	before := testutil.ToFloat64(errs)

	err := collector.HandleEvent(context.Background(), event.Event{Type: event.CollectionCompleted, Payload: "not a payload"})

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(errs))
}

func TestMiddleware_RecordsStatus(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/teapot", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}
