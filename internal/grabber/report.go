package grabber

import (
	"fmt"
	"sort"
	"time"

	"github.com/osse101/DeluxeGrabber_Go/internal/domain"
	"github.com/osse101/DeluxeGrabber_Go/internal/event"
	"github.com/osse101/DeluxeGrabber_Go/internal/harvest"
)

// LocationSummary counts harvests per label for one location or building.
// One harvested source counts once, whatever its quantity.
type LocationSummary struct {
	Location string         `json:"location"`
	Counts   map[string]int `json:"counts"`
}

// Lines formats the summary the way the trace log prints it: "3 Eggs".
// Labels are sorted for stable output.
func (s LocationSummary) Lines() []string {
	labels := make([]string, 0, len(s.Counts))
	for label := range s.Counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	lines := make([]string, 0, len(labels))
	for _, label := range labels {
		lines = append(lines, fmt.Sprintf("%d %s", s.Counts[label], plural(label, s.Counts[label])))
	}
	return lines
}

func plural(name string, n int) string {
	if n != 1 {
		return name + "s"
	}
	return name
}

// PassReport is the outcome of one collection pass. Capacity and
// misconfiguration conditions are reported here rather than as errors.
type PassReport struct {
	Pass              string            `json:"pass"`
	Items             map[string]int    `json:"items"` // item name -> units collected
	Summaries         []LocationSummary `json:"summaries,omitempty"`
	CollectorsFull    int               `json:"collectors_full"`
	PlacementFailures int               `json:"placement_failures"`
	Aborted           bool              `json:"aborted"`
	Reason            string            `json:"reason,omitempty"`
	Duration          time.Duration     `json:"-"`
	DurationMs        int64             `json:"duration_ms"`
}

func newPassReport(pass string) *PassReport {
	return &PassReport{Pass: pass, Items: make(map[string]int)}
}

// Total returns the number of units collected
func (r *PassReport) Total() int {
	n := 0
	for _, units := range r.Items {
		n += units
	}
	return n
}

func (r *PassReport) abort(reason string) {
	r.Aborted = true
	r.Reason = reason
}

func (r *PassReport) finish(start time.Time) {
	r.Duration = time.Since(start)
	r.DurationMs = r.Duration.Milliseconds()
}

// summary returns the summary for a location, creating it on first use
func (r *PassReport) summary(location string) *LocationSummary {
	for i := range r.Summaries {
		if r.Summaries[i].Location == location {
			return &r.Summaries[i]
		}
	}
	r.Summaries = append(r.Summaries, LocationSummary{Location: location, Counts: make(map[string]int)})
	return &r.Summaries[len(r.Summaries)-1]
}

// record folds one resolution into the report
func (r *PassReport) record(location string, out harvest.Outcome) {
	switch out.Status {
	case harvest.StatusHarvested:
		for _, s := range out.Items {
			r.Items[s.Name] += s.Quantity
		}
		r.summary(location).Counts[out.Label]++
	case harvest.StatusPlacementFailed:
		r.PlacementFailures++
	}
}

// Event converts the report into a collection-completed event
func (r *PassReport) Event(runID string) event.Event {
	items := make(map[string]int, len(r.Items))
	for k, v := range r.Items {
		items[k] = v
	}
	return event.NewCollectionCompletedEvent(event.CollectionCompletedPayloadV1{
		Pass:              r.Pass,
		RunID:             runID,
		Items:             items,
		CollectorsFull:    r.CollectorsFull,
		PlacementFailures: r.PlacementFailures,
		Aborted:           r.Aborted,
		Reason:            r.Reason,
		DurationMs:        r.DurationMs,
	})
}

// DayReport collects the pass reports of one day boundary
type DayReport struct {
	RunID      string        `json:"run_id"`
	DaysPlayed int           `json:"days_played"`
	Season     domain.Season `json:"season"`
	DayOfMonth int           `json:"day_of_month"`
	Passes     []*PassReport `json:"passes"`
}

// Pass returns the report of a named pass, or nil
func (d *DayReport) Pass(name string) *PassReport {
	for _, p := range d.Passes {
		if p.Pass == name {
			return p
		}
	}
	return nil
}
