package service

import (
	"context"
	"strings"
	"time"

	"brand-dashboard-be/internal/pkg/logger"
	"brand-dashboard-be/internal/pkg/metrics"
	"brand-dashboard-be/internal/pkg/serverutils"
	"brand-dashboard-be/pkg/events"
)

// timeNow is swapped in tests that need a fixed clock.
var timeNow = func() time.Time {
	return time.Now().UTC()
}

// publishEvent emits a domain event after the state change is committed. A
// failed publish is logged and never fails the request.
func publishEvent(ctx context.Context, publisher events.Publisher, log logger.ILogger, eventType string, data map[string]interface{}) {
	if publisher == nil {
		return
	}
	err := publisher.Publish(ctx, events.New(eventType, data))
	metrics.RecordEvent(eventType, err)
	if err != nil {
		log.Warn("Events", "Failed to publish event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

// parseEnum splits a comma separated filter and checks every value against allowed.
func parseEnum[S ~string](raw, field string, allowed []S) ([]S, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var out []S
	for _, part := range strings.Split(raw, ",") {
		value := S(strings.TrimSpace(part))
		if value == "" {
			continue
		}
		if !contains(allowed, value) {
			return nil, serverutils.BadRequest("Invalid " + field + " filter")
		}
		out = append(out, value)
	}
	return out, nil
}

func contains[S comparable](set []S, v S) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// parseDate accepts RFC 3339 timestamps or plain dates. A plain "to" date covers
// the whole day.
func parseDate(raw, field string, endOfDay bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, serverutils.BadRequest(field + " must be a date (YYYY-MM-DD)")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func dateRange(from, to string) (*time.Time, *time.Time, error) {
	start, err := parseDate(from, "from", false)
	if err != nil {
		return nil, nil, err
	}
	end, err := parseDate(to, "to", true)
	if err != nil {
		return nil, nil, err
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, nil, serverutils.BadRequest("from must not be after to")
	}
	return start, end, nil
}

// errorMessage is what a per-item result reports: the message of an expected
// failure, or the generic message for anything else.
func errorMessage(err error) string {
	if serverutils.StatusOf(err) >= 500 {
		return serverutils.MsgInternalError
	}
	return err.Error()
}

// ExportFile is a rendered CSV download.
type ExportFile struct {
	Filename string
	Content  []byte
}
