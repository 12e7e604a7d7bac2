package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/approx/core/metrics"
	"github.com/kilianp07/approx/core/model"
)

func TestInfluxSink_RecordRun(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	defer sink.Close()
	now := time.Now()
	ev := coremetrics.RunEvent{
		RunID:         "run-1",
		Kind:          model.KindAttendance,
		Size:          5,
		Heuristic:     55,
		Exact:         60,
		HasExact:      true,
		Ratio:         55.0 / 60.0,
		HeuristicTime: 3 * time.Microsecond,
		ExactTime:     40 * time.Microsecond,
		Passed:        true,
		Time:          now,
	}
	if err := sink.RecordRun(ev); err != nil {
		t.Fatalf("record error: %v", err)
	}
	p := write.NewPointWithMeasurement("approx_run").
		AddTag("kind", "attendance").
		AddTag("run_id", "run-1").
		AddTag("passed", "true").
		AddField("size", 5).
		AddField("heuristic", 55.0).
		AddField("heuristic_us", int64(3)).
		AddField("exact", 60.0).
		AddField("ratio", 0.917).
		AddField("exact_us", int64(40)).
		SetTime(now)
	expected := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))
	if strings.TrimSpace(body) != expected {
		t.Errorf("unexpected body: %s\nwant: %s", body, expected)
	}
}

func TestInfluxSink_RecordSummary(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL+"/api/v2/write", "token", "org", "bucket")
	defer sink.Close()
	err := sink.RecordSummary(coremetrics.SummaryEvent{Kind: model.KindMakespan, Runs: 5, Passed: 5, RatioMin: 1, RatioMax: 1.25, RatioMean: 1.05, Time: time.Now()})
	if err != nil {
		t.Fatalf("record error: %v", err)
	}
	if !strings.HasPrefix(body, "approx_suite,kind=makespan ") {
		t.Errorf("unexpected body: %s", body)
	}
	if !strings.Contains(body, "runs=5i") {
		t.Errorf("missing runs field: %s", body)
	}
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			called = true
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(srv.URL+"/api/v2/write", "tok", "org", "bucket")
	if _, ok := sink.(*InfluxSink); ok {
		t.Fatalf("expected NopSink on failing health check")
	}
	if !called {
		t.Fatalf("health endpoint not queried")
	}
}
