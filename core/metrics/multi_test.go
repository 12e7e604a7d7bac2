package metrics

import (
	"errors"
	"testing"
)

type recordSink struct {
	count int
	err   error
}

func (r *recordSink) RecordRun(RunEvent) error {
	r.count++
	return r.err
}

func (r *recordSink) RecordSummary(SummaryEvent) error {
	r.count++
	return nil
}

type runOnlySink struct{ runs int }

func (r *runOnlySink) RecordRun(RunEvent) error {
	r.runs++
	return nil
}

// TestMultiSink ensures events are forwarded to all sinks.
func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	s3 := &runOnlySink{}
	m := NewMultiSink(s1, s2, s3)
	if err := m.RecordRun(RunEvent{}); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if err := m.RecordSummary(SummaryEvent{}); err != nil {
		t.Fatalf("record summary: %v", err)
	}
	if s1.count != 2 || s2.count != 2 || s3.runs != 1 {
		t.Fatalf("events not forwarded")
	}
}

func TestMultiSink_ContinuesAfterError(t *testing.T) {
	boom := errors.New("boom")
	bang := errors.New("bang")
	failing := &recordSink{err: boom}
	after := &runOnlySink{}
	alsoFailing := &recordSink{err: bang}
	m := NewMultiSink(failing, after, alsoFailing)
	err := m.RecordRun(RunEvent{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, boom) || !errors.Is(err, bang) {
		t.Fatalf("expected both errors joined, got %v", err)
	}
	if after.runs != 1 {
		t.Fatal("sink after failure should still be called")
	}
	if alsoFailing.count != 1 {
		t.Fatal("every sink should see the run")
	}
}
