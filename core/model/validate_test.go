package model

import (
	"errors"
	"math"
	"testing"
)

func TestValidateValues(t *testing.T) {
	if err := ValidateValues("job", []float64{0, 1, 2.5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateValues("job", nil); err != nil {
		t.Fatalf("empty input should be valid: %v", err)
	}
	cases := [][]float64{
		{1, -1},
		{math.NaN()},
		{math.Inf(1)},
	}
	for _, c := range cases {
		if err := ValidateValues("group", c); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%v: expected ErrInvalidInput, got %v", c, err)
		}
	}
}

func TestValidateProcessorsAndCapacity(t *testing.T) {
	if err := ValidateProcessors(0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for 0 processors, got %v", err)
	}
	if err := ValidateProcessors(1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateCapacity(-0.5); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for negative capacity, got %v", err)
	}
	if err := ValidateCapacity(math.NaN()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for NaN capacity, got %v", err)
	}
	if err := ValidateCapacity(0); err != nil {
		t.Errorf("zero capacity should be valid: %v", err)
	}
}

func TestRunKindString(t *testing.T) {
	for _, k := range []RunKind{KindMakespan, KindAttendance} {
		if ParseRunKind(k.String()) != k {
			t.Errorf("round trip failed for %v", k)
		}
	}
	if RunKind(0).String() != "unknown" {
		t.Errorf("expected unknown")
	}
}

func TestRunKindNames(t *testing.T) {
	names := map[RunKind]string{KindMakespan: "makespan", KindAttendance: "attendance"}
	for k, want := range names {
		b, err := k.MarshalText()
		if err != nil || string(b) != want {
			t.Errorf("MarshalText(%d) = %q, %v; want %q", int(k), b, err, want)
		}
		var got RunKind
		if err := got.UnmarshalText([]byte(want)); err != nil || got != k {
			t.Errorf("UnmarshalText(%q) = %v, %v", want, got, err)
		}
	}
	var k RunKind
	if err := k.UnmarshalText([]byte("bogus")); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}
