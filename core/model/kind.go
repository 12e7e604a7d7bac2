package model

import "fmt"

// RunKind identifies which problem a harness run solved.
type RunKind int

const (
	// KindMakespan marks an LPT scheduling run.
	KindMakespan RunKind = iota + 1
	// KindAttendance marks a greedy attendance run.
	KindAttendance
)

// String returns a human-readable representation of the run kind.
func (k RunKind) String() string {
	switch k {
	case KindMakespan:
		return "makespan"
	case KindAttendance:
		return "attendance"
	default:
		return "unknown"
	}
}

// ParseRunKind maps the textual form back to a RunKind. Unknown names yield 0.
func ParseRunKind(s string) RunKind {
	switch s {
	case "makespan":
		return KindMakespan
	case "attendance":
		return KindAttendance
	default:
		return 0
	}
}

// MarshalText encodes the kind by name so logs stay readable.
func (k RunKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind written by MarshalText.
func (k *RunKind) UnmarshalText(b []byte) error {
	parsed := ParseRunKind(string(b))
	if parsed == 0 {
		return fmt.Errorf("unknown run kind %q", string(b))
	}
	*k = parsed
	return nil
}
