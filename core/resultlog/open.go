package resultlog

import "fmt"

// Backend names accepted by Open.
const (
	BackendJSONL         = "jsonl"
	BackendRotatingJSONL = "jsonl_rotating"
	BackendSQLite        = "sqlite"
	BackendNone          = "none"
)

// Rotation configures RotatingJSONLStore.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Open creates the store for backend at path. BackendNone returns a nil
// store and no error.
func Open(backend, path string, rot Rotation) (Store, error) {
	switch backend {
	case BackendJSONL:
		return NewJSONLStore(path)
	case BackendRotatingJSONL:
		return NewRotatingJSONLStore(path, rot.MaxSizeMB, rot.MaxBackups, rot.MaxAgeDays)
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown result log backend %s", backend)
	}
}
