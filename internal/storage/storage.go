package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/r-ising/molzberg-monitor/internal/course"
)

// DefaultStateFile is where the known-courses snapshot lives unless overridden.
const DefaultStateFile = "state/known_courses.json"

// Store handles persistence of the known-courses snapshot. The snapshot is
// read once at run start and written at most once at run end.
type Store struct {
	path string
}

// New creates a Store for the given state file path, creating the parent
// directory if needed.
func New(path string) (*Store, error) {
	if path == "" {
		path = DefaultStateFile
	}

	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating state directory: %w", err)
		}
	}

	return &Store{path: path}, nil
}

// Path returns the resolved state file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the snapshot from disk. A missing file is not an error: the
// first run starts from an empty snapshot. A file that exists but does not
// parse is an error, so a corrupt state file never silently re-notifies
// every course.
func (s *Store) Load() (*course.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return course.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	var snapshot course.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w", s.path, err)
	}

	if snapshot.Courses == nil {
		snapshot.Courses = make(map[string]course.Course)
	}

	return &snapshot, nil
}

// Save writes the snapshot to disk, stamping UpdatedAt.
func (s *Store) Save(snapshot *course.Snapshot) error {
	snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}

	return nil
}
