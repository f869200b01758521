package course

import "sort"

// Snapshot is the persisted known-courses state: every course identity
// observed across all prior runs, keyed by Course.ID.
type Snapshot struct {
	Courses   map[string]Course `json:"courses"`
	UpdatedAt string            `json:"updated_at"` // RFC3339 timestamp
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Courses: make(map[string]Course),
	}
}

// Len returns the number of known course identities.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Courses)
}

// DiffResult contains the results of comparing the current extraction
// against the previous snapshot.
type DiffResult struct {
	// NewCourses are current courses whose identity was not previously known,
	// sorted by normalized name then schedule for stable output.
	NewCourses []Course
	// Merged is the union of the previous snapshot and the current courses.
	// Identities already known keep their original record, so FirstSeen
	// survives re-extraction. Nothing is ever pruned.
	Merged *Snapshot
}

// Diff compares current courses against a previous snapshot and returns the
// genuinely new courses plus the merged snapshot to persist. Running Diff
// again with the merged snapshot yields zero new courses.
func Diff(previous *Snapshot, current []Course) *DiffResult {
	if previous == nil {
		previous = NewSnapshot()
	}

	merged := NewSnapshot()
	for id, c := range previous.Courses {
		merged.Courses[id] = c
	}

	result := &DiffResult{
		NewCourses: make([]Course, 0),
		Merged:     merged,
	}

	for _, c := range current {
		if _, known := previous.Courses[c.ID]; !known {
			if _, dup := merged.Courses[c.ID]; !dup {
				result.NewCourses = append(result.NewCourses, c)
			}
		}
		if _, exists := merged.Courses[c.ID]; !exists {
			merged.Courses[c.ID] = c
		}
	}

	sort.Slice(result.NewCourses, func(i, j int) bool {
		a, b := result.NewCourses[i], result.NewCourses[j]
		if na, nb := Normalize(a.Name), Normalize(b.Name); na != nb {
			return na < nb
		}
		return Normalize(a.DateTime) < Normalize(b.DateTime)
	})

	return result
}
