package extractor

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/r-ising/molzberg-monitor/internal/course"
)

// Decode parses model output into course records. The raw text may be wrapped
// in markdown code fences, which some models emit despite instructions.
// Records are stamped with their identity and deduplicated; a record without
// a name is invalid and fails the whole extraction.
func Decode(raw string, seen time.Time) ([]course.Course, error) {
	raw = stripFences(raw)

	var courses []course.Course
	if err := json.Unmarshal([]byte(raw), &courses); err != nil {
		return nil, fmt.Errorf("parsing extraction response: %w", err)
	}

	seenIDs := make(map[string]bool)
	unique := make([]course.Course, 0, len(courses))
	for i := range courses {
		c := courses[i]
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("invalid course structure: record %d has no name", i+1)
		}

		c.FirstSeen = time.Time{} // identity fields only come from the page
		c.Stamp(seen)

		if !seenIDs[c.ID] {
			seenIDs[c.ID] = true
			unique = append(unique, c)
		}
	}

	return unique, nil
}

// stripFences removes a surrounding markdown code block if present.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
