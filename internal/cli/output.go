package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/r-ising/molzberg-monitor/internal/course"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// RunResult summarizes one run for output.
type RunResult struct {
	CheckedAt  time.Time       `json:"checked_at"`
	SourceURL  string          `json:"source_url"`
	NewCourses []course.Course `json:"new_courses"`
	NewCount   int             `json:"new_count"`
	KnownCount int             `json:"known_count"`
	Notified   bool            `json:"notified"`
	Persisted  bool            `json:"persisted"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *RunResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, result *RunResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func writeText(w io.Writer, result *RunResult, verbose bool) error {
	if result.NewCount == 0 {
		fmt.Fprintln(w, "No new courses found.")
		return nil
	}

	for _, c := range result.NewCourses {
		if c.DateTime != "" {
			fmt.Fprintf(w, "NEW: %s (%s)\n", c.Name, c.DateTime)
		} else {
			fmt.Fprintf(w, "NEW: %s\n", c.Name)
		}
		if verbose {
			fmt.Fprintf(w, "     ID: %s\n", c.ID)
			if c.Price != "" {
				fmt.Fprintf(w, "     Price: %s\n", c.Price)
			}
			if c.Location != "" {
				fmt.Fprintf(w, "     Location: %s\n", c.Location)
			}
			if c.BookingStatus != "" {
				fmt.Fprintf(w, "     Booking: %s\n", c.BookingStatus)
			}
		}
	}

	fmt.Fprintf(w, "\nTotal: %d new, %d known\n", result.NewCount, result.KnownCount)
	return nil
}
