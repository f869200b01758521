package notifier

import (
	"context"
	"fmt"
	"io"

	"github.com/r-ising/molzberg-monitor/internal/course"
)

// DryRunNotifier prints the email that would be sent without sending it.
type DryRunNotifier struct {
	out       io.Writer
	sourceURL string
}

// NewDryRun creates a dry-run notifier writing to out.
func NewDryRun(out io.Writer, sourceURL string) *DryRunNotifier {
	return &DryRunNotifier{out: out, sourceURL: sourceURL}
}

// Notify prints the subject and body of the would-be notification.
func (n *DryRunNotifier) Notify(_ context.Context, newCourses []course.Course) error {
	if len(newCourses) == 0 {
		return nil
	}

	fmt.Fprintf(n.out, "--- Email (dry run) ---\n")
	fmt.Fprintf(n.out, "Subject: %s\n\n", Subject(len(newCourses)))
	fmt.Fprintln(n.out, Body(n.sourceURL, newCourses))
	return nil
}
