package notifier

import (
	"context"

	"github.com/r-ising/molzberg-monitor/internal/course"
)

// Notifier defines the interface for delivering new-course notifications.
// One call covers a whole run: implementations send at most one message.
type Notifier interface {
	Notify(ctx context.Context, newCourses []course.Course) error
}
