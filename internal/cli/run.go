package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/r-ising/molzberg-monitor/internal/course"
	"github.com/r-ising/molzberg-monitor/internal/extractor"
	"github.com/r-ising/molzberg-monitor/internal/fetcher"
	"github.com/r-ising/molzberg-monitor/internal/logger"
	"github.com/r-ising/molzberg-monitor/internal/notifier"
)

// pageFetcher is the slice of fetcher.Fetcher the pipeline needs.
type pageFetcher interface {
	URL() string
	FetchPage(ctx context.Context) (string, error)
}

// stateStore is the slice of storage.Store the pipeline needs.
type stateStore interface {
	Path() string
	Load() (*course.Snapshot, error)
	Save(*course.Snapshot) error
}

// pipeline wires one run together. All steps are sequential; any error aborts
// the run before any state is written, so a failed extraction can never
// corrupt the known-courses file or trigger a false notification.
type pipeline struct {
	fetcher pageFetcher
	extract extractor.Extractor
	notify  notifier.Notifier
	store   stateStore
	persist bool
}

// run executes the pipeline and returns the run summary.
//
// Ordering: the notification is sent before the state is persisted. If the
// email goes out but the write then fails, the next run re-detects the same
// courses and sends a duplicate notification; that is preferred over
// persisting first and silently dropping the notification forever.
func (p *pipeline) run(ctx context.Context) (*RunResult, error) {
	previous, err := p.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading known courses: %w", err)
	}
	logger.Debug("loaded known courses", logger.Fields{"count": previous.Len(), "state_file": p.store.Path()})

	html, err := p.fetcher.FetchPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching course page: %w", err)
	}
	logger.Debug("fetched course page", logger.Fields{"url": p.fetcher.URL(), "bytes": len(html)})

	pageText, err := fetcher.VisibleText(html)
	if err != nil || pageText == "" {
		// Unparseable markup still goes to the model as-is.
		pageText = html
	}

	current, err := p.extract.Extract(ctx, pageText)
	if err != nil {
		return nil, fmt.Errorf("extracting courses: %w", err)
	}
	logger.Info("extracted courses", logger.Fields{"count": len(current)})

	diff := course.Diff(previous, current)

	result := &RunResult{
		CheckedAt:  time.Now().UTC(),
		SourceURL:  p.fetcher.URL(),
		NewCourses: diff.NewCourses,
		NewCount:   len(diff.NewCourses),
		KnownCount: diff.Merged.Len(),
	}

	if len(diff.NewCourses) == 0 {
		logger.Info("no new courses detected", logger.Fields{"known": previous.Len()})
		return result, nil
	}

	if err := p.notify.Notify(ctx, diff.NewCourses); err != nil {
		return nil, fmt.Errorf("sending notification: %w", err)
	}
	result.Notified = true
	logger.Info("notification sent", logger.Fields{"new_courses": len(diff.NewCourses)})

	if p.persist {
		if err := p.store.Save(diff.Merged); err != nil {
			// Loud: the notification already went out, so the next run will
			// re-notify these courses unless the operator intervenes.
			logger.Error("state not persisted; expect duplicate notifications next run",
				logger.Fields{"state_file": p.store.Path()}, err)
			return nil, fmt.Errorf("saving known courses: %w", err)
		}
		result.Persisted = true
		logger.Info("known courses updated", logger.Fields{"known": diff.Merged.Len()})
	}

	return result, nil
}
