package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/r-ising/molzberg-monitor/internal/config"
	"github.com/r-ising/molzberg-monitor/internal/logger"
)

// runSchedule runs the pipeline on a cron schedule until interrupted. Meant
// for hosts without an external scheduler; a failed run is logged and the
// next scheduled run is the retry.
func runSchedule(cfg config.Config, format OutputFormat) error {
	c := cron.New()

	_, err := c.AddFunc(flagSchedule, func() {
		if err := runOnce(context.Background(), cfg, format); err != nil {
			logger.Error("scheduled run failed", logger.Fields{"schedule": flagSchedule}, err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", flagSchedule, err)
	}

	logger.Info("scheduler started", logger.Fields{"schedule": flagSchedule})
	c.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logger.Info("scheduler stopping", nil)
	<-c.Stop().Done()
	return nil
}
