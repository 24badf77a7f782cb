// internal/scheduler/cron.go
package scheduler

import (
    "log"

    "github.com/robfig/cron/v3"

    "github.com/unclebandit/adleopard-backend/internal/service"
)

// adCheckSpec fires hourly during business hours on weekdays.
const adCheckSpec = "0 9-18 * * 1-5"

// CronTrigger runs the ad scheduling pass on a fixed cadence.
type CronTrigger struct {
    cron      *cron.Cron
    scheduler *service.AdSchedulerService
}

func NewCronTrigger(s *service.AdSchedulerService) *CronTrigger {
    return &CronTrigger{
        cron:      cron.New(),
        scheduler: s,
    }
}

// Start registers the hourly job and launches the cron loop. Errors from a
// pass are logged, never propagated; the loop keeps firing.
func (t *CronTrigger) Start() error {
    _, err := t.cron.AddFunc(adCheckSpec, func() {
        log.Println("🕐 Running ad scheduling pass...")
        if err := t.scheduler.CheckAndSchedulePosts(); err != nil {
            log.Println("⚠️ Ad scheduling pass failed:", err)
            return
        }
        log.Println("✅ Ad scheduling pass completed")
    })
    if err != nil {
        return err
    }

    t.cron.Start()
    log.Println("⏰ Ad scheduler started (hourly, business hours, weekdays)")
    return nil
}

func (t *CronTrigger) Stop() {
    t.cron.Stop()
}
