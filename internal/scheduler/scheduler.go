package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler fires a periodic "time to drill" reminder.
type Scheduler struct {
	cron   *cron.Cron
	remind func()
}

func New() *Scheduler {
	return &Scheduler{cron: cron.New(cron.WithLocation(time.UTC))}
}

// SetRemindFunc sets the function invoked on every scheduled tick.
func (s *Scheduler) SetRemindFunc(f func()) {
	s.remind = f
}

// Start registers the reminder on the given cron spec (UTC) and starts
// the scheduler. Without a remind function the scheduler stays idle.
func (s *Scheduler) Start(spec string) error {
	if s.remind == nil {
		log.Println("remind function not set, scheduler will stay idle")
		return nil
	}
	if _, err := s.cron.AddFunc(spec, s.remind); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("scheduler started, reminders on %q (UTC)", spec)
	return nil
}

// Stop stops the scheduler and waits for a running tick to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
