package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"garagebook-backend/internal/jobs"
	"garagebook-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	log := logger.WithComponent("scheduler")
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.DispatchDueReminders, s.jobs.DispatchDueReminders)
	if err != nil {
		log.Error("Failed to register DispatchDueReminders job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.AutoCreatePrefilled, s.jobs.AutoCreatePrefilledContracts)
	if err != nil {
		log.Error("Failed to register AutoCreatePrefilledContracts job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.SweepExpiredContracts, s.jobs.SweepExpiredContracts)
	if err != nil {
		log.Error("Failed to register SweepExpiredContracts job", "error", err)
	}

	log.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	log := logger.WithComponent("scheduler")
	log.Info("Starting cron scheduler...")
	s.cron.Start()
	log.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	log := logger.WithComponent("scheduler")
	log.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info("Cron scheduler stopped")
}

// IsRunning returns true if the scheduler has registered jobs
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
