package jobs

import (
	"garagebook-backend/internal/clock"
	"garagebook-backend/internal/config"
	"garagebook-backend/internal/logger"
	"garagebook-backend/internal/notify"
	"garagebook-backend/internal/repository"
	"garagebook-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	contracts service.ContractService
	vehicles  repository.VehicleRepository
	queue     *notify.Queue
	clock     clock.Clock
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	contracts service.ContractService,
	vehicles repository.VehicleRepository,
	queue *notify.Queue,
	clk clock.Clock,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		contracts: contracts,
		vehicles:  vehicles,
		queue:     queue,
		clock:     clk,
		config:    cfg,
	}
}

// Config exposes the runner's configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	log := logger.WithJob(jobName)
	defer func() {
		if r := recover(); r != nil {
			log.Error("Job panicked", "panic", r)
		}
	}()

	log.Debug("Starting job")
	jobFunc()
	log.Debug("Job completed")
}
