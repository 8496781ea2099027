package jobs

import (
	"context"

	"garagebook-backend/internal/logger"
)

// AutoCreatePrefilledContracts sweeps the rentable vehicles and creates a
// ready placeholder contract for each one that has neither a placeholder nor
// a real booking in force.
func (jr *JobRunner) AutoCreatePrefilledContracts() {
	jr.runWithRecovery("AutoCreatePrefilledContracts", func() {
		ctx := context.Background()

		vehicles, err := jr.vehicles.ListRentable(ctx)
		if err != nil {
			logger.Error("Failed to list rentable vehicles", "error", err)
			return
		}

		created := 0
		for i := range vehicles {
			c, err := jr.contracts.AutoCreatePrefilledContract(ctx, vehicles[i].ID)
			if err != nil {
				logger.Error("Failed to auto-create prefilled contract",
					"vehicle_id", vehicles[i].ID, "error", err)
				continue
			}
			if c != nil {
				created++
			}
		}

		if created > 0 {
			logger.Info("Prefilled contracts created", "count", created)
		}
	})
}

// SweepExpiredContracts reports contracts whose rental period has ended.
// Expiry is derived from the dates at query time; the sweep exists for
// operational visibility.
func (jr *JobRunner) SweepExpiredContracts() {
	jr.runWithRecovery("SweepExpiredContracts", func() {
		ctx := context.Background()

		expired, err := jr.contracts.ExpiredContracts(ctx)
		if err != nil {
			logger.Error("Failed to list expired contracts", "error", err)
			return
		}

		for i := range expired {
			logger.Debug("Contract expired",
				"contract_id", expired[i].ID,
				"vehicle_id", expired[i].VehicleID,
				"end_date", expired[i].EndDate)
		}
		logger.Info("Expired contract sweep finished", "count", len(expired))
	})
}
