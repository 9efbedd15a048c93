package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
	"github.com/AkilCDE/urban-trends-apparel/pkg/common"
)

const schedulerPollInterval = 30 * time.Second

// StartSchedulerService runs the DB-registered maintenance tasks on
// their configured intervals until ctx is cancelled.
func (a *Application) StartSchedulerService(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(schedulerPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				a.runDueSchedulers()
			case <-ctx.Done():
				zap.L().Info("scheduler service stopped")
				return
			}
		}
	}()
	zap.L().Info("scheduler service started",
		zap.Duration("poll_interval", schedulerPollInterval))
}

func (a *Application) runDueSchedulers() {
	var due []domain.SysScheduler
	err := a.gormDB.
		Where("status = ?", common.ENABLED).
		Where("next_run_at IS NULL OR next_run_at <= ?", time.Now()).
		Find(&due).Error
	if err != nil {
		zap.L().Error("failed to query due schedulers", zap.Error(err))
		return
	}
	for i := range due {
		a.executeScheduler(&due[i])
	}
}

// RunSchedulerNow triggers a scheduler execution immediately by ID
func (a *Application) RunSchedulerNow(id int64) error {
	var sched domain.SysScheduler
	if err := a.gormDB.First(&sched, id).Error; err != nil {
		return err
	}
	a.executeScheduler(&sched)
	return nil
}

func (a *Application) executeScheduler(sched *domain.SysScheduler) {
	switch sched.TaskType {
	case TaskSessionSweep:
		a.SchedSessionSweepTask()
	case TaskLowStockScan:
		a.SchedLowStockScanTask()
	case TaskOprLogPrune:
		a.SchedOprLogPruneTask()
	default:
		zap.L().Warn("unsupported scheduler task type",
			zap.Int64("id", sched.ID),
			zap.String("task_type", sched.TaskType))
		return
	}

	// update last and next run
	now := time.Now()
	a.gormDB.Model(&domain.SysScheduler{}).Where("id = ?", sched.ID).Updates(map[string]interface{}{
		"last_run_at": now,
		"next_run_at": now.Add(time.Duration(sched.Interval) * time.Second),
	})
}
