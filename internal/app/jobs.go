package app

import (
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/process"
	"go.uber.org/zap"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
	"github.com/AkilCDE/urban-trends-apparel/pkg/metrics"
)

// DB-registered maintenance task types.
const (
	TaskSessionSweep = "session_sweep"
	TaskLowStockScan = "lowstock_scan"
	TaskOprLogPrune  = "oprlog_prune"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 30s", func() {
		go a.SchedSystemMonitorTask()
		go a.SchedProcessMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedSystemMonitorTask system monitor
func (a *Application) SchedSystemMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	// Collect CPU usage
	_cpuuse, err := cpu.Percent(0, false)
	if err == nil && len(_cpuuse) > 0 {
		metrics.SetGauge("system_cpuuse", int64(_cpuuse[0]*100)) // Store as percentage * 100
	}

	// Collect memory usage
	_meminfo, err := mem.VirtualMemory()
	if err == nil {
		metrics.SetGauge("system_memuse", int64(_meminfo.Used/1024/1024))
	}
}

// SchedProcessMonitorTask app process monitor
func (a *Application) SchedProcessMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return
	}

	// Collect process CPU usage
	cpuuse, err := p.CPUPercent()
	if err == nil {
		metrics.SetGauge("urbantrends_cpuuse", int64(cpuuse*100)) // Store as percentage * 100
	}

	// Collect process memory usage
	meminfo, err := p.MemoryInfo()
	if err == nil {
		metrics.SetGauge("urbantrends_memuse", int64(meminfo.RSS/1024/1024))
	}
}

// SchedSessionSweepTask removes expired session records.
func (a *Application) SchedSessionSweepTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()
	removed, err := a.sessionStore.Sweep()
	if err != nil {
		zap.L().Error("session sweep failed", zap.Error(err))
		return
	}
	if removed > 0 {
		zap.L().Info("session sweep", zap.Int("removed", removed))
	}
	metrics.SetGauge("sessions_swept", int64(removed))
}

// SchedLowStockScanTask publishes a low stock event per product under
// the threshold.
func (a *Application) SchedLowStockScanTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()
	threshold := a.LowStockThreshold()
	var rows []domain.Product
	if err := a.gormDB.Where("stock < ?", threshold).Order("stock ASC").Find(&rows).Error; err != nil {
		zap.L().Error("low stock scan failed", zap.Error(err))
		return
	}
	for _, p := range rows {
		a.bus.Publish(shop.EventStockLow, p.ID, p.Stock)
	}
	metrics.SetGauge("lowstock_products", int64(len(rows)))
}

// SchedOprLogPruneTask deletes audit log rows older than one year.
func (a *Application) SchedOprLogPruneTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()
	a.gormDB.
		Where("opt_time < ? ", time.Now().
			Add(-time.Hour*24*365)).Delete(domain.SysOprLog{})
}
