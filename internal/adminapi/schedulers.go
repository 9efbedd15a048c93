package adminapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
	"github.com/AkilCDE/urban-trends-apparel/internal/webserver"
	"github.com/AkilCDE/urban-trends-apparel/pkg/common"
)

func registerSchedulerRoutes() {
	webserver.AdminGET("/admin/schedulers", listSchedulers)
	webserver.AdminPOST("/admin/schedulers/:id", updateScheduler)
	webserver.AdminPOST("/admin/schedulers/:id/run", runScheduler)
}

func listSchedulers(c echo.Context) error {
	var rows []domain.SysScheduler
	if err := gormDB.Order("id ASC").Find(&rows).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query schedulers", err.Error())
	}
	return ok(c, rows)
}

type schedulerPayload struct {
	Interval int    `json:"interval" form:"interval"`
	Status   string `json:"status" form:"status"`
}

func updateScheduler(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid scheduler ID", nil)
	}
	var payload schedulerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse scheduler parameters", err.Error())
	}
	if payload.Interval < 30 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Interval must be at least 30 seconds", nil)
	}
	if payload.Status != common.ENABLED && payload.Status != common.DISABLED {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Status must be enabled or disabled", nil)
	}
	var sched domain.SysScheduler
	if err := gormDB.First(&sched, id).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Scheduler not found", nil)
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query scheduler", err.Error())
	}
	next := time.Now().Add(time.Duration(payload.Interval) * time.Second)
	err = gormDB.Model(&domain.SysScheduler{}).Where("id = ?", id).Updates(map[string]interface{}{
		"interval":    payload.Interval,
		"status":      payload.Status,
		"next_run_at": next,
		"updated_at":  time.Now(),
	}).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update scheduler", err.Error())
	}
	oprlog(c, "update_scheduler", fmt.Sprintf("scheduler %d interval %d status %s", id, payload.Interval, payload.Status))
	return okMessage(c, "Scheduler updated", nil)
}

func runScheduler(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid scheduler ID", nil)
	}
	if err := runner.RunSchedulerNow(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, http.StatusNotFound, "NOT_FOUND", "Scheduler not found", nil)
		}
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to run scheduler", err.Error())
	}
	oprlog(c, "run_scheduler", fmt.Sprintf("scheduler %d", id))
	return okMessage(c, "Scheduler executed", nil)
}
