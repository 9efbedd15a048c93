package app

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
	"github.com/AkilCDE/urban-trends-apparel/pkg/common"
)

func (a *Application) checkSuper() {
	const superEmail = "admin@urbantrends.local"
	const defaultPassword = "urbantrends"

	var admin domain.User
	err := a.gormDB.Where("email = ?", superEmail).First(&admin).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, herr := common.HashPassword(defaultPassword)
		if herr != nil {
			zap.L().Error("failed to hash default admin password", zap.Error(herr))
			return
		}
		if err := a.gormDB.Create(&domain.User{
			ID:        common.UUIDint64(),
			Email:     superEmail,
			Password:  hashed,
			Firstname: "Store",
			Lastname:  "Admin",
			IsAdmin:   true,
			LastLogin: time.Now(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default admin", zap.Error(err))
		} else {
			zap.L().Info("initialized default admin account", zap.String("email", superEmail))
		}
	case err != nil:
		zap.L().Error("failed to query admin account", zap.Error(err))
	case !admin.IsAdmin:
		if err := a.gormDB.Model(&domain.User{}).Where("id = ?", admin.ID).
			Update("is_admin", true).Error; err != nil {
			zap.L().Error("failed to repair admin flag", zap.Error(err))
		} else {
			zap.L().Warn("repaired default admin account", zap.String("email", superEmail))
		}
	}
}

// configSchema describes one sys_config default.
type configSchema struct {
	Key         string
	Default     string
	Description string
}

var configSchemas = []configSchema{
	{Key: "store.StoreName", Default: "Urban Trends Apparel", Description: "Display name of the store"},
	{Key: "store.LowStockThreshold", Default: "10", Description: "Stock level that counts as low"},
	{Key: "store.AlertEmail", Default: "", Description: "Recipient of low stock alert mail"},
}

func (a *Application) checkSettings() {
	for sortid, schema := range configSchemas {
		// Parse key: "category.name" -> category, name
		parts := strings.SplitN(schema.Key, ".", 2)
		if len(parts) != 2 {
			zap.L().Warn("invalid config key format", zap.String("key", schema.Key))
			continue
		}

		var count int64
		a.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? and name = ?", parts[0], parts[1]).
			Count(&count)

		if count == 0 {
			a.gormDB.Create(&domain.SysConfig{
				ID:     common.UUIDint64(),
				Sort:   sortid,
				Type:   parts[0],
				Name:   parts[1],
				Value:  schema.Default,
				Remark: schema.Description,
			})
			zap.L().Info("initialized config",
				zap.String("key", schema.Key),
				zap.String("default", schema.Default))
		}
	}
}

// checkSchedulers initializes default scheduled tasks
func (a *Application) checkSchedulers() {
	defaultSchedulers := []domain.SysScheduler{
		{
			Name:     "Session Sweep",
			TaskType: TaskSessionSweep,
			Interval: 600, // 10 minutes
			Status:   common.ENABLED,
			Remark:   "Removes expired sessions from the session store",
		},
		{
			Name:     "Low Stock Scan",
			TaskType: TaskLowStockScan,
			Interval: 3600, // 1 hour
			Status:   common.ENABLED,
			Remark:   "Publishes low stock events for products under the threshold",
		},
		{
			Name:     "Audit Log Prune",
			TaskType: TaskOprLogPrune,
			Interval: 86400, // daily
			Status:   common.ENABLED,
			Remark:   "Deletes admin audit log entries older than one year",
		},
	}

	for _, sched := range defaultSchedulers {
		var count int64
		a.gormDB.Model(&domain.SysScheduler{}).
			Where("task_type = ?", sched.TaskType).
			Count(&count)

		if count == 0 {
			next := time.Now().Add(time.Duration(sched.Interval) * time.Second)
			sched.NextRunAt = &next
			if err := a.gormDB.Create(&sched).Error; err != nil {
				zap.L().Error("failed to create default scheduler",
					zap.String("name", sched.Name),
					zap.Error(err))
			} else {
				zap.L().Info("initialized default scheduler",
					zap.String("name", sched.Name),
					zap.String("task_type", sched.TaskType))
			}
		}
	}
}

// checkProducts seeds the demo catalog
func (a *Application) checkProducts() {
	defaultProducts := []domain.Product{
		{Name: "Essential Crewneck Tee", Description: "Heavyweight cotton tee", Price: 24.99, Category: "men", Stock: 120, Image: "default.jpg"},
		{Name: "Oversized Hoodie", Description: "Fleece-lined oversized hoodie", Price: 59.50, Category: "women", Stock: 80, Image: "default.jpg"},
		{Name: "Court Classic Sneakers", Description: "Low-top leather sneakers", Price: 89.00, Category: "shoes", Stock: 45, Image: "default.jpg"},
		{Name: "Canvas Tote", Description: "Everyday canvas tote bag", Price: 19.75, Category: "accessories", Stock: 200, Image: "default.jpg"},
	}

	for _, p := range defaultProducts {
		var count int64
		a.gormDB.Model(&domain.Product{}).Where("name = ?", p.Name).Count(&count)
		if count == 0 {
			p.CreatedAt = time.Now()
			p.UpdatedAt = time.Now()
			if err := a.gormDB.Create(&p).Error; err != nil {
				zap.L().Error("failed to create default product", zap.String("name", p.Name), zap.Error(err))
			} else {
				zap.L().Info("initialized default product", zap.String("name", p.Name))
			}
		}
	}
}

// LowStockThreshold reads the runtime threshold, falling back to the
// shop default.
func (a *Application) LowStockThreshold() int {
	if v := a.configManager.GetInt("store", "LowStockThreshold"); v > 0 {
		return v
	}
	return shop.DefaultLowStockThreshold
}
