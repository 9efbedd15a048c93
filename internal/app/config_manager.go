package app

import (
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
)

// ConfigManager reads and writes runtime settings stored in the
// sys_config table, with a short-lived in-memory cache on top.
type ConfigManager struct {
	app      *Application
	mu       sync.RWMutex
	cache    map[string]string
	loadedAt time.Time
}

const configCacheTTL = 30 * time.Second

func NewConfigManager(app *Application) *ConfigManager {
	return &ConfigManager{app: app, cache: map[string]string{}}
}

func (m *ConfigManager) load() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if time.Since(m.loadedAt) < configCacheTTL && len(m.cache) > 0 {
		return
	}
	var rows []domain.SysConfig
	if err := m.app.gormDB.Find(&rows).Error; err != nil {
		zap.L().Warn("failed to load sys_config", zap.Error(err))
		return
	}
	cache := make(map[string]string, len(rows))
	for _, row := range rows {
		cache[row.Type+"."+row.Name] = row.Value
	}
	m.cache = cache
	m.loadedAt = time.Now()
}

func (m *ConfigManager) get(category, name string) string {
	m.load()
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cache[category+"."+name]
}

func (m *ConfigManager) GetString(category, name string) string {
	return m.get(category, name)
}

func (m *ConfigManager) GetInt(category, name string) int {
	return cast.ToInt(m.get(category, name))
}

func (m *ConfigManager) GetInt64(category, name string) int64 {
	return cast.ToInt64(m.get(category, name))
}

func (m *ConfigManager) GetBool(category, name string) bool {
	return cast.ToBool(m.get(category, name))
}

// Save persists "category.name" keyed values and invalidates the cache.
func (m *ConfigManager) Save(values map[string]interface{}) error {
	for key, value := range values {
		parts := strings.SplitN(key, ".", 2)
		if len(parts) != 2 {
			return errors.Errorf("invalid config key %q", key)
		}
		err := m.app.gormDB.Model(&domain.SysConfig{}).
			Where("type = ? AND name = ?", parts[0], parts[1]).
			Updates(map[string]interface{}{
				"value":      cast.ToString(value),
				"updated_at": time.Now(),
			}).Error
		if err != nil {
			return errors.Wrapf(err, "save config %s", key)
		}
	}
	m.mu.Lock()
	m.loadedAt = time.Time{}
	m.mu.Unlock()
	return nil
}
