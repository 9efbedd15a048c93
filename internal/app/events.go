package app

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/AkilCDE/urban-trends-apparel/internal/domain"
	"github.com/AkilCDE/urban-trends-apparel/internal/shop"
)

// initNotifier wires the bus subscribers. The low stock subscriber
// mails the configured alert address; without SMTP it only logs.
func (a *Application) initNotifier() {
	err := a.bus.SubscribeAsync(shop.EventStockLow, func(productID int64, stock int) {
		a.notifyLowStock(productID, stock)
	}, false)
	if err != nil {
		zap.L().Error("failed to subscribe low stock events", zap.Error(err))
	}

	err = a.bus.Subscribe(shop.EventProductCreated, func(productID int64) {
		zap.L().Info("product created", zap.Int64("product_id", productID))
	})
	if err != nil {
		zap.L().Error("failed to subscribe product events", zap.Error(err))
	}
}

func (a *Application) notifyLowStock(productID int64, stock int) {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	zap.L().Warn("low stock",
		zap.Int64("product_id", productID),
		zap.Int("stock", stock))

	smtp := a.appConfig.Smtp
	to := a.configManager.GetString("store", "AlertEmail")
	if to == "" {
		to = smtp.AlertTo
	}
	if smtp.Host == "" || to == "" {
		return
	}

	var product domain.Product
	if err := a.gormDB.First(&product, productID).Error; err != nil {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtp.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Low stock: %s", product.Name))
	m.SetBody("text/plain", fmt.Sprintf(
		"Product %q (id %d) is down to %d in stock.", product.Name, product.ID, stock))

	d := gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error("failed to send low stock mail",
			zap.Int64("product_id", productID),
			zap.Error(err))
	}
}
