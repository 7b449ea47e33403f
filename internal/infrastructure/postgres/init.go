package postgres

import (
	"log"

	"github.com/inkwellbooks/bookshop-order-service/internal/config"
	"github.com/inkwellbooks/bookshop-order-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.OrderConfig) *gorm.DB {
	dsn := cfg.OrderDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.ProductModel{},
		&models.CartItemModel{},
		&models.DiscountCodeModel{},
		&models.DiscountCodeUsageModel{},
		&models.PendingOrderModel{},
		&models.PendingOrderItemModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.PaymentTransactionModel{},
	)

	return db
}
