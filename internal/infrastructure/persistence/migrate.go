package persistence

import (
	"github.com/bizroot/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for all persistence models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.OrganizationModel{},
		&models.ClientModel{},
		&models.ProductModel{},
		&models.DealModel{},
	)
}
