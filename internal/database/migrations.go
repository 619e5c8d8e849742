package database

import (
	"github.com/nithinvarma/agrimarket-backend/internal/models"
	"gorm.io/gorm"
)

// RunMigrations creates the listing tables if they don't exist. The
// positivity CHECK constraints come from the model tags, so the database
// enforces them even when a caller bypasses store-side validation.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.CropListing{},
		&models.PesticideListing{},
		&models.TransportListing{},
	)
}
