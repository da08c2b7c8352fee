package migration

import (
	"FoodShare-Backend/entities"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB, log *zap.Logger) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return fmt.Errorf("enable uuid-ossp: %w", err)
	}

	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"user badge", &entities.UserBadge{}},
		{"food item", &entities.FoodItem{}},
		{"review", &entities.Review{}},
		{"notification", &entities.Notification{}},
		{"ngo", &entities.NGO{}},
		{"campus event", &entities.CampusEvent{}},
		{"food request", &entities.FoodRequest{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("migrate %s: %w", m.name, err)
		}
	}

	log.Info("database migration complete")
	return nil
}
