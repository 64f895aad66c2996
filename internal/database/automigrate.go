package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"nc-news-api/internal/domain"
)

// Models lists every table in foreign key order
func Models() []interface{} {
	return []interface{}{
		&domain.Topic{},
		&domain.User{},
		&domain.Article{},
		&domain.Comment{},
	}
}

// AutoMigrate creates or updates the tables, indexes and foreign keys
func AutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()

	for _, model := range Models() {
		existed := migrator.HasTable(model)

		if err := db.AutoMigrate(model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("model", fmt.Sprintf("%T", model)),
				zap.Bool("table_existed", existed),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}

		logger.Debug("Migrated table",
			zap.String("model", fmt.Sprintf("%T", model)),
			zap.Bool("was_existing", existed),
		)
	}

	logger.Info("Auto-migration completed", zap.Int("tables", len(Models())))
	return nil
}

// DropAll drops every table in reverse foreign key order
func DropAll(db *gorm.DB) error {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("failed to drop %T: %w", models[i], err)
		}
	}
	return nil
}
