package config

import (
	"log"

	"articlehub/global"
	"articlehub/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func initDB() {
	// TranslateError turns driver duplicate-key errors into
	// gorm.ErrDuplicatedKey, which the repository maps to Conflict.
	db, err := gorm.Open(mysql.Open(AppConfig.Database.Dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to configure database pool: %v", err)
	}
	sqlDB.SetMaxIdleConns(AppConfig.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(AppConfig.Database.MaxOpenConns)

	err = db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Comment{},
		&models.Mark{},
		&models.Tag{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	global.Db = db
}
