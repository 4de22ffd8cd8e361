package database

import (
	"fmt"
	"log"

	"antoanmang_backend/internal/config"
	"antoanmang_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Bảng duy nhất: danh sách bài khảo sát (append-only).
	if err := db.AutoMigrate(&model.Submission{}); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}
