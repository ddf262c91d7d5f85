package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"masjidcare_backend/internals/configs"
	areaModel "masjidcare_backend/internals/features/areas/model"
	feedModel "masjidcare_backend/internals/features/feeds/model"
	pickupModel "masjidcare_backend/internals/features/pickup/model"
	prayerModel "masjidcare_backend/internals/features/prayers/model"
	activityModel "masjidcare_backend/internals/features/progress/daily_activities/model"
	authModel "masjidcare_backend/internals/features/users/auth/model"
	userModel "masjidcare_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	// Full DSN + statement_timeout. With PgBouncer keep PreferSimpleProtocol=true.
	sslmode := configs.GetEnv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=masjidcare&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync with the registered models.
func Migrate() {
	if err := AutoMigrateAll(DB); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Migration done.")
}

// AutoMigrateAll migrates every model in dependency order. Shared with the
// package tests that run against an in-memory database.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&areaModel.AreaModel{},
		&userModel.UserModel{},
		&authModel.TokenBlacklistModel{},
		&prayerModel.PrayerRecordModel{},
		&activityModel.DailyActivityModel{},
		&pickupModel.PickupRequestModel{},
		&pickupModel.PickupRequestHistoryModel{},
		&feedModel.FeedModel{},
	)
}
