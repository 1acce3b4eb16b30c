package database

import (
	"fmt"
	"log"

	"contesthub/config"
	"contesthub/models"
	"contesthub/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB
var REDIS *redis.Client

var DefaultAdminEmail = "admin@contesthub.io"
var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models and populates the database with default values if needed
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=UTC",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	err = DB.AutoMigrate(
		&models.Profile{},
		&models.Competition{},
		&models.Requirement{},
		&models.EligibilityRule{},
		&models.SavedCompetition{},
		&models.PasswordReset{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	Populate()
}

// InitRedis initializes the Redis client used for profile session caching and passcode storage
func InitRedis() {
	REDIS = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})
}

// Populate populates the database with default values if needed
func Populate() {
	var countProfiles int64

	DB.Model(&models.Profile{}).Count(&countProfiles)
	if countProfiles == 0 {
		// Create default admin profile with a hashed password either from the .env file or the DefaultPassword constant
		password := DefaultPassword
		if config.DefaultPassword != "" {
			password = config.DefaultPassword
		}

		password, err := utils.HashPassword(password)
		if err != nil {
			panic(err)
		}

		admin := models.Profile{
			Email:    DefaultAdminEmail,
			FullName: "Platform Admin",
			Role:     models.RoleAdmin,
			Password: password,
		}
		DB.Create(&admin)
		log.Println("Default admin profile created")
	}
}
