package db

import (
	"log"
	"os"

	"github.com/trumanharry/record-nexus-connect/internal/models"
	"github.com/trumanharry/record-nexus-connect/internal/utils"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=recordnexus port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	// Auto Migrate
	err = DB.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Hospital{},
		&models.Contact{},
		&models.Physician{},
		&models.Comment{},
		&models.PointTransaction{},
		&models.Rating{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// Seed one account per role for fresh installs
	seedDemoAccounts()
}

func seedDemoAccounts() {
	var count int64
	DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Println("Users already exist, skipping demo accounts")
		return
	}

	hash, err := utils.HashPassword("demo1234")
	if err != nil {
		log.Printf("Failed to hash demo password: %v", err)
		return
	}

	users := []models.User{
		{Uid: uuid.NewString(), Email: "admin@recordnexus.io", Name: "Demo Administrator", Role: string(models.RoleAdministrator), Password: hash},
		{Uid: uuid.NewString(), Email: "distributor@recordnexus.io", Name: "Demo Distributor", Role: string(models.RoleDistributor), Password: hash},
		{Uid: uuid.NewString(), Email: "corporate@recordnexus.io", Name: "Demo Corporate", Role: string(models.RoleCorporate), Password: hash},
	}

	for _, user := range users {
		if err := DB.Create(&user).Error; err != nil {
			log.Printf("Failed to create demo account %s: %v", user.Email, err)
		}
	}
	log.Println("Demo accounts created successfully")
}
