package repositories

import (
	"log"

	"github.com/chandru-wp/portfolio-server/internal/config"
	"github.com/chandru-wp/portfolio-server/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() {
	dsn := config.Envs.DatabaseURL
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	DB = db
	log.Println("Successfully connected to database")
}

// Migrate creates or updates the schema for every content entity.
// Split out from ConnectDatabase so tests can run it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.SkillGroup{},
		&models.Experience{},
		&models.Education{},
		&models.Portfolio{},
		&models.Message{},
	)
}
