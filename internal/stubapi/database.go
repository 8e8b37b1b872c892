package stubapi

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the stub's postgres database and migrates the schema.
// Fatal on failure: the stub is useless without its storage.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	if err := db.AutoMigrate(&UserRecord{}, &CompanyRecord{}, &SectionRecord{}, &JobRecord{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
