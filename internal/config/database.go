package config

import (
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"edu_backoffice/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB

	// DBX wraps the same connection for the raw-SQL reporting queries.
	DBX *sqlx.DB
)

// InitDB initializes the database connection using environment variables,
// runs migrations and seeds the fixed role set plus the bootstrap
// administrator account.
func InitDB() {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "backoffice")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}
	if err := Seed(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("could not unwrap sql.DB: %v", err)
	}

	DB = db
	DBX = sqlx.NewDb(sqlDB, "postgres")
}

// Migrate applies the schema for every model. Shared with the test setup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Role{},
		&models.Page{},
		&models.Permission{},
		&models.User{},
		&models.Student{},
		&models.StudentAcademicDetail{},
		&models.EMIDetail{},
		&models.StudentDocument{},
		&models.StudentPayment{},
		&models.PaymentHandover{},
		&models.Supplier{},
		&models.SupplierExpense{},
		&models.ExpensePayment{},
		&models.Banner{},
		&models.Gallery{},
		&models.Faculty{},
		&models.Notification{},
		&models.LatestPost{},
	)
}

// Seed creates the fixed role rows and, when ADMIN_EMAIL/ADMIN_PASSWORD are
// set and no user exists yet, a bootstrap administrator.
func Seed(db *gorm.DB) error {
	roles := map[uint]string{
		models.RoleAdministrator: "Administrator",
		models.RoleAdmin:         "Admin",
		models.RoleRegistered:    "Registered",
	}
	for id, name := range roles {
		role := models.Role{Name: name}
		role.ID = id
		if err := db.Where("id = ?", id).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return nil
	}
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:      "Administrator",
		Email:     adminEmail,
		Password:  string(hash),
		RoleID:    models.RoleAdministrator,
		CreatedBy: "system",
	}
	return db.Create(&admin).Error
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}
