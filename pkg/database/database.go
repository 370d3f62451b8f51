package database

import (
	"errors"
	"fmt"

	"backoffice-service/internal/model"
	"backoffice-service/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB initializes the database connection with configuration and runs
// migrations plus the predefined theme seed.
func InitDB(config *config.Config) error {
	var err error

	// Configure GORM logger
	logLevel := logger.Error
	if config.Server.Env == "development" {
		logLevel = logger.Info
	}

	// Create DSN string
	dsn := config.DB.GetDSN()

	// Configure Postgres options
	pgConfig := postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	// Open connection
	db, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get generic database object SQL
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Set connection pool settings from config
	sqlDB.SetMaxIdleConns(config.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(config.DB.ConnMaxLifetime)

	// Run migrations
	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Seed the predefined website themes
	if err := SeedThemes(db); err != nil {
		return fmt.Errorf("failed to seed themes: %w", err)
	}

	return nil
}

// AutoMigrate migrates the full schema. Exported so tests can build the same
// schema against the sqlite driver.
func AutoMigrate(d *gorm.DB) error {
	return d.AutoMigrate(
		&model.Organization{},
		&model.Product{},
		&model.Drop{},
		&model.ProductSettings{},
		&model.BlogPost{},
		&model.Transaction{},
		&model.Theme{},
		&model.Website{},
		&model.Navigation{},
		&model.NavigationItem{},
		&model.Hero{},
		&model.PostSection{},
		&model.PostLink{},
		&model.Footer{},
		&model.FooterItem{},
		&model.SocialLink{},
		&model.S3File{},
	)
}

// SeedThemes inserts the predefined (non-custom) themes if they are absent.
func SeedThemes(d *gorm.DB) error {
	themes := []model.Theme{
		{Name: "slate", FontHeading: "Manrope", FontBody: "Poppins", ColorPrimary: "#F5F5F5", ColorSecondary: "#D9D9D9", ColorTertiary: "#797979", ColorLight: "#FFFFFF", ColorDark: "#000000", Radius: "0px"},
		{Name: "clay", FontHeading: "Libre Baskerville", FontBody: "Almarai", ColorPrimary: "#ECE4DA", ColorSecondary: "#B9A590", ColorTertiary: "#574C3F", ColorLight: "#F6F3EC", ColorDark: "#36302A", Radius: "0px"},
		{Name: "mist", FontHeading: "Sansita", FontBody: "Nunito Sans", ColorPrimary: "#E6DCC8", ColorSecondary: "#EBFC72", ColorTertiary: "#AEC0AB", ColorLight: "#F4F3E8", ColorDark: "#212E21", Radius: "5px"},
		{Name: "dawn", FontHeading: "Young Serif", FontBody: "Bitter", ColorPrimary: "#EDD286", ColorSecondary: "#7BB5B2", ColorTertiary: "#34659B", ColorLight: "#F8F4E3", ColorDark: "#1F2933", Radius: "5px"},
	}
	for _, theme := range themes {
		var existing model.Theme
		err := d.Where("name = ? AND is_custom = ?", theme.Name, false).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := d.Create(&theme).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}

// Set replaces the database instance. Used by tests to point handlers at an
// in-memory database.
func Set(d *gorm.DB) {
	db = d
}
