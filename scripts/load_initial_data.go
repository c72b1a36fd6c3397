package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"maternal-care-backend/internal/config"
	"maternal-care-backend/internal/database"
	"maternal-care-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ChildData struct {
	FirstName           string                 `yaml:"first_name"`
	LastName            string                 `yaml:"last_name"`
	Sex                 string                 `yaml:"sex"`
	DateOfBirth         string                 `yaml:"date_of_birth"`
	MedicalRecordNumber string                 `yaml:"medical_record_number"`
	GuardianName        string                 `yaml:"guardian_name,omitempty"`
	GuardianPhone       string                 `yaml:"guardian_phone,omitempty"`
	BirthWeightGrams    int                    `yaml:"birth_weight_grams,omitempty"`
	Metadata            map[string]interface{} `yaml:"metadata,omitempty"`
}

type PregnancyData struct {
	MotherName           string                 `yaml:"mother_name"`
	MotherPhone          string                 `yaml:"mother_phone,omitempty"`
	ExpectedDeliveryDate string                 `yaml:"expected_delivery_date"`
	Status               string                 `yaml:"status"`
	Gravida              int                    `yaml:"gravida,omitempty"`
	Para                 int                    `yaml:"para,omitempty"`
	HighRisk             bool                   `yaml:"high_risk,omitempty"`
	Notes                string                 `yaml:"notes,omitempty"`
	Metadata             map[string]interface{} `yaml:"metadata,omitempty"`
}

// File structures
type ChildrenFile struct {
	Children []ChildData `yaml:"children"`
}

type PregnanciesFile struct {
	Pregnancies []PregnancyData `yaml:"pregnancies"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	children, err := loadChildren(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load children: %w", err)
	}

	pregnancies, err := loadPregnancies(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load pregnancies: %w", err)
	}

	if err := insertChildren(db, children); err != nil {
		return fmt.Errorf("failed to insert children: %w", err)
	}

	if err := insertPregnancies(db, pregnancies); err != nil {
		return fmt.Errorf("failed to insert pregnancies: %w", err)
	}

	return nil
}

func loadChildren(dataDir string) ([]ChildData, error) {
	path := filepath.Join(dataDir, "children.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No children.yaml found in %s, skipping", dataDir)
			return nil, nil
		}
		return nil, err
	}

	var file ChildrenFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.Children, nil
}

func loadPregnancies(dataDir string) ([]PregnancyData, error) {
	path := filepath.Join(dataDir, "pregnancies.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No pregnancies.yaml found in %s, skipping", dataDir)
			return nil, nil
		}
		return nil, err
	}

	var file PregnanciesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return file.Pregnancies, nil
}

func insertChildren(db *gorm.DB, children []ChildData) error {
	inserted, skipped := 0, 0
	for _, data := range children {
		var existing models.Child
		err := db.Where("medical_record_number = ?", data.MedicalRecordNumber).First(&existing).Error
		if err == nil {
			skipped++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		dob, err := time.Parse("2006-01-02", data.DateOfBirth)
		if err != nil {
			return fmt.Errorf("invalid date_of_birth for %s %s: %w", data.FirstName, data.LastName, err)
		}

		metadata, err := marshalMetadata(data.Metadata)
		if err != nil {
			return err
		}

		child := models.Child{
			FirstName:           data.FirstName,
			LastName:            data.LastName,
			Sex:                 models.Sex(data.Sex),
			DateOfBirth:         dob,
			MedicalRecordNumber: data.MedicalRecordNumber,
			GuardianName:        data.GuardianName,
			GuardianPhone:       data.GuardianPhone,
			BirthWeightGrams:    data.BirthWeightGrams,
			Metadata:            metadata,
		}
		if err := db.Create(&child).Error; err != nil {
			return err
		}
		inserted++
	}
	log.Printf("Children: %d inserted, %d already present", inserted, skipped)
	return nil
}

func insertPregnancies(db *gorm.DB, pregnancies []PregnancyData) error {
	inserted, skipped := 0, 0
	for _, data := range pregnancies {
		edd, err := time.Parse("2006-01-02", data.ExpectedDeliveryDate)
		if err != nil {
			return fmt.Errorf("invalid expected_delivery_date for %s: %w", data.MotherName, err)
		}

		var existing models.Pregnancy
		err = db.Where("mother_name = ? AND expected_delivery_date = ?", data.MotherName, edd).First(&existing).Error
		if err == nil {
			skipped++
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		status := data.Status
		if status == "" {
			status = string(models.PregnancyStatusActive)
		}

		metadata, err := marshalMetadata(data.Metadata)
		if err != nil {
			return err
		}

		pregnancy := models.Pregnancy{
			MotherName:           data.MotherName,
			MotherPhone:          data.MotherPhone,
			ExpectedDeliveryDate: edd,
			Status:               models.PregnancyStatus(status),
			Gravida:              data.Gravida,
			Para:                 data.Para,
			HighRisk:             data.HighRisk,
			Notes:                data.Notes,
			Metadata:             metadata,
		}
		if err := db.Create(&pregnancy).Error; err != nil {
			return err
		}
		inserted++
	}
	log.Printf("Pregnancies: %d inserted, %d already present", inserted, skipped)
	return nil
}

func marshalMetadata(metadata map[string]interface{}) (json.RawMessage, error) {
	if len(metadata) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return raw, nil
}
