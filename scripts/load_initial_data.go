package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"staff-registry-backend/internal/config"
	"staff-registry-backend/internal/database"
	"staff-registry-backend/internal/database/models"
	"staff-registry-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OrganizationData matches one organization entry in the seed file
type OrganizationData struct {
	Name     string `yaml:"name"`
	Sector   string `yaml:"sector"`
	TaxID    string `yaml:"tax_id"`
	City     string `yaml:"city"`
	IsActive *bool  `yaml:"is_active,omitempty"`
}

// EmployeeData matches one employee entry in the seed file. Employees
// reference their organization by tax id.
type EmployeeData struct {
	OrganizationTaxID string `yaml:"organization_tax_id"`
	Name              string `yaml:"name"`
	Email             string `yaml:"email"`
	Position          string `yaml:"position"`
	Password          string `yaml:"password"`
	Status            string `yaml:"status,omitempty"`
}

// SeedData is the top-level structure of the seed file
type SeedData struct {
	Organizations []OrganizationData `yaml:"organizations"`
	Employees     []EmployeeData     `yaml:"employees"`
}

func main() {
	log.Println("Loading initial data from YAML...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seedFile := "scripts/seed_data.yaml"
	if len(os.Args) > 1 {
		seedFile = os.Args[1]
	}

	if err := loadSeedData(db, seedFile, cfg.BcryptCost); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err = database.Initialize(dsn, &database.Options{LogLevel: logger.Silent})
		if err == nil {
			return db, nil
		}
		log.Printf("Database not ready (attempt %d/%d): %v", attempt, maxAttempts, err)
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", maxAttempts, err)
}

func loadSeedData(db *gorm.DB, path string, bcryptCost int) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedData
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	hasher := service.NewBcryptHasher(bcryptCost)

	// Organizations first; employees reference them by tax id
	orgsByTaxID := make(map[string]*models.Organization, len(seed.Organizations))
	created, skipped := 0, 0
	for _, orgData := range seed.Organizations {
		org, wasCreated, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("organization %q: %w", orgData.Name, err)
		}
		orgsByTaxID[org.TaxID] = org
		if wasCreated {
			created++
		} else {
			skipped++
		}
	}
	log.Printf("Organizations: %d created, %d already present", created, skipped)

	created, skipped = 0, 0
	for _, employeeData := range seed.Employees {
		wasCreated, err := createEmployee(db, employeeData, orgsByTaxID, hasher)
		if err != nil {
			return fmt.Errorf("employee %q: %w", employeeData.Email, err)
		}
		if wasCreated {
			created++
		} else {
			skipped++
		}
	}
	log.Printf("Employees: %d created, %d already present", created, skipped)

	return nil
}

func createOrganization(db *gorm.DB, data OrganizationData) (*models.Organization, bool, error) {
	var existing models.Organization
	err := db.First(&existing, "tax_id = ?", data.TaxID).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	org := &models.Organization{
		Name:     data.Name,
		Sector:   data.Sector,
		TaxID:    data.TaxID,
		City:     data.City,
		IsActive: true,
	}
	if data.IsActive != nil {
		org.IsActive = *data.IsActive
		if !org.IsActive {
			now := time.Now()
			org.DeactivatedAt = &now
		}
	}

	if err := db.Create(org).Error; err != nil {
		return nil, false, err
	}
	return org, true, nil
}

func createEmployee(db *gorm.DB, data EmployeeData, orgsByTaxID map[string]*models.Organization, hasher service.PasswordHasher) (bool, error) {
	org, ok := orgsByTaxID[data.OrganizationTaxID]
	if !ok {
		return false, fmt.Errorf("unknown organization tax id %q", data.OrganizationTaxID)
	}

	var existing models.Employee
	err := db.First(&existing, "email = ?", data.Email).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	hash, err := hasher.Hash(data.Password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	status := models.EmployeeStatusActive
	if data.Status != "" {
		status = models.EmployeeStatus(data.Status)
		if !status.Valid() {
			return false, fmt.Errorf("invalid status %q", data.Status)
		}
	}

	employee := &models.Employee{
		OrganizationID: org.ID,
		Name:           data.Name,
		Email:          data.Email,
		Position:       data.Position,
		PasswordHash:   hash,
		Status:         status,
	}
	if status == models.EmployeeStatusDeactivated {
		now := time.Now()
		employee.TerminatedAt = &now
	}

	if err := db.Create(employee).Error; err != nil {
		return false, err
	}
	return true, nil
}
