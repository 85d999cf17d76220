package enquiry

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/go-playground/validator/v10"
	domain "github.com/rohit-kumar-in/Arvind-Trader/domain/enquiry"
	"github.com/rohit-kumar-in/Arvind-Trader/events"
	"github.com/rohit-kumar-in/Arvind-Trader/validation"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// EnquiryModule stores contact-form submissions in SQLite.
type EnquiryModule struct {
	logger   types.Logger
	dbPath   string
	db       *gorm.DB
	repo     *EnquiryRepository
	validate *validator.Validate
	eventBus mono.EventBus
}

// Compile-time interface checks
var (
	_ mono.Module                = (*EnquiryModule)(nil)
	_ mono.ServiceProviderModule = (*EnquiryModule)(nil)
	_ mono.EventEmitterModule    = (*EnquiryModule)(nil)
	_ mono.HealthCheckableModule = (*EnquiryModule)(nil)
)

// NewModule creates a new enquiry module backed by the SQLite file at dbPath.
func NewModule(logger types.Logger, dbPath string) *EnquiryModule {
	return &EnquiryModule{
		logger:   logger.WithModule("enquiry"),
		dbPath:   dbPath,
		validate: validation.New(),
	}
}

// Name returns the module name.
func (m *EnquiryModule) Name() string {
	return "enquiry"
}

// SetEventBus receives the EventBus from the framework.
func (m *EnquiryModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *EnquiryModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.EnquiryReceivedV1.ToBase(),
	}
}

// RegisterServices registers the enquiry request-reply services.
func (m *EnquiryModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "submit-enquiry", json.Unmarshal, json.Marshal, m.submitEnquiry,
	); err != nil {
		return fmt.Errorf("failed to register submit-enquiry service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-enquiries", json.Unmarshal, json.Marshal, m.listEnquiries,
	); err != nil {
		return fmt.Errorf("failed to register list-enquiries service: %w", err)
	}

	log.Printf("[enquiry] Registered services: submit-enquiry, list-enquiries")
	return nil
}

// Start opens the database and migrates the enquiries table.
func (m *EnquiryModule) Start(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.Enquiry{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	m.repo = NewEnquiryRepository(db)

	log.Printf("[enquiry] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop closes the database.
func (m *EnquiryModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[enquiry] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *EnquiryModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.dbPath,
		},
	}
}
