package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yungbote/studypass-backend/internal/domain"
	"github.com/yungbote/studypass-backend/internal/platform/envutil"
	"github.com/yungbote/studypass-backend/internal/platform/logger"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := envutil.String("POSTGRES_HOST", "localhost")
	postgresPort := envutil.String("POSTGRES_PORT", "5432")
	postgresUser := envutil.String("POSTGRES_USER", "postgres")
	postgresPassword := envutil.String("POSTGRES_PASSWORD", "")
	postgresName := envutil.String("POSTGRES_NAME", "studypass")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	theDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return &PostgresService{db: theDB, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := s.db.AutoMigrate(
		&domain.Student{},
		&domain.Subscription{},
		&domain.Payment{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	// The uniqueness race between the handler's existence check and the
	// later insert is closed here, not in the handler.
	if err := s.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS "uq_student_document_number"
		ON "student" ("document_number")
	`).Error; err != nil {
		return fmt.Errorf("create unique document index: %w", err)
	}
	if err := s.db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS "uq_student_email_address"
		ON "student" ("email_address")
	`).Error; err != nil {
		return fmt.Errorf("create unique email index: %w", err)
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	if err := s.db.Exec(`
		ALTER TABLE "subscription"
		ADD CONSTRAINT "fk_subscription_student_id"
		FOREIGN KEY ("student_id")
		REFERENCES "student"("id")
		ON DELETE CASCADE
	`).Error; err != nil && !isDuplicateConstraint(err) {
		return fmt.Errorf("add fk_subscription_student_id: %w", err)
	}
	if err := s.db.Exec(`
		ALTER TABLE "payment"
		ADD CONSTRAINT "fk_payment_subscription_id"
		FOREIGN KEY ("subscription_id")
		REFERENCES "subscription"("id")
		ON DELETE CASCADE
	`).Error; err != nil && !isDuplicateConstraint(err) {
		return fmt.Errorf("add fk_payment_subscription_id: %w", err)
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}

func isDuplicateConstraint(err error) bool {
	if err == nil {
		return false
	}
	// 42710: duplicate_object, raised when the constraint already exists.
	return strings.Contains(err.Error(), "42710") || strings.Contains(err.Error(), "already exists")
}
