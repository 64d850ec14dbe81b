package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/studypass-backend/internal/domain"
	"github.com/yungbote/studypass-backend/internal/platform/logger"
)

// StudentRepo is the persistence boundary for the student aggregate.
// CreateSubscription persists the student together with its
// subscriptions and payments as one unit.
type StudentRepo interface {
	DocumentExists(ctx context.Context, tx *gorm.DB, document string) (bool, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	CreateSubscription(ctx context.Context, tx *gorm.DB, student *domain.Student) error
}

type studentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudentRepo(db *gorm.DB, baseLog *logger.Logger) StudentRepo {
	repoLog := baseLog.With("repo", "StudentRepo")
	return &studentRepo{db: db, log: repoLog}
}

func (sr *studentRepo) DocumentExists(ctx context.Context, tx *gorm.DB, document string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Student{}).
		Where("document_number = ?", document).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (sr *studentRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Student{}).
		Where("email_address = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (sr *studentRepo) CreateSubscription(ctx context.Context, tx *gorm.DB, student *domain.Student) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}

	if err := transaction.WithContext(ctx).Create(student).Error; err != nil {
		return err
	}
	return nil
}
