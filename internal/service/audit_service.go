package service

import (
	"context"

	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records an append-only trail of appointment and account
// mutations. Recording failures are logged and never fail the request.
type AuditService interface {
	Record(ctx context.Context, userID uuid.UUID, action string, metadata entity.JSON)
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, userID uuid.UUID, action string, metadata entity.JSON) {
	entry := &entity.AuditLog{
		UserID:   &userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(s.db.WithContext(ctx), entry); err != nil {
		s.log.Warnf("Failed to record audit entry %s: %+v", action, err)
	}
}
