//go:generate mockgen -source=measurement.go -destination=measurement_mock.go -package=services

package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/logger"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/sbilibin2017/fiton/internal/policy"
)

// MeasurementRepository defines storage operations for body measurements.
type MeasurementRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MeasurementDB, error)
	Save(ctx context.Context, userID uuid.UUID, in *models.MeasurementInput) (*models.MeasurementDB, error)
	Delete(ctx context.Context, userID uuid.UUID) (bool, error)
}

// MeasurementService manages the caller's single measurement record.
type MeasurementService struct {
	repo MeasurementRepository
}

// NewMeasurementService creates a new MeasurementService instance.
func NewMeasurementService(repo MeasurementRepository) *MeasurementService {
	return &MeasurementService{repo: repo}
}

// Get returns the caller's measurements or ErrNotFound.
func (svc *MeasurementService) Get(ctx context.Context, subject policy.Subject) (*models.MeasurementDB, error) {
	if !policy.Can(subject, policy.Read, ownedBy(policy.KindMeasurement, subject)) {
		return nil, ErrNotFound
	}

	m, err := svc.repo.GetByUserID(ctx, subject.UserID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get measurements", "err", err, "user_id", subject.UserID)
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

// Save creates or replaces the caller's measurements.
func (svc *MeasurementService) Save(ctx context.Context, subject policy.Subject, in *models.MeasurementInput) (*models.MeasurementDB, error) {
	if !policy.Can(subject, policy.Update, ownedBy(policy.KindMeasurement, subject)) {
		return nil, ErrNotFound
	}
	if in == nil {
		return nil, &ValidationError{Field: "body", Message: "Measurement data is required."}
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	m, err := svc.repo.Save(ctx, subject.UserID, in)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save measurements", "err", err, "user_id", subject.UserID)
		return nil, err
	}
	return m, nil
}

// Delete removes the caller's measurements. ErrNotFound is returned when there was nothing to delete.
func (svc *MeasurementService) Delete(ctx context.Context, subject policy.Subject) error {
	if !policy.Can(subject, policy.Delete, ownedBy(policy.KindMeasurement, subject)) {
		return ErrNotFound
	}

	deleted, err := svc.repo.Delete(ctx, subject.UserID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete measurements", "err", err, "user_id", subject.UserID)
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// ownedBy describes the subject's own record of the given kind.
func ownedBy(kind policy.Kind, subject policy.Subject) policy.Resource {
	return policy.Resource{Kind: kind, OwnerID: subject.UserID}
}
