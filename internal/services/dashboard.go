//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=services

package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/logger"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/sbilibin2017/fiton/internal/policy"
)

// UserDirectory looks up user accounts.
type UserDirectory interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserSummary, error)
}

// Profile is a user together with their measurements, if any.
type Profile struct {
	User         *models.UserDB
	Measurements *models.MeasurementDB
}

// Stats summarises the caller's profile completeness.
type Stats struct {
	HasMeasurements bool
	IsAdmin         bool
	ProfileComplete bool
}

// DashboardService serves the profile overview and the admin user listing.
type DashboardService struct {
	users        UserDirectory
	measurements MeasurementReader
}

// NewDashboardService creates a new DashboardService instance.
func NewDashboardService(users UserDirectory, measurements MeasurementReader) *DashboardService {
	return &DashboardService{users: users, measurements: measurements}
}

// Profile returns the caller's account and measurements.
func (svc *DashboardService) Profile(ctx context.Context, subject policy.Subject) (*Profile, error) {
	log := logger.FromContext(ctx)

	user, err := svc.users.GetByID(ctx, subject.UserID)
	if err != nil {
		log.Errorw("failed to get user", "err", err, "user_id", subject.UserID)
		return nil, err
	}
	if user == nil || !policy.Can(subject, policy.Read, policy.Resource{Kind: policy.KindUser, OwnerID: user.UserID}) {
		return nil, ErrNotFound
	}

	m, err := svc.measurements.GetByUserID(ctx, user.UserID)
	if err != nil {
		log.Errorw("failed to get measurements", "err", err, "user_id", subject.UserID)
		return nil, err
	}

	return &Profile{User: user, Measurements: m}, nil
}

// Stats reports whether the caller has measurements and is an admin.
func (svc *DashboardService) Stats(ctx context.Context, subject policy.Subject) (*Stats, error) {
	profile, err := svc.Profile(ctx, subject)
	if err != nil {
		return nil, err
	}

	has := profile.Measurements != nil
	return &Stats{
		HasMeasurements: has,
		IsAdmin:         profile.User.IsAdmin,
		ProfileComplete: has,
	}, nil
}

// ListUsers returns every user for an admin caller and ErrForbidden otherwise.
// The admin flag is read from storage rather than trusted from the token.
func (svc *DashboardService) ListUsers(ctx context.Context, subject policy.Subject) ([]models.UserSummary, error) {
	log := logger.FromContext(ctx)

	current, err := svc.users.GetByID(ctx, subject.UserID)
	if err != nil {
		log.Errorw("failed to get user", "err", err, "user_id", subject.UserID)
		return nil, err
	}
	if current == nil || !current.IsAdmin {
		return nil, ErrForbidden
	}
	subject.IsAdmin = true

	users, err := svc.users.List(ctx)
	if err != nil {
		log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	visible := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		if policy.Can(subject, policy.List, policy.Resource{Kind: policy.KindUser, OwnerID: u.UserID}) {
			visible = append(visible, u)
		}
	}
	return visible, nil
}
