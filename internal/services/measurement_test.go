package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/sbilibin2017/fiton/internal/policy"
	"github.com/sbilibin2017/fiton/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMeasurementService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockMeasurementRepository(ctrl)
	svc := services.NewMeasurementService(repo)
	subject := policy.Subject{UserID: uuid.New()}

	t.Run("found", func(t *testing.T) {
		want := &models.MeasurementDB{UserID: subject.UserID, Height: ptr(180.0)}
		repo.EXPECT().GetByUserID(gomock.Any(), subject.UserID).Return(want, nil)

		got, err := svc.Get(context.Background(), subject)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("missing", func(t *testing.T) {
		repo.EXPECT().GetByUserID(gomock.Any(), subject.UserID).Return(nil, nil)

		_, err := svc.Get(context.Background(), subject)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := svc.Get(context.Background(), policy.Subject{})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestMeasurementService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockMeasurementRepository(ctrl)
	svc := services.NewMeasurementService(repo)
	subject := policy.Subject{UserID: uuid.New()}

	tests := []struct {
		name      string
		in        *models.MeasurementInput
		repoErr   error
		wantField string
		wantErr   bool
	}{
		{
			name: "valid",
			in:   &models.MeasurementInput{Height: ptr(175.0), Weight: ptr(70.0), Gender: ptr("female")},
		},
		{
			name: "empty record is allowed",
			in:   &models.MeasurementInput{},
		},
		{
			name:      "height out of range",
			in:        &models.MeasurementInput{Height: ptr(301.0)},
			wantField: "height",
		},
		{
			name:      "negative waist",
			in:        &models.MeasurementInput{Waist: ptr(-1.0)},
			wantField: "waist",
		},
		{
			name:      "weight out of range",
			in:        &models.MeasurementInput{Weight: ptr(501.0)},
			wantField: "weight",
		},
		{
			name:      "unknown gender",
			in:        &models.MeasurementInput{Gender: ptr("robot")},
			wantField: "gender",
		},
		{
			name:      "nil body",
			wantField: "body",
		},
		{
			name:    "repository error",
			in:      &models.MeasurementInput{Height: ptr(170.0)},
			repoErr: errors.New("db error"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantField == "" {
				repo.EXPECT().
					Save(gomock.Any(), subject.UserID, tt.in).
					Return(&models.MeasurementDB{UserID: subject.UserID, Height: tt.in.Height}, tt.repoErr)
			}

			got, err := svc.Save(context.Background(), subject, tt.in)
			switch {
			case tt.wantField != "":
				var verr *services.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantField, verr.Field)
			case tt.wantErr:
				assert.Error(t, err)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.Equal(t, subject.UserID, got.UserID)
			}
		})
	}
}

func TestMeasurementService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := services.NewMockMeasurementRepository(ctrl)
	svc := services.NewMeasurementService(repo)
	subject := policy.Subject{UserID: uuid.New()}

	repo.EXPECT().Delete(gomock.Any(), subject.UserID).Return(true, nil)
	assert.NoError(t, svc.Delete(context.Background(), subject))

	repo.EXPECT().Delete(gomock.Any(), subject.UserID).Return(false, nil)
	assert.ErrorIs(t, svc.Delete(context.Background(), subject), services.ErrNotFound)

	repo.EXPECT().Delete(gomock.Any(), subject.UserID).Return(false, errors.New("db error"))
	assert.EqualError(t, svc.Delete(context.Background(), subject), "db error")
}
