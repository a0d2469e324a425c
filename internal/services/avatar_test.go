package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/facades"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/sbilibin2017/fiton/internal/policy"
	"github.com/sbilibin2017/fiton/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := services.NewMockAvatarGenerator(ctrl)
	events := services.NewMockGenerationPublisher(ctrl)
	svc := services.NewAvatarService(generator, events)
	subject := policy.Subject{UserID: uuid.New()}

	t.Run("success", func(t *testing.T) {
		want := &facades.AvatarResult{URL: "https://img.example/1.png", Shape: "data.url"}
		generator.EXPECT().Generate(gomock.Any(), "a person in a suit").Return(want, nil)
		events.EXPECT().
			PublishGeneration(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, ev models.GenerationEvent) {
				assert.Equal(t, models.GenerationAvatar, ev.Kind)
				assert.Equal(t, "imagineart", ev.Vendor)
				assert.True(t, ev.Success)
				assert.NotEmpty(t, ev.EventID)
			})

		got, err := svc.Generate(context.Background(), subject, "a person in a suit")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("empty prompt", func(t *testing.T) {
		_, err := svc.Generate(context.Background(), subject, "   ")

		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Prompt cannot be empty.", verr.Message)
	})

	t.Run("vendor error", func(t *testing.T) {
		upstream := &facades.UpstreamError{Vendor: "imagineart", StatusCode: 401, Message: "API Error: 401 Unauthorized - bad key"}
		generator.EXPECT().Generate(gomock.Any(), "hat").Return(nil, upstream)
		events.EXPECT().
			PublishGeneration(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, ev models.GenerationEvent) {
				assert.False(t, ev.Success)
				assert.Equal(t, upstream.Message, ev.Error)
			})

		_, err := svc.Generate(context.Background(), subject, "hat")
		assert.Equal(t, upstream, err)
	})

	t.Run("without publisher", func(t *testing.T) {
		svc := services.NewAvatarService(generator, nil)
		generator.EXPECT().Generate(gomock.Any(), "scarf").Return(&facades.AvatarResult{}, nil)

		_, err := svc.Generate(context.Background(), subject, "scarf")
		assert.NoError(t, err)
	})
}
