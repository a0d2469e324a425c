//go:generate mockgen -source=avatar.go -destination=avatar_mock.go -package=services

package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/facades"
	"github.com/sbilibin2017/fiton/internal/logger"
	"github.com/sbilibin2017/fiton/internal/metrics"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/sbilibin2017/fiton/internal/policy"
)

const vendorImagineArt = "imagineart"

// AvatarGenerator generates an avatar image from a text prompt.
type AvatarGenerator interface {
	Generate(ctx context.Context, prompt string) (*facades.AvatarResult, error)
}

// AvatarService generates free-form avatar images.
type AvatarService struct {
	generator AvatarGenerator
	events    GenerationPublisher
}

// NewAvatarService creates a new AvatarService instance. events may be nil.
func NewAvatarService(generator AvatarGenerator, events GenerationPublisher) *AvatarService {
	return &AvatarService{generator: generator, events: events}
}

// Generate produces an avatar for the prompt. Empty prompts are rejected with a ValidationError.
func (svc *AvatarService) Generate(ctx context.Context, subject policy.Subject, prompt string) (*facades.AvatarResult, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(prompt) == "" {
		return nil, &ValidationError{Field: "prompt", Message: "Prompt cannot be empty."}
	}
	if !policy.Can(subject, policy.Generate, ownedBy(policy.KindUser, subject)) {
		return nil, ErrNotFound
	}

	start := time.Now()
	result, err := svc.generator.Generate(ctx, prompt)
	metrics.RecordGeneration(vendorImagineArt, time.Since(start), err == nil)

	event := models.GenerationEvent{
		EventID:   uuid.NewString(),
		Kind:      models.GenerationAvatar,
		UserID:    subject.UserID.String(),
		Vendor:    vendorImagineArt,
		Success:   err == nil,
		Timestamp: time.Now().Unix(),
	}
	if err != nil {
		event.Error = err.Error()
	}
	if svc.events != nil {
		svc.events.PublishGeneration(ctx, event)
	}

	if err != nil {
		log.Errorw("avatar generation failed", "err", err, "user_id", subject.UserID)
		return nil, err
	}
	return result, nil
}
