//go:generate mockgen -source=tryon.go -destination=tryon_mock.go -package=services

package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/logger"
	"github.com/sbilibin2017/fiton/internal/metrics"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/sbilibin2017/fiton/internal/policy"
	"github.com/sbilibin2017/fiton/internal/prompt"
)

const (
	vendorVertex = "vertex"

	// MinTryOnHeight is the smallest height in cm accepted for try-on generation.
	MinTryOnHeight = 150.0
)

// MeasurementReader reads a user's measurements.
type MeasurementReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.MeasurementDB, error)
}

// WardrobeResolver returns a caller's wardrobe with clothing items resolved.
type WardrobeResolver interface {
	Get(ctx context.Context, subject policy.Subject, id int64) (*models.Wardrobe, error)
}

// ImageGenerator generates an image from a prompt and returns it as a data URL.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ImageStore persists generated images and returns a URL to them.
type ImageStore interface {
	Save(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error)
}

// TryOnResult is a generated try-on image and the prompt that produced it.
type TryOnResult struct {
	ImageURL  string
	Prompt    string
	StoredURL string
}

// TryOnService renders the caller wearing one of their wardrobes.
type TryOnService struct {
	measurements MeasurementReader
	wardrobes    WardrobeResolver
	generator    ImageGenerator
	store        ImageStore
	events       GenerationPublisher
}

// NewTryOnService creates a new TryOnService instance. store and events may be nil.
func NewTryOnService(
	measurements MeasurementReader,
	wardrobes WardrobeResolver,
	generator ImageGenerator,
	store ImageStore,
	events GenerationPublisher,
) *TryOnService {
	return &TryOnService{
		measurements: measurements,
		wardrobes:    wardrobes,
		generator:    generator,
		store:        store,
		events:       events,
	}
}

// Generate builds the try-on prompt from the caller's measurements and wardrobe and renders it.
func (svc *TryOnService) Generate(ctx context.Context, subject policy.Subject, wardrobeID int64) (*TryOnResult, error) {
	log := logger.FromContext(ctx)

	if !policy.Can(subject, policy.Generate, ownedBy(policy.KindMeasurement, subject)) {
		return nil, ErrNotFound
	}

	m, err := svc.measurements.GetByUserID(ctx, subject.UserID)
	if err != nil {
		log.Errorw("failed to get measurements", "err", err, "user_id", subject.UserID)
		return nil, err
	}
	if m == nil {
		return nil, ErrMeasurementsRequired
	}
	if m.Height != nil && *m.Height < MinTryOnHeight {
		return nil, ErrHeightTooLow
	}

	w, err := svc.wardrobes.Get(ctx, subject, wardrobeID)
	if err != nil {
		return nil, err
	}

	p := prompt.BuildTryOnPrompt(m, w)
	log.Infow("generating try-on image", "user_id", subject.UserID, "wardrobe_id", wardrobeID)

	start := time.Now()
	imageURL, err := svc.generator.Generate(ctx, p)
	metrics.RecordGeneration(vendorVertex, time.Since(start), err == nil)

	event := models.GenerationEvent{
		EventID:    uuid.NewString(),
		Kind:       models.GenerationTryOn,
		UserID:     subject.UserID.String(),
		Vendor:     vendorVertex,
		Success:    err == nil,
		WardrobeID: wardrobeID,
		Timestamp:  time.Now().Unix(),
	}

	if err != nil {
		event.Error = err.Error()
		svc.publish(ctx, event)
		log.Errorw("try-on generation failed", "err", err, "user_id", subject.UserID)
		return nil, err
	}

	result := &TryOnResult{ImageURL: imageURL, Prompt: p}
	if stored, err := svc.storeImage(ctx, subject.UserID, imageURL); err != nil {
		log.Warnw("failed to store try-on image", "err", err, "user_id", subject.UserID)
	} else {
		result.StoredURL = stored
		event.StoredURL = stored
	}

	svc.publish(ctx, event)
	return result, nil
}

func (svc *TryOnService) publish(ctx context.Context, event models.GenerationEvent) {
	if svc.events != nil {
		svc.events.PublishGeneration(ctx, event)
	}
}

// storeImage uploads a data URL's payload. Without a store it returns "".
func (svc *TryOnService) storeImage(ctx context.Context, userID uuid.UUID, dataURL string) (string, error) {
	if svc.store == nil {
		return "", nil
	}

	data, contentType, err := decodeDataURL(dataURL)
	if err != nil {
		return "", err
	}
	return svc.store.Save(ctx, userID, data, contentType)
}

var errInvalidDataURL = errors.New("invalid data url")

func decodeDataURL(s string) ([]byte, string, error) {
	header, payload, ok := strings.Cut(s, ",")
	if !ok || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, "", errInvalidDataURL
	}

	contentType := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}
