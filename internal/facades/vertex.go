package facades

import (
	"context"
	"fmt"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/sbilibin2017/fiton/internal/logger"
	"google.golang.org/api/option"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// DefaultVertexModel is the Imagen model used when none is configured.
const DefaultVertexModel = "imagegeneration@006"

// Predictor is the subset of the Vertex AI prediction client used here.
type Predictor interface {
	Predict(ctx context.Context, req *aiplatformpb.PredictRequest, opts ...gax.CallOption) (*aiplatformpb.PredictResponse, error)
	Close() error
}

// PredictorFactory dials a prediction client for a regional endpoint.
type PredictorFactory func(ctx context.Context, endpoint string) (Predictor, error)

// NewPredictionClient is the production PredictorFactory.
// Credentials come from Application Default Credentials.
func NewPredictionClient(opts ...option.ClientOption) PredictorFactory {
	return func(ctx context.Context, endpoint string) (Predictor, error) {
		return aiplatform.NewPredictionClient(ctx, append([]option.ClientOption{option.WithEndpoint(endpoint)}, opts...)...)
	}
}

// VertexImageGenerator generates try-on images with Vertex AI Imagen.
type VertexImageGenerator struct {
	projectID string
	location  string
	modelID   string
	factory   PredictorFactory
}

// NewVertexImageGenerator creates a generator. An empty modelID selects DefaultVertexModel.
func NewVertexImageGenerator(projectID, location, modelID string, factory PredictorFactory) *VertexImageGenerator {
	if modelID == "" {
		modelID = DefaultVertexModel
	}
	return &VertexImageGenerator{
		projectID: projectID,
		location:  location,
		modelID:   modelID,
		factory:   factory,
	}
}

// Generate returns the first generated image as a data:image/png;base64 URL.
func (g *VertexImageGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)

	if g.projectID == "" || g.location == "" || g.factory == nil {
		log.Errorw("google cloud configuration is missing")
		return "", ErrVertexNotConfigured
	}

	client, err := g.factory(ctx, g.location+"-aiplatform.googleapis.com:443")
	if err != nil {
		log.Errorw("failed to create prediction client", "error", err)
		return "", &UpstreamError{Vendor: "vertex", Message: err.Error()}
	}
	defer client.Close()

	req, err := g.buildRequest(prompt)
	if err != nil {
		return "", err
	}

	log.Infow("calling vertex imagen", "endpoint", req.Endpoint, "prompt", prompt)

	resp, err := client.Predict(ctx, req)
	if err != nil {
		msg := status.Convert(err).Message()
		log.Errorw("vertex predict failed", "error", msg)
		return "", &UpstreamError{Vendor: "vertex", Message: msg}
	}

	log.Infow("vertex response received", "predictions", len(resp.GetPredictions()))

	if len(resp.GetPredictions()) == 0 {
		return "", ErrNoPredictions
	}

	b64 := resp.GetPredictions()[0].GetStructValue().GetFields()["bytesBase64Encoded"].GetStringValue()
	if b64 == "" {
		return "", &UpstreamError{Vendor: "vertex", Message: "prediction is missing bytesBase64Encoded"}
	}

	return "data:image/png;base64," + b64, nil
}

func (g *VertexImageGenerator) buildRequest(prompt string) (*aiplatformpb.PredictRequest, error) {
	instance, err := structpb.NewValue(map[string]interface{}{
		"prompt": prompt,
	})
	if err != nil {
		return nil, err
	}

	params, err := structpb.NewValue(map[string]interface{}{
		"sampleCount":      1,
		"aspectRatio":      "9:16",
		"safetySetting":    "block_some",
		"personGeneration": "allow_adult",
	})
	if err != nil {
		return nil, err
	}

	return &aiplatformpb.PredictRequest{
		Endpoint:   fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s", g.projectID, g.location, g.modelID),
		Instances:  []*structpb.Value{instance},
		Parameters: params,
	}, nil
}
