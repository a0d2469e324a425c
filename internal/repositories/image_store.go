package repositories

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sbilibin2017/fiton/internal/logger"
)

const presignExpiry = time.Hour

// S3Putter is the subset of the S3 client used to upload objects.
type S3Putter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Presigner is the subset of the S3 presign client used to share objects.
type S3Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3ImageStore keeps generated images in an S3 bucket.
type S3ImageStore struct {
	client    S3Putter
	presigner S3Presigner
	bucket    string
}

// NewS3ImageStore creates a store backed by an S3 client.
func NewS3ImageStore(client *s3.Client, bucket string) *S3ImageStore {
	return NewS3ImageStoreWithClients(client, s3.NewPresignClient(client), bucket)
}

// NewS3ImageStoreWithClients creates a store from explicit upload and presign clients.
func NewS3ImageStoreWithClients(client S3Putter, presigner S3Presigner, bucket string) *S3ImageStore {
	return &S3ImageStore{client: client, presigner: presigner, bucket: bucket}
}

// Save uploads the image under the user's prefix and returns a presigned GET URL valid for one hour.
func (s *S3ImageStore) Save(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("tryon/%s/%s%s", userID, uuid.NewString(), extensionFor(contentType))
	log := logger.FromContext(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	log.Infow("s3 put object", "bucket", s.bucket, "key", key, "size", len(data), "error", err)
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		log.Errorw("failed to presign image url", "key", key, "error", err)
		return "", fmt.Errorf("failed to sign request: %w", err)
	}

	return req.URL, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
