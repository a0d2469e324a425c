package repositories

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	put     *s3.PutObjectInput
	body    []byte
	putErr  error
	get     *s3.GetObjectInput
	expires time.Duration
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = params
	f.body, _ = io.ReadAll(params.Body)
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.get = params
	opts := &s3.PresignOptions{}
	for _, fn := range optFns {
		fn(opts)
	}
	f.expires = opts.Expires
	return &v4.PresignedHTTPRequest{URL: "https://bucket.s3.amazonaws.com/" + *params.Key + "?X-Amz-Signature=abc"}, nil
}

func TestS3ImageStore_Save(t *testing.T) {
	fake := &fakeS3{}
	store := NewS3ImageStoreWithClients(fake, fake, "fiton-images")
	userID := uuid.New()

	url, err := store.Save(context.Background(), userID, []byte("png-bytes"), "image/png")
	require.NoError(t, err)

	require.NotNil(t, fake.put)
	assert.Equal(t, "fiton-images", *fake.put.Bucket)
	assert.Equal(t, "image/png", *fake.put.ContentType)
	assert.True(t, strings.HasPrefix(*fake.put.Key, "tryon/"+userID.String()+"/"))
	assert.True(t, strings.HasSuffix(*fake.put.Key, ".png"))
	assert.Equal(t, []byte("png-bytes"), fake.body)

	assert.Equal(t, *fake.put.Key, *fake.get.Key)
	assert.Equal(t, time.Hour, fake.expires)
	assert.Contains(t, url, *fake.put.Key)
}

func TestS3ImageStore_SaveUploadError(t *testing.T) {
	fake := &fakeS3{putErr: errors.New("access denied")}
	store := NewS3ImageStoreWithClients(fake, fake, "fiton-images")

	url, err := store.Save(context.Background(), uuid.New(), []byte("x"), "image/png")
	assert.Error(t, err)
	assert.Empty(t, url)
	assert.Nil(t, fake.get)
}
