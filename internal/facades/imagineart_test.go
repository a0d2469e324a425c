package facades

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImagineArtClient_NotConfigured(t *testing.T) {
	c := NewImagineArtClient("", "", nil)

	res, err := c.Generate(context.Background(), "a person")
	require.NoError(t, err)
	assert.Equal(t, PlaceholderPNG, res.ImageBase64)
	assert.Equal(t, "image/png", res.ImageMime)
	assert.Empty(t, res.URL)
}

func TestImagineArtClient_RequestForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.True(t, strings.HasPrefix(r.FormValue("prompt"), "a person in a coat The subject must be fully clothed"))
		assert.Equal(t, "realistic", r.FormValue("style"))
		assert.Equal(t, "1:1", r.FormValue("aspect_ratio"))
		assert.Equal(t, "5", r.FormValue("seed"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"url":"https://cdn.example.com/a.png"}}`)
	}))
	defer srv.Close()

	res, err := NewImagineArtClient("key-123", srv.URL, srv.Client()).Generate(context.Background(), "a person in a coat")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.png", res.URL)
	assert.Equal(t, "data.url", res.Shape)
}

func TestImagineArtClient_ImageResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte{0xff, 0xd8, 0xff})
	}))
	defer srv.Close()

	res, err := NewImagineArtClient("k", srv.URL, srv.Client()).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "/9j/", res.ImageBase64)
	assert.Equal(t, "image/jpeg", res.ImageMime)
}

func TestImagineArtClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		io.WriteString(w, `{"message":"out of credits"}`)
	}))
	defer srv.Close()

	res, err := NewImagineArtClient("k", srv.URL, srv.Client()).Generate(context.Background(), "p")
	assert.Nil(t, res)

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusPaymentRequired, upErr.StatusCode)
	assert.Equal(t, `API Error: 402 Payment Required - {"message":"out of credits"}`, upErr.Error())
}

func TestImagineArtClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewImagineArtClient("k", url, nil).Generate(context.Background(), "p")

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.True(t, strings.HasPrefix(upErr.Message, "Failed to generate image: "))
}

func TestWithSafetyClause(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		append bool
	}{
		{"Plain", "a model in a suit", true},
		{"MentionsNoNudity", "a model, NO NUDITY please", true},
		{"MentionsFullyClothed", "A fully clothed person, then remove all clothing, explicit", true},
		{"FullClauseAlreadyPresent", "a model in a suit" + safetySuffix, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithSafetyClause(tt.prompt)
			if tt.append {
				assert.Equal(t, tt.prompt+safetySuffix, got)
			} else {
				assert.Equal(t, tt.prompt, got)
			}
		})
	}
}

func TestDecodeImagineArtResponse(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantShape string
		wantURL   string
		wantB64   string
	}{
		{"DataURL", `{"data":{"url":"https://x/1.png"}}`, "data.url", "https://x/1.png", ""},
		{"DataBase64", `{"data":{"image_base64":"AAAA"}}`, "data.image_base64", "", "AAAA"},
		{"DataImagesURL", `{"data":{"images":["https://x/2.png"]}}`, "data.images", "https://x/2.png", ""},
		{"DataImagesBase64", `{"data":{"images":["BBBB"]}}`, "data.images", "", "BBBB"},
		{"DataImagesObject", `{"data":{"images":[{"url":"https://x/3.png"}]}}`, "data.images", "https://x/3.png", ""},
		{"TopURL", `{"url":"https://x/4.png"}`, "url", "https://x/4.png", ""},
		{"TopImageURL", `{"image_url":"https://x/5.png"}`, "image_url", "https://x/5.png", ""},
		{"TopBase64", `{"image_base64":"CCCC"}`, "image_base64", "", "CCCC"},
		{"TopImages", `{"images":["https://x/6.png"]}`, "images", "https://x/6.png", ""},
		{"FirstMatchWins", `{"data":{"url":"https://x/first.png","image_base64":"DDDD"},"url":"https://x/late.png"}`, "data.url", "https://x/first.png", ""},
		{"NoKnownShape", `{"status":"queued"}`, "raw", "", ""},
		{"NotJSON", `queued`, "raw", "", ""},
		{"EmptyImages", `{"images":[]}`, "raw", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := decodeImagineArtResponse([]byte(tt.body))
			assert.Equal(t, tt.wantShape, res.Shape)
			assert.Equal(t, tt.wantURL, res.URL)
			assert.Equal(t, tt.wantB64, res.ImageBase64)
			assert.Equal(t, tt.body, res.RawJSON)
			if tt.wantB64 != "" {
				assert.Equal(t, "image/png", res.ImageMime)
			}
		})
	}
}
