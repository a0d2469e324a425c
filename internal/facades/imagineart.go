package facades

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/sbilibin2017/fiton/internal/logger"
	"github.com/tidwall/gjson"
)

const (
	// PlaceholderPNG is a 1x1 transparent PNG returned when the vendor is not configured.
	PlaceholderPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

	safetySuffix = " The subject must be fully clothed in modest, neutral athletic or casual apparel. No nudity, no underwear-only, no transparent or see-through garments, no sexual or explicit content, no exaggerated anatomy. Use the provided measurements exactly; do not invent or randomize proportions; reflect differences faithfully."
)

// AvatarResult is a normalised image generation response.
// At most one of ImageBase64 and URL is usually set; RawJSON holds the body when no known shape matched.
type AvatarResult struct {
	ImageBase64 string
	ImageMime   string
	URL         string
	RawJSON     string
	Shape       string // name of the response shape that matched
}

// ImagineArtClient calls the ImagineArt text-to-image API.
type ImagineArtClient struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewImagineArtClient creates a client. A nil httpClient uses http.DefaultClient.
func NewImagineArtClient(apiKey, apiURL string, httpClient *http.Client) *ImagineArtClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ImagineArtClient{apiKey: apiKey, apiURL: apiURL, client: httpClient}
}

// Configured reports whether both API key and URL are set.
func (c *ImagineArtClient) Configured() bool {
	return c.apiKey != "" && c.apiURL != ""
}

// Generate submits the prompt and normalises the vendor response.
// Without configuration it returns a placeholder image instead of failing.
func (c *ImagineArtClient) Generate(ctx context.Context, prompt string) (*AvatarResult, error) {
	log := logger.FromContext(ctx)

	if !c.Configured() {
		log.Warnw("imagineart is not configured, returning placeholder image")
		return &AvatarResult{
			ImageBase64: PlaceholderPNG,
			ImageMime:   "image/png",
			Shape:       "placeholder",
		}, nil
	}

	effectivePrompt := WithSafetyClause(prompt)

	body, contentType, err := buildImagineArtForm(effectivePrompt)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	log.Infow("sending imagineart request", "url", c.apiURL, "prompt", effectivePrompt)

	resp, err := c.client.Do(req)
	if err != nil {
		log.Errorw("imagineart request failed", "error", err)
		return nil, &UpstreamError{Vendor: "imagineart", Message: "Failed to generate image: " + err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Vendor: "imagineart", Message: "Failed to generate image: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("API Error: %s - %s", resp.Status, string(respBody))
		log.Errorw("imagineart returned error status", "status", resp.StatusCode, "body", string(respBody))
		return nil, &UpstreamError{Vendor: "imagineart", StatusCode: resp.StatusCode, Message: msg}
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "image/") {
		return &AvatarResult{
			ImageBase64: base64.StdEncoding.EncodeToString(respBody),
			ImageMime:   mediaType,
			Shape:       "binary",
		}, nil
	}

	result := decodeImagineArtResponse(respBody)
	log.Infow("imagineart response decoded", "shape", result.Shape)
	return result, nil
}

// WithSafetyClause appends the clothing and safety directives unless the prompt
// already contains the complete clause.
func WithSafetyClause(prompt string) string {
	if strings.Contains(prompt, strings.TrimSpace(safetySuffix)) {
		return prompt
	}
	return prompt + safetySuffix
}

func buildImagineArtForm(prompt string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := []struct{ name, value string }{
		{"prompt", prompt},
		{"style", "realistic"},
		{"aspect_ratio", "1:1"},
		{"seed", "5"},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

type shapeKind int

const (
	shapeURL shapeKind = iota
	shapeBase64
	shapeImageList
)

// responseShape is one known layout of a JSON success response.
type responseShape struct {
	name string
	path string
	kind shapeKind
}

// imagineArtShapes are tried in order; the first one that yields an image wins.
var imagineArtShapes = []responseShape{
	{name: "data.url", path: "data.url", kind: shapeURL},
	{name: "data.image_base64", path: "data.image_base64", kind: shapeBase64},
	{name: "data.images", path: "data.images.0", kind: shapeImageList},
	{name: "url", path: "url", kind: shapeURL},
	{name: "image_url", path: "image_url", kind: shapeURL},
	{name: "image_base64", path: "image_base64", kind: shapeBase64},
	{name: "images", path: "images.0", kind: shapeImageList},
}

func decodeImagineArtResponse(body []byte) *AvatarResult {
	raw := &AvatarResult{RawJSON: string(body), Shape: "raw"}
	if !gjson.ValidBytes(body) {
		return raw
	}

	for _, shape := range imagineArtShapes {
		if res, ok := shape.match(gjson.GetBytes(body, shape.path)); ok {
			res.RawJSON = string(body)
			res.Shape = shape.name
			return res
		}
	}
	return raw
}

func (s responseShape) match(v gjson.Result) (*AvatarResult, bool) {
	switch s.kind {
	case shapeURL:
		if v.Type == gjson.String && v.Str != "" {
			return &AvatarResult{URL: v.Str}, true
		}
	case shapeBase64:
		if v.Type == gjson.String && v.Str != "" {
			return &AvatarResult{ImageBase64: v.Str, ImageMime: "image/png"}, true
		}
	case shapeImageList:
		if v.Type == gjson.String && v.Str != "" {
			if strings.HasPrefix(v.Str, "http") {
				return &AvatarResult{URL: v.Str}, true
			}
			return &AvatarResult{ImageBase64: v.Str, ImageMime: "image/png"}, true
		}
		if v.IsObject() {
			if u := v.Get("url"); u.Type == gjson.String && u.Str != "" {
				return &AvatarResult{URL: u.Str}, true
			}
		}
	}
	return nil, false
}
