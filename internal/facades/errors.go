package facades

import "errors"

var (
	ErrVertexNotConfigured = errors.New("Google Cloud is not properly configured. Please check the project id and location settings")
	ErrNoPredictions       = errors.New("No image was generated. This may be due to content filtering or API limitations. Please try with different measurements or outfit combinations.")
)

// UpstreamError is a failure reported by an image generation vendor.
// Message is passed to the caller unchanged.
type UpstreamError struct {
	Vendor     string
	StatusCode int // HTTP status from the vendor, 0 when not applicable
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}
