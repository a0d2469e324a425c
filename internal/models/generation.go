package models

// Generation kinds.
const (
	GenerationAvatar = "avatar"
	GenerationTryOn  = "try_on"
)

// GenerationEvent is published after every image generation attempt.
type GenerationEvent struct {
	EventID    string `json:"event_id"`              // Unique event id
	Kind       string `json:"kind"`                  // avatar or try_on
	UserID     string `json:"user_id"`               // Requesting user
	Vendor     string `json:"vendor"`                // imagineart or vertex
	Success    bool   `json:"success"`               // Whether an image was produced
	Error      string `json:"error,omitempty"`       // Vendor error, if any
	WardrobeID int64  `json:"wardrobe_id,omitempty"` // Set for try-on
	StoredURL  string `json:"stored_url,omitempty"`  // Object storage URL, if uploaded
	Timestamp  int64  `json:"timestamp"`             // Unix seconds
}
