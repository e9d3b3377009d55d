package entity

// Masterclass is a static educational content item: a video lesson or a
// written archive article.
type Masterclass struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Duration    string `json:"duration"`
	Category    string `json:"category"`
	VideoURL    string `json:"video_url,omitempty"`
	Description string `json:"description"`
	Content     string `json:"content"`
}
