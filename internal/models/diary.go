package models

// Category groups diaries under a user-defined label.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EmotionAnalysis is produced asynchronously by the backend's AI pipeline.
// Emotion scores are not guaranteed to sum to 1.
type EmotionAnalysis struct {
	Summary           string             `json:"summary"`
	Emotions          map[string]float64 `json:"emotions"`
	PositivePoints    []string           `json:"positive_points,omitempty"`
	ImprovementPoints string             `json:"improvement_points,omitempty"`
}

// Diary represents one journal entry as returned by the backend.
// CreatedAt is a timestamp string whose first 10 characters form the
// calendar date key (YYYY-MM-DD).
type Diary struct {
	ID        int64            `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	CreatedAt string           `json:"created_at"`
	Category  *Category        `json:"category,omitempty"`
	Mood      string           `json:"mood,omitempty"`
	IsPinned  bool             `json:"is_pinned"`
	IsLocked  bool             `json:"is_locked"`
	ImageURL  string           `json:"image_url,omitempty"`
	Analysis  *EmotionAnalysis `json:"analysis,omitempty"`
}

// DateKey returns the YYYY-MM-DD calendar key of the entry, or "" when
// the timestamp is malformed.
func (d Diary) DateKey() string {
	if len(d.CreatedAt) < 10 {
		return ""
	}
	return d.CreatedAt[:10]
}
