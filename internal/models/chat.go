package models

// ChatMessage is one turn of the per-diary reflection chat.
// Role is "user" or "assistant".
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MonthlyReport is the AI-written summary of one month of diaries.
type MonthlyReport struct {
	Report     string `json:"report"`
	DiaryCount int    `json:"diary_count"`
}

// TrendPoint holds the per-date emotion scores used by the trend chart.
type TrendPoint struct {
	Date     string             `json:"date"`
	Emotions map[string]float64 `json:"emotions"`
}

// Statistics aggregates emotion data across all diaries.
type Statistics struct {
	EmotionDistribution  map[string]float64 `json:"emotion_distribution"`
	TotalCount           int                `json:"total_count"`
	RecentPositivePoints [][]string         `json:"recent_positive_points"`
	EmotionTrend         []TrendPoint       `json:"emotion_trend,omitempty"`
}
