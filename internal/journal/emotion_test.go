package journal

import (
	"testing"

	"harulog/internal/models"
)

func TestTopEmotionGlyph(t *testing.T) {
	tests := []struct {
		name     string
		emotions map[string]float64
		want     string
	}{
		{"korean label wins", map[string]float64{"기쁨": 0.9, "슬픔": 0.1}, "😊"},
		{"english synonym", map[string]float64{"sadness": 0.8, "joy": 0.2}, "😢"},
		{"nil map", nil, PlaceholderGlyph},
		{"empty map", map[string]float64{}, PlaceholderGlyph},
		{"unrecognized label", map[string]float64{"없는감정": 1.0}, FallbackGlyph},
		{"single entry", map[string]float64{"평온": 0.4}, "😌"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TopEmotionGlyph(tc.emotions); got != tc.want {
				t.Fatalf("TopEmotionGlyph(%v) = %q, want %q", tc.emotions, got, tc.want)
			}
		})
	}
}

func TestEmotionTrend(t *testing.T) {
	diaries := []models.Diary{
		{ID: 1, CreatedAt: "2026-01-10T09:00:00", Analysis: &models.EmotionAnalysis{
			Emotions: map[string]float64{"기쁨": 0.8, "슬픔": 0.2},
		}},
		{ID: 2, CreatedAt: "2026-01-10T20:00:00", Analysis: &models.EmotionAnalysis{
			Emotions: map[string]float64{"기쁨": 0.4},
		}},
		{ID: 3, CreatedAt: "2026-01-09T09:00:00", Analysis: &models.EmotionAnalysis{
			Emotions: map[string]float64{"불안": 0.5},
		}},
		{ID: 4, CreatedAt: "2026-01-08T09:00:00"}, // no analysis, skipped
	}

	trend := EmotionTrend(diaries)

	if len(trend) != 2 {
		t.Fatalf("expected 2 trend points, got %d", len(trend))
	}
	if trend[0].Date != "2026-01-09" || trend[1].Date != "2026-01-10" {
		t.Fatalf("dates not ascending: %q, %q", trend[0].Date, trend[1].Date)
	}
	if got := trend[1].Emotions["기쁨"]; got != 0.6 {
		t.Errorf("기쁨 mean on 2026-01-10 = %v, want 0.6", got)
	}
	if got := trend[1].Emotions["슬픔"]; got != 0.2 {
		t.Errorf("슬픔 mean on 2026-01-10 = %v, want 0.2", got)
	}
	if got := trend[0].Emotions["불안"]; got != 0.5 {
		t.Errorf("불안 mean on 2026-01-09 = %v, want 0.5", got)
	}
}
