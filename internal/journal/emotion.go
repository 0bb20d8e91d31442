package journal

import (
	"sort"

	"harulog/internal/models"
)

const (
	// PlaceholderGlyph is shown for entries without an emotion analysis.
	PlaceholderGlyph = "📔"
	// FallbackGlyph is shown when the top emotion label is unrecognized.
	FallbackGlyph = "💙"
)

// emotionGlyphs maps backend emotion labels to display glyphs. The
// backend emits Korean labels; the English synonyms cover older analyses.
var emotionGlyphs = map[string]string{
	"기쁨": "😊", "슬픔": "😢", "불안": "😰", "분노": "😤", "평온": "😌",
	"joy": "😊", "sadness": "😢", "anxiety": "😰", "anger": "😤", "calm": "😌",
}

// TopEmotionGlyph picks the glyph of the highest-scoring emotion.
// Nil or empty input yields the placeholder. Ties keep the first maximum
// encountered; since Go randomizes map iteration, a tie between equal
// scores is not deterministic across calls.
func TopEmotionGlyph(emotions map[string]float64) string {
	if len(emotions) == 0 {
		return PlaceholderGlyph
	}
	var topLabel string
	topScore := 0.0
	first := true
	for label, score := range emotions {
		if first || score > topScore {
			topLabel = label
			topScore = score
			first = false
		}
	}
	if glyph, ok := emotionGlyphs[topLabel]; ok {
		return glyph
	}
	return FallbackGlyph
}

// EmotionTrend averages emotion scores per calendar date across all
// analyzed diaries, dates ascending. Entries without an analysis are
// ignored.
func EmotionTrend(diaries []models.Diary) []models.TrendPoint {
	sums := make(map[string]map[string]float64)
	counts := make(map[string]map[string]int)
	for _, d := range diaries {
		if d.Analysis == nil || len(d.Analysis.Emotions) == 0 {
			continue
		}
		key := d.DateKey()
		if key == "" {
			continue
		}
		if sums[key] == nil {
			sums[key] = make(map[string]float64)
			counts[key] = make(map[string]int)
		}
		for label, score := range d.Analysis.Emotions {
			sums[key][label] += score
			counts[key][label]++
		}
	}

	dates := make([]string, 0, len(sums))
	for date := range sums {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	trend := make([]models.TrendPoint, 0, len(dates))
	for _, date := range dates {
		emotions := make(map[string]float64, len(sums[date]))
		for label, sum := range sums[date] {
			emotions[label] = sum / float64(counts[date][label])
		}
		trend = append(trend, models.TrendPoint{Date: date, Emotions: emotions})
	}
	return trend
}
