// Package journal implements the diary aggregation and filtering engine:
// date bucketing for the calendar screen, streak counting, search and
// category filtering, and per-card derived display state. Every function
// operates on a read-only snapshot fetched from the backend and never
// mutates a record.
package journal

import (
	"sort"
	"strings"
	"time"

	"harulog/internal/models"
)

// BuildCalendarIndex buckets diaries by their YYYY-MM-DD date key.
// Order within a bucket is the backend response order. Records with a
// malformed timestamp are skipped.
func BuildCalendarIndex(diaries []models.Diary) map[string][]models.Diary {
	index := make(map[string][]models.Diary, len(diaries))
	for _, d := range diaries {
		key := d.DateKey()
		if key == "" {
			continue
		}
		index[key] = append(index[key], d)
	}
	return index
}

// ComputeStreak counts consecutive recent days with at least one diary,
// walking distinct date keys from today backwards. A step of 0 or 1 days
// keeps the streak alive, so a user who wrote yesterday but not yet today
// still sees an active streak. today is taken at local midnight.
func ComputeStreak(diaries []models.Diary, today time.Time) int {
	seen := make(map[string]struct{}, len(diaries))
	keys := make([]string, 0, len(diaries))
	for _, d := range diaries {
		key := d.DateKey()
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	// Zero-padded keys sort correctly as strings.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	cursor := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	streak := 0
	for _, key := range keys {
		day, err := time.ParseInLocation("2006-01-02", key, today.Location())
		if err != nil {
			break
		}
		diff := daysBetween(cursor, day)
		if diff == 0 || diff == 1 {
			streak++
			cursor = day
		} else {
			break
		}
	}
	return streak
}

// daysBetween returns a's calendar date minus b's, in whole days,
// independent of DST shifts.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(au.Sub(bu).Hours() / 24)
}

// FilterDiaries narrows diaries by a case-insensitive title substring and
// an exact category id, combined with AND. When both criteria are absent
// (empty query, categoryID 0) the input slice is returned unchanged.
// Order is preserved.
func FilterDiaries(diaries []models.Diary, query string, categoryID int64) []models.Diary {
	if query == "" && categoryID == 0 {
		return diaries
	}
	q := strings.ToLower(query)
	out := make([]models.Diary, 0, len(diaries))
	for _, d := range diaries {
		if q != "" && !strings.Contains(strings.ToLower(d.Title), q) {
			continue
		}
		if categoryID != 0 && (d.Category == nil || d.Category.ID != categoryID) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// GallerySelection returns the diaries that carry an image, optionally
// narrowed by a case-insensitive title substring. Order is preserved.
func GallerySelection(diaries []models.Diary, query string) []models.Diary {
	q := strings.ToLower(query)
	out := make([]models.Diary, 0, len(diaries))
	for _, d := range diaries {
		if d.ImageURL == "" {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(d.Title), q) {
			continue
		}
		out = append(out, d)
	}
	return out
}
