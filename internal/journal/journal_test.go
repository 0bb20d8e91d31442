package journal

import (
	"reflect"
	"testing"
	"time"

	"harulog/internal/models"
)

func day(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", key, time.Local)
	if err != nil {
		t.Fatalf("bad date key %q: %v", key, err)
	}
	return d
}

func diaryOn(id int64, createdAt string) models.Diary {
	return models.Diary{ID: id, CreatedAt: createdAt}
}

func TestBuildCalendarIndexBuckets(t *testing.T) {
	diaries := []models.Diary{
		diaryOn(1, "2026-01-10T09:00:00"),
		diaryOn(2, "2026-01-10T18:00:00"),
		diaryOn(3, "2026-01-11T09:00:00"),
	}

	index := BuildCalendarIndex(diaries)

	if len(index) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(index))
	}
	if got := index["2026-01-10"]; len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("2026-01-10 bucket wrong: %+v", got)
	}
	if got := index["2026-01-11"]; len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("2026-01-11 bucket wrong: %+v", got)
	}
}

func TestBuildCalendarIndexPartition(t *testing.T) {
	diaries := []models.Diary{
		diaryOn(1, "2026-03-01T08:00:00"),
		diaryOn(2, "2026-03-02T08:00:00"),
		diaryOn(3, "2026-03-01T20:00:00"),
		diaryOn(4, "2026-02-28T23:59:59"),
	}

	index := BuildCalendarIndex(diaries)

	// Every record lands in exactly one bucket, keyed by its own date.
	seen := make(map[int64]int)
	for key, bucket := range index {
		for _, d := range bucket {
			seen[d.ID]++
			if d.DateKey() != key {
				t.Errorf("diary %d bucketed under %q, date key is %q", d.ID, key, d.DateKey())
			}
		}
	}
	if len(seen) != len(diaries) {
		t.Fatalf("expected %d distinct records across buckets, got %d", len(diaries), len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("diary %d appears %d times", id, n)
		}
	}
}

func TestBuildCalendarIndexEmpty(t *testing.T) {
	if index := BuildCalendarIndex(nil); len(index) != 0 {
		t.Fatalf("expected empty index, got %v", index)
	}
}

func TestComputeStreak(t *testing.T) {
	today := day(t, "2026-01-11")

	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"three consecutive days", []string{"2026-01-11", "2026-01-10", "2026-01-09"}, 3},
		{"gap breaks the streak", []string{"2026-01-11", "2026-01-09"}, 1},
		{"empty", nil, 0},
		{"yesterday only still counts", []string{"2026-01-10"}, 1},
		{"two days ago only", []string{"2026-01-09"}, 0},
		{"duplicates collapse", []string{"2026-01-11", "2026-01-11", "2026-01-10"}, 2},
		{"unsorted input", []string{"2026-01-09", "2026-01-11", "2026-01-10"}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			diaries := make([]models.Diary, 0, len(tc.dates))
			for i, d := range tc.dates {
				diaries = append(diaries, diaryOn(int64(i+1), d+"T12:30:00"))
			}
			if got := ComputeStreak(diaries, today); got != tc.want {
				t.Fatalf("streak = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputeStreakAcrossMonthBoundary(t *testing.T) {
	diaries := []models.Diary{
		diaryOn(1, "2026-03-01T09:00:00"),
		diaryOn(2, "2026-02-28T09:00:00"),
	}
	if got := ComputeStreak(diaries, day(t, "2026-03-01")); got != 2 {
		t.Fatalf("streak = %d, want 2", got)
	}
}

func TestFilterDiariesEmptyCriteriaReturnsInput(t *testing.T) {
	diaries := []models.Diary{
		{ID: 1, Title: "바다 산책"},
		{ID: 2, Title: "Rainy day"},
	}

	got := FilterDiaries(diaries, "", 0)

	if !reflect.DeepEqual(got, diaries) {
		t.Fatalf("expected input unchanged, got %+v", got)
	}
	// Identity, not a copy.
	if &got[0] != &diaries[0] {
		t.Fatal("expected the original backing slice to be returned")
	}
}

func TestFilterDiariesByQuery(t *testing.T) {
	diaries := []models.Diary{
		{ID: 1, Title: "Rainy Day"},
		{ID: 2, Title: "sunny morning"},
		{ID: 3, Title: "Another rainy evening"},
	}

	got := FilterDiaries(diaries, "RAIN", 0)

	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestFilterDiariesByCategory(t *testing.T) {
	work := &models.Category{ID: 7, Name: "일상"}
	diaries := []models.Diary{
		{ID: 1, Title: "a", Category: work},
		{ID: 2, Title: "b"},
		{ID: 3, Title: "c", Category: &models.Category{ID: 8}},
	}

	got := FilterDiaries(diaries, "", 7)

	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestFilterDiariesCombinedAnd(t *testing.T) {
	cat := &models.Category{ID: 2}
	diaries := []models.Diary{
		{ID: 1, Title: "coffee run", Category: cat},
		{ID: 2, Title: "coffee break"},
		{ID: 3, Title: "tea time", Category: cat},
	}

	got := FilterDiaries(diaries, "coffee", 2)

	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestFilterDiariesIdempotent(t *testing.T) {
	diaries := []models.Diary{
		{ID: 1, Title: "hiking"},
		{ID: 2, Title: "baking bread"},
		{ID: 3, Title: "hiking again"},
	}

	once := FilterDiaries(diaries, "hiking", 0)
	twice := FilterDiaries(once, "hiking", 0)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filter not idempotent: %+v vs %+v", once, twice)
	}
}

func TestGallerySelection(t *testing.T) {
	diaries := []models.Diary{
		{ID: 1, Title: "beach", ImageURL: "/uploads/1.jpg"},
		{ID: 2, Title: "no photo"},
		{ID: 3, Title: "Beach sunset", ImageURL: "/uploads/3.jpg"},
	}

	all := GallerySelection(diaries, "")
	if len(all) != 2 {
		t.Fatalf("expected 2 diaries with images, got %d", len(all))
	}

	matched := GallerySelection(diaries, "beach")
	if len(matched) != 2 || matched[0].ID != 1 || matched[1].ID != 3 {
		t.Fatalf("unexpected search result: %+v", matched)
	}
}

func TestEndToEndScenario(t *testing.T) {
	diaries := []models.Diary{
		diaryOn(1, "2026-01-10T09:00:00"),
		diaryOn(2, "2026-01-10T18:00:00"),
		diaryOn(3, "2026-01-11T09:00:00"),
	}

	index := BuildCalendarIndex(diaries)
	if len(index) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(index))
	}
	if streak := ComputeStreak(diaries, day(t, "2026-01-11")); streak != 2 {
		t.Fatalf("streak = %d, want 2", streak)
	}
}
