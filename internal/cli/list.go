package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"harulog/internal/journal"
	"harulog/internal/models"
	"harulog/internal/notify"
)

var weekdayHeader = []string{"일", "월", "화", "수", "목", "금", "토"}

func newListCommand(app *App) *cobra.Command {
	var (
		monthFlag    string
		dateFlag     string
		queryFlag    string
		categoryFlag int64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse diaries on a calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			diaries, categories := app.loadScreenData(cmd.Context(), queryFlag, categoryFlag)

			index := journal.BuildCalendarIndex(diaries)

			grid, err := resolveMonth(monthFlag, app.Now())
			if err != nil {
				return err
			}
			renderCalendar(app, grid, index)

			if len(categories) > 0 {
				chips := make([]string, 0, len(categories))
				for _, c := range categories {
					chips = append(chips, "#"+c.Name)
				}
				fmt.Fprintln(app.Out, strings.Join(chips, "  "))
			}

			selected := dateFlag
			if selected == "" && len(diaries) > 0 {
				selected = app.Now().Format("2006-01-02")
			}
			if selected != "" {
				fmt.Fprintf(app.Out, "\n%s\n", selected)
				bucket := index[selected]
				if len(bucket) == 0 {
					fmt.Fprintln(app.Out, "  이 날의 기록이 없어요.")
				}
				for _, d := range bucket {
					renderCardLine(app, d)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "month to display (YYYY-MM, default current)")
	cmd.Flags().StringVar(&dateFlag, "date", "", "show entries of one date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&queryFlag, "query", "q", "", "title search (server-side)")
	cmd.Flags().Int64Var(&categoryFlag, "category", 0, "filter by category id")
	return cmd
}

// loadScreenData fetches diaries and categories concurrently and joins
// before returning; derived state is only computed once both resolved.
// A failed diary fetch degrades to an empty list with a notice instead
// of blocking the screen.
func (a *App) loadScreenData(ctx context.Context, query string, categoryID int64) ([]models.Diary, []models.Category) {
	type diariesResult struct {
		diaries []models.Diary
		err     error
	}
	type categoriesResult struct {
		categories []models.Category
		err        error
	}

	diariesCh := make(chan diariesResult, 1)
	categoriesCh := make(chan categoriesResult, 1)

	go func() {
		diaries, err := a.API.ListDiaries(ctx, query, categoryID)
		diariesCh <- diariesResult{diaries, err}
	}()
	go func() {
		categories, err := a.API.ListCategories(ctx)
		categoriesCh <- categoriesResult{categories, err}
	}()

	dr := <-diariesCh
	cr := <-categoriesCh

	if dr.err != nil {
		a.Sink.Notify(notify.LevelError, "기록을 불러오지 못했어요.")
		a.Log.Errorf("diary fetch failed: %v", dr.err)
		dr.diaries = nil
	}
	if cr.err != nil {
		a.Log.Errorf("category fetch failed: %v", cr.err)
		cr.categories = nil
	}
	return dr.diaries, cr.categories
}

func resolveMonth(flag string, now time.Time) (journal.MonthGrid, error) {
	if flag == "" {
		return journal.NewMonthGrid(now.Year(), now.Month()), nil
	}
	parsed, err := time.Parse("2006-01", flag)
	if err != nil {
		return journal.MonthGrid{}, fmt.Errorf("invalid month %q, want YYYY-MM: %w", flag, err)
	}
	return journal.NewMonthGrid(parsed.Year(), parsed.Month()), nil
}

func renderCalendar(app *App, grid journal.MonthGrid, index map[string][]models.Diary) {
	fmt.Fprintf(app.Out, "      %d년 %d월\n", grid.Year, int(grid.Month))
	fmt.Fprintln(app.Out, strings.Join(weekdayHeader, " "))

	cell := grid.LeadingBlanks
	var row strings.Builder
	row.WriteString(strings.Repeat("   ", grid.LeadingBlanks))
	for day := 1; day <= grid.Days; day++ {
		if len(index[grid.DateKey(day)]) > 0 {
			row.WriteString(fmt.Sprintf("%2d·", day))
		} else {
			row.WriteString(fmt.Sprintf("%2d ", day))
		}
		cell++
		if cell%7 == 0 {
			fmt.Fprintln(app.Out, row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		fmt.Fprintln(app.Out, row.String())
	}
}

// renderCardLine prints one diary line the way the list screen shows a
// card: glyph, title, pin and lock badges. Locked content stays hidden
// unless the id was unlocked this session.
func renderCardLine(app *App, d models.Diary) {
	glyph := d.Mood
	if glyph == "" {
		if d.Analysis != nil {
			glyph = journal.TopEmotionGlyph(d.Analysis.Emotions)
		} else {
			glyph = journal.TopEmotionGlyph(nil)
		}
	}

	badges := ""
	if d.IsPinned {
		badges += " 📌"
	}
	if d.IsLocked {
		badges += " 🔒"
	}
	fmt.Fprintf(app.Out, "  [%d] %s %s%s\n", d.ID, glyph, d.Title, badges)

	state := journal.DeriveCardState(d, app.Unlocked)
	if state.ShowFullContent {
		if summary := cardSummary(d); summary != "" {
			fmt.Fprintf(app.Out, "      %s\n", summary)
		}
	} else {
		fmt.Fprintln(app.Out, "      잠긴 일기예요. harulog show 명령으로 잠금을 해제하세요.")
	}
}

func cardSummary(d models.Diary) string {
	if d.Analysis != nil && d.Analysis.Summary != "" {
		return d.Analysis.Summary
	}
	content := strings.TrimSpace(d.Content)
	if len([]rune(content)) > 40 {
		return string([]rune(content)[:40]) + "…"
	}
	return content
}
