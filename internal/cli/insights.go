package cli

import (
	"bufio"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"harulog/internal/journal"
	"harulog/internal/models"
	"harulog/internal/notify"
)

func newStatsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show emotion statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Statistics and the raw diary list load in parallel; the
			// trend is derived only after both have resolved.
			type statsResult struct {
				stats *models.Statistics
				err   error
			}
			type diariesResult struct {
				diaries []models.Diary
				err     error
			}
			statsCh := make(chan statsResult, 1)
			diariesCh := make(chan diariesResult, 1)
			go func() {
				s, err := app.API.Statistics(ctx)
				statsCh <- statsResult{s, err}
			}()
			go func() {
				d, err := app.API.ListDiaries(ctx, "", 0)
				diariesCh <- diariesResult{d, err}
			}()

			sr := <-statsCh
			dr := <-diariesCh
			if sr.err != nil {
				app.Sink.Notify(notify.LevelError, "통계를 불러오지 못했어요.")
				return sr.err
			}
			if dr.err != nil {
				app.Log.Errorf("diary fetch for trend failed: %v", dr.err)
			}

			fmt.Fprintf(app.Out, "기록한 일기: %d개\n\n", sr.stats.TotalCount)
			renderDistribution(app, sr.stats.EmotionDistribution)

			trend := sr.stats.EmotionTrend
			if len(trend) == 0 {
				trend = journal.EmotionTrend(dr.diaries)
			}
			if len(trend) >= 2 {
				fmt.Fprintln(app.Out, "\n감정 추이")
				for _, point := range trend {
					fmt.Fprintf(app.Out, "  %s  %s\n", point.Date, formatEmotions(point.Emotions))
				}
			}

			if len(sr.stats.RecentPositivePoints) > 0 {
				fmt.Fprintln(app.Out, "\n최근의 좋았던 순간들")
				for _, points := range sr.stats.RecentPositivePoints {
					for _, p := range points {
						fmt.Fprintf(app.Out, "  + %s\n", p)
					}
				}
			}
			return nil
		},
	}
}

// renderDistribution prints emotions sorted by score descending. Scores
// are display weights, not probabilities.
func renderDistribution(app *App, distribution map[string]float64) {
	labels := make([]string, 0, len(distribution))
	for label := range distribution {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if distribution[labels[i]] != distribution[labels[j]] {
			return distribution[labels[i]] > distribution[labels[j]]
		}
		return labels[i] < labels[j]
	})

	for _, label := range labels {
		score := distribution[label]
		bar := strings.Repeat("█", int(score*20))
		fmt.Fprintf(app.Out, "%s %-4s %s %.2f\n", journal.TopEmotionGlyph(map[string]float64{label: 1}), label, bar, score)
	}
}

func formatEmotions(emotions map[string]float64) string {
	labels := make([]string, 0, len(emotions))
	for label := range emotions {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, fmt.Sprintf("%s %.2f", label, emotions[label]))
	}
	return strings.Join(parts, "  ")
}

func newReportCommand(app *App) *cobra.Command {
	var (
		yearFlag  int
		monthFlag int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Read the monthly AI report",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Now()
			if yearFlag == 0 {
				yearFlag = now.Year()
			}
			if monthFlag == 0 {
				monthFlag = int(now.Month())
			}

			report, err := app.API.MonthlyReport(cmd.Context(), yearFlag, monthFlag)
			if err != nil {
				app.Sink.Notify(notify.LevelError, "리포트를 불러오는데 실패했어요.")
				return err
			}

			fmt.Fprintf(app.Out, "💌 %d년 %d월 리포트\n", yearFlag, monthFlag)
			fmt.Fprintf(app.Out, "이번 달 %d개의 일기를 쓰셨어요\n\n", report.DiaryCount)
			fmt.Fprintln(app.Out, report.Report)
			return nil
		},
	}

	cmd.Flags().IntVar(&yearFlag, "year", 0, "report year (default current)")
	cmd.Flags().IntVar(&monthFlag, "month", 0, "report month (default current)")
	return cmd
}

func newChatCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [diary-id]",
		Short: "Talk with the AI counselor about one diary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid diary id %q: %w", args[0], err)
			}

			messages := []models.ChatMessage{
				{Role: "assistant", Content: "안녕하세요 😊 일기를 잘 읽었어요. 이 날 하루에 대해 더 이야기해볼까요?"},
			}
			fmt.Fprintf(app.Out, "☁️ %s\n", messages[0].Content)
			fmt.Fprintln(app.Out, "(빈 줄을 입력하면 대화를 마칩니다)")

			scanner := bufio.NewScanner(app.In)
			for {
				fmt.Fprint(app.Out, "> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					break
				}

				messages = append(messages, models.ChatMessage{Role: "user", Content: line})
				reply, err := app.API.Chat(cmd.Context(), id, messages)
				if err != nil {
					// The chat screen keeps the conversation alive on
					// failure and shows an apology bubble.
					app.Log.Errorf("chat request failed: %v", err)
					fmt.Fprintln(app.Out, "☁️ 죄송해요, 잠시 오류가 발생했어요.")
					continue
				}
				messages = append(messages, models.ChatMessage{Role: "assistant", Content: reply})
				fmt.Fprintf(app.Out, "☁️ %s\n", reply)
			}
			return scanner.Err()
		},
	}
}
