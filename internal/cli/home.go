package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"harulog/internal/journal"
)

func newHomeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the greeting screen with the current streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(app.Out, "HaruLog ☁️")
			fmt.Fprintln(app.Out, "너의 하루를 몽글몽글하게 기록해봐")

			// Streak is background decoration: a failed fetch shows
			// no badge instead of an error.
			streak := 0
			if diaries, err := app.API.ListDiaries(cmd.Context(), "", 0); err == nil {
				streak = journal.ComputeStreak(diaries, app.Now())
			} else {
				app.Log.Debugf("streak fetch failed: %v", err)
			}

			if streak > 0 {
				fmt.Fprintf(app.Out, "\n🔥 %d일 연속 기록 중!\n", streak)
			}
			return nil
		},
	}
}
