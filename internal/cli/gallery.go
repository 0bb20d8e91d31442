package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"harulog/internal/journal"
	"harulog/internal/notify"
)

func newGalleryCommand(app *App) *cobra.Command {
	var queryFlag string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Browse diaries that have an attached image",
		RunE: func(cmd *cobra.Command, args []string) error {
			diaries, err := app.API.ListDiaries(cmd.Context(), "", 0)
			if err != nil {
				app.Sink.Notify(notify.LevelError, "추억을 불러오지 못했어요.")
				return err
			}

			// Image filter and title search happen client-side, like
			// the gallery screen.
			selected := journal.GallerySelection(diaries, queryFlag)
			if len(selected) == 0 {
				fmt.Fprintln(app.Out, "아직 사진이 있는 기록이 없어요.")
				return nil
			}
			for _, d := range selected {
				glyph := d.Mood
				if glyph == "" {
					glyph = "🖼"
				}
				fmt.Fprintf(app.Out, "[%d] %s %s  %s  %s\n", d.ID, glyph, d.DateKey(), d.Title, d.ImageURL)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&queryFlag, "query", "q", "", "search by title")
	return cmd
}
