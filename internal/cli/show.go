package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"harulog/internal/apiclient"
	"harulog/internal/journal"
	"harulog/internal/models"
	"harulog/internal/notify"
)

func newShowCommand(app *App) *cobra.Command {
	var pinFlag string

	cmd := &cobra.Command{
		Use:   "show [diary-id]",
		Short: "Show one diary, unlocking it if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid diary id %q: %w", args[0], err)
			}

			diaries, err := app.API.ListDiaries(cmd.Context(), "", 0)
			if err != nil {
				app.Sink.Notify(notify.LevelError, "기록을 불러오지 못했어요.")
				return err
			}
			var diary *models.Diary
			for i := range diaries {
				if diaries[i].ID == id {
					diary = &diaries[i]
					break
				}
			}
			if diary == nil {
				return fmt.Errorf("diary %d not found", id)
			}

			card := journal.NewCard(*diary, app.Unlocked)
			if card.Phase() == journal.PhaseLocked {
				if err := app.promptUnlock(cmd, card, pinFlag); err != nil {
					return err
				}
			}
			if card.Phase() == journal.PhaseLocked {
				fmt.Fprintf(app.Out, "[%d] %s 🔒\n", diary.ID, diary.Title)
				return nil
			}

			// Expand to show the full entry.
			_ = card.ToggleExpand()
			renderFullDiary(app, *diary)
			return nil
		},
	}

	cmd.Flags().StringVar(&pinFlag, "pin", "", "PIN for a locked diary (prompted when omitted)")
	return cmd
}

// promptUnlock walks the card through the PIN prompt. The PIN is sent
// to the backend once for verification and kept nowhere.
func (a *App) promptUnlock(cmd *cobra.Command, card *journal.Card, pin string) error {
	if err := card.RequestUnlock(); err != nil {
		return err
	}

	if pin == "" {
		fmt.Fprint(a.Out, "PIN: ")
		reader := bufio.NewReader(a.In)
		line, err := reader.ReadString('\n')
		if err != nil {
			_ = card.ResolveUnlock(false, a.Unlocked)
			return fmt.Errorf("failed to read PIN: %w", err)
		}
		pin = strings.TrimSpace(line)
	}

	err := a.API.UnlockDiary(cmd.Context(), card.Diary().ID, pin)
	if errors.Is(err, apiclient.ErrPinRejected) {
		_ = card.ResolveUnlock(false, a.Unlocked)
		a.Sink.Notify(notify.LevelError, "PIN이 일치하지 않아요.")
		return nil
	}
	if err != nil {
		_ = card.ResolveUnlock(false, a.Unlocked)
		a.Sink.Notify(notify.LevelError, "잠금 해제에 실패했습니다.")
		return err
	}
	return card.ResolveUnlock(true, a.Unlocked)
}

func renderFullDiary(app *App, d models.Diary) {
	fmt.Fprintf(app.Out, "[%d] %s\n", d.ID, d.Title)
	if d.Category != nil {
		fmt.Fprintf(app.Out, "카테고리: %s\n", d.Category.Name)
	}
	fmt.Fprintf(app.Out, "작성일: %s\n\n", d.DateKey())
	fmt.Fprintln(app.Out, d.Content)

	if d.ImageURL != "" {
		fmt.Fprintf(app.Out, "\n🖼  %s\n", d.ImageURL)
	}
	if d.Analysis != nil {
		fmt.Fprintf(app.Out, "\n%s AI 요약: %s\n", journal.TopEmotionGlyph(d.Analysis.Emotions), d.Analysis.Summary)
		for _, point := range d.Analysis.PositivePoints {
			fmt.Fprintf(app.Out, "  + %s\n", point)
		}
		if d.Analysis.ImprovementPoints != "" {
			fmt.Fprintf(app.Out, "  → %s\n", d.Analysis.ImprovementPoints)
		}
	}
}
