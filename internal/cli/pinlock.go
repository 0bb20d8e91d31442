package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"harulog/internal/notify"
)

func newPinCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pin [diary-id]",
		Short: "Toggle the pin on a diary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid diary id %q: %w", args[0], err)
			}
			if err := app.API.TogglePin(cmd.Context(), id); err != nil {
				app.Sink.Notify(notify.LevelError, "고정 상태를 바꾸지 못했어요.")
				return err
			}
			app.Sink.Notify(notify.LevelInfo, "고정 상태를 바꿨어요. 📌")
			return nil
		},
	}
}

func newLockCommand(app *App) *cobra.Command {
	var pinFlag string

	cmd := &cobra.Command{
		Use:   "lock [diary-id]",
		Short: "Protect a diary behind a PIN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid diary id %q: %w", args[0], err)
			}
			if pinFlag == "" {
				return errors.New("a PIN is required to lock a diary")
			}
			if err := app.API.LockDiary(cmd.Context(), id, pinFlag); err != nil {
				app.Sink.Notify(notify.LevelError, "잠금 설정에 실패했습니다.")
				return err
			}
			app.Sink.Notify(notify.LevelInfo, "일기를 잠갔어요. 🔒")
			return nil
		},
	}

	cmd.Flags().StringVar(&pinFlag, "pin", "", "PIN to set")
	return cmd
}
