package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"harulog/internal/notify"
)

func newPrefsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Manage local preferences",
	}

	dark := &cobra.Command{
		Use:   "dark [on|off]",
		Short: "Show or set dark mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				on, err := app.Prefs.DarkMode()
				if err != nil {
					return err
				}
				if on {
					fmt.Fprintln(app.Out, "다크모드: 켜짐 🌙")
				} else {
					fmt.Fprintln(app.Out, "다크모드: 꺼짐 ☀️")
				}
				return nil
			}

			on := args[0] == "on"
			if !on && args[0] != "off" {
				return fmt.Errorf("expected on or off, got %q", args[0])
			}
			if err := app.Prefs.SetDarkMode(on); err != nil {
				app.Sink.Notify(notify.LevelError, "설정 저장에 실패했습니다.")
				return err
			}
			return nil
		},
	}

	remind := &cobra.Command{
		Use:   "remind [hour]",
		Short: "Show or set the daily reminder hour (0-23)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				hour, ok, err := app.Prefs.ReminderHour()
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(app.Out, "리마인더가 설정되지 않았어요.")
					return nil
				}
				fmt.Fprintf(app.Out, "매일 %d시에 알림 🔔\n", hour)
				return nil
			}

			hour, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid hour %q: %w", args[0], err)
			}
			if err := app.Prefs.SetReminderHour(hour); err != nil {
				return err
			}
			app.Sink.Notify(notify.LevelInfo, fmt.Sprintf("매일 %d시에 일기 작성 알림을 설정했어요 ✔️", hour))
			return nil
		},
	}

	cmd.AddCommand(dark, remind)
	return cmd
}
