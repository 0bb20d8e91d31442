package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"harulog/internal/notify"
)

func newCategoriesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage diary categories",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.API.ListCategories(cmd.Context())
			if err != nil {
				app.Sink.Notify(notify.LevelError, "카테고리를 불러오지 못했어요.")
				return err
			}
			if len(categories) == 0 {
				fmt.Fprintln(app.Out, "카테고리가 없어요.")
				return nil
			}
			for _, c := range categories {
				fmt.Fprintf(app.Out, "[%d] %s\n", c.ID, c.Name)
			}
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return errors.New("category name is required")
			}
			created, err := app.API.CreateCategory(cmd.Context(), args[0])
			if err != nil {
				app.Sink.Notify(notify.LevelError, "카테고리 추가에 실패했습니다.")
				return err
			}
			fmt.Fprintf(app.Out, "[%d] %s\n", created.ID, created.Name)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a category and its diaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid category id %q: %w", args[0], err)
			}
			deleted, err := app.API.DeleteCategory(cmd.Context(), id)
			if err != nil {
				app.Sink.Notify(notify.LevelError, "카테고리 삭제에 실패했습니다.")
				return err
			}
			app.Sink.Notify(notify.LevelInfo, fmt.Sprintf("카테고리를 삭제했어요. (함께 삭제된 일기 %d개)", deleted))
			return nil
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}
