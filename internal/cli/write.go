package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"harulog/internal/apiclient"
	"harulog/internal/notify"
	"harulog/internal/speech"
)

func newWriteCommand(app *App) *cobra.Command {
	var (
		titleFlag    string
		contentFlag  string
		categoryFlag int64
		moodFlag     string
		dateFlag     string
		imageFlag    string
		dictateFlag  []string
	)

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write today's diary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			content := contentFlag
			if len(dictateFlag) > 0 {
				dictated, err := app.dictate(ctx, dictateFlag)
				if err != nil {
					app.Sink.Notify(notify.LevelError, "음성 인식에 실패했습니다.")
					return err
				}
				if content != "" {
					content += " "
				}
				content += dictated
			}

			// Same validation the write screen runs before submitting.
			if titleFlag == "" || content == "" {
				app.Sink.Notify(notify.LevelError, "제목과 내용을 모두 입력해주세요!")
				return errors.New("title and content are required")
			}

			req := apiclient.CreateDiaryRequest{
				Title:   titleFlag,
				Content: content,
				Mood:    moodFlag,
				Date:    dateFlag,
			}
			if categoryFlag != 0 {
				req.CategoryID = &categoryFlag
			}

			created, err := app.API.CreateDiary(ctx, req)
			if err != nil {
				app.Sink.Notify(notify.LevelError, fmt.Sprintf("저장에 실패했습니다: %v", err))
				return err
			}

			if imageFlag != "" {
				if err := app.attachImage(ctx, created.ID, imageFlag); err != nil {
					app.Sink.Notify(notify.LevelError, "이미지 업로드에 실패했습니다.")
					return err
				}
			}

			app.Sink.Notify(notify.LevelInfo, "일기가 저장되었습니다! ☁️")
			fmt.Fprintf(app.Out, "[%d] %s\n", created.ID, created.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&titleFlag, "title", "t", "", "diary title")
	cmd.Flags().StringVarP(&contentFlag, "content", "c", "", "diary content")
	cmd.Flags().Int64Var(&categoryFlag, "category", 0, "category id")
	cmd.Flags().StringVar(&moodFlag, "mood", "", "mood glyph chosen at write time")
	cmd.Flags().StringVar(&dateFlag, "date", "", "entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&imageFlag, "image", "", "attach an image file")
	cmd.Flags().StringSliceVar(&dictateFlag, "dictate", nil, "audio files to transcribe into content")
	return cmd
}

// dictate runs the recorded segments through the speech supervisor and
// stitches the final transcripts together.
func (a *App) dictate(ctx context.Context, files []string) (string, error) {
	source, err := newFileSource(files)
	if err != nil {
		return "", err
	}
	defer source.close()

	sup := speech.NewSupervisor(source, a.API, a.Zap)
	events := sup.Start(ctx)

	var parts []string
	for ev := range events {
		if ev.Final {
			parts = append(parts, ev.Transcript)
		}
	}
	if len(parts) == 0 {
		return "", errors.New("no speech recognized")
	}
	return strings.Join(parts, " "), nil
}

func (a *App) attachImage(ctx context.Context, diaryID int64, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	_, err = a.API.UploadImage(ctx, diaryID, file.Name(), file)
	return err
}
