// Package cli is the terminal surface of HaruLog: one cobra command per
// screen of the journaling app. Commands receive their collaborators
// through App instead of reaching for globals.
package cli

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"harulog/internal/apiclient"
	"harulog/internal/journal"
	"harulog/internal/notify"
	"harulog/internal/prefs"
)

// App bundles everything the commands need. Unlocked is the session
// unlock set: it lives exactly as long as the process and is never
// written to disk.
type App struct {
	API      *apiclient.Client
	Prefs    *prefs.Store
	Sink     notify.Sink
	Log      *logrus.Logger
	Zap      *zap.Logger
	Out      io.Writer
	In       io.Reader
	Unlocked *journal.UnlockSet
	Now      func() time.Time
}

// NewRootCommand builds the harulog command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "harulog",
		Short:         "HaruLog diary client",
		Long:          "Terminal client for the HaruLog journaling service: write diaries, browse them on a calendar, and read AI reflections.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newHomeCommand(app),
		newListCommand(app),
		newWriteCommand(app),
		newShowCommand(app),
		newGalleryCommand(app),
		newStatsCommand(app),
		newReportCommand(app),
		newChatCommand(app),
		newCategoriesCommand(app),
		newPinCommand(app),
		newLockCommand(app),
		newPrefsCommand(app),
	)
	return root
}
