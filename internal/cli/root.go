// Package cli implements the chat-wrapped CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rcliao/chat-wrapped/internal/analysis"
	"github.com/rcliao/chat-wrapped/internal/model"
	"github.com/rcliao/chat-wrapped/internal/render"
	"github.com/rcliao/chat-wrapped/internal/source"
)

// Years with fewer messages than this fall back to the prior year, so an
// early-January run still has something to wrap.
const minWrapMessages = 100

var (
	imessageFlag    string
	whatsappFlag    string
	addressBookFlag string
	yearFlag        int
	nightStartFlag  int
	nightEndFlag    int
	gapFlag         time.Duration
	topFlag         int
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "chat-wrapped",
	Short: "Your year of texting, wrapped",
	Long: "Reads your local iMessage and WhatsApp stores read-only, crunches a year of 1:1 " +
		"texting into metrics, and wraps it as a tap-through HTML report. Nothing leaves " +
		"your machine. On macOS the terminal needs Full Disk Access to read chat.db.",
}

func init() {
	RootCmd.PersistentFlags().StringVar(&imessageFlag, "imessage-db", "", "iMessage chat.db path (default: $CHAT_WRAPPED_IMESSAGE_DB or ~/Library/Messages/chat.db)")
	RootCmd.PersistentFlags().StringVar(&whatsappFlag, "whatsapp-db", "", "WhatsApp ChatStorage.sqlite path (default: $CHAT_WRAPPED_WHATSAPP_DB or the macOS container)")
	RootCmd.PersistentFlags().StringVar(&addressBookFlag, "addressbook", "", "AddressBook directory (default: $CHAT_WRAPPED_ADDRESSBOOK or ~/Library/Application Support/AddressBook)")
	RootCmd.PersistentFlags().IntVar(&yearFlag, "year", 0, "Year to wrap (default: current year)")
	RootCmd.PersistentFlags().IntVar(&nightStartFlag, "night-start", analysis.DefaultNightStartHour, "Hour the late-night window opens")
	RootCmd.PersistentFlags().IntVar(&nightEndFlag, "night-end", analysis.DefaultNightEndHour, "Hour the late-night window closes")
	RootCmd.PersistentFlags().DurationVar(&gapFlag, "gap", analysis.DefaultIdleGap, "Silence that starts a new conversation session")
	RootCmd.PersistentFlags().IntVar(&topFlag, "top", analysis.DefaultTopN, "Entries per leaderboard (0 for unlimited)")
}

func imessageDB() string {
	if imessageFlag != "" {
		return imessageFlag
	}
	if env := os.Getenv("CHAT_WRAPPED_IMESSAGE_DB"); env != "" {
		return env
	}
	if p := source.DefaultIMessagePath(); fileExists(p) {
		return p
	}
	return ""
}

func whatsappDB() string {
	if whatsappFlag != "" {
		return whatsappFlag
	}
	if env := os.Getenv("CHAT_WRAPPED_WHATSAPP_DB"); env != "" {
		return env
	}
	return source.LocateWhatsApp()
}

func addressBookDir() string {
	if addressBookFlag != "" {
		return addressBookFlag
	}
	if env := os.Getenv("CHAT_WRAPPED_ADDRESSBOOK"); env != "" {
		return env
	}
	return source.DefaultAddressBookDir()
}

func analysisConfig() analysis.Config {
	cfg := analysis.DefaultConfig()
	cfg.NightStartHour = nightStartFlag
	cfg.NightEndHour = nightEndFlag
	cfg.IdleGap = gapFlag
	cfg.TopN = topFlag
	return cfg
}

func wrapYear() int {
	if yearFlag != 0 {
		return yearFlag
	}
	return time.Now().Year()
}

func loadYear(ctx context.Context, year int) (*source.Result, error) {
	since := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	return source.Load(ctx, source.Options{
		IMessageDB:     imessageDB(),
		WhatsAppDB:     whatsappDB(),
		AddressBookDir: addressBookDir(),
		Since:          since,
		Until:          since.AddDate(1, 0, 0),
	})
}

// wrapEnvelope loads a year of events and computes its stamped bundle. It
// also reports whether the run fell back to the prior year.
func wrapEnvelope(ctx context.Context) (render.Envelope, bool, error) {
	year := wrapYear()
	res, err := loadYear(ctx, year)
	if err != nil {
		return render.Envelope{}, false, err
	}

	fellBack := false
	if yearFlag == 0 && len(res.Events) < minWrapMessages {
		if prior, err := loadYear(ctx, year-1); err == nil && len(prior.Events) > len(res.Events) {
			res, year, fellBack = prior, year-1, true
		}
	}

	bundle, err := analysis.Compute(model.GroupEvents(res.Events), analysisConfig())
	if err != nil {
		return render.Envelope{}, false, err
	}
	return render.NewEnvelope(bundle, res.Groups, res.Names, year, time.Now()), fellBack, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
