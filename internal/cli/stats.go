package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/chat-wrapped/internal/source"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show chat store statistics",
		Long:  "Summarizes each configured chat store: size, 1:1 message counts, contacts, and the span of recorded history.",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	var stats []*source.StoreStats
	if p := imessageDB(); p != "" {
		st, err := source.IMessageStats(ctx, p)
		if err != nil {
			exitErr("imessage stats", err)
		}
		stats = append(stats, st)
	}
	if p := whatsappDB(); p != "" {
		st, err := source.WhatsAppStats(ctx, p)
		if err != nil {
			exitErr("whatsapp stats", err)
		}
		stats = append(stats, st)
	}
	if len(stats) == 0 {
		exitErr("stats", errors.New("no chat stores found"))
	}

	b, _ := json.MarshalIndent(stats, "", "  ")
	fmt.Println(string(b))
}
