package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print wrapped metrics as JSON",
		Long:  "Computes the full metric bundle for the year and prints it as JSON, for piping into other tools.",
		Run:   runMetrics,
	}

	cmd.Flags().StringP("output", "o", "", "Write JSON to a file instead of stdout")

	RootCmd.AddCommand(cmd)
}

func runMetrics(cmd *cobra.Command, args []string) {
	env, _, err := wrapEnvelope(cmd.Context())
	if err != nil {
		exitErr("load messages", err)
	}

	b, _ := json.MarshalIndent(env, "", "  ")

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		fmt.Println(string(b))
		return
	}
	if err := os.WriteFile(out, append(b, '\n'), 0o644); err != nil {
		exitErr("write metrics", err)
	}
}
