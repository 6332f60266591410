package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rcliao/chat-wrapped/internal/render"
)

func init() {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate your wrapped report",
		Long:  "Pulls a year of messages from the local chat stores, computes the wrapped metrics, and writes the tap-through HTML gallery.",
		Run:   runGenerate,
	}

	cmd.Flags().StringP("output", "o", "", "Output HTML path (default: chat_wrapped_<year>.html)")
	cmd.Flags().Bool("open", false, "Open the report in a browser when done")

	RootCmd.AddCommand(cmd)
}

func runGenerate(cmd *cobra.Command, args []string) {
	fmt.Printf("[*] Wrapping %d...\n", wrapYear())
	env, fellBack, err := wrapEnvelope(cmd.Context())
	if err != nil {
		exitErr("load messages", err)
	}
	if fellBack {
		fmt.Printf("    ! %d looked quiet, wrapped %d instead\n", env.Year+1, env.Year)
	}
	fmt.Printf("    ✓ %s messages from %d contacts\n",
		humanize.Comma(int64(env.Metrics.Totals.Messages)), env.Metrics.Totals.Contacts)

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		out = fmt.Sprintf("chat_wrapped_%d.html", env.Year)
	}

	fmt.Println("[*] Generating...")
	f, err := os.Create(out)
	if err != nil {
		exitErr("create output", err)
	}
	if err := render.WriteHTML(f, env); err != nil {
		f.Close()
		exitErr("render report", err)
	}
	if err := f.Close(); err != nil {
		exitErr("write output", err)
	}
	fmt.Printf("    ✓ %s\n", out)

	if render.IsTerminal(os.Stdout) {
		render.WriteSummary(os.Stdout, env)
	}

	if open, _ := cmd.Flags().GetBool("open"); open {
		if err := exec.Command("open", out).Start(); err != nil {
			fmt.Fprintf(os.Stderr, "open %s: %v\n", out, err)
		}
	}
	fmt.Println("Done! Click through your wrapped.")
}
