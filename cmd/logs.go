package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/pdfchat/internal/logger"
)

var logsClear bool

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show where the debug log is written",
	Long: `Prints the path of the debug log. With --clear the log file is removed
instead; a new one is started the next time pdfchat runs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogs(cmd.OutOrStdout(), logsClear)
	},
}

func init() {
	logsCmd.Flags().BoolVar(&logsClear, "clear", false, "Remove the debug log")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(out io.Writer, clear bool) error {
	path := logger.Path()
	if !clear {
		fmt.Fprintln(out, path)
		return nil
	}

	removed, err := logger.ClearLog()
	if err != nil {
		return fmt.Errorf("error clearing log: %w", err)
	}
	if removed {
		fmt.Fprintf(out, "Removed %s\n", path)
	} else {
		fmt.Fprintf(out, "No log file at %s\n", path)
	}
	return nil
}
