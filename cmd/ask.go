package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zhubert/pdfchat/internal/backend"
	"github.com/zhubert/pdfchat/internal/chat"
)

var askCmd = &cobra.Command{
	Use:   "ask <question...>",
	Short: "Ask one question about the uploaded PDF and print the answer",
	Long: `Sends a single question to the backend's /ask endpoint and prints the
answer. When the request fails the fallback reply is printed instead and the
command exits non-zero.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd.Context(), cfg.GetTimeout())
		defer cancel()
		return runAsk(ctx, cmd.OutOrStdout(), newClient(cfg), strings.Join(args, " "))
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}

// runAsk runs one exchange through a chat session so the headless command
// and the TUI agree on what a failed exchange looks like
func runAsk(ctx context.Context, out io.Writer, asker backend.Asker, question string) error {
	session := chat.NewSession()
	ex, ok := session.Submit(question)
	if !ok {
		return fmt.Errorf("question is empty")
	}

	answer, askErr := asker.Ask(ctx, ex.Question)
	session.Resolve(ex.ID, answer, askErr)

	msgs := session.Messages()
	fmt.Fprintln(out, msgs[len(msgs)-1].Text)

	if askErr != nil {
		return fmt.Errorf("ask failed after %s: %w", time.Since(ex.StartedAt).Round(time.Millisecond), askErr)
	}
	if answer == "" {
		return fmt.Errorf("ask failed: backend returned no answer")
	}
	return nil
}
