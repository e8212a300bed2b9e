package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zhubert/pdfchat/internal/backend"
	"github.com/zhubert/pdfchat/internal/document"
	"github.com/zhubert/pdfchat/internal/upload"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file.pdf>",
	Short: "Upload a PDF to the backend",
	Long: `Checks that the file is a PDF and sends it to the backend's /upload
endpoint as the multipart field "file".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, cancel := requestContext(cmd.Context(), cfg.GetTimeout())
		defer cancel()
		return runUpload(ctx, cmd.OutOrStdout(), newClient(cfg), args[0])
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

// runUpload validates path with the same rules as the upload bar and
// uploads it. Failures are reported with the upload bar's messages.
func runUpload(ctx context.Context, out io.Writer, uploader backend.Uploader, path string) error {
	state := upload.New()

	doc, err := document.Inspect(path)
	if err != nil {
		state.Fail(err)
		return fmt.Errorf("%s: %w", state.ErrorMessage(), err)
	}
	if !state.Select(doc) {
		return fmt.Errorf("%s (%s is %s)", state.ErrorMessage(), doc.Name, doc.MediaType)
	}

	if err := uploader.Upload(ctx, doc); err != nil {
		state.Fail(err)
		return fmt.Errorf("%s: %w", state.ErrorMessage(), err)
	}
	state.Commit()

	fmt.Fprintf(out, "uploaded %s (%d pages)\n", state.SelectedFileName(), doc.Pages)
	return nil
}
