package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/zhubert/pdfchat/internal/demo"
	"github.com/zhubert/pdfchat/internal/demo/scenarios"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
	demoPlain      bool
	demoFile       string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render scripted pdfchat sessions",
	Long: `Render scripted pdfchat sessions for documentation and screenshots.
Backend replies are scripted, so no backend needs to be running.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a built-in or YAML scenario and print its frames`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		listScenarios(cmd.OutOrStdout())
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Run a scenario and print its frames",
	Long: `Run a built-in scenario by name, or a YAML scenario with --file.

A scenario file looks like:

  name: refunds
  steps:
    - select_file: Refund Policy.pdf
      pages: 4
    - upload_done: true
    - type: How long do refunds take?
    - key: enter
    - wait: 1s
    - answer: Within **14 days**.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDemoRun,
}

func init() {
	demoRunCmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Write frames to a file instead of stdout")
	demoRunCmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "Terminal width (default: the scenario's)")
	demoRunCmd.Flags().IntVarP(&demoHeight, "height", "H", 0, "Terminal height (default: the scenario's)")
	demoRunCmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")
	demoRunCmd.Flags().BoolVar(&demoPlain, "plain", false, "Strip colors from the frames")
	demoRunCmd.Flags().StringVarP(&demoFile, "file", "f", "", "Run a scenario from a YAML file")

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	rootCmd.AddCommand(demoCmd)
}

func listScenarios(out io.Writer) {
	fmt.Fprintln(out, "Available demo scenarios:")
	fmt.Fprintln(out)
	for _, s := range scenarios.All() {
		fmt.Fprintf(out, "  %-15s %s\n", s.Name, s.Description)
	}
}

// getScenario returns a copy of the named scenario, or the one in file, with
// the size flags applied. Built-in scenarios are never modified.
func getScenario(name, file string, width, height int) (*demo.Scenario, error) {
	var scenario demo.Scenario
	switch {
	case file != "" && name != "":
		return nil, fmt.Errorf("give a scenario name or --file, not both")
	case file != "":
		loaded, err := demo.LoadScenario(file)
		if err != nil {
			return nil, err
		}
		scenario = *loaded
	case name != "":
		builtin := scenarios.Get(name)
		if builtin == nil {
			return nil, fmt.Errorf("unknown scenario %q\nRun 'pdfchat demo list' to see available scenarios", name)
		}
		scenario = *builtin
	default:
		return nil, fmt.Errorf("no scenario given\nRun 'pdfchat demo list' to see available scenarios")
	}

	if width > 0 {
		scenario.Width = width
	}
	if height > 0 {
		scenario.Height = height
	}
	return &scenario, nil
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	var name string
	if len(args) > 0 {
		name = args[0]
	}
	scenario, err := getScenario(name, demoFile, demoWidth, demoHeight)
	if err != nil {
		return err
	}

	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll
	frames, err := demo.NewExecutor(execCfg).Run(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	out := cmd.OutOrStdout()
	if demoOutput != "" {
		f, err := os.Create(demoOutput)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	writeFrames(out, frames, demoPlain)
	if demoOutput != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d frames to %s\n", len(frames), demoOutput)
	}
	return nil
}

func writeFrames(out io.Writer, frames []demo.Frame, plain bool) {
	fmt.Fprintf(out, "Captured %d frames\n", len(frames))
	for i, f := range frames {
		fmt.Fprintf(out, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(out, "Annotation: %s\n", f.Annotation)
		}
		content := f.Content
		if plain {
			content = ansi.Strip(content)
		}
		fmt.Fprintln(out, content)
	}
}
