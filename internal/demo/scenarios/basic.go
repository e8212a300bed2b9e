// Package scenarios contains built-in demo scenarios for pdfchat.
package scenarios

import (
	"errors"
	"time"

	"github.com/zhubert/pdfchat/internal/demo"
	pcerrors "github.com/zhubert/pdfchat/internal/errors"
)

// Basic uploads a report and asks two questions about it.
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Upload a PDF, ask about it, get formatted answers",
	Width:       100,
	Height:      30,
	UserName:    "Robin",
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Capture(),

		demo.Annotate("Pick a PDF"),
		demo.SelectFile("Annual Report 2025 Final Draft.pdf", 42),
		demo.Wait(900 * time.Millisecond),
		demo.UploadDone(),
		demo.Wait(1 * time.Second),

		demo.Annotate("Ask a question"),
		demo.Type("What were the three biggest cost drivers?"),
		demo.Wait(300 * time.Millisecond),
		demo.Capture(),
		demo.Key("enter"),
		demo.Wait(1200 * time.Millisecond),
		demo.Answer("The report lists three:\n\n" +
			"1. **Cloud hosting** grew 38% after the EU region launch.\n" +
			"2. **Support staffing** doubled to cover 24/7 coverage.\n" +
			"3. **Licensing** for the analytics suite, renewed in Q2.\n\n" +
			"See section 4.2 on page 17 for the breakdown."),
		demo.Wait(1500 * time.Millisecond),

		demo.Type("Show the formula they use for churn"),
		demo.Key("enter"),
		demo.Wait(900 * time.Millisecond),
		demo.Answer("Appendix B defines it as:\n\n" +
			"```python\n" +
			"churn = lost_customers / customers_at_start\n" +
			"```\n\n" +
			"Quarterly figures are averaged, not summed."),
		demo.Wait(2 * time.Second),
	},
}

// Errors shows the upload bar's error banner and the chat's fallback reply.
var Errors = &demo.Scenario{
	Name:        "errors",
	Description: "Wrong file type, failed upload, and a failed question",
	Width:       100,
	Height:      30,
	Steps: []demo.Step{
		demo.Wait(500 * time.Millisecond),

		demo.Annotate("Only PDFs are accepted"),
		demo.SelectFile("meeting-notes.docx", 0),
		demo.Wait(1 * time.Second),

		demo.Annotate("The backend is unreachable"),
		demo.SelectFile("contract.pdf", 8),
		demo.Wait(600 * time.Millisecond),
		demo.UploadError(pcerrors.UploadFailed("contract.pdf", errors.New("connection refused"))),
		demo.Wait(1 * time.Second),

		demo.Annotate("Questions fail gracefully too"),
		demo.Type("Who signed the contract?"),
		demo.Key("enter"),
		demo.Wait(900 * time.Millisecond),
		demo.AnswerError(pcerrors.AskFailed(errors.New("connection refused"))),
		demo.Wait(1500 * time.Millisecond),
	},
}

// All returns all available scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Errors,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
