package demo

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pcerrors "github.com/zhubert/pdfchat/internal/errors"
)

// scenarioFile is the YAML form of a Scenario:
//
//	name: refunds
//	user_name: Sam
//	steps:
//	  - select_file: Refund Policy.pdf
//	    pages: 4
//	  - upload_done: true
//	  - type: How long do refunds take?
//	  - key: enter
//	  - wait: 1s
//	  - answer: Within **14 days**.
type scenarioFile struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	UserName    string     `yaml:"user_name"`
	Steps       []stepFile `yaml:"steps"`
}

// stepFile holds exactly one action. Failures are given either as a
// transport error message or as an HTTP status from the backend.
type stepFile struct {
	Wait         string  `yaml:"wait"`
	Key          string  `yaml:"key"`
	Type         string  `yaml:"type"`
	Answer       *string `yaml:"answer"`
	AnswerError  string  `yaml:"answer_error"`
	AnswerStatus int     `yaml:"answer_status"`
	SelectFile   string  `yaml:"select_file"`
	Pages        int     `yaml:"pages"`
	UploadDone   bool    `yaml:"upload_done"`
	UploadError  string  `yaml:"upload_error"`
	UploadStatus int     `yaml:"upload_status"`
	Capture      bool    `yaml:"capture"`
	Annotate     string  `yaml:"annotate"`
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario and validates it.
func ParseScenario(data []byte) (*Scenario, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	s := &Scenario{
		Name:        f.Name,
		Description: f.Description,
		Width:       f.Width,
		Height:      f.Height,
		UserName:    f.UserName,
	}
	for i, sf := range f.Steps {
		step, err := sf.step()
		if err != nil {
			return nil, &ValidationError{Field: "Steps", Message: fmt.Sprintf("step %d: %v", i, err)}
		}
		s.Steps = append(s.Steps, step)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (sf stepFile) step() (Step, error) {
	var steps []Step

	if sf.Wait != "" {
		d, err := time.ParseDuration(sf.Wait)
		if err != nil {
			return Step{}, fmt.Errorf("bad wait %q: %w", sf.Wait, err)
		}
		steps = append(steps, Wait(d))
	}
	if sf.Key != "" {
		steps = append(steps, Key(sf.Key))
	}
	if sf.Type != "" {
		steps = append(steps, Type(sf.Type))
	}
	if sf.Answer != nil {
		steps = append(steps, Answer(*sf.Answer))
	}
	if sf.AnswerError != "" {
		steps = append(steps, AnswerError(pcerrors.AskFailed(errors.New(sf.AnswerError))))
	}
	if sf.AnswerStatus != 0 {
		steps = append(steps, AnswerError(pcerrors.BackendStatus(pcerrors.Op("backend.Ask"), sf.AnswerStatus, "")))
	}
	if sf.SelectFile != "" {
		steps = append(steps, SelectFile(sf.SelectFile, sf.Pages))
	}
	if sf.UploadDone {
		steps = append(steps, UploadDone())
	}
	if sf.UploadError != "" {
		steps = append(steps, UploadError(pcerrors.UploadFailed("file", errors.New(sf.UploadError))))
	}
	if sf.UploadStatus != 0 {
		steps = append(steps, UploadError(pcerrors.BackendStatus(pcerrors.Op("backend.Upload"), sf.UploadStatus, "")))
	}
	if sf.Capture {
		steps = append(steps, Capture())
	}
	if sf.Annotate != "" {
		steps = append(steps, Annotate(sf.Annotate))
	}

	switch len(steps) {
	case 0:
		return Step{}, errors.New("no action")
	case 1:
		return steps[0], nil
	default:
		return Step{}, fmt.Errorf("%d actions in one step", len(steps))
	}
}
