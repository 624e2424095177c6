package grader

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/segmentio/encoding/json"
)

const celebration = "✨🌟💖💎🦄💎💖🌟✨🌟💖💎🦄💎💖🌟✨"

// Reporter writes the human-readable grading transcript. Colors follow the
// global color.NoColor switch.
type Reporter struct {
	w     io.Writer
	green *color.Color
	red   *color.Color
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{
		w:     w,
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed),
	}
}

func (r *Reporter) StartTest(tc *TestCase) {
	fmt.Fprintf(r.w, "📝 %s\n", tc.Name)
}

// SetupOutput passes a successful setup command's stdout through verbatim.
func (r *Reporter) SetupOutput(stdout string) {
	fmt.Fprint(r.w, stdout)
}

func (r *Reporter) Pass(tc *TestCase, stdout string) {
	fmt.Fprintf(r.w, "%s✅ %s\n", stdout, r.green.Sprint(tc.Name))
}

func (r *Reporter) Fail(tc *TestCase, stdout string) {
	fmt.Fprintf(r.w, "%s❌ %s\n", stdout, r.red.Sprint(tc.Name))
}

// SetupFailed reports a setup command that did not finish cleanly. When the
// command itself failed, its stderr leads uncolored so compiler output stays
// readable.
func (r *Reporter) SetupFailed(tc *TestCase, err error) {
	var ee *ExitError
	if errors.As(err, &ee) {
		fmt.Fprintf(r.w, "%s❌ %s\n", ee.Stderr, r.red.Sprint(tc.Name))
		return
	}
	r.Errored(tc, err)
}

// Errored reports a test that could not be judged at all.
func (r *Reporter) Errored(tc *TestCase, err error) {
	fmt.Fprintf(r.w, "%s\n❌ %s\n", r.red.Sprint(err.Error()), r.red.Sprint(tc.Name))
}

// EndTest separates one test's transcript from the next.
func (r *Reporter) EndTest() {
	fmt.Fprint(r.w, "\n\n")
}

func (r *Reporter) Finish(s *Summary) {
	if s.AllPassed() {
		fmt.Fprintf(r.w, "%s\n%s\n", r.green.Sprint("All tests pass"), celebration)
	}
	fmt.Fprintf(r.w, "Points %d/%d\n", s.Points, s.TotalPoints)
}

// Result records one graded test. Points holds the points earned, so a
// failed test carries zero.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Points int    `json:"points,omitempty"`
	Stdout string `json:"stdout,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Summary is the machine-readable outcome of a grading run.
type Summary struct {
	Points      int      `json:"points"`
	TotalPoints int      `json:"totalPoints"`
	Passed      int      `json:"passed"`
	Failed      int      `json:"failed"`
	Results     []Result `json:"tests"`
}

func (s *Summary) AllPassed() bool {
	return s.Failed == 0
}

// WriteJSON writes the summary as indented JSON.
func (s *Summary) WriteJSON(w io.Writer) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode the grading summary: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("could not write the grading summary: %w", err)
	}
	return nil
}
