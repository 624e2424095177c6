package grader

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Grader runs every test in a configuration, in order, reporting as it
// goes. A failing test never stops the run; only context cancellation
// does.
type Grader struct {
	Config   *Config
	Runner   *Runner
	Reporter *Reporter
	Log      *logrus.Logger
}

func New(cfg *Config, runner *Runner, reporter *Reporter) *Grader {
	return &Grader{Config: cfg, Runner: runner, Reporter: reporter}
}

func (g *Grader) log() *logrus.Logger {
	if g.Log == nil {
		return logrus.StandardLogger()
	}
	return g.Log
}

// Grade runs the tests and returns the summary. On cancellation it returns
// the partial summary together with the context's error.
func (g *Grader) Grade(ctx context.Context) (*Summary, error) {
	s := &Summary{TotalPoints: g.Config.TotalPoints()}

	for i := range g.Config.Tests {
		tc := &g.Config.Tests[i]
		if err := ctx.Err(); err != nil {
			return s, err
		}

		res := g.gradeOne(ctx, tc)
		s.Results = append(s.Results, res)
		if res.Passed {
			s.Passed++
			s.Points += res.Points
		} else {
			s.Failed++
		}
		g.Reporter.EndTest()
	}

	g.Reporter.Finish(s)
	return s, nil
}

func (g *Grader) gradeOne(ctx context.Context, tc *TestCase) Result {
	g.Reporter.StartTest(tc)
	res := Result{Name: tc.Name}

	if tc.Setup != "" {
		stdout, err := g.Runner.Setup(ctx, tc)
		if err != nil {
			g.log().WithFields(logrus.Fields{"at": "grade.setup", "test": tc.Name}).Debug(err)
			g.Reporter.SetupFailed(tc, err)
			res.Error = err.Error()
			return res
		}
		g.Reporter.SetupOutput(stdout)
	}

	stdout, err := g.Runner.Run(ctx, tc)
	if err != nil {
		g.log().WithFields(logrus.Fields{"at": "grade.run", "test": tc.Name}).Debug(err)
		g.Reporter.Errored(tc, err)
		res.Error = err.Error()
		return res
	}
	res.Stdout = stdout

	ok, err := tc.Comparison.Match(stdout, tc.Output)
	if err != nil {
		g.Reporter.Errored(tc, err)
		res.Error = err.Error()
		return res
	}
	if !ok {
		g.Reporter.Fail(tc, stdout)
		return res
	}

	g.Reporter.Pass(tc, stdout)
	res.Passed = true
	res.Points = tc.Points
	return res
}
