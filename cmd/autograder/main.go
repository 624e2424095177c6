package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fanatic/autograder/grader"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var (
	configFile string
	shell      string
	reportFile string
	noColor    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:          "autograder",
	Short:        "Grade a classroom exercise from its autograding.json",
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "./.github/classroom/autograding.json", "autograding configuration file")
	rootCmd.Flags().StringVar(&shell, "shell", "bash", "shell that runs setup and run commands")
	rootCmd.Flags().StringVar(&reportFile, "report", "", "write a JSON summary to this file")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every command before it runs")
}

func run(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := grader.LoadConfig(configFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-c
		log.WithFields(logrus.Fields{"at": "grade.interrupt", "sig": sig.String()}).Warn("stopping")
		cancel()
	}()

	g := grader.New(cfg, &grader.Runner{Shell: shell, Log: log}, grader.NewReporter(cmd.OutOrStdout()))
	g.Log = log

	summary, err := g.Grade(ctx)
	if err != nil {
		return err
	}

	if reportFile != "" {
		if err := writeReport(reportFile, summary); err != nil {
			return err
		}
	}
	if !summary.AllPassed() {
		os.Exit(1)
	}
	return nil
}

func writeReport(path string, s *grader.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.WriteJSON(f)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}
