package main

import (
	"errors"
	"flag"
	"os"

	"github.com/fanatic/autograder/linereversal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	firstLine := flag.Bool("line", false, "reverse only the first input line")
	limit := flag.Int("max", 0, "largest accepted input in bytes, 0 means unlimited")
	flag.Parse()

	app := linereversal.App{FirstLineOnly: *firstLine, Limit: *limit}
	if err := app.Run(os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, linereversal.ErrTooLong) {
			log.WithFields(logrus.Fields{"at": "reverse.limit", "max": *limit}).Fatal(err)
		}
		log.WithFields(logrus.Fields{"at": "reverse.err"}).Fatal(err)
	}
}
