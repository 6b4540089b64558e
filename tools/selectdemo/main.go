package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/rdeusser/selectable/selectable"
	"github.com/rdeusser/selectable/zappretty"
)

func main() {
	var (
		mode    selectable.Mode
		verbose bool
	)

	flag := flag.NewFlagSet("selectdemo", flag.ContinueOnError)

	flag.Var(&mode, "mode", "selection mode: single or multiple")
	flag.BoolVar(&verbose, "v", false, "log debug output")

	if err := flag.Parse(os.Args[1:]); err != nil {
		log.Fatalf("%+v", err)
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	logger := zappretty.NewLogger(os.Stderr, level).Named("selectdemo")
	defer logger.Sync()

	list := selectable.NewComparable(flag.Args(), mode, selectable.WithLogger(logger))

	if err := newSession(list, logger, os.Stdout).run(os.Stdin); err != nil {
		log.Fatalf("%+v", err)
	}
}
