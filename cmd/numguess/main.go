/*
 * Copyright 2022 RapidLoop, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/rapidloop/numguess"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

type options struct {
	flagset *pflag.FlagSet
	version *bool
	check   *bool
	logtype *string
	nocolor *bool
	yaml    *bool
	debug   *bool
	seed    *string
	min     *uint32
	max     *uint32
}

func newOptions(stderr io.Writer) *options {
	fs := pflag.NewFlagSet("", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	o := &options{
		flagset: fs,
		version: fs.BoolP("version", "v", false, "show version and exit"),
		check:   fs.BoolP("check", "c", false, "only check if the config file is valid"),
		logtype: fs.StringP("logtype", "l", "text", "print logs in 'text' (default) or 'json' format"),
		nocolor: fs.Bool("no-color", false, "do not colorize log output"),
		yaml:    fs.BoolP("yaml", "y", false, "config-file is in YAML format"),
		debug:   fs.BoolP("debug", "d", false, "enable debug logs (reveals the secret)"),
		seed:    fs.StringP("seed", "s", "", "choose the secret deterministically from this phrase"),
		min:     fs.Uint32("min", numguess.DefaultMin, "smallest possible secret value"),
		max:     fs.Uint32("max", numguess.DefaultMax, "largest possible secret value"),
	}
	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage: numguess [options] [config-file]
numguess is the classic number guessing game. Guesses are read from stdin.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(stderr, `
(c) RapidLoop, Inc. 2022
`)
	}
	return o
}

var version string // set during build

func main() {
	os.Exit(realmain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func realmain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	elog := log.New(stderr, "", 0)
	opts := newOptions(stderr)
	if err := opts.flagset.Parse(args); err == pflag.ErrHelp {
		return 0
	} else if err != nil || opts.flagset.NArg() > 1 || (*opts.logtype != "text" && *opts.logtype != "json") {
		opts.flagset.Usage()
		return 1
	}

	if *opts.version {
		fmt.Fprintf(stdout, "numguess v%s\n(c) RapidLoop, Inc. 2022\n", version)
		return 0
	}

	// read config file, if any
	config := numguess.GameConfig{Version: numguess.SchemaVersion}
	if opts.flagset.NArg() == 1 {
		if err := loadConfig(opts.flagset.Arg(0), *opts.yaml, &config); err != nil {
			elog.Printf("numguess: %v", err)
			return 1
		}
	}
	opts.apply(&config)

	if *opts.check { // if only check was requested, check, print and exit
		var w, e int
		for _, r := range config.Validate() {
			if r.Warn {
				fmt.Fprint(stdout, "warning: ")
				w++
			} else {
				fmt.Fprint(stdout, "error: ")
				e++
			}
			fmt.Fprintln(stdout, r.Message)
		}
		if w > 0 || e > 0 {
			fmt.Fprintf(stdout, "\n%s: %d error(s), %d warning(s)\n", opts.configName(), e, w)
		}
		if e > 0 {
			return 2
		}
		return 0
	}

	// setup logging, to stderr so that it does not mingle with the game
	logger := newLogger(stderr, *opts.logtype == "json", *opts.nocolor, config.Debug)
	rti := numguess.RuntimeInterface{
		Logger: &logger,
		ReportMetric: func(name string, labels []string, value float64) {
			logger.Debug().Str("metric", name).Strs("labels", labels).
				Float64("value", value).Msg("metric")
		},
	}
	game, err := numguess.NewGame(&config, &rti)
	if err != nil {
		elog.Printf("numguess: failed to create game: %v", err)
		return 2
	}

	// play
	if _, err := game.Play(stdin, stdout); err != nil {
		var ierr *numguess.InputStreamError
		if errors.As(err, &ierr) && errors.Is(ierr.Err, io.EOF) {
			elog.Print("numguess: input closed before the number was guessed")
		} else {
			elog.Printf("numguess: %v", err)
		}
		return 1
	}
	return 0
}

func loadConfig(filename string, isYAML bool, config *numguess.GameConfig) error {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read input: %v", err)
	}
	if isYAML {
		if err := yaml.Unmarshal(raw, config); err != nil {
			return fmt.Errorf("failed to decode yaml: %v", err)
		}
	} else {
		if err := json.Unmarshal(raw, config); err != nil {
			return fmt.Errorf("failed to decode json: %v", err)
		}
	}
	return nil
}

// apply overrides values from the config file with those explicitly given on
// the command line.
func (o *options) apply(config *numguess.GameConfig) {
	if o.flagset.Changed("min") {
		config.Min = o.min
	}
	if o.flagset.Changed("max") {
		config.Max = o.max
	}
	if o.flagset.Changed("seed") {
		config.Seed = *o.seed
	}
	if *o.debug {
		config.Debug = true
	}
}

func (o *options) configName() string {
	if o.flagset.NArg() == 1 {
		return o.flagset.Arg(0)
	}
	return "(defaults)"
}

func newLogger(w io.Writer, asJSON, noColor, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	if asJSON {
		return zerolog.New(w).Level(level).With().Timestamp().Logger()
	}
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		noColor = true
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05.999",
		NoColor:    noColor,
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
