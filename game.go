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

package numguess

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// State is the state of a Game.
type State int

const (
	// StatePrompting is the initial state, waiting for a guess.
	StatePrompting State = iota
	// StateEvaluating is the state while a guess is being evaluated.
	StateEvaluating
	// StateWon is the terminal state, entered on a correct guess.
	StateWon
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateEvaluating:
		return "evaluating"
	case StateWon:
		return "won"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Outcome is the result of evaluating one line of input.
type Outcome int

const (
	// OutcomeInvalid means the input was not a valid non-negative integer.
	OutcomeInvalid Outcome = iota
	// OutcomeTooSmall means the guess was less than the secret value.
	OutcomeTooSmall
	// OutcomeTooBig means the guess was greater than the secret value.
	OutcomeTooBig
	// OutcomeCorrect means the guess was equal to the secret value.
	OutcomeCorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeTooSmall:
		return "too-small"
	case OutcomeTooBig:
		return "too-big"
	case OutcomeCorrect:
		return "correct"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Game is a single round of the guessing game. The secret value is chosen
// when the game is created and never changes after that. A Game is not safe
// for concurrent use.
type Game struct {
	cfg      *GameConfig
	rti      *RuntimeInterface
	logger   zerolog.Logger
	msgs     Messages
	min, max uint32
	secret   uint32
	state    State
	attempts int
	invalid  int
	t0       time.Time
}

// NewGame creates a new Game object, given a game configuration object and an
// optional runtime interface. The configuration must be valid, otherwise an
// error is returned. The secret value is chosen before NewGame returns.
func NewGame(cfg *GameConfig, rti *RuntimeInterface) (*Game, error) {
	if cfg == nil {
		return nil, errors.New("invalid configuration: is nil")
	}
	if err := cfg.IsValid(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	g := &Game{
		cfg:  cfg,
		rti:  rti,
		msgs: cfg.Messages.withDefaults(),
		t0:   time.Now(),
	}

	// setup logger
	if rti == nil || rti.Logger == nil {
		g.logger = zerolog.Nop()
	} else {
		g.logger = *rti.Logger
	}

	// choose the secret
	g.min, g.max = cfg.Bounds()
	var src RandomSource
	if rti != nil && rti.Random != nil {
		src = rti.Random
	} else if len(cfg.Seed) > 0 {
		src = SeededRandom(cfg.Seed)
	} else {
		src = DefaultRandom
	}
	g.secret = src(g.min, g.max)
	if g.secret < g.min || g.secret > g.max {
		return nil, fmt.Errorf("random source returned %d, outside of [%d, %d]",
			g.secret, g.min, g.max)
	}

	g.logger.Info().Uint32("min", g.min).Uint32("max", g.max).
		Bool("seeded", len(cfg.Seed) > 0).Msg("game started")
	if cfg.Debug {
		g.logger.Debug().Uint32("secret", g.secret).Msg("secret chosen")
	}
	return g, nil
}

// Guess evaluates one line of input typed by the player. Surrounding
// whitespace is ignored. If the text is not a valid non-negative integer,
// OutcomeInvalid is returned along with a *ParseError, and the game is
// otherwise unaffected. Once the game is won, ErrGameOver is returned for
// every further call.
func (g *Game) Guess(text string) (Outcome, error) {
	if g.state == StateWon {
		return OutcomeInvalid, ErrGameOver
	}
	g.state = StateEvaluating

	n, err := parseGuess(text)
	if err != nil {
		g.invalid++
		g.state = StatePrompting
		g.report(OutcomeInvalid)
		return OutcomeInvalid, err
	}

	g.attempts++
	var o Outcome
	switch {
	case n < g.secret:
		o = OutcomeTooSmall
		g.state = StatePrompting
	case n > g.secret:
		o = OutcomeTooBig
		g.state = StatePrompting
	default:
		o = OutcomeCorrect
		g.state = StateWon
	}
	if g.cfg.Debug {
		e := g.logger.Debug().Uint32("guess", n).Str("outcome", o.String()).
			Int("attempt", g.attempts)
		if n < g.min || n > g.max {
			e = e.Bool("outOfBounds", true)
		}
		e.Msg("guess evaluated")
	}
	g.report(o)
	if o == OutcomeCorrect {
		g.logger.Info().Int("attempts", g.attempts).Int("invalid", g.invalid).
			Float64("elapsed", float64(time.Since(g.t0))/1e6).Msg("game won")
		if g.rti != nil && g.rti.ReportMetric != nil {
			g.rti.ReportMetric("numguess_attempts", nil, float64(g.attempts))
		}
	}
	return o, nil
}

func (g *Game) report(o Outcome) {
	if g.rti != nil && g.rti.ReportMetric != nil {
		g.rti.ReportMetric("numguess_guess", []string{"outcome=" + o.String()}, 1)
	}
}

// parseGuess accepts an unsigned 32-bit decimal integer with an optional
// leading '+', surrounded by optional whitespace.
func parseGuess(text string) (uint32, error) {
	s := strings.TrimSpace(text)
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return uint32(n), nil
}

// State returns the current state of the game.
func (g *Game) State() State {
	return g.state
}

// Won returns true if the secret value has been guessed.
func (g *Game) Won() bool {
	return g.state == StateWon
}

// Attempts returns the number of valid guesses made so far, including the
// correct one.
func (g *Game) Attempts() int {
	return g.attempts
}

// InvalidInputs returns the number of inputs that could not be parsed.
func (g *Game) InvalidInputs() int {
	return g.invalid
}

// Bounds returns the inclusive bounds of the secret value.
func (g *Game) Bounds() (min, max uint32) {
	return g.min, g.max
}

//------------------------------------------------------------------------------

// RuntimeInterface specifies the runtime dependencies of a Game, to be
// supplied by the caller. All fields are optional.
type RuntimeInterface struct {
	// Logger specifies where to send the logs to. The debug logs enabled with
	// the 'debug' option in the configuration will emit zerolog debug events.
	// The only other levels used are error and info. If this field is nil,
	// no logs will be emitted.
	Logger *zerolog.Logger

	// ReportMetric will be called for reporting the value of metrics, like
	// the number of guesses by outcome. This function should finish as
	// quick as possible.
	ReportMetric func(name string, labels []string, value float64)

	// Random, if set, is used to choose the secret value instead of the
	// default source or the seed from the configuration.
	Random RandomSource
}
