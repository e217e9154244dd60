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
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"
)

// Summary describes a game that has been won.
type Summary struct {
	Attempts      int           // valid guesses, including the correct one
	InvalidInputs int           // lines that were not valid numbers
	Elapsed       time.Duration // from the start of Play to the win
}

// Play runs the guess loop: it prints the intro, then repeatedly prints the
// prompt, reads a line from in and prints the result of guessing it, until the
// secret value is guessed. A final line without a trailing newline is still
// evaluated.
//
// If in is closed or fails before the game is won, an *InputStreamError is
// returned. Play does not retry reads.
func (g *Game) Play(in io.Reader, out io.Writer) (Summary, error) {
	t0 := time.Now()
	br := bufio.NewReader(in)

	if err := g.println(out, g.msgs.Intro); err != nil {
		return Summary{}, err
	}
	for !g.Won() {
		if err := g.println(out, g.msgs.Prompt); err != nil {
			return Summary{}, err
		}
		line, rerr := br.ReadString('\n')
		if rerr != nil && (rerr != io.EOF || len(line) == 0) {
			g.logger.Error().Err(rerr).Int("attempts", g.attempts).Msg("input stream failed")
			return Summary{}, &InputStreamError{Err: rerr}
		}
		o, err := g.Guess(line)
		var perr *ParseError
		if err != nil && !errors.As(err, &perr) {
			return Summary{}, err
		}
		if err := g.println(out, g.msgs.forOutcome(o)); err != nil {
			return Summary{}, err
		}
		if rerr == io.EOF && !g.Won() {
			g.logger.Error().Int("attempts", g.attempts).Msg("input closed before the game was won")
			return Summary{}, &InputStreamError{Err: rerr}
		}
	}

	return Summary{
		Attempts:      g.attempts,
		InvalidInputs: g.invalid,
		Elapsed:       time.Since(t0),
	}, nil
}

func (g *Game) println(out io.Writer, msg string) error {
	if _, err := fmt.Fprintln(out, msg); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
