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
	"fmt"
	"strings"
)

// SchemaVersion is the semver version of the schema of the game configuration
// file. Currently this is v1.0.0.
const SchemaVersion = "1.0.0"

// Default bounds of the secret value, used when the configuration does not
// specify them.
const (
	DefaultMin uint32 = 1
	DefaultMax uint32 = 100
)

//------------------------------------------------------------------------------
// core

// GameConfig is the entirety of the configuration of a single game. It is
// typically deserialized in from a .json or .yaml file, but the zero value
// (with only the Version set) is a complete and valid configuration that
// plays the classic 1 to 100 game.
type GameConfig struct {
	// Version indicates the version of the schema according to which the
	// other fields in this structure should be interpreted. This is in
	// the semver syntax (a trailing `.0` or `.0.0` may be omitted). This
	// field is required, and validation will fail without it.
	Version string `json:"version"`

	// Min is the inclusive lower bound of the secret value. Defaults to 1.
	Min *uint32 `json:"min,omitempty"`

	// Max is the inclusive upper bound of the secret value. Defaults to 100.
	// Must not be less than Min.
	Max *uint32 `json:"max,omitempty"`

	// Seed, if not empty, makes the secret value a deterministic function
	// of this phrase and the bounds. Useful for replaying a game or for
	// setting up a shared puzzle. Ignored if the RuntimeInterface supplies
	// its own random source.
	Seed string `json:"seed,omitempty"`

	// Debug enables debug logs for every guess, and also logs the secret
	// value when the game starts.
	Debug bool `json:"debug,omitempty"`

	// Messages can be used to change the text shown to the player. See the
	// documentation of the Messages struct for more info. Optional.
	Messages *Messages `json:"messages,omitempty"`
}

// Validate the entire configuration. Returns a list of errors and warnings.
func (c *GameConfig) Validate() (r []ValidationResult) {
	return c.validate()
}

// IsValid performs validation (calls Validate() internally) and returns an error
// if the validation finds at least one error. All errors are formatted into a
// single error message, and warnings are not included. For better formatting
// use the Validate() method directly.
func (c *GameConfig) IsValid() error {
	var a []string
	for _, r := range c.Validate() {
		if !r.Warn {
			a = append(a, r.Message)
		}
	}
	if len(a) > 0 {
		return fmt.Errorf("%d errors: %s", len(a), strings.Join(a, "; "))
	}
	return nil
}

// Bounds returns the effective inclusive bounds of the secret value, after
// applying defaults.
func (c *GameConfig) Bounds() (min, max uint32) {
	min, max = DefaultMin, DefaultMax
	if c.Min != nil {
		min = *c.Min
	}
	if c.Max != nil {
		max = *c.Max
	}
	return
}

// ValidationResult holds one entry of the results of validation. The Validate
// method of GameConfig returns a slice of these.
type ValidationResult struct {
	// Warn is true if the message is a warning, else it is an error.
	Warn bool

	// Message is the actual textual message describing the error or warning.
	Message string
}

//------------------------------------------------------------------------------
// messages

// Default texts shown to the player.
const (
	DefaultIntro    = "Guess the number!"
	DefaultPrompt   = "Please input your guess:"
	DefaultInvalid  = "Please enter a valid number!"
	DefaultTooSmall = "Too small!"
	DefaultTooBig   = "Too big!"
	DefaultWin      = "You win!"
)

// Messages are the lines of text printed by the game. Each is printed on a
// line of it's own. Any field left empty uses the corresponding default.
type Messages struct {
	// Intro is printed once, before the first prompt.
	Intro string `json:"intro,omitempty"`

	// Prompt is printed before reading each guess.
	Prompt string `json:"prompt,omitempty"`

	// Invalid is printed when the input is not a valid non-negative integer.
	Invalid string `json:"invalid,omitempty"`

	// TooSmall is printed when the guess is less than the secret value.
	TooSmall string `json:"tooSmall,omitempty"`

	// TooBig is printed when the guess is greater than the secret value.
	TooBig string `json:"tooBig,omitempty"`

	// Win is printed when the guess is correct, after which the game ends.
	Win string `json:"win,omitempty"`
}

func orDefault(s, def string) string {
	if len(s) == 0 {
		return def
	}
	return s
}

// withDefaults returns a copy of m (which may be nil) with the empty fields
// filled in.
func (m *Messages) withDefaults() Messages {
	var out Messages
	if m != nil {
		out = *m
	}
	out.Intro = orDefault(out.Intro, DefaultIntro)
	out.Prompt = orDefault(out.Prompt, DefaultPrompt)
	out.Invalid = orDefault(out.Invalid, DefaultInvalid)
	out.TooSmall = orDefault(out.TooSmall, DefaultTooSmall)
	out.TooBig = orDefault(out.TooBig, DefaultTooBig)
	out.Win = orDefault(out.Win, DefaultWin)
	return out
}

// forOutcome returns the message to be printed for the outcome of a guess.
func (m *Messages) forOutcome(o Outcome) string {
	switch o {
	case OutcomeTooSmall:
		return m.TooSmall
	case OutcomeTooBig:
		return m.TooBig
	case OutcomeCorrect:
		return m.Win
	}
	return m.Invalid
}
