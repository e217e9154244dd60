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
)

// ErrGameOver is returned by Guess once the game has been won.
var ErrGameOver = errors.New("game is already won")

// ParseError is returned for input text that is not a valid non-negative
// integer. It is always recoverable: the game state is left unchanged and the
// player may simply try again.
type ParseError struct {
	Input string // the input, after trimming whitespace
	Err   error  // the underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("not a valid number: %q", e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InputStreamError is returned by Play when the input can no longer be read,
// either because it was closed (Err is io.EOF) or because it failed. The game
// cannot continue after this.
type InputStreamError struct {
	Err error
}

func (e *InputStreamError) Error() string {
	return fmt.Sprintf("failed to read input: %v", e.Err)
}

func (e *InputStreamError) Unwrap() error {
	return e.Err
}
