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

// The package numguess provides the definition of the game configuration
// (the [GameConfig] structure and it's children), as well as the
// implementation of the number guessing game itself ([Game]). Runtime
// dependencies to be supplied by the caller are specified using the
// [RuntimeInterface].
//
// A game picks a secret value in a range, then evaluates guesses until one
// of them is exactly right. [Game.Guess] evaluates a single guess, and
// [Game.Play] runs the whole prompt-read-evaluate loop over an input and an
// output stream. The code for the `cmd/numguess` CLI tool is a good example
// of how to use the Game.
package numguess
