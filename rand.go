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
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// RandomSource returns a uniformly distributed value in the inclusive range
// [lo, hi]. It is called exactly once per game, to choose the secret value.
type RandomSource func(lo, hi uint32) uint32

// DefaultRandom is the RandomSource used when neither the RuntimeInterface nor
// the configuration specifies one.
func DefaultRandom(lo, hi uint32) uint32 {
	return lo + uint32(rand.Uint64N(span(lo, hi)))
}

// SeededRandom returns a deterministic RandomSource. Sources created from the
// same seed phrase return the same sequence of values.
func SeededRandom(seed string) RandomSource {
	rng := rand.New(rand.NewPCG(xxhash.Sum64String(seed), 0))
	return func(lo, hi uint32) uint32 {
		return lo + uint32(rng.Uint64N(span(lo, hi)))
	}
}

// span is the number of values in [lo, hi], which does not fit in an uint32
// for the full range.
func span(lo, hi uint32) uint64 {
	return uint64(hi) - uint64(lo) + 1
}
