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

	"golang.org/x/mod/semver"
)

//------------------------------------------------------------------------------

func addWarn(r []ValidationResult, msg string) []ValidationResult {
	return append(r, ValidationResult{
		Warn:    true,
		Message: msg,
	})
}

func addError(r []ValidationResult, msg string) []ValidationResult {
	return append(r, ValidationResult{
		Warn:    false,
		Message: msg,
	})
}

//------------------------------------------------------------------------------
// game

func (c *GameConfig) validate() (r []ValidationResult) {
	// Version
	if !semver.IsValid("v" + c.Version) {
		r = addError(r, fmt.Sprintf("invalid schema version %q: must be semver", c.Version))
	} else if semver.Major("v"+c.Version) != semver.Major("v"+SchemaVersion) {
		r = addError(r, fmt.Sprintf("incompatible schema version %q", c.Version))
	} else if semver.Compare("v"+c.Version, "v"+SchemaVersion) > 0 {
		r = addWarn(r, fmt.Sprintf("schema version %q is newer than %q, some fields may be ignored",
			c.Version, SchemaVersion))
	}
	// Min, Max
	min, max := c.Bounds()
	if min > max {
		r = addError(r, fmt.Sprintf("invalid bounds: min (%d) is greater than max (%d)", min, max))
	} else if min == max {
		r = addWarn(r, fmt.Sprintf("min and max are both %d, the first guess can only be right or wrong", min))
	}
	// Messages
	if c.Messages != nil {
		r = append(r, c.Messages.validate()...)
	}
	return
}

//------------------------------------------------------------------------------
// messages

func (m *Messages) validate() (r []ValidationResult) {
	check := func(name, v string) {
		if len(v) > 0 && len(strings.TrimSpace(v)) == 0 {
			r = addWarn(r, fmt.Sprintf("message %q contains only whitespace", name))
		}
	}
	check("intro", m.Intro)
	check("prompt", m.Prompt)
	check("invalid", m.Invalid)
	check("tooSmall", m.TooSmall)
	check("tooBig", m.TooBig)
	check("win", m.Win)
	return
}
