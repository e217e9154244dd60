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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rapidloop/numguess"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func run(args []string, stdin string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = realmain(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(r *require.Assertions, dir, name, content string) string {
	p := filepath.Join(dir, name)
	r.Nil(os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestExitWin(t *testing.T) {
	r := require.New(t)

	code, out, _ := run([]string{"--min", "50", "--max", "50", "-l", "json"}, "10\n90\n50\n")
	r.Equal(0, code)
	r.Contains(out, numguess.DefaultTooSmall)
	r.Contains(out, numguess.DefaultTooBig)
	r.True(strings.HasSuffix(out, numguess.DefaultWin+"\n"), "stdout was %q", out)

	code, _, _ = run([]string{"--seed", "abc", "--min", "7", "--max", "7"}, "x\n7\n")
	r.Equal(0, code)
}

func TestExitInputClosed(t *testing.T) {
	r := require.New(t)

	for _, in := range []string{"", "abc\n", "1\n"} {
		code, _, errOut := run([]string{"--min", "50", "--max", "50", "--no-color"}, in)
		r.Equal(1, code, "input %q", in)
		r.Contains(errOut, "input closed before the number was guessed")
	}
}

func TestExitConfigError(t *testing.T) {
	r := require.New(t)

	code, _, errOut := run([]string{"--min", "10", "--max", "5"}, "7\n")
	r.Equal(2, code)
	r.Contains(errOut, "invalid configuration")

	code, out, _ := run([]string{"--check", "--min", "10", "--max", "5"}, "")
	r.Equal(2, code)
	r.Contains(out, "error: ")

	code, out, _ = run([]string{"--check", "--min", "5", "--max", "5"}, "")
	r.Equal(0, code)
	r.Contains(out, "warning: ")

	dir := t.TempDir()
	p := writeFile(r, dir, "bad.json", `{"version": "2"}`)
	code, _, _ = run([]string{p}, "1\n")
	r.Equal(2, code)
}

func TestExitUsage(t *testing.T) {
	r := require.New(t)

	code, _, _ := run([]string{"--logtype", "xml"}, "")
	r.Equal(1, code)
	code, _, _ = run([]string{"a.json", "b.json"}, "")
	r.Equal(1, code)
	code, _, _ = run([]string{"--no-such-flag"}, "")
	r.Equal(1, code)
	code, _, _ = run([]string{"/no/such/file.json"}, "")
	r.Equal(1, code)

	code, out, _ := run([]string{"--version"}, "")
	r.Equal(0, code)
	r.Contains(out, "numguess v")
	code, _, _ = run([]string{"--help"}, "")
	r.Equal(0, code)
}

func TestConfigFileDebug(t *testing.T) {
	r := require.New(t)

	dir := t.TempDir()
	p := writeFile(r, dir, "game.json", `{"version": "1", "min": 3, "max": 3, "debug": true}`)
	code, _, errOut := run([]string{"-l", "json", p}, "1\n3\n")
	r.Equal(0, code)
	r.Contains(errOut, `"message":"secret chosen"`)
	r.Contains(errOut, `"message":"guess evaluated"`)
	r.Contains(errOut, `"metric":"numguess_attempts"`)

	p = writeFile(r, dir, "game.yaml", "version: \"1\"\nmin: 3\nmax: 3\ndebug: true\n")
	code, _, errOut = run([]string{"-y", "-l", "json", p}, "3\n")
	r.Equal(0, code)
	r.Contains(errOut, `"message":"secret chosen"`)

	// without debug, none of the debug events are emitted
	p = writeFile(r, dir, "quiet.json", `{"version": "1", "min": 3, "max": 3}`)
	code, _, errOut = run([]string{"-l", "json", p}, "3\n")
	r.Equal(0, code)
	r.Contains(errOut, `"message":"game won"`)
	r.NotContains(errOut, "secret chosen")
}

func TestNewLoggerLevel(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	r.Equal(zerolog.DebugLevel, newLogger(&buf, false, true, true).GetLevel())
	r.Equal(zerolog.InfoLevel, newLogger(&buf, false, true, false).GetLevel())
	r.Equal(zerolog.DebugLevel, newLogger(&buf, true, false, true).GetLevel())
	r.Equal(zerolog.InfoLevel, newLogger(&buf, true, false, false).GetLevel())
}
