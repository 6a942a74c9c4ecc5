// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// Format is the format of the log output.
type Format uint8

const (
	// FormatConsole writes plain lines prefixed with the time and level.
	FormatConsole Format = iota
	// FormatColoured is FormatConsole with a coloured level.
	FormatColoured
)

func (f Format) formatLevel(level Level) string {
	const padding = 8
	var s string
	switch f {
	case FormatColoured:
		s = level.ColouredString()
		// colour escape codes do not count in the padding
		return s + spaces(padding-len(level.String()))
	default:
		s = level.String()
		return s + spaces(padding-len(s))
	}
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
