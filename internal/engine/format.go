package engine

import (
	"fmt"
	"strings"
)

// FileFormat names a molfile-based reaction file format.
type FileFormat string

const (
	FormatRXN  FileFormat = "RXN"
	FormatRD   FileFormat = "RD"
	FormatAuto FileFormat = "AUTO"
)

// rxnFileTag is the first line of an MDL RXN file.
const rxnFileTag = "$RXN"

// DetectFormat picks RXN when the first line of text is "$RXN" and RD
// otherwise.
func DetectFormat(text string) FileFormat {
	if firstLine(text) == rxnFileTag {
		return FormatRXN
	}
	return FormatRD
}

// ResolveInputFormat checks an input format tag. An empty tag or AUTO is
// resolved by looking at text.
func ResolveInputFormat(format, text string) (FileFormat, error) {
	switch f := FileFormat(format); f {
	case "", FormatAuto:
		return DetectFormat(text), nil
	case FormatRXN, FormatRD:
		return f, nil
	}
	return "", fmt.Errorf("Unsupported input file format '%s'.", format)
}

// ParseOutputFormat checks an output format tag. Only RXN and RD are valid.
func ParseOutputFormat(format string) (FileFormat, error) {
	switch f := FileFormat(format); f {
	case FormatRXN, FormatRD:
		return f, nil
	}
	return "", fmt.Errorf("Unsupported output file format '%s'.", format)
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSuffix(text, "\r")
}
