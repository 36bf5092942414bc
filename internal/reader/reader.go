// Package reader loads raw sales data lines from disk. Missing or
// undecodable files degrade to an empty line set with a logged message;
// they never abort the run.
package reader

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"
)

// decoder is one candidate text decoding, tried in order until one succeeds.
type decoder struct {
	name   string
	decode func(data []byte) (string, error)
}

// fallbackDecoders mirrors the legacy export chain: files are usually UTF-8
// but older systems emitted Latin-1 or Windows-1252.
var fallbackDecoders = []decoder{
	{"utf-8", decodeUTF8},
	{"iso-8859-1", charmapDecoder(charmap.ISO8859_1)},
	{"windows-1252", charmapDecoder(charmap.Windows1252)},
}

// Load reads the sales data file at path and returns its data lines with
// the header line discarded and blank lines dropped. An .xlsx path is read
// as a workbook and lowered to the same pipe-delimited line form.
func Load(path string, log zerolog.Logger) []string {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return loadXLSX(path, log)
	}
	return loadText(path, log)
}

func loadText(path string, log zerolog.Logger) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("sales data file not found")
		return nil
	}

	for _, dec := range fallbackDecoders {
		text, err := dec.decode(data)
		if err != nil {
			continue
		}
		log.Debug().Str("file", path).Str("encoding", dec.name).Msg("decoded sales data")
		return dataLines(text)
	}

	log.Error().Str("file", path).Msg("unable to read file with known encodings")
	return nil
}

// dataLines splits decoded text into trimmed lines, dropping the header
// line and any blank lines.
func dataLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) <= 1 {
		return nil
	}

	out := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", errInvalidEncoding
	}
	return string(data), nil
}

func charmapDecoder(cm *charmap.Charmap) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		decoded, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}
}
