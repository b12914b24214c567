// Package report renders complexity totals for people and for machines.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	"github.com/katalvlaran/robokeys/complexity"
)

// ErrUnknownFormat indicates an output format other than text or json.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Format selects the rendering.
type Format int

const (
	// Text prints "The answer is: N", one line per chain length.
	Text Format = iota
	// JSON prints every part with its per-code breakdown.
	JSON
)

// ParseFormat maps "text" (or "") and "json" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	default:
		return Text, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Options configures Write.
type Options struct {
	Format Format
	// Humanize adds thousands separators in Text format.
	Humanize bool
}

type document struct {
	Parts []complexity.Report `json:"parts"`
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Write renders parts to w.
func Write(w io.Writer, parts []complexity.Report, opts Options) error {
	switch opts.Format {
	case Text:
		return writeText(w, parts, opts.Humanize)
	case JSON:
		enc := jsonAPI.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document{Parts: parts})
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, opts.Format)
	}
}

func writeText(w io.Writer, parts []complexity.Report, human bool) error {
	for _, p := range parts {
		prefix := ""
		if len(parts) > 1 {
			prefix = fmt.Sprintf("[%d robots] ", p.ChainLength)
		}
		if _, err := fmt.Fprintf(w, "%sThe answer is: %s\n", prefix, Number(p.Total, human)); err != nil {
			return err
		}
	}
	return nil
}

// Number formats v, with thousands separators when human is set.
func Number(v uint64, human bool) string {
	switch {
	case !human:
		return fmt.Sprintf("%d", v)
	case v <= math.MaxInt64:
		return humanize.Comma(int64(v))
	default:
		return humanize.BigComma(new(big.Int).SetUint64(v))
	}
}
