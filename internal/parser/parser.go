// Package parser turns free-form timestamps such as "20", "02:32.1234" or
// "4:1:12.23" into offsets and renders offsets back into the form passed to
// ffmpeg.
package parser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/shirerpeton/audioSplitter/internal/common"
)

var errNotDigits = errors.New("not a non-negative integer")

// Parse reads a timestamp. Fields are positional from the right: the last
// colon field is seconds, the one before it minutes, the one before that
// hours. Everything after the last "." is the millisecond count, read as a
// plain integer ("20.0342" is 342ms, "32.1234" is 1234ms).
func Parse(input string) (common.TimeOffset, error) {
	var ts common.TimeOffset
	timePart, msPart := input, "0"
	if idx := strings.LastIndex(input, "."); idx != -1 {
		timePart, msPart = input[:idx], input[idx+1:]
	}

	fields := strings.Split(timePart, ":")
	if len(fields) > 3 {
		return ts, &ParseError{Input: input, Value: timePart, Kind: KindTooManyFields}
	}

	names := []string{"hours", "minutes", "seconds"}[3-len(fields):]
	values := make([]uint32, len(fields))
	for i, field := range fields {
		v, err := parseField(field)
		if err != nil {
			return ts, &ParseError{Input: input, Field: names[i], Value: field, Kind: KindMalformedField, Err: err}
		}
		values[i] = v
	}

	ms, err := parseField(msPart)
	if err != nil {
		return ts, &ParseError{Input: input, Field: "milliseconds", Value: msPart, Kind: KindMalformedField, Err: err}
	}
	ts.Milliseconds = ms

	n := len(values)
	ts.Seconds = values[n-1]
	if n > 1 {
		ts.Minutes = values[n-2]
	}
	if n > 2 {
		ts.Hours = values[n-3]
	}
	return ts, nil
}

// parseField accepts a non-empty run of ASCII digits that fits in 32 bits.
func parseField(s string) (uint32, error) {
	if s == "" {
		return 0, errNotDigits
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errNotDigits
		}
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// Render formats an offset as H:MM:SS.mmm, carrying overflowing fields so
// minutes and seconds stay below 60 and milliseconds below 1000. ffmpeg
// rejects minute or second fields past 59 and reads the fraction as a
// decimal, so "2:32.1234" goes out as 0:02:33.234.
func Render(ts common.TimeOffset) string {
	total := ts.TotalMilliseconds()
	ms := total % 1000
	total /= 1000
	sec := total % 60
	total /= 60
	return fmt.Sprintf("%d:%02d:%02d.%03d", total/60, total%60, sec, ms)
}

// ParseAll parses every timestamp concurrently and returns the offsets in
// input order. Every malformed timestamp is reported, joined in input order,
// and no offsets are returned.
func ParseAll(ctx context.Context, raws []string) ([]common.TimeOffset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	offsets := make([]common.TimeOffset, len(raws))
	errs := make([]error, len(raws))
	var g errgroup.Group

	for i, raw := range raws {
		g.Go(func() error {
			ts, err := Parse(raw)
			if err != nil {
				errs[i] = fmt.Errorf("timestamp #%d: %w", i+1, err)
				return errs[i]
			}
			offsets[i] = ts
			return nil
		})
	}

	if g.Wait() != nil {
		return nil, errors.Join(errs...)
	}
	return offsets, nil
}
