package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/listconv/internal/logger"
	"github.com/jmylchreest/listconv/pkg/fetcher"
)

// ErrInputTooLarge is returned when an input exceeds --max-input-size.
var ErrInputTooLarge = errors.New("input exceeds max input size")

// source is one document read from a file, URL or stdin.
type source struct {
	Name string
	HTML string
}

// inputOptions controls how inputs are read.
type inputOptions struct {
	MaxBytes int64 // 0 = unlimited
	Timeout  time.Duration
	Fetcher  fetcher.Fetcher
}

// parseSize parses a human-readable size such as "512KB" or "10MB".
// Empty and "0" mean unlimited.
func parseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return int64(n), nil
}

// readInput reads arg as stdin ("-"), an http(s) URL, or a file path.
func readInput(ctx context.Context, arg string, stdin io.Reader, opts inputOptions) (*source, error) {
	switch {
	case arg == "-":
		data, err := readLimited(stdin, opts.MaxBytes)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return &source{Name: "stdin", HTML: string(data)}, nil

	case fetcher.IsURL(arg):
		f := opts.Fetcher
		if f == nil {
			f = fetcher.NewStatic(fetcher.StaticConfig{Timeout: opts.Timeout})
			defer func() { _ = f.Close() }()
		}
		// One byte over the limit tells a full body from a truncated one.
		bodyLimit := -1
		if opts.MaxBytes > 0 {
			bodyLimit = int(opts.MaxBytes) + 1
		}
		content, err := f.Fetch(ctx, arg, fetcher.Options{
			Timeout:     opts.Timeout,
			MaxBodySize: bodyLimit,
		})
		if err != nil {
			return nil, err
		}
		if opts.MaxBytes > 0 && int64(len(content.HTML)) > opts.MaxBytes {
			return nil, fmt.Errorf("%w: %s exceeds limit %s", ErrInputTooLarge, arg,
				humanize.Bytes(uint64(opts.MaxBytes)))
		}
		logger.Debug("fetched input", "url", arg, "title", content.Title, "lists", content.ListCount,
			"size", humanize.Bytes(uint64(len(content.HTML))))
		return &source{Name: arg, HTML: content.HTML}, nil

	default:
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if opts.MaxBytes > 0 && info.Size() > opts.MaxBytes {
			return nil, fmt.Errorf("%w: %s is %s, limit %s", ErrInputTooLarge, arg,
				humanize.Bytes(uint64(info.Size())), humanize.Bytes(uint64(opts.MaxBytes)))
		}
		data, err := os.ReadFile(arg) //#nosec G304 -- CLI tool reads user-specified input file
		if err != nil {
			return nil, err
		}
		return &source{Name: arg, HTML: string(data)}, nil
	}
}

func readLimited(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: limit %s", ErrInputTooLarge, humanize.Bytes(uint64(maxBytes)))
	}
	return data, nil
}
