// Package batch classifies many User-Agent strings at once and writes the
// results as NDJSON, YAML or tab separated text.
package batch

import (
	"bufio"
	"context"
	"errors"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/uaparse/pkg/useragent"
)

// Record pairs an input line with its classification.
type Record struct {
	UA     string
	Result useragent.Result
}

// Classify runs parse over lines with at most workers goroutines. Records
// keep the order of lines. A non-positive workers value uses GOMAXPROCS.
// Classification stops early when ctx is cancelled.
func Classify(ctx context.Context, lines []string, workers int, parse useragent.ParseFunc) ([]Record, error) {
	if parse == nil {
		parse = useragent.Parse
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	records := make([]Record, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = Record{UA: line, Result: parse(line)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Join(ErrClassify, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrClassify, err)
	}
	return records, nil
}

// ReadLines returns the non-blank lines of r with surrounding whitespace
// trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Join(ErrRead, err)
	}
	return lines, nil
}
