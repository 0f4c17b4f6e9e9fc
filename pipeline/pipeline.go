package pipeline

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"taxtape/convert"
	"taxtape/diag"
	"taxtape/internal/common"
	"taxtape/mapping"
	"taxtape/records"
	"taxtape/tape"
)

// Options configure a processing run. The zero value is usable: the
// embedded mapping table, one worker per CPU, and the default logger.
type Options struct {
	// Table is the mapping table shared by all workers.
	Table *mapping.Table

	// Workers bounds how many files are processed at once.
	Workers int

	// Logger receives per-file progress and failures.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Table == nil {
		o.Table = mapping.Default()
	}

	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	if o.Logger == nil {
		o.Logger = slog.Default()
	}

	return o
}

// Result is the outcome for one file. Err is set when the file could
// not be read; conversion itself never fails, so a readable file
// always yields its returns plus whatever diagnostics conversion
// raised.
type Result struct {
	Path    string
	Returns []*records.Return
	Diags   diag.Diagnostics
	Err     error
}

// Process converts every file in paths, fanning out across workers.
// Results are ordered by input position regardless of completion
// order. Per-file failures are isolated into their Result; the
// returned error is non-nil only when the context is canceled.
func Process(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	if common.IsEmpty(paths) {
		return nil, nil
	}

	opts = opts.withDefaults()
	conv := convert.New(opts.Table)
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = processFile(conv, path, opts.Logger)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func processFile(conv *convert.Converter, path string, logger *slog.Logger) Result {
	start := time.Now()
	res := Result{Path: path}

	stream, err := tape.ParseFile(path)
	if err != nil {
		logger.Error("export unreadable", "path", path, "error", err)
		res.Err = err

		return res
	}

	for doc := range stream.All() {
		ret, ds := conv.Convert(doc)
		res.Returns = append(res.Returns, ret)
		res.Diags.Merge(ds)
	}

	logger.Info("export processed",
		"path", path,
		"returns", len(res.Returns),
		"warnings", len(res.Diags.Warnings),
		"elapsed", time.Since(start))

	return res
}
