// suite.go - runs several ROMs concurrently, one runner per goroutine

package main

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

// runSuite runs every file with the same options and prints results in
// argument order. It returns the number of failed runs.
func runSuite(ctx context.Context, opts *options, files []string, out io.Writer) int {
	results := make([]runResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs)
	for i, file := range files {
		i, file := i, file // per-iteration copies (go.mod targets go 1.21)
		g.Go(func() error {
			results[i] = runOne(ctx, opts, file, io.Discard)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, result := range results {
		fmt.Fprintln(out, result)
		if !result.ok() {
			failed++
		}
	}
	fmt.Fprintf(out, "%d/%d passed\n", len(results)-failed, len(results))
	return failed
}
