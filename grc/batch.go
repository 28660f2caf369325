package grc

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Job is one document to convert as part of a batch: InputPath identifies
// it for error messages and OutputPath names where its result is reported.
type Job struct {
	InputPath  string
	OutputPath string
	Document   *Node
}

// Result is the outcome of converting one [Job].
type Result struct {
	Job  Job
	Text string
}

// ConvertBatch converts every job concurrently, bounded to GOMAXPROCS
// in-flight conversions at a time, and returns results in the same order
// as jobs. Each job's document is an independent in-memory value, so
// conversions share no mutable state and may run on distinct goroutines.
// The first conversion error cancels the remaining work and is returned.
func ConvertBatch(ctx context.Context, jobs []Job, acVersion int, ignoredResourceTypes []string) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			text, err := Convert(job.Document, acVersion, ignoredResourceTypes)
			if err != nil {
				return fmt.Errorf("%s: %w", job.InputPath, err)
			}

			results[i] = Result{Job: job, Text: text}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
