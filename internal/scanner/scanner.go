// Package scanner orchestrates a dataset run: it walks the dataset root,
// fans image paths out to a worker pool, and serializes each image's rows
// into the solution file as one contiguous block.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	"crater-scan/internal/dataset"
	"crater-scan/internal/detection"
	"crater-scan/internal/imaging"
	"crater-scan/internal/output"
	"crater-scan/internal/overlay"
)

// Config carries the run configuration. It is passed explicitly into Run;
// there is no process-wide state.
type Config struct {
	// Root is the dataset root directory.
	Root string
	// Output is the solution CSV path.
	Output string
	// Workers is the number of parallel image workers; values below 1
	// fall back to runtime.NumCPU(). Images are independent, so each
	// worker owns its buffers exclusively.
	Workers int
	// OverlayDir, when set, receives a per-image PNG with the detected
	// ellipses drawn over the source, mirroring the identifier hierarchy.
	OverlayDir string
	// Options holds the detection thresholds.
	Options detection.Options
}

type task struct {
	index int
	path  string
}

type result struct {
	index   int
	records []output.Record
	skipped bool
}

// Run scans every image under cfg.Root and writes the solution CSV.
//
// Per-image failures (undecodable image, malformed dataset path) are logged
// and skipped; only an unreadable root or an unwritable output file fails
// the run. Rows appear in dataset walk order, each image contiguous.
func Run(cfg Config, log zerolog.Logger) error {
	if cfg.Workers < 1 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Options == (detection.Options{}) {
		cfg.Options = detection.DefaultOptions()
	}

	images, err := dataset.CollectImages(cfg.Root)
	if err != nil {
		return err
	}
	log.Info().Int("images", len(images)).Str("root", cfg.Root).Msg("dataset collected")

	out, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	w := output.NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(images),
		progressbar.OptionSetDescription("scanning craters"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)

	tasks := make(chan task, cfg.Workers)
	results := make(chan result, cfg.Workers*2)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work(cfg, tasks, results, log)
		}()
	}

	var writeErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		writeErr = serialize(results, w, bar)
	}()

	for i, path := range images {
		tasks <- task{index: i, path: path}
	}
	close(tasks)
	wg.Wait()
	close(results)
	<-done
	bar.Finish()

	if writeErr != nil {
		return writeErr
	}
	if err := w.Flush(); err != nil {
		return err
	}
	log.Info().Int("images", len(images)).Str("output", cfg.Output).Msg("scan complete")
	return nil
}

// work processes tasks until the channel closes. Every task produces exactly
// one result so the serializer's ordering never stalls.
func work(cfg Config, tasks <-chan task, results chan<- result, log zerolog.Logger) {
	for t := range tasks {
		id, err := dataset.ImageID(t.path, cfg.Root)
		if err != nil {
			log.Warn().Err(err).Str("path", t.path).Msg("skipping image with malformed dataset path")
			results <- result{index: t.index, skipped: true}
			continue
		}

		gray, err := imaging.LoadGray(t.path)
		if err != nil {
			log.Warn().Err(err).Str("path", t.path).Msg("skipping unreadable image")
			results <- result{index: t.index, skipped: true}
			continue
		}

		ellipses := detection.DetectCraters(gray, cfg.Options)
		log.Debug().Str("image", id).Int("detections", len(ellipses)).Msg("image processed")

		if cfg.OverlayDir != "" && len(ellipses) > 0 {
			path := filepath.Join(cfg.OverlayDir, filepath.FromSlash(id)+".png")
			if err := overlay.Save(gray, ellipses, path); err != nil {
				log.Warn().Err(err).Str("image", id).Msg("failed to write overlay")
			}
		}

		results <- result{index: t.index, records: output.BuildRecords(id, ellipses)}
	}
}

// serialize re-orders worker results by input index so each image's rows are
// written as one contiguous block in walk order. On a write error it keeps
// draining results to let the workers finish, and reports the first error.
func serialize(results <-chan result, w *output.Writer, bar *progressbar.ProgressBar) error {
	pending := make(map[int]result)
	next := 0
	var firstErr error

	for res := range results {
		pending[res.index] = res
		for {
			r, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			bar.Add(1)

			if r.skipped || firstErr != nil {
				continue
			}
			if err := w.WriteRecords(r.records); err != nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
