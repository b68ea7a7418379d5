package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/utilmind/mysqlstrip/internal/logger"
	"github.com/utilmind/mysqlstrip/internal/progress"
	"github.com/utilmind/mysqlstrip/internal/strip"
)

// Run transforms one input into one output according to config.
func Run(config *Config, inPath, outPath string) error {
	startTime := time.Now()

	logger.Debug("transforming %s -> %s (threshold %d)", inPath, outPath, config.Threshold)

	in, size, err := strip.OpenInput(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := strip.OpenOutput(outPath)
	if err != nil {
		return err
	}

	processor := strip.NewProcessor(config.Threshold)
	if !config.Quiet && size >= 0 {
		// Percentages only make sense when the input size is known up
		// front (plain files, not stdin or compressed input).
		processor.SetProgress(progress.NewMeter(os.Stderr), size)
	}

	if config.Buffered {
		err = runBuffered(processor, out, in)
	} else {
		err = processor.Copy(out, in)
	}
	if err != nil {
		out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to finalize output: %w", err)
	}

	logger.Debug("finished in %v", time.Since(startTime).Round(time.Millisecond))
	return nil
}

// runBuffered materializes the whole input before transforming. The
// scan itself then runs without any blocking reads.
func runBuffered(processor *strip.Processor, out io.Writer, in io.Reader) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	done := false
	next := func() (string, error) {
		if done {
			return "", io.EOF
		}
		done = true
		return string(data), nil
	}
	return processor.Transform(next, out)
}
