package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/utilmind/mysqlstrip/internal/errors"
	"github.com/utilmind/mysqlstrip/internal/logger"
)

// Batch transforms every file matching the doublestar pattern, writing
// results under outDir with the matched relative paths preserved.
// Progress meters are disabled in batch mode; per-file status lines go
// to stderr instead.
func Batch(config *Config, pattern, outDir string) error {
	files, base, err := expandPattern(pattern)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, headerStyle.Render(fmt.Sprintf("Processing %d file(s)", len(files))))

	fileConfig := *config
	fileConfig.Quiet = true

	processed := 0
	for _, rel := range files {
		inPath := filepath.Join(base, rel)
		outPath := filepath.Join(outDir, rel)

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		if err := Run(&fileConfig, inPath, outPath); err != nil {
			fmt.Fprintln(os.Stderr, formatFailed(inPath, err))
			return fmt.Errorf("batch aborted after %d of %d file(s): %w", processed, len(files), err)
		}

		processed++
		fmt.Fprintln(os.Stderr, formatProcessed(inPath, outPath))
	}

	fmt.Fprintln(os.Stderr, headerStyle.Render(fmt.Sprintf("Done: %d file(s)", processed)))
	return nil
}

// expandPattern resolves a doublestar glob into the list of matching
// regular files, relative to the pattern's fixed prefix.
func expandPattern(pattern string) (files []string, base string, err error) {
	base, pat := doublestar.SplitPattern(pattern)

	if !doublestar.ValidatePattern(pat) {
		return nil, "", errors.NewGlobError(pattern, "malformed pattern")
	}

	matches, err := doublestar.Glob(os.DirFS(base), pat)
	if err != nil {
		return nil, "", errors.NewGlobError(pattern, err.Error())
	}

	for _, m := range matches {
		info, err := os.Stat(filepath.Join(base, m))
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, m)
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, "", errors.NewGlobError(pattern, "no files matched")
	}

	logger.Debug("pattern %q matched %d file(s) under %s", pattern, len(files), base)
	return files, base, nil
}
