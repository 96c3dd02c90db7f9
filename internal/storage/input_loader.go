package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// ErrEmptyPath is returned when no input path was given
var ErrEmptyPath = errors.New("input path is empty")

// LoadInput reads the whole input file into memory, decompressing it if needed
func LoadInput(path string, logger *slog.Logger) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("load input %q: %w", path, err)
	}

	ct := DetectCompression(raw)
	data, err := decompress(raw, ct)
	if err != nil {
		return "", fmt.Errorf("decompress input %q (%s): %w", path, ct, err)
	}

	logger.Debug("input loaded",
		slog.String("path", path),
		slog.String("compression", string(ct)),
		slog.Int("bytes_on_disk", len(raw)),
		slog.Int("bytes", len(data)),
	)

	return string(data), nil
}
