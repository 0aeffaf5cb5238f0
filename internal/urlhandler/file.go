package urlhandler

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Custom errors for file operations
var (
	ErrFileNotFound   = errors.New("input file not found")
	ErrFilePermission = errors.New("permission denied reading input file")
	ErrFileEmpty      = errors.New("input file is empty or contains no entries")
	ErrReadingFile    = errors.New("error reading input file")
)

// ReadLinesFromFile reads one entry per line. Blank lines and lines starting
// with "#" are skipped. Entries are trimmed but otherwise kept exactly as
// written, since resource identity is the literal string.
func ReadLinesFromFile(filePath string, logger zerolog.Logger) ([]string, error) {
	fileLogger := logger.With().Str("file_path", filePath).Logger()

	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filePath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s (cause: %v)", ErrReadingFile, filePath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("input path is a directory, not a file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrFilePermission, filePath)
		}
		return nil, fmt.Errorf("%w: %s (cause: %v)", ErrReadingFile, filePath, err)
	}
	defer file.Close()

	var entries []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	linesRead := 0
	for scanner.Scan() {
		linesRead++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s (scan error: %v)", ErrReadingFile, filePath, err)
	}

	fileLogger.Debug().
		Int("lines_read", linesRead).
		Int("entries", len(entries)).
		Msg("Finished reading input file")

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrFileEmpty, filePath)
	}
	return entries, nil
}
