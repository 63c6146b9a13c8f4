package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sales-report/src/common/logger"
)

var log = logger.GetLoggerWithPrefix("[READER]")

// FileReadError reports a missing or unreadable input file.
type FileReadError struct {
	Path  string
	Cause error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("error reading file %s: %v", e.Path, e.Cause)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}

type FileHandler struct {
	filePath string
}

func NewFileHandler(filePath string) *FileHandler {
	return &FileHandler{
		filePath: filePath,
	}
}

// ReadLines reads the whole file and splits it on '\n'. The header line is
// kept; skipping it is up to the parser.
func (fh *FileHandler) ReadLines() ([]string, error) {
	data, err := os.ReadFile(fh.filePath)
	if err != nil {
		return nil, &FileReadError{Path: fh.filePath, Cause: err}
	}

	lines := strings.Split(string(data), "\n")
	log.Infof("Read %d lines from %s", len(lines), fh.filePath)
	return lines, nil
}

// Name is the file base name, used to tag published reports.
func (fh *FileHandler) Name() string {
	return filepath.Base(fh.filePath)
}

// WriteLines overwrites the file at filePath with the given lines,
// creating parent directories if needed.
func WriteLines(lines []string, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}

	content := strings.Join(lines, "\n")

	return os.WriteFile(filePath, []byte(content), 0644)
}
