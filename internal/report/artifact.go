package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Filename returns the artifact name for the given day,
// e.g. "daily_report_2026-03-09.txt".
func Filename(date time.Time) string {
	return fmt.Sprintf("daily_report_%s.txt", date.Format("2006-01-02"))
}

// WriteArtifact writes the compiled report as a UTF-8 text file into dir and
// returns the full path. This is the boundary side effect; the compiler
// itself never touches the filesystem.
func WriteArtifact(dir string, date time.Time, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	path := filepath.Join(dir, Filename(date))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing report artifact: %w", err)
	}
	return path, nil
}
