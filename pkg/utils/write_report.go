package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// ReportFileName maps a company name to a filesystem-safe report name.
func ReportFileName(company string) string {
	name := strings.TrimSpace(company)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "/", "-")
	return name + ".txt"
}

// WriteReport writes a rendered report into dir, creating it if needed, and
// returns the full path of the written file.
func WriteReport(dir, fileName, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %v", dir, err)
	}

	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %v", path, err)
	}
	log.Printf("report written to: %s", path)
	return path, nil
}
