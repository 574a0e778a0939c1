package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReportFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Apple", "Apple.txt"},
		{"  Apple  ", "Apple.txt"},
		{"Petrobras S/A", "Petrobras_S-A.txt"},
		{"Berkshire Hathaway Inc", "Berkshire_Hathaway_Inc.txt"},
	}

	for _, tc := range cases {
		if got := ReportFileName(tc.in); got != tc.want {
			t.Fatalf("ReportFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWriteReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	content := "COMPANY RESEARCH REPORT: APPLE\n"

	path, err := WriteReport(dir, "Apple.txt", content)
	if err != nil {
		t.Fatalf("WriteReport: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back report: %v", err)
	}
	if string(data) != content {
		t.Fatalf("content mismatch: %q", string(data))
	}
}

func TestWriteReportCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if _, err := WriteReport(dir, "Report.txt", "body"); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Report.txt")); err != nil {
		t.Fatalf("report not created: %v", err)
	}
}
