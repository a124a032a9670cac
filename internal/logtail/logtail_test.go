package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Entry
	}{
		{
			name: "zap json line",
			line: `{"level":"error","ts":"2026-03-01T10:20:30.123Z","logger":"catalog","msg":"catalog load failed","source":"bundled","error":"boom","records":0}`,
			want: Entry{
				Time:    time.Date(2026, 3, 1, 10, 20, 30, 123000000, time.UTC),
				Level:   "ERROR",
				Logger:  "catalog",
				Message: "catalog load failed",
				Fields: []Field{
					{Key: "error", Value: "boom"},
					{Key: "records", Value: "0"},
					{Key: "source", Value: "bundled"},
				},
			},
		},
		{
			name: "plain text",
			line: "  something unstructured ",
			want: Entry{Message: "something unstructured"},
		},
		{
			name: "broken json",
			line: `{"level":"info"`,
			want: Entry{Message: `{"level":"info"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line)
			if got.Raw != tt.line {
				t.Fatalf("Raw = %q, want %q", got.Raw, tt.line)
			}
			opts := cmp.Options{cmpopts.IgnoreFields(Entry{}, "Raw"), cmpopts.EquateEmpty()}
			if diff := cmp.Diff(tt.want, got, opts); diff != "" {
				t.Fatalf("Parse mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTailSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marauder.log")
	body := `{"level":"info","msg":"one"}` + "\n\n" + `{"level":"warn","msg":"two"}` + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries, err := Tail(path, 10)
	if err != nil {
		t.Fatalf("Tail returned error: %v", err)
	}
	if len(entries) != 2 || entries[0].Message != "one" || entries[1].Level != "WARN" {
		t.Fatalf("Tail = %+v, want two parsed entries", entries)
	}
}
