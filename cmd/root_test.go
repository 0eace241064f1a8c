package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/itsmostafa/treetab/internal/table"
)

// runRoot executes the root command with args, capturing stdout.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommand(t *testing.T) {
	t.Run("annotates and prints table", func(t *testing.T) {
		path := writeInput(t, "group,item\nA,\n,x\n,y\n")

		out, err := runRoot(t, path, "-d", "group,item")
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}

		want := strings.Join([]string{
			"group | item | nodes",
			"A     |      | 2    ",
			"      | x    |      ",
			"      | y    |      ",
		}, "\n") + "\n"
		if diff := cmp.Diff(want, out); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty input fails", func(t *testing.T) {
		path := writeInput(t, "")

		out, err := runRoot(t, path, "-d", "group")
		if !errors.Is(err, table.ErrEmptyInput) {
			t.Errorf("Execute() error = %v, want ErrEmptyInput", err)
		}
		if out != "" {
			t.Errorf("expected no table output, got %q", out)
		}
	})

	t.Run("header-only input fails", func(t *testing.T) {
		path := writeInput(t, "group,item\n")

		_, err := runRoot(t, path, "-d", "group,item")
		if !errors.Is(err, table.ErrEmptyInput) {
			t.Errorf("Execute() error = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.csv")

		out, err := runRoot(t, path, "-d", "group")
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if out != "" {
			t.Errorf("expected no table output, got %q", out)
		}
	})

	t.Run("missing hierarchy column names both sides", func(t *testing.T) {
		path := writeInput(t, "group,item\nA,\n,x\n")

		out, err := runRoot(t, path, "-d", "group,region")
		var mce *missingColumnsError
		if !errors.As(err, &mce) {
			t.Fatalf("Execute() error = %v, want missingColumnsError", err)
		}
		if diff := cmp.Diff([]string{"region"}, mce.Missing); diff != "" {
			t.Errorf("missing mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"group", "item"}, mce.Available); diff != "" {
			t.Errorf("available mismatch (-want +got):\n%s", diff)
		}
		if out != "" {
			t.Errorf("expected no table output, got %q", out)
		}
	})

	t.Run("depth validated before input is read", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.csv")

		_, err := runRoot(t, path, "-d", "group,,item")
		if err == nil || !strings.Contains(err.Error(), "empty column name") {
			t.Errorf("Execute() error = %v, want empty column name diagnostic", err)
		}
	})
}

func TestReportError(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		reportError(&buf, errors.New("boom"))

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
		}
		if !strings.Contains(lines[0], "boom") {
			t.Errorf("error line missing message: %q", lines[0])
		}
	})

	t.Run("missing columns hint follows error", func(t *testing.T) {
		var buf bytes.Buffer
		reportError(&buf, &missingColumnsError{
			Missing:   []string{"region"},
			Available: []string{"group", "item"},
		})

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
		}
		if !strings.Contains(lines[0], "hierarchy columns not found: region") {
			t.Errorf("first line should carry the error: %q", lines[0])
		}
		if !strings.Contains(lines[1], "Available columns: group, item") {
			t.Errorf("second line should carry the hint: %q", lines[1])
		}
	})
}

func TestSplitDepth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"single column", "name", []string{"name"}, false},
		{"multiple columns", "database,table,column", []string{"database", "table", "column"}, false},
		{"spaces trimmed", " database , table ", []string{"database", "table"}, false},
		{"empty value", "", nil, true},
		{"trailing comma", "database,", nil, true},
		{"blank entry", "database,,column", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitDepth(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("splitDepth(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("splitDepth(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}
