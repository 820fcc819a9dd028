package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// writeConfig writes a config pointing at a fresh SQLite file and returns
// its path.
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "yardline.yaml")
	body := fmt.Sprintf("database:\n  path: %s\n", filepath.Join(dir, "stats.db"))
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// runCmd executes the root command with args, feeding stdin, and returns
// combined output.
func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "", "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(out, "yl dev") {
		t.Errorf("expected output to contain 'yl dev', got: %s", out)
	}
	if !strings.Contains(out, "commit: none") {
		t.Errorf("expected output to contain 'commit: none', got: %s", out)
	}
}

func TestVersionCmdWithCustomValues(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	Version, Commit, Date = "1.0.0", "abc123", "2026-01-01"
	defer func() { Version, Commit, Date = origVersion, origCommit, origDate }()

	out, err := runCmd(t, "", "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(out, "yl 1.0.0") {
		t.Errorf("expected output to contain 'yl 1.0.0', got: %s", out)
	}
	if !strings.Contains(out, "built:  2026-01-01") {
		t.Errorf("expected output to contain 'built:  2026-01-01', got: %s", out)
	}
}

func TestRootCmdHelp(t *testing.T) {
	out, err := runCmd(t, "", "--help")
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}
	for _, want := range []string{"Yardline", "version", "serve", "record", "db"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected help output to contain %q, got: %s", want, out)
		}
	}
}

func TestRootCmdNoArgs(t *testing.T) {
	if _, err := runCmd(t, ""); err != nil {
		t.Fatalf("root command with no args failed: %v", err)
	}
}

func TestExecuteSuccess(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"version"})
	code := execute(cmd)
	if code != 0 {
		t.Errorf("expected exit code 0, got %d", code)
	}
}

func TestExecuteError(t *testing.T) {
	cmd := &cobra.Command{
		Use:           "failing",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("intentional error")
		},
	}
	code := execute(cmd)
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
}

func TestNewVersionCmdOutput(t *testing.T) {
	cmd := newVersionCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	cmd.Run(cmd, nil)

	expected := "yl dev\n  commit: none\n  built:  unknown\n  go:     " +
		runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH + "\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestVersionCmdShort(t *testing.T) {
	origVersion := Version
	Version = "1.2.3"
	defer func() { Version = origVersion }()

	out, err := runCmd(t, "", "version", "--short")
	if err != nil {
		t.Fatalf("version --short failed: %v", err)
	}
	if out != "1.2.3\n" {
		t.Errorf("expected %q, got %q", "1.2.3\n", out)
	}
}

func TestRootHelpDescribesConfig(t *testing.T) {
	out, err := runCmd(t, "", "--help")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}
	for _, want := range []string{"yardline.yaml", "YARDLINE_DB_", "yl record add"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected help to contain %q, got: %s", want, out)
		}
	}
}

func TestServeCmd_Help(t *testing.T) {
	out, err := runCmd(t, "", "serve", "--help")
	if err != nil {
		t.Fatalf("serve --help failed: %v", err)
	}
	if !strings.Contains(out, "dropped and recreated on every start") {
		t.Errorf("expected help to warn about reset on start, got: %s", out)
	}
	if !strings.Contains(out, "--port") {
		t.Errorf("expected help to mention '--port', got: %s", out)
	}
}

func TestServeCmd_BadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "yardline.yaml")
	if err := os.WriteFile(path, []byte("database:\n  driver: postgres\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := runCmd(t, "", "serve", "--config", path)
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Errorf("error = %q, want load config prefix", err.Error())
	}
}
