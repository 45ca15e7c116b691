package cli

import (
	"context"
	stderrors "errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tianzige/internal/server"
	"github.com/matzehuels/tianzige/pkg/config"
	"github.com/matzehuels/tianzige/pkg/errors"
	"github.com/matzehuels/tianzige/pkg/layout"
	"github.com/matzehuels/tianzige/pkg/observability"
	"github.com/matzehuels/tianzige/pkg/pipeline"
)

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return New(io.Discard, LogInfo)
}

func execute(t *testing.T, c *CLI, args ...string) error {
	t.Helper()
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestGenerate(t *testing.T) {
	c := newTestCLI(t)
	out := filepath.Join(t.TempDir(), "grid.pdf")

	if err := execute(t, c, "generate", "-p", "a5", "-s", "20", out); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Error("output is not a PDF")
	}
}

func TestGenerateMinimumBoxes(t *testing.T) {
	c := newTestCLI(t)
	out := filepath.Join(t.TempDir(), "grid.pdf")

	err := execute(t, c, "generate", "-s", "25", "--min-horizontal", "10", out)

	var mbe *layout.MinimumBoxesError
	if !stderrors.As(err, &mbe) {
		t.Fatalf("generate error = %v, want *layout.MinimumBoxesError", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output file exists after failure (stat: %v)", statErr)
	}

	msg := FormatError(err)
	if !strings.Contains(msg, "--size 18.0") {
		t.Errorf("FormatError() = %q, want size hint", msg)
	}
}

func TestGenerateInvalidPage(t *testing.T) {
	c := newTestCLI(t)
	err := execute(t, c, "generate", "-p", "a9", filepath.Join(t.TempDir(), "x.pdf"))
	if err == nil {
		t.Fatal("generate -p a9 succeeded, want error")
	}
	if msg := FormatError(err); !strings.Contains(msg, "a9") {
		t.Errorf("FormatError() = %q, want page name", msg)
	}
}

func TestServeWatchWithoutConfig(t *testing.T) {
	c := newTestCLI(t)
	err := execute(t, c, "serve", "--watch", "--addr", "127.0.0.1:0")
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidInput {
		t.Fatalf("GetCode() = %v, want %v (err = %v)", got, errors.ErrCodeInvalidInput, err)
	}
	if !strings.Contains(err.Error(), "--watch") {
		t.Errorf("Error() = %q, want mention of --watch", err.Error())
	}
}

func TestServeAddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	c := newTestCLI(t)
	if err := execute(t, c, "serve", "--addr", ln.Addr().String()); err == nil {
		t.Fatal("serve on a bound address succeeded, want error")
	}
}

func TestCompletion(t *testing.T) {
	c := newTestCLI(t)
	root := c.RootCommand()
	var out strings.Builder
	root.SetOut(&out)
	root.SetErr(io.Discard)

	root.SetArgs([]string{"completion", "bash"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("completion bash: %v", err)
	}
	if !strings.Contains(out.String(), "tianzige") {
		t.Error("bash completion does not mention tianzige")
	}

	out.Reset()
	root.SetArgs([]string{cobra.ShellCompRequestCmd, "generate", "--page-size", ""})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("complete page size: %v", err)
	}
	for _, want := range []string{"a4", "letter"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("page size completions = %q, missing %q", out.String(), want)
		}
	}
}

func TestTemplates(t *testing.T) {
	c := newTestCLI(t)
	dir := filepath.Join(t.TempDir(), "out")

	if err := execute(t, c, "templates", dir, "--min-horizontal", "10", "--min-vertical", "10"); err != nil {
		t.Fatalf("templates: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "tianzige_a3_10mm.pdf")); err != nil {
		t.Errorf("missing a3 template: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "tianzige_a6_25mm.pdf")); !os.IsNotExist(err) {
		t.Errorf("a6 25mm template should have been skipped (stat: %v)", err)
	}
}

func TestOptionsPrecedence(t *testing.T) {
	c := newTestCLI(t)
	c.configPath = filepath.Join(t.TempDir(), "config.toml")
	content := "page_size = \"a5\"\ncolor = \"#c04040\"\n\n[margins]\nleft = 25\n"
	if err := os.WriteFile(c.configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var flags gridFlags
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd, true)
	if err := cmd.ParseFlags([]string{"--color", "00ff00", "--no-guides", "--margin-top", "5"}); err != nil {
		t.Fatal(err)
	}

	opts, err := c.options(cmd, &flags)
	if err != nil {
		t.Fatalf("options() = %v", err)
	}

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"page from config", opts.PageSize, "a5"},
		{"color from flag", opts.Color, "00ff00"},
		{"left margin from config", opts.MarginLeft, 25.0},
		{"top margin from flag", opts.MarginTop, 5.0},
		{"right margin default", opts.MarginRight, 10.0},
		{"guides from flag", opts.Guides, false},
		{"inner grid default", opts.InnerGrid, true},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestBadConfig(t *testing.T) {
	c := newTestCLI(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("paper: a4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := execute(t, c, "--config", path, "generate", filepath.Join(t.TempDir(), "x.pdf"))
	if err == nil {
		t.Fatal("generate with unknown config key succeeded, want error")
	}
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	logger := newLogger(io.Discard, LogInfo)

	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := writeFileAtomic(logger, path, []byte("new")); err != nil {
		t.Fatalf("writeFileAtomic() = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1 (no leftover pending files)", len(entries))
	}
}

func TestReloadBase(t *testing.T) {
	c := newTestCLI(t)
	t.Cleanup(observability.Reset)
	srv := server.New(c.newRunner(), c.Logger, server.Config{Base: pipeline.DefaultOptions()})

	var flags gridFlags
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd, true)
	if err := cmd.ParseFlags([]string{"--diagonals"}); err != nil {
		t.Fatal(err)
	}

	page := "a5"
	c.reloadBase(cmd, &flags, srv, &config.File{PageSize: &page})
	if got := srv.Base(); got.PageSize != "a5" || !got.Diagonals {
		t.Errorf("Base() = page %q diagonals %v, want a5 with diagonals", got.PageSize, got.Diagonals)
	}

	bad := "nope"
	c.reloadBase(cmd, &flags, srv, &config.File{Color: &bad})
	if got := srv.Base(); got.Color == bad {
		t.Errorf("invalid reload replaced defaults: color %q", got.Color)
	}
}
