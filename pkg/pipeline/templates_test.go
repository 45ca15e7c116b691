package pipeline

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/matzehuels/tianzige/pkg/paper"
)

func TestTemplateName(t *testing.T) {
	tests := []struct {
		page paper.Size
		size float64
		want string
	}{
		{paper.A4, 15, "tianzige_a4_15mm.pdf"},
		{paper.Letter, 10, "tianzige_letter_10mm.pdf"},
		{paper.B5, 12.5, "tianzige_b5_12.5mm.pdf"},
	}

	for _, tt := range tests {
		if got := TemplateName(tt.page, tt.size); got != tt.want {
			t.Errorf("TemplateName(%v, %g) = %q, want %q", tt.page, tt.size, got, tt.want)
		}
	}
}

func TestGenerateTemplates(t *testing.T) {
	files := map[string][]byte{}
	write := func(name string, data []byte) error {
		files[name] = data
		return nil
	}

	report, err := NewRunner(nil).GenerateTemplates(context.Background(), DefaultOptions(), write)
	if err != nil {
		t.Fatalf("GenerateTemplates() = %v", err)
	}

	total := len(TemplatePageSizes) * len(TemplateSquareSizes)
	if got := len(report.Created) + len(report.Skipped); got != total {
		t.Errorf("created + skipped = %d, want %d", got, total)
	}
	if len(files) != len(report.Created) {
		t.Errorf("wrote %d files, report lists %d", len(files), len(report.Created))
	}
	for _, name := range report.Created {
		if !strings.HasPrefix(string(files[name]), "%PDF-") {
			t.Errorf("%s is not a PDF", name)
		}
	}
	if _, ok := files["tianzige_a3_10mm.pdf"]; !ok {
		t.Error("missing tianzige_a3_10mm.pdf")
	}
}

func TestGenerateTemplatesSkipsUnfit(t *testing.T) {
	base := DefaultOptions()
	base.MinHorizontal = 10
	base.MinVertical = 10

	report, err := NewRunner(nil).GenerateTemplates(context.Background(), base, func(string, []byte) error { return nil })
	if err != nil {
		t.Fatalf("GenerateTemplates() = %v", err)
	}

	skipped := false
	for _, s := range report.Skipped {
		if s.Page == paper.A6 && s.SquareSize == 25 {
			skipped = true
		}
	}
	if !skipped {
		t.Errorf("A6 with 25mm squares was not skipped; skipped = %v", report.Skipped)
	}
	for _, name := range report.Created {
		if name == TemplateName(paper.A6, 25) {
			t.Errorf("%s should not have been created", name)
		}
	}
}

func TestGenerateTemplatesAbortsOnError(t *testing.T) {
	base := DefaultOptions()
	base.Color = "not-a-color"

	calls := 0
	report, err := NewRunner(nil).GenerateTemplates(context.Background(), base, func(string, []byte) error {
		calls++
		return nil
	})
	if err == nil {
		t.Fatal("GenerateTemplates() = nil, want error")
	}
	if calls != 0 || len(report.Created) != 0 {
		t.Errorf("wrote %d files before failing, want 0", calls)
	}
}

func TestGenerateTemplatesWriteError(t *testing.T) {
	boom := stderrors.New("disk full")
	_, err := NewRunner(nil).GenerateTemplates(context.Background(), DefaultOptions(), func(string, []byte) error {
		return boom
	})
	if !stderrors.Is(err, boom) {
		t.Errorf("GenerateTemplates() = %v, want %v", err, boom)
	}
}

func TestGenerateTemplatesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	report, err := NewRunner(nil).GenerateTemplates(ctx, DefaultOptions(), func(string, []byte) error {
		calls++
		cancel()
		return nil
	})
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("GenerateTemplates() = %v, want context.Canceled", err)
	}
	if calls != 1 || len(report.Created) != 1 {
		t.Errorf("created %d templates after cancel, want 1", len(report.Created))
	}
}
