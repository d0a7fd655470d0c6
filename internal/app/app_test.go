package app

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newTestApp pins the font paths to nil so runs fall back to the built-in
// font and do not depend on what the host has installed.
func newTestApp(dir string) *App {
	a := New(dir)
	a.FontPaths = nil
	return a
}

func TestRunProducesExactlyFourAssets(t *testing.T) {
	dir := t.TempDir()
	if err := newTestApp(dir).Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := map[string][2]int{
		"large-tile-440x280.png":      {440, 280},
		"marquee-banner-1400x560.png": {1400, 560},
		"screenshot-1-1280x800.png":   {1280, 800},
		"screenshot-2-640x400.png":    {640, 400},
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(want) {
		t.Errorf("output dir holds %d files, want %d", len(entries), len(want))
	}

	for name, size := range want {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Errorf("open %s: %v", name, err)
			continue
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Errorf("%s is not a valid PNG: %v", name, err)
			continue
		}
		if cfg.Width != size[0] || cfg.Height != size[1] {
			t.Errorf("%s is %dx%d, want %dx%d", name, cfg.Width, cfg.Height, size[0], size[1])
		}
	}
}

func TestRunWithQRURLAddsBadge(t *testing.T) {
	dir := t.TempDir()
	a := newTestApp(dir)
	a.QRURL = "https://chromewebstore.google.com/detail/qarbonquery"
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "install-qr-256x256.png"))
	if err != nil {
		t.Fatalf("badge missing: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("badge is not a valid PNG: %v", err)
	}
	if cfg.Width != 256 || cfg.Height != 256 {
		t.Errorf("badge is %dx%d, want 256x256", cfg.Width, cfg.Height)
	}
}

func TestRunFailsWhenOutputDirMissing(t *testing.T) {
	a := newTestApp(filepath.Join(t.TempDir(), "does-not-exist"))
	if err := a.Run(); err == nil {
		t.Error("expected error for missing output directory")
	}
}

func TestReportSizesListsEveryPNG(t *testing.T) {
	dir := t.TempDir()
	a := newTestApp(dir)
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// A non-PNG straggler must not show up in the report.
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)

	var buf bytes.Buffer
	if err := a.ReportSizes(&buf); err != nil {
		t.Fatalf("ReportSizes: %v", err)
	}

	out := buf.String()
	for _, name := range []string{
		"large-tile-440x280.png",
		"marquee-banner-1400x560.png",
		"screenshot-1-1280x800.png",
		"screenshot-2-640x400.png",
	} {
		if !strings.Contains(out, name) {
			t.Errorf("report is missing %s:\n%s", name, out)
		}
	}
	if strings.Contains(out, "notes.txt") {
		t.Errorf("report listed a non-PNG file:\n%s", out)
	}
	if !strings.Contains(out, "bytes") {
		t.Errorf("report has no byte sizes:\n%s", out)
	}
}

func TestFileLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewFileLogger(&buf)
	l.Infof("pipeline", "wrote %d assets", 4)
	l.Errorf("fonts", "fallback in use")

	out := buf.String()
	if !strings.Contains(out, "[INFO] pipeline: wrote 4 assets") {
		t.Errorf("info line malformed:\n%s", out)
	}
	if !strings.Contains(out, "[ERROR] fonts: fallback in use") {
		t.Errorf("error line malformed:\n%s", out)
	}
}
