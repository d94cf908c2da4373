package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gogpu/iconset/emitter"
	"github.com/gogpu/iconset/platform"
)

func newApp(t *testing.T) (App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	return App{Dir: t.TempDir(), Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestRun_Web(t *testing.T) {
	app, stdout, stderr := newApp(t)

	if code := app.Run("web"); code != 0 {
		t.Fatalf("Run() = %d, stderr:\n%s", code, stderr)
	}
	for _, s := range platform.WebSizes {
		name := filepath.Join(app.Dir, "assets", "logo_"+strconv.Itoa(s)+"x"+strconv.Itoa(s)+".png")
		if _, err := os.Stat(name); err != nil {
			t.Errorf("missing output: %v", err)
		}
	}
	if !strings.Contains(stderr.String(), "master logo not found") {
		t.Errorf("expected a fallback warning, stderr:\n%s", stderr)
	}
	if !strings.Contains(stdout.String(), "8 icons written") {
		t.Errorf("summary:\n%s", stdout)
	}
}

func TestRun_UsesMasterOnSecondRun(t *testing.T) {
	app, stdout, stderr := newApp(t)

	if code := app.Run("web"); code != 0 {
		t.Fatalf("first run = %d, stderr:\n%s", code, stderr)
	}
	stdout.Reset()
	stderr.Reset()
	if code := app.Run("android", "ios"); code != 0 {
		t.Fatalf("second run = %d, stderr:\n%s", code, stderr)
	}
	if n := strings.Count(stderr.String(), "using master logo"); n != 1 {
		t.Errorf("master logo loaded %d times, want once; stderr:\n%s", n, stderr)
	}
	if n := strings.Count(stdout.String(), "(master)"); n != 2 {
		t.Errorf("%d sets rendered from the master, want 2; summary:\n%s", n, stdout)
	}
}

func TestRun_ConfigOutputRoot(t *testing.T) {
	app, _, stderr := newApp(t)
	writeFile(t, filepath.Join(app.Dir, "icongen.toml"), `
master_logo = ""
output_root = "out"

[glyphs]
macos = "none"
`)

	if code := app.Run("macos"); code != 0 {
		t.Fatalf("Run() = %d, stderr:\n%s", code, stderr)
	}
	icon := filepath.Join(app.Dir, "out", platform.MacOSRoot, "app_icon_1024.png")
	f, err := os.Open(icon)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1024 || cfg.Height != 1024 {
		t.Errorf("decoded %dx%d, want 1024x1024", cfg.Width, cfg.Height)
	}
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name      string
		config    string
		platforms []string
		want      string
	}{
		{"unknown platform", "", []string{"windows"}, "unknown platform"},
		{"bad config", "radius_ratio = 3", []string{"web"}, "radius ratio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, stderr := newApp(t)
			if tt.config != "" {
				writeFile(t, filepath.Join(app.Dir, "icongen.toml"), tt.config)
			}
			if code := app.Run(tt.platforms...); code != 1 {
				t.Errorf("Run() = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr does not mention %q:\n%s", tt.want, stderr)
			}
		})
	}
}

func TestRun_WriteFailureExitCode(t *testing.T) {
	app, stdout, _ := newApp(t)
	// A file where the web root directory should be.
	writeFile(t, filepath.Join(app.Dir, "assets"), "")

	if code := app.Run("web"); code != 1 {
		t.Errorf("Run() = %d, want 1", code)
	}
	if !strings.Contains(stdout.String(), "8 failed") {
		t.Errorf("summary:\n%s", stdout)
	}
}

func TestRun_CorruptMasterFallsBack(t *testing.T) {
	app, _, stderr := newApp(t)
	writeFile(t, filepath.Join(app.Dir, platform.MasterLogo), "garbage")

	if code := app.Run("android"); code != 0 {
		t.Fatalf("Run() = %d, stderr:\n%s", code, stderr)
	}
	if !strings.Contains(stderr.String(), "master logo unreadable") {
		t.Errorf("stderr:\n%s", stderr)
	}
}

func TestSummary(t *testing.T) {
	ok := &emitter.Report{Platform: "macos", Strategy: "procedural"}
	for i := 0; i < 1200; i++ {
		ok.Results = append(ok.Results, emitter.Result{Path: "p" + strconv.Itoa(i%7), Size: 16})
	}
	failed := &emitter.Report{Platform: "web", Strategy: "master", Results: []emitter.Result{
		{Path: "a", Size: 16},
		{Err: os.ErrPermission},
	}}

	out := Summary([]*emitter.Report{ok, failed})
	for _, want := range []string{
		"macos",
		"1,200 icons written to 7 files",
		"(procedural)",
		"1 failed",
		"2 platforms, 1,201 icons written, 8 files, 1 failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary does not contain %q:\n%s", want, out)
		}
	}
}
