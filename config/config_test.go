package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chazu/gojni/native"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[vm]
version = "10"
options = ["-Xmx256m", "-Xcheck:jni"]
class-path = ["classes", "/opt/lib/app.jar"]
ignore-unrecognized = true

[attach]
thread-name = "worker"
daemon = true
keep-attached = true

[checks]
thread = false

[log]
verbosity = 2
path = "gojni.log"

[bindgen]
models = ["model/simple.toml"]
output = "gen"
package = "javabind"
`)

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	v, err := c.JNIVersion()
	if err != nil || v != native.Version10 {
		t.Errorf("version = %s, %v, want 10", v, err)
	}

	args, err := c.InitArgs()
	if err != nil {
		t.Fatalf("InitArgs: %v", err)
	}
	if len(args.Options) != 3 {
		t.Fatalf("options = %v, want 3 entries", args.Options)
	}
	wantCP := "-Djava.class.path=" + filepath.Join(c.Dir, "classes") + string(os.PathListSeparator) + "/opt/lib/app.jar"
	if args.Options[2] != wantCP {
		t.Errorf("class path option = %q, want %q", args.Options[2], wantCP)
	}
	if !args.IgnoreUnrecognized {
		t.Error("ignore-unrecognized = false, want true")
	}

	opts, err := c.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if !opts.SkipThreadCheck {
		t.Error("thread check still enabled")
	}
	if opts.Version != native.Version10 {
		t.Errorf("options version = %s", opts.Version)
	}

	a := c.AttachArgs()
	if a.Name != "worker" || !a.Daemon || !a.KeepAttached {
		t.Errorf("attach args = %+v", a)
	}

	if paths := c.ModelPaths(); len(paths) != 1 || paths[0] != filepath.Join(c.Dir, "model/simple.toml") {
		t.Errorf("model paths = %v", paths)
	}
	if c.Bindgen.Package != "javabind" {
		t.Errorf("bindgen package = %q", c.Bindgen.Package)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.VM.Version != "1.8" {
		t.Errorf("default version = %q, want 1.8", c.VM.Version)
	}
	opts, err := c.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.SkipThreadCheck {
		t.Error("thread check disabled by default")
	}
	args, err := c.InitArgs()
	if err != nil {
		t.Fatal(err)
	}
	if len(args.Options) != 0 {
		t.Errorf("default options = %v", args.Options)
	}
	if c.Bindgen.Package != "bindings" || c.Bindgen.Output != "." {
		t.Errorf("bindgen defaults = %+v", c.Bindgen)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[vm\n", "parse error"},
		{"unknown key", "[vm]\nheap = 3\n", "unknown key vm.heap"},
		{"bad version", "[vm]\nversion = \"one\"\n", "invalid JNI version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)
			_, err := Load(dir)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load of a directory without gojni.toml succeeded")
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[attach]\nthread-name = \"found\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	c, err := FindAndLoad(nested)
	if err != nil {
		t.Fatalf("FindAndLoad: %v", err)
	}
	if c == nil || c.Attach.ThreadName != "found" {
		t.Fatalf("config = %+v", c)
	}
	abs, _ := filepath.Abs(root)
	if c.Dir != abs {
		t.Errorf("Dir = %q, want %q", c.Dir, abs)
	}
}

func TestDefault(t *testing.T) {
	c := Default()
	if v, err := c.JNIVersion(); err != nil || v != native.Version1_8 {
		t.Errorf("default version = %s, %v", v, err)
	}
	if c.ClassPathOption() != "" {
		t.Error("default class path option not empty")
	}
}
