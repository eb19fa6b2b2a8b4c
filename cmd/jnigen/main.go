// jnigen generates jni wrapper types from class model files.
//
// Usage:
//
//	jnigen [flags] [model.toml ...]
//
// With no model arguments, the models listed under [bindgen] in the nearest
// gojni.toml are used.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/chazu/gojni/bindgen"
	"github.com/chazu/gojni/config"
)

var log = commonlog.GetLogger("gojni.jnigen")

func main() {
	configDir := flag.String("config", ".", "Directory to search for gojni.toml")
	pkg := flag.String("package", "", "Go package name (overrides the model and config)")
	out := flag.String("out", "", "Output directory (overrides the config)")
	verbose := flag.Int("v", 0, "Log verbosity")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: jnigen [flags] [model.toml ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.FindAndLoad(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", config.FileName, err)
		os.Exit(1)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.ConfigureLogging(*verbose)

	models := flag.Args()
	if len(models) == 0 {
		models = cfg.ModelPaths()
	}
	if len(models) == 0 {
		fmt.Fprintln(os.Stderr, "No model files given and none configured")
		flag.Usage()
		os.Exit(2)
	}

	outDir := *out
	if outDir == "" {
		outDir = cfg.Bindgen.Output
		if !filepath.IsAbs(outDir) && cfg.Dir != "" && len(flag.Args()) == 0 {
			outDir = filepath.Join(cfg.Dir, outDir)
		}
	}

	failed := false
	for _, path := range models {
		if err := generate(path, outDir, *pkg, cfg.Bindgen.Package); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// generate writes <model>_jni.go for one model file, and
// <model>_jni_native.go if the model declares native methods. The package
// name is taken from the flag, then the model, then the config.
func generate(path, outDir, pkgFlag, pkgDefault string) error {
	m, err := bindgen.LoadFile(path)
	if err != nil {
		return err
	}
	pkg := pkgFlag
	if pkg == "" && m.Package == "" {
		pkg = pkgDefault
	}

	base := filepath.Base(path)
	src, err := bindgen.Generate(m, bindgen.Options{Package: pkg, Source: base})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	stem := filepath.Join(outDir, strings.TrimSuffix(base, filepath.Ext(base)))
	target := stem + "_jni.go"
	if err := os.WriteFile(target, src, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", target, err)
	}
	log.Infof("wrote %s (%d classes)", target, len(m.Classes))

	natives, err := bindgen.GenerateNatives(m, bindgen.Options{Package: pkg, Source: base})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if natives == nil {
		return nil
	}
	target = stem + "_jni_native.go"
	if err := os.WriteFile(target, natives, 0644); err != nil {
		return fmt.Errorf("cannot write %s: %w", target, err)
	}
	log.Infof("wrote %s", target)
	return nil
}
