// Package config handles gojni.toml runtime configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/chazu/gojni/jni"
	"github.com/chazu/gojni/native"
)

// FileName is the name Load and FindAndLoad look for.
const FileName = "gojni.toml"

// Config represents a gojni.toml file.
type Config struct {
	VM      VMConfig      `toml:"vm"`
	Attach  AttachConfig  `toml:"attach"`
	Checks  Checks        `toml:"checks"`
	Log     LogConfig     `toml:"log"`
	Bindgen BindgenConfig `toml:"bindgen"`

	// Dir is the directory containing the gojni.toml file (set at load time).
	Dir string `toml:"-"`
}

// VMConfig configures VM creation.
type VMConfig struct {
	Version            string   `toml:"version"`
	Options            []string `toml:"options"`
	ClassPath          []string `toml:"class-path"`
	IgnoreUnrecognized bool     `toml:"ignore-unrecognized"`
}

// AttachConfig sets defaults for thread attachment.
type AttachConfig struct {
	ThreadName   string `toml:"thread-name"`
	Daemon       bool   `toml:"daemon"`
	KeepAttached bool   `toml:"keep-attached"`
}

// Checks toggles runtime misuse checks. A missing key means enabled.
type Checks struct {
	Thread *bool `toml:"thread"`
}

// LogConfig configures commonlog.
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	Path      string `toml:"path"`
}

// BindgenConfig configures wrapper generation.
type BindgenConfig struct {
	Models  []string `toml:"models"`
	Output  string   `toml:"output"`
	Package string   `toml:"package"`
}

// Default returns the configuration used when no gojni.toml exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.VM.Version == "" {
		c.VM.Version = native.Version1_8.String()
	}
	if c.Bindgen.Output == "" {
		c.Bindgen.Output = "."
	}
	if c.Bindgen.Package == "" {
		c.Bindgen.Package = "bindings"
	}
}

// Load parses a gojni.toml file from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}
	c.applyDefaults()

	if _, err := c.JNIVersion(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &c, nil
}

// FindAndLoad walks up from startDir to find a gojni.toml file, then loads
// and returns it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// JNIVersion parses [vm] version.
func (c *Config) JNIVersion() (native.Version, error) {
	return native.ParseVersion(c.VM.Version)
}

// ClassPathOption returns the -Djava.class.path option for [vm] class-path,
// with relative entries resolved against Dir, or "" if the list is empty.
func (c *Config) ClassPathOption() string {
	if len(c.VM.ClassPath) == 0 {
		return ""
	}
	paths := make([]string, len(c.VM.ClassPath))
	for i, p := range c.VM.ClassPath {
		if !filepath.IsAbs(p) && c.Dir != "" {
			p = filepath.Join(c.Dir, p)
		}
		paths[i] = p
	}
	return "-Djava.class.path=" + strings.Join(paths, string(os.PathListSeparator))
}

// InitArgs returns the arguments for creating a VM.
func (c *Config) InitArgs() (native.InitArgs, error) {
	v, err := c.JNIVersion()
	if err != nil {
		return native.InitArgs{}, err
	}
	opts := append([]string(nil), c.VM.Options...)
	if cp := c.ClassPathOption(); cp != "" {
		opts = append(opts, cp)
	}
	return native.InitArgs{Version: v, Options: opts, IgnoreUnrecognized: c.VM.IgnoreUnrecognized}, nil
}

// Options returns the jni.VM options.
func (c *Config) Options() (jni.Options, error) {
	v, err := c.JNIVersion()
	if err != nil {
		return jni.Options{}, err
	}
	return jni.Options{
		Version:         v,
		SkipThreadCheck: c.Checks.Thread != nil && !*c.Checks.Thread,
	}, nil
}

// AttachArgs returns the default attachment arguments.
func (c *Config) AttachArgs() jni.AttachArgs {
	return jni.AttachArgs{
		Name:         c.Attach.ThreadName,
		Daemon:       c.Attach.Daemon,
		KeepAttached: c.Attach.KeepAttached,
	}
}

// ModelPaths returns absolute paths for the configured bindgen models.
func (c *Config) ModelPaths() []string {
	var paths []string
	for _, m := range c.Bindgen.Models {
		if !filepath.IsAbs(m) {
			m = filepath.Join(c.Dir, m)
		}
		paths = append(paths, m)
	}
	return paths
}

// ConfigureLogging applies [log]. verbosity, if positive, overrides the
// file's setting.
func (c *Config) ConfigureLogging(verbosity int) {
	if verbosity <= 0 {
		verbosity = c.Log.Verbosity
	}
	var path *string
	if c.Log.Path != "" {
		p := c.Log.Path
		if !filepath.IsAbs(p) && c.Dir != "" {
			p = filepath.Join(c.Dir, p)
		}
		path = &p
	}
	commonlog.Configure(verbosity, path)
}
