// Package bindgen generates jni wrapper types from a class model.
//
// A model is a TOML file listing Java classes with their superclass,
// interfaces, constructors and methods:
//
//	package = "bindings"
//
//	[[class]]
//	name = "com/example/Greeter"
//
//	[[class.constructor]]
//	args = ["java.lang.String"]
//
//	[[class.method]]
//	name = "greet"
//	args = ["int"]
//	returns = "java.lang.String"
//
//	[[class.method]]
//	name = "onGreeted"
//	native = true
//	args = ["java.lang.String"]
//
// Models are validated against an embedded CUE schema before generation.
package bindgen

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/BurntSushi/toml"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("gojni.bindgen")

//go:embed schema.cue
var schema []byte

// Model is a set of classes to wrap.
type Model struct {
	Package string  `json:"package,omitempty"`
	Classes []Class `json:"class"`
}

// Class describes one Java class or interface. Names use the binary form
// with slashes ("java/lang/String"); dots are accepted and normalized.
type Class struct {
	Name         string        `json:"name"`
	GoName       string        `json:"go-name,omitempty"`
	Super        string        `json:"super,omitempty"`
	Interface    bool          `json:"interface,omitempty"`
	Interfaces   []string      `json:"interfaces,omitempty"`
	Constructors []Constructor `json:"constructor,omitempty"`
	Methods      []Method      `json:"method,omitempty"`
}

type Constructor struct {
	GoName string   `json:"go-name,omitempty"`
	Args   []string `json:"args,omitempty"`
}

// Method is an instance or static method. An empty Returns means void.
// A Native method is declared native in Java and implemented in Go; see
// GenerateNatives.
type Method struct {
	Name    string   `json:"name"`
	GoName  string   `json:"go-name,omitempty"`
	Static  bool     `json:"static,omitempty"`
	Native  bool     `json:"native,omitempty"`
	Args    []string `json:"args,omitempty"`
	Returns string   `json:"returns,omitempty"`
}

// LoadFile reads and validates a model file.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return Parse(data, filepath.Base(path))
}

// Parse decodes TOML model data and validates it against the schema.
// filename is used in error messages.
func Parse(data []byte, filename string) (*Model, error) {
	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", filename, err)
	}

	ctx := cuecontext.New()
	schemaValue := ctx.CompileBytes(schema, cue.Filename("schema.cue"))
	if err := schemaValue.Err(); err != nil {
		return nil, fmt.Errorf("internal error: failed to compile schema: %w", err)
	}
	root := schemaValue.LookupPath(cue.ParsePath("#Model"))

	unified := root.Unify(ctx.Encode(raw))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, formatError(err, filename)
	}

	var m Model
	if err := unified.Decode(&m); err != nil {
		return nil, formatError(err, filename)
	}
	m.normalize()
	log.Debugf("loaded %d classes from %s", len(m.Classes), filename)
	return &m, nil
}

func formatError(err error, filename string) error {
	var lines []string
	for _, e := range cueerrors.Errors(err) {
		msg := e.Error()
		if path := strings.Join(cueerrors.Path(e), "."); path != "" && !strings.HasPrefix(msg, path) {
			msg = path + ": " + msg
		}
		lines = append(lines, msg)
	}
	if len(lines) == 0 {
		return fmt.Errorf("%s: %w", filename, err)
	}
	return fmt.Errorf("%s: %s", filename, strings.Join(lines, "; "))
}

func (m *Model) normalize() {
	for i := range m.Classes {
		c := &m.Classes[i]
		c.Name = slashed(c.Name)
		c.Super = slashed(c.Super)
		for j, iface := range c.Interfaces {
			c.Interfaces[j] = slashed(iface)
		}
		if c.GoName == "" {
			c.GoName = defaultGoName(c.Name)
		}
	}
}

// Find returns the class named name, or nil.
func (m *Model) Find(name string) *Class {
	name = slashed(name)
	for i := range m.Classes {
		if m.Classes[i].Name == name {
			return &m.Classes[i]
		}
	}
	return nil
}
