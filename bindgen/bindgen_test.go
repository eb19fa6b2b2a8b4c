package bindgen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const greeterModel = `
package = "greet"

[[class]]
name = "com.example.Greeter"
interfaces = ["com/example/Named"]

[[class.constructor]]
args = ["java.lang.String"]

[[class.constructor]]
go-name = "NewAnonymousGreeter"

[[class.method]]
name = "greet"
args = ["int"]
returns = "java.lang.String"

[[class.method]]
name = "reset"

[[class.method]]
name = "of"
static = true
args = ["java.lang.String", "long"]
returns = "com.example.Greeter"

[[class.method]]
name = "scores"
returns = "int[][]"

[[class]]
name = "com/example/LoudGreeter"
super = "com/example/Greeter"

[[class.constructor]]
args = ["java.lang.String", "boolean"]

[[class]]
name = "com/example/Named"
interface = true

[[class.method]]
name = "name"
returns = "java.lang.String"

[[class]]
name = "com/example/GreetingError$Bad"
super = "java/lang/Throwable"
`

func mustParse(t *testing.T, src string) *Model {
	t.Helper()
	m, err := Parse([]byte(src), "model.toml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return m
}

func TestParseModel(t *testing.T) {
	m := mustParse(t, greeterModel)
	if m.Package != "greet" {
		t.Errorf("package = %q", m.Package)
	}
	if len(m.Classes) != 4 {
		t.Fatalf("got %d classes, want 4", len(m.Classes))
	}

	g := m.Find("com.example.Greeter")
	if g == nil {
		t.Fatal("Greeter not found")
	}
	if g.Name != "com/example/Greeter" || g.GoName != "Greeter" {
		t.Errorf("Greeter = %q/%q", g.Name, g.GoName)
	}
	if len(g.Constructors) != 2 || len(g.Methods) != 4 {
		t.Errorf("Greeter has %d constructors and %d methods", len(g.Constructors), len(g.Methods))
	}
	if !g.Methods[2].Static || g.Methods[2].Returns != "com.example.Greeter" {
		t.Errorf("of = %+v", g.Methods[2])
	}
	if g.Interfaces[0] != "com/example/Named" {
		t.Errorf("interfaces = %v", g.Interfaces)
	}
	if !m.Find("com/example/Named").Interface {
		t.Error("Named is not an interface")
	}
	if got := m.Find("com/example/GreetingError$Bad").GoName; got != "GreetingError_Bad" {
		t.Errorf("nested class Go name = %q", got)
	}
	if m.Find("com/example/Missing") != nil {
		t.Error("Find returned a class that is not in the model")
	}
}

func TestParseModelErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"toml syntax", "[[class]\n"},
		{"no classes", "package = \"x\"\n"},
		{"unknown field", "[[class]]\nname = \"a/B\"\nfields = 1\n"},
		{"bad class name", "[[class]]\nname = \"a/1B\"\n"},
		{"bad go name", "[[class]]\nname = \"a/B\"\ngo-name = \"lower\"\n"},
		{"bad package", "package = \"Bad-Pkg\"\n[[class]]\nname = \"a/B\"\n"},
		{"too many args", "[[class]]\nname = \"a/B\"\n[[class.method]]\nname = \"f\"\nargs = [\"int\", \"int\", \"int\", \"int\", \"int\"]\n"},
		{"method without name", "[[class]]\nname = \"a/B\"\n[[class.method]]\nreturns = \"int\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "model.toml")
			if err == nil {
				t.Fatal("Parse succeeded")
			}
			if !strings.Contains(err.Error(), "model.toml") {
				t.Errorf("error %q does not name the file", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "greeter.toml")
	if err := os.WriteFile(path, []byte(greeterModel), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(m.Classes) != 4 {
		t.Errorf("got %d classes", len(m.Classes))
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("LoadFile of a missing file succeeded")
	}
}

func TestGenerate(t *testing.T) {
	m := mustParse(t, greeterModel)
	src, err := Generate(m, Options{Source: "greeter.toml"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	code := string(src)

	f, err := parser.ParseFile(token.NewFileSet(), "greet.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, code)
	}
	if f.Name.Name != "greet" {
		t.Errorf("package = %s", f.Name.Name)
	}

	want := []string{
		"Code generated by jnigen from greeter.toml. DO NOT EDIT.",
		`"github.com/chazu/gojni/jni"`,
		"type Greeter struct",
		"type LoudGreeter struct",
		"type Named struct",
		"type GreetingError_Bad struct",
		`return "Lcom/example/Greeter;"`,
		"func NewGreeter(tok jni.NoException, a0 *jni.String) (*Greeter, jni.NoException, error)",
		"func NewAnonymousGreeter(tok jni.NoException) (*Greeter, jni.NoException, error)",
		"func NewLoudGreeter(tok jni.NoException, a0 *jni.String, a1 jni.Boolean) (*LoudGreeter, jni.NoException, error)",
		"func (c *Greeter) Greet(tok jni.NoException, a0 jni.Int) (*jni.String, jni.NoException, error)",
		"func (c *Greeter) Reset(tok jni.NoException) (jni.NoException, error)",
		"func GreeterOf(tok jni.NoException, a0 *jni.String, a1 jni.Long) (*Greeter, jni.NoException, error)",
		"func (c *Greeter) Scores(tok jni.NoException) (*jni.Array[*jni.Array[jni.Int]], jni.NoException, error)",
		"func (c *Greeter) AsNamed() *Named",
		"func (c *LoudGreeter) AsGreeter() *Greeter",
		"func (c *GreetingError_Bad) AsThrowable() *jni.Throwable",
		"func (c *Named) Name(tok jni.NoException) (*jni.String, jni.NoException, error)",
		"(Ljava/lang/String;J)Lcom/example/Greeter;",
		"()[[I",
	}
	for _, w := range want {
		if !strings.Contains(code, w) {
			t.Errorf("generated code is missing %q", w)
		}
	}
	if t.Failed() {
		t.Logf("generated:\n%s", code)
	}
}

func TestGeneratePackageOverride(t *testing.T) {
	m := mustParse(t, "[[class]]\nname = \"a/B\"\n")
	src, err := Generate(m, Options{Package: "override"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "package override") {
		t.Errorf("package not overridden:\n%s", src)
	}

	src, err = Generate(m, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "package bindings") {
		t.Errorf("default package not used:\n%s", src)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"overload without go-name",
			"[[class]]\nname = \"a/B\"\n[[class.method]]\nname = \"f\"\n[[class.method]]\nname = \"f\"\nargs = [\"int\"]\n",
			"duplicate Go name F",
		},
		{
			"duplicate type",
			"[[class]]\nname = \"a/B\"\n[[class]]\nname = \"c/B\"\n",
			"both map to Go type B",
		},
		{
			"static name collision",
			"[[class]]\nname = \"a/B\"\n[[class.method]]\nname = \"f\"\nstatic = true\ngo-name = \"F\"\n" +
				"[[class]]\nname = \"a/C\"\n[[class.method]]\nname = \"g\"\nstatic = true\ngo-name = \"F\"\n",
			"already used by a/B",
		},
		{
			"constructor named like a type",
			"[[class]]\nname = \"a/B\"\n[[class]]\nname = \"a/C\"\n[[class.constructor]]\ngo-name = \"B\"\n",
			"already used by a/B",
		},
		{
			"unknown argument class",
			"[[class]]\nname = \"a/B\"\n[[class.method]]\nname = \"f\"\nargs = [\"a/C\"]\n",
			"unknown class a/C",
		},
		{
			"unknown superclass",
			"[[class]]\nname = \"a/B\"\nsuper = \"a/C\"\n",
			"unknown superclass a/C",
		},
		{
			"interface superclass",
			"[[class]]\nname = \"a/I\"\ninterface = true\n[[class]]\nname = \"a/B\"\nsuper = \"a/I\"\n",
			"is an interface",
		},
		{
			"class as interface",
			"[[class]]\nname = \"a/C\"\n[[class]]\nname = \"a/B\"\ninterfaces = [\"a/C\"]\n",
			"a/C is not an interface",
		},
		{
			"interface constructor",
			"[[class]]\nname = \"a/I\"\ninterface = true\n[[class.constructor]]\n",
			"interfaces have no constructors",
		},
		{
			"void argument",
			"[[class]]\nname = \"a/B\"\n[[class.method]]\nname = \"f\"\nargs = [\"void\"]\n",
			"void argument",
		},
		{
			"native interface method",
			"[[class]]\nname = \"a/I\"\ninterface = true\n[[class.method]]\nname = \"f\"\nnative = true\n",
			"interfaces have no native methods",
		},
		{
			"native name collision",
			"[[class]]\nname = \"a/B\"\n[[class.method]]\nname = \"f\"\nnative = true\n" +
				"[[class.method]]\nname = \"f\"\nstatic = true\nnative = true\nargs = [\"int\"]\n",
			"duplicate native method name F",
		},
		{
			"void array",
			"[[class]]\nname = \"a/B\"\n[[class.method]]\nname = \"f\"\nreturns = \"void[]\"\n",
			"void[] is not a type",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustParse(t, tt.src)
			_, err := Generate(m, Options{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

const clockModel = `
package = "clock"

[[class]]
name = "com/example/Clock"

[[class.method]]
name = "tick"
native = true
args = ["long"]

[[class.method]]
name = "label"
native = true
args = ["com/example/Clock", "boolean"]
returns = "java.lang.String"

[[class.method]]
name = "now_ms"
static = true
native = true
go-name = "NowMillis"
returns = "long"

[[class.method]]
name = "scale"
native = true
go-name = "ScaleInt"
args = ["int"]
returns = "int"

[[class.method]]
name = "scale"
native = true
go-name = "ScaleDouble"
args = ["double"]
returns = "double"

[[class.method]]
name = "reset"

[[class]]
name = "com/example/Timer"
`

func TestGenerateNativeInterface(t *testing.T) {
	m := mustParse(t, clockModel)
	if !m.Classes[0].Methods[0].Native || m.Classes[0].Methods[5].Native {
		t.Errorf("native flags = %+v", m.Classes[0].Methods)
	}
	src, err := Generate(m, Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	code := string(src)
	if _, err := parser.ParseFile(token.NewFileSet(), "clock.go", src, 0); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, code)
	}

	want := []string{
		"type ClockNatives interface",
		"Tick(tok jni.NoException, this *Clock, a0 jni.Long) (jni.NoException, error)",
		"Label(tok jni.NoException, this *Clock, a0 *Clock, a1 jni.Boolean) (*jni.String, jni.NoException, error)",
		"NowMillis(tok jni.NoException) (jni.Long, jni.NoException, error)",
		"ScaleDouble(tok jni.NoException, this *Clock, a0 jni.Double) (jni.Double, jni.NoException, error)",
		"var clockNatives struct",
		"func RegisterClockNatives(vm *jni.VM, impl ClockNatives)",
		// Native methods stay callable from Go.
		"func (c *Clock) Tick(tok jni.NoException, a0 jni.Long) (jni.NoException, error)",
		"func NowMillis(tok jni.NoException) (jni.Long, jni.NoException, error)",
	}
	for _, w := range want {
		if !strings.Contains(code, w) {
			t.Errorf("generated code is missing %q", w)
		}
	}
	if strings.Contains(code, "TimerNatives") || strings.Contains(code, "Reset(tok jni.NoException, this") {
		t.Error("natives generated for a method that is not native")
	}
	if t.Failed() {
		t.Logf("generated:\n%s", code)
	}
}

func TestGenerateNatives(t *testing.T) {
	m := mustParse(t, clockModel)
	src, err := GenerateNatives(m, Options{Source: "clock.toml"})
	if err != nil {
		t.Fatalf("GenerateNatives: %v", err)
	}
	code := string(src)

	f, err := parser.ParseFile(token.NewFileSet(), "clock_native.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, code)
	}
	if f.Name.Name != "clock" {
		t.Errorf("package = %s", f.Name.Name)
	}
	imports := make(map[string]bool)
	for _, imp := range f.Imports {
		imports[imp.Path.Value] = true
	}
	for _, imp := range []string{`"C"`, `"unsafe"`, `"github.com/chazu/gojni/jni"`, `"github.com/chazu/gojni/native/jnicgo"`} {
		if !imports[imp] {
			t.Errorf("missing import %s", imp)
		}
	}
	if i := strings.Index(code, "//go:build cgo && jni"); i < 0 || i > strings.Index(code, "package clock") {
		t.Error("build constraint missing or after the package clause")
	}

	want := []string{
		"#include <jni.h>",
		"//export Java_com_example_Clock_tick\nfunc Java_com_example_Clock_tick(env *C.JNIEnv, this C.jobject, a0 C.jlong) {",
		"tok, err := clockNatives.impl.Tick(tok, jni.FromNative[*Clock](tok, jnicgo.Ref(unsafe.Pointer(this))), jni.Long(a0))",
		"return jni.Void{}, tok, err",
		"func Java_com_example_Clock_label(env *C.JNIEnv, this C.jobject, a0 C.jobject, a1 C.jboolean) C.jobject {",
		"jni.FromNative[*Clock](tok, jnicgo.Ref(unsafe.Pointer(a0))), jni.Boolean(a1 != 0))",
		"return C.jobject(jnicgo.Pointer(v.Ref()))",
		"//export Java_com_example_Clock_now_1ms\nfunc Java_com_example_Clock_now_1ms(env *C.JNIEnv, cls C.jclass) C.jlong {",
		"return clockNatives.impl.NowMillis(tok)",
		"return C.jlong(v.Long())",
		"func Java_com_example_Clock_scale__I(env *C.JNIEnv, this C.jobject, a0 C.jint) C.jint {",
		"func Java_com_example_Clock_scale__D(env *C.JNIEnv, this C.jobject, a0 C.jdouble) C.jdouble {",
		"jni.NativeMethod(clockNatives.vm, jnicgo.Table(unsafe.Pointer(env)), func(tok jni.NoException) (jni.Int, jni.NoException, error) {",
	}
	for _, w := range want {
		if !strings.Contains(code, w) {
			t.Errorf("generated code is missing %q", w)
		}
	}
	if strings.Contains(code, "Java_com_example_Clock_reset") {
		t.Error("export generated for a method that is not native")
	}
	if t.Failed() {
		t.Logf("generated:\n%s", code)
	}

	none, err := GenerateNatives(mustParse(t, greeterModel), Options{})
	if err != nil || none != nil {
		t.Errorf("GenerateNatives without native methods = %q, %v", none, err)
	}
}

func TestResolve(t *testing.T) {
	m := mustParse(t, "[[class]]\nname = \"a/B\"\n")
	tests := []struct {
		name string
		desc string
	}{
		{"int", "I"},
		{"boolean", "Z"},
		{"void", "V"},
		{"java.lang.Object", "Ljava/lang/Object;"},
		{"java/lang/Class", "Ljava/lang/Class;"},
		{"a.B", "La/B;"},
		{"a/B[]", "[La/B;"},
		{"double[][]", "[[D"},
	}
	for _, tt := range tests {
		got, err := m.resolve(tt.name)
		if err != nil {
			t.Errorf("resolve(%q): %v", tt.name, err)
			continue
		}
		if got.desc != tt.desc {
			t.Errorf("resolve(%q).desc = %q, want %q", tt.name, got.desc, tt.desc)
		}
	}

	args, err := m.resolveAll([]string{"int", "a/B"})
	if err != nil {
		t.Fatal(err)
	}
	ret, _ := m.resolve("long")
	if d := descriptor(ret, args); d != "(ILa/B;)J" {
		t.Errorf("descriptor = %q", d)
	}
}
