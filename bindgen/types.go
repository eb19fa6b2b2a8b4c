package bindgen

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
)

const (
	jniPath    = "github.com/chazu/gojni/jni"
	jnicgoPath = "github.com/chazu/gojni/native/jnicgo"
)

// javaType is a resolved model type: the Go type expression for it and its
// field descriptor. prim is set for primitive types.
type javaType struct {
	code func() *jen.Statement
	desc string
	void bool
	prim *primitive
}

// primitive describes a Java primitive: its jni type, descriptor, cgo type
// and the native.Value accessor that reads it.
type primitive struct {
	goName, desc string
	cName, value string
}

var primitives = map[string]*primitive{
	"void":    {"Void", "V", "", ""},
	"boolean": {"Boolean", "Z", "jboolean", "Word"},
	"byte":    {"Byte", "B", "jbyte", "Byte"},
	"char":    {"Char", "C", "jchar", "Char"},
	"short":   {"Short", "S", "jshort", "Short"},
	"int":     {"Int", "I", "jint", "Int"},
	"long":    {"Long", "J", "jlong", "Long"},
	"float":   {"Float", "F", "jfloat", "Float"},
	"double":  {"Double", "D", "jdouble", "Double"},
}

// builtins are the classes package jni wraps itself.
var builtins = map[string]string{
	"java/lang/Object":    "Object",
	"java/lang/String":    "String",
	"java/lang/Class":     "Class",
	"java/lang/Throwable": "Throwable",
}

// resolve maps a model type name ("int", "java.lang.String",
// "com/example/Foo[]") to its Go type.
func (m *Model) resolve(name string) (javaType, error) {
	dims := 0
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]")
		dims++
	}

	var t javaType
	if p, ok := primitives[name]; ok {
		if p.goName == "Void" && dims > 0 {
			return javaType{}, fmt.Errorf("void[] is not a type")
		}
		goName := p.goName
		t = javaType{code: func() *jen.Statement { return jen.Qual(jniPath, goName) }, desc: p.desc, void: name == "void", prim: p}
	} else {
		path := slashed(name)
		desc := "L" + path + ";"
		if goName, ok := builtins[path]; ok {
			t = javaType{code: func() *jen.Statement { return jen.Op("*").Qual(jniPath, goName) }, desc: desc}
		} else if c := m.Find(path); c != nil {
			goName := c.GoName
			t = javaType{code: func() *jen.Statement { return jen.Op("*").Id(goName) }, desc: desc}
		} else {
			return javaType{}, fmt.Errorf("unknown class %s (add it to the model)", path)
		}
	}

	for range dims {
		elem := t
		t = javaType{
			code: func() *jen.Statement { return jen.Op("*").Qual(jniPath, "Array").Types(elem.code()) },
			desc: "[" + elem.desc,
		}
	}
	return t, nil
}

func (m *Model) resolveAll(names []string) ([]javaType, error) {
	out := make([]javaType, len(names))
	for i, n := range names {
		t, err := m.resolve(n)
		if err != nil {
			return nil, err
		}
		if t.void {
			return nil, fmt.Errorf("void argument")
		}
		out[i] = t
	}
	return out, nil
}

func descriptor(ret javaType, args []javaType) string {
	return "(" + argDescriptor(args) + ")" + ret.desc
}

func argDescriptor(args []javaType) string {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(a.desc)
	}
	return b.String()
}

// cType is the cgo type of t in an exported native method.
func (t javaType) cType() *jen.Statement {
	if t.prim != nil {
		return jen.Qual("C", t.prim.cName)
	}
	return jen.Qual("C", "jobject")
}

// fromC converts the cgo argument x to t.
func (t javaType) fromC(x string) *jen.Statement {
	switch {
	case t.prim == nil:
		return jen.Qual(jniPath, "FromNative").Types(t.code()).Call(
			jen.Id("tok"),
			jen.Qual(jnicgoPath, "Ref").Call(jen.Qual("unsafe", "Pointer").Call(jen.Id(x))),
		)
	case t.prim.goName == "Boolean":
		return jen.Qual(jniPath, "Boolean").Call(jen.Id(x).Op("!=").Lit(0))
	}
	return t.code().Call(jen.Id(x))
}

// toC converts the native.Value v to t's cgo type.
func (t javaType) toC(v string) *jen.Statement {
	if t.prim != nil {
		return jen.Qual("C", t.prim.cName).Call(jen.Id(v).Dot(t.prim.value).Call())
	}
	return jen.Qual("C", "jobject").Call(jen.Qual(jnicgoPath, "Pointer").Call(jen.Id(v).Dot("Ref").Call()))
}
