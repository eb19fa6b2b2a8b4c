package bindgen

import (
	"bytes"
	"fmt"
	"unicode"

	"github.com/dave/jennifer/jen"
)

// Options controls code generation.
type Options struct {
	// Package overrides the model's package name.
	Package string
	// Source names the model in the generated header.
	Source string
}

func (opts Options) packageName(m *Model) string {
	switch {
	case opts.Package != "":
		return opts.Package
	case m.Package != "":
		return m.Package
	}
	return "bindings"
}

func (opts Options) header() string {
	if opts.Source != "" {
		return fmt.Sprintf("Code generated by jnigen from %s. DO NOT EDIT.", opts.Source)
	}
	return "Code generated by jnigen. DO NOT EDIT."
}

// Generate renders Go source for every class in m. Classes with native
// methods also get a <Type>Natives interface and its Register function.
func Generate(m *Model, opts Options) ([]byte, error) {
	f := jen.NewFile(opts.packageName(m))
	f.ImportName(jniPath, "jni")
	f.HeaderComment(opts.header())

	global := make(map[string]string)
	for i := range m.Classes {
		c := &m.Classes[i]
		if prev, ok := global[c.GoName]; ok {
			return nil, fmt.Errorf("%s and %s both map to Go type %s", prev, c.Name, c.GoName)
		}
		global[c.GoName] = c.Name
	}
	for i := range m.Classes {
		c := &m.Classes[i]
		g := &classGen{model: m, class: c, file: f, names: make(map[string]bool), global: global}
		if err := g.generate(); err != nil {
			return nil, fmt.Errorf("class %s: %w", c.Name, err)
		}
		log.Debugf("generated %s from %s", c.GoName, c.Name)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

type classGen struct {
	model *Model
	class *Class
	file  *jen.File

	// names holds the class's method names, global the package-level
	// type and function names of the whole model.
	names  map[string]bool
	global map[string]string
}

func (g *classGen) claim(name string) error {
	if g.names[name] {
		return fmt.Errorf("duplicate Go name %s (set go-name)", name)
	}
	g.names[name] = true
	return nil
}

func (g *classGen) claimFunc(name string) error {
	if owner, ok := g.global[name]; ok {
		return fmt.Errorf("Go name %s is already used by %s (set go-name)", name, owner)
	}
	g.global[name] = g.class.Name
	return nil
}

func (g *classGen) generate() error {
	c := g.class
	if c.Interface && len(c.Constructors) > 0 {
		return fmt.Errorf("interfaces have no constructors")
	}

	embed, err := g.superEmbed()
	if err != nil {
		return err
	}
	kind := "class"
	if c.Interface {
		kind = "interface"
	}
	g.file.Commentf("%s wraps the Java %s %s.", c.GoName, kind, slashToDot(c.Name))
	g.file.Type().Id(c.GoName).Struct(embed)
	g.file.Line()

	g.file.Func().Params(jen.Op("*").Id(c.GoName)).Id("Signature").Params().String().Block(
		jen.Return(jen.Lit("L" + c.Name + ";")),
	)
	g.file.Line()

	if err := g.casts(); err != nil {
		return err
	}
	for i, ctor := range c.Constructors {
		if err := g.constructor(i, ctor); err != nil {
			return err
		}
	}
	for _, m := range c.Methods {
		if err := g.method(m); err != nil {
			return fmt.Errorf("method %s: %w", m.Name, err)
		}
	}
	return g.nativeInterface()
}

// superEmbed returns the embedded field for the immediate superclass.
func (g *classGen) superEmbed() (jen.Code, error) {
	c := g.class
	if c.Interface || c.Super == "" || c.Super == "java/lang/Object" {
		return jen.Qual(jniPath, "Object"), nil
	}
	if goName, ok := builtins[c.Super]; ok {
		return jen.Qual(jniPath, goName), nil
	}
	sup := g.model.Find(c.Super)
	if sup == nil {
		return nil, fmt.Errorf("unknown superclass %s", c.Super)
	}
	if sup.Interface {
		return nil, fmt.Errorf("superclass %s is an interface", c.Super)
	}
	return jen.Id(sup.GoName), nil
}

func (g *classGen) recv() *jen.Statement {
	return jen.Id("c").Op("*").Id(g.class.GoName)
}

// casts emits AsX for the immediate superclass and each declared
// interface. Casts to further ancestors are promoted from the embedded
// superclass.
func (g *classGen) casts() error {
	c := g.class
	if !c.Interface && c.Super != "" && c.Super != "java/lang/Object" {
		var target jen.Code
		field := ""
		if goName, ok := builtins[c.Super]; ok {
			target, field = jen.Qual(jniPath, goName), goName
		} else {
			sup := g.model.Find(c.Super)
			target, field = jen.Id(sup.GoName), sup.GoName
		}
		name := "As" + field
		if err := g.claim(name); err != nil {
			return err
		}
		g.file.Commentf("%s returns c as its superclass.", name)
		g.file.Func().Params(g.recv()).Id(name).Params().Op("*").Add(target).Block(
			jen.Return(jen.Op("&").Id("c").Dot(field)),
		)
		g.file.Line()
	}

	for _, name := range c.Interfaces {
		iface := g.model.Find(name)
		if iface == nil {
			return fmt.Errorf("unknown interface %s", name)
		}
		if !iface.Interface {
			return fmt.Errorf("%s is not an interface", name)
		}
		method := "As" + iface.GoName
		if err := g.claim(method); err != nil {
			return err
		}
		g.file.Commentf("%s returns c as a %s.", method, slashToDot(iface.Name))
		g.file.Func().Params(g.recv()).Id(method).Params().Op("*").Id(iface.GoName).Block(
			jen.Return(jen.Op("&").Id(iface.GoName).Values(jen.Dict{
				jen.Id("Object"): jen.Op("*").Id("c").Dot("AsObject").Call(),
			})),
		)
		g.file.Line()
	}
	return nil
}

func params(args []javaType) ([]jen.Code, []jen.Code) {
	decl := []jen.Code{jen.Id("tok").Qual(jniPath, "NoException")}
	use := make([]jen.Code, 0, len(args))
	for i, a := range args {
		id := fmt.Sprintf("a%d", i)
		decl = append(decl, jen.Id(id).Add(a.code()))
		use = append(use, jen.Id(id))
	}
	return decl, use
}

func results(ret javaType) []jen.Code {
	var out []jen.Code
	if !ret.void {
		out = append(out, ret.code())
	}
	return append(out, jen.Qual(jniPath, "NoException"), jen.Error())
}

func (g *classGen) constructor(i int, ctor Constructor) error {
	c := g.class
	args, err := g.model.resolveAll(ctor.Args)
	if err != nil {
		return fmt.Errorf("constructor %d: %w", i, err)
	}
	name := ctor.GoName
	if name == "" {
		name = "New" + c.GoName
		if i > 0 {
			name = fmt.Sprintf("New%s%d", c.GoName, i+1)
		}
	}
	if err := g.claimFunc(name); err != nil {
		return err
	}

	decl, use := params(args)
	desc := descriptor(javaType{desc: "V"}, args)
	g.file.Commentf("%s runs the constructor %s.", name, desc)
	g.file.Func().Id(name).Params(decl...).Params(
		jen.Op("*").Id(c.GoName), jen.Qual(jniPath, "NoException"), jen.Error(),
	).Block(
		jen.Return(jen.Qual(jniPath, fmt.Sprintf("NewObject%d", len(args))).
			Types(jen.Op("*").Id(c.GoName)).
			Call(append([]jen.Code{jen.Id("tok")}, use...)...)),
	)
	g.file.Line()
	return nil
}

func (g *classGen) method(m Method) error {
	c := g.class
	args, err := g.model.resolveAll(m.Args)
	if err != nil {
		return err
	}
	ret, err := g.model.resolve(returns(m))
	if err != nil {
		return err
	}

	name := m.GoName
	if name == "" {
		name = exported(m.Name)
		if m.Static {
			name = c.GoName + name
		}
	}
	claim := g.claim
	if m.Static {
		claim = g.claimFunc
	}
	if err := claim(name); err != nil {
		return err
	}

	decl, use := params(args)

	var call *jen.Statement
	callArgs := []jen.Code{jen.Id("tok")}
	if m.Static {
		call = jen.Qual(jniPath, fmt.Sprintf("CallStaticMethod%d", len(args))).
			Types(jen.Op("*").Id(c.GoName), ret.code())
	} else {
		call = jen.Qual(jniPath, fmt.Sprintf("CallMethod%d", len(args))).Types(ret.code())
		callArgs = append(callArgs, jen.Id("c"))
	}
	callArgs = append(callArgs, jen.Lit(m.Name))
	call = call.Call(append(callArgs, use...)...)

	var body []jen.Code
	if ret.void {
		body = []jen.Code{
			jen.List(jen.Id("_"), jen.Id("tok"), jen.Err()).Op(":=").Add(call),
			jen.Return(jen.Id("tok"), jen.Err()),
		}
	} else {
		body = []jen.Code{jen.Return(call)}
	}

	desc := descriptor(ret, args)
	var fn *jen.Statement
	if m.Static {
		g.file.Commentf("%s calls the static method %s.%s%s.", name, slashToDot(c.Name), m.Name, desc)
		fn = g.file.Func()
	} else {
		g.file.Commentf("%s calls %s%s.", name, m.Name, desc)
		fn = g.file.Func().Params(g.recv())
	}
	fn.Id(name).Params(decl...).Params(results(ret)...).Block(body...)
	g.file.Line()
	return nil
}

func returns(m Method) string {
	if m.Returns == "" {
		return "void"
	}
	return m.Returns
}

// nativeInterface emits <Type>Natives, the Go side of the class's native
// methods, with the holder the exported functions read and its Register
// function.
func (g *classGen) nativeInterface() error {
	c := g.class
	natives, err := g.model.natives(c)
	if err != nil || len(natives) == 0 {
		return err
	}
	iface := c.GoName + "Natives"
	register := "Register" + iface
	for _, name := range []string{iface, register} {
		if err := g.claimFunc(name); err != nil {
			return err
		}
	}

	var methods []jen.Code
	for _, n := range natives {
		decl, _ := params(n.args)
		if !n.Static {
			decl = append([]jen.Code{decl[0], jen.Id("this").Op("*").Id(c.GoName)}, decl[1:]...)
		}
		methods = append(methods, jen.Id(n.goName).Params(decl...).Params(results(n.ret)...))
	}
	g.file.Commentf("%s implements the native methods of %s.", iface, slashToDot(c.Name))
	g.file.Type().Id(iface).Interface(methods...)
	g.file.Line()

	holder := nativesVar(c)
	g.file.Var().Id(holder).Struct(
		jen.Id("vm").Op("*").Qual(jniPath, "VM"),
		jen.Id("impl").Id(iface),
	)
	g.file.Line()
	g.file.Commentf("%s sets the Go implementation of %s's native methods.", register, slashToDot(c.Name))
	g.file.Func().Id(register).Params(
		jen.Id("vm").Op("*").Qual(jniPath, "VM"), jen.Id("impl").Id(iface),
	).Block(
		jen.Id(holder).Dot("vm").Op("=").Id("vm"),
		jen.Id(holder).Dot("impl").Op("=").Id("impl"),
	)
	g.file.Line()
	return nil
}

type nativeMethod struct {
	Method
	goName string
	args   []javaType
	ret    javaType
}

// natives resolves c's native methods.
func (m *Model) natives(c *Class) ([]nativeMethod, error) {
	var out []nativeMethod
	seen := make(map[string]bool)
	for _, meth := range c.Methods {
		if !meth.Native {
			continue
		}
		if c.Interface {
			return nil, fmt.Errorf("method %s: interfaces have no native methods", meth.Name)
		}
		args, err := m.resolveAll(meth.Args)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", meth.Name, err)
		}
		ret, err := m.resolve(returns(meth))
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", meth.Name, err)
		}
		name := meth.GoName
		if name == "" {
			name = exported(meth.Name)
		}
		if seen[name] {
			return nil, fmt.Errorf("method %s: duplicate native method name %s (set go-name)", meth.Name, name)
		}
		seen[name] = true
		out = append(out, nativeMethod{Method: meth, goName: name, args: args, ret: ret})
	}
	return out, nil
}

// nativesVar names the package variable holding a class's registered
// native implementation.
func nativesVar(c *Class) string {
	r := []rune(c.GoName)
	r[0] = unicode.ToLower(r[0])
	return string(r) + "Natives"
}
