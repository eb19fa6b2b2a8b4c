package bindgen

import (
	"bytes"
	"fmt"

	"github.com/dave/jennifer/jen"
)

// GenerateNatives renders the cgo side of the model's native methods: one
// exported Java_<class>_<method> function per method, which runs the
// registered <Type>Natives implementation under jni.NativeMethod. It returns
// nil if the model declares no native methods.
//
// The output builds only with cgo and the jni tag, and must be in the same
// package as the output of Generate.
func GenerateNatives(m *Model, opts Options) ([]byte, error) {
	f := jen.NewFile(opts.packageName(m))
	f.ImportName(jniPath, "jni")
	f.ImportName(jnicgoPath, "jnicgo")
	f.HeaderComment(opts.header())
	f.HeaderComment("//go:build cgo && jni")
	f.CgoPreamble("#include <jni.h>")

	count := 0
	for i := range m.Classes {
		c := &m.Classes[i]
		natives, err := m.natives(c)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", c.Name, err)
		}
		overloads := make(map[string]int)
		for _, n := range natives {
			overloads[n.Name]++
		}
		for _, n := range natives {
			exportNative(f, c, n, overloads[n.Name] > 1)
			count++
		}
	}
	if count == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	log.Debugf("generated %d native method exports", count)
	return buf.Bytes(), nil
}

// exportNative emits the exported C entry point for one native method.
// Overloaded methods use the long symbol form with the argument signature.
func exportNative(f *jen.File, c *Class, n nativeMethod, overloaded bool) {
	symbol := nativeSymbol(c.Name, n.Name, n.args, overloaded)
	holder := nativesVar(c)

	cParams := []jen.Code{jen.Id("env").Op("*").Qual("C", "JNIEnv")}
	callArgs := []jen.Code{jen.Id("tok")}
	if n.Static {
		cParams = append(cParams, jen.Id("cls").Qual("C", "jclass"))
	} else {
		this := javaType{code: func() *jen.Statement { return jen.Op("*").Id(c.GoName) }}
		cParams = append(cParams, jen.Id("this").Add(this.cType()))
		callArgs = append(callArgs, this.fromC("this"))
	}
	for i, a := range n.args {
		id := fmt.Sprintf("a%d", i)
		cParams = append(cParams, jen.Id(id).Add(a.cType()))
		callArgs = append(callArgs, a.fromC(id))
	}

	call := jen.Id(holder).Dot("impl").Dot(n.goName).Call(callArgs...)
	ret := n.ret.code()
	var body []jen.Code
	if n.ret.void {
		ret = jen.Qual(jniPath, "Void")
		body = []jen.Code{
			jen.List(jen.Id("tok"), jen.Err()).Op(":=").Add(call),
			jen.Return(jen.Qual(jniPath, "Void").Values(), jen.Id("tok"), jen.Err()),
		}
	} else {
		body = []jen.Code{jen.Return(call)}
	}
	impl := jen.Func().Params(jen.Id("tok").Qual(jniPath, "NoException")).
		Params(ret, jen.Qual(jniPath, "NoException"), jen.Error()).
		Block(body...)
	run := jen.Qual(jniPath, "NativeMethod").Call(
		jen.Id(holder).Dot("vm"),
		jen.Qual(jnicgoPath, "Table").Call(jen.Qual("unsafe", "Pointer").Call(jen.Id("env"))),
		impl,
	)

	f.Comment("//export " + symbol)
	fn := f.Func().Id(symbol).Params(cParams...)
	if n.ret.void {
		fn.Block(run)
	} else {
		fn.Add(n.ret.cType()).Block(
			jen.Id("v").Op(":=").Add(run),
			jen.Return(n.ret.toC("v")),
		)
	}
	f.Line()
}
