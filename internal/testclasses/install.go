// Package testclasses holds generated wrappers for a small Java class
// hierarchy, together with in-memory definitions of those classes for
// fakejvm. Tests use it to exercise dispatch through generated bindings
// without a real JVM.
package testclasses

//go:generate go run github.com/chazu/gojni/cmd/jnigen -out . classes.toml

import (
	"github.com/chazu/gojni/internal/fakejvm"
	"github.com/chazu/gojni/native"
)

const pkg = "gojni/test/"

type body = fakejvm.MethodFunc

func value(in *fakejvm.Instance) int32 { return in.Field("value").Int() }

// setValue is the constructor body of SimpleClass.
func setValue(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
	this.SetField("value", args[0])
	return native.Void
}

// superInit returns a constructor that calls the superclass's (I)V
// constructor with its argument plus delta.
func superInit(super string, delta int32) body {
	return func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
		return t.InvokeSpecial(this, pkg+super, "<init>", "(I)V", native.IntValue(args[0].Int()+delta))
	}
}

// addScaled returns a valueWithAdded body computing value + x*scale.
func addScaled(scale int32) body {
	return func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
		return native.IntValue(value(this) + args[0].Int()*scale)
	}
}

func noop(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
	return native.Void
}

// second returns its middle argument.
func second(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
	return args[1]
}

func secondRef(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
	return t.Return(t.Arg(args[1]))
}

func identity(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
	return t.Return(t.Arg(args[0]))
}

// Install defines the gojni/test classes in vm.
func Install(vm *fakejvm.VM) {
	vm.DefineClass(fakejvm.ClassDef{
		Name: pkg + "SimpleClass",
		Methods: []fakejvm.MethodDef{
			{Name: "<init>", Desc: "(I)V", Body: setValue},
			{Name: "valueWithAdded", Desc: "(I)I", Body: addScaled(1)},
			{Name: "combine", Desc: "(Lgojni/test/SimpleClass;)Lgojni/test/SimpleClass;", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				other := t.Arg(args[0])
				if other == nil {
					return t.ThrowNew("java/lang/NullPointerException", "")
				}
				return t.Return(t.New(pkg+"SimpleClass", "(I)V", native.IntValue(value(this)+value(other))))
			}},
		},
	})
	vm.DefineClass(fakejvm.ClassDef{
		Name:  pkg + "SubClassWithMethodOverride",
		Super: pkg + "SimpleClass",
		Methods: []fakejvm.MethodDef{
			{Name: "<init>", Desc: "(I)V", Body: superInit("SimpleClass", 1)},
			{Name: "valueWithAdded", Desc: "(I)I", Body: addScaled(2)},
		},
	})
	vm.DefineClass(fakejvm.ClassDef{
		Name:  pkg + "SubSubClassWithMethodOverride",
		Super: pkg + "SubClassWithMethodOverride",
		Methods: []fakejvm.MethodDef{
			{Name: "<init>", Desc: "(I)V", Body: superInit("SubClassWithMethodOverride", 1)},
			{Name: "valueWithAdded", Desc: "(I)I", Body: addScaled(3)},
		},
	})
	vm.DefineClass(fakejvm.ClassDef{
		Name:  pkg + "SubClassWithMethodAlias",
		Super: pkg + "SimpleClass",
		Methods: []fakejvm.MethodDef{
			{Name: "<init>", Desc: "(I)V", Body: superInit("SimpleClass", 1)},
			{Name: "<init>", Desc: "(IZ)V", Body: superInit("SimpleClass", 0)},
			{Name: "combine", Desc: "(Lgojni/test/SubClassWithMethodAlias;)Lgojni/test/SubClassWithMethodAlias;", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				other := t.Arg(args[0])
				if other == nil {
					return t.ThrowNew("java/lang/NullPointerException", "")
				}
				v := value(this) + value(other)*2
				return t.Return(t.New(pkg+"SubClassWithMethodAlias", "(IZ)V", native.IntValue(v), native.BoolValue(true)))
			}},
		},
	})

	vm.DefineClass(fakejvm.ClassDef{
		Name: pkg + "ClassWithPrimitiveMethods",
		Methods: []fakejvm.MethodDef{
			{Name: "<init>", Desc: "()V", Body: noop},
			{Name: "testFunction", Desc: "()V", Body: noop},
			{Name: "testFunction", Desc: "(Z)Z", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return native.BoolValue(!args[0].Bool())
			}},
			{Name: "testFunction", Desc: "(C)C", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return native.CharValue(args[0].Char() + 1)
			}},
			{Name: "testFunction", Desc: "(B)B", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return native.ByteValue(args[0].Byte() + 2)
			}},
			{Name: "testFunction", Desc: "(S)S", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return native.ShortValue(args[0].Short() + 3)
			}},
			{Name: "testFunction", Desc: "(I)I", Body: plusInt(4)},
			{Name: "testFunction", Desc: "(J)J", Body: plusLong(5)},
			{Name: "testFloatFunction", Desc: "(D)F", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return native.FloatValue(float32(args[0].Double()) + 6)
			}},
			{Name: "testFunction", Desc: "(D)D", Body: plusDouble(7)},
			{Name: "testStaticFunction", Desc: "()V", Static: true, Body: noop},
			{Name: "testStaticFunction", Desc: "(I)I", Static: true, Body: plusInt(4)},
			{Name: "testStaticFunction", Desc: "(J)J", Static: true, Body: plusLong(5)},
			{Name: "testStaticFunction", Desc: "(D)D", Static: true, Body: plusDouble(7)},
		},
	})
	vm.DefineClass(fakejvm.ClassDef{
		Name: pkg + "ClassWithObjectMethods",
		Methods: []fakejvm.MethodDef{
			{Name: "<init>", Desc: "()V", Body: noop},
			{Name: "testFunction", Desc: "(Lgojni/test/SimpleClass;)Lgojni/test/SimpleClass;", Body: identity},
			{Name: "testStaticFunction", Desc: "(Lgojni/test/SimpleClass;)Lgojni/test/SimpleClass;", Static: true, Body: identity},
		},
	})

	const methods = "Lgojni/test/TestMethodsClass;"
	vm.DefineClass(fakejvm.ClassDef{
		Name: pkg + "TestMethodsClass",
		Methods: []fakejvm.MethodDef{
			{Name: "<init>", Desc: "()V", Body: noop},
			{Name: "testFunction", Desc: "(III)I", Body: second},
			{Name: "testFunction", Desc: "(" + methods + methods + methods + ")" + methods, Body: secondRef},
			{Name: "testStaticFunction", Desc: "(JJJ)J", Static: true, Body: second},
			{Name: "testStaticFunction", Desc: "(ZZZ)Z", Static: true, Body: second},
		},
	})

	vm.DefineClass(fakejvm.ClassDef{
		Name:      pkg + "TestInterface",
		Interface: true,
		Methods: []fakejvm.MethodDef{
			{Name: "testInterfaceFunction", Desc: "(I)J"},
		},
	})
	vm.DefineClass(fakejvm.ClassDef{
		Name:       pkg + "TestClass",
		Interfaces: []string{pkg + "TestInterface"},
		Methods: []fakejvm.MethodDef{
			{Name: "<init>", Desc: "()V", Body: noop},
			{Name: "testClassFunction", Desc: "(I)J", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return native.LongValue(int64(args[0].Int()))
			}},
			{Name: "testInterfaceFunction", Desc: "(I)J", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return t.Invoke(this, "testClassFunction", "(I)J", args[0])
			}},
			{Name: "create", Desc: "()Lgojni/test/TestClass;", Static: true, Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return t.Return(t.New(pkg+"TestClass", "()V"))
			}},
		},
	})
}

func plusInt(n int32) body {
	return func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
		return native.IntValue(args[0].Int() + n)
	}
}

func plusLong(n int64) body {
	return func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
		return native.LongValue(args[0].Long() + n)
	}
}

func plusDouble(n float64) body {
	return func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
		return native.DoubleValue(args[0].Double() + n)
	}
}
