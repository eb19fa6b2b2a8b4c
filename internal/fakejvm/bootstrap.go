package fakejvm

import (
	"fmt"

	"github.com/chazu/gojni/native"
)

// throwableClasses lists the bootstrap throwable subclasses and their
// superclasses, in definition order.
var throwableClasses = [][2]string{
	{"java/lang/Exception", "java/lang/Throwable"},
	{"java/lang/Error", "java/lang/Throwable"},
	{"java/lang/RuntimeException", "java/lang/Exception"},
	{"java/lang/InstantiationException", "java/lang/Exception"},
	{"java/lang/NullPointerException", "java/lang/RuntimeException"},
	{"java/lang/IllegalArgumentException", "java/lang/RuntimeException"},
	{"java/lang/IllegalStateException", "java/lang/RuntimeException"},
	{"java/lang/ArrayStoreException", "java/lang/RuntimeException"},
	{"java/lang/NegativeArraySizeException", "java/lang/RuntimeException"},
	{"java/lang/IndexOutOfBoundsException", "java/lang/RuntimeException"},
	{"java/lang/ArrayIndexOutOfBoundsException", "java/lang/IndexOutOfBoundsException"},
	{"java/lang/StringIndexOutOfBoundsException", "java/lang/IndexOutOfBoundsException"},
	{"java/lang/LinkageError", "java/lang/Error"},
	{"java/lang/NoClassDefFoundError", "java/lang/LinkageError"},
	{"java/lang/NoSuchMethodError", "java/lang/LinkageError"},
	{"java/lang/AbstractMethodError", "java/lang/LinkageError"},
	{"java/lang/OutOfMemoryError", "java/lang/Error"},
}

const (
	descString    = "Ljava/lang/String;"
	descThrowable = "Ljava/lang/Throwable;"
)

func (vm *VM) bootstrap() {
	vm.DefineClass(ClassDef{Name: "java/lang/Object", Methods: objectMethods})
	vm.DefineClass(ClassDef{Name: "java/lang/Class", Methods: []MethodDef{
		{Name: "getName", Desc: "()" + descString, Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
			return t.Return(t.NewString(this.mirror.DottedName()))
		}},
	}})
	// Object and Class were loaded before Class existed.
	vm.mu.Lock()
	for _, c := range vm.classes {
		c.mirror.Class = vm.classes["java/lang/Class"]
	}
	vm.mu.Unlock()

	vm.DefineClass(ClassDef{Name: "java/lang/String", Methods: stringMethods})
	vm.DefineClass(ClassDef{Name: "java/lang/Throwable", Methods: append(throwableInits(), throwableMethods...)})
	for _, tc := range throwableClasses {
		vm.DefineClass(ClassDef{Name: tc[0], Super: tc[1], Methods: throwableInits()})
	}
}

var objectMethods = []MethodDef{
	{Name: "<init>", Desc: "()V", Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
		return native.Void
	}},
	{Name: "toString", Desc: "()" + descString, Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
		return t.Return(t.NewString(this.String()))
	}},
	{Name: "equals", Desc: "(Ljava/lang/Object;)Z", Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
		return native.BoolValue(this == t.Arg(args[0]))
	}},
	{Name: "hashCode", Desc: "()I", Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
		return native.IntValue(int32(this.id))
	}},
	{Name: "getClass", Desc: "()Ljava/lang/Class;", Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
		return t.Return(this.Class.mirror)
	}},
}

var stringMethods = []MethodDef{
	{Name: "toString", Desc: "()" + descString, Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
		return t.Return(this)
	}},
	{Name: "length", Desc: "()I", Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
		return native.IntValue(int32(len(this.chars)))
	}},
	{Name: "equals", Desc: "(Ljava/lang/Object;)Z", Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
		other := t.Arg(args[0])
		if other == nil || other.Class != this.Class || len(other.chars) != len(this.chars) {
			return native.BoolValue(false)
		}
		for i, c := range this.chars {
			if other.chars[i] != c {
				return native.BoolValue(false)
			}
		}
		return native.BoolValue(true)
	}},
	{Name: "hashCode", Desc: "()I", Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
		var h int32
		for _, c := range this.chars {
			h = 31*h + int32(c)
		}
		return native.IntValue(h)
	}},
}

// throwableInits returns the three standard constructors. Every throwable
// class declares its own, since constructors are not inherited.
func throwableInits() []MethodDef {
	return []MethodDef{
		{Name: "<init>", Desc: "()V", Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
			return native.Void
		}},
		{Name: "<init>", Desc: "(" + descString + ")V", Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
			this.SetRef("message", t.Arg(args[0]))
			return native.Void
		}},
		{Name: "<init>", Desc: "(" + descString + descThrowable + ")V", Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
			this.SetRef("message", t.Arg(args[0]))
			this.SetRef("cause", t.Arg(args[1]))
			return native.Void
		}},
	}
}

var throwableMethods = []MethodDef{
	{Name: "getMessage", Desc: "()" + descString, Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
		return t.Return(this.Ref("message"))
	}},
	{Name: "getCause", Desc: "()" + descThrowable, Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
		return t.Return(this.Ref("cause"))
	}},
	{Name: "toString", Desc: "()" + descString, Body: func(t *Thread, this *Instance, args []native.Value) native.Value {
		s := this.Class.DottedName()
		if msg := this.Ref("message"); msg != nil {
			s = fmt.Sprintf("%s: %s", s, msg)
		}
		return t.Return(t.NewString(s))
	}},
}
