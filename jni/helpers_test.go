package jni

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/chazu/gojni/internal/fakejvm"
	"github.com/chazu/gojni/native"
)

// Counter wraps test/Counter.
type Counter struct {
	Object
}

func (*Counter) Signature() string { return "Ltest/Counter;" }

// Failing wraps test/Failing, a Throwable whose toString throws.
type Failing struct {
	Throwable
}

func (*Failing) Signature() string { return "Ltest/Failing;" }

func defineTestClasses(vm *fakejvm.VM) {
	vm.DefineClass(fakejvm.ClassDef{
		Name: "test/Counter",
		Methods: []fakejvm.MethodDef{
			{Name: "<init>", Desc: "(I)V", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				this.SetField("value", args[0])
				return native.Void
			}},
			{Name: "get", Desc: "()I", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return this.Field("value")
			}},
			{Name: "add", Desc: "(I)I", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return native.IntValue(this.Field("value").Int() + args[0].Int())
			}},
			{Name: "fail", Desc: "(Ljava/lang/String;)V", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return t.ThrowNew("java/lang/IllegalStateException", t.Arg(args[0]).String())
			}},
			{Name: "self", Desc: "()Ltest/Counter;", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return t.Return(this)
			}},
			{Name: "twice", Desc: "(I)I", Static: true, Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return native.IntValue(2 * args[0].Int())
			}},
			{Name: "sum", Desc: "(IJ)J", Static: true, Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return native.LongValue(int64(args[0].Int()) + args[1].Long())
			}},
		},
	})
	vm.DefineClass(fakejvm.ClassDef{
		Name:  "test/Failing",
		Super: "java/lang/Throwable",
		Methods: []fakejvm.MethodDef{
			{Name: "<init>", Desc: "()V", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return native.Void
			}},
			{Name: "toString", Desc: "()Ljava/lang/String;", Body: func(t *fakejvm.Thread, this *fakejvm.Instance, args []native.Value) native.Value {
				return t.ThrowNew("java/lang/IllegalStateException", "no description")
			}},
		},
	})
}

func newTestVM(t *testing.T) (*fakejvm.VM, *VM) {
	t.Helper()
	fake := fakejvm.New()
	fake.SetOutput(io.Discard)
	defineTestClasses(fake)
	return fake, NewVM(fake, Options{})
}

// attached runs fn in an attachment scope and fails the test on error.
func attached(t *testing.T, vm *VM, fn func(tok NoException) error) {
	t.Helper()
	if err := vm.WithAttached(AttachArgs{}, fn); err != nil {
		t.Fatalf("WithAttached: %v", err)
	}
}

// mustPanic fails unless fn panics with a value whose text contains want.
func mustPanic(t *testing.T, want string, fn func()) any {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	if got == nil {
		t.Fatalf("expected a panic containing %q", want)
	}
	if msg := fmt.Sprint(got); !strings.Contains(msg, want) {
		t.Fatalf("panic = %q, want it to contain %q", msg, want)
	}
	return got
}

func newCounter(t *testing.T, tok NoException, v int32) (*Counter, NoException) {
	t.Helper()
	c, tok, err := NewObject1[*Counter](tok, Int(v))
	if err != nil {
		t.Fatalf("new Counter: %v", err)
	}
	return c, tok
}

func isThrowable(err error) bool {
	var thr *Throwable
	return errors.As(err, &thr)
}

func fakejvmWithVersion(v native.Version) *fakejvm.VM {
	fake := fakejvm.New()
	fake.SetOutput(io.Discard)
	fake.SetVersion(v)
	return fake
}
