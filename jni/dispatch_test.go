package jni

import (
	"errors"
	"strings"
	"testing"

	"github.com/chazu/gojni/native"
)

func TestDispatch_InstanceMethods(t *testing.T) {
	_, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		c, tok := newCounter(t, tok, 5)

		v, tok, err := CallMethod0[Int](tok, c, "get")
		if err != nil || v != 5 {
			t.Fatalf("get = %d, %v", v, err)
		}
		v, tok, err = CallMethod1[Int](tok, c, "add", Int(3))
		if err != nil || v != 8 {
			t.Fatalf("add = %d, %v", v, err)
		}
		self, tok, err := CallMethod0[*Counter](tok, c, "self")
		if err != nil {
			return err
		}
		if !self.IsSameObject(tok, c) {
			t.Error("self returned a different object")
		}
		if self.IsSameObject(tok, nil) {
			t.Error("object is the same as null")
		}
		return nil
	})
}

func TestDispatch_StaticMethods(t *testing.T) {
	_, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		v, tok, err := CallStaticMethod1[*Counter, Int](tok, "twice", Int(21))
		if err != nil || v != 42 {
			t.Fatalf("twice = %d, %v", v, err)
		}
		sum, _, err := CallStaticMethod2[*Counter, Long](tok, "sum", Int(1), Long(1<<40))
		if err != nil || sum != 1<<40+1 {
			t.Fatalf("sum = %d, %v", sum, err)
		}
		return nil
	})
}

func TestDispatch_NullReceiver(t *testing.T) {
	fake, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		before := fake.CurrentThread().Calls(native.GetObjectClass)
		var c *Counter
		_, got, err := CallMethod0[Int](tok, c, "get")
		if !errors.Is(err, ErrNullReceiver) {
			t.Fatalf("err = %v, want ErrNullReceiver", err)
		}
		if got != tok {
			t.Error("null receiver did not hand the token back")
		}
		if after := fake.CurrentThread().Calls(native.GetObjectClass); after != before {
			t.Error("null receiver reached the VM")
		}
		_, _, err = CallMethod0[Int](got, (*Object)(nil), "hashCode")
		if !errors.Is(err, ErrNullReceiver) {
			t.Fatalf("err = %v, want ErrNullReceiver", err)
		}
		return nil
	})
}

func TestDispatch_MethodMismatchPanics(t *testing.T) {
	tests := []struct {
		name string
		call func(tok NoException, c *Counter)
		want string
	}{
		{
			name: "unknown method",
			call: func(tok NoException, c *Counter) { CallMethod0[Int](tok, c, "nope") },
			want: "jni: no method nope()I on test.Counter",
		},
		{
			name: "wrong argument type",
			call: func(tok NoException, c *Counter) { CallMethod1[Int](tok, c, "add", Long(1)) },
			want: "jni: no method add(J)I on test.Counter",
		},
		{
			name: "wrong return type",
			call: func(tok NoException, c *Counter) { CallMethod0[Long](tok, c, "get") },
			want: "jni: no method get()J on test.Counter",
		},
		{
			name: "static",
			call: func(tok NoException, c *Counter) { CallStaticMethod0[*Counter, Int](tok, "nope") },
			want: "jni: no static method nope()I on test.Counter",
		},
		{
			name: "constructor",
			call: func(tok NoException, c *Counter) { NewObject0[*Counter](tok) },
			want: "jni: no constructor <init>()V on test.Counter",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, vm := newTestVM(t)
			attached(t, vm, func(tok NoException) error {
				c, tok := newCounter(t, tok, 1)
				r := mustPanic(t, tt.want, func() { tt.call(tok, c) })
				var mm *MethodMismatchError
				if err, ok := r.(error); !ok || !errors.As(err, &mm) {
					t.Errorf("panic value %T is not a *MethodMismatchError", r)
				}
				return nil
			})
		})
	}
}

func TestDispatch_MissingClass(t *testing.T) {
	_, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		_, tok, err := CallStaticMethod0[*missing, Void](tok, "run")
		if !isThrowable(err) || !strings.Contains(err.Error(), "NoClassDefFoundError") {
			t.Fatalf("err = %v, want NoClassDefFoundError", err)
		}
		_, _, err = NewObject0[*missing](tok)
		if !isThrowable(err) {
			t.Fatalf("err = %v, want a *Throwable", err)
		}
		return nil
	})
}

func TestDispatch_ObjectMethods(t *testing.T) {
	_, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		c, tok := newCounter(t, tok, 1)
		s, tok, err := c.ToString(tok)
		if err != nil {
			return err
		}
		if !strings.HasPrefix(s, "test.Counter@") {
			t.Errorf("toString = %q", s)
		}
		eq, tok, err := c.Equals(tok, c)
		if err != nil || !eq {
			t.Errorf("equals(self) = %t, %v", eq, err)
		}
		eq, tok, err = c.Equals(tok, nil)
		if err != nil || eq {
			t.Errorf("equals(null) = %t, %v", eq, err)
		}

		a, tok, err := NewString(tok, "same")
		if err != nil {
			return err
		}
		b, tok, err := NewString(tok, "same")
		if err != nil {
			return err
		}
		if a.IsSameObject(tok, b) {
			t.Error("distinct strings are the same object")
		}
		eq, tok, err = a.Equals(tok, b)
		if err != nil || !eq {
			t.Errorf("String.equals = %t, %v", eq, err)
		}
		ha, tok, _ := a.HashCode(tok)
		hb, _, _ := b.HashCode(tok)
		if ha != hb {
			t.Errorf("hash codes differ: %d, %d", ha, hb)
		}
		return nil
	})
}
