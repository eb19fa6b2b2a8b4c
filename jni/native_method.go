package jni

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/petermattis/goid"

	"github.com/chazu/gojni/native"
)

// NativeMethod runs fn as the body of a Java native method. table is the
// JNIEnv the runtime passed to the method. fn gets a token for a short-lived
// Env over that table; its result is converted to the method's return word.
//
// Errors become Java exceptions when the method returns:
//   - a *Throwable from this Env is rethrown,
//   - an exception left pending (Pending.Propagate) stays pending,
//   - any other error, and any panic, throws java.lang.RuntimeException.
//
// If an exception is already pending on entry fn is not run.
func NativeMethod[R Type](vm *VM, table native.Table, fn func(tok NoException) (R, NoException, error)) (ret native.Value) {
	var zero R
	if table.Call(native.ExceptionCheck).Bool() {
		log.Warning("native method entered with an exception pending")
		return native.Value{}
	}

	runtime.LockOSThread()
	env := &Env{vm: vm, table: table, owner: goid.Get(), external: true, tokenOut: true}
	env.frame = &frame{}
	defer env.endNative()
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("panic in native method: %v", r)
			table.Call(native.ExceptionClear)
			throwRuntimeException(table, fmt.Sprintf("Go panic: %v", r))
			ret = native.Value{}
		}
	}()

	result, _, err := fn(env.issue())
	switch {
	case err == nil:
		if env.pending {
			panic("jni: native method returned a result with an exception pending")
		}
		return nativeResult(env, result)
	case env.pending:
		if !env.propagated {
			log.Warning("native method returned without unwrapping a thrown exception")
		}
	default:
		var thr *Throwable
		if errors.As(err, &thr) && thr.h != nil && thr.h.env == env && thr.usable() {
			env.table.Call(native.Throw, native.RefValue(thr.h.ref))
		} else {
			throwRuntimeException(table, err.Error())
		}
	}
	return nativeResult(env, zero)
}

// FromNative wraps a reference the runtime passed to a native method (the
// receiver or an object argument) as a T. The caller must know the
// reference is a T. A zero ref gives a nil T.
func FromNative[T Reference](tok NoException, ref native.Ref) T {
	env := tok.mustEnv()
	env.check(tok)
	return wrap[T](env.newObject(ref))
}

func nativeResult[R Type](env *Env, r R) native.Value {
	if _, ok := any(r).(Void); ok {
		return native.Void
	}
	return env.toValue(r)
}

func (e *Env) endNative() {
	e.closed = true
	e.gen++
	for f := e.frame; f != nil; f = f.parent {
		f.popped = true
	}
	runtime.UnlockOSThread()
}

func throwRuntimeException(table native.Table, msg string) {
	cls := table.Call(native.FindClass, native.StringValue("java/lang/RuntimeException")).Ref()
	if cls == 0 {
		panic("jni: java/lang/RuntimeException not found")
	}
	if st := table.Call(native.ThrowNew, native.RefValue(cls), native.StringValue(msg)).Status(); st != native.OK {
		panic("jni: ThrowNew failed: " + st.String())
	}
	table.Call(native.DeleteLocalRef, native.RefValue(cls))
}
