package jni

import "github.com/chazu/gojni/native"

// Cast checks at runtime that obj is an instance of T and returns it as a
// T sharing obj's reference. A null obj casts to a nil T. If the object is
// not a T the error is a *ClassCastError; if T's class cannot be loaded it
// is the *Throwable the lookup threw.
//
// Casts towards an ancestor never need this: use the wrapper's AsX methods.
func Cast[T Reference](tok NoException, obj Reference) (T, NoException, error) {
	var zero T
	env := tok.mustEnv()
	env.check(tok)
	if IsNull(obj) {
		return zero, tok, nil
	}
	o := obj.AsObject()
	ref := o.use(env)

	env.take(tok)
	path := ClassPath(SignatureOf[T]())
	cls, thr := env.findClass(path)
	if thr != nil {
		return zero, env.issue(), thr
	}
	ok := env.table.Call(native.IsInstanceOf, native.RefValue(ref), native.RefValue(cls)).Bool()
	env.deleteLocal(cls)
	if !ok {
		return zero, env.issue(), &ClassCastError{Target: path}
	}
	return wrap[T](*o), env.issue(), nil
}

// UncheckedCast reinterprets obj as a T without asking the runtime. The
// caller must already know obj is a T, for instance because it was just
// constructed as one; dispatching on a wrongly cast reference resolves
// methods against the wrong class.
func UncheckedCast[T Reference](obj Reference) T {
	if IsNull(obj) {
		var zero T
		return zero
	}
	return wrap[T](*obj.AsObject())
}
