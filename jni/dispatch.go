package jni

import "github.com/chazu/gojni/native"

// Method calls are generic over the result type R and the argument types;
// the descriptor is derived from those types, so a wrapper declares a method
// just by naming it:
//
//	func (s *SimpleClass) Value(tok jni.NoException) (jni.Int, jni.NoException, error) {
//		return jni.CallMethod0[jni.Int](tok, s, "value")
//	}
//
// Calls resolve virtually against the receiver's runtime class, so an
// override in a subclass wins even when called through an ancestor's
// wrapper. A Java exception comes back as a *Throwable error with a fresh
// token. A method that does not exist with the derived descriptor is a bug
// in the wrapper and panics with a *MethodMismatchError.

func callMethod[R Type](tok NoException, recv Reference, name, desc string, args []Type) (R, NoException, error) {
	var zero R
	env := tok.mustEnv()
	env.check(tok)
	if IsNull(recv) {
		return zero, tok, ErrNullReceiver
	}
	this := recv.AsObject().use(env)
	vals := env.toValues(args)

	env.take(tok)
	cls := env.table.Call(native.GetObjectClass, native.RefValue(this)).Ref()
	mid := env.table.Call(native.GetMethodID, native.RefValue(cls),
		native.StringValue(name), native.StringValue(desc)).MethodID()
	if mid == 0 {
		env.mismatch(cls, name, desc, false)
	}
	env.deleteLocal(cls)
	res := env.table.Call(kindOf[R]().CallEntry(),
		native.RefValue(this), native.MethodValue(mid), native.Vector(vals))
	return finish[R](env, res)
}

func callStatic[C Reference, R Type](tok NoException, name, desc string, args []Type) (R, NoException, error) {
	var zero R
	env := tok.mustEnv()
	env.check(tok)
	vals := env.toValues(args)

	env.take(tok)
	cls, thr := env.findClass(ClassPath(SignatureOf[C]()))
	if thr != nil {
		return zero, env.issue(), thr
	}
	mid := env.table.Call(native.GetStaticMethodID, native.RefValue(cls),
		native.StringValue(name), native.StringValue(desc)).MethodID()
	if mid == 0 {
		env.mismatch(cls, name, desc, true)
	}
	res := env.table.Call(kindOf[R]().CallStaticEntry(),
		native.RefValue(cls), native.MethodValue(mid), native.Vector(vals))
	env.deleteLocal(cls)
	return finish[R](env, res)
}

func newObject[C Reference](tok NoException, desc string, args []Type) (C, NoException, error) {
	var zero C
	env := tok.mustEnv()
	env.check(tok)
	vals := env.toValues(args)

	env.take(tok)
	cls, thr := env.findClass(ClassPath(SignatureOf[C]()))
	if thr != nil {
		return zero, env.issue(), thr
	}
	mid := env.table.Call(native.GetMethodID, native.RefValue(cls),
		native.StringValue("<init>"), native.StringValue(desc)).MethodID()
	if mid == 0 {
		env.mismatch(cls, "<init>", desc, false)
	}
	res := env.table.Call(native.NewObjectA, native.RefValue(cls), native.MethodValue(mid), native.Vector(vals))
	env.deleteLocal(cls)
	return finish[C](env, res)
}

// CallMethod0 calls the instance method name()R on recv. A null recv
// returns ErrNullReceiver and hands tok back.
func CallMethod0[R Type](tok NoException, recv Reference, name string) (R, NoException, error) {
	return callMethod[R](tok, recv, name, MethodDescriptor0[R](), nil)
}

func CallMethod1[R, A0 Type](tok NoException, recv Reference, name string, a0 A0) (R, NoException, error) {
	return callMethod[R](tok, recv, name, MethodDescriptor1[R, A0](), []Type{a0})
}

func CallMethod2[R, A0, A1 Type](tok NoException, recv Reference, name string, a0 A0, a1 A1) (R, NoException, error) {
	return callMethod[R](tok, recv, name, MethodDescriptor2[R, A0, A1](), []Type{a0, a1})
}

func CallMethod3[R, A0, A1, A2 Type](tok NoException, recv Reference, name string, a0 A0, a1 A1, a2 A2) (R, NoException, error) {
	return callMethod[R](tok, recv, name, MethodDescriptor3[R, A0, A1, A2](), []Type{a0, a1, a2})
}

func CallMethod4[R, A0, A1, A2, A3 Type](tok NoException, recv Reference, name string, a0 A0, a1 A1, a2 A2, a3 A3) (R, NoException, error) {
	return callMethod[R](tok, recv, name, MethodDescriptor4[R, A0, A1, A2, A3](), []Type{a0, a1, a2, a3})
}

// CallStaticMethod0 calls the static method C.name()R. The class is looked
// up from C's signature on every call; a missing class comes back as the
// *Throwable FindClass threw.
func CallStaticMethod0[C Reference, R Type](tok NoException, name string) (R, NoException, error) {
	return callStatic[C, R](tok, name, MethodDescriptor0[R](), nil)
}

func CallStaticMethod1[C Reference, R, A0 Type](tok NoException, name string, a0 A0) (R, NoException, error) {
	return callStatic[C, R](tok, name, MethodDescriptor1[R, A0](), []Type{a0})
}

func CallStaticMethod2[C Reference, R, A0, A1 Type](tok NoException, name string, a0 A0, a1 A1) (R, NoException, error) {
	return callStatic[C, R](tok, name, MethodDescriptor2[R, A0, A1](), []Type{a0, a1})
}

func CallStaticMethod3[C Reference, R, A0, A1, A2 Type](tok NoException, name string, a0 A0, a1 A1, a2 A2) (R, NoException, error) {
	return callStatic[C, R](tok, name, MethodDescriptor3[R, A0, A1, A2](), []Type{a0, a1, a2})
}

func CallStaticMethod4[C Reference, R, A0, A1, A2, A3 Type](tok NoException, name string, a0 A0, a1 A1, a2 A2, a3 A3) (R, NoException, error) {
	return callStatic[C, R](tok, name, MethodDescriptor4[R, A0, A1, A2, A3](), []Type{a0, a1, a2, a3})
}

// NewObject0 runs C's no-argument constructor.
func NewObject0[C Reference](tok NoException) (C, NoException, error) {
	return newObject[C](tok, MethodDescriptor0[Void](), nil)
}

func NewObject1[C Reference, A0 Type](tok NoException, a0 A0) (C, NoException, error) {
	return newObject[C](tok, MethodDescriptor1[Void, A0](), []Type{a0})
}

func NewObject2[C Reference, A0, A1 Type](tok NoException, a0 A0, a1 A1) (C, NoException, error) {
	return newObject[C](tok, MethodDescriptor2[Void, A0, A1](), []Type{a0, a1})
}

func NewObject3[C Reference, A0, A1, A2 Type](tok NoException, a0 A0, a1 A1, a2 A2) (C, NoException, error) {
	return newObject[C](tok, MethodDescriptor3[Void, A0, A1, A2](), []Type{a0, a1, a2})
}

func NewObject4[C Reference, A0, A1, A2, A3 Type](tok NoException, a0 A0, a1 A1, a2 A2, a3 A3) (C, NoException, error) {
	return newObject[C](tok, MethodDescriptor4[Void, A0, A1, A2, A3](), []Type{a0, a1, a2, a3})
}
