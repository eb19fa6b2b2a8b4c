package jni

import (
	"reflect"

	"github.com/chazu/gojni/native"
)

// frame is one local reference frame. The base frame of an Env is popped
// when the Env closes.
type frame struct {
	parent *frame
	popped bool
}

// handle is the shared state behind every copy of an Object.
type handle struct {
	env      *Env
	ref      native.Ref
	frame    *frame
	released bool
}

// Object is a local reference to a java.lang.Object, and the embedded base
// of every wrapper type. The zero Object is null.
//
// An Object is valid only on the goroutine that attached its Env, until the
// first of: the Env is closed, its local frame is popped, or Delete is
// called. Using it afterwards panics.
//
// Objects have no Equal method; use IsSameObject.
type Object struct {
	h *handle
}

// Reference is implemented by pointers to Object and to every wrapper
// type. A nil pointer is the null reference.
type Reference interface {
	Type
	AsObject() *Object
}

func (*Object) Signature() string { return "Ljava/lang/Object;" }

// AsObject returns the most general form of the reference.
func (o *Object) AsObject() *Object { return o }

// IsNull reports whether r is the null reference: a nil interface, a nil
// wrapper pointer, or a wrapper around the zero Object.
func IsNull(r Reference) bool {
	if r == nil {
		return true
	}
	if v := reflect.ValueOf(r); v.Kind() == reflect.Pointer && v.IsNil() {
		return true
	}
	return r.AsObject().h == nil
}

// use validates o for a call on env and returns its raw reference.
func (o *Object) use(env *Env) native.Ref {
	h := o.h
	if h.env != env {
		panic("jni: reference belongs to another Env")
	}
	env.checkOpen()
	switch {
	case h.released:
		panic("jni: use of a deleted reference")
	case h.frame.popped:
		panic("jni: use of a reference whose local frame was popped")
	}
	return h.ref
}

// borrow validates tok without consuming it and returns o's raw reference.
// It panics with ErrNullReceiver if o is null.
func (o *Object) borrow(tok NoException) (*Env, native.Ref) {
	env := tok.mustEnv()
	env.check(tok)
	if o == nil || o.h == nil {
		panic(ErrNullReceiver)
	}
	return env, o.use(env)
}

// borrowRef is borrow for any wrapper, including a nil wrapper pointer.
//
// The accessors built on it (Len, Value, Class, Superclass, IsSubtypeOf)
// cannot throw and return no error, so a null receiver is a programming
// error and panics. Calls that may throw return ErrNullReceiver instead.
func borrowRef(tok NoException, r Reference) (*Env, native.Ref) {
	if IsNull(r) {
		tok.mustEnv().check(tok)
		panic(ErrNullReceiver)
	}
	return r.AsObject().borrow(tok)
}

// Delete releases the local reference early. Every copy of the Object,
// including wrappers sharing it, becomes unusable. Deleting null is a
// no-op.
func (o *Object) Delete() {
	if o == nil || o.h == nil || o.h.released {
		return
	}
	env := o.h.env
	ref := o.use(env)
	env.deleteLocal(ref)
	o.h.released = true
}

// IsSameObject reports whether o and other denote the same Java object.
// Two nulls are the same object.
func (o *Object) IsSameObject(tok NoException, other Reference) bool {
	env := tok.mustEnv()
	env.check(tok)
	a, b := env.toValue(o), env.toValue(other)
	return env.table.Call(native.IsSameObject, a, b).Bool()
}

// IsInstanceOf reports whether o can be cast to cls. Null is an instance of
// every class.
func (o *Object) IsInstanceOf(tok NoException, cls *Class) bool {
	env := tok.mustEnv()
	env.check(tok)
	if IsNull(o) {
		return true
	}
	_, c := borrowRef(tok, cls)
	return env.table.Call(native.IsInstanceOf, native.RefValue(o.use(env)), native.RefValue(c)).Bool()
}

// Class returns o's runtime class. It panics with ErrNullReceiver if o is
// null.
func (o *Object) Class(tok NoException) *Class {
	env, ref := borrowRef(tok, o)
	cls := env.table.Call(native.GetObjectClass, native.RefValue(ref)).Ref()
	return &Class{Object: env.newObject(cls)}
}

// NewLocalRef returns an independent local reference to the same object in
// the current frame.
func (o *Object) NewLocalRef(tok NoException) *Object {
	env := tok.mustEnv()
	env.check(tok)
	if IsNull(o) {
		return nil
	}
	ref := env.table.Call(native.NewLocalRef, native.RefValue(o.use(env))).Ref()
	obj := env.newObject(ref)
	return &obj
}

// ToString calls toString and converts the result to a Go string. A null
// result converts to "null".
func (o *Object) ToString(tok NoException) (string, NoException, error) {
	s, tok, err := CallMethod0[*String](tok, o, "toString")
	if err != nil {
		return "", tok, err
	}
	if s == nil {
		return "null", tok, nil
	}
	defer s.Delete()
	return s.Value(tok), tok, nil
}

// Equals calls equals(Object).
func (o *Object) Equals(tok NoException, other Reference) (bool, NoException, error) {
	var arg *Object
	if !IsNull(other) {
		arg = other.AsObject()
	}
	eq, tok, err := CallMethod1[Boolean](tok, o, "equals", arg)
	return bool(eq), tok, err
}

// HashCode calls hashCode().
func (o *Object) HashCode(tok NoException) (int32, NoException, error) {
	h, tok, err := CallMethod0[Int](tok, o, "hashCode")
	return int32(h), tok, err
}
