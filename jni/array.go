package jni

import (
	"fmt"

	"github.com/chazu/gojni/native"
)

// Array wraps a Java array with element type T, which is a primitive type
// or a wrapper pointer. Array[T] is itself a wrapper, so arrays nest:
// *Array[*Array[Int]] is int[][].
type Array[T Type] struct {
	Object
}

func (*Array[T]) Signature() string { return "[" + SignatureOf[T]() }

// NewArray creates an array of n elements, all zero or null. A negative n
// throws NegativeArraySizeException; one larger than a jint throws
// OutOfMemoryError.
func NewArray[T Type](tok NoException, n int) (*Array[T], NoException, error) {
	env := tok.mustEnv()
	env.take(tok)
	cls, msg := "java/lang/OutOfMemoryError", "Requested array size exceeds VM limit"
	if n < 0 {
		cls, msg = "java/lang/NegativeArraySizeException", fmt.Sprint(n)
	}
	size, thr := env.jint(n, cls, msg)
	if thr != nil {
		return nil, env.issue(), thr
	}
	kind := kindOf[T]()
	if kind != native.KindObject {
		res := env.table.Call(kind.NewArrayEntry(), native.IntValue(size))
		return finish[*Array[T]](env, res)
	}
	elem, thr := env.findClass(ClassPath(SignatureOf[T]()))
	if thr != nil {
		return nil, env.issue(), thr
	}
	res := env.table.Call(native.NewObjectArray, native.IntValue(size), native.RefValue(elem), native.RefValue(0))
	env.deleteLocal(elem)
	return finish[*Array[T]](env, res)
}

// ArrayOf creates an array holding elems.
func ArrayOf[T Type](tok NoException, elems []T) (*Array[T], NoException, error) {
	arr, tok, err := NewArray[T](tok, len(elems))
	if err != nil || len(elems) == 0 {
		return arr, tok, err
	}
	env := tok.mustEnv()
	if kind := kindOf[T](); kind != native.KindObject {
		buf := make([]native.Value, len(elems))
		for i, e := range elems {
			buf[i] = env.toValue(e)
		}
		env.take(tok)
		res := env.table.Call(kind.SetRegionEntry(), native.RefValue(arr.h.ref), native.IntValue(0), native.Vector(buf))
		if _, tok, err = finish[Void](env, res); err != nil {
			arr.Delete()
			return nil, tok, err
		}
		return arr, tok, nil
	}
	for i, e := range elems {
		if tok, err = arr.Set(tok, i, e); err != nil {
			arr.Delete()
			return nil, tok, err
		}
	}
	return arr, tok, nil
}

// Len returns the number of elements. It panics with ErrNullReceiver if a
// is null.
func (a *Array[T]) Len(tok NoException) int {
	env, ref := borrowRef(tok, a)
	return int(env.table.Call(native.GetArrayLength, native.RefValue(ref)).Int())
}

// Get returns element i. An index out of range comes back as the thrown
// ArrayIndexOutOfBoundsException.
func (a *Array[T]) Get(tok NoException, i int) (T, NoException, error) {
	env, ref := borrowRef(tok, a)
	env.take(tok)
	idx, thr := env.index(i)
	if thr != nil {
		var zero T
		return zero, env.issue(), thr
	}
	kind := kindOf[T]()
	if kind == native.KindObject {
		res := env.table.Call(native.GetObjectArrayElement, native.RefValue(ref), native.IntValue(idx))
		return finish[T](env, res)
	}
	buf := make([]native.Value, 1)
	env.table.Call(kind.GetRegionEntry(), native.RefValue(ref), native.IntValue(idx), native.Vector(buf))
	return finish[T](env, buf[0])
}

// Set stores v at index i. Storing an object of the wrong runtime class
// throws ArrayStoreException.
func (a *Array[T]) Set(tok NoException, i int, v T) (NoException, error) {
	env, ref := borrowRef(tok, a)
	val := env.toValue(v)
	env.take(tok)
	idx, thr := env.index(i)
	if thr != nil {
		return env.issue(), thr
	}
	var res native.Value
	if kind := kindOf[T](); kind == native.KindObject {
		res = env.table.Call(native.SetObjectArrayElement, native.RefValue(ref), native.IntValue(idx), val)
	} else {
		res = env.table.Call(kind.SetRegionEntry(), native.RefValue(ref), native.IntValue(idx), native.Vector([]native.Value{val}))
	}
	_, tok, err := finish[Void](env, res)
	return tok, err
}

// Slice copies every element into a Go slice. For object arrays each
// element is a new local reference.
func (a *Array[T]) Slice(tok NoException) ([]T, NoException, error) {
	n := a.Len(tok)
	out := make([]T, n)
	kind := kindOf[T]()
	if kind == native.KindObject {
		var err error
		for i := range out {
			if out[i], tok, err = a.Get(tok, i); err != nil {
				return nil, tok, err
			}
		}
		return out, tok, nil
	}

	env, ref := borrowRef(tok, a)
	env.take(tok)
	buf := make([]native.Value, n)
	env.table.Call(kind.GetRegionEntry(), native.RefValue(ref), native.IntValue(0), native.Vector(buf))
	if thr := env.catch(); thr != nil {
		return nil, env.issue(), thr
	}
	for i, v := range buf {
		out[i] = fromValue[T](env, v)
	}
	return out, env.issue(), nil
}
