package jni

import (
	"fmt"
	"reflect"

	"github.com/chazu/gojni/native"
)

// Type is implemented by every Go type that can appear in a method
// signature: the primitive types below, Void, and wrapper pointers.
//
// Signature must not dereference its receiver. Descriptors are derived from
// zero values, and the zero value of a wrapper type is a nil pointer.
type Type interface {
	Signature() string
}

// Java primitive types.
type (
	Boolean bool
	Byte    int8
	Char    uint16
	Short   int16
	Int     int32
	Long    int64
	Float   float32
	Double  float64
)

// Void is the result type of methods that return nothing.
type Void struct{}

func (Boolean) Signature() string { return "Z" }
func (Byte) Signature() string    { return "B" }
func (Char) Signature() string    { return "C" }
func (Short) Signature() string   { return "S" }
func (Int) Signature() string     { return "I" }
func (Long) Signature() string    { return "J" }
func (Float) Signature() string   { return "F" }
func (Double) Signature() string  { return "D" }
func (Void) Signature() string    { return "V" }

// SignatureOf returns the descriptor of T.
func SignatureOf[T Type]() string {
	var zero T
	return zero.Signature()
}

func kindOf[T Type]() native.Kind {
	var zero T
	switch any(zero).(type) {
	case Void:
		return native.KindVoid
	case Boolean:
		return native.KindBoolean
	case Byte:
		return native.KindByte
	case Char:
		return native.KindChar
	case Short:
		return native.KindShort
	case Int:
		return native.KindInt
	case Long:
		return native.KindLong
	case Float:
		return native.KindFloat
	case Double:
		return native.KindDouble
	}
	return native.KindObject
}

// toValue converts one argument to its jvalue word. Null wrappers become
// the runtime's null.
func (e *Env) toValue(arg Type) native.Value {
	switch a := arg.(type) {
	case nil:
		return native.RefValue(0)
	case Boolean:
		return native.BoolValue(bool(a))
	case Byte:
		return native.ByteValue(int8(a))
	case Char:
		return native.CharValue(uint16(a))
	case Short:
		return native.ShortValue(int16(a))
	case Int:
		return native.IntValue(int32(a))
	case Long:
		return native.LongValue(int64(a))
	case Float:
		return native.FloatValue(float32(a))
	case Double:
		return native.DoubleValue(float64(a))
	case Reference:
		if IsNull(a) {
			return native.RefValue(0)
		}
		return native.RefValue(a.AsObject().use(e))
	}
	panic(fmt.Sprintf("jni: %T cannot be passed as an argument", arg))
}

func (e *Env) toValues(args []Type) []native.Value {
	vals := make([]native.Value, len(args))
	for i, a := range args {
		vals[i] = e.toValue(a)
	}
	return vals
}

// fromValue converts a raw result to R. Object results become new wrappers
// owned by the current local frame; null becomes a nil wrapper.
func fromValue[R Type](e *Env, v native.Value) R {
	var r R
	switch p := any(&r).(type) {
	case *Void:
	case *Boolean:
		*p = Boolean(v.Bool())
	case *Byte:
		*p = Byte(v.Byte())
	case *Char:
		*p = Char(v.Char())
	case *Short:
		*p = Short(v.Short())
	case *Int:
		*p = Int(v.Int())
	case *Long:
		*p = Long(v.Long())
	case *Float:
		*p = Float(v.Float())
	case *Double:
		*p = Double(v.Double())
	default:
		r = wrap[R](e.newObject(v.Ref()))
	}
	return r
}

var objectType = reflect.TypeFor[Object]()
