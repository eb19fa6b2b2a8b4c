package native

import "math"

// Ref is a raw object handle (jobject). The zero Ref is the runtime's null.
type Ref uintptr

// MethodID is a raw resolved method identifier (jmethodID). Zero means
// resolution failed.
type MethodID uintptr

// Value is one argument to, or the result of, Table.Call.
//
// Most entries trade in jvalue-sized words: handles, method IDs and
// primitive payloads are all stored in the word. Lookup entries take a
// string (FindClass, GetMethodID, ThrowNew), the Call*A family takes an
// argument vector, array-region entries take a vector the backend reads or
// fills in place, and string entries trade UTF-16 code units.
//
// Sub-word primitives occupy the low bits of the word, matching the
// jvalue union layout on little-endian targets.
type Value struct {
	word  uint64
	str   string
	vec   []Value
	chars []uint16
}

// Void is the result of entries that return nothing.
var Void Value

func Word(w uint64) Value          { return Value{word: w} }
func RefValue(r Ref) Value         { return Value{word: uint64(r)} }
func MethodValue(m MethodID) Value { return Value{word: uint64(m)} }
func IntValue(i int32) Value       { return Value{word: uint64(uint32(i))} }
func LongValue(l int64) Value      { return Value{word: uint64(l)} }
func ShortValue(s int16) Value     { return Value{word: uint64(uint16(s))} }
func ByteValue(b int8) Value       { return Value{word: uint64(uint8(b))} }
func CharValue(c uint16) Value     { return Value{word: uint64(c)} }
func FloatValue(f float32) Value   { return Value{word: uint64(math.Float32bits(f))} }
func DoubleValue(d float64) Value  { return Value{word: math.Float64bits(d)} }
func StringValue(s string) Value   { return Value{str: s} }
func Vector(vs []Value) Value      { return Value{vec: vs} }
func Chars(cs []uint16) Value      { return Value{chars: cs} }
func StatusValue(s Status) Value   { return IntValue(int32(s)) }
func VersionValue(v Version) Value { return IntValue(int32(v)) }

// BoolValue encodes a jboolean (JNI_TRUE is 1, JNI_FALSE is 0).
func BoolValue(b bool) Value {
	if b {
		return Value{word: 1}
	}
	return Value{}
}

func (v Value) Word() uint64        { return v.word }
func (v Value) Ref() Ref            { return Ref(v.word) }
func (v Value) MethodID() MethodID  { return MethodID(v.word) }
func (v Value) Int() int32          { return int32(uint32(v.word)) }
func (v Value) Long() int64         { return int64(v.word) }
func (v Value) Short() int16        { return int16(uint16(v.word)) }
func (v Value) Byte() int8          { return int8(uint8(v.word)) }
func (v Value) Char() uint16        { return uint16(v.word) }
func (v Value) Float() float32      { return math.Float32frombits(uint32(v.word)) }
func (v Value) Double() float64     { return math.Float64frombits(v.word) }
func (v Value) Str() string         { return v.str }
func (v Value) Vec() []Value        { return v.vec }
func (v Value) CharSlice() []uint16 { return v.chars }
func (v Value) Status() Status      { return Status(v.Int()) }
func (v Value) Version() Version    { return Version(v.Int()) }

// Bool decodes a jboolean. Any value other than 0 or 1 means the backend
// handed back garbage, which is not recoverable.
func (v Value) Bool() bool {
	switch uint8(v.word) {
	case 0:
		return false
	case 1:
		return true
	default:
		panic("native: unexpected jboolean value")
	}
}
