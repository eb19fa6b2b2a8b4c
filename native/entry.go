// Package native is the raw call shim between Go and a JVM's native
// interface.
//
// Every JNI function the rest of the module needs is named by an Entry,
// the index of that function in the JNINativeInterface table. A Table is one
// thread's JNIEnv; Table.Call is the single place where the function-table
// indirection happens. Nothing in this package validates arguments or
// inspects the pending-exception slot; that is the job of package jni.
package native

import "fmt"

// Entry selects one function in the JNI function table. The values are the
// table indices fixed by the JNI specification.
type Entry int

// JNI function-table indices.
const (
	GetVersion          Entry = 4
	FindClass           Entry = 6
	GetSuperclass       Entry = 10
	IsAssignableFrom    Entry = 11
	Throw               Entry = 13
	ThrowNew            Entry = 14
	ExceptionOccurred   Entry = 15
	ExceptionDescribe   Entry = 16
	ExceptionClear      Entry = 17
	PushLocalFrame      Entry = 19
	PopLocalFrame       Entry = 20
	DeleteLocalRef      Entry = 23
	IsSameObject        Entry = 24
	NewLocalRef         Entry = 25
	EnsureLocalCapacity Entry = 26
	NewObjectA          Entry = 30
	GetObjectClass      Entry = 31
	IsInstanceOf        Entry = 32
	GetMethodID         Entry = 33

	CallObjectMethodA  Entry = 36
	CallBooleanMethodA Entry = 39
	CallByteMethodA    Entry = 42
	CallCharMethodA    Entry = 45
	CallShortMethodA   Entry = 48
	CallIntMethodA     Entry = 51
	CallLongMethodA    Entry = 54
	CallFloatMethodA   Entry = 57
	CallDoubleMethodA  Entry = 60
	CallVoidMethodA    Entry = 63

	GetStaticMethodID Entry = 113

	CallStaticObjectMethodA  Entry = 116
	CallStaticBooleanMethodA Entry = 119
	CallStaticByteMethodA    Entry = 122
	CallStaticCharMethodA    Entry = 125
	CallStaticShortMethodA   Entry = 128
	CallStaticIntMethodA     Entry = 131
	CallStaticLongMethodA    Entry = 134
	CallStaticFloatMethodA   Entry = 137
	CallStaticDoubleMethodA  Entry = 140
	CallStaticVoidMethodA    Entry = 143

	NewString       Entry = 163
	GetStringLength Entry = 164
	GetArrayLength  Entry = 171

	NewObjectArray        Entry = 172
	GetObjectArrayElement Entry = 173
	SetObjectArrayElement Entry = 174

	NewBooleanArray Entry = 175
	NewByteArray    Entry = 176
	NewCharArray    Entry = 177
	NewShortArray   Entry = 178
	NewIntArray     Entry = 179
	NewLongArray    Entry = 180
	NewFloatArray   Entry = 181
	NewDoubleArray  Entry = 182

	GetBooleanArrayRegion Entry = 199
	GetByteArrayRegion    Entry = 200
	GetCharArrayRegion    Entry = 201
	GetShortArrayRegion   Entry = 202
	GetIntArrayRegion     Entry = 203
	GetLongArrayRegion    Entry = 204
	GetFloatArrayRegion   Entry = 205
	GetDoubleArrayRegion  Entry = 206

	SetBooleanArrayRegion Entry = 207
	SetByteArrayRegion    Entry = 208
	SetCharArrayRegion    Entry = 209
	SetShortArrayRegion   Entry = 210
	SetIntArrayRegion     Entry = 211
	SetLongArrayRegion    Entry = 212
	SetFloatArrayRegion   Entry = 213
	SetDoubleArrayRegion  Entry = 214

	GetStringRegion Entry = 220
	ExceptionCheck  Entry = 228
)

var entryNames = map[Entry]string{
	GetVersion:          "GetVersion",
	FindClass:           "FindClass",
	GetSuperclass:       "GetSuperclass",
	IsAssignableFrom:    "IsAssignableFrom",
	Throw:               "Throw",
	ThrowNew:            "ThrowNew",
	ExceptionOccurred:   "ExceptionOccurred",
	ExceptionDescribe:   "ExceptionDescribe",
	ExceptionClear:      "ExceptionClear",
	PushLocalFrame:      "PushLocalFrame",
	PopLocalFrame:       "PopLocalFrame",
	DeleteLocalRef:      "DeleteLocalRef",
	IsSameObject:        "IsSameObject",
	NewLocalRef:         "NewLocalRef",
	EnsureLocalCapacity: "EnsureLocalCapacity",
	NewObjectA:          "NewObjectA",
	GetObjectClass:      "GetObjectClass",
	IsInstanceOf:        "IsInstanceOf",
	GetMethodID:         "GetMethodID",

	CallObjectMethodA:  "CallObjectMethodA",
	CallBooleanMethodA: "CallBooleanMethodA",
	CallByteMethodA:    "CallByteMethodA",
	CallCharMethodA:    "CallCharMethodA",
	CallShortMethodA:   "CallShortMethodA",
	CallIntMethodA:     "CallIntMethodA",
	CallLongMethodA:    "CallLongMethodA",
	CallFloatMethodA:   "CallFloatMethodA",
	CallDoubleMethodA:  "CallDoubleMethodA",
	CallVoidMethodA:    "CallVoidMethodA",

	GetStaticMethodID: "GetStaticMethodID",

	CallStaticObjectMethodA:  "CallStaticObjectMethodA",
	CallStaticBooleanMethodA: "CallStaticBooleanMethodA",
	CallStaticByteMethodA:    "CallStaticByteMethodA",
	CallStaticCharMethodA:    "CallStaticCharMethodA",
	CallStaticShortMethodA:   "CallStaticShortMethodA",
	CallStaticIntMethodA:     "CallStaticIntMethodA",
	CallStaticLongMethodA:    "CallStaticLongMethodA",
	CallStaticFloatMethodA:   "CallStaticFloatMethodA",
	CallStaticDoubleMethodA:  "CallStaticDoubleMethodA",
	CallStaticVoidMethodA:    "CallStaticVoidMethodA",

	NewString:             "NewString",
	GetStringLength:       "GetStringLength",
	GetArrayLength:        "GetArrayLength",
	NewObjectArray:        "NewObjectArray",
	GetObjectArrayElement: "GetObjectArrayElement",
	SetObjectArrayElement: "SetObjectArrayElement",

	NewBooleanArray: "NewBooleanArray",
	NewByteArray:    "NewByteArray",
	NewCharArray:    "NewCharArray",
	NewShortArray:   "NewShortArray",
	NewIntArray:     "NewIntArray",
	NewLongArray:    "NewLongArray",
	NewFloatArray:   "NewFloatArray",
	NewDoubleArray:  "NewDoubleArray",

	GetBooleanArrayRegion: "GetBooleanArrayRegion",
	GetByteArrayRegion:    "GetByteArrayRegion",
	GetCharArrayRegion:    "GetCharArrayRegion",
	GetShortArrayRegion:   "GetShortArrayRegion",
	GetIntArrayRegion:     "GetIntArrayRegion",
	GetLongArrayRegion:    "GetLongArrayRegion",
	GetFloatArrayRegion:   "GetFloatArrayRegion",
	GetDoubleArrayRegion:  "GetDoubleArrayRegion",

	SetBooleanArrayRegion: "SetBooleanArrayRegion",
	SetByteArrayRegion:    "SetByteArrayRegion",
	SetCharArrayRegion:    "SetCharArrayRegion",
	SetShortArrayRegion:   "SetShortArrayRegion",
	SetIntArrayRegion:     "SetIntArrayRegion",
	SetLongArrayRegion:    "SetLongArrayRegion",
	SetFloatArrayRegion:   "SetFloatArrayRegion",
	SetDoubleArrayRegion:  "SetDoubleArrayRegion",

	GetStringRegion: "GetStringRegion",
	ExceptionCheck:  "ExceptionCheck",
}

func (e Entry) String() string {
	if name, ok := entryNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Entry(%d)", int(e))
}

// Kind is the JNI value kind a method returns or an array holds. It picks
// which member of an entry family (Call<Kind>MethodA, New<Kind>Array, ...)
// applies.
type Kind uint8

const (
	KindVoid Kind = iota
	KindObject
	KindBoolean
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
)

var kindNames = [...]string{"void", "object", "boolean", "byte", "char", "short", "int", "long", "float", "double"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Primitive reports whether k is one of the eight primitive value kinds.
func (k Kind) Primitive() bool {
	return k >= KindBoolean && k <= KindDouble
}

// CallEntry returns the Call<Kind>MethodA entry.
func (k Kind) CallEntry() Entry {
	return [...]Entry{
		CallVoidMethodA, CallObjectMethodA, CallBooleanMethodA, CallByteMethodA, CallCharMethodA,
		CallShortMethodA, CallIntMethodA, CallLongMethodA, CallFloatMethodA, CallDoubleMethodA,
	}[k]
}

// CallStaticEntry returns the CallStatic<Kind>MethodA entry.
func (k Kind) CallStaticEntry() Entry {
	return [...]Entry{
		CallStaticVoidMethodA, CallStaticObjectMethodA, CallStaticBooleanMethodA, CallStaticByteMethodA,
		CallStaticCharMethodA, CallStaticShortMethodA, CallStaticIntMethodA, CallStaticLongMethodA,
		CallStaticFloatMethodA, CallStaticDoubleMethodA,
	}[k]
}

// NewArrayEntry returns New<Kind>Array for primitive kinds and
// NewObjectArray for KindObject.
func (k Kind) NewArrayEntry() Entry {
	if k == KindObject {
		return NewObjectArray
	}
	k.mustPrimitive()
	return NewBooleanArray + Entry(k-KindBoolean)
}

// GetRegionEntry returns Get<Kind>ArrayRegion.
func (k Kind) GetRegionEntry() Entry {
	k.mustPrimitive()
	return GetBooleanArrayRegion + Entry(k-KindBoolean)
}

// SetRegionEntry returns Set<Kind>ArrayRegion.
func (k Kind) SetRegionEntry() Entry {
	k.mustPrimitive()
	return SetBooleanArrayRegion + Entry(k-KindBoolean)
}

func (k Kind) mustPrimitive() {
	if !k.Primitive() {
		panic(fmt.Sprintf("native: %s is not a primitive kind", k))
	}
}
