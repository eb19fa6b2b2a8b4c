package jnicgo

import (
	"unsafe"

	"github.com/chazu/gojni/native"
)

// Helpers for exported native method bodies, which receive JNIEnv* and
// jobject values as their own package's cgo types.

// Ref converts a jobject (or jclass, jstring, ...) to a native.Ref.
func Ref(p unsafe.Pointer) native.Ref { return native.Ref(uintptr(p)) }

// Pointer converts a native.Ref back to a jobject for returning to Java.
func Pointer(r native.Ref) unsafe.Pointer { return unsafe.Pointer(uintptr(r)) }
