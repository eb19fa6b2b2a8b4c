package jni

import (
	"fmt"
	"strings"
)

// Descriptor builds a method descriptor, "(" + argument signatures + ")" +
// return signature, from values of the argument and return types. Only the
// types matter; nil wrapper pointers are fine.
func Descriptor(ret Type, args ...Type) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, a := range args {
		b.WriteString(a.Signature())
	}
	b.WriteByte(')')
	b.WriteString(ret.Signature())
	return b.String()
}

func zeroOf[T Type]() T {
	var z T
	return z
}

func MethodDescriptor0[R Type]() string {
	return Descriptor(zeroOf[R]())
}

func MethodDescriptor1[R, A0 Type]() string {
	return Descriptor(zeroOf[R](), zeroOf[A0]())
}

func MethodDescriptor2[R, A0, A1 Type]() string {
	return Descriptor(zeroOf[R](), zeroOf[A0](), zeroOf[A1]())
}

func MethodDescriptor3[R, A0, A1, A2 Type]() string {
	return Descriptor(zeroOf[R](), zeroOf[A0](), zeroOf[A1](), zeroOf[A2]())
}

func MethodDescriptor4[R, A0, A1, A2, A3 Type]() string {
	return Descriptor(zeroOf[R](), zeroOf[A0](), zeroOf[A1](), zeroOf[A2](), zeroOf[A3]())
}

// ClassPath turns a field descriptor into the name FindClass expects:
// "Ljava/lang/String;" becomes "java/lang/String"; array descriptors are
// returned unchanged. It panics on primitive descriptors, which name no
// class.
func ClassPath(sig string) string {
	switch {
	case strings.HasPrefix(sig, "["):
		return sig
	case len(sig) > 2 && sig[0] == 'L' && sig[len(sig)-1] == ';':
		return sig[1 : len(sig)-1]
	}
	panic(fmt.Sprintf("jni: %q does not name a class", sig))
}

// ClassSignature is the inverse of ClassPath for class names.
func ClassSignature(path string) string {
	if strings.HasPrefix(path, "[") {
		return path
	}
	return "L" + path + ";"
}
