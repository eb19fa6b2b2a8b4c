// Package jni is a checked layer over the Java Native Interface.
//
// This package contains:
//   - VM handles and per-goroutine attachment (VM, Env)
//   - NoException tokens, which make "no exception pending" a value
//   - Local references and scoped local frames (Object, WithLocalFrame)
//   - Wrapper types and descriptor derivation from Go types
//   - Generic method, static method and constructor dispatch
//
// A typical call sequence:
//
//	err := vm.WithAttached(jni.AttachArgs{}, func(tok jni.NoException) error {
//		s, tok, err := jni.NewString(tok, "hello")
//		if err != nil {
//			return err
//		}
//		n, tok, err := jni.CallMethod0[jni.Int](tok, s, "length")
//		...
//	})
//
// Misuse that the type system cannot rule out (a stale token, a reference
// from another goroutine or from a popped frame, a wrapper whose declared
// signature does not exist) panics rather than reaching the VM.
package jni
