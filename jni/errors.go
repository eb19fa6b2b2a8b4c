package jni

import (
	"errors"
	"fmt"

	"github.com/chazu/gojni/native"
)

// Lifecycle error sentinels. A *StatusError from attach, detach or VM
// creation unwraps to one of these when the JNI status code is known.
var (
	ErrThreadDetached     = errors.New("thread detached from the VM")
	ErrUnsupportedVersion = errors.New("unsupported JNI version")
	ErrOutOfMemory        = errors.New("out of memory")
	ErrVMExists           = errors.New("VM already created")
	ErrInvalidArguments   = errors.New("invalid arguments")
)

var (
	// ErrNullReceiver is returned by instance calls on a null reference.
	// The caller's token is handed back unchanged. Accessors that return no
	// error (String.Len, Array.Len, Object.Class and the like) panic with it
	// instead.
	ErrNullReceiver = errors.New("jni: null receiver")

	// ErrExceptionPending is returned by Pending.Propagate. Scopes that see
	// it report the exception as a *PendingError.
	ErrExceptionPending = errors.New("jni: exception pending")

	// ErrVMDestroyed is returned by Attach after Destroy.
	ErrVMDestroyed = errors.New("jni: VM destroyed")
)

// StatusError is a failed invoke-interface or frame operation.
type StatusError struct {
	Op   string
	Code native.Status
}

func (e *StatusError) Error() string {
	if err := e.Unwrap(); err != nil {
		return fmt.Sprintf("jni: %s: %v", e.Op, err)
	}
	return fmt.Sprintf("jni: %s: unknown error (%s)", e.Op, e.Code)
}

func (e *StatusError) Unwrap() error {
	switch e.Code {
	case native.EDetached:
		return ErrThreadDetached
	case native.EVersion:
		return ErrUnsupportedVersion
	case native.ENoMem:
		return ErrOutOfMemory
	case native.EExist:
		return ErrVMExists
	case native.EInval:
		return ErrInvalidArguments
	}
	return nil
}

// CheckStatus returns nil for JNI_OK and a *StatusError otherwise.
func CheckStatus(op string, st native.Status) error {
	if st == native.OK {
		return nil
	}
	return &StatusError{Op: op, Code: st}
}

// MethodMismatchError is the panic value raised when a method or
// constructor cannot be resolved: the Go wrapper declares a signature the
// loaded class does not have.
type MethodMismatchError struct {
	Class      string
	Name       string
	Descriptor string
	Static     bool
}

func (e *MethodMismatchError) Error() string {
	kind := "method"
	switch {
	case e.Name == "<init>":
		kind = "constructor"
	case e.Static:
		kind = "static method"
	}
	class := e.Class
	if class == "" {
		class = "<unknown class>"
	}
	return fmt.Sprintf("jni: no %s %s%s on %s", kind, e.Name, e.Descriptor, class)
}

// ClassCastError is returned by Cast when the object is not an instance of
// the target type.
type ClassCastError struct {
	Target string
}

func (e *ClassCastError) Error() string {
	return fmt.Sprintf("jni: object is not an instance of %s", e.Target)
}

// CapturedError replaces a *Throwable that escapes an attachment scope. The
// description is taken while the thread is still attached, so it stays
// printable after the Env is gone.
type CapturedError struct {
	Class   string
	Message string
}

func (e *CapturedError) Error() string { return e.Message }

// PendingError reports an exception that was propagated to the end of an
// attachment scope.
type PendingError struct {
	Description string
	// Rethrown is set when the exception was left pending for the host that
	// owns the thread's attachment.
	Rethrown bool
}

func (e *PendingError) Error() string {
	return "jni: exception propagated out of scope: " + e.Description
}

func (e *PendingError) Unwrap() error { return ErrExceptionPending }
