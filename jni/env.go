package jni

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"unicode/utf16"

	"github.com/petermattis/goid"

	"github.com/chazu/gojni/native"
)

// Env is one goroutine's attachment to the VM. It owns the goroutine's
// locked OS thread until Detach.
//
// Application code rarely touches an Env directly: operations take a
// NoException token, which carries its Env.
type Env struct {
	vm    *VM
	table native.Table
	owner int64
	name  string

	gen        uint64
	tokenOut   bool
	closed     bool
	pending    bool
	propagated bool

	// external is set when the thread was already attached by someone
	// else; such attachments are never detached here.
	external bool
	keep     bool

	frame *frame
}

// Name is the thread name the attachment was made with. It is empty for
// external attachments.
func (e *Env) Name() string { return e.name }

// Token returns the Env's first token. It may be called once.
func (e *Env) Token() NoException {
	e.checkOpen()
	if e.tokenOut {
		panic("jni: Env.Token called twice")
	}
	if e.table.Call(native.ExceptionCheck).Bool() {
		panic("jni: Env.Token with an exception pending")
	}
	e.tokenOut = true
	return e.issue()
}

// Detach ends the attachment. Every token, Pending and Object from the Env
// becomes unusable. The thread is detached from the VM unless it was
// attached externally or KeepAttached was set.
//
// Detaching with an exception pending panics unless it was propagated with
// Pending.Propagate, in which case Detach returns a *PendingError.
func (e *Env) Detach() error {
	e.checkOpen()
	return e.close()
}

func (e *Env) checkOpen() {
	if e.closed {
		panic("jni: use of a detached Env")
	}
	if e.vm.opts.SkipThreadCheck {
		return
	}
	if id := goid.Get(); id != e.owner {
		panic(fmt.Sprintf("jni: Env of goroutine %d used from goroutine %d", e.owner, id))
	}
}

func (e *Env) close() error {
	var err error
	if e.pending {
		if !e.propagated {
			panic("jni: Detach with an exception pending")
		}
		err = e.finishPropagated()
	}
	e.closed = true
	e.gen++
	for f := e.frame; f != nil; f = f.parent {
		f.popped = true
	}

	if e.external || e.keep {
		log.Debugf("leaving thread %q attached", e.name)
	} else if st := e.vm.raw.DetachCurrentThread(); st != native.OK {
		err = errors.Join(err, CheckStatus("DetachCurrentThread", st))
	} else {
		log.Debugf("detached thread %q", e.name)
	}
	e.vm.forget(e)
	runtime.UnlockOSThread()
	return err
}

// abandon closes the Env on the panic path of a scope.
func (e *Env) abandon() {
	if e.closed {
		return
	}
	if !e.external {
		e.table.Call(native.ExceptionClear)
	} else if e.pending {
		log.Warningf("thread %q: leaving exception pending for host after panic", e.name)
	}
	e.pending = false
	e.propagated = false
	if err := e.close(); err != nil {
		log.Errorf("closing thread %q after panic: %s", e.name, err)
	}
}

func (e *Env) finishPropagated() error {
	ref := e.table.Call(native.ExceptionOccurred).Ref()
	e.table.Call(native.ExceptionClear)
	desc := e.describe(ref)
	if e.external {
		e.table.Call(native.Throw, native.RefValue(ref))
	}
	e.table.Call(native.DeleteLocalRef, native.RefValue(ref))
	e.pending = false
	log.Warningf("thread %q: exception propagated out of scope: %s", e.name, desc)
	return &PendingError{Description: desc, Rethrown: e.external}
}

// ---------------------------------------------------------------------------
// Raw helpers. These issue table calls without a token and are only used
// while the protocol already guarantees nothing is pending.
// ---------------------------------------------------------------------------

func (e *Env) newObject(ref native.Ref) Object {
	if ref == 0 {
		return Object{}
	}
	return Object{h: &handle{env: e, ref: ref, frame: e.frame}}
}

// catch captures and clears the pending exception, or returns nil.
func (e *Env) catch() *Throwable {
	ref := e.table.Call(native.ExceptionOccurred).Ref()
	if ref == 0 {
		return nil
	}
	e.table.Call(native.ExceptionClear)
	return &Throwable{Object: e.newObject(ref)}
}

// finish completes a fallible call: a pending exception becomes the error,
// otherwise raw is converted to R. Either way a fresh token is issued.
func finish[R Type](e *Env, raw native.Value) (R, NoException, error) {
	if thr := e.catch(); thr != nil {
		var zero R
		return zero, e.issue(), thr
	}
	return fromValue[R](e, raw), e.issue(), nil
}

// jint converts a Go length, index or capacity to a jint. A value outside
// the jint range is thrown as an instance of cls and comes back caught,
// just as the VM reports an invalid value it can see.
func (e *Env) jint(n int, cls, msg string) (int32, *Throwable) {
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return int32(n), nil
	}
	c, thr := e.findClass(cls)
	if thr != nil {
		return 0, thr
	}
	st := e.table.Call(native.ThrowNew, native.RefValue(c), native.StringValue(msg)).Status()
	e.deleteLocal(c)
	if thr := e.catch(); thr != nil {
		return 0, thr
	}
	panic("jni: ThrowNew failed: " + st.String())
}

func (e *Env) index(i int) (int32, *Throwable) {
	return e.jint(i, "java/lang/ArrayIndexOutOfBoundsException", fmt.Sprintf("Index %d out of bounds", i))
}

func (e *Env) capacity(n int) (int32, *Throwable) {
	return e.jint(n, "java/lang/OutOfMemoryError", fmt.Sprintf("local reference capacity %d out of range", n))
}

func (e *Env) deleteLocal(ref native.Ref) {
	if ref != 0 {
		e.table.Call(native.DeleteLocalRef, native.RefValue(ref))
	}
}

func (e *Env) findClass(path string) (native.Ref, *Throwable) {
	ref := e.table.Call(native.FindClass, native.StringValue(path)).Ref()
	if ref == 0 {
		if thr := e.catch(); thr != nil {
			return 0, thr
		}
		panic("jni: FindClass returned null without an exception: " + path)
	}
	return ref, nil
}

// mismatch reports a failed method lookup. It clears the runtime's
// NoSuchMethodError and panics.
func (e *Env) mismatch(cls native.Ref, name, desc string, static bool) {
	e.table.Call(native.ExceptionClear)
	class, _ := e.rawClassName(cls)
	e.deleteLocal(cls)
	panic(&MethodMismatchError{Class: class, Name: name, Descriptor: desc, Static: static})
}

func (e *Env) rawString(ref native.Ref) string {
	n := e.table.Call(native.GetStringLength, native.RefValue(ref)).Int()
	buf := make([]uint16, n)
	e.table.Call(native.GetStringRegion, native.RefValue(ref), native.IntValue(0), native.Chars(buf))
	return string(utf16.Decode(buf))
}

// rawCallString calls a ()Ljava/lang/String; method and reads the result.
// It reports false, with the exception still pending, if anything threw.
func (e *Env) rawCallString(ref native.Ref, name string) (string, bool) {
	cls := e.table.Call(native.GetObjectClass, native.RefValue(ref)).Ref()
	mid := e.table.Call(native.GetMethodID, native.RefValue(cls), native.StringValue(name),
		native.StringValue("()Ljava/lang/String;")).MethodID()
	e.deleteLocal(cls)
	if mid == 0 {
		return "", false
	}
	s := e.table.Call(native.CallObjectMethodA, native.RefValue(ref), native.MethodValue(mid), native.Vector(nil)).Ref()
	if e.table.Call(native.ExceptionCheck).Bool() {
		return "", false
	}
	if s == 0 {
		return "null", true
	}
	defer e.deleteLocal(s)
	return e.rawString(s), true
}

// rawClassName returns the dotted name of the class cls.
func (e *Env) rawClassName(cls native.Ref) (string, bool) {
	if cls == 0 {
		return "", false
	}
	name, ok := e.rawCallString(cls, "getName")
	if !ok {
		e.table.Call(native.ExceptionClear)
	}
	return name, ok
}

const undescribable = "java exception (description unavailable)"

// describe renders a throwable with its toString. If toString itself
// throws, the secondary exception's class name is reported instead, and
// failing that a fixed text. Nothing is left pending.
func (e *Env) describe(ref native.Ref) string {
	if s, ok := e.rawCallString(ref, "toString"); ok {
		return s
	}
	secondary := e.table.Call(native.ExceptionOccurred).Ref()
	if secondary == 0 {
		return undescribable
	}
	e.table.Call(native.ExceptionClear)
	defer e.deleteLocal(secondary)

	cls := e.table.Call(native.GetObjectClass, native.RefValue(secondary)).Ref()
	defer e.deleteLocal(cls)
	if name, ok := e.rawClassName(cls); ok {
		return fmt.Sprintf("java exception (toString threw %s)", name)
	}
	return undescribable
}

// GetVersion returns the JNI version the VM implements.
func GetVersion(tok NoException) native.Version {
	e := tok.mustEnv()
	e.check(tok)
	return e.table.Call(native.GetVersion).Version()
}

// EnsureLocalCapacity asks the VM for room for n more local references in
// the current frame.
func EnsureLocalCapacity(tok NoException, n int) (NoException, error) {
	e := tok.mustEnv()
	e.take(tok)
	capacity, thr := e.capacity(n)
	if thr != nil {
		return e.issue(), thr
	}
	st := e.table.Call(native.EnsureLocalCapacity, native.IntValue(capacity)).Status()
	if thr := e.catch(); thr != nil {
		return e.issue(), thr
	}
	return e.issue(), CheckStatus("EnsureLocalCapacity", st)
}
