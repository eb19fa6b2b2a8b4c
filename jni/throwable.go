package jni

import (
	"github.com/petermattis/goid"

	"github.com/chazu/gojni/native"
)

// Throwable wraps java.lang.Throwable. It is also the error returned by
// every operation that caught a Java exception.
type Throwable struct {
	Object
}

func (*Throwable) Signature() string { return "Ljava/lang/Throwable;" }

// NewThrowable constructs a Throwable with a message, which may be nil.
func NewThrowable(tok NoException, msg *String) (*Throwable, NoException, error) {
	return NewObject1[*Throwable](tok, msg)
}

// NewThrowableWithCause constructs a Throwable with a message and a cause.
func NewThrowableWithCause(tok NoException, msg *String, cause *Throwable) (*Throwable, NoException, error) {
	return NewObject2[*Throwable](tok, msg, cause)
}

func (t *Throwable) GetMessage(tok NoException) (*String, NoException, error) {
	return CallMethod0[*String](tok, t, "getMessage")
}

func (t *Throwable) GetCause(tok NoException) (*Throwable, NoException, error) {
	return CallMethod0[*Throwable](tok, t, "getCause")
}

// Throw makes t the pending exception. tok is consumed; the returned
// Pending must be unwrapped or propagated before anything else runs on
// this thread. Throwing null panics with ErrNullReceiver.
func (t *Throwable) Throw(tok NoException) Pending {
	env, ref := borrowRef(tok, t)
	env.take(tok)
	return env.throwPending(env.table.Call(native.Throw, native.RefValue(ref)).Status())
}

// ThrowNew constructs and throws an exception of class T with message msg.
// If T's class cannot be loaded, the lookup failure is what ends up
// pending.
func ThrowNew[T Reference](tok NoException, msg string) Pending {
	env := tok.mustEnv()
	env.take(tok)
	cls, thr := env.findClass(ClassPath(SignatureOf[T]()))
	if thr != nil {
		st := env.table.Call(native.Throw, native.RefValue(thr.h.ref)).Status()
		env.deleteLocal(thr.h.ref)
		thr.h.released = true
		return env.throwPending(st)
	}
	st := env.table.Call(native.ThrowNew, native.RefValue(cls), native.StringValue(msg)).Status()
	env.deleteLocal(cls)
	return env.throwPending(st)
}

// Error describes the exception with its toString. When the runtime cannot
// be asked (the reference is gone, the Env is closed or another exception
// is pending) a fixed text is returned instead.
func (t *Throwable) Error() string {
	if t == nil || t.h == nil {
		return "jni: null throwable"
	}
	if !t.usable() {
		return undescribable
	}
	return t.h.env.describe(t.h.ref)
}

// usable reports whether t can be handed to the runtime from the calling
// goroutine without a token.
func (t *Throwable) usable() bool {
	h := t.h
	if h == nil || h.released || h.frame.popped {
		return false
	}
	e := h.env
	return !e.closed && !e.pending && goid.Get() == e.owner
}
