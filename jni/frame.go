package jni

import (
	"errors"

	"github.com/chazu/gojni/native"
)

// WithLocalFrame runs fn inside a new local reference frame with room for
// at least capacity references. Every reference created inside is released
// when fn returns, throws or panics. fn must return the token it was last
// handed; a *Throwable it returns is moved to the enclosing frame and stays
// usable.
func WithLocalFrame(tok NoException, capacity int, fn func(tok NoException) (NoException, error)) (NoException, error) {
	return localFrame(tok, capacity, func(tok NoException) (Reference, NoException, error) {
		tok, err := fn(tok)
		return nil, tok, err
	})
}

// WithLocalFrameResult is WithLocalFrame for a callback producing one
// object, which is moved to the enclosing frame.
func WithLocalFrameResult[T Reference](tok NoException, capacity int, fn func(tok NoException) (T, NoException, error)) (T, NoException, error) {
	var result T
	tok, err := localFrame(tok, capacity, func(tok NoException) (Reference, NoException, error) {
		var err error
		result, tok, err = fn(tok)
		return result, tok, err
	})
	if err != nil {
		var zero T
		return zero, tok, err
	}
	return result, tok, nil
}

func localFrame(tok NoException, capacity int, fn func(NoException) (Reference, NoException, error)) (NoException, error) {
	env := tok.mustEnv()
	env.take(tok)
	n, thr := env.capacity(capacity)
	if thr != nil {
		return env.issue(), thr
	}
	st := env.table.Call(native.PushLocalFrame, native.IntValue(n)).Status()
	if st != native.OK {
		if thr := env.catch(); thr != nil {
			return env.issue(), thr
		}
		return env.issue(), CheckStatus("PushLocalFrame", st)
	}
	f := &frame{parent: env.frame}
	env.frame = f
	popped := false
	defer func() {
		if !popped && !env.closed {
			env.popFrame(f, nil)
		}
	}()

	result, out, err := fn(env.issue())

	// One reference survives the pop: a thrown exception, else the result.
	var keep *handle
	var caught *Throwable
	if errors.As(err, &caught) && caught.h != nil && caught.h.frame == f {
		keep = caught.h
	} else if err == nil && !IsNull(result) && result.AsObject().h.frame == f {
		keep = result.AsObject().h
	}
	env.popFrame(f, keep)
	popped = true

	if env.pending {
		return NoException{}, err
	}
	env.take(out)
	return env.issue(), err
}

// popFrame pops f, moving keep (if any) to the parent frame.
func (e *Env) popFrame(f *frame, keep *handle) {
	if e.frame != f {
		panic("jni: local frames popped out of order")
	}
	var ref native.Ref
	if keep != nil && !keep.released {
		ref = keep.ref
	}
	moved := e.table.Call(native.PopLocalFrame, native.RefValue(ref)).Ref()
	f.popped = true
	e.frame = f.parent
	if keep != nil && ref != 0 {
		keep.ref = moved
		keep.frame = f.parent
	}
}
