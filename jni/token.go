package jni

import "github.com/chazu/gojni/native"

// NoException is the witness that no exception is pending on its Env.
//
// Every operation that may throw takes a token and returns a fresh one.
// Passing a token retires it: reusing a retired token, using a token on a
// goroutine other than the Env's owner, or using one after the Env is
// detached panics. At any moment an Env has at most one live token.
type NoException struct {
	env *Env
	gen uint64
}

func (tok NoException) mustEnv() *Env {
	if tok.env == nil {
		panic("jni: zero NoException token")
	}
	return tok.env
}

// check validates tok without consuming it.
func (e *Env) check(tok NoException) {
	if tok.env != e {
		panic("jni: token belongs to another Env")
	}
	e.checkOpen()
	if e.pending {
		panic("jni: token used while an exception is pending")
	}
	if tok.gen != e.gen {
		panic("jni: stale NoException token")
	}
}

// take consumes tok. Until issue is called no valid token exists.
func (e *Env) take(tok NoException) {
	e.check(tok)
	e.gen++
}

func (e *Env) issue() NoException {
	return NoException{env: e, gen: e.gen}
}

// Pending is the state after Throw: an exception is pending on the Env and
// there is no token until it is unwrapped. The holder must either Unwrap
// it or Propagate it to the end of the attachment scope.
type Pending struct {
	env *Env
	gen uint64
}

func (p Pending) check() {
	if p.env == nil {
		panic("jni: zero Pending")
	}
	p.env.checkOpen()
	if !p.env.pending || p.gen != p.env.gen {
		panic("jni: stale Pending")
	}
}

// Unwrap captures and clears the pending exception and returns it along
// with a fresh token.
func (p Pending) Unwrap() (*Throwable, NoException) {
	p.check()
	if p.env.propagated {
		panic("jni: Unwrap after Propagate")
	}
	thr := p.env.catch()
	p.env.pending = false
	return thr, p.env.issue()
}

// Propagate leaves the exception pending for the end of the attachment
// scope and returns ErrExceptionPending for the callback to return. The
// scope then reports it as a *PendingError; when the thread was attached by
// an outer host the exception stays pending for that host.
func (p Pending) Propagate() error {
	p.check()
	p.env.propagated = true
	return ErrExceptionPending
}

func (e *Env) throwPending(st native.Status) Pending {
	if st != native.OK {
		panic("jni: Throw failed: " + st.String())
	}
	e.pending = true
	return Pending{env: e, gen: e.gen}
}
