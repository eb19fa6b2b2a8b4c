package jni

import (
	"errors"
	"testing"
)

func TestLocalFrame_ReleasesReferences(t *testing.T) {
	fake, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		th := fake.CurrentThread()
		before := th.LocalRefCount()
		var inner *String
		tok, err := WithLocalFrame(tok, 4, func(tok NoException) (NoException, error) {
			for i := 0; i < 10; i++ {
				s, next, err := NewString(tok, "temporary")
				if err != nil {
					return next, err
				}
				tok = next
				inner = s
			}
			if th.FrameDepth() != 2 {
				t.Errorf("frame depth inside = %d", th.FrameDepth())
			}
			return tok, nil
		})
		if err != nil {
			return err
		}
		if n := th.LocalRefCount(); n != before {
			t.Errorf("local refs after frame = %d, want %d", n, before)
		}
		if th.FrameDepth() != 1 {
			t.Errorf("frame depth after = %d", th.FrameDepth())
		}
		mustPanic(t, "local frame was popped", func() { inner.Len(tok) })
		return nil
	})
}

func TestLocalFrame_KeepsResult(t *testing.T) {
	fake, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		th := fake.CurrentThread()
		before := th.LocalRefCount()
		s, tok, err := WithLocalFrameResult(tok, 2, func(tok NoException) (*String, NoException, error) {
			_, tok, err := NewString(tok, "discarded")
			if err != nil {
				return nil, tok, err
			}
			return NewString(tok, "kept")
		})
		if err != nil {
			return err
		}
		if v := s.Value(tok); v != "kept" {
			t.Errorf("result = %q", v)
		}
		if n := th.LocalRefCount(); n != before+1 {
			t.Errorf("local refs = %d, want %d", n, before+1)
		}
		return nil
	})
}

func TestLocalFrame_KeepsThrowable(t *testing.T) {
	_, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		c, tok := newCounter(t, tok, 1)
		tok, err := WithLocalFrame(tok, 2, func(tok NoException) (NoException, error) {
			arg, tok, err := NewString(tok, "inside")
			if err != nil {
				return tok, err
			}
			_, tok, err = CallMethod1[Void](tok, c, "fail", arg)
			return tok, err
		})
		var thr *Throwable
		if !errors.As(err, &thr) {
			t.Fatalf("err = %v, want a *Throwable", err)
		}
		msg, tok, err := thr.GetMessage(tok)
		if err != nil {
			return err
		}
		if v := msg.Value(tok); v != "inside" {
			t.Errorf("message = %q", v)
		}
		return nil
	})
}

func TestLocalFrame_PopsOnPanic(t *testing.T) {
	fake, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		mustPanic(t, "inside frame", func() {
			WithLocalFrame(tok, 1, func(tok NoException) (NoException, error) {
				panic("inside frame")
			})
		})
		if d := fake.CurrentThread().FrameDepth(); d != 1 {
			t.Errorf("frame depth after panic = %d", d)
		}
		return nil
	})
}

func TestLocalFrame_Nested(t *testing.T) {
	fake, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		s, tok, err := WithLocalFrameResult(tok, 1, func(tok NoException) (*String, NoException, error) {
			return WithLocalFrameResult(tok, 1, func(tok NoException) (*String, NoException, error) {
				if d := fake.CurrentThread().FrameDepth(); d != 3 {
					t.Errorf("depth = %d", d)
				}
				return NewString(tok, "deep")
			})
		})
		if err != nil {
			return err
		}
		if v := s.Value(tok); v != "deep" {
			t.Errorf("result = %q", v)
		}
		return nil
	})
}

func TestLocalFrame_NegativeCapacity(t *testing.T) {
	_, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		called := false
		tok, err := WithLocalFrame(tok, -1, func(tok NoException) (NoException, error) {
			called = true
			return tok, nil
		})
		if called {
			t.Error("callback ran without a frame")
		}
		if !isThrowable(err) {
			t.Errorf("err = %v, want OutOfMemoryError", err)
		}
		GetVersion(tok)
		return nil
	})
}

func TestEnsureLocalCapacity(t *testing.T) {
	_, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		tok, err := EnsureLocalCapacity(tok, 32)
		if err != nil {
			t.Fatalf("EnsureLocalCapacity: %v", err)
		}
		if _, err := EnsureLocalCapacity(tok, -1); !isThrowable(err) {
			t.Errorf("negative capacity = %v", err)
		}
		return nil
	})
}

func TestLocalFrame_StaleTokenFromCallbackStillPops(t *testing.T) {
	fake, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		depth := fake.CurrentThread().FrameDepth()
		mustPanic(t, "stale NoException token", func() {
			WithLocalFrame(tok, 4, func(inner NoException) (NoException, error) {
				newCounter(t, inner, 1)
				return inner, nil
			})
		})
		if got := fake.CurrentThread().FrameDepth(); got != depth {
			t.Errorf("frame depth = %d, want %d", got, depth)
		}
		return nil
	})
}
