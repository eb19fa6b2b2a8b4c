package jni

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/chazu/gojni/native"
)

func TestVM_ConcurrentAttach(t *testing.T) {
	fake, vm := newTestVM(t)
	const workers = 8

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- vm.WithAttached(AttachArgs{Name: fmt.Sprintf("worker-%d", i)}, func(tok NoException) error {
				if name := fake.CurrentThread().Name(); name != fmt.Sprintf("worker-%d", i) {
					return fmt.Errorf("thread name %q", name)
				}
				c, tok, err := NewObject1[*Counter](tok, Int(i))
				if err != nil {
					return err
				}
				for range 100 {
					var v Int
					if v, tok, err = CallMethod1[Int](tok, c, "add", Int(1)); err != nil {
						return err
					}
					if v != Int(i+1) {
						return fmt.Errorf("worker %d: add = %d", i, v)
					}
				}
				return nil
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Error(err)
		}
	}
	if n := fake.Attached(); n != 0 {
		t.Errorf("%d threads still attached", n)
	}
	if n := vm.Attached(); n != 0 {
		t.Errorf("%d environments still live", n)
	}
}

func TestVM_DefaultThreadName(t *testing.T) {
	fake, vm := newTestVM(t)
	attached(t, vm, func(tok NoException) error {
		if name := fake.CurrentThread().Name(); !strings.HasPrefix(name, "gojni-") {
			t.Errorf("default thread name = %q", name)
		}
		return nil
	})
}

func TestVM_Daemon(t *testing.T) {
	fake, vm := newTestVM(t)
	err := vm.WithAttached(AttachArgs{Daemon: true}, func(tok NoException) error {
		if !fake.CurrentThread().Daemon() {
			t.Error("thread not attached as daemon")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestVM_KeepAttached(t *testing.T) {
	fake, vm := newTestVM(t)
	attachedWith := func(args AttachArgs, fn func()) {
		err := vm.WithAttached(args, func(tok NoException) error {
			fn()
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	attachedWith(AttachArgs{Name: "kept", KeepAttached: true}, func() {})
	th := fake.CurrentThread()
	if th == nil {
		t.Fatal("thread detached despite KeepAttached")
	}
	defer fake.DetachCurrentThread()

	// The second scope reuses the kept thread and, without KeepAttached,
	// detaches it afterwards.
	attachedWith(AttachArgs{Name: "ignored"}, func() {
		if fake.CurrentThread() != th {
			t.Error("kept attachment was replaced")
		}
	})
	if fake.CurrentThread() != nil {
		t.Error("kept thread still attached after a scope without KeepAttached")
	}
	if vm.Attached() != 0 {
		t.Errorf("%d environments still live", vm.Attached())
	}
}

func TestVM_KeptThreadIsNotExternal(t *testing.T) {
	fake, vm := newTestVM(t)
	defer fake.DetachCurrentThread()

	for i := 0; i < 3; i++ {
		var env *Env
		err := vm.WithAttached(AttachArgs{Name: "kept", KeepAttached: true}, func(tok NoException) error {
			env = tok.mustEnv()
			return ThrowNew[*Throwable](tok, "boom").Propagate()
		})
		var pe *PendingError
		if !errors.As(err, &pe) {
			t.Fatalf("round %d: err = %v, want a *PendingError", i, err)
		}
		if pe.Rethrown {
			t.Errorf("round %d: exception rethrown on a thread the VM attached", i)
		}
		if env.Name() != "kept" {
			t.Errorf("round %d: name = %q", i, env.Name())
		}
		th := fake.CurrentThread()
		if th == nil {
			t.Fatalf("round %d: thread detached despite KeepAttached", i)
		}
		if th.Pending() != nil {
			t.Fatalf("round %d: exception left pending", i)
		}
	}
}

func TestVM_ExternalAttachmentNotDetached(t *testing.T) {
	fake, vm := newTestVM(t)
	if _, st := fake.AttachCurrentThread(native.AttachArgs{Version: native.Version1_8, Name: "host"}, false); st != native.OK {
		t.Fatalf("host attach: %s", st)
	}
	defer fake.DetachCurrentThread()

	env, err := vm.Attach(AttachArgs{Name: "mine"})
	if err != nil {
		t.Fatal(err)
	}
	if env.Name() != "" {
		t.Errorf("external Env has name %q", env.Name())
	}
	if err := env.Detach(); err != nil {
		t.Fatal(err)
	}
	if th := fake.CurrentThread(); th == nil || th.Name() != "host" {
		t.Error("host attachment was detached")
	}
}

func TestVM_DoubleAttachPanics(t *testing.T) {
	_, vm := newTestVM(t)
	env, err := vm.Attach(AttachArgs{})
	if err != nil {
		t.Fatal(err)
	}
	mustPanic(t, "already holds", func() { vm.Attach(AttachArgs{}) })
	if err := env.Detach(); err != nil {
		t.Fatal(err)
	}
	mustPanic(t, "detached Env", func() { env.Detach() })
}

func TestVM_PanicInScopeDetaches(t *testing.T) {
	fake, vm := newTestVM(t)
	mustPanic(t, "callback failed", func() {
		vm.WithAttached(AttachArgs{}, func(tok NoException) error {
			ThrowNew[*Throwable](tok, "left pending")
			panic("callback failed")
		})
	})
	if n := fake.Attached(); n != 0 {
		t.Errorf("%d threads attached after panic", n)
	}
	attached(t, vm, func(tok NoException) error {
		GetVersion(tok)
		return nil
	})
}

func TestVM_UnsupportedVersion(t *testing.T) {
	fake := fakejvmWithVersion(native.Version1_6)
	vm := NewVM(fake, Options{})
	err := vm.WithAttached(AttachArgs{}, func(tok NoException) error { return nil })
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("err = %v, want ErrUnsupportedVersion", err)
	}
	var se *StatusError
	if !errors.As(err, &se) || se.Op != "AttachCurrentThread" {
		t.Errorf("err = %#v", err)
	}
}

func TestVM_Destroy(t *testing.T) {
	fake, vm := newTestVM(t)
	env, err := vm.Attach(AttachArgs{})
	if err != nil {
		t.Fatal(err)
	}
	if err := vm.Destroy(); err == nil {
		t.Fatal("Destroy succeeded with an attached Env")
	}
	if err := env.Detach(); err != nil {
		t.Fatal(err)
	}
	if err := vm.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if !fake.Destroyed() {
		t.Error("runtime not destroyed")
	}
	if err := vm.Destroy(); !errors.Is(err, ErrVMDestroyed) {
		t.Errorf("second Destroy = %v", err)
	}
	if _, err := vm.Attach(AttachArgs{}); !errors.Is(err, ErrVMDestroyed) {
		t.Errorf("Attach after Destroy = %v", err)
	}
}

func TestVM_SkipThreadCheck(t *testing.T) {
	fake, _ := newTestVM(t)
	vm := NewVM(fake, Options{SkipThreadCheck: true})
	env, err := vm.Attach(AttachArgs{})
	if err != nil {
		t.Fatal(err)
	}
	tok := env.Token()
	done := make(chan any)
	go func() {
		defer func() { done <- recover() }()
		// The Env no longer objects; only the runtime itself notices.
		GetVersion(tok)
	}()
	if r := <-done; r == nil || strings.Contains(fmt.Sprint(r), "jni:") {
		t.Errorf("panic = %v, want one from the runtime", r)
	}
	if err := env.Detach(); err != nil {
		t.Fatal(err)
	}
}
