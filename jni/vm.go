package jni

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/petermattis/goid"

	"github.com/chazu/gojni/native"
)

// Options configure a VM handle.
type Options struct {
	// Version is the JNI version requested when attaching. Zero means 1.8.
	Version native.Version

	// SkipThreadCheck turns off the check that every Env, token and Object
	// is used only by the goroutine that attached.
	SkipThreadCheck bool
}

// AttachArgs describe one attachment.
type AttachArgs struct {
	// Name is the Java thread name. Empty means DefaultThreadName().
	Name string
	// Daemon attaches as a daemon thread, which does not keep the VM alive.
	Daemon bool
	// KeepAttached leaves the thread attached when the Env is closed, so a
	// later attachment on the same thread is cheap.
	KeepAttached bool
}

// VM is a handle to a running JVM. It is safe for concurrent use: any
// number of goroutines may attach at once, each getting its own Env.
type VM struct {
	raw  native.VM
	opts Options

	mu        sync.Mutex
	envs      map[int64]*Env
	kept      map[native.Table]string // threads left attached by KeepAttached, by name
	destroyed bool
}

// NewVM wraps a raw invoke interface.
func NewVM(raw native.VM, opts Options) *VM {
	if opts.Version == 0 {
		opts.Version = native.Version1_8
	}
	return &VM{
		raw:  raw,
		opts: opts,
		envs: make(map[int64]*Env),
		kept: make(map[native.Table]string),
	}
}

// Raw returns the wrapped invoke interface.
func (vm *VM) Raw() native.VM { return vm.raw }

// Attach attaches the calling goroutine and returns its Env. The goroutine
// is locked to its OS thread until Env.Detach.
//
// If the thread is already attached by someone else (for example a host that
// called into Go), that attachment is reused and never detached here. A
// thread this VM left attached with KeepAttached is not external: it is
// reused as if freshly attached and detached on close unless KeepAttached
// is set again. Attaching a goroutine that already holds a live Env panics.
func (vm *VM) Attach(args AttachArgs) (*Env, error) {
	runtime.LockOSThread()
	gid := goid.Get()

	vm.mu.Lock()
	destroyed := vm.destroyed
	_, dup := vm.envs[gid]
	vm.mu.Unlock()
	if destroyed {
		runtime.UnlockOSThread()
		return nil, ErrVMDestroyed
	}
	if dup {
		runtime.UnlockOSThread()
		panic("jni: goroutine already holds an attached Env")
	}

	env := &Env{vm: vm, owner: gid, keep: args.KeepAttached}
	table, st := vm.raw.GetEnv(vm.opts.Version)
	switch st {
	case native.OK:
		vm.mu.Lock()
		name, ours := vm.kept[table]
		delete(vm.kept, table)
		vm.mu.Unlock()
		if ours {
			env.name = name
			log.Debugf("reusing kept thread %q", name)
		} else {
			env.external = true
			log.Debugf("reusing existing attachment on goroutine %d", gid)
		}
	case native.EDetached:
		env.name = args.Name
		if env.name == "" {
			env.name = DefaultThreadName()
		}
		raw := native.AttachArgs{Version: vm.opts.Version, Name: env.name}
		op := "AttachCurrentThread"
		if args.Daemon {
			op = "AttachCurrentThreadAsDaemon"
		}
		if table, st = vm.raw.AttachCurrentThread(raw, args.Daemon); st != native.OK {
			runtime.UnlockOSThread()
			return nil, CheckStatus(op, st)
		}
		log.Debugf("attached thread %q (daemon=%t)", env.name, args.Daemon)
	default:
		runtime.UnlockOSThread()
		return nil, CheckStatus("GetEnv", st)
	}
	env.table = table
	env.frame = &frame{}

	vm.mu.Lock()
	vm.envs[gid] = env
	vm.mu.Unlock()
	return env, nil
}

func (vm *VM) forget(e *Env) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.envs[e.owner] == e {
		delete(vm.envs, e.owner)
	}
	if e.keep && !e.external {
		vm.kept[e.table] = e.name
	}
}

// WithAttached runs fn on an attached thread with the Env's token. The Env
// is closed when fn returns or panics, so nothing from it can be used
// afterwards.
//
// A *Throwable returned by fn (directly or wrapped) is replaced by a
// *CapturedError holding its description. An exception fn propagated with
// Pending.Propagate is reported as a *PendingError.
func (vm *VM) WithAttached(args AttachArgs, fn func(tok NoException) error) (err error) {
	env, err := vm.Attach(args)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			env.abandon()
			panic(r)
		}
	}()

	ferr := env.capture(fn(env.Token()))
	cerr := env.close()
	switch {
	case cerr == nil:
		return ferr
	case ferr == nil || errors.Is(ferr, ErrExceptionPending):
		return cerr
	}
	return errors.Join(ferr, cerr)
}

// capture turns a Throwable from this Env inside err into a CapturedError.
func (e *Env) capture(err error) error {
	var thr *Throwable
	if err == nil || !errors.As(err, &thr) || thr.h == nil || thr.h.env != e {
		return err
	}
	class := ""
	if !e.pending && thr.usable() {
		cls := e.table.Call(native.GetObjectClass, native.RefValue(thr.h.ref)).Ref()
		class, _ = e.rawClassName(cls)
		e.deleteLocal(cls)
	}
	return &CapturedError{Class: class, Message: err.Error()}
}

// Attached returns the number of live Envs.
func (vm *VM) Attached() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return len(vm.envs)
}

// Destroy unloads the VM. It fails while any Env from this handle is still
// attached.
func (vm *VM) Destroy() error {
	vm.mu.Lock()
	n, destroyed := len(vm.envs), vm.destroyed
	vm.mu.Unlock()
	if destroyed {
		return ErrVMDestroyed
	}
	if n > 0 {
		return fmt.Errorf("jni: destroy with %d attached environments", n)
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if err := CheckStatus("DestroyJavaVM", vm.raw.DestroyJavaVM()); err != nil {
		return err
	}
	vm.mu.Lock()
	vm.destroyed = true
	clear(vm.kept)
	vm.mu.Unlock()
	log.Info("VM destroyed")
	return nil
}
