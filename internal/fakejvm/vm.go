// Package fakejvm is an in-memory JVM stand-in implementing the raw
// interfaces of package native.
//
// Classes are defined from Go (ClassDef) with method bodies written as Go
// functions. Dispatch is virtual over the superclass chain, local references
// live in per-thread frames, and each attached goroutine has its own
// pending-exception slot. The runtime is strict where real JVMs merely
// crash: calling an entry with an exception pending, using a reference from
// another thread, or using a Table from the wrong goroutine panics.
package fakejvm

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/petermattis/goid"
	"github.com/sasha-s/go-deadlock"

	"github.com/chazu/gojni/native"
)

// VM implements native.VM. Threads are keyed by goroutine id.
type VM struct {
	mu        deadlock.Mutex
	version   native.Version
	classes   map[string]*Class
	methods   []*Method
	threads   map[int64]*Thread
	destroyed bool
	out       io.Writer
	faults    map[native.Entry]fault

	nextID      atomic.Uint64
	threadCount atomic.Int64
}

var _ native.VM = (*VM)(nil)

// New returns a VM with the java.lang bootstrap classes loaded, reporting
// JNI version 1.8.
func New() *VM {
	vm := &VM{
		version: native.Version1_8,
		classes: make(map[string]*Class),
		threads: make(map[int64]*Thread),
		out:     os.Stderr,
		faults:  make(map[native.Entry]fault),
	}
	vm.bootstrap()
	return vm
}

// SetVersion changes the highest JNI version GetEnv and AttachCurrentThread
// accept.
func (vm *VM) SetVersion(v native.Version) {
	vm.mu.Lock()
	vm.version = v
	vm.mu.Unlock()
}

// SetOutput redirects ExceptionDescribe output.
func (vm *VM) SetOutput(w io.Writer) {
	vm.mu.Lock()
	vm.out = w
	vm.mu.Unlock()
}

type fault struct {
	class, msg string
}

// FailNext makes the next call of entry, on any thread, throw a new
// instance of class with message msg instead of running. The call returns
// a zero word.
func (vm *VM) FailNext(entry native.Entry, class, msg string) {
	vm.mu.Lock()
	vm.faults[entry] = fault{class: class, msg: msg}
	vm.mu.Unlock()
}

func (vm *VM) takeFault(entry native.Entry) (fault, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	f, ok := vm.faults[entry]
	if ok {
		delete(vm.faults, entry)
	}
	return f, ok
}

func (vm *VM) supports(v native.Version) bool {
	switch v {
	case native.Version1_1, native.Version1_2, native.Version1_4, native.Version1_6,
		native.Version1_8, native.Version9, native.Version10:
		return v <= vm.version
	}
	return false
}

func (vm *VM) GetEnv(version native.Version) (native.Table, native.Status) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.destroyed {
		return nil, native.EDetached
	}
	t, ok := vm.threads[goid.Get()]
	if !ok {
		return nil, native.EDetached
	}
	if !vm.supports(version) {
		return nil, native.EVersion
	}
	return t, native.OK
}

func (vm *VM) AttachCurrentThread(args native.AttachArgs, daemon bool) (native.Table, native.Status) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.destroyed {
		return nil, native.Err
	}
	if !vm.supports(args.Version) {
		return nil, native.EVersion
	}
	gid := goid.Get()
	if t, ok := vm.threads[gid]; ok {
		return t, native.OK
	}
	n := vm.threadCount.Add(1)
	name := args.Name
	if name == "" {
		name = fmt.Sprintf("Thread-%d", n)
	}
	t := &Thread{
		vm:     vm,
		gid:    gid,
		name:   name,
		daemon: daemon,
		locals: make(map[native.Ref]*Instance),
		frames: [][]native.Ref{nil},
		calls:  make(map[native.Entry]int),
	}
	vm.threads[gid] = t
	return t, native.OK
}

func (vm *VM) DetachCurrentThread() native.Status {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	gid := goid.Get()
	t, ok := vm.threads[gid]
	if !ok {
		return native.EDetached
	}
	delete(vm.threads, gid)
	t.detached = true
	return native.OK
}

// DestroyJavaVM fails while another non-daemon thread is attached; a real
// JVM would block until those threads detach.
func (vm *VM) DestroyJavaVM() native.Status {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if vm.destroyed {
		return native.Err
	}
	gid := goid.Get()
	for id, t := range vm.threads {
		if id != gid && !t.daemon {
			return native.Err
		}
	}
	for _, t := range vm.threads {
		t.detached = true
	}
	vm.threads = make(map[int64]*Thread)
	vm.destroyed = true
	return native.OK
}

// CurrentThread returns the calling goroutine's attached thread, or nil.
func (vm *VM) CurrentThread() *Thread {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.threads[goid.Get()]
}

// Attached returns the number of attached threads.
func (vm *VM) Attached() int {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return len(vm.threads)
}

// Destroyed reports whether DestroyJavaVM has succeeded.
func (vm *VM) Destroyed() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.destroyed
}

func (vm *VM) output() io.Writer {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.out
}
