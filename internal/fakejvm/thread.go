package fakejvm

import (
	"fmt"

	"github.com/petermattis/goid"

	"github.com/chazu/gojni/native"
)

// Thread is one attached goroutine's JNIEnv. It implements native.Table.
type Thread struct {
	vm       *VM
	gid      int64
	name     string
	daemon   bool
	detached bool

	locals  map[native.Ref]*Instance
	frames  [][]native.Ref
	pending *Instance
	calls   map[native.Entry]int
}

var _ native.Table = (*Thread)(nil)

type handler func(t *Thread, args []native.Value) native.Value

var handlers map[native.Entry]handler

// Entries that JNI allows while an exception is pending.
var safeWhilePending = map[native.Entry]bool{
	native.ExceptionOccurred: true,
	native.ExceptionDescribe: true,
	native.ExceptionClear:    true,
	native.ExceptionCheck:    true,
	native.DeleteLocalRef:    true,
	native.PushLocalFrame:    true,
	native.PopLocalFrame:     true,
}

func init() {
	handlers = map[native.Entry]handler{
		native.GetVersion:            (*Thread).getVersion,
		native.FindClass:             (*Thread).findClass,
		native.GetSuperclass:         (*Thread).getSuperclass,
		native.IsAssignableFrom:      (*Thread).isAssignableFrom,
		native.Throw:                 (*Thread).throw,
		native.ThrowNew:              (*Thread).throwNewEntry,
		native.ExceptionOccurred:     (*Thread).exceptionOccurred,
		native.ExceptionDescribe:     (*Thread).exceptionDescribe,
		native.ExceptionClear:        (*Thread).exceptionClear,
		native.ExceptionCheck:        (*Thread).exceptionCheck,
		native.PushLocalFrame:        (*Thread).pushLocalFrame,
		native.PopLocalFrame:         (*Thread).popLocalFrame,
		native.DeleteLocalRef:        (*Thread).deleteLocalRef,
		native.IsSameObject:          (*Thread).isSameObject,
		native.NewLocalRef:           (*Thread).newLocalRef,
		native.EnsureLocalCapacity:   (*Thread).ensureLocalCapacity,
		native.NewObjectA:            (*Thread).newObject,
		native.GetObjectClass:        (*Thread).getObjectClass,
		native.IsInstanceOf:          (*Thread).isInstanceOf,
		native.GetMethodID:           (*Thread).getMethodID,
		native.GetStaticMethodID:     (*Thread).getStaticMethodID,
		native.NewString:             (*Thread).newString,
		native.GetStringLength:       (*Thread).getStringLength,
		native.GetStringRegion:       (*Thread).getStringRegion,
		native.GetArrayLength:        (*Thread).getArrayLength,
		native.NewObjectArray:        (*Thread).newObjectArray,
		native.GetObjectArrayElement: (*Thread).getObjectArrayElement,
		native.SetObjectArrayElement: (*Thread).setObjectArrayElement,
	}
	for k := native.KindVoid; k <= native.KindDouble; k++ {
		handlers[k.CallEntry()] = func(t *Thread, args []native.Value) native.Value {
			return t.callVirtual(k, args)
		}
		handlers[k.CallStaticEntry()] = func(t *Thread, args []native.Value) native.Value {
			return t.callStatic(k, args)
		}
		if k.Primitive() {
			handlers[k.NewArrayEntry()] = func(t *Thread, args []native.Value) native.Value {
				return t.newPrimitiveArray(k, args)
			}
			handlers[k.GetRegionEntry()] = func(t *Thread, args []native.Value) native.Value {
				return t.arrayRegion(k, args, false)
			}
			handlers[k.SetRegionEntry()] = func(t *Thread, args []native.Value) native.Value {
				return t.arrayRegion(k, args, true)
			}
		}
	}
}

// Call implements native.Table.
func (t *Thread) Call(entry native.Entry, args ...native.Value) native.Value {
	if gid := goid.Get(); gid != t.gid {
		panic(fmt.Sprintf("fakejvm: %s on thread %q from goroutine %d", entry, t.name, gid))
	}
	if t.detached {
		panic(fmt.Sprintf("fakejvm: %s on detached thread %q", entry, t.name))
	}
	t.calls[entry]++
	if t.pending != nil && !safeWhilePending[entry] {
		panic(fmt.Sprintf("fakejvm: %s called with %s pending", entry, t.pending.Class.DottedName()))
	}
	if f, ok := t.vm.takeFault(entry); ok {
		t.ThrowNew(f.class, f.msg)
		return native.Value{}
	}
	h, ok := handlers[entry]
	if !ok {
		panic(fmt.Sprintf("fakejvm: %s not supported", entry))
	}
	return h(t, args)
}

// Name is the thread name given at attach time.
func (t *Thread) Name() string { return t.name }

// Daemon reports whether the thread was attached as a daemon.
func (t *Thread) Daemon() bool { return t.daemon }

// Calls returns how many times entry has been called on t.
func (t *Thread) Calls(entry native.Entry) int { return t.calls[entry] }

// LocalRefCount returns the number of live local references on t.
func (t *Thread) LocalRefCount() int { return len(t.locals) }

// FrameDepth returns the number of local frames, counting the base frame.
func (t *Thread) FrameDepth() int { return len(t.frames) }

// Pending returns the pending exception, or nil.
func (t *Thread) Pending() *Instance { return t.pending }

// ---------------------------------------------------------------------------
// References
// ---------------------------------------------------------------------------

func (t *Thread) newLocal(in *Instance) native.Ref {
	if in == nil {
		return 0
	}
	r := native.Ref(t.vm.nextID.Add(1))
	t.locals[r] = in
	top := len(t.frames) - 1
	t.frames[top] = append(t.frames[top], r)
	return r
}

func (t *Thread) deref(r native.Ref) *Instance {
	if r == 0 {
		return nil
	}
	in, ok := t.locals[r]
	if !ok {
		panic(fmt.Sprintf("fakejvm: invalid local reference %#x on thread %q", uintptr(r), t.name))
	}
	return in
}

func (t *Thread) freeLocal(r native.Ref) {
	if r == 0 {
		return
	}
	t.deref(r)
	delete(t.locals, r)
	for i := len(t.frames) - 1; i >= 0; i-- {
		for j, fr := range t.frames[i] {
			if fr == r {
				t.frames[i] = append(t.frames[i][:j], t.frames[i][j+1:]...)
				return
			}
		}
	}
}

func (t *Thread) classArg(v native.Value) *Class {
	in := t.deref(v.Ref())
	if in == nil || in.mirror == nil {
		panic(fmt.Sprintf("fakejvm: %#x is not a class reference", uintptr(v.Ref())))
	}
	return in.mirror
}

func (t *Thread) argc(args []native.Value, n int, what string) {
	if len(args) != n {
		panic(fmt.Sprintf("fakejvm: %s takes %d arguments, got %d", what, n, len(args)))
	}
}

// ---------------------------------------------------------------------------
// Helpers for method bodies
// ---------------------------------------------------------------------------

// Arg resolves a reference argument; null is nil.
func (t *Thread) Arg(v native.Value) *Instance { return t.deref(v.Ref()) }

// Return hands an object result back to the caller as a new local
// reference. A nil instance returns null.
func (t *Thread) Return(in *Instance) native.Value {
	return native.RefValue(t.newLocal(in))
}

// NewString allocates a java/lang/String.
func (t *Thread) NewString(s string) *Instance {
	return t.vm.newString(s)
}

// Throw makes in the pending exception.
func (t *Thread) Throw(in *Instance) native.Value {
	if in == nil {
		return t.ThrowNew("java/lang/NullPointerException", "")
	}
	t.pending = in
	return native.Void
}

// ThrowNew throws a new instance of the named throwable class with message
// msg (no message if msg is empty).
func (t *Thread) ThrowNew(class, msg string) native.Value {
	return t.Throw(t.vm.newThrowable(t.vm.mustClass(class), msg))
}

// New constructs an instance of class through its desc constructor. It
// returns nil if the constructor threw.
func (t *Thread) New(class, desc string, args ...native.Value) *Instance {
	c := t.vm.mustClass(class)
	m := t.vm.declared(c, "<init>", desc)
	if m == nil {
		panic(fmt.Sprintf("fakejvm: no constructor %s%s", class, desc))
	}
	in := t.vm.alloc(c)
	t.invoke(m, in, args)
	if t.pending != nil {
		return nil
	}
	return in
}

// InvokeSpecial calls class's own name+desc method on this without virtual
// dispatch, the way a super call or a private call does.
func (t *Thread) InvokeSpecial(this *Instance, class, name, desc string, args ...native.Value) native.Value {
	m := t.vm.declared(t.vm.mustClass(class), name, desc)
	if m == nil {
		panic(fmt.Sprintf("fakejvm: no method %s.%s%s", class, name, desc))
	}
	return t.invoke(m, this, args)
}

// Invoke calls name+desc on this with virtual dispatch.
func (t *Thread) Invoke(this *Instance, name, desc string, args ...native.Value) native.Value {
	if this == nil {
		return t.ThrowNew("java/lang/NullPointerException", "")
	}
	m := t.vm.virtual(this.Class, name, desc)
	if m == nil {
		return t.ThrowNew("java/lang/NoSuchMethodError", name)
	}
	return t.invoke(m, this, args)
}

func (t *Thread) invoke(m *Method, this *Instance, args []native.Value) native.Value {
	if m.Body == nil {
		return t.ThrowNew("java/lang/AbstractMethodError", m.String())
	}
	return m.Body(t, this, args)
}
