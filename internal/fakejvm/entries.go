package fakejvm

import (
	"fmt"
	"unicode/utf16"

	"github.com/chazu/gojni/native"
)

func (vm *VM) newString(s string) *Instance {
	in := vm.alloc(vm.mustClass("java/lang/String"))
	in.chars = utf16.Encode([]rune(s))
	return in
}

func (vm *VM) newThrowable(c *Class, msg string) *Instance {
	in := vm.alloc(c)
	if msg != "" {
		in.SetRef("message", vm.newString(msg))
	}
	return in
}

func (t *Thread) getVersion(args []native.Value) native.Value {
	t.vm.mu.Lock()
	defer t.vm.mu.Unlock()
	return native.VersionValue(t.vm.version)
}

// ---------------------------------------------------------------------------
// Classes
// ---------------------------------------------------------------------------

func (t *Thread) findClass(args []native.Value) native.Value {
	t.argc(args, 1, "FindClass")
	name := args[0].Str()
	t.vm.mu.Lock()
	c := t.vm.classLocked(name)
	t.vm.mu.Unlock()
	if c == nil {
		t.ThrowNew("java/lang/NoClassDefFoundError", name)
		return native.RefValue(0)
	}
	return t.Return(c.mirror)
}

func (t *Thread) getSuperclass(args []native.Value) native.Value {
	t.argc(args, 1, "GetSuperclass")
	c := t.classArg(args[0])
	if c.Interface || c.Super == nil {
		return native.RefValue(0)
	}
	return t.Return(c.Super.mirror)
}

func (t *Thread) isAssignableFrom(args []native.Value) native.Value {
	t.argc(args, 2, "IsAssignableFrom")
	return native.BoolValue(t.classArg(args[0]).IsSubclassOf(t.classArg(args[1])))
}

func (t *Thread) getObjectClass(args []native.Value) native.Value {
	t.argc(args, 1, "GetObjectClass")
	in := t.deref(args[0].Ref())
	if in == nil {
		panic("fakejvm: GetObjectClass on null")
	}
	return t.Return(in.Class.mirror)
}

func (t *Thread) isInstanceOf(args []native.Value) native.Value {
	t.argc(args, 2, "IsInstanceOf")
	in := t.deref(args[0].Ref())
	c := t.classArg(args[1])
	return native.BoolValue(in == nil || in.Class.IsSubclassOf(c))
}

// ---------------------------------------------------------------------------
// Methods
// ---------------------------------------------------------------------------

func (t *Thread) getMethodID(args []native.Value) native.Value {
	t.argc(args, 3, "GetMethodID")
	c := t.classArg(args[0])
	name, desc := args[1].Str(), args[2].Str()
	var m *Method
	if name == "<init>" {
		m = t.vm.declared(c, name, desc)
	} else {
		m = t.vm.virtual(c, name, desc)
	}
	if m == nil || m.Static {
		t.ThrowNew("java/lang/NoSuchMethodError", name)
		return native.MethodValue(0)
	}
	return native.MethodValue(m.ID)
}

func (t *Thread) getStaticMethodID(args []native.Value) native.Value {
	t.argc(args, 3, "GetStaticMethodID")
	c := t.classArg(args[0])
	name := args[1].Str()
	m := t.vm.static(c, name, args[2].Str())
	if m == nil {
		t.ThrowNew("java/lang/NoSuchMethodError", name)
		return native.MethodValue(0)
	}
	return native.MethodValue(m.ID)
}

func (t *Thread) methodArg(v native.Value, kind native.Kind, entry string) *Method {
	m := t.vm.method(v.MethodID())
	if m == nil {
		panic(fmt.Sprintf("fakejvm: %s with invalid method ID %#x", entry, uintptr(v.MethodID())))
	}
	if m.ret != kind {
		panic(fmt.Sprintf("fakejvm: %s on %s, which returns %s", entry, m, m.ret))
	}
	return m
}

func (t *Thread) checkArity(m *Method, args []native.Value) {
	if len(args) != m.nargs {
		panic(fmt.Sprintf("fakejvm: %s called with %d arguments", m, len(args)))
	}
}

func (t *Thread) callVirtual(kind native.Kind, args []native.Value) native.Value {
	entry := kind.CallEntry().String()
	t.argc(args, 3, entry)
	recv := t.deref(args[0].Ref())
	m := t.methodArg(args[1], kind, entry)
	if m.Static {
		panic(fmt.Sprintf("fakejvm: %s on static method %s", entry, m))
	}
	t.checkArity(m, args[2].Vec())
	if recv == nil {
		return t.ThrowNew("java/lang/NullPointerException", "")
	}
	if !recv.Class.IsSubclassOf(m.Class) {
		panic(fmt.Sprintf("fakejvm: %s: receiver %s is not a %s", entry, recv.Class.Name, m.Class.Name))
	}
	target := m
	if m.Name != "<init>" {
		if over := t.vm.virtual(recv.Class, m.Name, m.Desc); over != nil {
			target = over
		}
	}
	return t.invoke(target, recv, args[2].Vec())
}

func (t *Thread) callStatic(kind native.Kind, args []native.Value) native.Value {
	entry := kind.CallStaticEntry().String()
	t.argc(args, 3, entry)
	c := t.classArg(args[0])
	m := t.methodArg(args[1], kind, entry)
	if !m.Static || !c.IsSubclassOf(m.Class) {
		panic(fmt.Sprintf("fakejvm: %s: %s is not a static method of %s", entry, m, c.Name))
	}
	t.checkArity(m, args[2].Vec())
	return t.invoke(m, nil, args[2].Vec())
}

func (t *Thread) newObject(args []native.Value) native.Value {
	t.argc(args, 3, "NewObjectA")
	c := t.classArg(args[0])
	m := t.methodArg(args[1], native.KindVoid, "NewObjectA")
	if m.Name != "<init>" || m.Class != c {
		panic(fmt.Sprintf("fakejvm: NewObjectA: %s is not a constructor of %s", m, c.Name))
	}
	t.checkArity(m, args[2].Vec())
	if c.Interface {
		return t.ThrowNew("java/lang/InstantiationException", c.DottedName())
	}
	in := t.vm.alloc(c)
	t.invoke(m, in, args[2].Vec())
	if t.pending != nil {
		return native.RefValue(0)
	}
	return t.Return(in)
}

// ---------------------------------------------------------------------------
// Exceptions
// ---------------------------------------------------------------------------

func (t *Thread) throw(args []native.Value) native.Value {
	t.argc(args, 1, "Throw")
	in := t.deref(args[0].Ref())
	if in == nil || !in.Class.IsSubclassOf(t.vm.mustClass("java/lang/Throwable")) {
		return native.StatusValue(native.Err)
	}
	t.pending = in
	return native.StatusValue(native.OK)
}

func (t *Thread) throwNewEntry(args []native.Value) native.Value {
	t.argc(args, 2, "ThrowNew")
	c := t.classArg(args[0])
	if !c.IsSubclassOf(t.vm.mustClass("java/lang/Throwable")) {
		return native.StatusValue(native.Err)
	}
	t.pending = t.vm.newThrowable(c, args[1].Str())
	return native.StatusValue(native.OK)
}

func (t *Thread) exceptionOccurred(args []native.Value) native.Value {
	return t.Return(t.pending)
}

// exceptionDescribe prints the pending exception and clears it, as
// HotSpot does.
func (t *Thread) exceptionDescribe(args []native.Value) native.Value {
	if t.pending == nil {
		return native.Void
	}
	desc := t.pending.Class.DottedName()
	if msg := t.pending.Ref("message"); msg != nil {
		desc += ": " + msg.String()
	}
	fmt.Fprintf(t.vm.output(), "Exception in thread %q %s\n", t.name, desc)
	t.pending = nil
	return native.Void
}

func (t *Thread) exceptionClear(args []native.Value) native.Value {
	t.pending = nil
	return native.Void
}

func (t *Thread) exceptionCheck(args []native.Value) native.Value {
	return native.BoolValue(t.pending != nil)
}

// ---------------------------------------------------------------------------
// References and frames
// ---------------------------------------------------------------------------

func (t *Thread) pushLocalFrame(args []native.Value) native.Value {
	t.argc(args, 1, "PushLocalFrame")
	if args[0].Int() < 0 {
		if t.pending == nil {
			t.ThrowNew("java/lang/OutOfMemoryError", "negative local frame capacity")
		}
		return native.StatusValue(native.ENoMem)
	}
	t.frames = append(t.frames, nil)
	return native.StatusValue(native.OK)
}

func (t *Thread) popLocalFrame(args []native.Value) native.Value {
	t.argc(args, 1, "PopLocalFrame")
	if len(t.frames) == 1 {
		panic(fmt.Sprintf("fakejvm: PopLocalFrame without PushLocalFrame on thread %q", t.name))
	}
	result := t.deref(args[0].Ref())
	top := len(t.frames) - 1
	for _, r := range t.frames[top] {
		delete(t.locals, r)
	}
	t.frames = t.frames[:top]
	return t.Return(result)
}

func (t *Thread) deleteLocalRef(args []native.Value) native.Value {
	t.argc(args, 1, "DeleteLocalRef")
	t.freeLocal(args[0].Ref())
	return native.Void
}

func (t *Thread) isSameObject(args []native.Value) native.Value {
	t.argc(args, 2, "IsSameObject")
	return native.BoolValue(t.deref(args[0].Ref()) == t.deref(args[1].Ref()))
}

func (t *Thread) newLocalRef(args []native.Value) native.Value {
	t.argc(args, 1, "NewLocalRef")
	return t.Return(t.deref(args[0].Ref()))
}

func (t *Thread) ensureLocalCapacity(args []native.Value) native.Value {
	t.argc(args, 1, "EnsureLocalCapacity")
	if args[0].Int() < 0 {
		t.ThrowNew("java/lang/OutOfMemoryError", "negative local capacity")
		return native.StatusValue(native.ENoMem)
	}
	return native.StatusValue(native.OK)
}

// ---------------------------------------------------------------------------
// Strings
// ---------------------------------------------------------------------------

func (t *Thread) stringArg(v native.Value) *Instance {
	in := t.deref(v.Ref())
	if in == nil || in.Class.Name != "java/lang/String" {
		panic("fakejvm: not a string reference")
	}
	return in
}

func (t *Thread) newString(args []native.Value) native.Value {
	t.argc(args, 1, "NewString")
	in := t.vm.alloc(t.vm.mustClass("java/lang/String"))
	in.chars = append([]uint16(nil), args[0].CharSlice()...)
	return t.Return(in)
}

func (t *Thread) getStringLength(args []native.Value) native.Value {
	t.argc(args, 1, "GetStringLength")
	return native.IntValue(int32(len(t.stringArg(args[0]).chars)))
}

func (t *Thread) getStringRegion(args []native.Value) native.Value {
	t.argc(args, 3, "GetStringRegion")
	s := t.stringArg(args[0])
	start, buf := int(args[1].Int()), args[2].CharSlice()
	if start < 0 || start+len(buf) > len(s.chars) {
		return t.ThrowNew("java/lang/StringIndexOutOfBoundsException", fmt.Sprintf("region %d+%d of %d", start, len(buf), len(s.chars)))
	}
	copy(buf, s.chars[start:])
	return native.Void
}

// ---------------------------------------------------------------------------
// Arrays
// ---------------------------------------------------------------------------

func (t *Thread) arrayArg(v native.Value) *Instance {
	in := t.deref(v.Ref())
	if in == nil || !in.Class.IsArray() {
		panic("fakejvm: not an array reference")
	}
	return in
}

var primitiveDescriptors = map[native.Kind]string{
	native.KindBoolean: "Z",
	native.KindByte:    "B",
	native.KindChar:    "C",
	native.KindShort:   "S",
	native.KindInt:     "I",
	native.KindLong:    "J",
	native.KindFloat:   "F",
	native.KindDouble:  "D",
}

func (t *Thread) newPrimitiveArray(kind native.Kind, args []native.Value) native.Value {
	t.argc(args, 1, kind.NewArrayEntry().String())
	n := int(args[0].Int())
	if n < 0 {
		return t.ThrowNew("java/lang/NegativeArraySizeException", fmt.Sprint(n))
	}
	in := t.vm.alloc(t.vm.mustClass("[" + primitiveDescriptors[kind]))
	in.elems = make([]native.Value, n)
	return t.Return(in)
}

func (t *Thread) newObjectArray(args []native.Value) native.Value {
	t.argc(args, 3, "NewObjectArray")
	n := int(args[0].Int())
	elem := t.classArg(args[1])
	fill := t.deref(args[2].Ref())
	if n < 0 {
		return t.ThrowNew("java/lang/NegativeArraySizeException", fmt.Sprint(n))
	}
	in := t.vm.alloc(t.vm.mustClass("[" + descriptorOf(elem)))
	in.objs = make([]*Instance, n)
	for i := range in.objs {
		in.objs[i] = fill
	}
	return t.Return(in)
}

func (t *Thread) getArrayLength(args []native.Value) native.Value {
	t.argc(args, 1, "GetArrayLength")
	return native.IntValue(int32(t.arrayArg(args[0]).Len()))
}

func (t *Thread) outOfBounds(i, n int) native.Value {
	return t.ThrowNew("java/lang/ArrayIndexOutOfBoundsException", fmt.Sprintf("Index %d out of bounds for length %d", i, n))
}

func (t *Thread) arrayRegion(kind native.Kind, args []native.Value, set bool) native.Value {
	entry := kind.GetRegionEntry()
	if set {
		entry = kind.SetRegionEntry()
	}
	t.argc(args, 3, entry.String())
	arr := t.arrayArg(args[0])
	if arr.Class.ElemKind != kind {
		panic(fmt.Sprintf("fakejvm: %s on %s", entry, arr.Class.Name))
	}
	start, buf := int(args[1].Int()), args[2].Vec()
	if start < 0 || start+len(buf) > len(arr.elems) {
		return t.outOfBounds(start+len(buf)-1, len(arr.elems))
	}
	if set {
		copy(arr.elems[start:], buf)
	} else {
		copy(buf, arr.elems[start:])
	}
	return native.Void
}

func (t *Thread) getObjectArrayElement(args []native.Value) native.Value {
	t.argc(args, 2, "GetObjectArrayElement")
	arr := t.arrayArg(args[0])
	i := int(args[1].Int())
	if arr.Class.ElemKind != native.KindObject {
		panic("fakejvm: GetObjectArrayElement on " + arr.Class.Name)
	}
	if i < 0 || i >= len(arr.objs) {
		t.outOfBounds(i, len(arr.objs))
		return native.RefValue(0)
	}
	return t.Return(arr.objs[i])
}

func (t *Thread) setObjectArrayElement(args []native.Value) native.Value {
	t.argc(args, 3, "SetObjectArrayElement")
	arr := t.arrayArg(args[0])
	i := int(args[1].Int())
	v := t.deref(args[2].Ref())
	if arr.Class.ElemKind != native.KindObject {
		panic("fakejvm: SetObjectArrayElement on " + arr.Class.Name)
	}
	if i < 0 || i >= len(arr.objs) {
		return t.outOfBounds(i, len(arr.objs))
	}
	if v != nil && !v.Class.IsSubclassOf(arr.Class.Elem) {
		return t.ThrowNew("java/lang/ArrayStoreException", v.Class.DottedName())
	}
	arr.objs[i] = v
	return native.Void
}
