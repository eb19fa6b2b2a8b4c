package fakejvm

import (
	"fmt"
	"unicode/utf16"

	"github.com/chazu/gojni/native"
)

// Instance is a heap object. Plain objects keep named fields; strings,
// arrays and class mirrors keep their payload in dedicated slots.
type Instance struct {
	Class *Class

	id     uint64
	fields map[string]native.Value
	refs   map[string]*Instance

	chars  []uint16       // java/lang/String
	elems  []native.Value // primitive arrays
	objs   []*Instance    // object arrays
	mirror *Class         // java/lang/Class
}

func (vm *VM) alloc(c *Class) *Instance {
	return &Instance{Class: c, id: vm.nextID.Add(1)}
}

// ID is the instance's identity hash.
func (in *Instance) ID() uint64 { return in.id }

// Field returns a primitive field, zero if it was never set.
func (in *Instance) Field(name string) native.Value {
	return in.fields[name]
}

func (in *Instance) SetField(name string, v native.Value) {
	if in.fields == nil {
		in.fields = make(map[string]native.Value)
	}
	in.fields[name] = v
}

// Ref returns a reference field, nil if it was never set.
func (in *Instance) Ref(name string) *Instance {
	return in.refs[name]
}

func (in *Instance) SetRef(name string, v *Instance) {
	if in.refs == nil {
		in.refs = make(map[string]*Instance)
	}
	in.refs[name] = v
}

// Mirror returns the class a java/lang/Class instance stands for.
func (in *Instance) Mirror() *Class { return in.mirror }

// Len is the length of a string or array instance.
func (in *Instance) Len() int {
	switch {
	case in.chars != nil:
		return len(in.chars)
	case in.objs != nil:
		return len(in.objs)
	}
	return len(in.elems)
}

// String returns the contents of a string instance, or the default
// Object.toString form for anything else.
func (in *Instance) String() string {
	if in == nil {
		return "null"
	}
	if in.Class != nil && in.Class.Name == "java/lang/String" {
		return string(utf16.Decode(in.chars))
	}
	return fmt.Sprintf("%s@%x", in.Class.DottedName(), in.id)
}
