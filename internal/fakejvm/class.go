package fakejvm

import (
	"fmt"
	"strings"

	"github.com/chazu/gojni/native"
)

// MethodFunc is the Go body of a method. this is nil for static methods.
// Reference arguments arrive as local references of t; a body returns
// object results with t.Return and throws with t.Throw or t.ThrowNew.
type MethodFunc func(t *Thread, this *Instance, args []native.Value) native.Value

// MethodDef declares one method of a ClassDef. A nil Body declares an
// abstract method.
type MethodDef struct {
	Name   string
	Desc   string
	Static bool
	Body   MethodFunc
}

// ClassDef declares a class or interface for VM.DefineClass. Super defaults
// to java/lang/Object for classes and is ignored for interfaces.
type ClassDef struct {
	Name       string
	Super      string
	Interface  bool
	Interfaces []string
	Methods    []MethodDef
}

// Method is a resolved method. Its ID is the jmethodID handed out by
// GetMethodID and GetStaticMethodID.
type Method struct {
	ID     native.MethodID
	Class  *Class
	Name   string
	Desc   string
	Static bool
	Body   MethodFunc

	nargs int
	ret   native.Kind
}

func (m *Method) String() string {
	return m.Class.Name + "." + m.Name + m.Desc
}

// Class is a loaded class, interface or array class.
type Class struct {
	Name       string
	Super      *Class
	Interfaces []*Class
	Interface  bool

	// Array classes only.
	Elem     *Class
	ElemKind native.Kind

	methods map[string]*Method
	mirror  *Instance
}

func methodKey(name, desc string) string { return name + desc }

// DottedName is the class name as java.lang.Class.getName reports it.
func (c *Class) DottedName() string {
	return strings.ReplaceAll(c.Name, "/", ".")
}

// IsArray reports whether c is an array class.
func (c *Class) IsArray() bool {
	return strings.HasPrefix(c.Name, "[")
}

// IsSubclassOf reports whether an instance of c may be used where target
// is expected.
func (c *Class) IsSubclassOf(target *Class) bool {
	if c == target || target.Name == "java/lang/Object" {
		return true
	}
	if c.IsArray() {
		return target.IsArray() && c.Elem != nil && target.Elem != nil && c.Elem.IsSubclassOf(target.Elem)
	}
	for k := c; k != nil; k = k.Super {
		if k == target {
			return true
		}
		for _, iface := range k.Interfaces {
			if iface.IsSubclassOf(target) {
				return true
			}
		}
	}
	return false
}

// lookupVirtual finds an instance method by name and descriptor, walking the
// superclass chain first and then the implemented interfaces.
func (c *Class) lookupVirtual(name, desc string) *Method {
	key := methodKey(name, desc)
	for k := c; k != nil; k = k.Super {
		if m := k.methods[key]; m != nil && !m.Static {
			return m
		}
	}
	for k := c; k != nil; k = k.Super {
		for _, iface := range k.Interfaces {
			if m := iface.lookupVirtual(name, desc); m != nil {
				return m
			}
		}
	}
	return nil
}

// lookupStatic finds a static method in c or one of its superclasses.
func (c *Class) lookupStatic(name, desc string) *Method {
	key := methodKey(name, desc)
	for k := c; k != nil; k = k.Super {
		if m := k.methods[key]; m != nil && m.Static {
			return m
		}
	}
	return nil
}

// DefineClass loads a class from def. It panics if def names an unknown
// superclass or interface, or carries a malformed descriptor; class
// definitions are test fixtures and a bad one is a bug in the test.
func (vm *VM) DefineClass(def ClassDef) *Class {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if _, ok := vm.classes[def.Name]; ok {
		panic(fmt.Sprintf("fakejvm: class %s already defined", def.Name))
	}
	c := &Class{
		Name:      def.Name,
		Interface: def.Interface,
		methods:   make(map[string]*Method),
	}
	if !def.Interface && def.Name != "java/lang/Object" {
		super := def.Super
		if super == "" {
			super = "java/lang/Object"
		}
		c.Super = vm.mustClassLocked(super)
	}
	for _, name := range def.Interfaces {
		iface := vm.mustClassLocked(name)
		if !iface.Interface {
			panic(fmt.Sprintf("fakejvm: %s implements non-interface %s", def.Name, name))
		}
		c.Interfaces = append(c.Interfaces, iface)
	}
	for _, md := range def.Methods {
		vm.addMethodLocked(c, md)
	}
	vm.classes[c.Name] = c
	c.mirror = vm.mirrorLocked(c)
	return c
}

func (vm *VM) addMethodLocked(c *Class, md MethodDef) {
	nargs, ret, err := parseMethodDescriptor(md.Desc)
	if err != nil {
		panic(fmt.Sprintf("fakejvm: %s.%s: %v", c.Name, md.Name, err))
	}
	if md.Name == "<init>" && (md.Static || ret != native.KindVoid) {
		panic(fmt.Sprintf("fakejvm: %s: constructors are void instance methods", c.Name))
	}
	vm.methods = append(vm.methods, nil)
	m := &Method{
		ID:     native.MethodID(len(vm.methods)),
		Class:  c,
		Name:   md.Name,
		Desc:   md.Desc,
		Static: md.Static,
		Body:   md.Body,
		nargs:  nargs,
		ret:    ret,
	}
	vm.methods[len(vm.methods)-1] = m
	c.methods[methodKey(md.Name, md.Desc)] = m
}

func (vm *VM) mirrorLocked(c *Class) *Instance {
	cls := vm.classes["java/lang/Class"]
	in := vm.alloc(cls)
	in.mirror = c
	return in
}

func (vm *VM) mustClassLocked(name string) *Class {
	c := vm.classLocked(name)
	if c == nil {
		panic(fmt.Sprintf("fakejvm: unknown class %s", name))
	}
	return c
}

// classLocked resolves a class name as FindClass sees it: a slash-separated
// binary name, or an array descriptor.
func (vm *VM) classLocked(name string) *Class {
	if c, ok := vm.classes[name]; ok {
		return c
	}
	if !strings.HasPrefix(name, "[") {
		return nil
	}
	elem := name[1:]
	c := &Class{Name: name, Super: vm.classes["java/lang/Object"], methods: map[string]*Method{}}
	switch {
	case len(elem) == 1:
		kind, ok := fieldKind(elem[0])
		if !ok || kind == native.KindObject {
			return nil
		}
		c.ElemKind = kind
	case strings.HasPrefix(elem, "["):
		if c.Elem = vm.classLocked(elem); c.Elem == nil {
			return nil
		}
		c.ElemKind = native.KindObject
	case strings.HasPrefix(elem, "L") && strings.HasSuffix(elem, ";"):
		if c.Elem = vm.classes[elem[1:len(elem)-1]]; c.Elem == nil {
			return nil
		}
		c.ElemKind = native.KindObject
	default:
		return nil
	}
	vm.classes[name] = c
	c.mirror = vm.mirrorLocked(c)
	return c
}

// Class returns the loaded class called name, or nil.
func (vm *VM) Class(name string) *Class {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.classLocked(name)
}

func (vm *VM) method(id native.MethodID) *Method {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	if id == 0 || int(id) > len(vm.methods) {
		return nil
	}
	return vm.methods[id-1]
}

// descriptorOf returns the field descriptor naming c.
func descriptorOf(c *Class) string {
	if c.IsArray() {
		return c.Name
	}
	return "L" + c.Name + ";"
}

func (vm *VM) mustClass(name string) *Class {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.mustClassLocked(name)
}

// declared returns c's own name+desc method, static or not.
func (vm *VM) declared(c *Class, name, desc string) *Method {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return c.methods[methodKey(name, desc)]
}

func (vm *VM) virtual(c *Class, name, desc string) *Method {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return c.lookupVirtual(name, desc)
}

func (vm *VM) static(c *Class, name, desc string) *Method {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return c.lookupStatic(name, desc)
}
