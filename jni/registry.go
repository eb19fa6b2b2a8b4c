package jni

import (
	"fmt"
	"reflect"
	"sync"
)

// wrapperInfo describes how to build a wrapper of one Go type around an
// Object.
type wrapperInfo struct {
	elem  reflect.Type
	index []int // path to the embedded Object; nil for *Object itself
}

// wrapperRegistry caches wrapperInfo per wrapper type.
// Thread-safe for concurrent lookup.
type wrapperRegistry struct {
	mu    sync.RWMutex
	types map[reflect.Type]*wrapperInfo
}

var wrappers = &wrapperRegistry{types: make(map[reflect.Type]*wrapperInfo)}

func (r *wrapperRegistry) lookup(t reflect.Type) *wrapperInfo {
	r.mu.RLock()
	info, ok := r.types[t]
	r.mu.RUnlock()
	if ok {
		return info
	}

	info = describeWrapper(t)
	r.mu.Lock()
	r.types[t] = info
	r.mu.Unlock()
	return info
}

func describeWrapper(t reflect.Type) *wrapperInfo {
	if t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("jni: %s is not a wrapper type (want a pointer to a struct embedding jni.Object)", t))
	}
	elem := t.Elem()
	if elem == objectType {
		return &wrapperInfo{elem: elem}
	}
	f, ok := elem.FieldByName("Object")
	if !ok || f.Type != objectType {
		panic(fmt.Sprintf("jni: %s does not embed jni.Object", elem))
	}
	return &wrapperInfo{elem: elem, index: f.Index}
}

func (w *wrapperInfo) build(obj Object) reflect.Value {
	v := reflect.New(w.elem)
	target := v.Elem()
	if w.index != nil {
		target = target.FieldByIndex(w.index)
	}
	target.Set(reflect.ValueOf(obj))
	return v
}

// wrap builds a T around obj. A null obj gives a nil T.
func wrap[T Type](obj Object) T {
	var zero T
	if obj.h == nil {
		return zero
	}
	return wrappers.lookup(reflect.TypeFor[T]()).build(obj).Interface().(T)
}
