//go:build cgo && jni && (386 || amd64 || arm || arm64 || loong64 || ppc64le || riscv64)

package jnicgo

/*
#cgo linux CFLAGS: -I/usr/lib/jvm/default-java/include -I/usr/lib/jvm/default-java/include/linux
#cgo darwin CFLAGS: -I/Library/Java/Home/include -I/Library/Java/Home/include/darwin
#cgo LDFLAGS: -ljvm

#include <stdint.h>
#include <stdlib.h>
#include <string.h>
#include <jni.h>

// References and method IDs cross into Go as uintptr_t.

static jint gj_get_env(JavaVM *vm, JNIEnv **env, jint version) {
	return (*vm)->GetEnv(vm, (void **)env, version);
}

static jint gj_attach(JavaVM *vm, JNIEnv **env, jint version, char *name, uintptr_t group, jboolean daemon) {
	JavaVMAttachArgs args;
	args.version = version;
	args.name = name;
	args.group = (jobject)group;
	if (daemon) {
		return (*vm)->AttachCurrentThreadAsDaemon(vm, (void **)env, &args);
	}
	return (*vm)->AttachCurrentThread(vm, (void **)env, &args);
}

static jint gj_detach(JavaVM *vm) { return (*vm)->DetachCurrentThread(vm); }
static jint gj_destroy(JavaVM *vm) { return (*vm)->DestroyJavaVM(vm); }

static jint gj_create(JavaVM **vm, JNIEnv **env, jint version, JavaVMOption *opts, jint n, jboolean ignore) {
	JavaVMInitArgs args;
	args.version = version;
	args.nOptions = n;
	args.options = opts;
	args.ignoreUnrecognized = ignore;
	return JNI_CreateJavaVM(vm, (void **)env, &args);
}

static jint gj_created(JavaVM **buf, jsize len, jsize *n) {
	return JNI_GetCreatedJavaVMs(buf, len, n);
}

static void gj_set_option(JavaVMOption *opts, int i, char *s) {
	opts[i].optionString = s;
	opts[i].extraInfo = NULL;
}

static jint gj_get_version(JNIEnv *env) { return (*env)->GetVersion(env); }

static uintptr_t gj_find_class(JNIEnv *env, const char *name) {
	return (uintptr_t)(*env)->FindClass(env, name);
}

static uintptr_t gj_get_superclass(JNIEnv *env, uintptr_t c) {
	return (uintptr_t)(*env)->GetSuperclass(env, (jclass)c);
}

static jboolean gj_is_assignable_from(JNIEnv *env, uintptr_t sub, uintptr_t sup) {
	return (*env)->IsAssignableFrom(env, (jclass)sub, (jclass)sup);
}

static jint gj_throw(JNIEnv *env, uintptr_t t) { return (*env)->Throw(env, (jthrowable)t); }

static jint gj_throw_new(JNIEnv *env, uintptr_t c, const char *msg) {
	return (*env)->ThrowNew(env, (jclass)c, msg);
}

static uintptr_t gj_exception_occurred(JNIEnv *env) { return (uintptr_t)(*env)->ExceptionOccurred(env); }
static void gj_exception_describe(JNIEnv *env) { (*env)->ExceptionDescribe(env); }
static void gj_exception_clear(JNIEnv *env) { (*env)->ExceptionClear(env); }
static jboolean gj_exception_check(JNIEnv *env) { return (*env)->ExceptionCheck(env); }

static jint gj_push_local_frame(JNIEnv *env, jint n) { return (*env)->PushLocalFrame(env, n); }

static uintptr_t gj_pop_local_frame(JNIEnv *env, uintptr_t r) {
	return (uintptr_t)(*env)->PopLocalFrame(env, (jobject)r);
}

static void gj_delete_local_ref(JNIEnv *env, uintptr_t r) { (*env)->DeleteLocalRef(env, (jobject)r); }

static jboolean gj_is_same_object(JNIEnv *env, uintptr_t a, uintptr_t b) {
	return (*env)->IsSameObject(env, (jobject)a, (jobject)b);
}

static uintptr_t gj_new_local_ref(JNIEnv *env, uintptr_t r) {
	return (uintptr_t)(*env)->NewLocalRef(env, (jobject)r);
}

static jint gj_ensure_local_capacity(JNIEnv *env, jint n) { return (*env)->EnsureLocalCapacity(env, n); }

static uintptr_t gj_new_object(JNIEnv *env, uintptr_t c, uintptr_t m, const jvalue *args) {
	return (uintptr_t)(*env)->NewObjectA(env, (jclass)c, (jmethodID)m, args);
}

static uintptr_t gj_get_object_class(JNIEnv *env, uintptr_t o) {
	return (uintptr_t)(*env)->GetObjectClass(env, (jobject)o);
}

static jboolean gj_is_instance_of(JNIEnv *env, uintptr_t o, uintptr_t c) {
	return (*env)->IsInstanceOf(env, (jobject)o, (jclass)c);
}

static uintptr_t gj_get_method_id(JNIEnv *env, uintptr_t c, const char *name, const char *sig) {
	return (uintptr_t)(*env)->GetMethodID(env, (jclass)c, name, sig);
}

static uintptr_t gj_get_static_method_id(JNIEnv *env, uintptr_t c, const char *name, const char *sig) {
	return (uintptr_t)(*env)->GetStaticMethodID(env, (jclass)c, name, sig);
}

// Results come back as the low bytes of a zero-extended 64-bit word, the
// same layout the argument words use.
#define GJ_WORD(T) static uint64_t gj_word_##T(T v) { uint64_t w = 0; memcpy(&w, &v, sizeof v); return w; }
GJ_WORD(jboolean)
GJ_WORD(jbyte)
GJ_WORD(jchar)
GJ_WORD(jshort)
GJ_WORD(jint)
GJ_WORD(jlong)
GJ_WORD(jfloat)
GJ_WORD(jdouble)

static uint64_t gj_word_jobject(jobject v) { return (uint64_t)(uintptr_t)v; }

#define GJ_CALL(T, N) \
	static uint64_t gj_call_##N(JNIEnv *env, uintptr_t o, uintptr_t m, const jvalue *a) { \
		return gj_word_##T((*env)->Call##N##MethodA(env, (jobject)o, (jmethodID)m, a)); \
	} \
	static uint64_t gj_call_static_##N(JNIEnv *env, uintptr_t c, uintptr_t m, const jvalue *a) { \
		return gj_word_##T((*env)->CallStatic##N##MethodA(env, (jclass)c, (jmethodID)m, a)); \
	}
GJ_CALL(jobject, Object)
GJ_CALL(jboolean, Boolean)
GJ_CALL(jbyte, Byte)
GJ_CALL(jchar, Char)
GJ_CALL(jshort, Short)
GJ_CALL(jint, Int)
GJ_CALL(jlong, Long)
GJ_CALL(jfloat, Float)
GJ_CALL(jdouble, Double)

static void gj_call_Void(JNIEnv *env, uintptr_t o, uintptr_t m, const jvalue *a) {
	(*env)->CallVoidMethodA(env, (jobject)o, (jmethodID)m, a);
}

static void gj_call_static_Void(JNIEnv *env, uintptr_t c, uintptr_t m, const jvalue *a) {
	(*env)->CallStaticVoidMethodA(env, (jclass)c, (jmethodID)m, a);
}

static uintptr_t gj_new_string(JNIEnv *env, const jchar *chars, jsize n) {
	return (uintptr_t)(*env)->NewString(env, chars, n);
}

static jsize gj_get_string_length(JNIEnv *env, uintptr_t s) { return (*env)->GetStringLength(env, (jstring)s); }

static void gj_get_string_region(JNIEnv *env, uintptr_t s, jsize start, jsize n, jchar *buf) {
	(*env)->GetStringRegion(env, (jstring)s, start, n, buf);
}

static jsize gj_get_array_length(JNIEnv *env, uintptr_t a) { return (*env)->GetArrayLength(env, (jarray)a); }

static uintptr_t gj_new_object_array(JNIEnv *env, jsize n, uintptr_t c, uintptr_t init) {
	return (uintptr_t)(*env)->NewObjectArray(env, n, (jclass)c, (jobject)init);
}

static uintptr_t gj_get_object_array_element(JNIEnv *env, uintptr_t a, jsize i) {
	return (uintptr_t)(*env)->GetObjectArrayElement(env, (jobjectArray)a, i);
}

static void gj_set_object_array_element(JNIEnv *env, uintptr_t a, jsize i, uintptr_t v) {
	(*env)->SetObjectArrayElement(env, (jobjectArray)a, i, (jobject)v);
}

#define GJ_ARRAY(T, N) \
	static uintptr_t gj_new_##N##_array(JNIEnv *env, jsize n) { \
		return (uintptr_t)(*env)->New##N##Array(env, n); \
	} \
	static void gj_get_##N##_region(JNIEnv *env, uintptr_t a, jsize start, jsize n, uint64_t *words) { \
		T *buf = malloc(n > 0 ? n * sizeof(T) : 1); \
		(*env)->Get##N##ArrayRegion(env, (T##Array)a, start, n, buf); \
		for (jsize i = 0; i < n; i++) { words[i] = gj_word_##T(buf[i]); } \
		free(buf); \
	} \
	static void gj_set_##N##_region(JNIEnv *env, uintptr_t a, jsize start, jsize n, const uint64_t *words) { \
		T *buf = malloc(n > 0 ? n * sizeof(T) : 1); \
		for (jsize i = 0; i < n; i++) { memcpy(&buf[i], &words[i], sizeof(T)); } \
		(*env)->Set##N##ArrayRegion(env, (T##Array)a, start, n, buf); \
		free(buf); \
	}
GJ_ARRAY(jboolean, Boolean)
GJ_ARRAY(jbyte, Byte)
GJ_ARRAY(jchar, Char)
GJ_ARRAY(jshort, Short)
GJ_ARRAY(jint, Int)
GJ_ARRAY(jlong, Long)
GJ_ARRAY(jfloat, Float)
GJ_ARRAY(jdouble, Double)
*/
import "C"

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/chazu/gojni/jni"
	"github.com/chazu/gojni/native"
)

// VM is a JavaVM* created or found through the invocation API.
type VM struct {
	jvm *C.JavaVM
}

// Create starts a JVM. JNI_CreateJavaVM attaches the calling thread; it is
// detached again before Create returns, so every thread that later uses
// the VM attaches through jni.VM. A process can create at most one JVM.
// Failures are *jni.StatusError values.
func Create(args native.InitArgs) (*VM, error) {
	n := len(args.Options)
	var opts *C.JavaVMOption
	if n > 0 {
		opts = (*C.JavaVMOption)(C.calloc(C.size_t(n), C.size_t(unsafe.Sizeof(C.JavaVMOption{}))))
		defer C.free(unsafe.Pointer(opts))
		for i, o := range args.Options {
			s := cString(o)
			defer C.free(unsafe.Pointer(s))
			C.gj_set_option(opts, C.int(i), s)
		}
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	var jvm *C.JavaVM
	var env *C.JNIEnv
	st := native.Status(C.gj_create(&jvm, &env, C.jint(args.Version), opts, C.jint(n), jbool(args.IgnoreUnrecognized)))
	if err := createError(st); err != nil {
		return nil, err
	}
	if err := jni.CheckStatus("DetachCurrentThread", native.Status(C.gj_detach(jvm))); err != nil {
		C.gj_destroy(jvm)
		return nil, err
	}
	log.Infof("created JVM (version %s, %d options)", args.Version, n)
	return &VM{jvm: jvm}, nil
}

// Created returns the JVMs already running in this process, for example
// when Go is loaded into a Java host.
func Created() ([]*VM, error) {
	var n C.jsize
	if err := createdError(native.Status(C.gj_created(nil, 0, &n))); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]*C.JavaVM, n)
	if err := createdError(native.Status(C.gj_created(&buf[0], n, &n))); err != nil {
		return nil, err
	}
	vms := make([]*VM, 0, n)
	for _, jvm := range buf[:n] {
		vms = append(vms, &VM{jvm: jvm})
	}
	return vms, nil
}

func (vm *VM) GetEnv(version native.Version) (native.Table, native.Status) {
	var env *C.JNIEnv
	st := native.Status(C.gj_get_env(vm.jvm, &env, C.jint(version)))
	if st != native.OK {
		return nil, st
	}
	return table{env: env}, st
}

func (vm *VM) AttachCurrentThread(args native.AttachArgs, daemon bool) (native.Table, native.Status) {
	var name *C.char
	if args.Name != "" {
		name = cString(args.Name)
		defer C.free(unsafe.Pointer(name))
	}
	var env *C.JNIEnv
	st := native.Status(C.gj_attach(vm.jvm, &env, C.jint(args.Version), name, C.uintptr_t(args.Group), jbool(daemon)))
	if st != native.OK {
		return nil, st
	}
	return table{env: env}, st
}

func (vm *VM) DetachCurrentThread() native.Status {
	return native.Status(C.gj_detach(vm.jvm))
}

func (vm *VM) DestroyJavaVM() native.Status {
	return native.Status(C.gj_destroy(vm.jvm))
}

// Table wraps the JNIEnv* passed to a native method.
func Table(env unsafe.Pointer) native.Table { return table{env: (*C.JNIEnv)(env)} }

// table is one thread's JNIEnv*. Tables for the same thread compare equal.
type table struct {
	env *C.JNIEnv
}

func (t table) Call(entry native.Entry, args ...native.Value) native.Value {
	env := t.env
	switch entry {
	case native.GetVersion:
		return native.IntValue(int32(C.gj_get_version(env)))
	case native.FindClass:
		s := cString(args[0].Str())
		defer C.free(unsafe.Pointer(s))
		return refValue(C.gj_find_class(env, s))
	case native.GetSuperclass:
		return refValue(C.gj_get_superclass(env, ref(args[0])))
	case native.IsAssignableFrom:
		return boolValue(C.gj_is_assignable_from(env, ref(args[0]), ref(args[1])))
	case native.Throw:
		return native.IntValue(int32(C.gj_throw(env, ref(args[0]))))
	case native.ThrowNew:
		s := cString(args[1].Str())
		defer C.free(unsafe.Pointer(s))
		return native.IntValue(int32(C.gj_throw_new(env, ref(args[0]), s)))
	case native.ExceptionOccurred:
		return refValue(C.gj_exception_occurred(env))
	case native.ExceptionDescribe:
		C.gj_exception_describe(env)
		return native.Void
	case native.ExceptionClear:
		C.gj_exception_clear(env)
		return native.Void
	case native.ExceptionCheck:
		return boolValue(C.gj_exception_check(env))
	case native.PushLocalFrame:
		return native.IntValue(int32(C.gj_push_local_frame(env, C.jint(args[0].Int()))))
	case native.PopLocalFrame:
		return refValue(C.gj_pop_local_frame(env, ref(args[0])))
	case native.DeleteLocalRef:
		C.gj_delete_local_ref(env, ref(args[0]))
		return native.Void
	case native.IsSameObject:
		return boolValue(C.gj_is_same_object(env, ref(args[0]), ref(args[1])))
	case native.NewLocalRef:
		return refValue(C.gj_new_local_ref(env, ref(args[0])))
	case native.EnsureLocalCapacity:
		return native.IntValue(int32(C.gj_ensure_local_capacity(env, C.jint(args[0].Int()))))
	case native.NewObjectA:
		jv := jvalues(args[2].Vec())
		return refValue(C.gj_new_object(env, ref(args[0]), ref(args[1]), jvPtr(jv)))
	case native.GetObjectClass:
		return refValue(C.gj_get_object_class(env, ref(args[0])))
	case native.IsInstanceOf:
		return boolValue(C.gj_is_instance_of(env, ref(args[0]), ref(args[1])))
	case native.GetMethodID, native.GetStaticMethodID:
		name, sig := cString(args[1].Str()), cString(args[2].Str())
		defer C.free(unsafe.Pointer(name))
		defer C.free(unsafe.Pointer(sig))
		if entry == native.GetMethodID {
			return native.Word(uint64(C.gj_get_method_id(env, ref(args[0]), name, sig)))
		}
		return native.Word(uint64(C.gj_get_static_method_id(env, ref(args[0]), name, sig)))
	case native.NewString:
		cs := args[0].CharSlice()
		var p *C.jchar
		if len(cs) > 0 {
			p = (*C.jchar)(unsafe.Pointer(&cs[0]))
		}
		return refValue(C.gj_new_string(env, p, C.jsize(len(cs))))
	case native.GetStringLength:
		return native.IntValue(int32(C.gj_get_string_length(env, ref(args[0]))))
	case native.GetStringRegion:
		buf := args[2].CharSlice()
		if len(buf) > 0 {
			C.gj_get_string_region(env, ref(args[0]), C.jsize(args[1].Int()), C.jsize(len(buf)), (*C.jchar)(unsafe.Pointer(&buf[0])))
		}
		return native.Void
	case native.GetArrayLength:
		return native.IntValue(int32(C.gj_get_array_length(env, ref(args[0]))))
	case native.NewObjectArray:
		return refValue(C.gj_new_object_array(env, C.jsize(args[0].Int()), ref(args[1]), ref(args[2])))
	case native.GetObjectArrayElement:
		return refValue(C.gj_get_object_array_element(env, ref(args[0]), C.jsize(args[1].Int())))
	case native.SetObjectArrayElement:
		C.gj_set_object_array_element(env, ref(args[0]), C.jsize(args[1].Int()), ref(args[2]))
		return native.Void
	}

	if v, ok := t.call(entry, args); ok {
		return v
	}
	if v, ok := t.array(entry, args); ok {
		return v
	}
	panic(fmt.Sprintf("jnicgo: unsupported entry %s", entry))
}

// call handles the Call<Type>MethodA and CallStatic<Type>MethodA families.
func (t table) call(entry native.Entry, args []native.Value) (native.Value, bool) {
	if len(args) != 3 {
		return native.Void, false
	}
	env, o, m := t.env, ref(args[0]), C.uintptr_t(args[1].MethodID())
	a := jvalues(args[2].Vec())
	p := jvPtr(a)
	var w C.uint64_t
	switch entry {
	case native.CallObjectMethodA:
		w = C.gj_call_Object(env, o, m, p)
	case native.CallBooleanMethodA:
		w = C.gj_call_Boolean(env, o, m, p)
	case native.CallByteMethodA:
		w = C.gj_call_Byte(env, o, m, p)
	case native.CallCharMethodA:
		w = C.gj_call_Char(env, o, m, p)
	case native.CallShortMethodA:
		w = C.gj_call_Short(env, o, m, p)
	case native.CallIntMethodA:
		w = C.gj_call_Int(env, o, m, p)
	case native.CallLongMethodA:
		w = C.gj_call_Long(env, o, m, p)
	case native.CallFloatMethodA:
		w = C.gj_call_Float(env, o, m, p)
	case native.CallDoubleMethodA:
		w = C.gj_call_Double(env, o, m, p)
	case native.CallVoidMethodA:
		C.gj_call_Void(env, o, m, p)
	case native.CallStaticObjectMethodA:
		w = C.gj_call_static_Object(env, o, m, p)
	case native.CallStaticBooleanMethodA:
		w = C.gj_call_static_Boolean(env, o, m, p)
	case native.CallStaticByteMethodA:
		w = C.gj_call_static_Byte(env, o, m, p)
	case native.CallStaticCharMethodA:
		w = C.gj_call_static_Char(env, o, m, p)
	case native.CallStaticShortMethodA:
		w = C.gj_call_static_Short(env, o, m, p)
	case native.CallStaticIntMethodA:
		w = C.gj_call_static_Int(env, o, m, p)
	case native.CallStaticLongMethodA:
		w = C.gj_call_static_Long(env, o, m, p)
	case native.CallStaticFloatMethodA:
		w = C.gj_call_static_Float(env, o, m, p)
	case native.CallStaticDoubleMethodA:
		w = C.gj_call_static_Double(env, o, m, p)
	case native.CallStaticVoidMethodA:
		C.gj_call_static_Void(env, o, m, p)
	default:
		return native.Void, false
	}
	return native.Word(uint64(w)), true
}

// array handles primitive array creation and region copies.
func (t table) array(entry native.Entry, args []native.Value) (native.Value, bool) {
	env := t.env
	switch entry {
	case native.NewBooleanArray:
		return refValue(C.gj_new_Boolean_array(env, C.jsize(args[0].Int()))), true
	case native.NewByteArray:
		return refValue(C.gj_new_Byte_array(env, C.jsize(args[0].Int()))), true
	case native.NewCharArray:
		return refValue(C.gj_new_Char_array(env, C.jsize(args[0].Int()))), true
	case native.NewShortArray:
		return refValue(C.gj_new_Short_array(env, C.jsize(args[0].Int()))), true
	case native.NewIntArray:
		return refValue(C.gj_new_Int_array(env, C.jsize(args[0].Int()))), true
	case native.NewLongArray:
		return refValue(C.gj_new_Long_array(env, C.jsize(args[0].Int()))), true
	case native.NewFloatArray:
		return refValue(C.gj_new_Float_array(env, C.jsize(args[0].Int()))), true
	case native.NewDoubleArray:
		return refValue(C.gj_new_Double_array(env, C.jsize(args[0].Int()))), true
	}

	type region func(env *C.JNIEnv, a C.uintptr_t, start, n C.jsize, words *C.uint64_t)
	var get, set region
	switch entry {
	case native.GetBooleanArrayRegion:
		get = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_get_Boolean_region(e, a, s, n, w) }
	case native.GetByteArrayRegion:
		get = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_get_Byte_region(e, a, s, n, w) }
	case native.GetCharArrayRegion:
		get = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_get_Char_region(e, a, s, n, w) }
	case native.GetShortArrayRegion:
		get = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_get_Short_region(e, a, s, n, w) }
	case native.GetIntArrayRegion:
		get = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_get_Int_region(e, a, s, n, w) }
	case native.GetLongArrayRegion:
		get = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_get_Long_region(e, a, s, n, w) }
	case native.GetFloatArrayRegion:
		get = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_get_Float_region(e, a, s, n, w) }
	case native.GetDoubleArrayRegion:
		get = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_get_Double_region(e, a, s, n, w) }
	case native.SetBooleanArrayRegion:
		set = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_set_Boolean_region(e, a, s, n, w) }
	case native.SetByteArrayRegion:
		set = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_set_Byte_region(e, a, s, n, w) }
	case native.SetCharArrayRegion:
		set = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_set_Char_region(e, a, s, n, w) }
	case native.SetShortArrayRegion:
		set = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_set_Short_region(e, a, s, n, w) }
	case native.SetIntArrayRegion:
		set = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_set_Int_region(e, a, s, n, w) }
	case native.SetLongArrayRegion:
		set = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_set_Long_region(e, a, s, n, w) }
	case native.SetFloatArrayRegion:
		set = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_set_Float_region(e, a, s, n, w) }
	case native.SetDoubleArrayRegion:
		set = func(e *C.JNIEnv, a C.uintptr_t, s, n C.jsize, w *C.uint64_t) { C.gj_set_Double_region(e, a, s, n, w) }
	default:
		return native.Void, false
	}

	buf := args[2].Vec()
	if len(buf) == 0 {
		return native.Void, true
	}
	words := make([]C.uint64_t, len(buf))
	start, n := C.jsize(args[1].Int()), C.jsize(len(buf))
	if get != nil {
		get(env, ref(args[0]), start, n, &words[0])
		for i, w := range words {
			buf[i] = native.Word(uint64(w))
		}
		return native.Void, true
	}
	for i, v := range buf {
		words[i] = C.uint64_t(v.Word())
	}
	set(env, ref(args[0]), start, n, &words[0])
	return native.Void, true
}

func ref(v native.Value) C.uintptr_t { return C.uintptr_t(v.Ref()) }

func refValue(r C.uintptr_t) native.Value { return native.RefValue(native.Ref(r)) }

func boolValue(b C.jboolean) native.Value { return native.BoolValue(b != 0) }

func jbool(b bool) C.jboolean {
	if b {
		return C.JNI_TRUE
	}
	return C.JNI_FALSE
}

// cString converts s to a C-allocated modified UTF-8 string. The caller
// frees it.
func cString(s string) *C.char {
	b := native.EncodeModifiedUTF8(s)
	return (*C.char)(C.CBytes(b))
}

// jvalues lays argument words out as a jvalue array. Each word already
// holds its value in the low bytes, so on a little-endian target the word
// is a valid jvalue as is.
func jvalues(vals []native.Value) []uint64 {
	out := make([]uint64, len(vals))
	for i, v := range vals {
		out[i] = v.Word()
	}
	return out
}

func jvPtr(words []uint64) *C.jvalue {
	if len(words) == 0 {
		return nil
	}
	return (*C.jvalue)(unsafe.Pointer(&words[0]))
}
