package jni

import "github.com/chazu/gojni/native"

// Class wraps java.lang.Class.
type Class struct {
	Object
}

func (*Class) Signature() string { return "Ljava/lang/Class;" }

// FindClass loads a class by its slash-separated binary name, such as
// "java/lang/String", or by an array descriptor such as "[I". A class that
// cannot be found comes back as the thrown NoClassDefFoundError.
func FindClass(tok NoException, path string) (*Class, NoException, error) {
	env := tok.mustEnv()
	env.take(tok)
	ref, thr := env.findClass(path)
	if thr != nil {
		return nil, env.issue(), thr
	}
	return &Class{Object: env.newObject(ref)}, env.issue(), nil
}

// ClassOf loads the class of the wrapper type T.
func ClassOf[T Reference](tok NoException) (*Class, NoException, error) {
	return FindClass(tok, ClassPath(SignatureOf[T]()))
}

// Superclass returns c's direct superclass, or nil for java.lang.Object and
// for interfaces. It panics with ErrNullReceiver if c is null.
func (c *Class) Superclass(tok NoException) *Class {
	env, ref := borrowRef(tok, c)
	sup := env.table.Call(native.GetSuperclass, native.RefValue(ref)).Ref()
	if sup == 0 {
		return nil
	}
	return &Class{Object: env.newObject(sup)}
}

// IsSubtypeOf reports whether an instance of c can be assigned to a
// variable of type other. Either class being null panics with
// ErrNullReceiver.
func (c *Class) IsSubtypeOf(tok NoException, other *Class) bool {
	env, ref := borrowRef(tok, c)
	_, oref := borrowRef(tok, other)
	return env.table.Call(native.IsAssignableFrom, native.RefValue(ref), native.RefValue(oref)).Bool()
}

// Name returns the dotted binary name, as Class.getName does.
func (c *Class) Name(tok NoException) (string, NoException, error) {
	s, tok, err := CallMethod0[*String](tok, c, "getName")
	if err != nil || s == nil {
		return "", tok, err
	}
	defer s.Delete()
	return s.Value(tok), tok, nil
}
