package jni

import (
	"unicode/utf16"

	"github.com/chazu/gojni/native"
)

// String wraps java.lang.String.
type String struct {
	Object
}

func (*String) Signature() string { return "Ljava/lang/String;" }

// NewString creates a Java string from s. Invalid UTF-8 in s becomes
// U+FFFD.
func NewString(tok NoException, s string) (*String, NoException, error) {
	env := tok.mustEnv()
	env.take(tok)
	res := env.table.Call(native.NewString, native.Chars(utf16.Encode([]rune(s))))
	return finish[*String](env, res)
}

// Len returns the length in UTF-16 code units. It panics with
// ErrNullReceiver if s is null.
func (s *String) Len(tok NoException) int {
	env, ref := borrowRef(tok, s)
	return int(env.table.Call(native.GetStringLength, native.RefValue(ref)).Int())
}

// Value copies the string's contents into Go. Unpaired surrogates become
// U+FFFD. Like Len it panics with ErrNullReceiver on a null string.
func (s *String) Value(tok NoException) string {
	env, ref := borrowRef(tok, s)
	return env.rawString(ref)
}
