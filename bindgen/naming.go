package bindgen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// slashed converts a dotted Java class name to its binary form.
// e.g., "java.lang.String" → "java/lang/String"
func slashed(name string) string { return strings.ReplaceAll(name, ".", "/") }

// slashToDot converts a binary class name to the dotted form used in
// comments.
func slashToDot(name string) string { return strings.ReplaceAll(name, "/", ".") }

// defaultGoName converts a class name to a Go type name: the simple name,
// with nested-class separators replaced.
// e.g., "java/util/Map$Entry" → "Map_Entry"
func defaultGoName(name string) string {
	simple := name[strings.LastIndex(name, "/")+1:]
	parts := strings.Split(simple, "$")
	for i, p := range parts {
		parts[i] = exported(p)
	}
	return strings.Join(parts, "_")
}

// exported converts a Java member name to an exported Go name.
// e.g., "valueWithAdded" → "ValueWithAdded"
func exported(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// nativeSymbol returns the C symbol the JVM looks up for a native method.
// The long form appends the mangled argument signature.
// e.g., "a/B", "f", long → "Java_a_B_f__I"
func nativeSymbol(class, method string, args []javaType, long bool) string {
	sym := "Java_" + mangle(class) + "_" + mangle(method)
	if long {
		sym += "__" + mangle(argDescriptor(args))
	}
	return sym
}

// mangle escapes a binary name or descriptor for use in a native symbol.
// e.g., "com/example/Greeter$Inner" → "com_example_Greeter_00024Inner"
func mangle(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '/':
			b.WriteByte('_')
		case r == '_':
			b.WriteString("_1")
		case r == ';':
			b.WriteString("_2")
		case r == '[':
			b.WriteString("_3")
		case r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		default:
			for _, u := range utf16.Encode([]rune{r}) {
				fmt.Fprintf(&b, "_0%04x", u)
			}
		}
	}
	return b.String()
}
