package fakejvm

import (
	"fmt"

	"github.com/chazu/gojni/native"
)

// fieldKind maps the first byte of a field descriptor to its value kind.
func fieldKind(c byte) (native.Kind, bool) {
	switch c {
	case 'Z':
		return native.KindBoolean, true
	case 'B':
		return native.KindByte, true
	case 'C':
		return native.KindChar, true
	case 'S':
		return native.KindShort, true
	case 'I':
		return native.KindInt, true
	case 'J':
		return native.KindLong, true
	case 'F':
		return native.KindFloat, true
	case 'D':
		return native.KindDouble, true
	case 'L', '[':
		return native.KindObject, true
	}
	return 0, false
}

// skipField returns the index just past the field descriptor starting at i.
func skipField(desc string, i int) (int, error) {
	for i < len(desc) && desc[i] == '[' {
		i++
	}
	if i >= len(desc) {
		return 0, fmt.Errorf("truncated descriptor %q", desc)
	}
	switch desc[i] {
	case 'Z', 'B', 'C', 'S', 'I', 'J', 'F', 'D':
		return i + 1, nil
	case 'L':
		for j := i + 1; j < len(desc); j++ {
			if desc[j] == ';' {
				if j == i+1 {
					return 0, fmt.Errorf("empty class name in %q", desc)
				}
				return j + 1, nil
			}
		}
		return 0, fmt.Errorf("unterminated class name in %q", desc)
	}
	return 0, fmt.Errorf("bad type %q in descriptor %q", desc[i], desc)
}

// parseMethodDescriptor returns the argument count and return kind of a
// method descriptor such as "(ILjava/lang/String;)V".
func parseMethodDescriptor(desc string) (nargs int, ret native.Kind, err error) {
	if len(desc) < 3 || desc[0] != '(' {
		return 0, 0, fmt.Errorf("malformed method descriptor %q", desc)
	}
	i := 1
	for i < len(desc) && desc[i] != ')' {
		if i, err = skipField(desc, i); err != nil {
			return 0, 0, err
		}
		nargs++
	}
	if i >= len(desc)-1 {
		return 0, 0, fmt.Errorf("missing return type in %q", desc)
	}
	i++
	if desc[i:] == "V" {
		return nargs, native.KindVoid, nil
	}
	end, err := skipField(desc, i)
	if err != nil {
		return 0, 0, err
	}
	if end != len(desc) {
		return 0, 0, fmt.Errorf("trailing data in %q", desc)
	}
	ret, _ = fieldKind(desc[i])
	return nargs, ret, nil
}
