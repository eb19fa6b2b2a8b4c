package native

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

// EncodeModifiedUTF8 converts a Go string to the JVM's modified UTF-8: NUL
// is written as the two bytes C0 80 and supplementary characters are written
// as a surrogate pair, three bytes per surrogate. The result carries a
// trailing NUL so it can be handed to the C side as is.
func EncodeModifiedUTF8(s string) []byte {
	buf := make([]byte, 0, len(s)+1)
	for _, r := range s {
		switch {
		case r == 0:
			buf = append(buf, 0xc0, 0x80)
		case r < 0x80:
			buf = append(buf, byte(r))
		case r > 0xffff:
			hi, lo := utf16.EncodeRune(r)
			buf = appendThreeByte(buf, hi)
			buf = appendThreeByte(buf, lo)
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return append(buf, 0)
}

func appendThreeByte(buf []byte, r rune) []byte {
	return append(buf,
		0xe0|byte(r>>12),
		0x80|byte(r>>6)&0x3f,
		0x80|byte(r)&0x3f)
}

var errModifiedUTF8 = errors.New("native: malformed modified UTF-8")

// DecodeModifiedUTF8 is the inverse of EncodeModifiedUTF8. A trailing NUL,
// if present, is dropped.
func DecodeModifiedUTF8(b []byte) (string, error) {
	if n := len(b); n > 0 && b[n-1] == 0 {
		b = b[:n-1]
	}
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			units = append(units, uint16(c))
			i++
		case c&0xe0 == 0xc0:
			if i+1 >= len(b) || b[i+1]&0xc0 != 0x80 {
				return "", errModifiedUTF8
			}
			units = append(units, uint16(c&0x1f)<<6|uint16(b[i+1]&0x3f))
			i += 2
		case c&0xf0 == 0xe0:
			if i+2 >= len(b) || b[i+1]&0xc0 != 0x80 || b[i+2]&0xc0 != 0x80 {
				return "", errModifiedUTF8
			}
			units = append(units, uint16(c&0x0f)<<12|uint16(b[i+1]&0x3f)<<6|uint16(b[i+2]&0x3f))
			i += 3
		default:
			return "", errModifiedUTF8
		}
	}
	return string(utf16.Decode(units)), nil
}
