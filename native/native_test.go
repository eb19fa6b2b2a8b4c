package native

import (
	"bytes"
	"testing"
)

func TestModifiedUTF8_Encode(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"test", []byte{'t', 'e', 's', 't', 0}},
		{"a\x00b", []byte{'a', 0xc0, 0x80, 'b', 0}},
		{"é", []byte{0xc3, 0xa9, 0}},
		{"\U0001F600", []byte{0xed, 0xa0, 0xbd, 0xed, 0xb8, 0x80, 0}},
		{"", []byte{0}},
	}
	for _, tt := range tests {
		got := EncodeModifiedUTF8(tt.in)
		if !bytes.Equal(got, tt.want) {
			t.Errorf("EncodeModifiedUTF8(%q) = %x, want %x", tt.in, got, tt.want)
		}
	}
}

func TestModifiedUTF8_RoundTrip(t *testing.T) {
	for _, s := range []string{"rustjni/test/SimpleClass", "a\x00b", "naïve", "\U0001F600 smile"} {
		got, err := DecodeModifiedUTF8(EncodeModifiedUTF8(s))
		if err != nil {
			t.Fatalf("DecodeModifiedUTF8(%q): %v", s, err)
		}
		if got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestModifiedUTF8_Malformed(t *testing.T) {
	if _, err := DecodeModifiedUTF8([]byte{0xc0}); err == nil {
		t.Error("expected error for truncated sequence")
	}
	if _, err := DecodeModifiedUTF8([]byte{0xf0, 0x9f, 0x98, 0x80}); err == nil {
		t.Error("expected error for four-byte sequence")
	}
}

func TestValue_Primitives(t *testing.T) {
	if got := IntValue(-17).Int(); got != -17 {
		t.Errorf("Int round trip: got %d", got)
	}
	if got := LongValue(-1 << 40).Long(); got != -1<<40 {
		t.Errorf("Long round trip: got %d", got)
	}
	if got := ShortValue(-3).Short(); got != -3 {
		t.Errorf("Short round trip: got %d", got)
	}
	if got := ByteValue(-128).Byte(); got != -128 {
		t.Errorf("Byte round trip: got %d", got)
	}
	if got := FloatValue(1.5).Float(); got != 1.5 {
		t.Errorf("Float round trip: got %v", got)
	}
	if got := DoubleValue(-2.25).Double(); got != -2.25 {
		t.Errorf("Double round trip: got %v", got)
	}
	if !BoolValue(true).Bool() || BoolValue(false).Bool() {
		t.Error("Bool round trip failed")
	}
	if got := IntValue(-1).Word(); got != 0xffffffff {
		t.Errorf("IntValue must occupy the low 32 bits only, got %x", got)
	}
}

func TestValue_BoolGarbagePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for jboolean 10")
		}
	}()
	Word(10).Bool()
}

func TestKind_Entries(t *testing.T) {
	tests := []struct {
		kind             Kind
		call, callStatic Entry
	}{
		{KindVoid, CallVoidMethodA, CallStaticVoidMethodA},
		{KindObject, CallObjectMethodA, CallStaticObjectMethodA},
		{KindBoolean, CallBooleanMethodA, CallStaticBooleanMethodA},
		{KindInt, CallIntMethodA, CallStaticIntMethodA},
		{KindDouble, CallDoubleMethodA, CallStaticDoubleMethodA},
	}
	for _, tt := range tests {
		if got := tt.kind.CallEntry(); got != tt.call {
			t.Errorf("%s.CallEntry() = %s, want %s", tt.kind, got, tt.call)
		}
		if got := tt.kind.CallStaticEntry(); got != tt.callStatic {
			t.Errorf("%s.CallStaticEntry() = %s, want %s", tt.kind, got, tt.callStatic)
		}
	}
	if got := KindLong.NewArrayEntry(); got != NewLongArray {
		t.Errorf("KindLong.NewArrayEntry() = %s", got)
	}
	if got := KindObject.NewArrayEntry(); got != NewObjectArray {
		t.Errorf("KindObject.NewArrayEntry() = %s", got)
	}
	if got := KindChar.GetRegionEntry(); got != GetCharArrayRegion {
		t.Errorf("KindChar.GetRegionEntry() = %s", got)
	}
	if got := KindFloat.SetRegionEntry(); got != SetFloatArrayRegion {
		t.Errorf("KindFloat.SetRegionEntry() = %s", got)
	}
}

func TestVersion_StringAndParse(t *testing.T) {
	tests := []struct {
		v    Version
		text string
	}{
		{Version1_1, "1.1"},
		{Version1_8, "1.8"},
		{Version9, "9"},
		{Version10, "10"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.text {
			t.Errorf("%#x.String() = %q, want %q", int32(tt.v), got, tt.text)
		}
		parsed, err := ParseVersion(tt.text)
		if err != nil {
			t.Fatalf("ParseVersion(%q): %v", tt.text, err)
		}
		if parsed != tt.v {
			t.Errorf("ParseVersion(%q) = %#x, want %#x", tt.text, int32(parsed), int32(tt.v))
		}
	}
	if _, err := ParseVersion("eight"); err == nil {
		t.Error("expected error for non-numeric version")
	}
}

func TestStatus_String(t *testing.T) {
	if EDetached.String() != "JNI_EDETACHED" {
		t.Errorf("EDetached.String() = %q", EDetached.String())
	}
	if Status(7).String() != "Status(7)" {
		t.Errorf("Status(7).String() = %q", Status(7).String())
	}
}
