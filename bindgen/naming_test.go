package bindgen

import "testing"

func TestSlashed(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"java.lang.String", "java/lang/String"},
		{"java/lang/String", "java/lang/String"},
		{"Top", "Top"},
		{"a.b.C$D", "a/b/C$D"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slashed(tt.name); got != tt.expected {
				t.Errorf("slashed(%q) = %q, want %q", tt.name, got, tt.expected)
			}
			if got := slashToDot(slashed(tt.name)); got != slashToDot(tt.expected) {
				t.Errorf("slashToDot(%q) = %q", tt.expected, got)
			}
		})
	}
}

func TestDefaultGoName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"java/lang/String", "String"},
		{"gojni/test/SimpleClass", "SimpleClass"},
		{"java/util/Map$Entry", "Map_Entry"},
		{"a/b/outer$inner$deep", "Outer_Inner_Deep"},
		{"lower", "Lower"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultGoName(tt.name); got != tt.expected {
				t.Errorf("defaultGoName(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestExported(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"valueWithAdded", "ValueWithAdded"},
		{"X", "X"},
		{"", ""},
		{"éclair", "Éclair"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exported(tt.name); got != tt.expected {
				t.Errorf("exported(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestMangle(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"com/example/Greeter", "com_example_Greeter"},
		{"now_ms", "now_1ms"},
		{"a/B$Inner", "a_B_00024Inner"},
		{"Ljava/lang/String;", "Ljava_lang_String_2"},
		{"[I[[J", "_3I_3_3J"},
		{"café", "caf_000e9"},
		{"x\U0001F600", "x_0d83d_0de00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mangle(tt.name); got != tt.expected {
				t.Errorf("mangle(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestNativeSymbol(t *testing.T) {
	m := mustParse(t, "[[class]]\nname = \"a/B\"\n")
	args, err := m.resolveAll([]string{"java.lang.String", "int[]"})
	if err != nil {
		t.Fatal(err)
	}
	if got := nativeSymbol("a/B_c", "f", args, false); got != "Java_a_B_1c_f" {
		t.Errorf("short symbol = %q", got)
	}
	if got := nativeSymbol("a/B", "f", args, true); got != "Java_a_B_f__Ljava_lang_String_2_3I" {
		t.Errorf("long symbol = %q", got)
	}
}
