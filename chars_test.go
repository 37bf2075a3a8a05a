package firmwarestrings

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/firmware-strings/errors"
)

func TestChar8FromRune_RoundTrip(t *testing.T) {
	for r := rune(0); r <= 0xFF; r++ {
		c, err := Char8FromRune(r)
		if err != nil {
			t.Fatalf("Char8FromRune(%#x) failed: %v", r, err)
		}
		if c.Rune() != r {
			t.Fatalf("round trip of %#x = %#x", r, c.Rune())
		}
	}
}

func TestChar8FromRune_TooWide(t *testing.T) {
	for _, r := range []rune{0x100, 0x3B1, 0xFFFF, 0x10000, 0x1F600} {
		_, err := Char8FromRune(r)
		if !errors.IsKind(err, errors.KindTooWide) {
			t.Errorf("Char8FromRune(%#x) = %v, want too_wide", r, err)
		}
	}
}

func TestChar8FromRune_InvalidScalar(t *testing.T) {
	_, err := Char8FromRune(-1)
	if !errors.IsKind(err, errors.KindInvalidChar) {
		t.Errorf("Char8FromRune(-1) = %v, want invalid_char", err)
	}
}

func TestChar16FromRune(t *testing.T) {
	tests := []struct {
		name     string
		r        rune
		wantKind errors.Kind
	}{
		{"ascii", 'A', ""},
		{"nul", 0, ""},
		{"latin1 upper bound", 0xFF, ""},
		{"bmp", 0x3B1, ""},
		{"bmp upper bound", 0xFFFF, ""},
		{"just below surrogates", 0xD7FF, ""},
		{"just above surrogates", 0xE000, ""},
		{"surrogate low bound", 0xD800, errors.KindInvalidChar},
		{"surrogate high bound", 0xDFFF, errors.KindInvalidChar},
		{"astral", 0x10000, errors.KindTooWide},
		{"emoji", 0x1F600, errors.KindTooWide},
		{"beyond code space", 0x110000, errors.KindTooWide},
		{"negative", -5, errors.KindInvalidChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Char16FromRune(tt.r)
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("Char16FromRune(%#x) failed: %v", tt.r, err)
				}
				if c.Rune() != tt.r {
					t.Fatalf("round trip of %#x = %#x", tt.r, c.Rune())
				}
				return
			}
			if !errors.IsKind(err, tt.wantKind) {
				t.Errorf("Char16FromRune(%#x) = %v, want %s", tt.r, err, tt.wantKind)
			}
		})
	}
}

func TestChar16FromUint_ExhaustiveSurrogates(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		c, err := Char16FromUint(uint16(v))
		surrogate := v >= 0xD800 && v <= 0xDFFF
		if surrogate {
			if !errors.IsKind(err, errors.KindInvalidChar) {
				t.Fatalf("Char16FromUint(%#x) = %v, want invalid_char", v, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Char16FromUint(%#x) failed: %v", v, err)
		}
		if uint16(c) != uint16(v) {
			t.Fatalf("Char16FromUint(%#x) = %#x", v, uint16(c))
		}
	}
}

func TestChar8FromUint_Total(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		if c := Char8FromUint(uint8(v)); uint8(c) != uint8(v) {
			t.Fatalf("Char8FromUint(%#x) = %#x", v, uint8(c))
		}
	}
}

func TestCharFromRune_Generic(t *testing.T) {
	c8, err := CharFromRune[Char8]('A')
	if err != nil || c8 != 'A' {
		t.Errorf("CharFromRune[Char8]('A') = %v, %v", c8, err)
	}
	if _, err := CharFromRune[Char8]('́'); !errors.IsKind(err, errors.KindTooWide) {
		t.Errorf("CharFromRune[Char8] combining mark should be too_wide, got %v", err)
	}

	c16, err := CharFromRune[Char16]('́')
	if err != nil || c16 != 0x0301 {
		t.Errorf("CharFromRune[Char16](U+0301) = %v, %v", c16, err)
	}
	if _, err := CharFromRune[Char16](0x1F600); !errors.IsKind(err, errors.KindTooWide) {
		t.Errorf("CharFromRune[Char16] emoji should be too_wide, got %v", err)
	}
}

func TestConversionErrorsAreValues(t *testing.T) {
	_, err := Char16FromRune(0x1F600)
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error %v is not a structured error", err)
	}
	if e.Phase != errors.PhaseConvert {
		t.Errorf("Phase = %q, want convert", e.Phase)
	}
}

func TestCharOrdering(t *testing.T) {
	if !(Char8('a') < Char8('b')) {
		t.Error("Char8 ordering should follow the integer representation")
	}
	if !(Char16(0x0041) < Char16(0x3B1)) {
		t.Error("Char16 ordering should follow the integer representation")
	}
	if Char16('A') != Char16(0x41) {
		t.Error("Char16 equality should follow the integer representation")
	}
}

func TestCharDisplay(t *testing.T) {
	tests := []struct {
		name  string
		str   string
		goStr string
		value any
	}{
		{"char8 printable", "A", `Char8('A')`, Char8('A')},
		{"char8 nul", "\x00", `Char8('\x00')`, NulChar8},
		{"char16 printable", "λ", `Char16('λ')`, Char16(0x3BB)},
		{"char16 raw surrogate", "�", "Char16(0xD800)", Char16(0xD800)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var str, goStr string
			switch c := tt.value.(type) {
			case Char8:
				str, goStr = c.String(), c.GoString()
			case Char16:
				str, goStr = c.String(), c.GoString()
			}
			if str != tt.str {
				t.Errorf("String() = %q, want %q", str, tt.str)
			}
			if goStr != tt.goStr {
				t.Errorf("GoString() = %q, want %q", goStr, tt.goStr)
			}
		})
	}
}

func TestReplacementConstants(t *testing.T) {
	if ReplacementChar8 != '?' {
		t.Errorf("ReplacementChar8 = %#x, want '?'", uint8(ReplacementChar8))
	}
	if ReplacementChar16 != 0xFFFD {
		t.Errorf("ReplacementChar16 = %#x, want 0xFFFD", uint16(ReplacementChar16))
	}
	if NulChar8 != 0 || NulChar16 != 0 {
		t.Error("NUL constants must be zero")
	}
}
