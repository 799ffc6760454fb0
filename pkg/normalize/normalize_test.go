package normalize_test

import (
	"fmt"
	"testing"
	"testing/quick"
	"unicode"
	"unicode/utf8"

	"github.com/Gunvolt24/streets_etl/pkg/normalize"
)

func TestName_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"spaces only", "   \t\n", ""},
		{"trim and lower", " Ha-Carmel ", "ha-carmel"},
		{"upper", "HA-CARMEL", "ha-carmel"},
		{"hebrew untouched", " הרצל ", "הרצל"},
		{"nbsp is compat space", "\u00a0Herzl\u00a0", "herzl"},
		{"fullwidth latin", "\uff28\uff25\uff32\uff3a\uff2c", "herzl"},
		{"ligature", "\ufb01rst", "first"},
		{"decomposed accent composes", "Cafe\u0301", "caf\u00e9"},
		{"dotted capital i with acute", "\u0130\u0301", "\u00ed"},
		{"greek iota dialytika with acute", "\u03aa\u0301", "\u0390"},
		{"greek upsilon dialytika with acute", "\u03ab\u0301", "\u03b0"},
		{"greek alpha tonos with ypogegrammeni", "\u0386\u0345", "\u1fb4"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalize.Name(tt.in); got != tt.want {
				t.Fatalf("Name(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Повторная нормализация ничего не меняет.
func TestName_Idempotent(t *testing.T) {
	t.Parallel()

	f := func(s string) bool {
		once := normalize.Name(s)
		return normalize.Name(once) == once
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 2000}); err != nil {
		t.Fatalf("Name is not idempotent: %v", err)
	}
}

// Повторная нормализация стабильна для каждой руны в типичных окружениях:
// одна руна, после буквы, перед комбинирующим акутом, после пробела.
func TestName_IdempotentAllRunes(t *testing.T) {
	t.Parallel()

	var bad []string
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if !utf8.ValidRune(r) {
			continue
		}
		ch := string(r)
		for _, s := range []string{ch, "a" + ch, ch + "\u0301", " " + ch} {
			once := normalize.Name(s)
			if twice := normalize.Name(once); twice != once {
				bad = append(bad, fmt.Sprintf("%q -> %q -> %q", s, once, twice))
			}
		}
	}
	if len(bad) > 0 {
		t.Fatalf("Name is not idempotent on %d inputs, e.g. %v", len(bad), bad[:min(len(bad), 5)])
	}
}

// Функция тотальна: не паникует и всегда возвращает валидный UTF-8.
func TestName_TotalOnArbitraryBytes(t *testing.T) {
	t.Parallel()

	f := func(b []byte) bool {
		return utf8.ValidString(normalize.Name(string(b))) || !utf8.Valid(b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatalf("Name failed on arbitrary input: %v", err)
	}
}
