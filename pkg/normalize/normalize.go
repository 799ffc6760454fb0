// Пакет normalize - нормализация текстовых полей перед сохранением и поиском.
package normalize

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// maxRounds - предел повторов до неподвижной точки; на практике хватает двух.
const maxRounds = 4

// Name приводит название к каноническому виду:
// NFKC-нормализация, обрезка пробелов по краям, нижний регистр.
// Нижний регистр может дать новую композируемую последовательность ("İ́" -> "í"),
// поэтому шаги повторяются, пока результат не перестанет меняться.
// Пустая строка остаётся пустой. Функция детерминирована и идемпотентна.
func Name(raw string) string {
	if raw == "" {
		return ""
	}
	s := round(raw)
	for i := 1; i < maxRounds; i++ {
		next := round(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

func round(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(s)))
}
