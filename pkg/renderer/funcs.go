package renderer

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"wallof.love/pkg/formschema"
)

// TemplateFuncs html/template motoruna eklenen yardımcı fonksiyonlardır.
func TemplateFuncs() map[string]any {
	return map[string]any{
		"stars":      Stars,
		"formatDate": FormatDate,
		"seq":        Seq,
		"hasOptions": func(t string) bool { return formschema.FieldType(t).HasOptions() },
		"join":       strings.Join,
		"answer":     FormatAnswer,
		"add":        func(a, b int) int { return a + b },
		"sub":        func(a, b int) int { return a - b },
		// hesap sahibinin kendi girdiği CSS, public duvarda olduğu gibi basılır
		"safeCSS": func(s string) template.CSS { return template.CSS(s) },
	}
}

// Stars 1-5 arası puanı dolu ve boş yıldızlarla gösterir.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > formschema.MaxRating {
		rating = formschema.MaxRating
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", formschema.MaxRating-rating)
}

// FormatDate tarihi gün.ay.yıl olarak biçimlendirir.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("02.01.2006")
}

// Seq 1..n dizisini döndürür.
func Seq(n int) []int {
	out := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, i)
	}
	return out
}

// FormatAnswer custom_fields içindeki bir cevabı tek satır metne çevirir.
func FormatAnswer(v any) string {
	if list, ok := formschema.AnswerStrings(v); ok {
		return strings.Join(list, ", ")
	}
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return fmt.Sprintf("%g", t)
	}
	return fmt.Sprint(v)
}
