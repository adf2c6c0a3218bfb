// Package textsearch büyük/küçük harf duyarsız LIKE filtresi üretir.
// Türkçe harfler hem arama metninde hem kolonda aynı şekilde katlanır; veritabanının
// LOWER() davranışı harmanlamaya göre değiştiği için Türkçe büyük harfler SQL'de
// REPLACE ile önceden küçültülür. i/ı/İ/I ayrımı aramada yok sayılır.
package textsearch

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Turkish)

// turkishFold kolon tarafında LOWER()'dan önce uygulanan değişimler.
// Arama tarafında aynı sonucu Normalize üretir.
var turkishFold = [][2]string{
	{"İ", "i"},
	{"I", "i"},
	{"ı", "i"},
	{"Ş", "ş"},
	{"Ç", "ç"},
	{"Ö", "ö"},
	{"Ü", "ü"},
	{"Ğ", "ğ"},
}

// Normalize arama metnini küçük harfe çevirir, noktasız ı'yı i'ye katlar ve
// LIKE joker karakterlerini kaçışlar.
func Normalize(term string) string {
	term = strings.TrimSpace(lower.String(term))
	term = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		if r == 'ı' {
			return 'i'
		}
		return r
	}, term)
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}

// FoldColumn kolonu Normalize ile aynı biçime getiren SQL ifadesini döndürür.
func FoldColumn(column string) string {
	expr := column
	for _, p := range turkishFold {
		expr = "REPLACE(" + expr + ", '" + p[0] + "', '" + p[1] + "')"
	}
	return "LOWER(" + expr + ")"
}

// SQLFilter verilen kolon için "katlanmış kolon LIKE ?" parçası ve argümanını döndürür.
func SQLFilter(column, term string) (string, []any) {
	return FoldColumn(column) + " LIKE ? ESCAPE '\\'", []any{"%" + Normalize(term) + "%"}
}
