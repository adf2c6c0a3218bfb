package formschema

import (
	"slices"
	"strconv"
	"strings"

	"wallof.love/models"
)

// ValueLookup gönderilen form değerlerine erişim sağlar (HTTP katmanından bağımsız).
type ValueLookup interface {
	// Value tek değerli bir girdiyi döndürür; girdi hiç gönderilmemişse ok=false.
	Value(name string) (value string, ok bool)
	// Values çok değerli bir girdinin tüm değerlerini döndürür.
	Values(name string) []string
}

// MapLookup testler ve JSON istekleri için basit bir ValueLookup'tır.
type MapLookup map[string][]string

func (m MapLookup) Value(name string) (string, bool) {
	v, ok := m[name]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

func (m MapLookup) Values(name string) []string { return m[name] }

// ExtractAnswers şemadaki her alan için gönderilen değeri saklama şekline çevirir:
// metin tipleri string, checkbox []string, rating int.
// Gönderilmemiş (tanımsız) cevaplar haritaya eklenmez. Değerler burada kontrol
// edilmez; seçenek dışı değerler ve sayı olmayan puanlar olduğu gibi bırakılır,
// ValidateCustom bunları görüntüleme sırasında raporlar.
func ExtractAnswers(fields []models.FormField, lookup ValueLookup) map[string]any {
	answers := map[string]any{}
	for _, f := range fields {
		name := InputName(f.ID)
		key := AnswerKey(f.ID)

		switch FieldType(f.FieldType) {
		case FieldText, FieldTextarea, FieldEmail, FieldSelect:
			if v, ok := lookup.Value(name); ok {
				answers[key] = v
			}
		case FieldCheckbox:
			if values := lookup.Values(name); len(values) > 0 {
				answers[key] = slices.Clone(values)
			}
		case FieldRating:
			v, ok := lookup.Value(name)
			if !ok || strings.TrimSpace(v) == "" {
				continue
			}
			v = strings.TrimSpace(v)
			if n, err := strconv.Atoi(v); err == nil {
				answers[key] = n
			} else {
				answers[key] = v
			}
		default:
			// bilinmeyen tip render edilmedi, cevabı da yok
		}
	}
	return answers
}

// AnswerStrings bir checkbox cevabını metin listesi olarak okur.
// JSON'dan geri okunan []any değerlerini de kabul eder.
func AnswerStrings(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
