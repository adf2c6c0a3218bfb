package formschema

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"

	"wallof.love/models"
)

// ValidationError kullanıcı girdisinin bir kuralı geçemediğini belirtir.
// Mesaj ilk hatalı alanın etiketini içerir; toplu rapor üretilmez.
type ValidationError struct {
	Field   string // core alan anahtarı veya özel alan ID'si
	Label   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Label, e.Message)
}

func required(field, label string) *ValidationError {
	return &ValidationError{Field: field, Label: label, Message: "bu alan zorunludur"}
}

func invalid(label, msg string) *ValidationError {
	return &ValidationError{Label: label, Message: msg}
}

// Puan aralığı
const (
	MinRating = 1
	MaxRating = 5
)

// CoreInput formun yerleşik alanlarıdır.
type CoreInput struct {
	Name     string
	Email    string
	Company  string
	Content  string
	Rating   int
	ImageURL string
	VideoURL string
}

// CoreField yerleşik zorunlu alanların kontrol sırası ve etiketleri.
type CoreField struct {
	Key   string
	Label string
	get   func(CoreInput) string
}

var CoreFields = []CoreField{
	{"name", "Adınız", func(in CoreInput) string { return in.Name }},
	{"email", "E-posta Adresiniz", func(in CoreInput) string { return in.Email }},
	{"content", "Tanıklığınız", func(in CoreInput) string { return in.Content }},
}

// ValidateCore zorunlu yerleşik alanları sırayla kontrol eder, ilk hatada durur.
// Ardından e-posta biçimi ve puan aralığı kontrol edilir.
func ValidateCore(in CoreInput) error {
	for _, cf := range CoreFields {
		if strings.TrimSpace(cf.get(in)) == "" {
			return required(cf.Key, cf.Label)
		}
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return &ValidationError{Field: "email", Label: "E-posta Adresiniz", Message: "geçerli bir e-posta adresi girin"}
	}
	if in.Rating < MinRating || in.Rating > MaxRating {
		return &ValidationError{Field: "rating", Label: "Puan", Message: "puan 1 ile 5 arasında olmalı"}
	}
	return nil
}

// IsEmpty cevap tanımsızsa, boş listeyse veya metne çevrildiğinde boşluktan ibaretse true.
func IsEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case []string:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case string:
		return strings.TrimSpace(t) == ""
	}
	return strings.TrimSpace(fmt.Sprint(v)) == ""
}

// ValidateCustom özel alanları görüntüleme sırasında tek geçişte kontrol eder:
// her alan için önce zorunluluk, sonra değerin tipe uygunluğu (seçenek listesi,
// puan aralığı). İlk hatalı alanda durur. Bilinmeyen tipteki alanlar render
// edilmediği için atlanır.
func ValidateCustom(fields []models.FormField, answers map[string]any) error {
	ordered := slices.Clone(fields)
	SortFields(ordered)

	for _, f := range ordered {
		ft, known := ParseFieldType(f.FieldType)
		if !known {
			continue
		}
		key := AnswerKey(f.ID)
		v := answers[key]
		if IsEmpty(v) {
			if f.Required {
				return required(key, f.Label)
			}
			continue
		}
		if err := checkValue(f, ft, v); err != nil {
			err.Field = key
			return err
		}
	}
	return nil
}

func checkValue(f models.FormField, ft FieldType, v any) *ValidationError {
	switch ft {
	case FieldSelect:
		s, ok := v.(string)
		if !ok || !slices.Contains(f.Options, s) {
			return invalid(f.Label, "geçerli bir seçenek seçin")
		}
	case FieldCheckbox:
		picked, ok := AnswerStrings(v)
		if !ok {
			return invalid(f.Label, "geçerli seçenekler seçin")
		}
		for _, p := range picked {
			if !slices.Contains(f.Options, p) {
				return invalid(f.Label, "geçerli seçenekler seçin")
			}
		}
	case FieldRating:
		n, ok := ratingValue(v)
		if !ok || n < MinRating || n > MaxRating {
			return invalid(f.Label, "puan 1 ile 5 arasında olmalı")
		}
	}
	return nil
}

// ratingValue formdan gelen int'i ve JSON'dan geri okunan float64'ü kabul eder.
func ratingValue(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case float64:
		if t == float64(int(t)) {
			return int(t), true
		}
	}
	return 0, false
}
