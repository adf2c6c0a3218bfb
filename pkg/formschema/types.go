// Package formschema form alanı şemasının depolamadan bağımsız mantığını içerir:
// alan tipleri, sıralama, render stratejileri, cevap çıkarma ve doğrulama.
package formschema

import "strings"

// FieldType kapalı alan tipi kümesidir.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldEmail    FieldType = "email"
	FieldRating   FieldType = "rating"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
)

// FieldTypeOption panelde tip seçimi için gösterilir.
type FieldTypeOption struct {
	Value FieldType
	Label string
}

// FieldTypes panelde listelenen sıra ile tüm tipler.
var FieldTypes = []FieldTypeOption{
	{FieldText, "Kısa Metin"},
	{FieldTextarea, "Uzun Metin"},
	{FieldEmail, "E-posta"},
	{FieldRating, "Yıldız Puanı"},
	{FieldSelect, "Açılır Liste"},
	{FieldCheckbox, "Onay Kutuları"},
}

// ParseFieldType bilinen bir tipse döndürür.
func ParseFieldType(s string) (FieldType, bool) {
	t := FieldType(strings.ToLower(strings.TrimSpace(s)))
	for _, opt := range FieldTypes {
		if opt.Value == t {
			return t, true
		}
	}
	return "", false
}

// HasOptions seçenek listesi kullanan tipler için true.
func (t FieldType) HasOptions() bool {
	return t == FieldSelect || t == FieldCheckbox
}

// CleanOptions boş seçenekleri atar, sırayı korur.
func CleanOptions(options []string) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Rejection bir guard tarafından reddedilen işlemi anlatır.
// Sessizce hiçbir şey yapmamak yerine çağırana döndürülür.
type Rejection struct {
	Reason string
}

func (r *Rejection) Error() string { return "işlem reddedildi: " + r.Reason }

// Is aynı nedene sahip reddetmeleri eşit sayar (errors.Is için).
func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	return ok && t.Reason == r.Reason
}

var (
	ErrBlankLabel    = &Rejection{Reason: "alan etiketi boş olamaz"}
	ErrUnknownType   = &Rejection{Reason: "bilinmeyen alan tipi"}
	ErrMoveBoundary  = &Rejection{Reason: "alan bu yönde taşınamaz"}
	ErrFieldNotFound = &Rejection{Reason: "alan formda bulunamadı"}
	ErrBadDirection  = &Rejection{Reason: "geçersiz taşıma yönü"}
)
