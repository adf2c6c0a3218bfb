package formschema

import (
	"fmt"
	"strconv"

	"wallof.love/models"
)

// InputKind render edilecek HTML girdisinin şeklidir.
type InputKind string

const (
	InputText     InputKind = "text"
	InputEmail    InputKind = "email"
	InputTextarea InputKind = "textarea"
	InputSelect   InputKind = "select"
	InputCheckbox InputKind = "checkbox"
	InputRating   InputKind = "rating"
)

// RatingScale yıldız puanı seçenekleridir.
var RatingScale = []int{1, 2, 3, 4, 5}

// RenderedField şablonun tek bir özel alanı çizmek için ihtiyaç duyduğu her şeydir.
type RenderedField struct {
	ID          uint
	Name        string // form input adı
	Kind        InputKind
	Label       string
	Placeholder string
	Required    bool
	Options     []string
	Value       string          // text, email, textarea, select, rating
	Selected    map[string]bool // checkbox
	Scale       []int           // rating
}

type renderStrategy func(f models.FormField, answer any, hasAnswer bool) RenderedField

var strategies = map[FieldType]renderStrategy{
	FieldText:     scalarStrategy(InputText),
	FieldEmail:    scalarStrategy(InputEmail),
	FieldTextarea: scalarStrategy(InputTextarea),
	FieldSelect:   scalarStrategy(InputSelect),
	FieldRating:   renderRating,
	FieldCheckbox: renderCheckbox,
}

func base(f models.FormField, kind InputKind) RenderedField {
	return RenderedField{
		ID:          f.ID,
		Name:        InputName(f.ID),
		Kind:        kind,
		Label:       f.Label,
		Placeholder: f.Placeholder,
		Required:    f.Required,
	}
}

func scalarStrategy(kind InputKind) renderStrategy {
	return func(f models.FormField, answer any, hasAnswer bool) RenderedField {
		rf := base(f, kind)
		if kind == InputSelect {
			rf.Options = f.Options
		}
		if hasAnswer {
			rf.Value = fmt.Sprint(answer)
		}
		return rf
	}
}

func renderRating(f models.FormField, answer any, hasAnswer bool) RenderedField {
	rf := base(f, InputRating)
	rf.Scale = RatingScale
	if hasAnswer {
		rf.Value = fmt.Sprint(answer)
	}
	return rf
}

func renderCheckbox(f models.FormField, answer any, hasAnswer bool) RenderedField {
	rf := base(f, InputCheckbox)
	rf.Options = f.Options
	rf.Selected = map[string]bool{}
	if hasAnswer {
		if values, ok := AnswerStrings(answer); ok {
			for _, v := range values {
				rf.Selected[v] = true
			}
		}
	}
	return rf
}

// Render alanları görüntüleme sırasıyla render modeline çevirir.
// Bilinmeyen tipteki alanlar atlanır; bozuk bir alan formun geri kalanını engellemez.
// answers önceki (hatalı) gönderimin değerlerini tekrar doldurmak için kullanılır, nil olabilir.
func Render(fields []models.FormField, answers map[string]any) []RenderedField {
	ordered := make([]models.FormField, len(fields))
	copy(ordered, fields)
	SortFields(ordered)

	out := make([]RenderedField, 0, len(ordered))
	for _, f := range ordered {
		strategy, ok := strategies[FieldType(f.FieldType)]
		if !ok {
			continue
		}
		answer, has := answers[AnswerKey(f.ID)]
		out = append(out, strategy(f, answer, has))
	}
	return out
}

// InputName bir alanın HTML input adıdır.
func InputName(fieldID uint) string {
	return "custom_" + strconv.FormatUint(uint64(fieldID), 10)
}

// AnswerKey custom_fields içinde cevabın anahtarıdır (alan ID'si).
func AnswerKey(fieldID uint) string {
	return strconv.FormatUint(uint64(fieldID), 10)
}
