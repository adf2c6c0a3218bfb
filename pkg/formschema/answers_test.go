package formschema

import (
	"testing"

	"wallof.love/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAnswersShapesValuesByType(t *testing.T) {
	fields := []models.FormField{
		typed(1, 0, FieldText),
		typed(2, 1, FieldCheckbox, "A", "B", "C"),
		typed(3, 2, FieldRating),
		typed(4, 3, FieldSelect, "X", "Y"),
		typed(5, 4, FieldEmail),
	}
	lookup := MapLookup{
		"custom_1": {"CTO"},
		"custom_2": {"A", "C"},
		"custom_3": {"4"},
		"custom_4": {"X"},
	}

	answers := ExtractAnswers(fields, lookup)
	assert.Equal(t, map[string]any{
		"1": "CTO",
		"2": []string{"A", "C"},
		"3": 4,
		"4": "X",
	}, answers)
	_, present := answers["5"]
	assert.False(t, present, "gönderilmemiş cevap haritaya eklenmemeli")
}

func TestForeignOptionsAreRejectedOnValidation(t *testing.T) {
	cases := []struct {
		name   string
		field  models.FormField
		posted MapLookup
	}{
		{"select", typed(1, 0, FieldSelect, "X"), MapLookup{"custom_1": {"Z"}}},
		{"checkbox", typed(2, 0, FieldCheckbox, "A"), MapLookup{"custom_2": {"A", "B"}}},
		{"puan aralığı", typed(3, 0, FieldRating), MapLookup{"custom_3": {"9"}}},
		{"sayı olmayan puan", typed(4, 0, FieldRating), MapLookup{"custom_4": {"çok iyi"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := []models.FormField{tc.field}
			answers := ExtractAnswers(fields, tc.posted)
			err := ValidateCustom(fields, answers)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, AnswerKey(tc.field.ID), ve.Field)
		})
	}
}

func TestValidateCustomReportsFirstFieldInDisplayOrder(t *testing.T) {
	first := typed(10, 0, FieldText)
	first.Required = true
	first.Label = "Birinci"
	second := typed(11, 1, FieldSelect, "X", "Y")
	second.Label = "İkinci"
	// dizideki sıra görüntüleme sırasından farklı
	fields := []models.FormField{second, first}

	answers := ExtractAnswers(fields, MapLookup{"custom_10": {""}, "custom_11": {"bogus"}})
	err := ValidateCustom(fields, answers)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Birinci", ve.Label)
	assert.Equal(t, "bu alan zorunludur", ve.Message)

	answers = ExtractAnswers(fields, MapLookup{"custom_10": {"dolu"}, "custom_11": {"bogus"}})
	err = ValidateCustom(fields, answers)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "İkinci", ve.Label)
}

func TestValidateCustomAcceptsStoredShapes(t *testing.T) {
	fields := []models.FormField{
		typed(1, 0, FieldCheckbox, "A", "B"),
		typed(2, 1, FieldRating),
	}
	// JSON'dan geri okunan değerler
	assert.NoError(t, ValidateCustom(fields, map[string]any{"1": []any{"A"}, "2": float64(4)}))
}

func TestAnswerStrings(t *testing.T) {
	v, ok := AnswerStrings([]any{"A", "C"})
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C"}, v)

	_, ok = AnswerStrings([]any{"A", 1})
	assert.False(t, ok)

	_, ok = AnswerStrings("A")
	assert.False(t, ok)
}
