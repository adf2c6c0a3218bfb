package formschema

import (
	"testing"

	"wallof.love/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCore() CoreInput {
	return CoreInput{Name: "Ayşe", Email: "ayse@example.com", Content: "Harika!", Rating: 5}
}

func TestValidateCoreStopsAtFirstMissingField(t *testing.T) {
	in := validCore()
	in.Name = "  "
	in.Content = ""

	err := ValidateCore(in)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)
	assert.Contains(t, err.Error(), "Adınız")
}

func TestValidateCoreEmailAndRating(t *testing.T) {
	require.NoError(t, ValidateCore(validCore()))

	in := validCore()
	in.Email = "not-an-email"
	var ve *ValidationError
	require.ErrorAs(t, ValidateCore(in), &ve)
	assert.Equal(t, "email", ve.Field)

	in = validCore()
	in.Rating = MaxRating + 1
	require.ErrorAs(t, ValidateCore(in), &ve)
	assert.Equal(t, "rating", ve.Field)
}

func TestValidateCustomRequiredFields(t *testing.T) {
	req := typed(7, 0, FieldText)
	req.Required = true
	req.Label = "Ünvan"
	unknown := typed(8, 1, FieldType("legacy"))
	unknown.Required = true

	fields := []models.FormField{req, unknown}

	err := ValidateCustom(fields, map[string]any{"7": "   "})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Ünvan", ve.Label)

	// bilinmeyen tip zorunlu olsa da gösterilmediği için engellemez
	assert.NoError(t, ValidateCustom(fields, map[string]any{"7": "CTO"}))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty(" \t"))
	assert.True(t, IsEmpty([]string{}))
	assert.True(t, IsEmpty([]any{}))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty([]string{"A"}))
	assert.False(t, IsEmpty(3))
}
