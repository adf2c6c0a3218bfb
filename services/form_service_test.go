package services

import (
	"context"
	"testing"

	"wallof.love/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormCreatesPublicLink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.user(t, "owner@example.com")

	form := env.form(t, owner.ID, nil)
	require.NotNil(t, form.LinkID)
	assert.Len(t, form.PublicKey(), models.LinkKeyLength)
	assert.True(t, form.RequireApproval)
	assert.True(t, form.AllowVideo)

	byKey, err := env.forms.GetFormByKey(ctx, form.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, form.ID, byKey.ID)
}

func TestCreateFormValidation(t *testing.T) {
	env := newTestEnv(t)
	owner := env.user(t, "owner@example.com")

	_, err := env.forms.CreateForm(context.Background(), owner.ID, FormInput{Title: "  "})
	assert.ErrorIs(t, err, ErrFormTitleRequired)

	_, err = env.forms.CreateForm(context.Background(), owner.ID, FormInput{Title: "A", BrandColor: "mavi"})
	assert.ErrorIs(t, err, ErrSettingsInvalidColor)
}

func TestUpdateFormDeactivatesPublicLink(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.user(t, "owner@example.com")
	other := env.user(t, "other@example.com")
	form := env.form(t, owner.ID, nil)

	in := DefaultFormInput()
	in.Title = "Yeni başlık"
	in.IsActive = false
	assert.ErrorIs(t, env.forms.UpdateForm(ctx, form.ID, other.ID, in), ErrFormForbidden)
	require.NoError(t, env.forms.UpdateForm(ctx, form.ID, owner.ID, in))

	got, err := env.forms.GetFormByID(ctx, form.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yeni başlık", got.Title)
	assert.Equal(t, models.DefaultBrandColor, got.BrandColor)

	_, err = env.forms.GetFormByKey(ctx, form.PublicKey())
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestDeleteFormKeepsTestimonials(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := env.user(t, "owner@example.com")
	form := env.form(t, owner.ID, func(in *FormInput) { in.RequireApproval = false })

	_, err := env.submissions.Submit(ctx, form.PublicKey(), SubmissionInput{Core: validCore()})
	require.NoError(t, err)

	require.NoError(t, env.forms.DeleteForm(ctx, form.ID, owner.ID))
	_, err = env.forms.GetFormByKey(ctx, form.PublicKey())
	assert.ErrorIs(t, err, ErrFormNotFound)

	wall, err := env.testimonials.WallForOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, wall, 1)
}
