package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"wallof.love/database"
	"wallof.love/database/seeders"
	"wallof.love/models"
	"wallof.love/repositories"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv tek bir in-memory veritabanı üzerine kurulmuş servis grafiğidir.
type testEnv struct {
	db           *gorm.DB
	fieldRepo    repositories.IFormFieldRepository
	settings     *SettingsService
	links        *LinkService
	forms        *FormService
	fields       *FormFieldService
	submissions  *SubmissionService
	testimonials *TestimonialService
	uploads      *StorageService
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.RunMigrationsInOrder(db))
	require.NoError(t, seeders.SeedTypes(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := openTestDB(t)

	env := &testEnv{db: db, fieldRepo: repositories.NewFormFieldRepositoryTx(db)}
	typeService := NewTypeServiceWith(repositories.NewTypeRepositoryTx(db))
	tx := repositories.NewTransactorTx(db)

	env.settings = NewSettingsServiceWith(repositories.NewAccountSettingsRepositoryTx(db))
	env.links = NewLinkServiceWith(repositories.NewLinkRepositoryTx(db), typeService)
	env.forms = NewFormServiceWith(repositories.NewFormRepositoryTx(db), env.links, typeService, env.settings, tx)
	env.fields = NewFormFieldServiceWith(env.fieldRepo, repositories.NewFormRepositoryTx(db), tx)
	env.uploads = NewStorageServiceWith(NewLocalBlobStore(t.TempDir(), "/uploads"), 1<<20)
	env.submissions = NewSubmissionServiceWith(env.forms, env.fieldRepo,
		repositories.NewTestimonialRepositoryTx(db), env.uploads)
	env.testimonials = NewTestimonialServiceWith(repositories.NewTestimonialRepositoryTx(db), env.links, env.settings)
	return env
}

func (e *testEnv) user(t *testing.T, email string) *models.User {
	t.Helper()
	u := &models.User{Name: "Ayşe", Email: email, Password: "x", IsActive: true}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) form(t *testing.T, userID uint, mutate func(*FormInput)) *models.Form {
	t.Helper()
	in := DefaultFormInput()
	in.Title = "Müşteri Yorumları"
	if mutate != nil {
		mutate(&in)
	}
	form, err := e.forms.CreateForm(context.Background(), userID, in)
	require.NoError(t, err)
	require.NotNil(t, form.Link)
	return form
}

func fieldIDs(fields []models.FormField) []uint {
	ids := make([]uint, len(fields))
	for i, f := range fields {
		ids[i] = f.ID
	}
	return ids
}

func orderIndexes(fields []models.FormField) []int {
	out := make([]int, len(fields))
	for i, f := range fields {
		out[i] = f.OrderIndex
	}
	return out
}
