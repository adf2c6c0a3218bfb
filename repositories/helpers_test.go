package repositories

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"wallof.love/database"
	"wallof.love/database/seeders"
	"wallof.love/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB her test için ayrı, migrate edilmiş bir in-memory SQLite veritabanı açar.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

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

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	u := &models.User{Name: "Test", Email: email, Password: "x", IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedForm(t *testing.T, db *gorm.DB, userID uint) *models.Form {
	t.Helper()
	f := &models.Form{UserID: userID, Title: "Form", RequireApproval: true, AllowVideo: true, IsActive: true}
	require.NoError(t, db.WithContext(models.WithUserID(context.Background(), userID)).Create(f).Error)
	return f
}

func seedTestimonial(t *testing.T, db *gorm.DB, form *models.Form, name string, rating int,
	status models.TestimonialStatus, at time.Time) *models.Testimonial {
	t.Helper()
	tm := &models.Testimonial{
		FormID:    form.ID,
		UserID:    form.UserID,
		Name:      name,
		Email:     strings.ToLower(name) + "@example.com",
		Rating:    rating,
		Content:   name + " çok memnun",
		Status:    status,
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, NewTestimonialRepositoryTx(db).Create(context.Background(), tm))
	return tm
}
