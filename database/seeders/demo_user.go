package seeders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/pkg/formschema"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoUser demo hesabın giriş bilgileridir.
type DemoUser struct {
	Name     string
	Email    string
	Password string
}

// Enabled e-posta ve parola verilmişse true döner.
func (d DemoUser) Enabled() bool {
	return strings.TrimSpace(d.Email) != "" && d.Password != ""
}

// SeedDemoUser demo hesabı, varsayılan ayarları ve örnek bir formu oluşturur.
// Hesap zaten varsa hiçbir şey yapmaz. Türler önceden seed edilmiş olmalıdır.
func SeedDemoUser(db *gorm.DB, demo DemoUser) error {
	if !demo.Enabled() {
		configslog.SLog.Info("Demo kullanıcı bilgisi yok, demo seed atlanıyor.")
		return nil
	}
	email := strings.ToLower(strings.TrimSpace(demo.Email))

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		configslog.SLog.Infof("Demo kullanıcı '%s' zaten mevcut.", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Demo kullanıcı kontrol edilemedi", zap.String("email", email), zap.Error(err))
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demo.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("demo parola hash'lenemedi: %w", err)
	}

	name := demo.Name
	if strings.TrimSpace(name) == "" {
		name = "Demo"
	}
	user := models.User{Name: name, Email: email, Password: string(hash), IsActive: true}
	if err := db.WithContext(models.WithUserID(context.Background(), SystemUserID)).Create(&user).Error; err != nil {
		configslog.Log.Error("Demo kullanıcı oluşturulamadı", zap.Error(err))
		return err
	}

	ctx := models.WithUserID(context.Background(), user.ID)
	tx := db.WithContext(ctx)

	settings := models.DefaultAccountSettings(user.ID)
	settings.CompanyName = name
	if err := tx.Create(&settings).Error; err != nil {
		return fmt.Errorf("demo ayarları oluşturulamadı: %w", err)
	}

	var formType models.Type
	if err := tx.Where("name = ?", models.TypeNameForm).First(&formType).Error; err != nil {
		return fmt.Errorf("FORM türü bulunamadı: %w", err)
	}

	form := models.Form{
		UserID:          user.ID,
		Title:           "Bizimle çalışmak nasıldı?",
		Description:     "Deneyiminizi birkaç cümleyle anlatın.",
		RequireApproval: true,
		AllowVideo:      true,
		IsActive:        true,
		BrandColor:      models.DefaultBrandColor,
		CompanyName:     name,
	}
	if err := tx.Create(&form).Error; err != nil {
		return fmt.Errorf("demo form oluşturulamadı: %w", err)
	}

	link := models.Link{TypeID: formType.ID, TargetID: form.ID, CreatorUserID: user.ID}
	if err := tx.Create(&link).Error; err != nil {
		return fmt.Errorf("demo form linki oluşturulamadı: %w", err)
	}
	if err := tx.Model(&form).UpdateColumn("link_id", link.ID).Error; err != nil {
		return fmt.Errorf("demo form linki bağlanamadı: %w", err)
	}

	fields := []models.FormField{
		{FormID: form.ID, FieldType: string(formschema.FieldText), Label: "Ünvanınız", Placeholder: "örn. Ürün Müdürü", OrderIndex: 0},
		{FormID: form.ID, FieldType: string(formschema.FieldSelect), Label: "Hangi hizmeti kullandınız?", Required: true,
			Options: []string{"Danışmanlık", "Geliştirme", "Destek"}, OrderIndex: 1},
	}
	if err := tx.Create(&fields).Error; err != nil {
		return fmt.Errorf("demo form alanları oluşturulamadı: %w", err)
	}

	configslog.SLog.Infof("Demo kullanıcı '%s' oluşturuldu, form linki: /form/%s", email, link.Key)
	return nil
}
