package models

// AccountSettings hesap başına marka ve bildirim tercihleridir.
// İlk kayıtta oluşturulur, sonra yerinde güncellenir.
type AccountSettings struct {
	BaseModel
	UserID             uint   `gorm:"uniqueIndex;not null"`
	CompanyName        string `gorm:"type:varchar(150)"`
	CompanyLogo        string `gorm:"type:varchar(500)"`
	BrandColor         string `gorm:"type:varchar(7)"`
	CustomCSS          string `gorm:"type:text"`
	EmailNotifications bool   `gorm:"type:varchar(1);not null;serializer:flag"`
}

// DefaultAccountSettings kayıt yokken gösterilecek varsayılanlar.
func DefaultAccountSettings(userID uint) AccountSettings {
	return AccountSettings{
		UserID:             userID,
		BrandColor:         DefaultBrandColor,
		EmailNotifications: true,
	}
}
