package models

import (
	_ "wallof.love/models/helpers" // "flag" serializer kaydı
)

// DefaultBrandColor hesap ayarı yoksa kullanılan marka rengi.
const DefaultBrandColor = "#4F46E5"

// Form tanıklık toplamak için oluşturulan public giriş noktasıdır.
type Form struct {
	BaseModel
	UserID      uint   `gorm:"index;not null"` // sahibi
	LinkID      *uint  `gorm:"uniqueIndex"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`

	// Moderasyon ve medya politikası
	RequireApproval bool `gorm:"type:varchar(1);not null;serializer:flag"`
	AllowVideo      bool `gorm:"type:varchar(1);not null;serializer:flag"`
	IsActive        bool `gorm:"type:varchar(1);not null;serializer:flag;index"`

	// Marka
	BrandColor  string `gorm:"type:varchar(7)"`
	CompanyName string `gorm:"type:varchar(150)"`
	CompanyLogo string `gorm:"type:varchar(500)"`

	Link   *Link       `gorm:"foreignKey:LinkID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Fields []FormField `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// PublicKey formun public linkini döndürür, link yüklenmemişse boş döner.
func (f *Form) PublicKey() string {
	if f.Link == nil {
		return ""
	}
	return f.Link.Key
}
