package models

import "time"

// User panel hesabı sahibidir. Formlar, tanıklıklar ve ayarlar bu hesaba bağlıdır.
type User struct {
	BaseModel
	Name        string `gorm:"type:varchar(150);not null"`
	Email       string `gorm:"type:varchar(150);uniqueIndex;not null"`
	Password    string `gorm:"type:varchar(255);not null" json:"-"`
	IsActive    bool   `gorm:"type:varchar(1);not null;serializer:flag;index"`
	LastLoginAt *time.Time
}
