package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkKeyLength public anahtarın karakter sayısıdır.
const LinkKeyLength = 20

// Link benzersiz bir 'Key'i belirli bir hizmete (form veya duvar) bağlar.
type Link struct {
	BaseModel
	Key           string `gorm:"type:varchar(32);uniqueIndex;not null"`
	TypeID        uint   `gorm:"not null;index"`
	TargetID      uint   `gorm:"not null;index:idx_link_target"`
	CreatorUserID uint   `gorm:"index;not null"`

	Type Type `gorm:"foreignKey:TypeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

// NewLinkKey tahmin edilemeyen bir public anahtar üretir.
func NewLinkKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:LinkKeyLength]
}

// BeforeCreate anahtar boşsa üretir.
func (l *Link) BeforeCreate(tx *gorm.DB) error {
	if l.Key == "" {
		l.Key = NewLinkKey()
	}
	return l.BaseModel.BeforeCreate(tx)
}
