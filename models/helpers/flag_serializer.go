package helpers

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"gorm.io/gorm/schema"
)

// FlagSerializerName modellerde `gorm:"serializer:flag"` olarak kullanılır.
const FlagSerializerName = "flag"

func init() {
	schema.RegisterSerializer(FlagSerializerName, FlagSerializer{})
}

// FlagSerializer bool alanları veritabanında "0"/"1" metni olarak saklar.
// Domain tarafı yerel bool görür; dönüşüm yalnızca bu sınırda yapılır.
type FlagSerializer struct{}

// Scan kolondaki değeri bool'a çevirip alana yazar.
func (FlagSerializer) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue interface{}) error {
	b, err := ParseFlag(dbValue)
	if err != nil {
		return fmt.Errorf("%s alanı okunamadı: %w", field.Name, err)
	}
	field.ReflectValueOf(ctx, dst).SetBool(b)
	return nil
}

// Value bool alanı "1" veya "0" olarak yazar.
func (FlagSerializer) Value(ctx context.Context, field *schema.Field, dst reflect.Value, fieldValue interface{}) (interface{}, error) {
	b, ok := fieldValue.(bool)
	if !ok {
		return nil, fmt.Errorf("%s alanı bool değil: %T", field.Name, fieldValue)
	}
	return Flag(b), nil
}

// Flag sorgularda (Where) kullanılacak saklama biçimini döndürür.
func Flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// ParseFlag saklanan değeri sayısal olarak yorumlar: sıfırdan büyükse true.
func ParseFlag(v any) (bool, error) {
	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	case int64:
		return t > 0, nil
	case []byte:
		return ParseFlag(string(t))
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return false, nil
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n > 0, nil
		}
		return strconv.ParseBool(s)
	}
	return false, fmt.Errorf("desteklenmeyen tip %T", v)
}
