package formschema

import (
	"cmp"
	"slices"

	"wallof.love/models"
)

// Direction alan taşıma yönüdür.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ParseDirection "up" veya "down" kabul eder.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionUp, DirectionDown:
		return Direction(s), nil
	}
	return "", ErrBadDirection
}

// SortFields alanları order_index'e göre artan sıralar.
// Eşitlikte oluşturulma sırası (ID) korunur.
func SortFields(fields []models.FormField) {
	slices.SortStableFunc(fields, func(a, b models.FormField) int {
		if c := cmp.Compare(a.OrderIndex, b.OrderIndex); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// NextOrderIndex yeni alan için max(order_index)+1 döndürür, liste boşsa 0.
func NextOrderIndex(fields []models.FormField) int {
	next := 0
	for _, f := range fields {
		if f.OrderIndex+1 > next {
			next = f.OrderIndex + 1
		}
	}
	return next
}

// Move hedef alanı komşusu ile yer değiştirir ve tüm listeye dizideki
// konumunu yeni order_index olarak yazar (0..N-1). Girdi değiştirilmez.
// Sınırda (ilk alan yukarı, son alan aşağı) ErrMoveBoundary döner.
func Move(fields []models.FormField, fieldID uint, dir Direction) ([]models.FormField, error) {
	if dir != DirectionUp && dir != DirectionDown {
		return nil, ErrBadDirection
	}
	ordered := slices.Clone(fields)
	SortFields(ordered)

	current := slices.IndexFunc(ordered, func(f models.FormField) bool { return f.ID == fieldID })
	if current < 0 {
		return nil, ErrFieldNotFound
	}
	target := current - 1
	if dir == DirectionDown {
		target = current + 1
	}
	if target < 0 || target >= len(ordered) {
		return nil, ErrMoveBoundary
	}

	ordered[current], ordered[target] = ordered[target], ordered[current]
	for i := range ordered {
		ordered[i].OrderIndex = i
	}
	return ordered, nil
}
