package storage

import (
	"strings"

	"github.com/renato0307/stow/internal/domain"
)

// shelfModelToDomain converts a ShelfModel (GORM) to domain.Shelf
func shelfModelToDomain(m ShelfModel) domain.Shelf {
	var accept []domain.ItemType
	for _, t := range strings.Split(m.Accept, ",") {
		if t = strings.TrimSpace(t); t != "" {
			accept = append(accept, domain.ItemType(t))
		}
	}
	return domain.Shelf{
		Accept:      accept,
		CreatedAt:   m.CreatedAt,
		DisplayName: m.DisplayName,
		Name:        m.Name,
	}
}

// domainToShelfModel converts a domain.Shelf to ShelfModel (GORM)
func domainToShelfModel(s domain.Shelf) ShelfModel {
	accept := make([]string, len(s.Accept))
	for i, t := range s.Accept {
		accept[i] = string(t)
	}
	return ShelfModel{
		Accept:      strings.Join(accept, ","),
		DisplayName: s.DisplayName,
		Name:        s.Name,
	}
}

// itemModelToDomain converts an ItemModel (GORM) to domain.Item
func itemModelToDomain(m ItemModel) domain.Item {
	item := domain.Item{
		CreatedAt: m.CreatedAt,
		Key:       m.Key,
		Shelf:     m.ShelfName,
		Text:      m.Text,
		Type:      domain.ItemType(m.Type),
		UpdatedAt: m.UpdatedAt,
	}
	if m.ParentKey != nil {
		item.Parent = *m.ParentKey
	}
	if m.LinkTarget != nil {
		item.LinkTarget = *m.LinkTarget
	}
	return item
}

// domainToItemModel converts a domain.Item to ItemModel (GORM)
func domainToItemModel(i domain.Item) ItemModel {
	t := i.Type
	if t == "" {
		t = domain.ItemTypeItem
	}
	return ItemModel{
		Key:        i.Key,
		LinkTarget: optional(i.LinkTarget),
		ParentKey:  optional(i.Parent),
		ShelfName:  i.Shelf,
		Text:       i.Text,
		Type:       string(t),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
