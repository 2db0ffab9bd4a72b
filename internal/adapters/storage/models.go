package storage

import "time"

// ShelfModel is the GORM model for shelves table
type ShelfModel struct {
	Accept      string `gorm:"not null;default:''"`
	CreatedAt   time.Time
	DisplayName string `gorm:"not null;default:''"`
	Name        string `gorm:"primaryKey"`
	Position    int    `gorm:"not null;default:0;index:idx_shelf_position"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ShelfModel) TableName() string { return "shelves" }

// ItemModel is the GORM model for items table
type ItemModel struct {
	CreatedAt  time.Time
	Key        string  `gorm:"column:item_key;primaryKey"`
	LinkTarget *string `gorm:"index:idx_link_target;default:null"`
	ParentKey  *string `gorm:"index:idx_parent;default:null"`
	Position   int     `gorm:"not null;default:0;index:idx_item_position"`
	ShelfName  string  `gorm:"not null;index:idx_shelf"`
	Text       string  `gorm:"not null;default:''"`
	Type       string  `gorm:"not null;default:'item';check:type IN ('item','folder','link')"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (ItemModel) TableName() string { return "items" }
