package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/stow/internal/domain"
	"github.com/renato0307/stow/internal/logging"
	"github.com/renato0307/stow/internal/ports"
)

// SQLiteRepository implements ports.BoardRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.BoardRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the stow logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("STOW_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository creates a new SQLiteRepository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode so the TUI, SSH sessions and CLI can share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&ShelfModel{}, &ItemModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// GetShelf implements ShelfReader.GetShelf
func (r *SQLiteRepository) GetShelf(ctx context.Context, name string) (*domain.Shelf, error) {
	var model ShelfModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrShelfNotFound, name)
		}
		return nil, err
	}
	shelf := shelfModelToDomain(model)
	return &shelf, nil
}

// ListShelves implements ShelfReader.ListShelves
func (r *SQLiteRepository) ListShelves(ctx context.Context) ([]domain.Shelf, error) {
	var models []ShelfModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("position ASC, name ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list shelves: %w", err)
	}
	shelves := make([]domain.Shelf, len(models))
	for i, m := range models {
		shelves[i] = shelfModelToDomain(m)
	}
	return shelves, nil
}

// AddShelf implements ShelfWriter.AddShelf. New shelves go last.
func (r *SQLiteRepository) AddShelf(ctx context.Context, shelf domain.Shelf) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			tx.Model(&ShelfModel{}).Where("name = ?", shelf.Name).Count(&count)
			if count > 0 {
				return fmt.Errorf("%w: %s", domain.ErrShelfExists, shelf.Name)
			}

			var maxPosition *int
			tx.Model(&ShelfModel{}).Select("MAX(position)").Scan(&maxPosition)

			model := domainToShelfModel(shelf)
			if maxPosition != nil {
				model.Position = *maxPosition + 1
			}
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create shelf: %w", err)
			}
			return nil
		})
	}, 3)
}

// DeleteShelf implements ShelfWriter.DeleteShelf. A shelf with items is only
// removed when force is set.
func (r *SQLiteRepository) DeleteShelf(ctx context.Context, name string, force bool) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if _, err := findShelf(tx, name); err != nil {
				return err
			}

			var count int64
			tx.Model(&ItemModel{}).Where("shelf_name = ?", name).Count(&count)
			if count > 0 && !force {
				return fmt.Errorf("%w: %s has %d items", domain.ErrShelfNotEmpty, name, count)
			}

			var keys []string
			if err := tx.Model(&ItemModel{}).Where("shelf_name = ?", name).Pluck("item_key", &keys).Error; err != nil {
				return fmt.Errorf("failed to list items of %s: %w", name, err)
			}
			if len(keys) > 0 {
				if err := tx.Where("link_target IN ?", keys).Delete(&ItemModel{}).Error; err != nil {
					return fmt.Errorf("failed to delete links into %s: %w", name, err)
				}
			}
			if err := tx.Where("shelf_name = ?", name).Delete(&ItemModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete items of %s: %w", name, err)
			}
			if err := tx.Where("name = ?", name).Delete(&ShelfModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete shelf %s: %w", name, err)
			}
			return nil
		})
	}, 3)
}

// SwapShelves implements ShelfWriter.SwapShelves
func (r *SQLiteRepository) SwapShelves(ctx context.Context, name1, name2 string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			shelf1, err := findShelf(tx, name1)
			if err != nil {
				return err
			}
			shelf2, err := findShelf(tx, name2)
			if err != nil {
				return err
			}

			shelf1.Position, shelf2.Position = shelf2.Position, shelf1.Position

			if err := tx.Model(&ShelfModel{}).Where("name = ?", name1).Update("position", shelf1.Position).Error; err != nil {
				return fmt.Errorf("failed to update position for %s: %w", name1, err)
			}
			if err := tx.Model(&ShelfModel{}).Where("name = ?", name2).Update("position", shelf2.Position).Error; err != nil {
				return fmt.Errorf("failed to update position for %s: %w", name2, err)
			}
			return nil
		})
	}, 3)
}

// GetItem implements ItemReader.GetItem
func (r *SQLiteRepository) GetItem(ctx context.Context, key string) (*domain.Item, error) {
	var model ItemModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("item_key = ?", key).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, key)
		}
		return nil, err
	}
	item := itemModelToDomain(model)
	return &item, nil
}

// ListItems implements ItemReader.ListItems. Siblings come out in position
// order.
func (r *SQLiteRepository) ListItems(ctx context.Context, shelf string) ([]domain.Item, error) {
	var models []ItemModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("shelf_name = ?", shelf).
			Order("position ASC, created_at ASC").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	items := make([]domain.Item, len(models))
	for i, m := range models {
		items[i] = itemModelToDomain(m)
	}
	return items, nil
}

// AddItem implements ItemWriter.AddItem
func (r *SQLiteRepository) AddItem(ctx context.Context, item domain.Item, at domain.Placement) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			tx.Model(&ItemModel{}).Where("item_key = ?", item.Key).Count(&count)
			if count > 0 {
				return fmt.Errorf("%w: %s", domain.ErrItemExists, item.Key)
			}

			if err := checkPlacement(tx, at, nil); err != nil {
				return err
			}

			item.Shelf = at.Shelf
			item.Parent = at.Parent
			model := domainToItemModel(item)
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to create item: %w", err)
			}
			return placeSiblings(tx, at, []string{item.Key})
		})
	}, 3)
}

// DeleteItems implements ItemWriter.DeleteItems. Folder contents and links
// to deleted items go too.
func (r *SQLiteRepository) DeleteItems(ctx context.Context, keys []string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			all, err := loadItems(tx)
			if err != nil {
				return err
			}
			doomed, err := withDescendants(all, keys)
			if err != nil {
				return err
			}
			if err := tx.Where("link_target IN ?", doomed).Delete(&ItemModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete links: %w", err)
			}
			if err := tx.Where("item_key IN ?", doomed).Delete(&ItemModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete items: %w", err)
			}
			return nil
		})
	}, 3)
}

// UpdateText implements ItemWriter.UpdateText
func (r *SQLiteRepository) UpdateText(ctx context.Context, key, text string) error {
	return withRetry(func() error {
		res := r.db.WithContext(ctx).Model(&ItemModel{}).Where("item_key = ?", key).Update("text", text)
		if res.Error != nil {
			return fmt.Errorf("failed to update item %s: %w", key, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, key)
		}
		return nil
	}, 3)
}

// MoveItems implements ItemTransfer.MoveItems. Keys nested under another
// moved key travel with their ancestor.
func (r *SQLiteRepository) MoveItems(ctx context.Context, keys []string, at domain.Placement) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			all, err := loadItems(tx)
			if err != nil {
				return err
			}
			top, err := topLevel(all, keys)
			if err != nil {
				return err
			}
			if err := checkPlacement(tx, at, all); err != nil {
				return err
			}

			shelf, err := findShelf(tx, at.Shelf)
			if err != nil {
				return err
			}
			for _, key := range top {
				item := all[key]
				if at.Parent == key || isAncestor(all, key, at.Parent) {
					return fmt.Errorf("%w: %s into itself", domain.ErrInvalidDrop, key)
				}
				if !shelfModelToDomain(*shelf).Accepts(domain.ItemType(item.Type)) {
					return fmt.Errorf("%w: %s on %s", domain.ErrTypeNotAccepted, item.Type, at.Shelf)
				}
			}

			for _, key := range top {
				if err := tx.Model(&ItemModel{}).Where("item_key = ?", key).Updates(map[string]any{
					"shelf_name": at.Shelf,
					"parent_key": optional(at.Parent),
				}).Error; err != nil {
					return fmt.Errorf("failed to move item %s: %w", key, err)
				}
				nested := descendantsOf(all, key)
				if len(nested) > 0 {
					if err := tx.Model(&ItemModel{}).Where("item_key IN ?", nested).Update("shelf_name", at.Shelf).Error; err != nil {
						return fmt.Errorf("failed to move contents of %s: %w", key, err)
					}
				}
			}

			logging.Logger.Debug("Items moved", "keys", top, "shelf", at.Shelf, "parent", at.Parent, "before", at.Before)
			return placeSiblings(tx, at, top)
		})
	}, 3)
}

// CopyItems implements ItemTransfer.CopyItems. Folders are copied with their
// contents. Returns the keys of the new top-level items.
func (r *SQLiteRepository) CopyItems(ctx context.Context, keys []string, at domain.Placement, newKey func() string) ([]string, error) {
	var created []string
	err := withRetry(func() error {
		created = nil
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			all, err := loadItems(tx)
			if err != nil {
				return err
			}
			top, err := topLevel(all, keys)
			if err != nil {
				return err
			}
			if err := checkPlacement(tx, at, all); err != nil {
				return err
			}
			shelf, err := findShelf(tx, at.Shelf)
			if err != nil {
				return err
			}
			for _, key := range top {
				if !shelfModelToDomain(*shelf).Accepts(domain.ItemType(all[key].Type)) {
					return fmt.Errorf("%w: %s on %s", domain.ErrTypeNotAccepted, all[key].Type, at.Shelf)
				}
			}

			children := childIndex(all)
			var clone func(src ItemModel, parent *string) (string, error)
			clone = func(src ItemModel, parent *string) (string, error) {
				dup := ItemModel{
					Key:        newKey(),
					LinkTarget: src.LinkTarget,
					ParentKey:  parent,
					Position:   src.Position,
					ShelfName:  at.Shelf,
					Text:       src.Text,
					Type:       src.Type,
				}
				if err := tx.Create(&dup).Error; err != nil {
					return "", fmt.Errorf("failed to copy item %s: %w", src.Key, err)
				}
				for _, child := range children[src.Key] {
					if _, err := clone(all[child], &dup.Key); err != nil {
						return "", err
					}
				}
				return dup.Key, nil
			}

			for _, key := range top {
				k, err := clone(all[key], optional(at.Parent))
				if err != nil {
					return err
				}
				created = append(created, k)
			}

			logging.Logger.Debug("Items copied", "keys", top, "copies", created, "shelf", at.Shelf)
			return placeSiblings(tx, at, created)
		})
	}, 3)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// LinkItems implements ItemTransfer.LinkItems. A link to a link points at
// the original item.
func (r *SQLiteRepository) LinkItems(ctx context.Context, keys []string, at domain.Placement, newKey func() string) ([]string, error) {
	var created []string
	err := withRetry(func() error {
		created = nil
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			all, err := loadItems(tx)
			if err != nil {
				return err
			}
			top, err := topLevel(all, keys)
			if err != nil {
				return err
			}
			if err := checkPlacement(tx, at, all); err != nil {
				return err
			}
			shelf, err := findShelf(tx, at.Shelf)
			if err != nil {
				return err
			}
			if !shelfModelToDomain(*shelf).Accepts(domain.ItemTypeLink) {
				return fmt.Errorf("%w: link on %s", domain.ErrTypeNotAccepted, at.Shelf)
			}

			for _, key := range top {
				src := all[key]
				target := src.Key
				if src.LinkTarget != nil {
					target = *src.LinkTarget
				}
				link := ItemModel{
					Key:        newKey(),
					LinkTarget: &target,
					ParentKey:  optional(at.Parent),
					ShelfName:  at.Shelf,
					Text:       src.Text,
					Type:       string(domain.ItemTypeLink),
				}
				if err := tx.Create(&link).Error; err != nil {
					return fmt.Errorf("failed to link item %s: %w", key, err)
				}
				created = append(created, link.Key)
			}

			logging.Logger.Debug("Items linked", "keys", top, "links", created, "shelf", at.Shelf)
			return placeSiblings(tx, at, created)
		})
	}, 3)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// LoadBoard implements BoardLoader.LoadBoard
func (r *SQLiteRepository) LoadBoard(ctx context.Context) (*domain.Board, error) {
	var shelves []ShelfModel
	var items []ItemModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Order("position ASC, name ASC").Find(&shelves).Error; err != nil {
				return fmt.Errorf("failed to load shelves: %w", err)
			}
			if err := tx.Order("position ASC, created_at ASC").Find(&items).Error; err != nil {
				return fmt.Errorf("failed to load items: %w", err)
			}

			// Normalize shelf positions if needed
			for i, s := range shelves {
				if s.Position != i {
					tx.Model(&ShelfModel{}).Where("name = ?", s.Name).Update("position", i)
					shelves[i].Position = i
				}
			}
			return nil
		})
	}, 3)
	if err != nil {
		return nil, err
	}

	board := &domain.Board{
		Items:          make(map[string][]domain.Item),
		OrderedShelves: make([]string, len(shelves)),
		Shelves:        make(map[string]domain.Shelf),
	}
	for i, s := range shelves {
		board.OrderedShelves[i] = s.Name
		board.Shelves[s.Name] = shelfModelToDomain(s)
	}
	for _, it := range items {
		board.Items[it.ShelfName] = append(board.Items[it.ShelfName], itemModelToDomain(it))
	}
	return board, nil
}

func findShelf(tx *gorm.DB, name string) (*ShelfModel, error) {
	var shelf ShelfModel
	if err := tx.Where("name = ?", name).First(&shelf).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrShelfNotFound, name)
		}
		return nil, err
	}
	return &shelf, nil
}

func loadItems(tx *gorm.DB) (map[string]ItemModel, error) {
	var models []ItemModel
	if err := tx.Order("position ASC, created_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	all := make(map[string]ItemModel, len(models))
	for _, m := range models {
		all[m.Key] = m
	}
	return all, nil
}

// checkPlacement verifies the target shelf and folder. all may be nil, in
// which case the parent is looked up.
func checkPlacement(tx *gorm.DB, at domain.Placement, all map[string]ItemModel) error {
	if _, err := findShelf(tx, at.Shelf); err != nil {
		return err
	}
	if at.Parent == "" {
		return nil
	}

	var parent ItemModel
	if all != nil {
		p, ok := all[at.Parent]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, at.Parent)
		}
		parent = p
	} else if err := tx.Where("item_key = ?", at.Parent).First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrItemNotFound, at.Parent)
		}
		return err
	}

	if parent.Type != string(domain.ItemTypeFolder) || parent.ShelfName != at.Shelf {
		return fmt.Errorf("%w: %s is not a folder on %s", domain.ErrInvalidDrop, at.Parent, at.Shelf)
	}
	return nil
}

// placeSiblings renumbers the items under at so that inserted sit before
// at.Before, or last.
func placeSiblings(tx *gorm.DB, at domain.Placement, inserted []string) error {
	var siblings []ItemModel
	q := tx.Where("shelf_name = ?", at.Shelf)
	if at.Parent == "" {
		q = q.Where("parent_key IS NULL")
	} else {
		q = q.Where("parent_key = ?", at.Parent)
	}
	if err := q.Order("position ASC, created_at ASC").Find(&siblings).Error; err != nil {
		return fmt.Errorf("failed to load siblings: %w", err)
	}

	isInserted := make(map[string]bool, len(inserted))
	for _, k := range inserted {
		isInserted[k] = true
	}

	order := make([]string, 0, len(siblings))
	placed := false
	for _, s := range siblings {
		if s.Key == at.Before && !placed {
			order = append(order, inserted...)
			placed = true
		}
		if isInserted[s.Key] {
			continue
		}
		order = append(order, s.Key)
	}
	if !placed {
		order = append(order, inserted...)
	}

	for i, key := range order {
		if err := tx.Model(&ItemModel{}).Where("item_key = ?", key).Update("position", i).Error; err != nil {
			return fmt.Errorf("failed to update position for %s: %w", key, err)
		}
	}
	return nil
}

// topLevel drops keys nested under another key of the set, keeping the
// caller's order.
func topLevel(all map[string]ItemModel, keys []string) ([]string, error) {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		if _, ok := all[k]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, k)
		}
		set[k] = true
	}
	var out []string
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		nested := false
		for p := parentOf(all, k); p != ""; p = parentOf(all, p) {
			if set[p] {
				nested = true
				break
			}
			if p == k {
				break
			}
		}
		if !nested {
			out = append(out, k)
		}
	}
	return out, nil
}

func withDescendants(all map[string]ItemModel, keys []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	for _, k := range keys {
		if _, ok := all[k]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, k)
		}
		for _, d := range append([]string{k}, descendantsOf(all, k)...) {
			if !seen[d] {
				seen[d] = true
				out = append(out, d)
			}
		}
	}
	return out, nil
}

func parentOf(all map[string]ItemModel, key string) string {
	if m, ok := all[key]; ok && m.ParentKey != nil {
		return *m.ParentKey
	}
	return ""
}

// isAncestor reports whether ancestor is above key in the folder tree.
func isAncestor(all map[string]ItemModel, ancestor, key string) bool {
	seen := make(map[string]bool)
	for p := parentOf(all, key); p != "" && !seen[p]; p = parentOf(all, p) {
		if p == ancestor {
			return true
		}
		seen[p] = true
	}
	return false
}

func childIndex(all map[string]ItemModel) map[string][]string {
	items := make([]domain.Item, 0, len(all))
	for _, m := range all {
		items = append(items, itemModelToDomain(m))
	}
	children := make(map[string][]string)
	for _, it := range sortByPosition(items, all) {
		if it.Parent != "" {
			children[it.Parent] = append(children[it.Parent], it.Key)
		}
	}
	return children
}

func descendantsOf(all map[string]ItemModel, key string) []string {
	items := make([]domain.Item, 0, len(all))
	for _, m := range all {
		items = append(items, itemModelToDomain(m))
	}
	return domain.Descendants(sortByPosition(items, all), key)
}

func sortByPosition(items []domain.Item, all map[string]ItemModel) []domain.Item {
	sort.Slice(items, func(i, j int) bool {
		a, b := all[items[i].Key], all[items[j].Key]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.Key < b.Key
	})
	return items
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
