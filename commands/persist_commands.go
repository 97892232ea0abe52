package commands

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PersistCommand định nghĩa interface cho các command ghi DB
type PersistCommand interface {
	Execute() error
}

// BulkCreateCommand insert nhiều bản ghi mới theo lô
type BulkCreateCommand[T any] struct {
	rows      []*T
	db        *gorm.DB
	batchSize int
}

func NewBulkCreateCommand[T any](rows []*T, db *gorm.DB, batchSize int) *BulkCreateCommand[T] {
	return &BulkCreateCommand[T]{
		rows:      rows,
		db:        db,
		batchSize: batchSize,
	}
}

func (c *BulkCreateCommand[T]) Execute() error {
	if len(c.rows) == 0 {
		return nil
	}
	return c.db.Omit(clause.Associations).CreateInBatches(c.rows, batchSizeOf(c.batchSize)).Error
}

// BulkSaveCommand cập nhật bản ghi đã có ID (upsert theo primary key) theo lô
type BulkSaveCommand[T any] struct {
	rows      []*T
	db        *gorm.DB
	batchSize int
}

func NewBulkSaveCommand[T any](rows []*T, db *gorm.DB, batchSize int) *BulkSaveCommand[T] {
	return &BulkSaveCommand[T]{
		rows:      rows,
		db:        db,
		batchSize: batchSize,
	}
}

func (c *BulkSaveCommand[T]) Execute() error {
	size := batchSizeOf(c.batchSize)
	for start := 0; start < len(c.rows); start += size {
		end := start + size
		if end > len(c.rows) {
			end = len(c.rows)
		}
		chunk := c.rows[start:end]
		if err := c.db.Omit(clause.Associations).Save(&chunk).Error; err != nil {
			return err
		}
	}
	return nil
}

// FuncCommand bọc một bước không truy cập DB (ví dụ gắn khóa ngoại sau khi insert)
type FuncCommand func() error

func (f FuncCommand) Execute() error {
	return f()
}

// MacroCommand chạy tuần tự các command, dừng ở lỗi đầu tiên
type MacroCommand struct {
	commands []PersistCommand
}

func NewMacroCommand(commands ...PersistCommand) *MacroCommand {
	return &MacroCommand{commands: commands}
}

func (m *MacroCommand) Execute() error {
	for _, cmd := range m.commands {
		if err := cmd.Execute(); err != nil {
			return err
		}
	}
	return nil
}

func batchSizeOf(size int) int {
	if size <= 0 {
		return 500
	}
	return size
}
