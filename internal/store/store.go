// Package store 以 gorm 實作各核心模組需要的資料存取
package store

import (
	"context"
	"errors"
	"fmt"

	"vinai-server/internal/infrastructure/database"
	"vinai-server/internal/pkg/common"

	"gorm.io/gorm"
)

// Store 資料存取層
type Store struct {
	db      *gorm.DB
	dialect string
}

// New 創建資料存取層，dialect 決定隨機排序函式
func New(db *gorm.DB, dialect string) *Store {
	return &Store{db: db, dialect: dialect}
}

// DB 底層連線
func (s *Store) DB() *gorm.DB { return s.db }

// Dialect SQL 方言
func (s *Store) Dialect() string { return s.dialect }

// Migrate 建立或更新全部資料表
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Ping 檢查資料庫連線
func (s *Store) Ping(ctx context.Context) error {
	return database.Ping(ctx, s.db)
}

// notFound gorm.ErrRecordNotFound 轉成 nil 結果
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// storageErr 包裝底層錯誤，保留原因供日誌使用
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	return common.Wrap(common.ErrStorageUnavailable, err)
}
