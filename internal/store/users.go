package store

import (
	"context"
	"errors"

	"vinai-server/internal/pkg/common"

	"gorm.io/gorm"
)

// CreateUser 新增使用者；email 重複時回傳 ErrDuplicateEmail
func (s *Store) CreateUser(ctx context.Context, user *User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.ErrDuplicateEmail
	}
	return storageErr(err)
}

// FindUserByEmail 依 email 精確查詢，沒有結果時回傳 nil, nil
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return &user, nil
}

// ReplacePreference 在同一交易中刪除舊值並寫入新值
func (s *Store) ReplacePreference(ctx context.Context, userID int64, dimension, value string) (*UserPreference, error) {
	pref := &UserPreference{UserID: userID, Dimension: dimension, Value: value}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("usuario_id = ? AND tipo_preferencia = ?", userID, dimension).
			Delete(&UserPreference{}).Error; err != nil {
			return err
		}
		return tx.Create(pref).Error
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return pref, nil
}
