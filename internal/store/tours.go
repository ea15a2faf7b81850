package store

import (
	"context"

	"vinai-server/internal/core/recommend"
	"vinai-server/internal/core/tour"

	"gorm.io/gorm"
)

// FindWineryByName 名稱包含 fragment（不分大小寫）的第一間酒莊，依 id 排序
func (s *Store) FindWineryByName(ctx context.Context, fragment string) (*Winery, error) {
	var winery Winery
	err := s.db.WithContext(ctx).
		Where("LOWER(nombre) LIKE LOWER(?)"+recommend.LikeEscape, recommend.ContainsPattern(fragment)).
		Order("id").
		First(&winery).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return &winery, nil
}

// ReplaceRating 在同一交易中刪除舊評分並寫入新評分
func (s *Store) ReplaceRating(ctx context.Context, userID, wineryID int64, rating int, comment string) (*TourRating, error) {
	row := &TourRating{UserID: userID, WineryID: wineryID, Rating: rating, Comment: comment}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("usuario_id = ? AND vina_id = ?", userID, wineryID).
			Delete(&TourRating{}).Error; err != nil {
			return err
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return row, nil
}

// FindTourByWinery 實作 tour.Finder
func (s *Store) FindTourByWinery(ctx context.Context, fragment string) (*tour.Venue, error) {
	var winery Winery
	err := s.db.WithContext(ctx).
		Where("LOWER(nombre) LIKE LOWER(?)"+recommend.LikeEscape, recommend.ContainsPattern(fragment)).
		Where("descripcion_tour IS NOT NULL").
		Order("id").
		First(&winery).Error
	if notFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return toVenue(&winery), nil
}

// RandomTour 實作 tour.Finder
func (s *Store) RandomTour(ctx context.Context, valley string) (*tour.Venue, error) {
	q := s.db.WithContext(ctx).Where("descripcion_tour IS NOT NULL")
	if valley != "" {
		q = q.Where("LOWER(valle) LIKE LOWER(?)"+recommend.LikeEscape, recommend.ContainsPattern(valley))
	}

	var wineries []Winery
	if err := q.Order(recommend.RandomFunc(s.dialect)).Limit(1).Find(&wineries).Error; err != nil {
		return nil, storageErr(err)
	}
	if len(wineries) == 0 {
		return nil, nil
	}
	return toVenue(&wineries[0]), nil
}

func toVenue(w *Winery) *tour.Venue {
	return &tour.Venue{
		ID:          w.ID,
		Name:        w.Name,
		Valley:      w.Valley,
		Description: deref(w.TourDescription),
		Hours:       deref(w.TourHours),
		Website:     deref(w.Website),
		Latitude:    w.Latitude,
		Longitude:   w.Longitude,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
