package store

import (
	"context"
	"fmt"

	"vinai-server/internal/core/recommend"
)

// ListVocabulary 讀取詞彙表的 nombre 欄位，依 id 排序
func (s *Store) ListVocabulary(ctx context.Context, category recommend.Category) ([]string, error) {
	var model interface{}
	switch category {
	case recommend.CategoryFlavorNote:
		model = &FlavorNote{}
	case recommend.CategoryPairing:
		model = &Pairing{}
	case recommend.CategoryCharacteristic:
		model = &Characteristic{}
	default:
		return nil, fmt.Errorf("unknown vocabulary category %q", category)
	}

	var names []string
	if err := s.db.WithContext(ctx).Model(model).Order("id").Pluck("nombre", &names).Error; err != nil {
		return nil, storageErr(err)
	}
	return names, nil
}

// wineRow 酒款查詢結果的欄位
type wineRow struct {
	VinoID     int64  `gorm:"column:vino_id"`
	VinoNombre string `gorm:"column:vino_nombre"`
	Cepa       string `gorm:"column:cepa"`
	Ano        int    `gorm:"column:ano"`
	Tipo       string `gorm:"column:tipo"`
	VinaNombre string `gorm:"column:vina_nombre"`
	Valle      string `gorm:"column:valle"`
	LinkCompra string `gorm:"column:link_compra"`
}

// FindWine 執行參數化查詢，沒有結果時回傳 nil, nil
func (s *Store) FindWine(ctx context.Context, q recommend.Query) (*recommend.WineMatch, error) {
	var rows []wineRow
	if err := s.db.WithContext(ctx).Raw(q.Text, q.Args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	r := rows[0]
	return &recommend.WineMatch{
		ID:          r.VinoID,
		Name:        r.VinoNombre,
		Grape:       r.Cepa,
		Year:        r.Ano,
		Type:        r.Tipo,
		WineryName:  r.VinaNombre,
		Valley:      r.Valle,
		PurchaseURL: r.LinkCompra,
	}, nil
}

// ListPreferences 使用者保存的全部偏好
func (s *Store) ListPreferences(ctx context.Context, userID int64) (recommend.StoredPreferences, error) {
	var prefs []UserPreference
	if err := s.db.WithContext(ctx).Where("usuario_id = ?", userID).Order("id").Find(&prefs).Error; err != nil {
		return nil, storageErr(err)
	}
	out := make(recommend.StoredPreferences, len(prefs))
	for _, p := range prefs {
		out[recommend.Dimension(p.Dimension)] = p.Value
	}
	return out, nil
}
