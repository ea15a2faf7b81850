package recommend

import (
	"context"
	"fmt"

	"vinai-server/internal/core/reply"
	"vinai-server/internal/pkg/common"
)

// WineFinder 執行酒款查詢；沒有結果時回傳 nil, nil
type WineFinder interface {
	FindWine(ctx context.Context, q Query) (*WineMatch, error)
}

// Selector 執行查詢並取得唯一結果
type Selector struct {
	finder WineFinder
}

// NewSelector 創建結果選擇器
func NewSelector(finder WineFinder) *Selector {
	return &Selector{finder: finder}
}

// Select 執行查詢；沒有結果回傳 ErrNotFound，資料庫錯誤包裝為 ErrStorageUnavailable
func (s *Selector) Select(ctx context.Context, q Query) (*WineMatch, error) {
	match, err := s.finder.FindWine(ctx, q)
	if err != nil {
		return nil, common.Wrap(common.ErrStorageUnavailable, err)
	}
	if match == nil {
		return nil, common.ErrNotFound
	}
	return match, nil
}

// FormatWine 將命中的酒款轉成推薦訊息與購買連結
func FormatWine(m *WineMatch) reply.Message {
	text := fmt.Sprintf("¡Perfecto! Te recomiendo el vino **%s** (%s %s) del año **%d**, de Viña %s (%s).",
		m.Name, m.Grape, m.Type, m.Year, m.WineryName, m.Valley)
	return reply.Link(text, m.PurchaseURL, "Comprar "+m.Name)
}
