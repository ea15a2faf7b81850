// Package tour 酒莊導覽查詢與推薦
package tour

import "context"

// Venue 提供導覽的酒莊
type Venue struct {
	ID          int64
	Name        string
	Valley      string
	Description string
	Hours       string
	Website     string
	Latitude    *float64
	Longitude   *float64
}

// Finder 導覽資料來源；沒有結果時回傳 nil, nil
type Finder interface {
	// FindTourByWinery 名稱包含 fragment（不分大小寫）且有導覽描述的第一間酒莊
	FindTourByWinery(ctx context.Context, fragment string) (*Venue, error)
	// RandomTour 隨機一間有導覽的酒莊，valley 非空時以部分比對篩選產區
	RandomTour(ctx context.Context, valley string) (*Venue, error)
}
