package tour

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	staticMapBase = "https://maps.googleapis.com/maps/api/staticmap"
	// 未設定金鑰時的預設字串
	placeholderKey = "PEGA_TU_GOOGLE_MAPS_API_KEY_AQUÍ"
)

// StaticMapProvider 產生 Google Static Maps 圖片網址
type StaticMapProvider struct {
	apiKey string
}

// NewStaticMapProvider 創建靜態地圖提供者
func NewStaticMapProvider(apiKey string) *StaticMapProvider {
	return &StaticMapProvider{apiKey: strings.TrimSpace(apiKey)}
}

// Enabled 是否有可用的金鑰
func (p *StaticMapProvider) Enabled() bool {
	return p != nil && p.apiKey != "" && p.apiKey != placeholderKey
}

// URL 以座標為中心的地圖；缺少金鑰或座標時回傳 false
func (p *StaticMapProvider) URL(lat, lon *float64) (string, bool) {
	if !p.Enabled() || lat == nil || lon == nil {
		return "", false
	}
	center := formatCoord(*lat) + "," + formatCoord(*lon)
	return fmt.Sprintf("%s?center=%s&zoom=14&size=400x300&markers=color:red%%7C%s&key=%s",
		staticMapBase, center, center, p.apiKey), true
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ValleyImages 產區名稱對應的圖片，查詢不分大小寫
type ValleyImages map[string]string

// NewValleyImages 建立圖片對照表，鍵一律轉小寫
func NewValleyImages(images map[string]string) ValleyImages {
	out := make(ValleyImages, len(images))
	for name, url := range images {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || url == "" {
			continue
		}
		out[name] = url
	}
	return out
}

// Lookup 取得產區圖片
func (v ValleyImages) Lookup(valley string) (string, bool) {
	url, ok := v[strings.ToLower(strings.TrimSpace(valley))]
	return url, ok
}
