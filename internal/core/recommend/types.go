package recommend

import "strconv"

// Dimension 偏好維度，值與 preferencias_usuario.tipo_preferencia 一致
type Dimension string

const (
	DimGrapeVariety   Dimension = "cepa"
	DimWineType       Dimension = "tipo_vino"
	DimValley         Dimension = "valle"
	DimCharacteristic Dimension = "caracteristica"
	DimPairing        Dimension = "maridaje"
	DimFlavorNote     Dimension = "nota_sabor"
	DimVintageYear    Dimension = "ano"
)

// Dimensions 固定順序的全部維度
var Dimensions = []Dimension{
	DimGrapeVariety,
	DimWineType,
	DimValley,
	DimCharacteristic,
	DimPairing,
	DimFlavorNote,
	DimVintageYear,
}

// Slots 本回合對話管理器明確填入的值；nota_sabor 沒有 slot 來源
type Slots struct {
	GrapeVariety   string
	WineType       string
	Valley         string
	Characteristic string
	Pairing        string
	VintageYear    int
	VintageSet     bool // slot_ano 有值，即使無法解析成年份
}

// Present 有值的 slot 維度，用於回合結束時清除
func (s Slots) Present() []Dimension {
	var dims []Dimension
	if s.GrapeVariety != "" {
		dims = append(dims, DimGrapeVariety)
	}
	if s.WineType != "" {
		dims = append(dims, DimWineType)
	}
	if s.Valley != "" {
		dims = append(dims, DimValley)
	}
	if s.Characteristic != "" {
		dims = append(dims, DimCharacteristic)
	}
	if s.Pairing != "" {
		dims = append(dims, DimPairing)
	}
	if s.VintageSet || s.VintageYear != 0 {
		dims = append(dims, DimVintageYear)
	}
	return dims
}

// StoredPreferences 使用者長期保存的偏好
type StoredPreferences map[Dimension]string

// PreferenceSet 合併後的篩選條件，空值代表不限制
type PreferenceSet struct {
	GrapeVariety   string
	WineType       string
	Valley         string
	Characteristic string
	Pairing        string
	FlavorNote     string
	VintageYear    int
}

// IsEmpty 七個維度皆未限制
func (p PreferenceSet) IsEmpty() bool {
	return p == PreferenceSet{}
}

// Get 取得某一維度的值
func (p PreferenceSet) Get(d Dimension) (string, bool) {
	var v string
	switch d {
	case DimGrapeVariety:
		v = p.GrapeVariety
	case DimWineType:
		v = p.WineType
	case DimValley:
		v = p.Valley
	case DimCharacteristic:
		v = p.Characteristic
	case DimPairing:
		v = p.Pairing
	case DimFlavorNote:
		v = p.FlavorNote
	case DimVintageYear:
		if p.VintageYear != 0 {
			v = strconv.Itoa(p.VintageYear)
		}
	}
	return v, v != ""
}

// WineMatch 查詢命中的一支酒
type WineMatch struct {
	ID          int64
	Name        string
	Grape       string
	Year        int
	Type        string
	WineryName  string
	Valley      string
	PurchaseURL string
}

// Turn 一次推薦請求的輸入
type Turn struct {
	SessionID string
	Slots     Slots
	Text      string
}
