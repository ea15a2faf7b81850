package recommend

import (
	"strings"

	"vinai-server/internal/pkg/common"
)

// Resolver 合併 slot、保存的偏好與自由文字三種來源
type Resolver struct {
	vocab Vocabulary
}

// NewResolver 創建偏好解析器
func NewResolver(vocab Vocabulary) *Resolver {
	return &Resolver{vocab: vocab}
}

// Resolve 依固定優先順序逐維度取第一個有值的來源。
//
//	cepa, tipo_vino, valle:     slot > 保存的偏好
//	caracteristica, maridaje:   slot > 自由文字 > 保存的偏好
//	nota_sabor:                 只有自由文字
//	ano:                        只有 slot
//
// 全部為空時回傳 ErrInsufficientCriteria，呼叫端不應查詢。
func (r *Resolver) Resolve(slots Slots, stored StoredPreferences, text string) (PreferenceSet, error) {
	flavorTxt, _ := FindKeyword(text, r.vocab.flavorNotes)
	characteristicTxt, _ := FindKeyword(text, r.vocab.characteristics)
	pairingTxt, _ := FindKeyword(text, r.vocab.pairings)

	set := PreferenceSet{
		GrapeVariety:   Capitalize(firstPresent(slots.GrapeVariety, stored[DimGrapeVariety])),
		WineType:       Capitalize(firstPresent(slots.WineType, stored[DimWineType])),
		Valley:         Capitalize(firstPresent(slots.Valley, stored[DimValley])),
		Characteristic: Capitalize(firstPresent(slots.Characteristic, characteristicTxt, stored[DimCharacteristic])),
		Pairing:        Capitalize(firstPresent(slots.Pairing, pairingTxt, stored[DimPairing])),
		FlavorNote:     flavorTxt,
		VintageYear:    slots.VintageYear,
	}

	if set.IsEmpty() {
		return set, common.ErrInsufficientCriteria
	}
	return set, nil
}

// firstPresent 回傳第一個非空白的值
func firstPresent(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
