package recommend

import (
	"context"
	"strings"

	"vinai-server/internal/pkg/common"

	"go.uber.org/zap"
)

// Category 關鍵字詞庫類別
type Category string

const (
	CategoryFlavorNote     Category = "notas_sabor"
	CategoryPairing        Category = "maridajes"
	CategoryCharacteristic Category = "caracteristicas"
)

// fallbackFlavorNotes 資料庫無法連線時使用的風味詞
var fallbackFlavorNotes = []string{
	"vainilla", "chocolate", "pimienta", "manzana", "cereza", "guinda", "ciruela",
	"cedro", "tabaco", "eucalipto", "cítrico", "melocotón", "frutilla", "arándano",
	"miel", "durazno", "hierba", "café", "frambuesa",
}

// VocabularySource 詞庫來源
type VocabularySource interface {
	ListVocabulary(ctx context.Context, category Category) ([]string, error)
}

// Vocabulary 啟動時載入的詞庫，建立後不再修改
type Vocabulary struct {
	flavorNotes     []string
	pairings        []string
	characteristics []string
}

// NewVocabulary 以給定詞彙建立詞庫，全部轉小寫並保留順序
func NewVocabulary(flavorNotes, pairings, characteristics []string) Vocabulary {
	return Vocabulary{
		flavorNotes:     lowerAll(flavorNotes),
		pairings:        lowerAll(pairings),
		characteristics: lowerAll(characteristics),
	}
}

// FallbackVocabulary 只有風味詞的備用詞庫
func FallbackVocabulary() Vocabulary {
	return NewVocabulary(fallbackFlavorNotes, nil, nil)
}

// Keywords 取得某類別的詞彙副本
func (v Vocabulary) Keywords(category Category) []string {
	var src []string
	switch category {
	case CategoryFlavorNote:
		src = v.flavorNotes
	case CategoryPairing:
		src = v.pairings
	case CategoryCharacteristic:
		src = v.characteristics
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Size 某類別的詞彙數量
func (v Vocabulary) Size(category Category) int {
	switch category {
	case CategoryFlavorNote:
		return len(v.flavorNotes)
	case CategoryPairing:
		return len(v.pairings)
	case CategoryCharacteristic:
		return len(v.characteristics)
	}
	return 0
}

// LoadVocabulary 從資料庫載入三個詞庫；任何錯誤都退回只含風味詞的備用詞庫
func LoadVocabulary(ctx context.Context, source VocabularySource) Vocabulary {
	common.LogInfo("載入關鍵字詞庫")

	lists := make(map[Category][]string, 3)
	for _, category := range []Category{CategoryFlavorNote, CategoryPairing, CategoryCharacteristic} {
		words, err := source.ListVocabulary(ctx, category)
		if err != nil {
			common.LogError("關鍵字詞庫載入失敗，使用備用風味詞",
				zap.String("category", string(category)),
				zap.Error(err),
			)
			return FallbackVocabulary()
		}
		lists[category] = words
	}

	vocab := NewVocabulary(lists[CategoryFlavorNote], lists[CategoryPairing], lists[CategoryCharacteristic])
	common.LogInfo("關鍵字詞庫已載入",
		zap.Int("notas_sabor", vocab.Size(CategoryFlavorNote)),
		zap.Int("maridajes", vocab.Size(CategoryPairing)),
		zap.Int("caracteristicas", vocab.Size(CategoryCharacteristic)),
	)
	return vocab
}

func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}
