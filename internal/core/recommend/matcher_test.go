package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindKeyword(t *testing.T) {
	keywords := []string{"vainilla", "chocolate", "cereza"}

	tests := []struct {
		name     string
		text     string
		keywords []string
		want     string
		found    bool
	}{
		{"single match", "algo con notas de chocolate", keywords, "Chocolate", true},
		{"case insensitive", "Quiero CEREZA por favor", keywords, "Cereza", true},
		{"vocabulary order wins", "cereza y vainilla", keywords, "Vainilla", true},
		{"substring inside word", "achocolatado", keywords, "Chocolate", true},
		{"no match", "un tinto seco", keywords, "", false},
		{"empty text", "", keywords, "", false},
		{"empty vocabulary", "chocolate", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindKeyword(tt.text, tt.keywords)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Carmenere", Capitalize("carmenere"))
	assert.Equal(t, "Cítrico", Capitalize("cítrico"))
	assert.Equal(t, "Ñuble", Capitalize("ñuble"))
	// solo la primera letra cambia
	assert.Equal(t, "Cabernet Sauvignon", Capitalize("cabernet Sauvignon"))
	assert.Equal(t, "MAIPO", Capitalize("MAIPO"))
	assert.Equal(t, "", Capitalize(""))
}
