package recommend

import (
	"errors"
	"testing"

	"vinai-server/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVocabulary() Vocabulary {
	return NewVocabulary(
		[]string{"Chocolate", "vainilla"},
		[]string{"carne", "pescado"},
		[]string{"frutal", "seco"},
	)
}

func TestResolveSlotBeatsOtherSources(t *testing.T) {
	r := NewResolver(testVocabulary())

	slots := Slots{
		GrapeVariety:   "syrah",
		WineType:       "tinto",
		Valley:         "colchagua",
		Characteristic: "elegante",
		Pairing:        "queso",
	}
	stored := StoredPreferences{
		DimGrapeVariety:   "Carmenere",
		DimWineType:       "Blanco",
		DimValley:         "Maipo",
		DimCharacteristic: "Seco",
		DimPairing:        "Pescado",
	}

	got, err := r.Resolve(slots, stored, "algo frutal para carne")
	require.NoError(t, err)
	assert.Equal(t, "Syrah", got.GrapeVariety)
	assert.Equal(t, "Tinto", got.WineType)
	assert.Equal(t, "Colchagua", got.Valley)
	assert.Equal(t, "Elegante", got.Characteristic)
	assert.Equal(t, "Queso", got.Pairing)
}

func TestResolveFreeTextBeatsStored(t *testing.T) {
	r := NewResolver(testVocabulary())

	stored := StoredPreferences{
		DimCharacteristic: "Seco",
		DimPairing:        "Pescado",
		DimGrapeVariety:   "Carmenere",
	}

	got, err := r.Resolve(Slots{}, stored, "un vino frutal para la carne")
	require.NoError(t, err)
	assert.Equal(t, "Frutal", got.Characteristic)
	assert.Equal(t, "Carne", got.Pairing)
	// la cepa no tiene fuente de texto libre
	assert.Equal(t, "Carmenere", got.GrapeVariety)
}

func TestResolveStoredFallback(t *testing.T) {
	r := NewResolver(testVocabulary())

	got, err := r.Resolve(Slots{}, StoredPreferences{DimValley: "maipo", DimPairing: "carne"}, "hola")
	require.NoError(t, err)
	assert.Equal(t, PreferenceSet{Valley: "Maipo", Pairing: "Carne"}, got)
}

func TestResolveFlavorNoteOnlyFromText(t *testing.T) {
	r := NewResolver(testVocabulary())

	got, err := r.Resolve(Slots{}, StoredPreferences{DimFlavorNote: "Vainilla"}, "algo con notas de chocolate")
	require.NoError(t, err)
	assert.Equal(t, PreferenceSet{FlavorNote: "Chocolate"}, got)

	_, err = r.Resolve(Slots{}, StoredPreferences{DimFlavorNote: "Vainilla"}, "nada")
	assert.True(t, errors.Is(err, common.ErrInsufficientCriteria))
}

func TestResolveVintageOnlyFromSlot(t *testing.T) {
	r := NewResolver(testVocabulary())

	got, err := r.Resolve(Slots{VintageYear: 2019}, StoredPreferences{DimVintageYear: "2015"}, "")
	require.NoError(t, err)
	assert.Equal(t, PreferenceSet{VintageYear: 2019}, got)
}

func TestResolveInsufficientCriteria(t *testing.T) {
	r := NewResolver(testVocabulary())

	got, err := r.Resolve(Slots{}, nil, "hola, ¿qué me recomiendas?")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInsufficientCriteria))
	assert.True(t, got.IsEmpty())
}

func TestResolveBlankValuesAreAbsent(t *testing.T) {
	r := NewResolver(testVocabulary())

	got, err := r.Resolve(Slots{GrapeVariety: "   "}, StoredPreferences{DimGrapeVariety: "merlot"}, "")
	require.NoError(t, err)
	assert.Equal(t, "Merlot", got.GrapeVariety)
}

func TestFirstPresent(t *testing.T) {
	assert.Equal(t, "b", firstPresent("", " ", "b", "c"))
	assert.Equal(t, "", firstPresent())
	assert.Equal(t, "", firstPresent("", ""))
}
