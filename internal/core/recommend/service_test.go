package recommend

import (
	"context"
	"errors"
	"testing"

	"vinai-server/internal/core/reply"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	match     *WineMatch
	findErr   error
	prefs     map[int64]StoredPreferences
	prefsErr  error
	lastQuery Query
	calls     int
}

func (f *fakeStore) FindWine(_ context.Context, q Query) (*WineMatch, error) {
	f.calls++
	f.lastQuery = q
	return f.match, f.findErr
}

func (f *fakeStore) ListPreferences(_ context.Context, userID int64) (StoredPreferences, error) {
	if f.prefsErr != nil {
		return nil, f.prefsErr
	}
	return f.prefs[userID], nil
}

func sampleWine() *WineMatch {
	return &WineMatch{
		ID:          7,
		Name:        "Gran Reserva",
		Grape:       "Carmenere",
		Year:        2019,
		Type:        "Tinto",
		WineryName:  "Santa Rita",
		Valley:      "Maipo",
		PurchaseURL: "https://tienda.example/gran-reserva",
	}
}

func resetNames(r reply.Reply) []string {
	var names []string
	for _, e := range r.Events {
		if e.Value == nil {
			names = append(names, e.Name)
		}
	}
	return names
}

func TestRecommendFromFreeText(t *testing.T) {
	store := &fakeStore{match: sampleWine()}
	svc := NewService(testVocabulary(), DialectPostgres, store)

	out := svc.Recommend(context.Background(), Turn{SessionID: "abc123", Text: "algo con notas de chocolate"})

	require.Len(t, out.Messages, 1)
	msg := out.Messages[0]
	assert.Equal(t, "¡Perfecto! Te recomiendo el vino **Gran Reserva** (Carmenere Tinto) del año **2019**, de Viña Santa Rita (Maipo).", msg.Text)
	assert.Equal(t, "https://tienda.example/gran-reserva", msg.Custom["link"])
	assert.Equal(t, "Comprar Gran Reserva", msg.Custom["link_text"])
	assert.Equal(t, []interface{}{"Chocolate"}, store.lastQuery.Args)
	assert.Empty(t, out.Events)
}

func TestRecommendUsesStoredPreferences(t *testing.T) {
	store := &fakeStore{
		match: sampleWine(),
		prefs: map[int64]StoredPreferences{42: {DimGrapeVariety: "Carmenere"}},
	}
	svc := NewService(testVocabulary(), DialectSQLite, store)

	out := svc.Recommend(context.Background(), Turn{
		SessionID: "user_42",
		Slots:     Slots{WineType: "tinto", VintageYear: 2019},
	})

	texts := out.Texts()
	require.Len(t, texts, 2)
	assert.Equal(t, msgUsingStored, texts[0])
	assert.Equal(t, []interface{}{"Carmenere", "Tinto", 2019}, store.lastQuery.Args)
	assert.ElementsMatch(t, []string{"slot_tipo_vino", "slot_ano"}, resetNames(out))
}

func TestRecommendAnonymousIgnoresStore(t *testing.T) {
	store := &fakeStore{
		match: sampleWine(),
		prefs: map[int64]StoredPreferences{42: {DimGrapeVariety: "Carmenere"}},
	}
	svc := NewService(testVocabulary(), DialectSQLite, store)

	out := svc.Recommend(context.Background(), Turn{SessionID: "42", Slots: Slots{Valley: "maipo"}})
	assert.NotContains(t, out.Texts(), msgUsingStored)
	assert.Equal(t, []interface{}{"%Maipo%"}, store.lastQuery.Args)
}

func TestRecommendInsufficientCriteria(t *testing.T) {
	store := &fakeStore{match: sampleWine()}
	svc := NewService(testVocabulary(), DialectPostgres, store)

	out := svc.Recommend(context.Background(), Turn{SessionID: "abc", Text: "hola"})
	require.Len(t, out.Messages, 1)
	assert.Equal(t, tplAskTaste, out.Messages[0].Response)
	assert.Zero(t, store.calls)
}

func TestRecommendNoMatch(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(testVocabulary(), DialectPostgres, store)

	out := svc.Recommend(context.Background(), Turn{SessionID: "abc", Slots: Slots{GrapeVariety: "pinot"}})
	assert.Equal(t, []string{msgNoMatch}, out.Texts())
	assert.Equal(t, []string{"slot_cepa"}, resetNames(out))
}

func TestRecommendStorageError(t *testing.T) {
	store := &fakeStore{findErr: errors.New("db down")}
	svc := NewService(testVocabulary(), DialectPostgres, store)

	out := svc.Recommend(context.Background(), Turn{SessionID: "abc", Slots: Slots{GrapeVariety: "pinot"}})
	assert.Equal(t, []string{msgStorageError}, out.Texts())
	assert.Equal(t, []string{"slot_cepa"}, resetNames(out))
}

func TestRecommendStoredPreferenceErrorIsIgnored(t *testing.T) {
	store := &fakeStore{match: sampleWine(), prefsErr: errors.New("timeout")}
	svc := NewService(testVocabulary(), DialectPostgres, store)

	out := svc.Recommend(context.Background(), Turn{SessionID: "user_1", Text: "para carne"})
	require.Len(t, out.Messages, 1)
	assert.Equal(t, []interface{}{"Carne"}, store.lastQuery.Args)
}

func TestSlotsPresentIncludesUnparsedVintage(t *testing.T) {
	assert.Equal(t, []Dimension{DimVintageYear}, Slots{VintageSet: true}.Present())
	assert.Equal(t, []Dimension{DimVintageYear}, Slots{VintageYear: 2019}.Present())
	assert.Empty(t, Slots{}.Present())
}
