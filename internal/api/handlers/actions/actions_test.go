package actions

import (
	"context"
	"strings"
	"testing"

	"vinai-server/internal/core/recommend"
	"vinai-server/internal/core/reply"
	"vinai-server/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureStore struct {
	last  recommend.Query
	calls int
}

func (s *captureStore) FindWine(_ context.Context, q recommend.Query) (*recommend.WineMatch, error) {
	s.calls++
	s.last = q
	return &recommend.WineMatch{
		ID:          1,
		Name:        "Gran Reserva",
		Grape:       "Carmenere",
		Year:        2019,
		Type:        "Tinto",
		WineryName:  "Santa Rita",
		Valley:      "Maipo",
		PurchaseURL: "https://tienda.example/gran-reserva",
	}, nil
}

func (s *captureStore) ListPreferences(context.Context, int64) (recommend.StoredPreferences, error) {
	return nil, nil
}

func decodeRequest(t *testing.T, body string) Request {
	t.Helper()
	var req Request
	require.NoError(t, common.DecodeJSON(strings.NewReader(body), &req))
	return req
}

func resets(r reply.Reply) []string {
	var names []string
	for _, e := range r.Events {
		if e.Value == nil {
			names = append(names, e.Name)
		}
	}
	return names
}

func TestRecommendWineFloatVintageSlot(t *testing.T) {
	st := &captureStore{}
	action := recommendWine(recommend.NewService(recommend.NewVocabulary(nil, nil, nil), recommend.DialectSQLite, st))

	req := decodeRequest(t, `{"next_action":"action_recomendar_vino_db","sender_id":"s1",`+
		`"tracker":{"sender_id":"s1","slots":{"slot_ano":2019.0,"slot_cepa":"carmenere"},"latest_message":{"text":""}}}`)
	out := action(context.Background(), req)

	require.Equal(t, 1, st.calls)
	assert.Contains(t, st.last.Text, "v.ano = ?")
	assert.Equal(t, []interface{}{"Carmenere", 2019}, st.last.Args)
	assert.ElementsMatch(t, []string{"slot_cepa", "slot_ano"}, resets(out))
}

func TestRecommendWineUnparsableVintageStillReset(t *testing.T) {
	st := &captureStore{}
	action := recommendWine(recommend.NewService(recommend.NewVocabulary(nil, nil, nil), recommend.DialectSQLite, st))

	req := decodeRequest(t, `{"next_action":"action_recomendar_vino_db","sender_id":"s1",`+
		`"tracker":{"sender_id":"s1","slots":{"slot_ano":"dos mil","slot_cepa":"carmenere"},"latest_message":{"text":""}}}`)
	out := action(context.Background(), req)

	require.Equal(t, 1, st.calls)
	assert.NotContains(t, st.last.Text, "v.ano")
	assert.ElementsMatch(t, []string{"slot_cepa", "slot_ano"}, resets(out))
}

func TestVintage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"2019", 2019},
		{"2019.0", 2019},
		{"2019.5", 0},
		{"dos mil", 0},
		{"-5", 0},
		{"0", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, vintage(tt.raw))
		})
	}
}
