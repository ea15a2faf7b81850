package recommend

import (
	"context"
	"errors"

	"vinai-server/internal/core/reply"
	"vinai-server/internal/core/session"
	"vinai-server/internal/pkg/common"

	"go.uber.org/zap"
)

// 對話管理器中的 slot 名稱
var SlotNames = map[Dimension]string{
	DimGrapeVariety:   "slot_cepa",
	DimWineType:       "slot_tipo_vino",
	DimValley:         "slot_valle",
	DimCharacteristic: "slot_caracteristica",
	DimPairing:        "slot_maridaje",
	DimVintageYear:    "slot_ano",
}

// 回覆文字
const (
	msgUsingStored  = "*(Usando tus preferencias guardadas para esta búsqueda...)*"
	msgNoMatch      = "Lo siento, no encontré un vino que cumpla con *todos* esos criterios tan específicos. Prueba con menos restricciones."
	msgStorageError = "Tuvimos un problema al buscar en nuestra bodega virtual. ¿Podrías intentarlo de nuevo?"
	tplAskTaste     = "utter_pedir_gusto"
)

// PreferenceReader 讀取使用者保存的偏好
type PreferenceReader interface {
	ListPreferences(ctx context.Context, userID int64) (StoredPreferences, error)
}

// Store 推薦服務需要的資料存取
type Store interface {
	WineFinder
	PreferenceReader
}

// Service 酒款推薦服務
type Service struct {
	resolver *Resolver
	builder  *QueryBuilder
	selector *Selector
	prefs    PreferenceReader
}

// NewService 創建推薦服務
func NewService(vocab Vocabulary, dialect string, store Store) *Service {
	return &Service{
		resolver: NewResolver(vocab),
		builder:  NewQueryBuilder(dialect),
		selector: NewSelector(store),
		prefs:    store,
	}
}

// Recommend 處理一次推薦回合：讀取保存偏好、合併、查詢並格式化，
// 結束時清除本回合使用過的 slot；保存的偏好不受影響。
func (s *Service) Recommend(ctx context.Context, turn Turn) reply.Reply {
	var out reply.Reply

	stored := s.loadStored(ctx, turn.SessionID)
	if len(stored) > 0 {
		out.Say(reply.Text(msgUsingStored))
	}

	out.Say(s.answer(ctx, turn, stored))

	for _, dim := range turn.Slots.Present() {
		out.ResetSlot(SlotNames[dim])
	}
	return out
}

// answer 合併偏好並查詢，任何錯誤都轉成給使用者的訊息
func (s *Service) answer(ctx context.Context, turn Turn, stored StoredPreferences) reply.Message {
	prefs, err := s.resolver.Resolve(turn.Slots, stored, turn.Text)
	if err != nil {
		return reply.Template(tplAskTaste)
	}

	q := s.builder.Build(prefs)
	common.LogDebug("酒款查詢",
		zap.String("query", q.Text),
		zap.Int("args", len(q.Args)),
	)

	match, err := s.selector.Select(ctx, q)
	switch {
	case err == nil:
		return FormatWine(match)
	case errors.Is(err, common.ErrNotFound):
		return reply.Text(msgNoMatch)
	default:
		common.LogStorageError("recommend_wine", err, zap.String("sender_id", turn.SessionID))
		return reply.Text(msgStorageError)
	}
}

// loadStored 只有已登入的會話才讀取保存的偏好，失敗時記錄並忽略
func (s *Service) loadStored(ctx context.Context, sessionID string) StoredPreferences {
	userID, err := session.Parse(sessionID)
	if err != nil {
		return nil
	}
	stored, err := s.prefs.ListPreferences(ctx, userID)
	if err != nil {
		common.LogStorageError("list_preferences", err, zap.Int64("user_id", userID))
		return nil
	}
	return stored
}
