package actions

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"vinai-server/internal/core/profile"
	"vinai-server/internal/core/recommend"
	"vinai-server/internal/core/reply"
	"vinai-server/internal/core/session"
	"vinai-server/internal/core/tour"
	"vinai-server/internal/pkg/common"

	"go.uber.org/zap"
)

// 動作名稱
const (
	ActionRegister        = "action_registrar_usuario"
	ActionLogin           = "action_iniciar_sesion"
	ActionSavePreference  = "action_guardar_preferencia"
	ActionRateTour        = "action_valorar_tour"
	ActionRecommendWine   = "action_recomendar_vino_db"
	ActionFindTour        = "action_buscar_tour"
	ActionRecommendTourDB = "action_recomendar_tour_db"
)

// slot 名稱
const (
	SlotUserID  = "slot_user_id"
	slotVintage = "slot_ano"
)

// 實體名稱
const (
	entityEmail     = "email"
	entityGrape     = "cepa"
	entityValley    = "valle"
	entityWineType  = "tipo_vino"
	entityPairing   = "maridaje"
	entityWineryRef = "vina"
)

const (
	msgSessionBroken = "Hubo un problema al identificar tu sesión. Intenta 'iniciar sesión' de nuevo."
	msgRegisterAsk   = "Para registrarte, por favor di 'quiero registrarme con miemail@ejemplo.com'"
	msgRegisterDup   = "Ese email ya está registrado. ¿Quieres 'iniciar sesión'?"
	msgRegisterFail  = "Tuvimos un problema al intentar registrar tu cuenta."
	msgLoginAsk      = "No detecté un email. Por favor, di 'quiero iniciar sesión con miemail@ejemplo.com'"
	msgLoginUnknown  = "No encontramos una cuenta con ese email. ¿Quieres 'registrarte'?"
	msgLoginFail     = "Tuvimos un problema al intentar iniciar sesión."
	msgPrefLogin     = "Debes 'iniciar sesión' para poder guardar tus gustos."
	msgPrefUnknown   = "No entendí qué preferencia quieres guardar. Prueba 'me gusta el Carmenere'."
	msgPrefFail      = "Error al guardar tu preferencia."
	msgRateLogin     = "Debes 'iniciar sesión' para poder valorar un tour."
	msgRateAskVenue  = "¿Qué viña te gustaría valorar? Por favor, dímelo de nuevo (ej: 'valorar Santa Rita')."
	msgRateFail      = "Tuvimos un problema al guardar tu valoración."
)

// Action 一個可由對話管理器呼叫的動作
type Action func(ctx context.Context, req Request) reply.Reply

// Services 動作需要的服務
type Services struct {
	Profile   *profile.Service
	Recommend *recommend.Service
	Tour      *tour.Service
}

// Registry 依名稱註冊的動作
type Registry struct {
	actions map[string]Action
	names   []string
}

// NewRegistry 建立包含全部動作的註冊表
func NewRegistry(svc Services) *Registry {
	r := &Registry{actions: make(map[string]Action)}
	r.register(ActionRegister, registerUser(svc.Profile))
	r.register(ActionLogin, login(svc.Profile))
	r.register(ActionSavePreference, savePreference(svc.Profile))
	r.register(ActionRateTour, rateTour(svc.Profile))
	r.register(ActionRecommendWine, recommendWine(svc.Recommend))
	r.register(ActionFindTour, findTour(svc.Tour))
	r.register(ActionRecommendTourDB, recommendTour(svc.Tour))
	return r
}

func (r *Registry) register(name string, a Action) {
	r.actions[name] = a
	r.names = append(r.names, name)
}

// Lookup 取得動作
func (r *Registry) Lookup(name string) (Action, bool) {
	a, ok := r.actions[name]
	return a, ok
}

// Names 全部動作名稱，依註冊順序
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func registerUser(svc *profile.Service) Action {
	return func(ctx context.Context, req Request) reply.Reply {
		var out reply.Reply
		email := req.Entity(entityEmail)

		_, err := svc.Register(ctx, email, "")
		switch {
		case err == nil:
			out.Say(reply.Text(fmt.Sprintf("¡Registro exitoso! Tu cuenta para '%s' ha sido creada. Ahora puedes iniciar sesión.", email)))
		case errors.Is(err, common.ErrInvalidInput):
			out.Say(reply.Text(msgRegisterAsk))
		case errors.Is(err, common.ErrDuplicateEmail):
			out.Say(reply.Text(msgRegisterDup))
		default:
			out.Say(reply.Text(msgRegisterFail))
		}
		return out
	}
}

func login(svc *profile.Service) Action {
	return func(ctx context.Context, req Request) reply.Reply {
		var out reply.Reply

		sess, err := svc.Login(ctx, req.Entity(entityEmail))
		switch {
		case err == nil:
			out.Say(reply.Message{
				Text:   fmt.Sprintf("¡Hola de nuevo, %s! Sesión iniciada.", sess.Username),
				Custom: map[string]interface{}{"user_id": sess.ID},
			})
			out.SetSlot(SlotUserID, sess.ID)
		case errors.Is(err, common.ErrInvalidInput):
			out.Say(reply.Text(msgLoginAsk))
		case errors.Is(err, common.ErrNotFound):
			out.Say(reply.Text(msgLoginUnknown))
		default:
			out.Say(reply.Text(msgLoginFail))
		}
		return out
	}
}

func savePreference(svc *profile.Service) Action {
	return func(ctx context.Context, req Request) reply.Reply {
		var out reply.Reply
		sid := req.SessionID()

		pref, err := svc.SavePreference(ctx, sid, profile.Candidates{
			GrapeVariety: req.Entity(entityGrape),
			Valley:       req.Entity(entityValley),
			WineType:     req.Entity(entityWineType),
			Pairing:      req.Entity(entityPairing),
		})
		switch {
		case err == nil:
			out.Say(reply.Text(fmt.Sprintf("¡Perfecto! He guardado que tu preferencia de '%s' es '%s'.", pref.Dimension, pref.Value)))
		case errors.Is(err, common.ErrSessionInvalid):
			out.Say(reply.Text(sessionMessage(sid, msgPrefLogin)))
		case errors.Is(err, common.ErrInvalidInput):
			out.Say(reply.Text(msgPrefUnknown))
		default:
			out.Say(reply.Text(msgPrefFail))
		}
		return out
	}
}

func rateTour(svc *profile.Service) Action {
	return func(ctx context.Context, req Request) reply.Reply {
		var out reply.Reply
		sid := req.SessionID()
		venue := req.Entity(entityWineryRef)

		rating, err := svc.RateVenue(ctx, sid, venue, req.Text())
		switch {
		case err == nil:
			out.Say(reply.Text(fmt.Sprintf("¡Gracias! Tu valoración de %d estrellas para %s ha sido guardada.", rating.Rating, venue)))
		case errors.Is(err, common.ErrSessionInvalid):
			out.Say(reply.Text(sessionMessage(sid, msgRateLogin)))
		case errors.Is(err, profile.ErrVenueRequired):
			out.Say(reply.Text(msgRateAskVenue))
		case errors.Is(err, profile.ErrRatingRequired):
			out.Say(reply.Text(fmt.Sprintf("No detecté un puntaje. ¿Qué puntaje del 1 al 5 le das a %s?", venue)))
		case errors.Is(err, common.ErrNotFound):
			out.Say(reply.Text(fmt.Sprintf("No encontré una viña con el nombre '%s' en mi base de datos.", venue)))
		default:
			out.Say(reply.Text(msgRateFail))
		}
		return out
	}
}

func recommendWine(svc *recommend.Service) Action {
	return func(ctx context.Context, req Request) reply.Reply {
		rawYear := req.Slot(slotVintage)
		return svc.Recommend(ctx, recommend.Turn{
			SessionID: req.SessionID(),
			Text:      req.Text(),
			Slots: recommend.Slots{
				GrapeVariety:   req.Slot(recommend.SlotNames[recommend.DimGrapeVariety]),
				WineType:       req.Slot(recommend.SlotNames[recommend.DimWineType]),
				Valley:         req.Slot(recommend.SlotNames[recommend.DimValley]),
				Characteristic: req.Slot(recommend.SlotNames[recommend.DimCharacteristic]),
				Pairing:        req.Slot(recommend.SlotNames[recommend.DimPairing]),
				VintageYear:    vintage(rawYear),
				VintageSet:     rawYear != "",
			},
		})
	}
}

func findTour(svc *tour.Service) Action {
	return func(ctx context.Context, req Request) reply.Reply {
		return svc.FindTour(ctx, req.Slot(tour.SlotWinery))
	}
}

func recommendTour(svc *tour.Service) Action {
	return func(ctx context.Context, req Request) reply.Reply {
		return svc.RecommendTour(ctx, req.Slot(tour.SlotValley))
	}
}

// sessionMessage 未登入與識別碼損壞使用不同提示
func sessionMessage(sessionID, loginPrompt string) string {
	if session.Anonymous(sessionID) {
		return loginPrompt
	}
	return msgSessionBroken
}

// vintage 解析年份 slot，接受 2019 與 2019.0；無法解析時視為未設定
func vintage(raw string) int {
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f < 1 || f > 9999 {
		common.LogWarn("年份 slot 無法解析", zap.String("value", raw))
		return 0
	}
	return int(f)
}
