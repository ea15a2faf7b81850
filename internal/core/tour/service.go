package tour

import (
	"context"
	"fmt"

	"vinai-server/internal/core/reply"
	"vinai-server/internal/pkg/common"

	"go.uber.org/zap"
)

// 對話管理器中的 slot 名稱
const (
	SlotWinery = "slot_vina"
	SlotValley = "slot_valle"
)

const (
	msgAskWinery     = "¿Qué viña específica te gustaría visitar para un tour?"
	msgWebsiteHint   = " Puedes encontrar más detalles en su sitio web."
	msgStorageError  = "Tuvimos un problema al consultar la base de datos de tours. Por favor, inténtalo más tarde."
	defaultValleyTxt = "país"
)

// Service 導覽服務
type Service struct {
	finder Finder
	maps   *StaticMapProvider
	images ValleyImages
}

// NewService 創建導覽服務
func NewService(finder Finder, maps *StaticMapProvider, images ValleyImages) *Service {
	return &Service{finder: finder, maps: maps, images: images}
}

// FindTour 依酒莊名稱片段查詢導覽，結束時清除 slot_vina
func (s *Service) FindTour(ctx context.Context, winery string) reply.Reply {
	var out reply.Reply
	if winery == "" {
		out.Say(reply.Text(msgAskWinery))
		return out
	}

	venue, err := s.finder.FindTourByWinery(ctx, winery)
	switch {
	case err != nil:
		common.LogStorageError("find_tour", err, zap.String("winery", winery))
		out.Say(reply.Text(msgStorageError))
	case venue == nil:
		out.Say(reply.Text(fmt.Sprintf(
			"Lo siento, no encontré tours disponibles para la viña '%s' o no tenemos información al respecto.", winery)))
	default:
		text := fmt.Sprintf("¡Encontré información sobre el tour en **%s**! Detalles: %s. Horario: %s.",
			venue.Name, venue.Description, venue.Hours)
		if url, ok := s.maps.URL(venue.Latitude, venue.Longitude); ok {
			out.Say(reply.Image(url))
		} else {
			text += msgWebsiteHint
		}
		out.Say(reply.Link(text, venue.Website, "Web de "+venue.Name))
	}

	out.ResetSlot(SlotWinery)
	return out
}

// RecommendTour 隨機推薦一個導覽，可依產區篩選，結束時清除 slot_valle
func (s *Service) RecommendTour(ctx context.Context, valley string) reply.Reply {
	var out reply.Reply

	venue, err := s.finder.RandomTour(ctx, valley)
	switch {
	case err != nil:
		common.LogStorageError("recommend_tour", err, zap.String("valley", valley))
		out.Say(reply.Text(msgStorageError))
	case venue == nil:
		where := valley
		if where == "" {
			where = defaultValleyTxt
		}
		out.Say(reply.Text(fmt.Sprintf(
			"Lo siento, no encontré tours disponibles en el **%s**. Prueba con un valle más amplio.", where)))
	default:
		if url, ok := s.images.Lookup(venue.Valley); ok {
			out.Say(reply.Image(url))
		}
		text := fmt.Sprintf("¡Tengo una excelente recomendación de tour! Puedes visitar la viña **%s** en el %s. El tour es: %s (Horario: %s).",
			venue.Name, venue.Valley, venue.Description, venue.Hours)
		out.Say(reply.Link(text, venue.Website, "Ver más sobre "+venue.Name))
	}

	out.ResetSlot(SlotValley)
	return out
}
