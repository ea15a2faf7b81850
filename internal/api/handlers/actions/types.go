// Package actions 實作對話管理器呼叫的 action server webhook
package actions

import (
	"vinai-server/internal/core/reply"
	"vinai-server/internal/pkg/common"
)

// Entity 最新訊息中抽取出的實體
type Entity struct {
	Entity string      `json:"entity"`
	Value  interface{} `json:"value"`
}

// LatestMessage 使用者最新一句話
type LatestMessage struct {
	Text     string   `json:"text"`
	Entities []Entity `json:"entities"`
}

// Tracker 對話狀態
type Tracker struct {
	SenderID      string                 `json:"sender_id"`
	Slots         map[string]interface{} `json:"slots"`
	LatestMessage LatestMessage          `json:"latest_message"`
}

// Request webhook 請求
type Request struct {
	NextAction string  `json:"next_action"`
	SenderID   string  `json:"sender_id"`
	Tracker    Tracker `json:"tracker"`
}

// Response webhook 響應
type Response struct {
	Events    []reply.Event   `json:"events"`
	Responses []reply.Message `json:"responses"`
}

// SessionID 會話識別碼，優先使用 tracker 中的 sender_id
func (r Request) SessionID() string {
	if r.Tracker.SenderID != "" {
		return r.Tracker.SenderID
	}
	return r.SenderID
}

// Slot slot 的字串值，未設定時為空字串
func (r Request) Slot(name string) string {
	return common.StringValue(r.Tracker.Slots[name])
}

// Entity 最新訊息中第一個指定名稱的實體值
func (r Request) Entity(name string) string {
	for _, e := range r.Tracker.LatestMessage.Entities {
		if e.Entity == name {
			if v := common.StringValue(e.Value); v != "" {
				return v
			}
		}
	}
	return ""
}

// Text 最新訊息的原文
func (r Request) Text() string {
	return r.Tracker.LatestMessage.Text
}

func newResponse(out reply.Reply) Response {
	resp := Response{Events: out.Events, Responses: out.Messages}
	if resp.Events == nil {
		resp.Events = []reply.Event{}
	}
	if resp.Responses == nil {
		resp.Responses = []reply.Message{}
	}
	return resp
}
