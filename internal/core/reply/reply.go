// Package reply 定義回傳給對話管理器的訊息與 slot 事件
package reply

// Message 單一機器人訊息，對應 Rasa 的 response 格式
type Message struct {
	Text     string                 `json:"text,omitempty"`
	Image    string                 `json:"image,omitempty"`
	Custom   map[string]interface{} `json:"custom,omitempty"`
	Response string                 `json:"response,omitempty"` // 由對話管理器渲染的模板名稱
}

// Event slot 事件
type Event struct {
	Event string      `json:"event"`
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// Reply 一次動作執行的完整輸出
type Reply struct {
	Messages []Message
	Events   []Event
}

// Text 純文字訊息
func Text(text string) Message {
	return Message{Text: text}
}

// Link 附帶連結 payload 的訊息
func Link(text, link, linkText string) Message {
	return Message{
		Text: text,
		Custom: map[string]interface{}{
			"link":      link,
			"link_text": linkText,
		},
	}
}

// Image 圖片訊息
func Image(url string) Message {
	return Message{Image: url}
}

// Template 請對話管理器使用其模板
func Template(name string) Message {
	return Message{Response: name}
}

// Say 附加訊息
func (r *Reply) Say(msgs ...Message) {
	r.Messages = append(r.Messages, msgs...)
}

// SetSlot 設定 slot
func (r *Reply) SetSlot(name string, value interface{}) {
	r.Events = append(r.Events, Event{Event: "slot", Name: name, Value: value})
}

// ResetSlot 將 slot 清為未設定
func (r *Reply) ResetSlot(names ...string) {
	for _, name := range names {
		r.SetSlot(name, nil)
	}
}

// Texts 所有文字訊息，方便測試與 CLI 輸出
func (r Reply) Texts() []string {
	texts := make([]string, 0, len(r.Messages))
	for _, m := range r.Messages {
		if m.Text != "" {
			texts = append(texts, m.Text)
		}
	}
	return texts
}
