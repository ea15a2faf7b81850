// Package client 呼叫 vinai-server REST 與 webhook 的 HTTP 客戶端
package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vinai-server/internal/api/handlers/actions"
	"vinai-server/internal/api/handlers/auth"

	"github.com/go-resty/resty/v2"
)

// Client vinai-server 客戶端
type Client struct {
	http *resty.Client
}

// New 創建客戶端
func New(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: client}
}

// Register 註冊帳號
func (c *Client) Register(ctx context.Context, username, email, password string) (*auth.Response, error) {
	var out auth.Response
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(auth.RegisterRequest{Username: username, Email: email, Password: password}).
		SetResult(&out).
		SetError(&auth.Response{}).
		Post("/api/v1/auth/register")
	if err != nil {
		return nil, fmt.Errorf("register request: %w", err)
	}
	if err := authError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login 以 email 登入
func (c *Client) Login(ctx context.Context, email string) (*auth.Response, error) {
	var out auth.Response
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(auth.LoginRequest{Email: email}).
		SetResult(&out).
		SetError(&auth.Response{}).
		Post("/api/v1/auth/login")
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	if err := authError(resp); err != nil {
		return nil, err
	}
	return &out, nil
}

// RunAction 以 webhook 格式執行一個動作
func (c *Client) RunAction(ctx context.Context, req actions.Request) (*actions.Response, error) {
	var out actions.Response
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/webhook")
	if err != nil {
		return nil, fmt.Errorf("webhook request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("webhook %s: %s", resp.Status(), strings.TrimSpace(resp.String()))
	}
	return &out, nil
}

// Actions 伺服器註冊的動作名稱
func (c *Client) Actions(ctx context.Context) ([]string, error) {
	var list []struct {
		Name string `json:"name"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&list).
		Get("/actions")
	if err != nil {
		return nil, fmt.Errorf("actions request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("actions %s", resp.Status())
	}
	names := make([]string, 0, len(list))
	for _, a := range list {
		names = append(names, a.Name)
	}
	return names, nil
}

func authError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}
	if e, ok := resp.Error().(*auth.Response); ok && e.Message != "" {
		return fmt.Errorf("%s (%d)", e.Message, resp.StatusCode())
	}
	return fmt.Errorf("unexpected status %s", resp.Status())
}
