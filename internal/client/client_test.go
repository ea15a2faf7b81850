package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vinai-server/internal/api/handlers/actions"
	"vinai-server/internal/api/handlers/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req auth.LoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		if req.Email != "ana@example.com" {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(auth.Response{Success: false, Message: "no encontrado", Code: "NOT_FOUND"})
			return
		}
		_ = json.NewEncoder(w).Encode(auth.Response{Success: true, UserID: "user_1", Username: "ana"})
	})
	mux.HandleFunc("/webhook", func(w http.ResponseWriter, r *http.Request) {
		var req actions.Request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		if req.NextAction != actions.ActionRecommendWine {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"action not found","action_name":"` + req.NextAction + `"}`))
			return
		}
		_, _ = w.Write([]byte(`{"events":[],"responses":[{"text":"` + req.Tracker.LatestMessage.Text + `"}]}`))
	})
	mux.HandleFunc("/actions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"action_buscar_tour"},{"name":"action_recomendar_vino_db"}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin(t *testing.T) {
	c := New(newServer(t).URL+"/", 5*time.Second)
	ctx := context.Background()

	resp, err := c.Login(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user_1", resp.UserID)

	_, err = c.Login(ctx, "otro@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no encontrado")
}

func TestRunAction(t *testing.T) {
	c := New(newServer(t).URL, 5*time.Second)
	ctx := context.Background()

	req := actions.Request{NextAction: actions.ActionRecommendWine, SenderID: "s1"}
	req.Tracker.LatestMessage.Text = "chocolate"
	resp, err := c.RunAction(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Responses, 1)
	assert.Equal(t, "chocolate", resp.Responses[0].Text)

	_, err = c.RunAction(ctx, actions.Request{NextAction: "nada"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestActions(t *testing.T) {
	c := New(newServer(t).URL, 5*time.Second)

	names, err := c.Actions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"action_buscar_tour", "action_recomendar_vino_db"}, names)
}
