// Package profile 帳號、會話、偏好保存與導覽評分
package profile

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"vinai-server/internal/core/recommend"
	"vinai-server/internal/core/session"
	"vinai-server/internal/pkg/common"
	"vinai-server/internal/store"

	"go.uber.org/zap"
)

// 評分時缺少的輸入，兩者都屬於 ErrInvalidInput
var (
	ErrVenueRequired  = common.NewError("VENUE_REQUIRED", "falta la viña", http.StatusBadRequest, common.ErrInvalidInput)
	ErrRatingRequired = common.NewError("RATING_REQUIRED", "falta el puntaje", http.StatusBadRequest, common.ErrInvalidInput)
)

// ratingPattern 獨立出現的 1 到 5
var ratingPattern = regexp.MustCompile(`\b([1-5])\b`)

// Repository 帳號與評分的資料存取
type Repository interface {
	CreateUser(ctx context.Context, user *store.User) error
	FindUserByEmail(ctx context.Context, email string) (*store.User, error)
	ReplacePreference(ctx context.Context, userID int64, dimension, value string) (*store.UserPreference, error)
	FindWineryByName(ctx context.Context, fragment string) (*store.Winery, error)
	ReplaceRating(ctx context.Context, userID, wineryID int64, rating int, comment string) (*store.TourRating, error)
}

// Session 登入結果
type Session struct {
	ID       string `json:"user_id"`
	UserID   int64  `json:"-"`
	Username string `json:"username"`
}

// Candidates 保存偏好時的候選值，依 cepa、valle、tipo_vino、maridaje 順序取第一個
type Candidates struct {
	GrapeVariety string
	Valley       string
	WineType     string
	Pairing      string
}

// Service 帳號服務
type Service struct {
	repo         Repository
	hasher       PasswordHasher
	demoPassword string
}

// NewService 創建帳號服務；未提供密碼時使用 demoPassword
func NewService(repo Repository, hasher PasswordHasher, demoPassword string) *Service {
	return &Service{repo: repo, hasher: hasher, demoPassword: demoPassword}
}

// Register 建立帳號，使用者名稱取 email 的 @ 之前部分
func (s *Service) Register(ctx context.Context, email, password string) (*store.User, error) {
	return s.RegisterWithUsername(ctx, "", email, password)
}

// RegisterWithUsername 建立帳號；username 為空時取 email 的本地部分
func (s *Service) RegisterWithUsername(ctx context.Context, username, email, password string) (*store.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, common.ErrInvalidInput
	}
	if password == "" {
		password = s.demoPassword
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.Wrap(common.ErrInternalError, err)
	}

	username = strings.TrimSpace(username)
	if username == "" {
		username = Username(email)
	}
	user := &store.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		common.LogStorageError("register_user", err)
		return nil, asStorageError(err)
	}

	common.LogInfo("使用者已註冊", zap.Int64("user_id", user.ID))
	return user, nil
}

// Login 依 email 查詢帳號並產生會話識別碼，不驗證密碼
func (s *Service) Login(ctx context.Context, email string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, common.ErrInvalidInput
	}

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		common.LogStorageError("login", err)
		return nil, asStorageError(err)
	}
	if user == nil {
		return nil, common.ErrNotFound
	}

	return &Session{
		ID:       session.Format(user.ID),
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

// SavePreference 保存一個偏好，同一維度的舊值會被取代
func (s *Service) SavePreference(ctx context.Context, sessionID string, c Candidates) (*store.UserPreference, error) {
	userID, err := session.Parse(sessionID)
	if err != nil {
		return nil, err
	}

	dim, value := c.pick()
	if value == "" {
		return nil, common.ErrInvalidInput
	}

	pref, err := s.repo.ReplacePreference(ctx, userID, string(dim), recommend.Capitalize(value))
	if err != nil {
		common.LogStorageError("save_preference", err, zap.Int64("user_id", userID))
		return nil, asStorageError(err)
	}
	return pref, nil
}

// RateVenue 保存導覽評分；分數取自 utterance 中第一個獨立的 1 到 5
func (s *Service) RateVenue(ctx context.Context, sessionID, venue, utterance string) (*store.TourRating, error) {
	userID, err := session.Parse(sessionID)
	if err != nil {
		return nil, err
	}
	venue = strings.TrimSpace(venue)
	if venue == "" {
		return nil, ErrVenueRequired
	}
	score, ok := ParseRating(utterance)
	if !ok {
		return nil, ErrRatingRequired
	}

	winery, err := s.repo.FindWineryByName(ctx, venue)
	if err != nil {
		common.LogStorageError("find_winery", err, zap.String("venue", venue))
		return nil, asStorageError(err)
	}
	if winery == nil {
		return nil, common.ErrNotFound
	}

	rating, err := s.repo.ReplaceRating(ctx, userID, winery.ID, score, utterance)
	if err != nil {
		common.LogStorageError("rate_venue", err, zap.Int64("user_id", userID), zap.Int64("vina_id", winery.ID))
		return nil, asStorageError(err)
	}
	return rating, nil
}

// ParseRating 第一個獨立出現的 1 到 5
func ParseRating(text string) (int, bool) {
	m := ratingPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Username email 的本地部分
func Username(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

func (c Candidates) pick() (recommend.Dimension, string) {
	switch {
	case strings.TrimSpace(c.GrapeVariety) != "":
		return recommend.DimGrapeVariety, strings.TrimSpace(c.GrapeVariety)
	case strings.TrimSpace(c.Valley) != "":
		return recommend.DimValley, strings.TrimSpace(c.Valley)
	case strings.TrimSpace(c.WineType) != "":
		return recommend.DimWineType, strings.TrimSpace(c.WineType)
	case strings.TrimSpace(c.Pairing) != "":
		return recommend.DimPairing, strings.TrimSpace(c.Pairing)
	}
	return "", ""
}

// asStorageError 已是 ErrStorageUnavailable 的錯誤保持原樣
func asStorageError(err error) error {
	if errors.Is(err, common.ErrStorageUnavailable) {
		return err
	}
	return common.Wrap(common.ErrStorageUnavailable, err)
}
