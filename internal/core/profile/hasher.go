package profile

import "golang.org/x/crypto/bcrypt"

// PasswordHasher 密碼雜湊
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// BcryptHasher 以 bcrypt 實作 PasswordHasher
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cost 超出範圍時使用 bcrypt.DefaultCost
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
