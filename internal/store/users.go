package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fluxo-caixa/internal/models"
)

var ErrUserNotFound = errors.New("usuário não encontrado")

// UserStore owns access to user documents.
type UserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{DB: db}
}

// GetByID loads one user, ErrUserNotFound when absent.
func (s *UserStore) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}
