package dao

import (
	"context"
	"time"

	"github.com/notin-app/notin-service/internal/domain"
	"github.com/notin-app/notin-service/internal/model"
	"github.com/notin-app/notin-service/pkg/timex"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements domain.UserRepository.
type userRepository struct {
	dao *Dao
}

func NewUserRepository(dao *Dao) domain.UserRepository {
	return &userRepository{dao: dao}
}

func (r *userRepository) toDomain(m *model.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:        m.ID,
		Email:     m.Email,
		Username:  m.Username,
		Password:  m.Password,
		Avatar:    m.Avatar,
		CreatedAt: time.Time(m.CreatedAt),
		UpdatedAt: time.Time(m.UpdatedAt),
	}
}

func (r *userRepository) toModel(user *domain.User) *model.User {
	if user == nil {
		return nil
	}
	return &model.User{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Password:  user.Password,
		Avatar:    user.Avatar,
		CreatedAt: timex.Time(user.CreatedAt),
		UpdatedAt: timex.Time(user.UpdatedAt),
	}
}

func (r *userRepository) getBy(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	var m model.User
	err := r.dao.DB().WithContext(ctx).Where(query, arg).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

func (r *userRepository) GetByUID(ctx context.Context, uid int64) (*domain.User, error) {
	return r.getBy(ctx, "id = ?", uid)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, "email = ?", email)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getBy(ctx, "username = ?", username)
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	m := r.toModel(user)
	now := timex.Now()
	if time.Time(m.CreatedAt).IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	if err := r.dao.DB().WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, uid int64, passwordHash string) error {
	return r.dao.DB().WithContext(ctx).Model(&model.User{}).
		Where("id = ?", uid).
		Updates(map[string]interface{}{
			"password":   passwordHash,
			"updated_at": timex.Now(),
		}).Error
}
