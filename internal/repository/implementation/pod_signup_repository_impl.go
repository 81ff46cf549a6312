package implementation

import (
	"context"
	"errors"

	"archetype-quiz-be/internal/entity"
	"archetype-quiz-be/internal/mapper"
	"archetype-quiz-be/internal/model"
	"archetype-quiz-be/internal/repository/contract"

	"gorm.io/gorm"
)

type PodSignupRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PodSignupMapper
}

func NewPodSignupRepository(db *gorm.DB) contract.PodSignupRepository {
	return &PodSignupRepositoryImpl{
		db:     db,
		mapper: mapper.NewPodSignupMapper(),
	}
}

func (r *PodSignupRepositoryImpl) Create(ctx context.Context, signup *entity.PodSignup) error {
	m := r.mapper.ToModel(signup)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*signup = *r.mapper.ToEntity(m)
	return nil
}

func (r *PodSignupRepositoryImpl) FindBySessionId(ctx context.Context, sessionID string) (*entity.PodSignup, error) {
	var m model.PodSignup
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PodSignupRepositoryImpl) CountByPodKey(ctx context.Context, podKey string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PodSignup{}).
		Where("pod_key = ?", podKey).Count(&count).Error
	return count, err
}

func (r *PodSignupRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PodSignup{}).Count(&count).Error
	return count, err
}
