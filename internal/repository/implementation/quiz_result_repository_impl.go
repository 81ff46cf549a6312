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

type QuizResultRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QuizResultMapper
}

func NewQuizResultRepository(db *gorm.DB) contract.QuizResultRepository {
	return &QuizResultRepositoryImpl{
		db:     db,
		mapper: mapper.NewQuizResultMapper(),
	}
}

func (r *QuizResultRepositoryImpl) Create(ctx context.Context, result *entity.QuizResult) error {
	m := r.mapper.ToModel(result)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*result = *r.mapper.ToEntity(m)
	return nil
}

func (r *QuizResultRepositoryImpl) FindBySessionId(ctx context.Context, sessionID string) (*entity.QuizResult, error) {
	var m model.QuizResult
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *QuizResultRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*entity.QuizResult, error) {
	var models []*model.QuizResult
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QuizResultRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.QuizResult{}).Count(&count).Error
	return count, err
}

func (r *QuizResultRepositoryImpl) CountLowConfidence(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.QuizResult{}).
		Where("low_confidence = ?", true).Count(&count).Error
	return count, err
}

var groupableColumns = map[string]bool{
	"primary_archetype": true,
	"domain":            true,
	"scale":             true,
	"pod_key":           true,
}

func (r *QuizResultRepositoryImpl) CountByColumn(ctx context.Context, column string) (map[string]int64, error) {
	// Column names are interpolated into SQL, so only a fixed set is
	// accepted.
	if !groupableColumns[column] {
		return nil, errors.New("repository: column not groupable: " + column)
	}

	type row struct {
		Value string
		Total int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.QuizResult{}).
		Select(column + " AS value, COUNT(*) AS total").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Value] = row.Total
	}
	return counts, nil
}
