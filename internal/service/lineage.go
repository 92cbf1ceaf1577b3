package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
	"github.com/pribylovaa/go-question-bank/pkg/log"
)

// Линия версий: номер общий для всех версий вопроса, версии назначаются
// только публикацией и монотонно растут. Опубликованные вопросы не
// уничтожаются, поэтому последовательность версий номера без дыр.

// NextAvailableVersion возвращает следующий свободный номер версии для number:
// 1, если опубликованных вопросов с этим номером нет, иначе max(version)+1.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — number <= 0;
//   - ErrInternal — ошибки стораджа.
func (s *Service) NextAvailableVersion(ctx context.Context, number int64) (int32, error) {
	const op = "service/lineage/NextAvailableVersion"

	if number <= 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	latest, err := s.storage.LatestPublished(ctx, number)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 1, nil
		}

		log.Op(ctx, op).Error("storage error on LatestPublished", "err", err)
		return 0, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return *latest.Version + 1, nil
}

// LatestPublished возвращает опубликованный вопрос номера с наибольшей версией.
//
// Поведение/ошибки:
//   - ErrNotFound — опубликованных вопросов с этим номером нет;
//   - ErrInternal — ошибки стораджа.
func (s *Service) LatestPublished(ctx context.Context, number int64) (*models.Question, error) {
	const op = "service/lineage/LatestPublished"

	if number <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	latest, err := s.storage.LatestPublished(ctx, number)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.Op(ctx, op).Error("storage error on LatestPublished", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return latest, nil
}

// Superseded сообщает, вытеснён ли вопрос: существует другой опубликованный
// вопрос того же номера, обновлённый строго позже создания q.
func (s *Service) Superseded(ctx context.Context, q *models.Question) (bool, error) {
	const op = "service/lineage/Superseded"

	latest, err := s.storage.LatestPublished(ctx, q.Number)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}

		log.Op(ctx, op).Error("storage error on LatestPublished", "err", err)
		return false, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return latest.ID != q.ID && latest.UpdatedAt.After(q.CreatedAt), nil
}

// IsLatest — является ли q последней опубликованной версией своего номера.
func (s *Service) IsLatest(ctx context.Context, q *models.Question) (bool, error) {
	const op = "service/lineage/IsLatest"

	latest, err := s.storage.LatestPublished(ctx, q.Number)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}

		log.Op(ctx, op).Error("storage error on LatestPublished", "err", err)
		return false, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return latest.ID == q.ID, nil
}

// PriorVersion возвращает предыдущую версию q: вопрос (number, version-1).
//
// Поведение/ошибки:
//   - ErrNotFound — у q нет более ранних версий (черновик или первая версия);
//   - ErrInternal — ошибки стораджа.
func (s *Service) PriorVersion(ctx context.Context, q *models.Question) (*models.Question, error) {
	const op = "service/lineage/PriorVersion"

	if !q.HasEarlierVersions() {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	prior, err := s.storage.QuestionByNumberAndVersion(ctx, q.Number, *q.Version-1)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.Op(ctx, op).Error("storage error on QuestionByNumberAndVersion", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return prior, nil
}

// IsDerivation — есть ли у вопроса ребро производной (он был произведён
// из другого вопроса).
func (s *Service) IsDerivation(ctx context.Context, questionID int64) (bool, error) {
	const op = "service/lineage/IsDerivation"

	_, err := s.storage.DerivationByDerived(ctx, questionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}

		log.Op(ctx, op).Error("storage error on DerivationByDerived", "err", err)
		return false, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return true, nil
}

// AncestorQuestion возвращает «предка» вопроса: предыдущую версию, если она
// есть, иначе источник производной, иначе ErrNotFound.
func (s *Service) AncestorQuestion(ctx context.Context, q *models.Question) (*models.Question, error) {
	const op = "service/lineage/AncestorQuestion"

	if q.HasEarlierVersions() {
		return s.PriorVersion(ctx, q)
	}

	deriv, err := s.storage.DerivationByDerived(ctx, q.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.Op(ctx, op).Error("storage error on DerivationByDerived", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return s.QuestionByID(ctx, deriv.SourceQuestionID)
}
