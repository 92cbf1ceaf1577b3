package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
	"github.com/pribylovaa/go-question-bank/pkg/log"
)

// QuestionByID возвращает вопрос по внутреннему идентификатору.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — id <= 0;
//   - ErrNotFound — вопрос отсутствует;
//   - ErrInternal — ошибки стораджа.
func (s *Service) QuestionByID(ctx context.Context, id int64) (*models.Question, error) {
	const op = "service/questions/QuestionByID"

	if id <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	q, err := s.storage.QuestionByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.Op(ctx, op).Error("storage error on QuestionByID", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return q, nil
}

// QuestionByExternalID разрешает внешний идентификатор в вопрос:
//   - "d{id}"             -> черновик по внутреннему id;
//   - "q{number}"         -> последняя опубликованная версия номера;
//   - "q{number}v{version}" -> точная (number, version).
//
// Поведение/ошибки:
//   - ErrUntrustedReference — форма не соответствует контракту; отказ
//     происходит до какого-либо запроса к хранилищу, запасного пути
//     поиска нет;
//   - ErrNotFound — корректная форма, но вопроса нет;
//   - ErrInternal — ошибки стораджа.
func (s *Service) QuestionByExternalID(ctx context.Context, param string) (*models.Question, error) {
	const op = "service/questions/QuestionByExternalID"

	ext, err := models.ParseExternalID(param)
	if err != nil {
		log.Op(ctx, op).Warn("untrusted external id", "param", param)
		return nil, fmt.Errorf("%s: %w", op, ErrUntrustedReference)
	}

	if ext.Draft {
		return s.QuestionByID(ctx, ext.ID)
	}

	if ext.Version == nil {
		return s.LatestPublished(ctx, ext.Number)
	}

	q, err := s.storage.QuestionByNumberAndVersion(ctx, ext.Number, *ext.Version)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		log.Op(ctx, op).Error("storage error on QuestionByNumberAndVersion", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return q, nil
}

// UpdateContentInput — редактируемая проекция черновика.
// Номер, версия, блокировка и лицензия через этот путь не меняются.
type UpdateContentInput struct {
	QuestionID int64
	User       models.User
	Content    string
	// ChangesSolution — nil => не менять.
	ChangesSolution *bool
}

// UpdateContent изменяет содержимое черновика под блокировкой.
// content_html пересчитывается рендером; напрямую он не редактируется.
//
// Поведение/ошибки:
//   - ErrPublishedImmutable — вопрос опубликован;
//   - ErrLockNotHeld — пользователь не держит блокировку (включая тихое
//     истечение); ErrLockConflict — блокировку держит другой;
//   - ErrNotFound / ErrInternal — ошибки стораджа.
func (s *Service) UpdateContent(ctx context.Context, in UpdateContentInput) (*models.Question, error) {
	const op = "service/questions/UpdateContent"

	lg := log.Op(ctx, op).With("question_id", in.QuestionID, "user_id", in.User.ID)

	q, err := s.QuestionByID(ctx, in.QuestionID)
	if err != nil {
		return nil, err
	}

	if q.IsPublished() {
		lg.Warn("update rejected: question is published")
		return nil, fmt.Errorf("%s: %w", op, ErrPublishedImmutable)
	}

	// Редактирование идёт строго под блокировкой: захват -> правка -> выпуск.
	if err := s.requireLockHeld(ctx, q, in.User); err != nil {
		return nil, err
	}

	html, err := s.renderer.Render(in.Content)
	if err != nil {
		lg.Error("content render failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	updated, err := s.storage.UpdateDraftContent(ctx, storage.UpdateContentParams{
		QuestionID:      q.ID,
		Content:         in.Content,
		ContentHTML:     html,
		ChangesSolution: in.ChangesSolution,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrPublished):
			return nil, fmt.Errorf("%s: %w", op, ErrPublishedImmutable)
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdateDraftContent", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return updated, nil
}

// Destroy удаляет черновик каскадно (соавторы, рёбра зависимостей, привязки
// к проектам). Удаление опубликованного вопроса запрещено всегда.
//
// Поведение/ошибки:
//   - ErrPublishedImmutable — вопрос опубликован;
//   - ErrLockConflict — черновик занят другим держателем;
//   - ErrNotFound / ErrInternal — ошибки стораджа.
func (s *Service) Destroy(ctx context.Context, questionID int64, user models.User) error {
	const op = "service/questions/Destroy"

	lg := log.Op(ctx, op).With("question_id", questionID, "user_id", user.ID)

	q, err := s.QuestionByID(ctx, questionID)
	if err != nil {
		return err
	}

	if q.IsPublished() {
		lg.Warn("destroy rejected: question is published")
		return fmt.Errorf("%s: %w", op, ErrPublishedImmutable)
	}

	if err := s.guardNotLockedByOther(ctx, q, user); err != nil {
		return err
	}

	if err := s.storage.DestroyDraft(ctx, q.ID); err != nil {
		switch {
		case errors.Is(err, storage.ErrPublished):
			return fmt.Errorf("%s: %w", op, ErrPublishedImmutable)
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on DestroyDraft", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}

// UpdateSetupContent изменяет содержимое подводки (общей для вопросов,
// которые её разделяют). Запрещено, когда хотя бы один привязанный вопрос
// опубликован.
func (s *Service) UpdateSetupContent(ctx context.Context, setupID string, content string) (*models.QuestionSetup, error) {
	const op = "service/questions/UpdateSetupContent"

	lg := log.Op(ctx, op).With("setup_id", setupID)

	id, err := parseUUID(setupID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	html, err := s.renderer.Render(content)
	if err != nil {
		lg.Error("content render failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	setup, err := s.storage.UpdateSetupContent(ctx, id, content, html)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrPublished):
			return nil, fmt.Errorf("%s: %w", op, ErrPublishedImmutable)
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdateSetupContent", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return setup, nil
}

// now — точка подмены времени в тестах блокировок.
var now = time.Now
