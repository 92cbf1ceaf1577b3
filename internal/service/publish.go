package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
	"github.com/pribylovaa/go-question-bank/pkg/log"
)

// Публикация: черновик проверяется предпубликационными правилами и атомарно
// переводится в опубликованное состояние — версия фиксируется, транзитное
// состояние соавторства вычищается, осиротевшая пустая подводка уничтожается.
// Опубликованный вопрос терминален: правка и удаление запрещены навсегда.

// Сообщения предпубликационных проверок.
const (
	msgPendingRoleRequests = "this question has pending role requests"
	msgRolesNotFilled      = "the author and copyright holder roles are not filled for this question"
	msgNoLicense           = "a license has not yet been specified for this question"
	msgAlreadyPublished    = "this question is already published"
	msgSuperseded          = "newer versions of this question already exist; " +
		"please start modifications again from the latest version"
)

// PrepublishErrors — накопленный список нарушений предпубликационных правил.
// Проверки не обрываются на первом нарушении: наружу уходит весь список.
type PrepublishErrors []string

// Empty — нарушений нет, вопрос готов к публикации.
func (e PrepublishErrors) Empty() bool { return len(e) == 0 }

func (e PrepublishErrors) Error() string { return strings.Join(e, "; ") }

// RunPrepublishErrorChecks прогоняет все предпубликационные правила и
// возвращает полный список нарушений:
//  1. есть ожидающие запросы ролей;
//  2. роли автора/правообладателя не заполнены;
//  3. лицензия не назначена;
//  4. вопрос уже опубликован;
//  5. вопрос вытеснён более новой опубликованной версией;
//  6. видоспецифичные проверки (точка расширения).
//
// Возвращаемая error — только внутренние сбои, не нарушения правил.
func (s *Service) RunPrepublishErrorChecks(ctx context.Context, q *models.Question) (PrepublishErrors, error) {
	const op = "service/publish/RunPrepublishErrorChecks"

	var errs PrepublishErrors

	requests, err := s.storage.RoleRequestsByQuestion(ctx, q.ID)
	if err != nil {
		log.Op(ctx, op).Error("storage error on RoleRequestsByQuestion", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if len(requests) > 0 {
		errs = append(errs, msgPendingRoleRequests)
	}

	filled, err := s.HasAllRoles(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	if !filled {
		errs = append(errs, msgRolesNotFilled)
	}

	if !q.HasLicense() {
		errs = append(errs, msgNoLicense)
	}

	if q.IsPublished() {
		errs = append(errs, msgAlreadyPublished)
	}

	superseded, err := s.Superseded(ctx, q)
	if err != nil {
		return nil, err
	}

	if superseded {
		errs = append(errs, msgSuperseded)
	}

	behavior := models.BehaviorFor(q.Kind)

	var parts []models.Question
	if behavior.IsMultipart() {
		parts, err = s.storage.QuestionParts(ctx, q.ID)
		if err != nil {
			log.Op(ctx, op).Error("storage error on QuestionParts", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	errs = append(errs, behavior.ExtraPrepublishErrors(q, parts)...)

	return errs, nil
}

// ReadyToBePublished — проверки дали пустой список нарушений.
func (s *Service) ReadyToBePublished(ctx context.Context, q *models.Question) (bool, error) {
	errs, err := s.RunPrepublishErrorChecks(ctx, q)
	if err != nil {
		return false, err
	}

	return errs.Empty(), nil
}

// Publish публикует черновик от имени пользователя.
//
// Если предпубликационные проверки дали нарушения, операция — no-op:
// возвращается (nil, нарушения, nil); вызывающий обязан проверить список,
// прежде чем считать публикацию состоявшейся.
//
// При успехе одной транзакцией хранилища:
//   - пустая подводка отцепляется и, осиротев, уничтожается;
//   - выполняется видоспецифичный прихук (до чистки ролей);
//   - безролевые соавторы уничтожаются;
//   - ветка обсуждения сбрасывается начисто (намеренно необратимый шаг);
//   - авторы с автоподпиской переподписываются на свежую ветку;
//   - version = NextAvailableVersion(number), назначается издатель.
//
// Состояние блокировки публикация молча отбрасывает — для опубликованного
// вопроса оно теряет смысл.
//
// Поведение/ошибки:
//   - ErrLockConflict — черновик занят другим держателем;
//   - ErrPublishedImmutable — вопрос оказался опубликован на уровне хранилища;
//   - ErrVersionConflict — параллельная публикация заняла версию (ретраится);
//   - ErrNotFound / ErrInternal — ошибки стораджа.
func (s *Service) Publish(ctx context.Context, questionID int64, user models.User) (*models.Question, PrepublishErrors, error) {
	const op = "service/publish/Publish"

	lg := log.Op(ctx, op).With("question_id", questionID, "user_id", user.ID)

	q, err := s.QuestionByID(ctx, questionID)
	if err != nil {
		return nil, nil, err
	}

	if err := s.guardNotLockedByOther(ctx, q, user); err != nil {
		return nil, nil, err
	}

	checkErrs, err := s.RunPrepublishErrorChecks(ctx, q)
	if err != nil {
		return nil, nil, err
	}

	if !checkErrs.Empty() {
		lg.Warn("publish rejected by prepublish checks", "violations", len(checkErrs))
		return nil, checkErrs, nil
	}

	version, err := s.NextAvailableVersion(ctx, q.Number)
	if err != nil {
		return nil, nil, err
	}

	// Видоспецифичная подготовка — до чистки ролей.
	models.BehaviorFor(q.Kind).PrepublishHook(q)

	published, err := s.storage.PublishQuestion(ctx, storage.PublishParams{
		QuestionID:  q.ID,
		PublisherID: user.ID,
		Version:     version,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrPublished):
			return nil, nil, fmt.Errorf("%s: %w", op, ErrPublishedImmutable)
		case errors.Is(err, storage.ErrConflict):
			// Параллельная публикация успела занять версию; можно повторить.
			lg.Warn("publish lost the race for (number, version)", "version", version)
			return nil, nil, fmt.Errorf("%s: %w", op, ErrVersionConflict)
		case errors.Is(err, storage.ErrNotFound):
			return nil, nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on PublishQuestion", "err", err)
			return nil, nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	lg.Info("question published",
		"number", published.Number,
		"version", *published.Version,
		"external_id", published.ExternalID(),
	)

	return published, nil, nil
}
