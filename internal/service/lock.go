package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
	"github.com/pribylovaa/go-question-bank/pkg/log"
)

// Рекомендательная блокировка черновика: один логический писатель,
// состояние хранится на самой строке вопроса, истечение ленивое
// (без фоновой очистки). Очередей и ожидания нет — каждый вызов
// немедленно принимается или отклоняется.

// LockConflictError — черновик занят другим непросроченным держателем.
// Сообщение включает имя держателя и оставшиеся минуты (с округлением вверх).
type LockConflictError struct {
	ExternalID  string
	Number      int64
	HolderID    int64
	HolderName  string
	MinutesLeft int
}

func (e *LockConflictError) Error() string {
	unit := "minutes"
	if e.MinutesLeft == 1 {
		unit = "minute"
	}

	return fmt.Sprintf("draft %s (q. %d) is currently locked by %s for at least %d more %s",
		e.ExternalID, e.Number, e.HolderName, e.MinutesLeft, unit)
}

func (e *LockConflictError) Unwrap() error { return ErrLockConflict }

// LockNotHeldError — блокировка не удерживается пользователем; обычное
// следствие долгого бездействия (тихое истечение).
type LockNotHeldError struct {
	ExternalID string
	Number     int64
}

func (e *LockNotHeldError) Error() string {
	return fmt.Sprintf("you do not currently have the lock on draft %s (q. %d); "+
		"this is usually caused by long periods of inactivity, please try again",
		e.ExternalID, e.Number)
}

func (e *LockNotHeldError) Unwrap() error { return ErrLockNotHeld }

// GetLock пытается захватить блокировку черновика для пользователя.
//
// Поведение:
//   - таймаут блокировки <= 0 -> блокировки отключены, успех без мутаций;
//   - вопрос опубликован -> ErrPublishedImmutable: блокировка имеет смысл
//     только у черновика, опубликованная строка не мутируется;
//   - черновик свободен (или блокировка истекла), либо уже занят этим же
//     пользователем -> захват/продление, успех (повторный захват идемпотентен);
//   - занят другим непросроченным держателем -> LockConflictError.
func (s *Service) GetLock(ctx context.Context, questionID int64, user models.User) error {
	const op = "service/lock/GetLock"

	if s.cfg.Lock.Timeout <= 0 {
		return nil
	}

	lg := log.Op(ctx, op).With("question_id", questionID, "user_id", user.ID)

	q, err := s.QuestionByID(ctx, questionID)
	if err != nil {
		return err
	}

	if q.IsPublished() {
		lg.Warn("lock rejected: question is published")
		return fmt.Errorf("%s: %w", op, ErrPublishedImmutable)
	}

	current := now().UTC()
	if !q.IsLocked(current, s.cfg.Lock.Timeout) || q.HasLock(user.ID) {
		if err := s.storage.SetLock(ctx, q.ID, user.ID, current); err != nil {
			// Гонка с публикацией: строка успела стать опубликованной.
			if errors.Is(err, storage.ErrPublished) {
				return fmt.Errorf("%s: %w", op, ErrPublishedImmutable)
			}

			lg.Error("storage error on SetLock", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}

		return nil
	}

	lg.Warn("lock conflict", "holder_id", q.LockedBy)
	return fmt.Errorf("%s: %w", op, s.lockConflict(ctx, q))
}

// CheckAndUnlock проверяет, что пользователь держит блокировку, и освобождает её.
//
// Поведение:
//   - таймаут блокировки <= 0 -> блокировки отключены, успех;
//   - держит пользователь -> освобождение (держатель сбрасывается в
//     незанятое состояние), успех;
//   - свободен (включая истёкшую) -> LockNotHeldError — ошибка
//     «бездействия», отличная от конфликтной;
//   - держит другой -> LockConflictError.
func (s *Service) CheckAndUnlock(ctx context.Context, questionID int64, user models.User) error {
	const op = "service/lock/CheckAndUnlock"

	if s.cfg.Lock.Timeout <= 0 {
		return nil
	}

	lg := log.Op(ctx, op).With("question_id", questionID, "user_id", user.ID)

	q, err := s.QuestionByID(ctx, questionID)
	if err != nil {
		return err
	}

	current := now().UTC()
	locked := q.IsLocked(current, s.cfg.Lock.Timeout)

	switch {
	case locked && q.HasLock(user.ID):
		if err := s.storage.ClearLock(ctx, q.ID); err != nil {
			lg.Error("storage error on ClearLock", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}

		return nil

	case !locked:
		lg.Warn("unlock rejected: lock not held")
		return fmt.Errorf("%s: %w", op, &LockNotHeldError{
			ExternalID: q.ExternalID(),
			Number:     q.Number,
		})

	default:
		lg.Warn("unlock rejected: lock conflict", "holder_id", q.LockedBy)
		return fmt.Errorf("%s: %w", op, s.lockConflict(ctx, q))
	}
}

// IsLocked сообщает, действует ли блокировка вопроса сейчас.
func (s *Service) IsLocked(q *models.Question) bool {
	return q.IsLocked(now().UTC(), s.cfg.Lock.Timeout)
}

// HasLock — держит ли пользователь действующую блокировку вопроса.
func (s *Service) HasLock(q *models.Question, userID int64) bool {
	return s.IsLocked(q) && q.HasLock(userID)
}

// requireLockHeld — охрана мутаций содержимого: при включённых блокировках
// пользователь обязан держать блокировку (поток: захват -> правка -> выпуск).
func (s *Service) requireLockHeld(ctx context.Context, q *models.Question, user models.User) error {
	const op = "service/lock/requireLockHeld"

	if s.cfg.Lock.Timeout <= 0 {
		return nil
	}

	current := now().UTC()
	if !q.IsLocked(current, s.cfg.Lock.Timeout) {
		return fmt.Errorf("%s: %w", op, &LockNotHeldError{
			ExternalID: q.ExternalID(),
			Number:     q.Number,
		})
	}

	if !q.HasLock(user.ID) {
		return fmt.Errorf("%s: %w", op, s.lockConflict(ctx, q))
	}

	return nil
}

// guardNotLockedByOther — охрана операций уровня вопроса (публикация,
// удаление): достаточно, чтобы черновик не был занят другим держателем.
func (s *Service) guardNotLockedByOther(ctx context.Context, q *models.Question, user models.User) error {
	const op = "service/lock/guardNotLockedByOther"

	if s.cfg.Lock.Timeout <= 0 {
		return nil
	}

	current := now().UTC()
	if q.IsLocked(current, s.cfg.Lock.Timeout) && !q.HasLock(user.ID) {
		return fmt.Errorf("%s: %w", op, s.lockConflict(ctx, q))
	}

	return nil
}

// lockConflict собирает конфликтную ошибку: имя держателя и оставшиеся
// минуты, округлённые вверх. Если пользователь-держатель не находится,
// подписываем идентификатором.
func (s *Service) lockConflict(ctx context.Context, q *models.Question) *LockConflictError {
	holderName := "user #" + strconv.FormatInt(q.LockedBy, 10)
	if holder, err := s.storage.UserByID(ctx, q.LockedBy); err == nil {
		holderName = holder.FullName
	}

	minutes := 0
	if q.LockedAt != nil {
		left := q.LockedAt.Add(s.cfg.Lock.Timeout).Sub(now().UTC())
		minutes = int(math.Ceil(left.Minutes()))
	}

	return &LockConflictError{
		ExternalID:  q.ExternalID(),
		Number:      q.Number,
		HolderID:    q.LockedBy,
		HolderName:  holderName,
		MinutesLeft: minutes,
	}
}

// parseUUID — разбор внешнего строкового UUID с единым поведением ошибок.
func parseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.New("bad uuid")
	}

	return id, nil
}
