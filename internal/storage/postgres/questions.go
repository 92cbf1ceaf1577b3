package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
)

// questionColumns — единый список колонок таблицы questions,
// используемый в SELECT/RETURNING, чтобы гарантировать одинаковый порядок сканирования.
const questionColumns = `
id, number, version, kind, content, content_html, changes_solution,
setup_id, license_id, parent_question_id,
locked_by, locked_at, publisher_id, published_at, created_at, updated_at
`

// scanQuestion сканирует одну строку вопроса из результата запроса
// в доменную модель (kind хранится текстом, locked_by — сентинел -1).
func scanQuestion(row pgx.Row) (*models.Question, error) {
	var q models.Question
	var kind string

	if err := row.Scan(
		&q.ID,
		&q.Number,
		&q.Version,
		&kind,
		&q.Content,
		&q.ContentHTML,
		&q.ChangesSolution,
		&q.SetupID,
		&q.LicenseID,
		&q.ParentQuestionID,
		&q.LockedBy,
		&q.LockedAt,
		&q.PublisherID,
		&q.PublishedAt,
		&q.CreatedAt,
		&q.UpdatedAt,
	); err != nil {
		return nil, err
	}

	q.Kind = models.Kind(kind)

	return &q, nil
}

func scanQuestions(rows pgx.Rows) ([]models.Question, error) {
	defer rows.Close()

	var result []models.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}

		result = append(result, *q)
	}

	return result, rows.Err()
}

// QuestionByID возвращает вопрос по внутреннему идентификатору.
// Ошибки: storage.ErrNotFound, либо ошибка выполнения запроса.
func (s *Storage) QuestionByID(ctx context.Context, id int64) (*models.Question, error) {
	const op = "storage/postgres/questions/QuestionByID"

	q := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	result, err := scanQuestion(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// QuestionByNumberAndVersion возвращает опубликованный вопрос точной версии.
// Ошибки: storage.ErrNotFound, либо ошибка выполнения запроса.
func (s *Storage) QuestionByNumberAndVersion(ctx context.Context, number int64, version int32) (*models.Question, error) {
	const op = "storage/postgres/questions/QuestionByNumberAndVersion"

	q := `SELECT ` + questionColumns + ` FROM questions WHERE number = $1 AND version = $2`

	result, err := scanQuestion(s.db.QueryRow(ctx, q, number, version))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// LatestPublished возвращает опубликованный вопрос номера с наибольшей версией;
// тай-брейк — последнее обновление.
// Ошибки: storage.ErrNotFound, либо ошибка выполнения запроса.
func (s *Storage) LatestPublished(ctx context.Context, number int64) (*models.Question, error) {
	const op = "storage/postgres/questions/LatestPublished"

	q := `
	SELECT ` + questionColumns + `
	FROM questions
	WHERE number = $1 AND version IS NOT NULL
	ORDER BY version DESC, updated_at DESC
	LIMIT 1`

	result, err := scanQuestion(s.db.QueryRow(ctx, q, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// UpdateDraftContent изменяет редактируемую проекцию черновика.
// Для опубликованного вопроса — storage.ErrPublished; запрос не трогает
// опубликованные строки (version IS NULL в предикате).
func (s *Storage) UpdateDraftContent(ctx context.Context, params storage.UpdateContentParams) (*models.Question, error) {
	const op = "storage/postgres/questions/UpdateDraftContent"

	sets := []string{"content = $2", "content_html = $3", "updated_at = now()"}
	args := []any{params.QuestionID, params.Content, params.ContentHTML}

	if params.ChangesSolution != nil {
		args = append(args, *params.ChangesSolution)
		sets = append(sets, fmt.Sprintf("changes_solution = $%d", len(args)))
	}

	q := fmt.Sprintf(`UPDATE questions SET %s WHERE id = $1 AND version IS NULL RETURNING %s`,
		strings.Join(sets, ", "), questionColumns)

	result, err := scanQuestion(s.db.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, s.draftMissReason(ctx, op, params.QuestionID)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// DestroyDraft удаляет черновик каскадно; ветка обсуждения, соавторы, рёбра
// зависимостей и привязки к проектам уходят по ON DELETE CASCADE, подводка
// без оставшихся вопросов добивается отдельным шагом той же транзакции.
// Для опубликованного вопроса — storage.ErrPublished.
func (s *Storage) DestroyDraft(ctx context.Context, id int64) error {
	const op = "storage/postgres/questions/DestroyDraft"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	var deleted int
	row := tx.QueryRow(ctx, `DELETE FROM questions WHERE id = $1 AND version IS NULL RETURNING 1`, id)
	if err := row.Scan(&deleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s.draftMissReason(ctx, op, id)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	// Осиротевшие подводки (без единого вопроса) уничтожаются.
	if _, err := tx.Exec(ctx, `
		DELETE FROM question_setups s
		WHERE NOT EXISTS (SELECT 1 FROM questions q WHERE q.setup_id = s.id)`,
	); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetLock выставляет держателя рекомендательной блокировки. Блокировка имеет
// смысл только у черновика: опубликованная строка не трогается.
// Ошибки: storage.ErrNotFound — строки нет; storage.ErrPublished — строка
// опубликована.
func (s *Storage) SetLock(ctx context.Context, id int64, userID int64, lockedAt time.Time) error {
	const op = "storage/postgres/questions/SetLock"

	tag, err := s.db.Exec(ctx,
		`UPDATE questions SET locked_by = $2, locked_at = $3 WHERE id = $1 AND version IS NULL`,
		id, userID, lockedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return s.draftMissReason(ctx, op, id)
	}

	return nil
}

// ClearLock сбрасывает блокировку в незанятое состояние.
// Ошибки: storage.ErrNotFound — строки нет; storage.ErrPublished — строка
// опубликована (её блокировку сбрасывает сама публикация).
func (s *Storage) ClearLock(ctx context.Context, id int64) error {
	const op = "storage/postgres/questions/ClearLock"

	tag, err := s.db.Exec(ctx,
		`UPDATE questions SET locked_by = $2, locked_at = NULL WHERE id = $1 AND version IS NULL`,
		id, models.UnlockedSentinel,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return s.draftMissReason(ctx, op, id)
	}

	return nil
}

// QuestionParts возвращает части multipart-вопроса в порядке создания.
func (s *Storage) QuestionParts(ctx context.Context, parentID int64) ([]models.Question, error) {
	const op = "storage/postgres/questions/QuestionParts"

	q := `SELECT ` + questionColumns + ` FROM questions WHERE parent_question_id = $1 ORDER BY id`

	rows, err := s.db.Query(ctx, q, parentID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := scanQuestions(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// draftMissReason различает «строки нет» и «строка есть, но опубликована»:
// обе ситуации дают нулевой эффект мутации черновика, но ошибки разные.
func (s *Storage) draftMissReason(ctx context.Context, op string, id int64) error {
	var published bool
	err := s.db.QueryRow(ctx,
		`SELECT version IS NOT NULL FROM questions WHERE id = $1`, id,
	).Scan(&published)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	case err != nil:
		return fmt.Errorf("%s: %w", op, err)
	case published:
		return fmt.Errorf("%s: %w", op, storage.ErrPublished)
	default:
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
}

// isUniqueViolation — конфликт уникальности (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation — нарушение внешнего ключа (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
