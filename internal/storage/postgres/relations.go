package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
)

const derivationColumns = `
id, source_question_id, derived_question_id, deriver_id, created_at
`

func scanDerivation(row pgx.Row) (*models.QuestionDerivation, error) {
	var d models.QuestionDerivation

	if err := row.Scan(&d.ID, &d.SourceQuestionID, &d.DerivedQuestionID, &d.DeriverID, &d.CreatedAt); err != nil {
		return nil, err
	}

	return &d, nil
}

// DerivationByDerived возвращает ребро, в котором вопрос — производный.
// Ошибки: storage.ErrNotFound.
func (s *Storage) DerivationByDerived(ctx context.Context, derivedQuestionID int64) (*models.QuestionDerivation, error) {
	const op = "storage/postgres/relations/DerivationByDerived"

	q := `SELECT ` + derivationColumns + ` FROM question_derivations WHERE derived_question_id = $1`

	result, err := scanDerivation(s.db.QueryRow(ctx, q, derivedQuestionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// DerivationsBySource возвращает рёбра, где вопрос выступает источником.
func (s *Storage) DerivationsBySource(ctx context.Context, sourceQuestionID int64) ([]models.QuestionDerivation, error) {
	const op = "storage/postgres/relations/DerivationsBySource"

	q := `SELECT ` + derivationColumns + ` FROM question_derivations WHERE source_question_id = $1 ORDER BY created_at`

	rows, err := s.db.Query(ctx, q, sourceQuestionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.QuestionDerivation
	for rows.Next() {
		d, err := scanDerivation(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		result = append(result, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// AddDependencyPair вставляет направленное ребро зависимости.
// Ошибки: storage.ErrNotFound — один из вопросов отсутствует (FK);
// storage.ErrConflict — дубликат ребра.
func (s *Storage) AddDependencyPair(ctx context.Context, pair models.QuestionDependencyPair) (*models.QuestionDependencyPair, error) {
	const op = "storage/postgres/relations/AddDependencyPair"

	q := `
	INSERT INTO question_dependency_pairs (independent_question_id, dependent_question_id, kind)
	VALUES ($1, $2, $3)
	RETURNING id, independent_question_id, dependent_question_id, kind, created_at`

	var result models.QuestionDependencyPair
	var kind string
	err := s.db.QueryRow(ctx, q,
		pair.IndependentQuestionID, pair.DependentQuestionID, string(pair.Kind),
	).Scan(&result.ID, &result.IndependentQuestionID, &result.DependentQuestionID, &kind, &result.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		switch {
		case isUniqueViolation(err):
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		case errors.As(err, &pgErr) && pgErr.Code == "23503":
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		default:
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	result.Kind = models.DependencyKind(kind)

	return &result, nil
}

// DependencyPairsByQuestion возвращает рёбра зависимостей, где вопрос
// участвует с любой стороны.
func (s *Storage) DependencyPairsByQuestion(ctx context.Context, questionID int64) ([]models.QuestionDependencyPair, error) {
	const op = "storage/postgres/relations/DependencyPairsByQuestion"

	rows, err := s.db.Query(ctx, `
		SELECT id, independent_question_id, dependent_question_id, kind, created_at
		FROM question_dependency_pairs
		WHERE independent_question_id = $1 OR dependent_question_id = $1
		ORDER BY created_at`,
		questionID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []models.QuestionDependencyPair
	for rows.Next() {
		var p models.QuestionDependencyPair
		var kind string

		if err := rows.Scan(&p.ID, &p.IndependentQuestionID, &p.DependentQuestionID, &kind, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		p.Kind = models.DependencyKind(kind)
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// SetupByID возвращает подводку по идентификатору.
// Ошибки: storage.ErrNotFound.
func (s *Storage) SetupByID(ctx context.Context, id uuid.UUID) (*models.QuestionSetup, error) {
	const op = "storage/postgres/relations/SetupByID"

	var setup models.QuestionSetup
	err := s.db.QueryRow(ctx, `
		SELECT id, content, content_html, created_at, updated_at
		FROM question_setups WHERE id = $1`,
		id,
	).Scan(&setup.ID, &setup.Content, &setup.ContentHTML, &setup.CreatedAt, &setup.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &setup, nil
}

// UpdateSetupContent изменяет содержимое подводки.
// Ошибки: storage.ErrPublished — хотя бы один привязанный вопрос опубликован;
// storage.ErrNotFound — подводки нет.
func (s *Storage) UpdateSetupContent(ctx context.Context, id uuid.UUID, content, contentHTML string) (*models.QuestionSetup, error) {
	const op = "storage/postgres/relations/UpdateSetupContent"

	var setup models.QuestionSetup
	err := s.db.QueryRow(ctx, `
		UPDATE question_setups SET content = $2, content_html = $3, updated_at = now()
		WHERE id = $1
		  AND NOT EXISTS (SELECT 1 FROM questions q WHERE q.setup_id = $1 AND q.version IS NOT NULL)
		RETURNING id, content, content_html, created_at, updated_at`,
		id, content, contentHTML,
	).Scan(&setup.ID, &setup.Content, &setup.ContentHTML, &setup.CreatedAt, &setup.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, s.setupMissReason(ctx, op, id)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &setup, nil
}

// setupMissReason — различает «подводки нет» и «подводка заморожена
// опубликованным вопросом».
func (s *Storage) setupMissReason(ctx context.Context, op string, id uuid.UUID) error {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT TRUE FROM question_setups WHERE id = $1`, id,
	).Scan(&exists)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	case err != nil:
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w", op, storage.ErrPublished)
	}
}
