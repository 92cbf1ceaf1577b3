package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-question-bank/internal/models"
	"github.com/pribylovaa/go-question-bank/internal/storage"
	"github.com/pribylovaa/go-question-bank/pkg/log"
)

// Создание вопросов: новый черновик «с нуля», новая версия опубликованного
// вопроса (тот же номер) и производная (новый номер, ребро derivation).
// Все три пути сходятся в одной атомарной операции хранилища.

// CreateQuestionInput — параметры создания черновика «с нуля».
type CreateQuestionInput struct {
	Kind    models.Kind
	Content string
	// ChangesSolution — изменение содержимого потребует пересмотра решений.
	ChangesSolution bool
	// SetupID — привязка к существующей подводке; пустая строка -> создаётся
	// новая подводка с содержимым SetupContent (возможно, пустая).
	SetupID      string
	SetupContent string
	// ProjectID — проект размещения; пустая строка -> проект по умолчанию
	// создателя.
	ProjectID        string
	ParentQuestionID *int64
	Creator          models.User
}

// CreateQuestion создаёт черновик: номер назначается сразу (следующий
// свободный), версия отсутствует, создатель получает обе роли, числится в
// списке соавторов и подписывается на ветку обсуждения.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — неизвестный вид, пустое содержимое, кривые UUID;
//   - ErrNotFound — подводка или проект не найдены;
//   - ErrInternal — ошибки стораджа.
func (s *Service) CreateQuestion(ctx context.Context, in CreateQuestionInput) (*models.Question, error) {
	const op = "service/derive/CreateQuestion"

	lg := log.Op(ctx, op).With("creator_id", in.Creator.ID, "kind", string(in.Kind))

	if !in.Kind.Valid() || in.Creator.Anonymous {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	html, err := s.renderer.Render(in.Content)
	if err != nil {
		lg.Error("content render failed", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	params := storage.CreateQuestionParams{
		Kind:             in.Kind,
		Content:          in.Content,
		ContentHTML:      html,
		ChangesSolution:  in.ChangesSolution,
		ParentQuestionID: in.ParentQuestionID,
		CreatorID:        in.Creator.ID,
		SetInitialRoles:  true,
	}

	if in.SetupID != "" {
		setupID, err := parseUUID(in.SetupID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		params.SetupID = &setupID
	} else {
		params.SetupContent = in.SetupContent

		setupHTML, err := s.renderer.Render(in.SetupContent)
		if err != nil {
			lg.Error("setup render failed", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		params.SetupContentHTML = setupHTML
	}

	if in.ProjectID != "" {
		projectID, err := parseUUID(in.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		params.ProjectID = &projectID
	}

	return s.createQuestion(ctx, op, params)
}

// NewVersion создаёт черновик следующей версии опубликованного вопроса:
// номер сохраняется, содержимое и подводка копируются, роли соавторов
// переносятся дословно (без ролей «по умолчанию» для инициатора).
//
// Поведение/ошибки:
//   - ErrNotPublished — источник не опубликован: версионируются только
//     опубликованные вопросы;
//   - ErrNotFound / ErrInternal — ошибки стораджа.
func (s *Service) NewVersion(ctx context.Context, questionID int64, user models.User) (*models.Question, error) {
	const op = "service/derive/NewVersion"

	lg := log.Op(ctx, op).With("question_id", questionID, "user_id", user.ID)

	src, err := s.QuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	if !src.IsPublished() {
		lg.Warn("new version rejected: source is not published")
		return nil, fmt.Errorf("%s: %w", op, ErrNotPublished)
	}

	params, err := s.copyParams(ctx, op, src, user)
	if err != nil {
		return nil, err
	}

	params.Number = src.Number
	params.SetInitialRoles = false
	params.CopyRolesFrom = &src.ID

	draft, err := s.createQuestion(ctx, op, params)
	if err != nil {
		return nil, err
	}

	lg.Info("new version draft created", "draft_id", draft.ID, "number", src.Number)

	return draft, nil
}

// NewDerivation создаёт производный черновик опубликованного вопроса:
// свежая идентичность (новый номер назначается сразу), содержимое и подводка
// копируются, инициатор получает начальные роли, записывается ребро
// производной.
//
// Поведение/ошибки:
//   - ErrNotPublished — производные снимаются только с опубликованных;
//   - ErrNotFound / ErrInternal — ошибки стораджа.
func (s *Service) NewDerivation(ctx context.Context, questionID int64, user models.User) (*models.Question, error) {
	const op = "service/derive/NewDerivation"

	lg := log.Op(ctx, op).With("question_id", questionID, "user_id", user.ID)

	src, err := s.QuestionByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	if !src.IsPublished() {
		lg.Warn("derivation rejected: source is not published")
		return nil, fmt.Errorf("%s: %w", op, ErrNotPublished)
	}

	params, err := s.copyParams(ctx, op, src, user)
	if err != nil {
		return nil, err
	}

	params.SetInitialRoles = true
	params.SourceQuestionID = &src.ID
	params.DeriverID = &user.ID

	draft, err := s.createQuestion(ctx, op, params)
	if err != nil {
		return nil, err
	}

	lg.Info("derivation draft created", "draft_id", draft.ID, "source_id", src.ID)

	return draft, nil
}

// Derivations возвращает рёбра, в которых вопрос выступает источником.
func (s *Service) Derivations(ctx context.Context, questionID int64) ([]models.QuestionDerivation, error) {
	const op = "service/derive/Derivations"

	derivs, err := s.storage.DerivationsBySource(ctx, questionID)
	if err != nil {
		log.Op(ctx, op).Error("storage error on DerivationsBySource", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return derivs, nil
}

// AddDependencyPair связывает два вопроса ребром requirement/support.
// Петли запрещены.
//
// Поведение/ошибки:
//   - ErrInvalidArgument — неизвестный вид ребра или петля;
//   - ErrNotFound — один из вопросов отсутствует;
//   - ErrInternal — ошибки стораджа.
func (s *Service) AddDependencyPair(ctx context.Context, independentID, dependentID int64, kind models.DependencyKind) (*models.QuestionDependencyPair, error) {
	const op = "service/derive/AddDependencyPair"

	if !kind.Valid() || independentID == dependentID || independentID <= 0 || dependentID <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	pair, err := s.storage.AddDependencyPair(ctx, models.QuestionDependencyPair{
		IndependentQuestionID: independentID,
		DependentQuestionID:   dependentID,
		Kind:                  kind,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrConflict):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			log.Op(ctx, op).Error("storage error on AddDependencyPair", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return pair, nil
}

// DependencyPairs возвращает рёбра зависимостей, где вопрос участвует с любой
// стороны.
func (s *Service) DependencyPairs(ctx context.Context, questionID int64) ([]models.QuestionDependencyPair, error) {
	const op = "service/derive/DependencyPairs"

	pairs, err := s.storage.DependencyPairsByQuestion(ctx, questionID)
	if err != nil {
		log.Op(ctx, op).Error("storage error on DependencyPairsByQuestion", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return pairs, nil
}

// copyParams собирает параметры создания из видоспецифичной копии источника:
// редактируемые поля, содержимое подводки, проект по умолчанию инициатора.
func (s *Service) copyParams(ctx context.Context, op string, src *models.Question, user models.User) (storage.CreateQuestionParams, error) {
	cp := models.BehaviorFor(src.Kind).ContentCopy(src)

	params := storage.CreateQuestionParams{
		Kind:             cp.Kind,
		Content:          cp.Content,
		ContentHTML:      cp.ContentHTML,
		ChangesSolution:  cp.ChangesSolution,
		LicenseID:        cp.LicenseID,
		ParentQuestionID: src.ParentQuestionID,
		CreatorID:        user.ID,
	}

	if src.SetupID != nil {
		setup, err := s.storage.SetupByID(ctx, *src.SetupID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return storage.CreateQuestionParams{}, fmt.Errorf("%s: %w", op, ErrNotFound)
			}

			log.Op(ctx, op).Error("storage error on SetupByID", "err", err)
			return storage.CreateQuestionParams{}, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		// Подводка копируется содержимым, а не ссылкой: правки копии не должны
		// протекать в опубликованный источник.
		params.SetupContent = setup.Content
		params.SetupContentHTML = setup.ContentHTML
	}

	return params, nil
}

// createQuestion — общий вызов атомарного создания с единым маппингом ошибок.
// Перед созданием разрешает умолчания: проект по умолчанию создателя
// (создаётся при отсутствии) и лицензию по умолчанию (её отсутствие не
// ошибка — черновик живёт без лицензии до публикации).
func (s *Service) createQuestion(ctx context.Context, op string, params storage.CreateQuestionParams) (*models.Question, error) {
	if params.ProjectID == nil {
		project, err := s.storage.DefaultProjectFor(ctx, params.CreatorID)
		if err != nil {
			log.Op(ctx, op).Error("storage error on DefaultProjectFor", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		params.ProjectID = &project.ID
	}

	if params.LicenseID == nil {
		license, err := s.storage.DefaultLicense(ctx)
		switch {
		case err == nil:
			params.LicenseID = &license.ID
		case !errors.Is(err, storage.ErrNotFound):
			log.Op(ctx, op).Error("storage error on DefaultLicense", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	draft, err := s.storage.CreateQuestion(ctx, params)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrConflict):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			log.Op(ctx, op).Error("storage error on CreateQuestion", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return draft, nil
}
