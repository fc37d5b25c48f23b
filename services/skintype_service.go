package services

import (
	"context"
	"errors"

	"github.com/dhp131/beaute-project-BE/models"
	"github.com/dhp131/beaute-project-BE/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// SkinTypeService handles skin type management and quiz-based assignment.
type SkinTypeService interface {
	Create(ctx context.Context, req *models.CreateSkinTypeRequest) (*models.SkinType, *ServiceError)
	GetAll(ctx context.Context) ([]models.SkinType, *ServiceError)
	GetByID(ctx context.Context, id string) (*models.SkinType, *ServiceError)
	Update(ctx context.Context, id string, req *models.UpdateSkinTypeRequest) (*models.SkinType, *ServiceError)
	Delete(ctx context.Context, id string) (*models.SkinType, *ServiceError)
	AddRoutine(ctx context.Context, id, routineID string) (*models.SkinType, *ServiceError)
	RemoveRoutine(ctx context.Context, id, routineID string) (*models.SkinType, *ServiceError)
	// AssignFromQuiz sums the submitted points, resolves the skin type
	// whose score range contains the total, assigns it to the user and
	// appends a quiz result record. Returns the updated user with the
	// skin type populated.
	AssignFromQuiz(ctx context.Context, userID string, submission *models.QuizSubmission) (*models.User, *ServiceError)
	// QuizHistory returns the user's quiz submissions, newest first.
	QuizHistory(ctx context.Context, userID string) ([]models.QuizResult, *ServiceError)
}

type skinTypeServiceImpl struct {
	repo        repository.SkinTypeRepository
	users       repository.UserRepository
	quizResults repository.QuizResultRepository
	logger      *zap.Logger
}

func NewSkinTypeService(
	repo repository.SkinTypeRepository,
	users repository.UserRepository,
	quizResults repository.QuizResultRepository,
	logger *zap.Logger,
) SkinTypeService {
	return &skinTypeServiceImpl{repo: repo, users: users, quizResults: quizResults, logger: logger}
}

func (s *skinTypeServiceImpl) Create(ctx context.Context, req *models.CreateSkinTypeRequest) (*models.SkinType, *ServiceError) {
	if req.MaxPoints < req.MinPoints {
		return nil, badRequest("maxPoints must not be less than minPoints")
	}
	skinType := &models.SkinType{
		Name:        req.Name,
		Description: req.Description,
		MinPoints:   req.MinPoints,
		MaxPoints:   req.MaxPoints,
	}
	if err := s.repo.Create(ctx, skinType); err != nil {
		s.logger.Error("Failed to create skin type", zap.Error(err))
		return nil, internal("Failed to create skin type")
	}
	return skinType, nil
}

func (s *skinTypeServiceImpl) GetAll(ctx context.Context) ([]models.SkinType, *ServiceError) {
	skinTypes, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to retrieve skin types", zap.Error(err))
		return nil, internal("Failed to retrieve skin types")
	}
	if skinTypes == nil {
		skinTypes = []models.SkinType{}
	}
	return skinTypes, nil
}

func (s *skinTypeServiceImpl) GetByID(ctx context.Context, id string) (*models.SkinType, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, badRequest("Invalid skin type ID")
	}
	skinType, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Skin type not found")
		}
		s.logger.Error("Failed to retrieve skin type", zap.String("id", id), zap.Error(err))
		return nil, internal("Failed to retrieve skin type")
	}
	return skinType, nil
}

func (s *skinTypeServiceImpl) Update(ctx context.Context, id string, req *models.UpdateSkinTypeRequest) (*models.SkinType, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, badRequest("Invalid skin type ID")
	}

	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.MinPoints != nil {
		updates["minPoints"] = *req.MinPoints
	}
	if req.MaxPoints != nil {
		updates["maxPoints"] = *req.MaxPoints
	}
	if len(updates) == 0 {
		return nil, badRequest("No fields to update")
	}

	skinType, err := s.repo.Update(ctx, oid, updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Skin type not found")
		}
		s.logger.Error("Failed to update skin type", zap.String("id", id), zap.Error(err))
		return nil, internal("Failed to update skin type")
	}
	return skinType, nil
}

func (s *skinTypeServiceImpl) Delete(ctx context.Context, id string) (*models.SkinType, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, badRequest("Invalid skin type ID")
	}
	skinType, err := s.repo.Delete(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Skin type not found")
		}
		s.logger.Error("Failed to delete skin type", zap.String("id", id), zap.Error(err))
		return nil, internal("Failed to delete skin type")
	}
	return skinType, nil
}

func (s *skinTypeServiceImpl) AddRoutine(ctx context.Context, id, routineID string) (*models.SkinType, *ServiceError) {
	return s.routineOp(ctx, id, routineID, s.repo.AddRoutine, "Failed to add routine to skin type")
}

func (s *skinTypeServiceImpl) RemoveRoutine(ctx context.Context, id, routineID string) (*models.SkinType, *ServiceError) {
	return s.routineOp(ctx, id, routineID, s.repo.RemoveRoutine, "Failed to remove routine from skin type")
}

func (s *skinTypeServiceImpl) routineOp(
	ctx context.Context,
	id, routineID string,
	op func(context.Context, primitive.ObjectID, primitive.ObjectID) (*models.SkinType, error),
	failMsg string,
) (*models.SkinType, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, badRequest("Invalid skin type ID")
	}
	rid, err := primitive.ObjectIDFromHex(routineID)
	if err != nil {
		return nil, badRequest("Invalid routine ID")
	}

	skinType, err := op(ctx, oid, rid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Skin type not found")
		}
		s.logger.Error(failMsg, zap.String("id", id), zap.Error(err))
		return nil, internal(failMsg)
	}
	return skinType, nil
}

func (s *skinTypeServiceImpl) AssignFromQuiz(ctx context.Context, userID string, submission *models.QuizSubmission) (*models.User, *ServiceError) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, badRequest("Invalid user ID")
	}
	if len(submission.Points) == 0 {
		return nil, badRequest("Missing quiz points")
	}

	total := 0
	for _, p := range submission.Points {
		total += p
	}

	skinType, err := s.repo.FindByScore(ctx, total)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("No skin type matches the submitted points")
		}
		s.logger.Error("Skin type classification failed", zap.Int("score", total), zap.Error(err))
		return nil, internal("Failed to analyze skin type")
	}

	user, err := s.users.UpdateSkinType(ctx, uid, skinType.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("User not found")
		}
		s.logger.Error("Failed to assign skin type", zap.String("userId", userID), zap.Error(err))
		return nil, internal("Failed to analyze skin type")
	}
	user.SkinTypeDoc = skinType

	result := &models.QuizResult{
		UserID:  user.ID,
		Content: submission.Content,
		Result:  skinType.ID,
		Points:  submission.Points,
	}
	if err := s.quizResults.Create(ctx, result); err != nil {
		s.logger.Error("Failed to record quiz result", zap.String("userId", userID), zap.Error(err))
		return nil, internal("Failed to analyze skin type")
	}

	s.logger.Info("Skin type assigned",
		zap.String("userId", userID),
		zap.String("skinType", skinType.Name),
		zap.Int("score", total))
	return user, nil
}

func (s *skinTypeServiceImpl) QuizHistory(ctx context.Context, userID string) ([]models.QuizResult, *ServiceError) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, badRequest("Invalid user ID")
	}
	results, err := s.quizResults.FindByUser(ctx, uid)
	if err != nil {
		s.logger.Error("Failed to retrieve quiz history", zap.String("userId", userID), zap.Error(err))
		return nil, internal("Failed to retrieve quiz history")
	}
	if results == nil {
		results = []models.QuizResult{}
	}
	return results, nil
}
