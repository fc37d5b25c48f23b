package repository

import (
	"context"
	"time"

	"github.com/dhp131/beaute-project-BE/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// QuizResultRepository defines append-only quiz log access.
type QuizResultRepository interface {
	Create(ctx context.Context, result *models.QuizResult) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.QuizResult, error)
}

// MongoQuizResultRepository implements QuizResultRepository on a mongo
// collection.
type MongoQuizResultRepository struct {
	collection *mongo.Collection
}

func NewMongoQuizResultRepository(db *mongo.Database) *MongoQuizResultRepository {
	return &MongoQuizResultRepository{collection: db.Collection("quizresults")}
}

func (r *MongoQuizResultRepository) Create(ctx context.Context, result *models.QuizResult) error {
	result.CreatedAt = time.Now().UTC()
	res, err := r.collection.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid
	}
	return nil
}

func (r *MongoQuizResultRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.QuizResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.QuizResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
