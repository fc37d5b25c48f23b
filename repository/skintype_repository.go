package repository

import (
	"context"

	"github.com/dhp131/beaute-project-BE/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SkinTypeRepository defines skin type data access.
type SkinTypeRepository interface {
	Create(ctx context.Context, skinType *models.SkinType) error
	FindAll(ctx context.Context) ([]models.SkinType, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.SkinType, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.SkinType, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.SkinType, error)
	AddRoutine(ctx context.Context, id, routineID primitive.ObjectID) (*models.SkinType, error)
	RemoveRoutine(ctx context.Context, id, routineID primitive.ObjectID) (*models.SkinType, error)
	// FindByScore returns the skin type whose [minPoints, maxPoints]
	// range contains score.
	FindByScore(ctx context.Context, score int) (*models.SkinType, error)
}

// MongoSkinTypeRepository implements SkinTypeRepository on a mongo collection.
type MongoSkinTypeRepository struct {
	collection *mongo.Collection
}

func NewMongoSkinTypeRepository(db *mongo.Database) *MongoSkinTypeRepository {
	return &MongoSkinTypeRepository{collection: db.Collection("skintypes")}
}

func (r *MongoSkinTypeRepository) Create(ctx context.Context, skinType *models.SkinType) error {
	res, err := r.collection.InsertOne(ctx, skinType)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		skinType.ID = oid
	}
	return nil
}

func (r *MongoSkinTypeRepository) FindAll(ctx context.Context) ([]models.SkinType, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var skinTypes []models.SkinType
	if err := cursor.All(ctx, &skinTypes); err != nil {
		return nil, err
	}
	return skinTypes, nil
}

func (r *MongoSkinTypeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SkinType, error) {
	var skinType models.SkinType
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&skinType)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &skinType, nil
}

func (r *MongoSkinTypeRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.SkinType, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$set": updates})
}

func (r *MongoSkinTypeRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.SkinType, error) {
	var skinType models.SkinType
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&skinType)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &skinType, nil
}

func (r *MongoSkinTypeRepository) AddRoutine(ctx context.Context, id, routineID primitive.ObjectID) (*models.SkinType, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$addToSet": bson.M{"routineIds": routineID}})
}

func (r *MongoSkinTypeRepository) RemoveRoutine(ctx context.Context, id, routineID primitive.ObjectID) (*models.SkinType, error) {
	return r.findOneAndUpdate(ctx, id, bson.M{"$pull": bson.M{"routineIds": routineID}})
}

func (r *MongoSkinTypeRepository) FindByScore(ctx context.Context, score int) (*models.SkinType, error) {
	filter := bson.M{
		"minPoints": bson.M{"$lte": score},
		"maxPoints": bson.M{"$gte": score},
	}
	var skinType models.SkinType
	err := r.collection.FindOne(ctx, filter).Decode(&skinType)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &skinType, nil
}

func (r *MongoSkinTypeRepository) findOneAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.SkinType, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var skinType models.SkinType
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&skinType)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &skinType, nil
}
