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

// UserRepository defines account data access.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateSkinType(ctx context.Context, id, skinTypeID primitive.ObjectID) (*models.User, error)
	// FindByRoleInRange returns accounts created in [start, end] whose
	// role set contains role, newest first.
	FindByRoleInRange(ctx context.Context, start, end time.Time, role string) ([]models.User, error)
	// FindCustomersWithSkinTypeInRange returns customer accounts created
	// in [start, end] with a non-null skin type, newest first.
	FindCustomersWithSkinTypeInRange(ctx context.Context, start, end time.Time) ([]models.User, error)
}

// MongoUserRepository implements UserRepository on a mongo collection.
type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	user.CreatedAt = time.Now().UTC()
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (r *MongoUserRepository) UpdateSkinType(ctx context.Context, id, skinTypeID primitive.ObjectID) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"skinType": skinTypeID}}, opts).Decode(&user)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (r *MongoUserRepository) FindByRoleInRange(ctx context.Context, start, end time.Time, role string) ([]models.User, error) {
	filter := bson.M{
		"createdAt": bson.M{"$gte": start, "$lte": end},
		"role":      bson.M{"$in": []string{role}},
	}
	return r.find(ctx, filter)
}

func (r *MongoUserRepository) FindCustomersWithSkinTypeInRange(ctx context.Context, start, end time.Time) ([]models.User, error) {
	filter := bson.M{
		"createdAt": bson.M{"$gte": start, "$lte": end},
		"role":      models.RoleCustomer,
		"skinType":  bson.M{"$ne": nil},
	}
	return r.find(ctx, filter)
}

func (r *MongoUserRepository) find(ctx context.Context, filter bson.M) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
