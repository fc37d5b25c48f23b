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

// ProductRepository defines catalog data access.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	FindByCategory(ctx context.Context, category string) ([]models.Product, error)
	FindByPriceRange(ctx context.Context, min, max float64) ([]models.Product, error)
	FindBySkinType(ctx context.Context, skinTypeID primitive.ObjectID) ([]models.Product, error)
	FindByUsageTime(ctx context.Context, usageTime string) ([]models.Product, error)
	FindByOrigin(ctx context.Context, origin string) ([]models.Product, error)
	IncrementInventory(ctx context.Context, id primitive.ObjectID, quantity int) (*models.Product, error)
}

// MongoProductRepository implements ProductRepository on a mongo collection.
type MongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{collection: db.Collection("products")}
}

func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	product.CreatedAt = time.Now().UTC()
	res, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

func (r *MongoProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &product, nil
}

func (r *MongoProductRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// Update applies a partial $set and returns the updated document
// (findByIdAndUpdate semantics).
func (r *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, updates bson.M) (*models.Product, error) {
	updates["updatedAt"] = time.Now().UTC()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var product models.Product
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": updates}, opts).Decode(&product)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &product, nil
}

// Delete removes the document and returns it (findByIdAndDelete semantics).
func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &product, nil
}

func (r *MongoProductRepository) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *MongoProductRepository) FindByPriceRange(ctx context.Context, min, max float64) ([]models.Product, error) {
	return r.find(ctx, bson.M{"price": bson.M{"$gte": min, "$lte": max}})
}

func (r *MongoProductRepository) FindBySkinType(ctx context.Context, skinTypeID primitive.ObjectID) ([]models.Product, error) {
	return r.find(ctx, bson.M{"skinTypeId": skinTypeID})
}

func (r *MongoProductRepository) FindByUsageTime(ctx context.Context, usageTime string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"usageTime": usageTime})
}

func (r *MongoProductRepository) FindByOrigin(ctx context.Context, origin string) ([]models.Product, error) {
	return r.find(ctx, bson.M{"origin": origin})
}

// IncrementInventory atomically adjusts stock by a signed delta.
func (r *MongoProductRepository) IncrementInventory(ctx context.Context, id primitive.ObjectID, quantity int) (*models.Product, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{
		"$inc": bson.M{"inventory": quantity},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	var product models.Product
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&product)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &product, nil
}

func (r *MongoProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
