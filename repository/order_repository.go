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

// OrderRepository defines order data access.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus, reason string) (*models.Order, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID, appTransID string) (*models.Order, error)
	// FindByDateRange returns orders with orderDate in [start, end]
	// (inclusive), newest first. A nil status applies no status
	// predicate; a pointer to the zero status matches only orders whose
	// status field is null or absent; any other value is an equality
	// filter.
	FindByDateRange(ctx context.Context, start, end time.Time, status *models.OrderStatus) ([]models.Order, error)
}

// MongoOrderRepository implements OrderRepository on a mongo collection.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{collection: db.Collection("orders")}
}

func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) error {
	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return nil
}

func (r *MongoOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &order, nil
}

func (r *MongoOrderRepository) FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
	return r.find(ctx, bson.M{"customerId": customerID}, opts)
}

func (r *MongoOrderRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus, reason string) (*models.Order, error) {
	set := bson.M{"status": status}
	if status == models.OrderStatusCancel && reason != "" {
		set["reasonCancel"] = reason
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var order models.Order
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&order)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &order, nil
}

func (r *MongoOrderRepository) MarkPaid(ctx context.Context, id primitive.ObjectID, appTransID string) (*models.Order, error) {
	set := bson.M{"isPaid": true}
	if appTransID != "" {
		set["appTransId"] = appTransID
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var order models.Order
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&order)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &order, nil
}

func (r *MongoOrderRepository) FindByDateRange(ctx context.Context, start, end time.Time, status *models.OrderStatus) ([]models.Order, error) {
	filter := bson.M{"orderDate": bson.M{"$gte": start, "$lte": end}}
	if status != nil {
		if *status == "" {
			filter["status"] = nil
		} else {
			filter["status"] = *status
		}
	}
	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
	return r.find(ctx, filter, opts)
}

func (r *MongoOrderRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
