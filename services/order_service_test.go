package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dhp131/beaute-project-BE/models"
	"github.com/dhp131/beaute-project-BE/repository"
	"github.com/dhp131/beaute-project-BE/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// fnOrderRepo is a configurable order repository mock.
type fnOrderRepo struct {
	mockOrderRepo

	createFn       func(ctx context.Context, o *models.Order) error
	updateStatusFn func(ctx context.Context, id primitive.ObjectID, status models.OrderStatus, reason string) (*models.Order, error)
}

func (m *fnOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.createFn != nil {
		return m.createFn(ctx, o)
	}
	o.ID = primitive.NewObjectID()
	return nil
}
func (m *fnOrderRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OrderStatus, reason string) (*models.Order, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status, reason)
	}
	return nil, repository.ErrNotFound
}

// recordingPublisher captures published status events.
type recordingPublisher struct {
	events []models.OrderStatusEvent
	err    error
}

func (p *recordingPublisher) PublishStatusChange(_ context.Context, event models.OrderStatusEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

func newOrderService(repo *fnOrderRepo, products *fnProductRepo, publisher services.StatusPublisher) services.OrderService {
	if repo == nil {
		repo = &fnOrderRepo{}
	}
	if products == nil {
		products = &fnProductRepo{}
	}
	logger, _ := zap.NewDevelopment()
	return services.NewOrderService(repo, products, publisher, logger)
}

func TestOrderCreate_SnapshotsAndTotals(t *testing.T) {
	productID := primitive.NewObjectID()
	products := &fnProductRepo{
		findByIDFn: func(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
			return &models.Product{
				ID: id, Name: "Night Cream", Image: "cream.jpg",
				Price: 100, Discount: 10, Inventory: 5,
			}, nil
		},
		incrementFn: func(_ context.Context, id primitive.ObjectID, quantity int) (*models.Product, error) {
			return &models.Product{ID: id}, nil
		},
	}
	svc := newOrderService(nil, products, nil)

	order, se := svc.Create(context.Background(), primitive.NewObjectID().Hex(), &models.CreateOrderRequest{
		Address: "12 Rue de Rivoli",
		Products: []models.CreateOrderItemRequest{
			{ProductID: productID.Hex(), Quantity: 2},
		},
	})

	require.Nil(t, se)
	require.Len(t, order.Products, 1)
	item := order.Products[0]
	assert.Equal(t, "Night Cream", item.Name)
	assert.Equal(t, "cream.jpg", item.Image)
	assert.Equal(t, 100.0, item.Price)
	assert.Equal(t, 10.0, item.ProductDiscount)
	assert.InDelta(t, 180.0, item.TotalPriceAfterDiscount, 1e-9)
	assert.InDelta(t, 180.0, order.Amount, 1e-9)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.AppTransID)
	assert.False(t, order.IsPaid)
}

func TestOrderCreate_InsufficientInventory(t *testing.T) {
	products := &fnProductRepo{
		findByIDFn: func(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
			return &models.Product{ID: id, Name: "Essence", Price: 30, Inventory: 1}, nil
		},
	}
	svc := newOrderService(nil, products, nil)

	_, se := svc.Create(context.Background(), primitive.NewObjectID().Hex(), &models.CreateOrderRequest{
		Address: "somewhere",
		Products: []models.CreateOrderItemRequest{
			{ProductID: primitive.NewObjectID().Hex(), Quantity: 3},
		},
	})

	require.NotNil(t, se)
	assert.Equal(t, 400, se.StatusCode)
}

func TestOrderCreate_UnknownProduct(t *testing.T) {
	svc := newOrderService(nil, nil, nil)

	_, se := svc.Create(context.Background(), primitive.NewObjectID().Hex(), &models.CreateOrderRequest{
		Address: "somewhere",
		Products: []models.CreateOrderItemRequest{
			{ProductID: primitive.NewObjectID().Hex(), Quantity: 1},
		},
	})

	require.NotNil(t, se)
	assert.Equal(t, 404, se.StatusCode)
}

func TestOrderUpdateStatus_PublishesEvent(t *testing.T) {
	orderID := primitive.NewObjectID()
	customerID := primitive.NewObjectID()
	repo := &fnOrderRepo{
		updateStatusFn: func(_ context.Context, id primitive.ObjectID, status models.OrderStatus, reason string) (*models.Order, error) {
			return &models.Order{ID: id, CustomerID: customerID, Status: status, ReasonCancel: reason}, nil
		},
	}
	publisher := &recordingPublisher{}
	svc := newOrderService(repo, nil, publisher)

	order, se := svc.UpdateStatus(context.Background(), orderID.Hex(), &models.UpdateOrderStatusRequest{
		Status: models.OrderStatusCancel,
		Reason: "changed my mind",
	})

	require.Nil(t, se)
	assert.Equal(t, models.OrderStatusCancel, order.Status)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, orderID.Hex(), publisher.events[0].OrderID)
	assert.Equal(t, models.OrderStatusCancel, publisher.events[0].Status)
	assert.Equal(t, "changed my mind", publisher.events[0].Reason)
}

func TestOrderUpdateStatus_PublisherFailureIsNonFatal(t *testing.T) {
	repo := &fnOrderRepo{
		updateStatusFn: func(_ context.Context, id primitive.ObjectID, status models.OrderStatus, _ string) (*models.Order, error) {
			return &models.Order{ID: id, Status: status}, nil
		},
	}
	svc := newOrderService(repo, nil, &recordingPublisher{err: errors.New("broker down")})

	_, se := svc.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), &models.UpdateOrderStatusRequest{
		Status: models.OrderStatusApproved,
	})

	assert.Nil(t, se)
}

func TestOrderUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newOrderService(nil, nil, nil)

	_, se := svc.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), &models.UpdateOrderStatusRequest{
		Status: "Refunded",
	})

	require.NotNil(t, se)
	assert.Equal(t, 400, se.StatusCode)
}

func TestOrderGetByID_NotFound(t *testing.T) {
	svc := newOrderService(nil, nil, nil)

	_, se := svc.GetByID(context.Background(), primitive.NewObjectID().Hex())

	require.NotNil(t, se)
	assert.Equal(t, 404, se.StatusCode)
}
