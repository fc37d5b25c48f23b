package services

import (
	"context"
	"errors"
	"time"

	"github.com/dhp131/beaute-project-BE/models"
	"github.com/dhp131/beaute-project-BE/repository"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// StatusPublisher emits order status change events. A nil publisher
// disables event emission.
type StatusPublisher interface {
	PublishStatusChange(ctx context.Context, event models.OrderStatusEvent) error
}

// OrderService handles order lifecycle logic.
type OrderService interface {
	Create(ctx context.Context, customerID string, req *models.CreateOrderRequest) (*models.Order, *ServiceError)
	GetByID(ctx context.Context, id string) (*models.Order, *ServiceError)
	GetByCustomer(ctx context.Context, customerID string) ([]models.Order, *ServiceError)
	UpdateStatus(ctx context.Context, id string, req *models.UpdateOrderStatusRequest) (*models.Order, *ServiceError)
	MarkPaid(ctx context.Context, id string) (*models.Order, *ServiceError)
}

type orderServiceImpl struct {
	repo      repository.OrderRepository
	products  repository.ProductRepository
	publisher StatusPublisher
	logger    *zap.Logger
}

func NewOrderService(
	repo repository.OrderRepository,
	products repository.ProductRepository,
	publisher StatusPublisher,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{repo: repo, products: products, publisher: publisher, logger: logger}
}

// Create snapshots the referenced products into line items, computes the
// discounted totals, reserves inventory and persists the order with a fresh
// payment transaction id.
func (s *orderServiceImpl) Create(ctx context.Context, customerID string, req *models.CreateOrderRequest) (*models.Order, *ServiceError) {
	cid, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, badRequest("Invalid customer ID")
	}

	items := make([]models.OrderItem, 0, len(req.Products))
	amount := 0.0
	for _, line := range req.Products {
		pid, err := primitive.ObjectIDFromHex(line.ProductID)
		if err != nil {
			return nil, badRequest("Invalid product ID")
		}
		product, err := s.products.FindByID(ctx, pid)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, notFound("Product not found: " + line.ProductID)
			}
			s.logger.Error("Failed to load product for order", zap.String("productId", line.ProductID), zap.Error(err))
			return nil, internal("Failed to create order")
		}
		if product.Inventory < line.Quantity {
			return nil, badRequest("Insufficient inventory for product: " + product.Name)
		}

		total := product.Price * float64(line.Quantity) * (1 - product.Discount/100)
		items = append(items, models.OrderItem{
			ProductID:               product.ID,
			Image:                   product.Image,
			Name:                    product.Name,
			Quantity:                line.Quantity,
			Price:                   product.Price,
			ProductDiscount:         product.Discount,
			TotalPriceAfterDiscount: total,
		})
		amount += total
	}

	order := &models.Order{
		CustomerID: cid,
		Amount:     amount,
		Address:    req.Address,
		Status:     models.OrderStatusPending,
		OrderDate:  time.Now().UTC(),
		Products:   items,
		AppTransID: uuid.NewString(),
	}
	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, internal("Failed to create order")
	}

	for _, item := range items {
		if _, err := s.products.IncrementInventory(ctx, item.ProductID, -item.Quantity); err != nil {
			// The order exists; a failed reservation is reported, not
			// rolled back (last-write-wins store, no transactions).
			s.logger.Warn("Inventory reservation failed",
				zap.String("orderId", order.ID.Hex()),
				zap.String("productId", item.ProductID.Hex()),
				zap.Error(err))
		}
	}

	s.logger.Info("Order created",
		zap.String("id", order.ID.Hex()),
		zap.String("customerId", customerID),
		zap.Float64("amount", amount))
	return order, nil
}

func (s *orderServiceImpl) GetByID(ctx context.Context, id string) (*models.Order, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, badRequest("Invalid order ID")
	}
	order, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Order not found")
		}
		s.logger.Error("Failed to retrieve order", zap.String("id", id), zap.Error(err))
		return nil, internal("Failed to retrieve order")
	}
	return order, nil
}

func (s *orderServiceImpl) GetByCustomer(ctx context.Context, customerID string) ([]models.Order, *ServiceError) {
	cid, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, badRequest("Invalid customer ID")
	}
	orders, err := s.repo.FindByCustomer(ctx, cid)
	if err != nil {
		s.logger.Error("Failed to retrieve orders", zap.String("customerId", customerID), zap.Error(err))
		return nil, internal("Failed to retrieve orders")
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// UpdateStatus sets the order status directly. Transitions are not
// validated as a state machine; only enum membership is enforced.
func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id string, req *models.UpdateOrderStatusRequest) (*models.Order, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, badRequest("Invalid order ID")
	}
	if !models.ValidOrderStatus(req.Status) {
		return nil, badRequest("Invalid order status")
	}

	order, err := s.repo.UpdateStatus(ctx, oid, req.Status, req.Reason)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Order not found")
		}
		s.logger.Error("Failed to update order status", zap.String("id", id), zap.Error(err))
		return nil, internal("Failed to update order status")
	}

	if s.publisher != nil {
		event := models.OrderStatusEvent{
			OrderID:    order.ID.Hex(),
			CustomerID: order.CustomerID.Hex(),
			Status:     order.Status,
			Reason:     order.ReasonCancel,
			OccurredAt: time.Now().UTC(),
		}
		if err := s.publisher.PublishStatusChange(ctx, event); err != nil {
			s.logger.Warn("Failed to publish order status event",
				zap.String("orderId", event.OrderID),
				zap.Error(err))
		}
	}

	s.logger.Info("Order status updated",
		zap.String("id", id),
		zap.String("status", string(req.Status)))
	return order, nil
}

func (s *orderServiceImpl) MarkPaid(ctx context.Context, id string) (*models.Order, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, badRequest("Invalid order ID")
	}
	order, err := s.repo.MarkPaid(ctx, oid, "")
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Order not found")
		}
		s.logger.Error("Failed to mark order paid", zap.String("id", id), zap.Error(err))
		return nil, internal("Failed to mark order paid")
	}
	return order, nil
}
