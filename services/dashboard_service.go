package services

import (
	"context"
	"time"

	"github.com/dhp131/beaute-project-BE/models"
	"github.com/dhp131/beaute-project-BE/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DashboardService answers date-ranged reporting queries over orders and
// accounts. Every method returns a result envelope or a *ServiceError;
// nothing is propagated by panic.
type DashboardService interface {
	// OrdersInRange returns orders with orderDate in
	// [start, endOfDay(end)], line-item product refs populated, newest
	// first.
	OrdersInRange(ctx context.Context, start, end time.Time) (*models.OrderReport, *ServiceError)
	// OrdersInRangeByStatus is OrdersInRange with a status predicate.
	// A nil status applies no predicate; a pointer to the zero status
	// matches only orders whose status field is null or absent.
	OrdersInRangeByStatus(ctx context.Context, start, end time.Time, status *models.OrderStatus) (*models.OrderReport, *ServiceError)
	// AccountsByRoleInRange returns accounts created in the range whose
	// role set contains role. Role must be one of customer/staff/manager.
	AccountsByRoleInRange(ctx context.Context, start, end time.Time, role string) (*models.AccountReport, *ServiceError)
	// CustomersCompletedQuizInRange returns customer accounts created in
	// the range that carry a skin type assignment.
	CustomersCompletedQuizInRange(ctx context.Context, start, end time.Time) (*models.AccountReport, *ServiceError)
}

type dashboardServiceImpl struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewDashboardService(
	orders repository.OrderRepository,
	users repository.UserRepository,
	products repository.ProductRepository,
	logger *zap.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		orders:   orders,
		users:    users,
		products: products,
		logger:   logger,
	}
}

// endOfDay pins t to 23:59:59.999 of its calendar day so the upper bound of
// a range covers the whole day regardless of the time-of-day supplied.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999*int(time.Millisecond), t.Location())
}

func (s *dashboardServiceImpl) OrdersInRange(ctx context.Context, start, end time.Time) (*models.OrderReport, *ServiceError) {
	return s.ordersInRange(ctx, start, end, nil)
}

func (s *dashboardServiceImpl) OrdersInRangeByStatus(ctx context.Context, start, end time.Time, status *models.OrderStatus) (*models.OrderReport, *ServiceError) {
	if status != nil && *status != "" && !models.ValidOrderStatus(*status) {
		return nil, badRequest("Invalid order status")
	}
	return s.ordersInRange(ctx, start, end, status)
}

func (s *dashboardServiceImpl) ordersInRange(ctx context.Context, start, end time.Time, status *models.OrderStatus) (*models.OrderReport, *ServiceError) {
	orders, err := s.orders.FindByDateRange(ctx, start, endOfDay(end), status)
	if err != nil {
		s.logger.Error("Order report query failed", zap.Error(err))
		return nil, internal("Failed to retrieve orders")
	}

	if err := s.populateProducts(ctx, orders); err != nil {
		s.logger.Error("Order report population failed", zap.Error(err))
		return nil, internal("Failed to retrieve orders")
	}

	if orders == nil {
		orders = []models.Order{}
	}
	return &models.OrderReport{
		Status:  200,
		OK:      true,
		Message: "Orders retrieved successfully",
		Data:    orders,
	}, nil
}

// populateProducts resolves each line item's product reference to the live
// product's name and inventory quantity. References to products that no
// longer exist are left unpopulated.
func (s *dashboardServiceImpl) populateProducts(ctx context.Context, orders []models.Order) error {
	seen := make(map[primitive.ObjectID]struct{})
	var ids []primitive.ObjectID
	for _, order := range orders {
		for _, item := range order.Products {
			if _, ok := seen[item.ProductID]; !ok {
				seen[item.ProductID] = struct{}{}
				ids = append(ids, item.ProductID)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}

	products, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	refs := make(map[primitive.ObjectID]*models.ProductRef, len(products))
	for i := range products {
		p := products[i]
		refs[p.ID] = &models.ProductRef{ID: p.ID, Name: p.Name, Quantity: p.Inventory}
	}

	for i := range orders {
		for j := range orders[i].Products {
			if ref, ok := refs[orders[i].Products[j].ProductID]; ok {
				orders[i].Products[j].Product = ref
			}
		}
	}
	return nil
}

func (s *dashboardServiceImpl) AccountsByRoleInRange(ctx context.Context, start, end time.Time, role string) (*models.AccountReport, *ServiceError) {
	if role == "" {
		return nil, badRequest("Missing role")
	}
	if !models.ValidRole(role) {
		return nil, badRequest("Invalid role")
	}

	users, err := s.users.FindByRoleInRange(ctx, start, endOfDay(end), role)
	if err != nil {
		s.logger.Error("Account report query failed", zap.String("role", role), zap.Error(err))
		return nil, internal("Failed to retrieve accounts")
	}
	return accountReport(users), nil
}

func (s *dashboardServiceImpl) CustomersCompletedQuizInRange(ctx context.Context, start, end time.Time) (*models.AccountReport, *ServiceError) {
	users, err := s.users.FindCustomersWithSkinTypeInRange(ctx, start, endOfDay(end))
	if err != nil {
		s.logger.Error("Quiz completion report query failed", zap.Error(err))
		return nil, internal("Failed to retrieve accounts")
	}
	return accountReport(users), nil
}

func accountReport(users []models.User) *models.AccountReport {
	if users == nil {
		users = []models.User{}
	}
	return &models.AccountReport{
		Status:   200,
		OK:       true,
		Message:  "Accounts retrieved successfully",
		Quantity: len(users),
		Data:     users,
	}
}
