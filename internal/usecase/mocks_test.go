package usecase_test

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: ProductRepository
// =====================

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(ctx context.Context, category string) ([]model.Product, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, q string) ([]model.Product, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) ListCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	cp, _ := args.Get(0).(model.Product)
	return cp, args.Error(1)
}

// =====================
// Mock: CartRepository
// =====================

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetOrCreateByIdentity(ctx context.Context, ident model.Identity) (model.Cart, error) {
	args := m.Called(ctx, ident)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) FindByIdentity(ctx context.Context, ident model.Identity) (model.Cart, error) {
	args := m.Called(ctx, ident)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *MockCartRepository) Clear(ctx context.Context, cartID int64) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

// =====================
// Mock: CartItemRepository
// =====================

type MockCartItemRepository struct {
	mock.Mock
}

func (m *MockCartItemRepository) ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	return args.Get(0).([]model.CartItem), args.Error(1)
}

func (m *MockCartItemRepository) UpsertAdd(ctx context.Context, cartID int64, productID int64, addQty int64) error {
	args := m.Called(ctx, cartID, productID, addQty)
	return args.Error(0)
}

func (m *MockCartItemRepository) SetQuantity(ctx context.Context, cartID int64, productID int64, qty int64) error {
	args := m.Called(ctx, cartID, productID, qty)
	return args.Error(0)
}

func (m *MockCartItemRepository) DeleteByProduct(ctx context.Context, cartID int64, productID int64) error {
	args := m.Called(ctx, cartID, productID)
	return args.Error(0)
}

// =====================
// Mock: OrderRepository
// =====================

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByIdempotencyKey(ctx context.Context, key string) (model.Order, bool, error) {
	args := m.Called(ctx, key)
	o, _ := args.Get(0).(model.Order)
	return o, args.Bool(1), args.Error(2)
}

// =====================
// Mock: OrderItemRepository
// =====================

type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *MockOrderItemRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]model.OrderItem), args.Error(1)
}

// =====================
// Mock: UserRepository
// =====================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

// =====================
// Mock: NewsletterRepository
// =====================

type MockNewsletterRepository struct {
	mock.Mock
}

func (m *MockNewsletterRepository) FindByEmail(ctx context.Context, email string) (model.NewsletterSubscription, error) {
	args := m.Called(ctx, email)
	s, _ := args.Get(0).(model.NewsletterSubscription)
	return s, args.Error(1)
}

func (m *MockNewsletterRepository) Create(ctx context.Context, sub model.NewsletterSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockNewsletterRepository) SetSubscribed(ctx context.Context, id int64, subscribed bool) error {
	args := m.Called(ctx, id, subscribed)
	return args.Error(0)
}

// =====================
// Txを素通しするTransactionManager
// =====================

type stubTxRepos struct {
	orders     *MockOrderRepository
	orderItems *MockOrderItemRepository
	carts      *MockCartRepository
	cartItems  *MockCartItemRepository
	products   *MockProductRepository
}

func (r *stubTxRepos) Orders() repo.OrderRepository         { return r.orders }
func (r *stubTxRepos) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *stubTxRepos) Carts() repo.CartRepository           { return r.carts }
func (r *stubTxRepos) CartItems() repo.CartItemRepository   { return r.cartItems }
func (r *stubTxRepos) Products() repo.ProductRepository     { return r.products }

type stubTxManager struct {
	repos *stubTxRepos
}

func newStubTxManager() *stubTxManager {
	return &stubTxManager{
		repos: &stubTxRepos{
			orders:     new(MockOrderRepository),
			orderItems: new(MockOrderItemRepository),
			carts:      new(MockCartRepository),
			cartItems:  new(MockCartItemRepository),
			products:   new(MockProductRepository),
		},
	}
}

func (tm *stubTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(tm.repos)
}
