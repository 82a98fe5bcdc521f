package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/config"
	"github.com/Skotchmaster/storefront/internal/db"
	"github.com/Skotchmaster/storefront/internal/hash"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/transport"
	"github.com/Skotchmaster/storefront/internal/validate"
)

type published struct {
	topic string
	key   string
	event Event
}

type recorder struct {
	mu   sync.Mutex
	sent []published
	err  error
}

func (r *recorder) PublishEvent(_ context.Context, topic, key string, event interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, published{topic: topic, key: key, event: event.(Event)})
	return nil
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.sent))
	for _, p := range r.sent {
		out = append(out, p.event.Type)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func InitTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(context.Background(), config.Config{DBDriver: config.DriverSQLite, DatabaseURL: "file::memory:"})
	require.NoError(t, err, "failed to connect to in-memory db")
	require.NoError(t, db.Migrate(gdb), "failed to migrate tables")
	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

type fixture struct {
	users    *UserService
	products *ProductService
	carts    *CartService
	items    *CartItemService
	orders   *OrderService
	lines    *OrderItemService
	reviews  *ReviewService
	events   *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := InitTestDB(t)
	ev := &recorder{}
	return &fixture{
		users:    NewUserService(repo.NewUserRepo(gdb), hash.NewBcrypt(bcrypt.MinCost), ev),
		products: NewProductService(repo.NewProductRepo(gdb), ev),
		carts:    NewCartService(repo.NewCartRepo(gdb), ev),
		items:    NewCartItemService(repo.NewCartItemRepo(gdb), ev),
		orders:   NewOrderService(repo.NewOrderRepo(gdb), ev),
		lines:    NewOrderItemService(repo.NewOrderItemRepo(gdb), ev),
		reviews:  NewReviewService(repo.NewReviewRepo(gdb), ev),
		events:   ev,
	}
}

func (f *fixture) seed(t *testing.T) (*models.User, *models.Product) {
	t.Helper()
	ctx := context.Background()
	u, err := f.users.Create(ctx, transport.CreateUserRequest{Username: ptr("alice"), Email: ptr("alice@x.io"), Password: ptr("x")})
	require.NoError(t, err)
	p, err := f.products.Create(ctx, transport.CreateProductRequest{Name: ptr("Shoe"), Price: ptr(10.0), Stock: ptr(5)})
	require.NoError(t, err)
	return u, p
}

func TestUserService_CreateHashesPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.users.Create(ctx, transport.CreateUserRequest{Username: ptr("alice"), Email: ptr("alice@x.io"), Password: ptr("x")})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "x", u.PasswordHash)
	assert.True(t, f.users.Hasher.Verify("x", u.PasswordHash))

	stored, err := f.users.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.PasswordHash, stored.PasswordHash)

	body, err := json.Marshal(stored)
	require.NoError(t, err)
	assert.NotContains(t, string(body), u.PasswordHash)

	assert.Equal(t, []string{"user_created"}, f.events.types())
	assert.Equal(t, TopicUsers, f.events.sent[0].topic)
}

func TestUserService_Duplicates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t)

	_, err := f.users.Create(ctx, transport.CreateUserRequest{Username: ptr("alice"), Email: ptr("other@x.io"), Password: ptr("x")})
	var ce *ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "username", ce.Field)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.users.Create(ctx, transport.CreateUserRequest{Username: ptr("bob"), Email: ptr("alice@x.io"), Password: ptr("x")})
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "email", ce.Field)

	all, err := f.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUserService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice, _ := f.seed(t)
	bob, err := f.users.Create(ctx, transport.CreateUserRequest{Username: ptr("bob"), Email: ptr("bob@x.io"), Password: ptr("y")})
	require.NoError(t, err)

	_, err = f.users.Update(ctx, 999, transport.UpdateUserRequest{})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.users.Update(ctx, bob.ID, transport.UpdateUserRequest{Username: ptr("alice"), Email: ptr("bob@x.io")})
	assert.ErrorIs(t, err, ErrConflict)

	same, err := f.users.Update(ctx, alice.ID, transport.UpdateUserRequest{Username: ptr("alice"), Email: ptr("alice@x.io")})
	require.NoError(t, err)
	assert.Equal(t, alice.PasswordHash, same.PasswordHash)

	changed, err := f.users.Update(ctx, alice.ID, transport.UpdateUserRequest{Username: ptr("alicia"), Email: ptr("alice@x.io"), Password: ptr("new")})
	require.NoError(t, err)
	assert.Equal(t, "alicia", changed.Username)
	assert.True(t, f.users.Hasher.Verify("new", changed.PasswordHash))

	_, err = f.users.Update(ctx, alice.ID, transport.UpdateUserRequest{Email: ptr("a@b.c")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserService_VerifyCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice, _ := f.seed(t)

	got, err := f.users.VerifyCredentials(ctx, "alice", "x")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = f.users.VerifyCredentials(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.users.VerifyCredentials(ctx, "nobody", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProductService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.products.Create(ctx, transport.CreateProductRequest{Name: ptr("Shoe"), Price: ptr(-1.0), Stock: ptr(5)})
	reason, ok := validate.ReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, validate.InvalidRange, reason)

	p, err := f.products.Create(ctx, transport.CreateProductRequest{Name: ptr("Shoe"), Price: ptr(10.0), Stock: ptr(5)})
	require.NoError(t, err)

	_, err = f.products.Create(ctx, transport.CreateProductRequest{Name: ptr("Shoe"), Price: ptr(11.0), Stock: ptr(1)})
	var ce *ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "product name already exists", ce.Error())

	updated, err := f.products.Update(ctx, p.ID, transport.UpdateProductRequest{Stock: ptr(2)})
	require.NoError(t, err)
	assert.Equal(t, "Shoe", updated.Name)
	assert.Equal(t, 2, updated.Stock)

	require.NoError(t, f.products.Delete(ctx, p.ID))
	_, err = f.products.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{"product_created", "product_updated", "product_deleted"}, f.events.types())
}

func TestLineServices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, p := f.seed(t)

	_, err := f.carts.Create(ctx, transport.CartRequest{UserID: ptr(uint(999)), ProductID: ptr(p.ID), Quantity: ptr(1)})
	assert.ErrorIs(t, err, ErrInvalidReference)

	_, err = f.carts.Create(ctx, transport.CartRequest{UserID: ptr(u.ID), ProductID: ptr(p.ID), Quantity: ptr(0)})
	assert.ErrorIs(t, err, ErrValidation)

	cart, err := f.carts.Create(ctx, transport.CartRequest{UserID: ptr(u.ID), ProductID: ptr(p.ID), Quantity: ptr(1)})
	require.NoError(t, err)

	item, err := f.items.Create(ctx, transport.CartItemRequest{CartID: ptr(cart.ID), ProductID: ptr(p.ID), Quantity: ptr(2)})
	require.NoError(t, err)

	_, err = f.carts.Update(ctx, 999, transport.CartRequest{Quantity: ptr(0)})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, f.carts.Delete(ctx, cart.ID), ErrHasDependents)
	assert.ErrorIs(t, f.products.Delete(ctx, p.ID), ErrHasDependents)
	require.NoError(t, f.items.Delete(ctx, item.ID))
	require.NoError(t, f.carts.Delete(ctx, cart.ID))

	order, err := f.orders.Create(ctx, transport.OrderRequest{UserID: ptr(u.ID), ProductID: ptr(p.ID), Quantity: ptr(3)})
	require.NoError(t, err)
	line, err := f.lines.Create(ctx, transport.OrderItemRequest{OrderID: ptr(order.ID), ProductID: ptr(p.ID), Quantity: ptr(3)})
	require.NoError(t, err)

	line, err = f.lines.Update(ctx, line.ID, transport.OrderItemRequest{Quantity: ptr(4)})
	require.NoError(t, err)
	assert.Equal(t, 4, line.Quantity)

	_, err = f.orders.Update(ctx, order.ID, transport.OrderRequest{Quantity: ptr(1), UserID: ptr(uint(999))})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestReviewService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, p := f.seed(t)

	_, err := f.reviews.Create(ctx, transport.ReviewRequest{UserID: ptr(u.ID), ProductID: ptr(p.ID), Rating: ptr(6)})
	assert.ErrorIs(t, err, ErrValidation)

	var req transport.ReviewRequest
	require.NoError(t, json.Unmarshal([]byte(`{"user_id":1,"product_id":1,"rating":5,"comment":"great"}`), &req))
	r, err := f.reviews.Create(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, r.Comment)

	var clear transport.ReviewRequest
	require.NoError(t, json.Unmarshal([]byte(`{"rating":1,"comment":null}`), &clear))
	r, err = f.reviews.Update(ctx, r.ID, clear)
	require.NoError(t, err)
	assert.Nil(t, r.Comment)
	assert.Equal(t, 1, r.Rating)
}

func TestPublishFailureDoesNotFailWrite(t *testing.T) {
	f := newFixture(t)
	f.events.err = errors.New("broker down")

	p, err := f.products.Create(context.Background(), transport.CreateProductRequest{Name: ptr("Shoe"), Price: ptr(10.0), Stock: ptr(5)})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
}

func TestEventPayloadsUseResponseShape(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u, p := f.seed(t)

	_, err := f.carts.Create(ctx, transport.CartRequest{UserID: ptr(u.ID), ProductID: ptr(p.ID), Quantity: ptr(2)})
	require.NoError(t, err)

	f.events.mu.Lock()
	sent := append([]published(nil), f.events.sent...)
	f.events.mu.Unlock()
	require.Len(t, sent, 3)

	user, ok := sent[0].event.Data.(transport.UserResponse)
	require.True(t, ok, "%T", sent[0].event.Data)
	assert.Equal(t, u.ID, user.ID)

	body, err := json.Marshal(sent[0].event)
	require.NoError(t, err)
	assert.NotContains(t, string(body), u.PasswordHash)

	assert.Equal(t, "cart_created", sent[2].event.Type)
	body, err = json.Marshal(sent[2].event)
	require.NoError(t, err)
	var decoded struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, float64(u.ID), decoded.Data["user_id"])
	assert.Equal(t, float64(2), decoded.Data["quantity"])
	assert.NotContains(t, decoded.Data, "UserID")
}
