// Package repotest provides in-memory repositories for tests. They follow the
// Mongo repositories' contracts, including the sentinel errors.
package repotest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Products ---

type ProductRepository struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	items map[primitive.ObjectID]models.Product
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository(seed ...models.Product) *ProductRepository {
	r := &ProductRepository{items: make(map[primitive.ObjectID]models.Product)}
	for i := range seed {
		_ = r.Create(context.Background(), &seed[i])
	}
	return r
}

func (r *ProductRepository) Create(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	r.order = append(r.order, p.ID)
	r.items[p.ID] = *p
	return nil
}

func (r *ProductRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *ProductRepository) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Product{}
	for _, id := range ids {
		if p, ok := r.items[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ProductRepository) FindAll(_ context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(models.Product) bool { return true }), nil
}

func (r *ProductRepository) Search(_ context.Context, name, description string) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter(func(p models.Product) bool {
		return containsFold(p.Name, name) && containsFold(p.Description, description)
	}), nil
}

func (r *ProductRepository) FindTopRated(_ context.Context, limit int64) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.filter(func(models.Product) bool { return true })
	sort.SliceStable(all, func(i, j int) bool { return all[i].Ratings > all[j].Ratings })
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *ProductRepository) Update(_ context.Context, id primitive.ObjectID, patch *models.UpdateProductRequest) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Ratings != nil {
		p.Ratings = *patch.Ratings
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	p.UpdatedAt = time.Now().UTC()
	r.items[id] = p
	return &p, nil
}

func (r *ProductRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *ProductRepository) AdjustQuantity(_ context.Context, id primitive.ObjectID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	if p.Quantity+delta < 0 {
		return repository.ErrInsufficientStock
	}
	p.Quantity += delta
	r.items[id] = p
	return nil
}

func (r *ProductRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.items)), nil
}

func (r *ProductRepository) ListInventory(_ context.Context) ([]models.ProductInventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.ProductInventory{}
	for _, p := range r.filter(func(models.Product) bool { return true }) {
		out = append(out, models.ProductInventory{ID: p.ID, Name: p.Name, Quantity: p.Quantity})
	}
	return out, nil
}

func (r *ProductRepository) filter(keep func(models.Product) bool) []models.Product {
	out := []models.Product{}
	for _, id := range r.order {
		if p, ok := r.items[id]; ok && keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(s, sub string) bool {
	return sub == "" || strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// --- Carts ---

type CartRepository struct {
	mu    sync.Mutex
	carts map[primitive.ObjectID]*models.Cart
	// ClearErr, when set, is returned by Clear.
	ClearErr error
}

var _ repository.CartRepository = (*CartRepository)(nil)

func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[primitive.ObjectID]*models.Cart)}
}

func (r *CartRepository) FindByUser(_ context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneCart(cart), nil
}

func (r *CartRepository) AddItem(_ context.Context, userID, productID primitive.ObjectID, quantity int) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	cart, ok := r.carts[userID]
	if !ok {
		cart = &models.Cart{ID: primitive.NewObjectID(), UserID: userID, CreatedAt: now}
		r.carts[userID] = cart
	}
	cart.UpdatedAt = now
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += quantity
			return cloneCart(cart), nil
		}
	}
	cart.Items = append(cart.Items, models.CartItem{ID: primitive.NewObjectID(), ProductID: productID, Quantity: quantity})
	return cloneCart(cart), nil
}

func (r *CartRepository) SetItemQuantity(_ context.Context, userID, itemID primitive.ObjectID, quantity int) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = quantity
			return cloneCart(cart), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *CartRepository) RemoveItem(_ context.Context, userID, itemID primitive.ObjectID) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	return cloneCart(cart), nil
}

func (r *CartRepository) SetDiscount(_ context.Context, userID primitive.ObjectID, percentage float64) (*models.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cart.DiscountPercentage = percentage
	return cloneCart(cart), nil
}

func (r *CartRepository) Clear(_ context.Context, userID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ClearErr != nil {
		return r.ClearErr
	}
	cart, ok := r.carts[userID]
	if !ok {
		return repository.ErrNotFound
	}
	cart.Items = []models.CartItem{}
	cart.DiscountPercentage = 0
	return nil
}

func cloneCart(c *models.Cart) *models.Cart {
	out := *c
	out.Items = append([]models.CartItem{}, c.Items...)
	return &out
}

// --- Orders ---

type OrderRepository struct {
	mu     sync.Mutex
	order  []primitive.ObjectID
	orders map[primitive.ObjectID]models.Order
}

var _ repository.OrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(seed ...models.Order) *OrderRepository {
	r := &OrderRepository{orders: make(map[primitive.ObjectID]models.Order)}
	for i := range seed {
		_ = r.Create(context.Background(), &seed[i])
	}
	return r
}

func (r *OrderRepository) Create(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now
	r.order = append(r.order, o.ID)
	r.orders[o.ID] = *o
	return nil
}

func (r *OrderRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (r *OrderRepository) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Order{}
	for i := len(r.order) - 1; i >= 0; i-- {
		if o, ok := r.orders[r.order[i]]; ok && o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderRepository) FindAll(_ context.Context) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Order{}
	for _, id := range r.order {
		if o, ok := r.orders[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderRepository) Replace(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.ID]; !ok {
		return repository.ErrNotFound
	}
	o.UpdatedAt = time.Now().UTC()
	r.orders[o.ID] = *o
	return nil
}

func (r *OrderRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *OrderRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}

func (r *OrderRepository) TotalRevenue(_ context.Context) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, o := range r.orders {
		total += o.TotalAmount
	}
	return total, nil
}

// --- Blogs ---

type BlogRepository struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	blogs map[primitive.ObjectID]*models.Blog
}

var _ repository.BlogRepository = (*BlogRepository)(nil)

func NewBlogRepository(seed ...models.Blog) *BlogRepository {
	r := &BlogRepository{blogs: make(map[primitive.ObjectID]*models.Blog)}
	for i := range seed {
		_ = r.Create(context.Background(), &seed[i])
	}
	return r
}

func (r *BlogRepository) Create(_ context.Context, b *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now
	if b.Comments == nil {
		b.Comments = []models.Comment{}
	}
	r.order = append(r.order, b.ID)
	r.blogs[b.ID] = cloneBlog(b)
	return nil
}

func (r *BlogRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneBlog(b), nil
}

func (r *BlogRepository) FindAll(_ context.Context) ([]models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.all(), nil
}

func (r *BlogRepository) FindMostLiked(_ context.Context, limit int64) ([]models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.all()
	sort.SliceStable(all, func(i, j int) bool { return all[i].Likes > all[j].Likes })
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *BlogRepository) Update(_ context.Context, id primitive.ObjectID, patch *models.UpdateBlogRequest) (*models.Blog, error) {
	return r.mutate(id, func(b *models.Blog) bool {
		if patch.Title != nil {
			b.Title = *patch.Title
		}
		if patch.Content != nil {
			b.Content = *patch.Content
		}
		if patch.Category != nil {
			b.Category = *patch.Category
		}
		return true
	})
}

func (r *BlogRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blogs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.blogs, id)
	return nil
}

func (r *BlogRepository) AddComment(_ context.Context, blogID primitive.ObjectID, comment models.Comment) (*models.Blog, error) {
	return r.mutate(blogID, func(b *models.Blog) bool {
		b.Comments = append(b.Comments, comment)
		return true
	})
}

func (r *BlogRepository) UpdateComment(_ context.Context, blogID, commentID primitive.ObjectID, content string) (*models.Blog, error) {
	return r.mutate(blogID, func(b *models.Blog) bool {
		for i := range b.Comments {
			if b.Comments[i].ID == commentID {
				b.Comments[i].Content = content
				return true
			}
		}
		return false
	})
}

func (r *BlogRepository) RemoveComment(_ context.Context, blogID, commentID primitive.ObjectID) (*models.Blog, error) {
	return r.mutate(blogID, func(b *models.Blog) bool {
		kept := []models.Comment{}
		for _, c := range b.Comments {
			if c.ID != commentID {
				kept = append(kept, c)
			}
		}
		b.Comments = kept
		return true
	})
}

func (r *BlogRepository) IncrementLikes(_ context.Context, id primitive.ObjectID) (*models.Blog, error) {
	return r.mutate(id, func(b *models.Blog) bool {
		b.Likes++
		return true
	})
}

func (r *BlogRepository) DistinctCategories(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, b := range r.all() {
		if !seen[b.Category] {
			seen[b.Category] = true
			out = append(out, b.Category)
		}
	}
	return out, nil
}

func (r *BlogRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.blogs)), nil
}

// mutate applies fn under the lock; fn returning false reports ErrNotFound.
func (r *BlogRepository) mutate(id primitive.ObjectID, fn func(*models.Blog) bool) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.blogs[id]
	if !ok || !fn(b) {
		return nil, repository.ErrNotFound
	}
	b.UpdatedAt = time.Now().UTC()
	return cloneBlog(b), nil
}

func (r *BlogRepository) all() []models.Blog {
	out := []models.Blog{}
	for _, id := range r.order {
		if b, ok := r.blogs[id]; ok {
			out = append(out, *cloneBlog(b))
		}
	}
	return out
}

func cloneBlog(b *models.Blog) *models.Blog {
	out := *b
	out.Comments = append([]models.Comment{}, b.Comments...)
	return &out
}
