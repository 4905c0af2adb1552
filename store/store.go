package store

import (
	"context"
	"errors"

	"github.com/voltkart/voltkart-api/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// Store is the persistence adapter shared by both backends. Every method
// takes the request context so store calls stop when the request does.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	InsertProducts(ctx context.Context, products []models.Product) error

	UpsertCartLine(ctx context.Context, line *models.CartLine) error
	GetCart(ctx context.Context, userID string) ([]models.CartView, error)

	CreateOrder(ctx context.Context, order *models.Order) error
	ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListAllOrders(ctx context.Context) ([]models.Order, error)

	CreateAddress(ctx context.Context, address *models.Address) error
	ListAddressesByUser(ctx context.Context, userID string) ([]models.Address, error)

	Close(ctx context.Context) error
}

// mergeCartViews joins cart lines against their catalog products. Lines whose
// product has disappeared from the catalog are kept with empty display fields
// rather than dropped, so the cart count stays honest.
func mergeCartViews(lines []models.CartLine, products []models.Product) []models.CartView {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	views := make([]models.CartView, 0, len(lines))
	for _, line := range lines {
		view := models.CartView{
			ID:        line.ID,
			UserID:    line.UserID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		}
		if p, ok := byID[line.ProductID]; ok {
			view.Name = p.Name
			view.Price = p.Price
			view.Image = p.Image
		}
		views = append(views, view)
	}
	return views
}

func productIDs(lines []models.CartLine) []string {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}
	return ids
}
