package store

import (
	"context"

	"github.com/voltkart/voltkart-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to the configured MongoDB deployment and pings it
// before handing the store out. The document variant carries no uniqueness
// or referential constraints; those invariants live in the handlers.
func NewMongoStore(ctx context.Context, uri, dbName string) (Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &mongoStore{client: client, db: client.Database(dbName)}, nil
}

func (s *mongoStore) users() *mongo.Collection     { return s.db.Collection("users") }
func (s *mongoStore) products() *mongo.Collection  { return s.db.Collection("products") }
func (s *mongoStore) cart() *mongo.Collection      { return s.db.Collection("cart") }
func (s *mongoStore) orders() *mongo.Collection    { return s.db.Collection("orders") }
func (s *mongoStore) addresses() *mongo.Collection { return s.db.Collection("addresses") }

func (s *mongoStore) CreateUser(ctx context.Context, user *models.User) error {
	_, err := s.users().InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict
	}
	return err
}

func (s *mongoStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.users().FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	cur, err := s.products().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *mongoStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.products().FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *mongoStore) CountProducts(ctx context.Context) (int64, error) {
	return s.products().CountDocuments(ctx, bson.M{})
}

func (s *mongoStore) InsertProducts(ctx context.Context, products []models.Product) error {
	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}
	_, err := s.products().InsertMany(ctx, docs)
	return err
}

// UpsertCartLine replaces the whole (user, product) document so a repeated
// submission overwrites the quantity instead of accumulating it.
func (s *mongoStore) UpsertCartLine(ctx context.Context, line *models.CartLine) error {
	filter := bson.M{"user_id": line.UserID, "product_id": line.ProductID}

	var existing models.CartLine
	err := s.cart().FindOne(ctx, filter).Decode(&existing)
	if err == nil {
		line.ID = existing.ID
	} else if err != mongo.ErrNoDocuments {
		return err
	}

	_, err = s.cart().ReplaceOne(ctx, filter, line, options.Replace().SetUpsert(true))
	return err
}

func (s *mongoStore) GetCart(ctx context.Context, userID string) ([]models.CartView, error) {
	cur, err := s.cart().Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var lines []models.CartLine
	if err := cur.All(ctx, &lines); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []models.CartView{}, nil
	}

	pcur, err := s.products().Find(ctx, bson.M{"_id": bson.M{"$in": productIDs(lines)}})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := pcur.All(ctx, &products); err != nil {
		return nil, err
	}

	return mergeCartViews(lines, products), nil
}

func (s *mongoStore) CreateOrder(ctx context.Context, order *models.Order) error {
	_, err := s.orders().InsertOne(ctx, order)
	return err
}

func (s *mongoStore) ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	cur, err := s.orders().Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *mongoStore) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	cur, err := s.orders().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *mongoStore) CreateAddress(ctx context.Context, address *models.Address) error {
	_, err := s.addresses().InsertOne(ctx, address)
	return err
}

func (s *mongoStore) ListAddressesByUser(ctx context.Context, userID string) ([]models.Address, error) {
	cur, err := s.addresses().Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	addresses := []models.Address{}
	if err := cur.All(ctx, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
