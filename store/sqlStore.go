package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/voltkart/voltkart-api/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqlStore struct {
	db *gorm.DB
}

// NewSQLStore opens a GORM connection for the configured dialect and syncs
// the schema. Foreign keys on the user and product tables cascade deletes,
// matching the relational variant of the data model.
func NewSQLStore(dialect, dsn string) (Store, error) {
	var dialector gorm.Dialector
	switch dialect {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql dialect %q", dialect)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartLine{},
		&models.Order{},
		&models.Address{},
	)
	if err != nil {
		return nil, err
	}

	return &sqlStore{db: db}, nil
}

func (s *sqlStore) CreateUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	return err
}

func (s *sqlStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *sqlStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *sqlStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *sqlStore) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}

func (s *sqlStore) InsertProducts(ctx context.Context, products []models.Product) error {
	return s.db.WithContext(ctx).Create(&products).Error
}

// UpsertCartLine overwrites the quantity of an existing (user, product) line
// instead of accumulating it.
func (s *sqlStore) UpsertCartLine(ctx context.Context, line *models.CartLine) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(line).Error
}

func (s *sqlStore) GetCart(ctx context.Context, userID string) ([]models.CartView, error) {
	var lines []models.CartLine
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&lines).Error; err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []models.CartView{}, nil
	}

	var products []models.Product
	if err := s.db.WithContext(ctx).Where("id IN ?", productIDs(lines)).Find(&products).Error; err != nil {
		return nil, err
	}

	return mergeCartViews(lines, products), nil
}

func (s *sqlStore) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Create(order).Error
}

func (s *sqlStore) ListOrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *sqlStore) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *sqlStore) CreateAddress(ctx context.Context, address *models.Address) error {
	return s.db.WithContext(ctx).Create(address).Error
}

func (s *sqlStore) ListAddressesByUser(ctx context.Context, userID string) ([]models.Address, error) {
	var addresses []models.Address
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (s *sqlStore) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
