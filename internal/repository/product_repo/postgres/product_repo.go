package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/domain"
	"github.com/Alexlms123/ecommerce-microservice-backend-app/internal/repository/product_repo"
)

type pgProductRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewProductRepository(db *sql.DB, l *zap.Logger) product_repo.ProductRepository {
	return &pgProductRepository{db: db, logger: l}
}

const productColumns = `p.product_id, p.product_title, p.image_url, p.sku, p.price_unit, p.quantity,
	c.category_id, c.category_title, c.image_url`

func scanProduct(row interface{ Scan(...any) error }) (*domain.Product, error) {
	product := &domain.Product{}
	err := row.Scan(
		&product.ProductID, &product.ProductTitle, &product.ImageURL, &product.SKU, &product.PriceUnit, &product.Quantity,
		&product.Category.CategoryID, &product.Category.CategoryTitle, &product.Category.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *pgProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p JOIN categories c ON c.category_id = p.category_id ORDER BY p.product_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query all products", zap.Error(err))
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.logger.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return products, nil
}

func (r *pgProductRepository) FindByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p JOIN categories c ON c.category_id = p.category_id WHERE p.product_id = $1`
	product, err := scanProduct(r.db.QueryRowContext(ctx, query, productID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		r.logger.Error("Failed to get product by ID", zap.Int64("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("failed to get product by ID %d: %w", productID, err)
	}
	return product, nil
}

func (r *pgProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	var productID int64
	var err error
	if product.ProductID == 0 {
		query := `INSERT INTO products (product_title, image_url, sku, price_unit, quantity, category_id)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING product_id`
		err = r.db.QueryRowContext(ctx, query,
			product.ProductTitle, product.ImageURL, product.SKU, product.PriceUnit, product.Quantity, product.Category.CategoryID,
		).Scan(&productID)
	} else {
		query := `INSERT INTO products (product_id, product_title, image_url, sku, price_unit, quantity, category_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (product_id) DO UPDATE
			SET product_title = EXCLUDED.product_title, image_url = EXCLUDED.image_url, sku = EXCLUDED.sku,
				price_unit = EXCLUDED.price_unit, quantity = EXCLUDED.quantity, category_id = EXCLUDED.category_id
			RETURNING product_id`
		err = r.db.QueryRowContext(ctx, query,
			product.ProductID, product.ProductTitle, product.ImageURL, product.SKU, product.PriceUnit, product.Quantity, product.Category.CategoryID,
		).Scan(&productID)
	}
	if err != nil {
		r.logger.Error("Failed to save product", zap.Int64("product_id", product.ProductID), zap.Error(err))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	r.logger.Debug("Product saved", zap.Int64("product_id", productID))
	// re-read so the persisted form carries the joined category
	return r.FindByID(ctx, productID)
}

func (r *pgProductRepository) DeleteByID(ctx context.Context, productID int64) error {
	query := `DELETE FROM products WHERE product_id = $1`
	if _, err := r.db.ExecContext(ctx, query, productID); err != nil {
		r.logger.Error("Failed to delete product", zap.Int64("product_id", productID), zap.Error(err))
		return fmt.Errorf("failed to delete product %d: %w", productID, err)
	}
	return nil
}
