package products

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/showroom/pkg/pagination"
	"github.com/JaimeStill/showroom/pkg/query"
	"github.com/JaimeStill/showroom/pkg/repository"
	"github.com/JaimeStill/showroom/pkg/validation"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a products repository with the given dependencies.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "products"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Product], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, "Name", "Description", "Category").
		OrderByFields(page.Sort)
	filters.Apply(qb)

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.PageSize, page.Offset())
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Product, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)
	p, err := repository.QueryOne(ctx, r.db, q, args, scanProduct)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Product, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Category = strings.TrimSpace(cmd.Category)
	cmd.ImageURL = emptyToNil(cmd.ImageURL)
	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}

	inStock := true
	if cmd.InStock != nil {
		inStock = *cmd.InStock
	}

	q := `
		INSERT INTO products (name, description, category, price, image_url, featured, in_stock)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, description, category, price, image_url, featured, in_stock, created_at, updated_at`
	args := []any{cmd.Name, cmd.Description, cmd.Category, cmd.Price, cmd.ImageURL, cmd.Featured, inStock}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Product, error) {
		return repository.QueryOne(ctx, tx, q, args, scanProduct)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("product created", "id", p.ID, "name", p.Name)
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Product, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Category = strings.TrimSpace(cmd.Category)
	cmd.ImageURL = emptyToNil(cmd.ImageURL)
	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}

	q := `
		UPDATE products
		SET name = $1, description = $2, category = $3, price = $4,
			image_url = $5, featured = $6, in_stock = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id, name, description, category, price, image_url, featured, in_stock, created_at, updated_at`
	args := []any{cmd.Name, cmd.Description, cmd.Category, cmd.Price, cmd.ImageURL, cmd.Featured, cmd.InStock, id}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Product, error) {
		return repository.QueryOne(ctx, tx, q, args, scanProduct)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("product updated", "id", p.ID, "name", p.Name)
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, "DELETE FROM products WHERE id = $1", id)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("product deleted", "id", id)
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
