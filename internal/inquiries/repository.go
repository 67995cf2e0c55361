package inquiries

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

// New creates an inquiries repository with the given dependencies.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "inquiries"),
		pagination: pagination,
	}
}

func (r *repo) Submit(ctx context.Context, cmd CreateCommand) (*Inquiry, error) {
	cmd = normalize(cmd)
	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}

	var productID *uuid.UUID
	if cmd.ProductID != "" {
		id, err := uuid.Parse(cmd.ProductID)
		if err != nil {
			return nil, ErrUnknownProduct
		}
		productID = &id
	}

	q := `
		INSERT INTO inquiries (name, email, phone, subject, message, product_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		` + returning
	args := []any{cmd.Name, cmd.Email, cmd.Phone, cmd.Subject, cmd.Message, productID, StatusNew}

	inq, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Inquiry, error) {
		return repository.QueryOne(ctx, tx, q, args, scanInquiry)
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, ErrUnknownProduct
		}
		return nil, fmt.Errorf("insert inquiry: %w", err)
	}

	r.logger.Info("inquiry submitted", "id", inq.ID, "product_id", inq.ProductID)
	return &inq, nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Inquiry], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Email", "Subject", "Message").
		OrderByFields(page.Sort)
	filters.Apply(qb)

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count inquiries: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.PageSize, page.Offset())
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanInquiry)
	if err != nil {
		return nil, fmt.Errorf("query inquiries: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)
	inq, err := repository.QueryOne(ctx, r.db, q, args, scanInquiry)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}
	return &inq, nil
}

func (r *repo) UpdateStatus(ctx context.Context, id uuid.UUID, cmd UpdateStatusCommand) (*Inquiry, error) {
	cmd.Status = strings.ToLower(strings.TrimSpace(cmd.Status))
	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}

	q := `
		UPDATE inquiries
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		` + returning

	inq, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Inquiry, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Status, id}, scanInquiry)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}

	r.logger.Info("inquiry status updated", "id", inq.ID, "status", inq.Status)
	return &inq, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, "DELETE FROM inquiries WHERE id = $1", id)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrNotFound)
	}

	r.logger.Info("inquiry deleted", "id", id)
	return nil
}

func normalize(cmd CreateCommand) CreateCommand {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Email = strings.TrimSpace(cmd.Email)
	cmd.Phone = strings.TrimSpace(cmd.Phone)
	cmd.Subject = strings.TrimSpace(cmd.Subject)
	cmd.Message = strings.TrimSpace(cmd.Message)
	cmd.ProductID = strings.TrimSpace(cmd.ProductID)
	return cmd
}
