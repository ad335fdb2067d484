// Package repository is the generic sqlx table gateway shared by the domain repositories.
// Reads go to the read pool and writes to the write pool. GetPrimary reads from the write
// pool for callers that must see their own writes.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"gomoto/infras/otel"
	"gomoto/infras/postgres"
	"gomoto/shared/constant"
	"gomoto/shared/dto"
	"gomoto/shared/logger"

	"github.com/jmoiron/sqlx"
)

const setArgPrefix = "set_"

var ErrRequiredFilter = errors.New("filter is required for this statement")

type column struct {
	name  string
	table string
	alias string
}

// expr renders the column for a SELECT list.
func (c column) expr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return c.table + "." + c.name
	}
}

// key is the name the column is scanned into, used to match sort_by.
func (c column) key() string {
	if c.alias != "" {
		return c.alias
	}

	return c.name
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// joiner is implemented by models whose reads need a JOIN clause.
type joiner interface {
	GetJoinQuery() string
}

type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	join          string
	InsertColumns []string
}

// NewRepository derives the column list from the db, table and column tags of T.
func NewRepository[T any](entityName, tableName, primaryColumn string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := ""
	if j, ok := any(zero).(joiner); ok {
		join = j.GetJoinQuery()
	}

	return Repository[T]{
		db:            db,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          join,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) newScope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
}

// fail logs and traces err and wraps it with the operation name.
func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

// read binds the named args for the read pool and runs fn.
func (repo *Repository[T]) read(scope otel.Scope, query string, args map[string]any, fn func(query string, bound []any) error) error {
	return bind(scope, repo.db.Read, query, args, fn)
}

func bind(scope otel.Scope, db *sqlx.DB, query string, args map[string]any, fn func(query string, bound []any) error) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	named, bound, err := sqlx.Named(query, args)
	if err != nil {
		return fmt.Errorf("binding named query: %w", err)
	}

	return fn(db.Rebind(named), bound)
}

func (repo *Repository[T]) insertQuery() string {
	placeholders := make([]string, len(repo.InsertColumns))
	for idx, col := range repo.InsertColumns {
		placeholders[idx] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, model T) error {
	ctx, scope := repo.newScope(ctx, "insert")
	defer scope.End()

	query := repo.insertQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, model)
}

// InsertTx inserts inside a transaction opened with WithTx.
func (repo *Repository[T]) InsertTx(ctx context.Context, tx *sqlx.Tx, model T) error {
	return repo.insert(ctx, tx, model)
}

// WithTx runs fn in a write transaction, committing when fn returns nil.
func (repo *Repository[T]) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	ctx, scope := repo.newScope(ctx, "WithTx")
	defer scope.End()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return repo.fail(scope, "begin transaction", err)
	}

	defer func() {
		if err == nil {
			return
		}

		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.ErrorWithStack(rbErr)
		}
	}()

	if err = fn(tx); err != nil {
		scope.TraceError(err)

		return err
	}

	if err = tx.Commit(); err != nil {
		return repo.fail(scope, "commit transaction", err)
	}

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.newScope(ctx, "Exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return false, ErrRequiredFilter
	}

	var exist bool

	err := repo.read(scope, fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s%s)", repo.table, where), args,
		func(query string, bound []any) error {
			return repo.db.Read.GetContext(ctx, &exist, query, bound...)
		})
	if err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

// Get returns the zero T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.newScope(ctx, "Get")
	defer scope.End()

	return repo.get(ctx, scope, repo.db.Read, filter, columns)
}

// GetPrimary is Get against the write pool, so a row written just before is always visible.
func (repo *Repository[T]) GetPrimary(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.newScope(ctx, "GetPrimary")
	defer scope.End()

	return repo.get(ctx, scope, repo.db.Write, filter, columns)
}

func (repo *Repository[T]) get(ctx context.Context, scope otel.Scope, db *sqlx.DB, filter dto.FilterGroup, columns []string) (T, error) {
	var model T

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s%s LIMIT 1", repo.selectList(columns), repo.table, repo.join, where)

	err := bind(scope, db, query, args, func(query string, bound []any) error {
		return db.GetContext(ctx, &model, query, bound...)
	})

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return model, nil
	case err != nil:
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.newScope(ctx, "GetAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)

	var pagination string

	if params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = params.Offset()
		pagination = " LIMIT :limit OFFSET :offset"
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s%s%s%s",
		repo.selectList(columns), repo.table, repo.join, where, repo.orderBy(params), pagination)

	models := []T{}

	err := repo.read(scope, query, args, func(query string, bound []any) error {
		return repo.db.Read.SelectContext(ctx, &models, query, bound...)
	})
	if err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.newScope(ctx, "Count")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s%s", repo.table, repo.primaryColumn, repo.table, repo.join, where)

	var count int

	err := repo.read(scope, query, args, func(query string, bound []any) error {
		return repo.db.Read.GetContext(ctx, &count, query, bound...)
	})
	if err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

// Sum totals a numeric column of the own table, zero when nothing matches.
func (repo *Repository[T]) Sum(ctx context.Context, columnName string, filter dto.FilterGroup) (float64, error) {
	ctx, scope := repo.newScope(ctx, "Sum")
	defer scope.End()

	if !slices.Contains(repo.InsertColumns, columnName) {
		return 0, repo.fail(scope, "sum data", fmt.Errorf("unknown column %q", columnName))
	}

	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT COALESCE(SUM(%s.%s), 0) FROM %s %s%s", repo.table, columnName, repo.table, repo.join, where)

	var total float64

	err := repo.read(scope, query, args, func(query string, bound []any) error {
		return repo.db.Read.GetContext(ctx, &total, query, bound...)
	})
	if err != nil {
		return 0, repo.fail(scope, "sum data", err)
	}

	return total, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.newScope(ctx, "Delete")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return ErrRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s%s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "delete data", err)
	}

	return nil
}

func (repo *Repository[T]) update(ctx context.Context, exec execer, fields map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.newScope(ctx, "update")
	defer scope.End()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return 0, ErrRequiredFilter
	}

	query, setArgs := repo.updateQuery(fields, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	maps.Copy(args, setArgs)

	result, err := exec.NamedExecContext(ctx, query, args)
	if err != nil {
		return 0, repo.fail(scope, "update data", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, repo.fail(scope, "read affected rows", err)
	}

	return affected, nil
}

// updateQuery renders a deterministic SET list; values are bound under set_<column> so
// they never collide with filter args.
func (repo *Repository[T]) updateQuery(fields map[string]any, where string) (string, map[string]any) {
	columns := slices.Sorted(maps.Keys(fields))
	assignments := make([]string, len(columns))
	args := make(map[string]any, len(columns))

	for idx, col := range columns {
		assignments[idx] = fmt.Sprintf("%s = :%s%s", col, setArgPrefix, col)
		args[setArgPrefix+col] = fields[col]
	}

	return fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(assignments, ", "), where), args
}

func (repo *Repository[T]) Update(ctx context.Context, fields map[string]any, filter dto.FilterGroup) error {
	_, err := repo.update(ctx, repo.db.Write, fields, filter)

	return err
}

// UpdateAffected is Update that reports how many rows matched the filter.
func (repo *Repository[T]) UpdateAffected(ctx context.Context, fields map[string]any, filter dto.FilterGroup) (int64, error) {
	return repo.update(ctx, repo.db.Write, fields, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter dto.FilterGroup) error {
	_, err := repo.update(ctx, tx, fields, filter)

	return err
}

func (repo *Repository[T]) selectList(only []string) string {
	exprs := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		exprs = append(exprs, col.expr())
	}

	return strings.Join(exprs, ", ")
}

// orderBy only accepts sort keys that are known columns of T and defaults to newest first.
func (repo *Repository[T]) orderBy(params dto.QueryParams) string {
	sortBy, dir := params.SortBy, params.SortDir
	if sortBy == "" {
		sortBy, dir = constant.DefaultValueSortBy, constant.DefaultValueSortDir
	}

	idx := slices.IndexFunc(repo.columns, func(c column) bool { return c.key() == sortBy })
	if idx < 0 {
		return ""
	}

	if dir != dto.SortDirAsc {
		dir = dto.SortDirDesc
	}

	col := repo.columns[idx]
	if col.table == "" {
		return fmt.Sprintf(" ORDER BY %s %s", col.name, dir)
	}

	return fmt.Sprintf(" ORDER BY %s.%s %s", col.table, col.name, dir)
}

// BuildWhereClause renders the filter as " WHERE ..." or "" when it has no predicates.
func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where, args
}

func getColumns(table string, typ reflect.Type) (columns []column, insertColumns []string) {
	for i := range typ.NumField() {
		field := typ.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
		}

		if owner == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if source := field.Tag.Get("column"); source != "" {
			columns = append(columns, column{name: source, table: owner, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: owner})
		}
	}

	return columns, insertColumns
}
