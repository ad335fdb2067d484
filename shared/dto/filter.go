package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotIn     = "not_in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Filter is a single predicate bound as a named sqlx parameter. ArgName defaults to Field
// and must be unique within one query.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_in not_eq less_eq greater_eq is_null is_not_null"`
	Table    string
}

func (f Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

// GetWhereClause renders the predicate. Unknown operators and IN or NOT IN over a non-slice render
// nothing so they drop out of the enclosing group.
func (f Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column, name := f.column(), f.argName()

	if op, ok := comparisons[f.Operator]; ok {
		args[name] = f.Value

		return fmt.Sprintf("%s %s :%s", column, op, name), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[name] = fmt.Sprintf("%%%v%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, name), args
	case FilterOperatorIn:
		return f.inClause(column, name, "IN", args)
	case FilterOperatorNotIn:
		return f.inClause(column, name, "NOT IN", args)
	case FilterIsNull:
		return column + " IS NULL", args
	case FilterIsNotNull:
		return column + " IS NOT NULL", args
	}

	return "", args
}

func (f Filter) inClause(column, name, keyword string, args map[string]any) (string, map[string]any) {
	values := reflect.ValueOf(f.Value)
	if kind := values.Kind(); (kind != reflect.Slice && kind != reflect.Array) || values.Len() == 0 {
		return "", args
	}

	placeholders := make([]string, values.Len())

	for idx := range values.Len() {
		key := fmt.Sprintf("%s_%d", name, idx)
		args[key] = values.Index(idx).Interface()
		placeholders[idx] = ":" + key
	}

	return fmt.Sprintf("%s %s (%s)", column, keyword, strings.Join(placeholders, ", ")), args
}

// FilterGroup joins Filter and nested FilterGroup values with Operator, AND by default.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (g FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(g.Filters))

	for _, item := range g.Filters {
		var (
			clause string
			arg    map[string]any
		)

		switch typed := item.(type) {
		case Filter:
			clause, arg = typed.GetWhereClause()
		case FilterGroup:
			clause, arg = typed.GetWhereClause()
		default:
			continue
		}

		if clause == "" {
			continue
		}

		clauses = append(clauses, clause)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := g.Operator
	if operator != FilterGroupOperatorOr {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(clauses, " "+operator+" ") + ")", args
}

// Add appends filters and returns the group for chaining.
func (g *FilterGroup) Add(filters ...any) *FilterGroup {
	g.Filters = append(g.Filters, filters...)

	return g
}
