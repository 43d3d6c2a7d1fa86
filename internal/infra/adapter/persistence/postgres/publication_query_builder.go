package postgres

import (
	"fmt"
	"strings"

	"publications-api/internal/repository"
)

// PublicationQueryBuilder builds WHERE clauses for publication listings.
// Conditions are AND-combined and use numbered placeholders ($1, $2, ...).
type PublicationQueryBuilder struct{}

// NewPublicationQueryBuilder creates a new query builder instance.
func NewPublicationQueryBuilder() *PublicationQueryBuilder {
	return &PublicationQueryBuilder{}
}

// BuildWhereClause returns the WHERE clause and its arguments for filter.
// Returns an empty clause when the filter carries no restriction.
func (qb *PublicationQueryBuilder) BuildWhereClause(filter repository.PublicationFilter) (clause string, args []interface{}) {
	var conditions []string
	paramIndex := 1

	if filter.PublishedAt != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", paramIndex))
		args = append(args, *filter.PublishedAt)
		paramIndex++
	}
	if filter.After != nil {
		conditions = append(conditions, fmt.Sprintf("date > $%d", paramIndex))
		args = append(args, *filter.After)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
