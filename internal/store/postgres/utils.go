package postgres

import (
	"fmt"
	"strings"

	"github.com/goto/workforce/domain"
	"github.com/goto/workforce/pkg/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var journalOrderColumns = []string{"created_at", "request_id", "request_type", "actor_id", "action"}

// addOrderBy applies "column" or "column:direction" conditions in the given order
func addOrderBy(db *gorm.DB, conditions []string, allowedColumns []string) (*gorm.DB, error) {
	var orderByClauses []string
	for _, orderBy := range conditions {
		columnOrder := strings.Split(strings.ToLower(strings.TrimSpace(orderBy)), ":")
		columnName := columnOrder[0]
		if !slices.ContainsAny(allowedColumns, columnName) {
			return nil, fmt.Errorf("%w: cannot order by column %q", domain.ErrInvalidOrderBy, columnName)
		}
		switch len(columnOrder) {
		case 1:
			orderByClauses = append(orderByClauses, fmt.Sprintf(`"%s"`, columnName))
		case 2:
			direction := columnOrder[1]
			if !slices.ContainsAny([]string{"asc", "desc"}, direction) {
				return nil, fmt.Errorf("%w: invalid direction %q", domain.ErrInvalidOrderBy, direction)
			}
			orderByClauses = append(orderByClauses, fmt.Sprintf(`"%s" %s`, columnName, direction))
		default:
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidOrderBy, orderBy)
		}
	}

	return db.Clauses(clause.OrderBy{
		Expression: clause.Expr{
			SQL:                strings.Join(orderByClauses, ", "),
			WithoutParentheses: true,
		},
	}), nil
}
