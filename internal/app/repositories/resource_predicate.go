package repositories

import (
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/studentdesk/internal/app/models"
)

// searchColumns are matched by the free-text query
var searchColumns = []string{"title", "subject", "branch", "year", "semester"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// predicateToSqlizer translates a ResourcePredicate into a WHERE condition.
// It must select exactly the rows ResourcePredicate.Matches accepts.
func predicateToSqlizer(p models.ResourcePredicate) squirrel.And {
	where := squirrel.And{}
	if p.Type != "" {
		where = append(where, squirrel.Eq{"type": string(p.Type)})
	}
	if p.Branch != "" {
		where = append(where, squirrel.Eq{"branch": p.Branch})
	}
	if p.Year != "" {
		where = append(where, squirrel.Eq{"year": p.Year})
	}
	if p.Semester != "" {
		where = append(where, squirrel.Eq{"semester": p.Semester})
	}
	if p.ExamType != "" {
		where = append(where, squirrel.Eq{"exam_type": p.ExamType})
	}
	if p.Subject != "" {
		where = append(where, squirrel.Expr("LOWER(subject) = LOWER(?)", p.Subject))
	}
	if p.Search != "" {
		pattern := "%" + likeEscaper.Replace(p.Search) + "%"
		anyColumn := squirrel.Or{}
		for _, column := range searchColumns {
			anyColumn = append(anyColumn, squirrel.ILike{column: pattern})
		}
		where = append(where, anyColumn)
	}
	return where
}

// sortColumns maps sortable fields to database columns
var sortColumns = map[models.SortField]string{
	models.SortByCreatedAt: "created_at",
	models.SortByDownloads: "downloads",
	models.SortByTitle:     "title",
}

// orderByClauses renders a SortSpec, always ending with the id tie-breaker
func orderByClauses(sort models.SortSpec) []string {
	column, ok := sortColumns[sort.Field]
	if !ok {
		column = sortColumns[models.SortByCreatedAt]
	}
	direction := "ASC"
	if sort.Descending {
		direction = "DESC"
	}
	return []string{
		fmt.Sprintf("%s %s", column, direction),
		fmt.Sprintf("id %s", direction),
	}
}
