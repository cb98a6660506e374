package repositories

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentdesk/internal/app/models"
)

func TestPredicateToSqlizer(t *testing.T) {
	t.Run("equality and subject", func(t *testing.T) {
		pred := models.ResourcePredicate{
			Type:    models.ResourceTypeNote,
			Branch:  "CSE",
			Subject: "dbms",
		}
		sql, args, err := predicateToSqlizer(pred).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(type = ? AND branch = ? AND LOWER(subject) = LOWER(?))", sql)
		assert.Equal(t, []interface{}{"note", "CSE", "dbms"}, args)
	})

	t.Run("search spans the text columns", func(t *testing.T) {
		sql, args, err := predicateToSqlizer(models.ResourcePredicate{Search: "os"}).ToSql()
		require.NoError(t, err)
		assert.Equal(t,
			"((title ILIKE ? OR subject ILIKE ? OR branch ILIKE ? OR year ILIKE ? OR semester ILIKE ?))",
			sql)
		require.Len(t, args, 5)
		for _, arg := range args {
			assert.Equal(t, "%os%", arg)
		}
	})

	t.Run("search wildcards are escaped", func(t *testing.T) {
		_, args, err := predicateToSqlizer(models.ResourcePredicate{Search: `100%_a\b`}).ToSql()
		require.NoError(t, err)
		assert.Equal(t, `%100\%\_a\\b%`, args[0])
	})

	t.Run("renders with dollar placeholders", func(t *testing.T) {
		sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
		sql, _, err := sb.Select("COUNT(*)").From("resources").
			Where(predicateToSqlizer(models.ResourcePredicate{Year: "1st Year", ExamType: "Unit Test"})).
			ToSql()
		require.NoError(t, err)
		assert.Equal(t, "SELECT COUNT(*) FROM resources WHERE (year = $1 AND exam_type = $2)", sql)
	})
}

func TestOrderByClauses(t *testing.T) {
	assert.Equal(t, []string{"created_at DESC", "id DESC"}, orderByClauses(models.DefaultSort))
	assert.Equal(t, []string{"downloads DESC", "id DESC"}, orderByClauses(models.MostDownloaded))
	assert.Equal(t, []string{"title ASC", "id ASC"}, orderByClauses(models.SortSpec{Field: models.SortByTitle}))
	assert.Equal(t, []string{"created_at ASC", "id ASC"}, orderByClauses(models.SortSpec{Field: "unknown"}))
}
