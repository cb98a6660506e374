package helpers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/studentdesk/internal/app/models"
)

// ParseResourceFilter reads the recognized catalog filters from the query string.
// Parameters that are not present stay nil; unknown parameters are ignored.
func ParseResourceFilter(c *gin.Context) models.ResourceFilter {
	return models.ResourceFilter{
		Q:        optionalQuery(c, "q"),
		Branch:   optionalQuery(c, "branch"),
		Year:     optionalQuery(c, "year"),
		Sem:      optionalQuery(c, "sem"),
		ExamType: optionalQuery(c, "examType"),
	}
}

func optionalQuery(c *gin.Context, key string) *string {
	value, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	return &value
}
