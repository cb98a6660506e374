package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/studentdesk/internal/pkg/metrics"
)

func TestMetrics_LabelsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Metrics())
	router.GET("/branch/:name", func(c *gin.Context) { c.Status(http.StatusOK) })

	ok := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/branch/:name", "200")
	missing := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	beforeOK := testutil.ToFloat64(ok)
	beforeMissing := testutil.ToFloat64(missing)

	for _, path := range []string{"/branch/CSE", "/branch/ECE", "/nowhere"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, beforeOK+2, testutil.ToFloat64(ok))
	assert.Equal(t, beforeMissing+1, testutil.ToFloat64(missing))
}
