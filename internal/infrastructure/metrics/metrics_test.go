package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/v1/tables/:table_id/state", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"t1", "t2"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/tables/"+id+"/state", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	assert.Contains(t, body, `comanda_http_requests_total{method="GET",route="/v1/tables/:table_id/state",status="200"}`)
	assert.NotContains(t, body, "/v1/tables/t1/state")
}

func TestHandlerExposesDomainCounters(t *testing.T) {
	BatchesSent.Inc()
	Payments.WithLabelValues("efectivo", "confirmed").Inc()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, "comanda_batches_sent_total"))
	assert.True(t, strings.Contains(body, `comanda_payments_total{method="efectivo",outcome="confirmed"}`))
}
