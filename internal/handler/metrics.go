package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ezedin-dev/portfolio-backend/dao/model"
	"github.com/ezedin-dev/portfolio-backend/dao/query"
	"github.com/ezedin-dev/portfolio-backend/internal/resputil"
)

type MetricsMgr struct {
	name string
}

func NewMetricsMgr(_ *RegisterConfig) Manager {
	return &MetricsMgr{
		name: "metrics",
	}
}

func (mgr *MetricsMgr) GetName() string { return mgr.name }

func (mgr *MetricsMgr) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/metrics", mgr.GetMetrics)
}

func (mgr *MetricsMgr) RegisterProtected(_ *gin.RouterGroup) {}

func (mgr *MetricsMgr) RegisterAdmin(_ *gin.RouterGroup) {}

// Private registry so gin/go runtime collectors do not leak into the scrape.
var registry *prometheus.Registry

var promHTTPHandler http.Handler

var contentCountGauge = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "portfolio_content_total",
		Help: "Number of stored content entities by type",
	},
	[]string{"entity"},
)

var unreadMessagesGauge = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "portfolio_unread_messages_total",
		Help: "Number of unread contact submissions",
	},
)

//nolint:gochecknoinits // This is the standard way to register a gin handler.
func init() {
	Registers = append(Registers, NewMetricsMgr)
	registry = prometheus.NewRegistry()
	promHTTPHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	registry.MustRegister(contentCountGauge)
	registry.MustRegister(unreadMessagesGauge)
}

// GetMetrics godoc
// @Summary Content and inbox gauges in Prometheus exposition format
// @Tags Metrics
// @Produce plain
// @Success 200 {string} string
// @Failure 500 {object} map[string]string
// @Router /api/metrics [get]
func (mgr *MetricsMgr) GetMetrics(c *gin.Context) {
	counts := map[string]any{
		"projects":     &model.Project{},
		"skills":       &model.Skill{},
		"experiences":  &model.Experience{},
		"testimonials": &model.Testimonial{},
	}
	for entity, m := range counts {
		var count int64
		if err := query.DB().WithContext(c).Model(m).Count(&count).Error; err != nil {
			resputil.Error(c, "Failed to collect metrics")
			return
		}
		contentCountGauge.WithLabelValues(entity).Set(float64(count))
	}

	var unread int64
	err := query.DB().WithContext(c).
		Model(&model.ContactSubmission{}).
		Where("is_read = ?", false).
		Count(&unread).Error
	if err != nil {
		resputil.Error(c, "Failed to collect metrics")
		return
	}
	unreadMessagesGauge.Set(float64(unread))

	promHTTPHandler.ServeHTTP(c.Writer, c.Request)
}
