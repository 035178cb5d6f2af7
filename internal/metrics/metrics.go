// Package metrics collects Prometheus instruments for the chart
// pipeline: layout throughput, cache effectiveness and render counts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector owns every instrument the service exposes on /metrics.
type Collector struct {
	layoutsComputed *prometheus.CounterVec
	layoutDuration  prometheus.Histogram
	visibleBars     prometheus.Histogram
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	cacheEntries    prometheus.Gauge
	svgRenders      prometheus.Counter
}

// New creates a Collector and registers its instruments with reg. The
// server passes its dedicated registry, tests pass a fresh
// prometheus.NewRegistry.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		layoutsComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gantt_layouts_computed_total",
			Help: "Total number of chart layouts computed, by granularity",
		}, []string{"granularity"}),
		layoutDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gantt_layout_duration_seconds",
			Help:    "Time spent computing one chart layout in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		visibleBars: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gantt_visible_bars",
			Help:    "Number of task bars visible in one computed layout",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gantt_layout_cache_hits_total",
			Help: "Total number of layout requests served from cache",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gantt_layout_cache_misses_total",
			Help: "Total number of layout requests that missed the cache",
		}),
		cacheEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gantt_layout_cache_entries",
			Help: "Current number of cached layouts",
		}),
		svgRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gantt_svg_renders_total",
			Help: "Total number of charts rendered to SVG",
		}),
	}

	reg.MustRegister(
		c.layoutsComputed,
		c.layoutDuration,
		c.visibleBars,
		c.cacheHits,
		c.cacheMisses,
		c.cacheEntries,
		c.svgRenders,
	)

	return c
}

// ObserveLayout records one computed layout: its granularity, how many
// bars it placed and how long it took.
func (c *Collector) ObserveLayout(granularity string, bars int, seconds float64) {
	c.layoutsComputed.WithLabelValues(granularity).Inc()
	c.visibleBars.Observe(float64(bars))
	c.layoutDuration.Observe(seconds)
}

// RecordCacheHit records a layout request served from cache.
func (c *Collector) RecordCacheHit() {
	c.cacheHits.Inc()
}

// RecordCacheMiss records a layout request that had to be computed.
func (c *Collector) RecordCacheMiss() {
	c.cacheMisses.Inc()
}

// SetCacheEntries updates the cached layout count.
func (c *Collector) SetCacheEntries(n int) {
	c.cacheEntries.Set(float64(n))
}

// RecordSVGRender records one SVG render.
func (c *Collector) RecordSVGRender() {
	c.svgRenders.Inc()
}
