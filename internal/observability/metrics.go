package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "radar_console"

// Metrics holds the Prometheus counters, histograms, and gauges for the console.
type Metrics struct {
	SweepTicks       prometheus.Counter
	SweepRevolutions prometheus.Counter
	SweepAngle       prometheus.Gauge
	SweepSpeed       prometheus.Gauge
	TickDuration     prometheus.Histogram

	// Scan configuration as applied after clamping.
	PRF         prometheus.Gauge
	RotationRPM prometheus.Gauge
	ScanRunning prometheus.Gauge

	IlluminatedTargets prometheus.Gauge
	Illuminations      *prometheus.CounterVec // labels: target_type
	TargetsTracked     prometheus.Gauge
	Regenerations      prometheus.Counter
	ConfigClamped      *prometheus.CounterVec // labels: param={prf,rpm}
}

func newMetrics() *Metrics {
	return &Metrics{
		SweepTicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_ticks_total",
			Help:      "Total sweep ticks processed.",
		}),
		SweepRevolutions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_revolutions_total",
			Help:      "Total full antenna revolutions.",
		}),
		SweepAngle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweep_angle_degrees",
			Help:      "Current sweep bearing in degrees.",
		}),
		SweepSpeed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sweep_speed_degrees_per_tick",
			Help:      "Sweep advance per tick derived from PRF and RPM.",
		}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Time spent advancing the sweep and evaluating illumination.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
		PRF: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scan_prf_hz",
			Help:      "Applied pulse repetition frequency.",
		}),
		RotationRPM: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scan_rotation_rpm",
			Help:      "Applied antenna rotation rate.",
		}),
		ScanRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scan_running",
			Help:      "1 when the sweep driver is running, 0 when stopped.",
		}),
		IlluminatedTargets: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "illuminated_targets",
			Help:      "Targets under the beam on the last tick.",
		}),
		Illuminations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "illuminations_total",
			Help:      "Target illuminations by classified type.",
		}, []string{"target_type"}),
		TargetsTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "targets_tracked",
			Help:      "Targets in the current batch.",
		}),
		Regenerations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "target_regenerations_total",
			Help:      "Target batches generated.",
		}),
		ConfigClamped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_clamped_total",
			Help:      "Scan parameter changes clamped into range, by parameter.",
		}, []string{"param"}),
	}
}

// NewMetrics creates and registers all console metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.SweepTicks,
		m.SweepRevolutions,
		m.SweepAngle,
		m.SweepSpeed,
		m.TickDuration,
		m.PRF,
		m.RotationRPM,
		m.ScanRunning,
		m.IlluminatedTargets,
		m.Illuminations,
		m.TargetsTracked,
		m.Regenerations,
		m.ConfigClamped,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
