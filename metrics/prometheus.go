// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package metrics

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tinyme"

const (
	// Gauge ...
	Gauge instrument = iota
	// Counter ...
	Counter
	// Histogram ...
	Histogram
)

var (
	// ErrInstrumentNotSupported signals the specified instrument is not yet supported
	ErrInstrumentNotSupported = errors.New("instrument type unsupported")
	// ErrInstrumentTypeMismatch signal the type of the instrument is not expected
	ErrInstrumentTypeMismatch = errors.New("instrument is not of the expected type")
)

var (
	registry = prometheus.NewRegistry()
	setup    sync.Once
	setupErr error

	engineTime     *prometheus.CounterVec
	requestCounter *prometheus.CounterVec
	requestTime    *prometheus.HistogramVec
	tradeCounter   *prometheus.CounterVec
	tradedQuantity *prometheus.CounterVec
	activations    *prometheus.CounterVec
	stateChanges   *prometheus.CounterVec
	orderGauge     *prometheus.GaugeVec
)

// abstract prometheus types
type instrument int

// combine all possible prometheus options + way to differentiate between regular or vector type
type instrumentOpts struct {
	opts    prometheus.Opts
	buckets []float64
	vectors []string
}

type mi struct {
	gaugeV     *prometheus.GaugeVec
	gauge      prometheus.Gauge
	counterV   *prometheus.CounterVec
	counter    prometheus.Counter
	histogramV *prometheus.HistogramVec
	histogram  prometheus.Histogram
}

// InstrumentOption - vararg for instrument options setting
type InstrumentOption func(o *instrumentOpts)

// Vectors - configuration used to create a vector of a given interface, slice of label names
func Vectors(labels ...string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.vectors = labels
	}
}

// Help - set the help field on instrument
func Help(help string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Help = help
	}
}

// Namespace - set namespace
func Namespace(ns string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Namespace = ns
	}
}

// Buckets - specific to histogram type
func Buckets(b []float64) InstrumentOption {
	return func(o *instrumentOpts) {
		o.buckets = b
	}
}

// AddInstrument configures a new instrument and registers it with the
// engine registry.
func AddInstrument(t instrument, name string, opts ...InstrumentOption) (*mi, error) {
	var col prometheus.Collector
	ret := mi{}
	opt := instrumentOpts{
		opts: prometheus.Opts{
			Name: name,
		},
	}
	// apply options
	for _, o := range opts {
		o(&opt)
	}
	switch t {
	case Gauge:
		o := prometheus.GaugeOpts(opt.opts)
		if len(opt.vectors) == 0 {
			ret.gauge = prometheus.NewGauge(o)
			col = ret.gauge
		} else {
			ret.gaugeV = prometheus.NewGaugeVec(o, opt.vectors)
			col = ret.gaugeV
		}
	case Counter:
		o := prometheus.CounterOpts(opt.opts)
		if len(opt.vectors) == 0 {
			ret.counter = prometheus.NewCounter(o)
			col = ret.counter
		} else {
			ret.counterV = prometheus.NewCounterVec(o, opt.vectors)
			col = ret.counterV
		}
	case Histogram:
		o := opt.histogram()
		if len(opt.vectors) == 0 {
			ret.histogram = prometheus.NewHistogram(o)
			col = ret.histogram
		} else {
			ret.histogramV = prometheus.NewHistogramVec(o, opt.vectors)
			col = ret.histogramV
		}
	default:
		return nil, ErrInstrumentNotSupported
	}
	if err := registry.Register(col); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (i instrumentOpts) histogram() prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   i.opts.Namespace,
		Subsystem:   i.opts.Subsystem,
		Name:        i.opts.Name,
		Help:        i.opts.Help,
		ConstLabels: i.opts.ConstLabels,
		Buckets:     i.buckets,
	}
}

func (m mi) GaugeVec() (*prometheus.GaugeVec, error) {
	if m.gaugeV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.gaugeV, nil
}

func (m mi) CounterVec() (*prometheus.CounterVec, error) {
	if m.counterV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.counterV, nil
}

func (m mi) HistogramVec() (*prometheus.HistogramVec, error) {
	if m.histogramV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.histogramV, nil
}

// Start enables metrics collection. It is safe to call more than once,
// only the first call registers the instruments.
func Start(conf Config) error {
	if !conf.Enabled {
		return nil
	}
	setup.Do(func() {
		setupErr = setupMetrics()
	})
	return setupErr
}

// Registry returns the registry every engine instrument is registered with.
func Registry() *prometheus.Registry {
	return registry
}

// WriteTextfile dumps the current value of every instrument to path in
// the prometheus text format, for the node exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, registry); err != nil {
		return errors.Wrapf(err, "writing metrics to %s", path)
	}
	return nil
}

func counterVec(name, help string, labels ...string) (*prometheus.CounterVec, error) {
	h, err := AddInstrument(Counter, name, Namespace(namespace), Vectors(labels...), Help(help))
	if err != nil {
		return nil, err
	}
	return h.CounterVec()
}

func setupMetrics() (err error) {
	if engineTime, err = counterVec("engine_seconds_total",
		"Time spent in each engine function", "security", "engine", "fn"); err != nil {
		return err
	}
	if requestCounter, err = counterVec("requests_total",
		"Number of requests handled, by kind and outcome", "kind", "outcome"); err != nil {
		return err
	}
	if tradeCounter, err = counterVec("trades_total",
		"Number of trades", "security", "mode"); err != nil {
		return err
	}
	if tradedQuantity, err = counterVec("traded_quantity_total",
		"Quantity traded", "security", "mode"); err != nil {
		return err
	}
	if activations, err = counterVec("stop_limit_activations_total",
		"Number of stop limit orders activated", "security"); err != nil {
		return err
	}
	if stateChanges, err = counterVec("matching_state_changes_total",
		"Number of matching state change requests", "security", "from", "to"); err != nil {
		return err
	}

	h, err := AddInstrument(
		Histogram,
		"request_duration_seconds",
		Namespace(namespace),
		Vectors("kind"),
		Buckets(prometheus.ExponentialBuckets(0.00001, 4, 10)),
		Help("Time spent handling a request"),
	)
	if err != nil {
		return err
	}
	if requestTime, err = h.HistogramVec(); err != nil {
		return err
	}

	h, err = AddInstrument(
		Gauge,
		"orders",
		Namespace(namespace),
		Vectors("security", "side"),
		Help("Number of orders resting in the book"),
	)
	if err != nil {
		return err
	}
	orderGauge, err = h.GaugeVec()
	return err
}

// RequestCounterInc counts a handled request.
func RequestCounterInc(kind, outcome string) {
	if requestCounter == nil {
		return
	}
	requestCounter.WithLabelValues(kind, outcome).Inc()
}

// RequestTimeObserve records how long a request took, to be deferred.
func RequestTimeObserve(kind string) func() {
	start := time.Now()
	return func() {
		if requestTime == nil {
			return
		}
		requestTime.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}
}

// TradesAdd counts trades and their quantity, mode is continuous or auction.
func TradesAdd(security, mode string, n int, quantity uint64) {
	if tradeCounter == nil || n == 0 {
		return
	}
	tradeCounter.WithLabelValues(security, mode).Add(float64(n))
	tradedQuantity.WithLabelValues(security, mode).Add(float64(quantity))
}

// ActivationsAdd counts activated stop limit orders.
func ActivationsAdd(security string, n int) {
	if activations == nil || n == 0 {
		return
	}
	activations.WithLabelValues(security).Add(float64(n))
}

// StateChangeInc counts a matching state change request.
func StateChangeInc(security, from, to string) {
	if stateChanges == nil {
		return
	}
	stateChanges.WithLabelValues(security, from, to).Inc()
}

// OrderGaugeSet sets the number of resting orders of one side of a book.
func OrderGaugeSet(n int, security, side string) {
	if orderGauge == nil {
		return
	}
	orderGauge.WithLabelValues(security, side).Set(float64(n))
}

// TimeCounter accumulates the time spent in an engine function.
type TimeCounter struct {
	labelValues []string
	started     time.Time
}

// NewTimeCounter starts timing, labels are security, engine and function.
func NewTimeCounter(labelValues ...string) *TimeCounter {
	return &TimeCounter{
		labelValues: labelValues,
		started:     time.Now(),
	}
}

// EngineTimeCounterAdd adds the time elapsed since the counter started.
func (tc *TimeCounter) EngineTimeCounterAdd() {
	if engineTime == nil {
		return
	}
	engineTime.WithLabelValues(tc.labelValues...).Add(time.Since(tc.started).Seconds())
}
