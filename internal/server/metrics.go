package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	graphite "github.com/cyberdelia/go-metrics-graphite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rcrowley/go-metrics"
	"github.com/sirupsen/logrus"

	"github.com/allen1211/kvput/pkg/common"
)

var (
	opsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kvput_server",
		Name:      "ops_total",
		Help:      "The total number of processed requests by operation and result",
	}, []string{"op", "result"})
)

const graphiteInterval = 10 * time.Second

type serverMetrics struct {
	registry	metrics.Registry
	httpServ	*http.Server
	logger		*logrus.Logger

	flushInterval	time.Duration
	stopC			chan struct{}
	stopOnce		sync.Once
	wg				sync.WaitGroup
}

func makeServerMetrics(logger *logrus.Logger) *serverMetrics {
	return &serverMetrics{
		registry: metrics.NewRegistry(),
		logger: logger,
		flushInterval: graphiteInterval,
		stopC: make(chan struct{}),
	}
}

func (m *serverMetrics) observe(op string, begin time.Time, result common.Err) {
	opsProcessed.WithLabelValues(op, string(result)).Inc()
	metrics.GetOrRegisterTimer("kv."+op, m.registry).UpdateSince(begin)
}

func (m *serverMetrics) serveHTTP(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	m.httpServ = &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := m.httpServ.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.logger.Errorf("metrics server on %s: %v", addr, err)
		}
	}()
}

// reportGraphite flushes the timers to addr every flushInterval until stop.
func (m *serverMetrics) reportGraphite(addr string) error {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return err
	}
	conf := graphite.Config{
		Addr:          tcpAddr,
		Registry:      m.registry,
		FlushInterval: m.flushInterval,
		DurationUnit:  time.Nanosecond,
		Prefix:        "kvput",
		Percentiles:   []float64{0.5, 0.75, 0.95, 0.99, 0.999},
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ticker := time.NewTicker(conf.FlushInterval)
		defer ticker.Stop()
		for {
			select {
			case <-m.stopC:
				return
			case <-ticker.C:
				if err := graphite.Once(conf); err != nil {
					m.logger.Debugf("graphite flush to %s: %v", addr, err)
				}
			}
		}
	}()
	return nil
}

func (m *serverMetrics) stop() {
	m.stopOnce.Do(func() { close(m.stopC) })
	if m.httpServ != nil {
		_ = m.httpServ.Shutdown(context.Background())
	}
	m.wg.Wait()
}
