// Package metrics exposes Prometheus counters and gauges for attendance activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	LoginSuccess = "success"
	LoginInvalid = "invalid"
	LoginError   = "error"
)

// Recorder is what services report to.
type Recorder interface {
	RecordLogin(result string)
	RecordCheckIn()
	RecordCheckOut()
	RecordExport(rows int)
}

// PresenceRecorder receives the periodic snapshot of today's attendance.
type PresenceRecorder interface {
	SetPresence(employees, checkedIn, checkedOut, stillPresent int64)
}

type Collector struct {
	logins       *prometheus.CounterVec
	checkIns     prometheus.Counter
	checkOuts    prometheus.Counter
	exports      prometheus.Counter
	exportedRows prometheus.Counter
	presence     *prometheus.GaugeVec
}

// NewCollector registers the application metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_logins_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		checkIns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "attendance_check_ins_total",
			Help: "Successful check-ins.",
		}),
		checkOuts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "attendance_check_outs_total",
			Help: "Successful check-outs.",
		}),
		exports: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "attendance_exports_total",
			Help: "Spreadsheet exports generated.",
		}),
		exportedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "attendance_exported_rows_total",
			Help: "Attendance rows written to spreadsheet exports.",
		}),
		presence: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "attendance_presence",
			Help: "Today's employee attendance by state, refreshed periodically.",
		}, []string{"state"}),
	}

	reg.MustRegister(
		c.logins,
		c.checkIns,
		c.checkOuts,
		c.exports,
		c.exportedRows,
		c.presence,
	)

	return c
}

func (c *Collector) RecordLogin(result string) {
	c.logins.WithLabelValues(result).Inc()
}

func (c *Collector) RecordCheckIn() {
	c.checkIns.Inc()
}

func (c *Collector) RecordCheckOut() {
	c.checkOuts.Inc()
}

func (c *Collector) RecordExport(rows int) {
	c.exports.Inc()
	c.exportedRows.Add(float64(rows))
}

func (c *Collector) SetPresence(employees, checkedIn, checkedOut, stillPresent int64) {
	c.presence.WithLabelValues("employees").Set(float64(employees))
	c.presence.WithLabelValues("checked_in").Set(float64(checkedIn))
	c.presence.WithLabelValues("checked_out").Set(float64(checkedOut))
	c.presence.WithLabelValues("still_present").Set(float64(stillPresent))
}

// NewRegistry returns a registry preloaded with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Noop discards everything. Used where no registry is wired.
type Noop struct{}

func (Noop) RecordLogin(string) {}
func (Noop) RecordCheckIn()     {}
func (Noop) RecordCheckOut()    {}
func (Noop) RecordExport(int)   {}

func (Noop) SetPresence(int64, int64, int64, int64) {}
