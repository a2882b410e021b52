package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRecordCommandCountsByStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordCommand("logdelete", StatusOK, 5*time.Millisecond)
	c.RecordCommand("logdelete", StatusOK, 5*time.Millisecond)
	c.RecordCommand("logdelete", StatusFailed, time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	counts := map[string]float64{}
	var observed uint64
	for _, mf := range families {
		switch mf.GetName() {
		case "scrolls_commands_total":
			for _, m := range mf.GetMetric() {
				var status string
				for _, l := range m.GetLabel() {
					if l.GetName() == "status" {
						status = l.GetValue()
					}
				}
				counts[status] = m.GetCounter().GetValue()
			}
		case "scrolls_command_duration_seconds":
			observed = mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	if counts[StatusOK] != 2 || counts[StatusFailed] != 1 {
		t.Errorf("unexpected counts %v", counts)
	}
	if observed != 3 {
		t.Errorf("latency samples = %d, want 3", observed)
	}
}

func TestRecordStateSetsGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordState(4, 2)
	c.RecordState(3, 1)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	got := map[string]float64{}
	for _, mf := range families {
		if mf.GetType().String() == "GAUGE" {
			got[mf.GetName()] = mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	if got["scrolls_persons"] != 3 || got["scrolls_logs"] != 1 {
		t.Errorf("unexpected gauges %v", got)
	}
}

func TestSetupMetricsRouteServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordCommand("find", StatusOK, time.Millisecond)

	srv := httptest.NewServer(SetupMetricsRoute(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), `scrolls_commands_total{command="find",status="ok"} 1`) {
		t.Errorf("metrics body missing command counter:\n%s", body)
	}
}

func TestNopSatisfiesRecorder(t *testing.T) {
	var r Recorder = Nop{}
	r.RecordCommand("exit", StatusOK, 0)
	r.RecordState(0, 0)
}
