package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsCountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler := Metrics(WithRegistry(reg))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brew", nil))
		if rec.Code != http.StatusTeapot {
			t.Fatalf("status = %d", rec.Code)
		}
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	var found bool
	for _, mf := range families {
		if mf.GetName() != "seidr_http_requests_total" {
			continue
		}
		found = true
		if len(mf.GetMetric()) != 1 {
			t.Fatalf("label sets = %d, want 1", len(mf.GetMetric()))
		}
		m := mf.GetMetric()[0]
		if got := m.GetCounter().GetValue(); got != 3 {
			t.Errorf("requests_total = %v, want 3", got)
		}
		labels := map[string]string{}
		for _, l := range m.GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		if labels["method"] != "GET" || labels["path"] != "/brew" || labels["status"] != "418" {
			t.Errorf("labels = %v", labels)
		}
	}
	if !found {
		t.Error("seidr_http_requests_total not registered")
	}
}

func TestMetricsDefaultStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	handler := Metrics(WithRegistry(reg))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("ok")) // implicit 200
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "seidr_http_requests_total" {
			continue
		}
		for _, l := range mf.GetMetric()[0].GetLabel() {
			if l.GetName() == "status" && l.GetValue() != "200" {
				t.Errorf("status label = %q, want 200", l.GetValue())
			}
		}
	}
}

func TestOTelPassesThrough(t *testing.T) {
	var handlerRan bool
	handler := OTel()(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerRan = true
			if r.Context() == nil {
				t.Error("request context missing")
			}
			w.WriteHeader(http.StatusNoContent)
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if !handlerRan {
		t.Error("wrapped handler did not run")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestOTelFilterSkips(t *testing.T) {
	handler := OTel(WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/healthz"
	}))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
