// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

/*
TestMetrics_NilReceiver ensures services can run without a recorder.
*/
func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordRegistration()
		m.RecordPurchase("purchased", 2900)
		m.RecordAd(500)
	})
}

/*
TestMetrics_LedgerCounters checks revenue is split by source.
*/
func TestMetrics_LedgerCounters(t *testing.T) {
	m := New()

	m.RecordPurchase("purchased", 5900)
	m.RecordPurchase("already_purchased", 0)
	m.RecordAd(500)
	m.RecordAd(500)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.purchases.WithLabelValues("purchased")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.purchases.WithLabelValues("already_purchased")))
	assert.Equal(t, 5900.0, testutil.ToFloat64(m.revenue.WithLabelValues("purchase")))
	assert.Equal(t, 1000.0, testutil.ToFloat64(m.revenue.WithLabelValues("ad")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.adsCreated))
}

/*
TestMetrics_InstrumentUsesRoutePattern labels requests by chi pattern, not raw path.
*/
func TestMetrics_InstrumentUsesRoutePattern(t *testing.T) {
	m := New()

	router := chi.NewRouter()
	router.Use(m.Instrument)
	router.Get("/anime/{id}", func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anime/42", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/anime/43", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/anime/{id}", "404")))
}
