package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_ObserveQuery(t *testing.T) {
	before := testutil.ToFloat64(QueriesTotal.WithLabelValues("search"))

	Recorder{}.ObserveQuery("search", 3, 0.0002)

	if got := testutil.ToFloat64(QueriesTotal.WithLabelValues("search")); got != before+1 {
		t.Errorf("queries_total{search} = %v, want %v", got, before+1)
	}
	if testutil.CollectAndCount(QueryResults) == 0 {
		t.Error("expected query_results observations")
	}
	if testutil.CollectAndCount(QueryDuration) == 0 {
		t.Error("expected query_duration_seconds observations")
	}
}

func TestRecorder_ObserveReload(t *testing.T) {
	okBefore := testutil.ToFloat64(CatalogReloadsTotal.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(CatalogReloadsTotal.WithLabelValues("error"))

	Recorder{}.ObserveReload(12, nil)
	if got := testutil.ToFloat64(CatalogGames); got != 12 {
		t.Errorf("catalog_games = %v, want 12", got)
	}

	Recorder{}.ObserveReload(0, errors.New("boom"))
	if got := testutil.ToFloat64(CatalogGames); got != 12 {
		t.Errorf("failed reload must not touch catalog_games, got %v", got)
	}

	if got := testutil.ToFloat64(CatalogReloadsTotal.WithLabelValues("ok")); got != okBefore+1 {
		t.Errorf("reloads_total{ok} = %v", got)
	}
	if got := testutil.ToFloat64(CatalogReloadsTotal.WithLabelValues("error")); got != errBefore+1 {
		t.Errorf("reloads_total{error} = %v", got)
	}
}

func TestRegister_Idempotent(t *testing.T) {
	Register()
	Register()
}
