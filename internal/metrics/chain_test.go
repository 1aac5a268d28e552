// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordPushes(t *testing.T) {
	before := testutil.ToFloat64(pushTotal)

	RecordPushes(3)
	RecordPushes(0)
	RecordPushes(-1)

	if got := testutil.ToFloat64(pushTotal) - before; got != 3 {
		t.Errorf("pushTotal delta = %v, want 3", got)
	}
}

func TestSetChainLength(t *testing.T) {
	SetChainLength(7)
	if got := testutil.ToFloat64(chainLength); got != 7 {
		t.Errorf("chainLength = %v, want 7", got)
	}
}

func TestRecordSnapshotOutcomes(t *testing.T) {
	okBefore := testutil.ToFloat64(snapshotWrites.WithLabelValues("success"))
	failBefore := testutil.ToFloat64(snapshotWrites.WithLabelValues("failure"))

	RecordSnapshotWrite(nil)
	RecordSnapshotWrite(errors.New("disk full"))
	RecordSnapshotWrite(errors.New("disk full"))

	if got := testutil.ToFloat64(snapshotWrites.WithLabelValues("success")) - okBefore; got != 1 {
		t.Errorf("success delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(snapshotWrites.WithLabelValues("failure")) - failBefore; got != 2 {
		t.Errorf("failure delta = %v, want 2", got)
	}

	readBefore := testutil.ToFloat64(snapshotReads.WithLabelValues("success"))
	RecordSnapshotRead(nil)
	if got := testutil.ToFloat64(snapshotReads.WithLabelValues("success")) - readBefore; got != 1 {
		t.Errorf("read success delta = %v, want 1", got)
	}
}

func TestPromhttpExposure(t *testing.T) {
	RecordPushes(1)

	recorder := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := recorder.Body.String()
	for _, name := range []string{"chain_push_total", "chain_length"} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}

func TestWriteTextfile(t *testing.T) {
	SetChainLength(4)
	path := filepath.Join(t.TempDir(), "chain.prom")

	if err := WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "chain_length 4") {
		t.Errorf("textfile missing chain_length sample:\n%s", data)
	}
}

func TestWriteTextfile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "chain.prom")
	if err := WriteTextfile(path); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
