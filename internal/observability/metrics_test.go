package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("GET", "/health", 200, 12*time.Millisecond)
	RecordFrame("encode", "ok")
	RecordTransfer(DirectionTransmit, 3, 4097, true)
}

func TestRecordFrameCounts(t *testing.T) {
	before := testutil.ToFloat64(linecodeFrames.WithLabelValues("decode", "end_of_packet"))
	RecordFrame("decode", "end_of_packet")
	RecordFrame("decode", "end_of_packet")
	after := testutil.ToFloat64(linecodeFrames.WithLabelValues("decode", "end_of_packet"))
	if after-before != 2 {
		t.Fatalf("expected 2 increments, got %v", after-before)
	}
}

func TestRecordTransferCounts(t *testing.T) {
	before := testutil.ToFloat64(transferBytes.WithLabelValues(DirectionReceive))
	RecordTransfer(DirectionReceive, 2, 2049, true)
	after := testutil.ToFloat64(transferBytes.WithLabelValues(DirectionReceive))
	if after-before != 2049 {
		t.Fatalf("expected 2049 bytes recorded, got %v", after-before)
	}
}
