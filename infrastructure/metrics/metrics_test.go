package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordUpstreamRequest_StatusLabel(t *testing.T) {
	before200 := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("create_photo", "200"))
	beforeErr := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("create_photo", "error"))

	RecordUpstreamRequest("create_photo", 200, 10*time.Millisecond)
	RecordUpstreamRequest("create_photo", 0, time.Millisecond)
	RecordUpstreamRequest("create_photo", 0, time.Millisecond)

	assert.Equal(t, before200+1, testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("create_photo", "200")))
	assert.Equal(t, beforeErr+2, testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("create_photo", "error")))
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/facebook/post", "401"))

	RecordAPIRequest("POST", "/api/facebook/post", 401, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/facebook/post", "401")))
}

func TestRecordDropped(t *testing.T) {
	before := testutil.ToFloat64(DroppedSubRequests.WithLabelValues("carousel_photo"))

	RecordDropped("carousel_photo")

	assert.Equal(t, before+1, testutil.ToFloat64(DroppedSubRequests.WithLabelValues("carousel_photo")))
}
