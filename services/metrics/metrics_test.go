package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveUpload(t *testing.T) {
	before := testutil.ToFloat64(uploadsTotal.WithLabelValues("account", StatusError))
	ObserveUpload("account", errors.New("boom"), time.Now())
	after := testutil.ToFloat64(uploadsTotal.WithLabelValues("account", StatusError))
	assert.Equal(t, before+1, after)
}

func TestAddRows_IgnoresNonPositive(t *testing.T) {
	before := testutil.ToFloat64(rowsTotal.WithLabelValues("netrefer", OutcomeSkipped))
	AddRows("netrefer", OutcomeSkipped, 0)
	AddRows("netrefer", OutcomeSkipped, 2)
	after := testutil.ToFloat64(rowsTotal.WithLabelValues("netrefer", OutcomeSkipped))
	assert.Equal(t, before+2, after)
}
