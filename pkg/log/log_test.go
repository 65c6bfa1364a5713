package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newBufferedLogger() (*bytes.Buffer, Logger) {
	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return buf, &logger{entry: logrus.NewEntry(base)}
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentFiltersNoise(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf, l := newBufferedLogger()

	l.WithFields(Fields{"event": "tick", "remote_addr": "10.0.0.1"}).Info("hello")

	assert.Contains(t, buf.String(), "event=tick")
	assert.NotContains(t, buf.String(), "remote_addr")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf, l := newBufferedLogger()

	ctx, id := WithCorrelationID(context.Background())
	l.WithContext(ctx).WithField("remote_addr", "10.0.0.1").Info("hello")

	assert.Contains(t, buf.String(), "remote_addr=10.0.0.1")
	assert.Contains(t, buf.String(), id)
}
