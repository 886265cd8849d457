package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"

	"github.com/TiVo/hxcache/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_SpanLifecycle(t *testing.T) {
	recorder := progrock.New()

	_, span := recorder.Start(context.Background(), "resolve lime")
	span.Stamp("asking haxelib")
	span.End()
	span.End()

	_, failed := recorder.Start(context.Background(), "resolve openfl")
	failed.RecordError(zerr.New("haxelib failed"))
	failed.End()

	assert.NoError(t, recorder.Close())
}
