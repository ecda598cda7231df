package mechanicRepo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWarnIfSlow(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	repo := &MongoMechanicRepo{logger: zap.New(core)}

	repo.warnIfSlow("search", time.Now())
	assert.Zero(t, logs.Len())

	repo.warnIfSlow("search", time.Now().Add(-2*slowQueryThreshold), zap.String("city", "Chennai"))
	entries := logs.TakeAll()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "slow mechanic query", entries[0].Message)
		fields := entries[0].ContextMap()
		assert.Equal(t, "search", fields["op"])
		assert.Equal(t, "Chennai", fields["city"])
	}
}
