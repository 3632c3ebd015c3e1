package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yinpa-bot/yinpa/internal/pkg/clock"
)

func TestFrozen(t *testing.T) {
	start := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	c := clock.NewFrozen(start)

	assert.Equal(t, start, c.Now())

	c.Advance(25 * time.Second)
	assert.Equal(t, start.Add(25*time.Second), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestReal_SecondResolution(t *testing.T) {
	now := clock.New().Now()
	assert.Equal(t, 0, now.Nanosecond())
}
