package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestRotatorAdvancesOnTicks(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRotator(1, 5*time.Millisecond)
	r.SetCount(4)
	r.Start()
	defer r.Stop()

	require.Eventually(t, func() bool {
		return r.State().Current != 0
	}, time.Second, time.Millisecond)
}

func TestRotatorStopReleasesGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRotator(3, time.Millisecond)
	r.SetCount(9)
	r.Start()
	r.Stop()

	// Stop is idempotent and safe after the goroutine exited.
	r.Stop()
}

func TestRotatorStopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRotator(3, time.Minute)
	r.Stop()
}

func TestRotatorNavigationAndResize(t *testing.T) {
	r := NewRotator(3, time.Hour)
	r.SetCount(7)

	r.GoTo(2)
	assert.Equal(t, 2, r.State().Current)

	r.GoTo(99)
	assert.Equal(t, 2, r.State().Current)

	r.Advance()
	assert.Equal(t, 0, r.State().Current)

	r.SetCount(2)
	assert.Equal(t, 0, r.State().Current)
	assert.Equal(t, 1, r.State().PageCount())
}
