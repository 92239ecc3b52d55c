package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestISO(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("BRT", -3*60*60)
	ts := time.Date(2024, 3, 5, 9, 30, 15, 123_000_000, loc)

	assert.Equal(t, "2024-03-05T12:30:15.123Z", ISO(ts))
}
