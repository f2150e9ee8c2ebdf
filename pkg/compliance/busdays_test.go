package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBusinessDaysBetween(t *testing.T) {
	t.Run("friday to next friday is five", func(t *testing.T) {
		assert.Equal(t, 5, BusinessDaysBetween(day("2025-09-05"), day("2025-09-12")))
	})

	t.Run("same day is zero", func(t *testing.T) {
		assert.Equal(t, 0, BusinessDaysBetween(day("2025-09-05"), day("2025-09-05")))
	})

	t.Run("auction before publication is zero", func(t *testing.T) {
		assert.Equal(t, 0, BusinessDaysBetween(day("2025-09-12"), day("2025-09-05")))
	})

	t.Run("weekend days do not count", func(t *testing.T) {
		// Friday to Monday crosses only the weekend plus Monday itself.
		assert.Equal(t, 1, BusinessDaysBetween(day("2025-09-05"), day("2025-09-08")))
	})

	t.Run("count never decreases as the auction moves out", func(t *testing.T) {
		from := day("2025-09-01")
		prev := 0
		for i := 1; i <= 30; i++ {
			got := BusinessDaysBetween(from, from.AddDate(0, 0, i))
			assert.GreaterOrEqual(t, got, prev)
			prev = got
		}
	})
}
