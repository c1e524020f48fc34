package impl

import "time"

// stubClock returns a fixed instant so summaries and ledger entries are
// deterministic under test.
type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time {
	return c.now
}
