package submission

import (
	"testing"

	"go.uber.org/goleak"
)

// opencensus, pulled in through the genai client, starts a package-level
// stats worker from init that lives for the whole process.
var leakOptions = []goleak.Option{
	goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, leakOptions...)
}
