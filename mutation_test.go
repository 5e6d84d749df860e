//go:build mutation

package impstub

import (
	"testing"

	"github.com/gtramontina/ooze"
)

func TestMutation(t *testing.T) {
	ooze.Release(
		t,
		ooze.WithTestCommand("go test -buildvcs=false ./internal/... ./match/... ."),
		ooze.Parallel(),
		ooze.IgnoreSourceFiles("^dev/.*|^impstubgen/.*|^UAT/.*|generated_.*|.*_test.go"),
		ooze.WithMinimumThreshold(0.90),
		ooze.WithRepositoryRoot("."),
		ooze.ForceColors(),
	)
}
