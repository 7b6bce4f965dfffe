package meta

import (
	"errors"
	"time"

	"github.com/katalvlaran/pegsolve/solver"
)

// errGovernorExhausted and errGovernorBudgetExhausted are Governor's
// terminal sentinels, distinguishing "every ladder rung failed" from
// "the budget ran out before the ladder finished".
var (
	errGovernorExhausted       = errors.New("meta: governor exhausted its fallback ladder")
	errGovernorBudgetExhausted = errors.New("meta: governor budget exhausted")
	errSequentialExhausted     = errors.New("meta: sequential exhausted its engine ladder")
)

// engineSlot is one entry in an ordered meta-solver ladder: a name for
// progress reporting, the runner itself, and an optional guaranteed
// minimum budget (spec 4.G's "the terminal brute force is guaranteed a
// minimum budget ... even if the overall budget is exceeded").
type engineSlot struct {
	name      string
	run       func(solver.Options) (solver.Result, error)
	minBudget time.Duration
}
