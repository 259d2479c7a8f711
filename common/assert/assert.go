package assert

import (
	"github.com/bytearena/ventscan/common/utils"
	bettererrors "github.com/xtuc/better-errors"
)

// Assert aborts the run when an invariant does not hold.
func Assert(cond bool, msg string) {
	if !cond {
		berror := bettererrors.
			NewFromString("Assertion error").
			With(bettererrors.NewFromString(msg))

		utils.FailWith(berror)
	}
}
