package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ttacon/chalk"
	bettererrors "github.com/xtuc/better-errors"
	bettererrorstree "github.com/xtuc/better-errors/printer/tree"
)

// Version is stamped at build time with -ldflags "-X ...utils.Version=".
var Version = "dev"

var (
	ErrorOutput io.Writer = os.Stderr
	Exit                  = os.Exit
)

func GetVersion() string {
	return Version
}

// FailWith prints the error chain under the current command line and exits
// with status 1.
func FailWith(err error) {
	command := strings.Join(os.Args, " ")

	berror := bettererrors.
		New(command).
		SetContext("version", GetVersion()).
		With(asBetterError(err))

	msg := bettererrorstree.PrintChain(berror)

	fmt.Fprintln(ErrorOutput, "")
	fmt.Fprintln(ErrorOutput, chalk.Red.Color("❌  An error occurred."))
	fmt.Fprintln(ErrorOutput, "")

	fmt.Fprint(ErrorOutput, msg)

	fmt.Fprintln(ErrorOutput, "")

	Exit(1)
}

func WarnWith(err error) {
	msg := bettererrorstree.PrintChain(asBetterError(err))

	fmt.Fprintln(ErrorOutput, "")
	fmt.Fprintln(ErrorOutput, chalk.Yellow.Color("⚠️  Warning"))
	fmt.Fprintln(ErrorOutput, "")

	fmt.Fprint(ErrorOutput, msg)

	fmt.Fprintln(ErrorOutput, "")
}

func asBetterError(err error) *bettererrors.Chain {
	if bettererrors.IsBetterError(err) {
		return err.(*bettererrors.Chain)
	}

	return bettererrors.NewFromErr(err)
}
