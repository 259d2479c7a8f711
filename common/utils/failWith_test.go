package utils

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	bettererrors "github.com/xtuc/better-errors"
)

func captureFailure(t *testing.T) (*bytes.Buffer, *int) {
	var buf bytes.Buffer
	status := -1

	previousOutput, previousExit := ErrorOutput, Exit
	t.Cleanup(func() {
		ErrorOutput, Exit = previousOutput, previousExit
	})

	ErrorOutput = &buf
	Exit = func(code int) { status = code }

	return &buf, &status
}

func TestFailWithExitsWithStatusOne(t *testing.T) {
	buf, status := captureFailure(t)

	FailWith(bettererrors.
		NewFromString("Could not parse vent line").
		SetContext("text", "1,1 1,2"))

	assert.Equal(t, 1, *status)
	assert.Contains(t, buf.String(), "Could not parse vent line")
}

func TestFailWithPlainError(t *testing.T) {
	buf, status := captureFailure(t)

	FailWith(errors.New("05.txt: no such file or directory"))

	assert.Equal(t, 1, *status)
	assert.Contains(t, buf.String(), "no such file or directory")
}

func TestFailureHooksAreRestored(t *testing.T) {
	t.Run("capture", func(t *testing.T) {
		captureFailure(t)
		FailWith(errors.New("disk gone"))
	})

	assert.Equal(t, io.Writer(os.Stderr), ErrorOutput)
	assert.NotNil(t, Exit)
}
