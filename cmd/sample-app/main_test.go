package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	logger "github.com/beubi/sampleapp/pkg/sample/support/util/logger"
)

type brokenStdout struct{}

func (brokenStdout) Write(p []byte) (int, error) { return 0, errors.New("bad file descriptor") }

func TestRun_NoArguments(t *testing.T) {
	stdout := &bytes.Buffer{}

	code := run(nil, stdout)

	assert.Equal(t, 0, code)
	assert.Equal(t, "Hello World!\n", stdout.String())
}

func TestRun_ArgumentsIgnored(t *testing.T) {
	withoutArgs := &bytes.Buffer{}
	withArgs := &bytes.Buffer{}

	assert.Equal(t, 0, run(nil, withoutArgs))
	assert.Equal(t, 0, run([]string{"foo", "--bar"}, withArgs))

	assert.Equal(t, withoutArgs.Bytes(), withArgs.Bytes())
}

func TestRun_RepeatedRunsIdentical(t *testing.T) {
	stdout := &bytes.Buffer{}
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, run(nil, stdout))
	}
	assert.Equal(t, "Hello World!\nHello World!\nHello World!\n", stdout.String())
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	logger.SetOutput(buf)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })
	return buf
}

func TestRun_StdoutFailure(t *testing.T) {
	logs := captureLogs(t)

	assert.Equal(t, 1, run(nil, brokenStdout{}))

	out := logs.String()
	assert.Equal(t, 1, strings.Count(out, "[ERROR]"), out)
	assert.Contains(t, out, "Greeting FAILED")
	assert.Contains(t, out, "failed to write greeting after 0 of 13 bytes: bad file descriptor")
}

func TestRun_NoLogOutput(t *testing.T) {
	logs := captureLogs(t)
	stdout := &bytes.Buffer{}

	code := run([]string{"a", "b"}, stdout)

	assert.Equal(t, 0, code)
	assert.Equal(t, "Hello World!\n", stdout.String())
	assert.Empty(t, logs.String())
}

func TestEmbeddedConfig(t *testing.T) {
	assert.Contains(t, string(embeddedConfig), "level: WARN")
}
