package linear_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/histo/internal/adapters/linear"
)

func TestProgress_Protocol(t *testing.T) {
	var out bytes.Buffer
	p := linear.NewProgress(&out)

	p.Step(1, 4, "Looking for input file")
	p.Detail("Input file not found. Creating new test data: /tmp/input-10.dat")
	p.Step(2, 4, "Looking for verification file /tmp/sol-10-4.dat")
	p.Step(3, 4, "Verification file not found. Creating new verification data")
	p.Step(4, 4, "Running student solution")
	p.Passed(12)

	want := "[1/4] Looking for input file\n" +
		"\t- Input file not found. Creating new test data: /tmp/input-10.dat\n" +
		"[2/4] Looking for verification file /tmp/sol-10-4.dat\n" +
		"[3/4] Verification file not found. Creating new verification data\n" +
		"[4/4] Running student solution\n" +
		"Execution time: 12 ms\n"
	assert.Equal(t, want, out.String(), "redirected output carries no escape codes")
}

func TestProgress_NilWriter(t *testing.T) {
	assert.NotNil(t, linear.NewProgress(nil))
}
