package budget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cclust/budget"
)

func TestLedger(t *testing.T) {
	l := budget.NewLedger(10)
	assert.Equal(t, 10, l.Limit())
	assert.Equal(t, 10, l.Remaining())
	assert.False(t, l.Exhausted())

	l.Charge(4)
	assert.Equal(t, 4, l.Used())
	assert.Equal(t, 6, l.Remaining())

	l.Charge(9)
	assert.Equal(t, 13, l.Used(), "overshoot is recorded")
	assert.Zero(t, l.Remaining())
	assert.True(t, l.Exhausted())
}

func TestLedgerZeroLimit(t *testing.T) {
	assert.True(t, budget.NewLedger(0).Exhausted())
	l := budget.NewLedger(-5)
	assert.Zero(t, l.Limit())
	assert.True(t, l.Exhausted())
}

func TestEvaluated(t *testing.T) {
	e := budget.Of("x", 3)
	assert.Equal(t, "x", e.Value)
	assert.Equal(t, 3, e.Evaluations)
}
