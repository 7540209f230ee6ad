package strips

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPlan_Accumulates covers size, cost, labels and ordering
func TestPlan_Accumulates(t *testing.T) {
	plan := NewPlan()
	assert.Equal(t, 0, plan.Size())
	assert.Equal(t, 0.0, plan.Cost())
	assert.Empty(t, plan.Labels())

	plan.Append(&Operator{Name: "pick-up", Args: []string{"b"}, Cost: 1.0})
	plan.Append(&Operator{Name: "stack", Args: []string{"b", "a"}, Cost: 1.0})

	assert.Equal(t, 2, plan.Size())
	assert.Equal(t, 2.0, plan.Cost())
	assert.Equal(t, []string{"pick-up b", "stack b a"}, plan.Labels())
	assert.Len(t, plan.Actions(), 2)
}

// TestPlan_String renders a numbered listing
func TestPlan_String(t *testing.T) {
	plan := NewPlan()
	plan.Append(&Operator{Name: "pick-up", Args: []string{"b"}, Cost: 1.0})
	plan.Append(&Operator{Name: "stack", Args: []string{"b", "a"}, Cost: 1.0})

	assert.Equal(t, "0: (pick-up b)\n1: (stack b a)\n", plan.String())
}
