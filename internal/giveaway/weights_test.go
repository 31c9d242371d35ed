package giveaway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightFor(t *testing.T) {
	roleWeights := map[string]int{
		"booster":   3,
		"supporter": 2,
		"legend":    5,
	}

	tests := []struct {
		name    string
		roleIDs []string
		want    int
	}{
		{name: "no roles", roleIDs: nil, want: DefaultWeight},
		{name: "unconfigured roles only", roleIDs: []string{"member", "mod"}, want: DefaultWeight},
		{name: "single configured role", roleIDs: []string{"supporter"}, want: 2},
		{name: "highest tier wins over stacking", roleIDs: []string{"supporter", "booster", "legend"}, want: 5},
		{name: "configured mixed with unconfigured", roleIDs: []string{"member", "booster"}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, weightFor(tt.roleIDs, roleWeights))
		})
	}
}

func TestWeightFor_BonusBelowDefaultIgnored(t *testing.T) {
	// A misconfigured bonus of 0 must not drop an entrant below the default.
	roleWeights := map[string]int{"broken": 0}
	assert.Equal(t, DefaultWeight, weightFor([]string{"broken"}, roleWeights))
}
