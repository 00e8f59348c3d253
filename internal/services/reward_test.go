package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextReward(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		want    float64
	}{
		{"zero balance", 0, 10},
		{"just below first band", 99.99, 10},
		{"first band boundary", 100, 15},
		{"second band", 499, 15},
		{"third band", 500, 20},
		{"fourth band", 1000, 30},
		{"below top band", 4999.99, 30},
		{"top band", 5000, 50},
		{"far above top band", 1_000_000, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextReward(tt.balance))
		})
	}
}
