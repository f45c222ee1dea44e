package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckedAdd(t *testing.T) {
	tests := []struct {
		name     string
		acc, x   uint64
		want     uint64
		overflow bool
	}{
		{"small", 2, 3, 5, false},
		{"zero", 0, 0, 0, false},
		{"to max", math.MaxUint64 - 1, 1, math.MaxUint64, false},
		{"past max", math.MaxUint64, 1, 0, true},
		{"far past max", math.MaxUint64, math.MaxUint64, math.MaxUint64 - 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := checked(tt.acc)
			over := acc.add(tt.x)
			assert.Equal(t, tt.overflow, over)
			assert.Equal(t, tt.want, acc.value())
		})
	}
}

func TestCheckedSub(t *testing.T) {
	tests := []struct {
		name      string
		acc, x    uint64
		want      uint64
		underflow bool
	}{
		{"small", 5, 3, 2, false},
		{"to zero", 7, 7, 0, false},
		{"borrow", 3, 5, math.MaxUint64 - 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := checked(tt.acc)
			under := acc.sub(tt.x)
			assert.Equal(t, tt.underflow, under)
			assert.Equal(t, tt.want, acc.value())
		})
	}
}

func TestCheckedMul(t *testing.T) {
	tests := []struct {
		name     string
		acc, x   uint64
		overflow bool
	}{
		{"small", 6, 7, false},
		{"by zero", math.MaxUint64, 0, false},
		{"at edge", 1 << 32, 1<<32 - 1, false},
		{"past edge", 1 << 32, 1 << 32, true},
		{"huge", math.MaxUint64, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := checked(tt.acc)
			assert.Equal(t, tt.overflow, acc.mul(tt.x))
			if !tt.overflow {
				assert.Equal(t, tt.acc*tt.x, acc.value())
			}
		})
	}
}

func TestCheckedGate(t *testing.T) {
	acc := checked(42)
	acc.gate(true)
	assert.Equal(t, uint64(42), acc.value())
	acc.gate(false)
	assert.Equal(t, uint64(0), acc.value())
}

func TestGCD(t *testing.T) {
	tests := []struct {
		x, y, want uint64
	}{
		{0, 0, 0},
		{0, 9, 9},
		{9, 0, 9},
		{12, 18, 6},
		{17, 13, 1},
		{1 << 40, 1 << 20, 1 << 20},
		{2 * 3 * 5 * 7, 3 * 7 * 11, 21},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, gcd(tt.x, tt.y), "gcd(%d, %d)", tt.x, tt.y)
	}
}

func TestIsqrt(t *testing.T) {
	tests := []struct {
		n, want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 1},
		{4, 2},
		{49, 7},
		{50, 7},
		{1<<62 - 1, 1<<31 - 1},
		{1 << 62, 1 << 31},
		{(1<<32 - 1) * (1<<32 - 1), 1<<32 - 1},
		{math.MaxUint64, 1<<32 - 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isqrt(tt.n), "isqrt(%d)", tt.n)
	}
}

func TestRepunit(t *testing.T) {
	tests := []struct {
		repeats, digit int
		want           uint64
	}{
		{1, 7, 7},
		{4, 3, 3333},
		{2, 1, 11},
		{19, 9, 9999999999999999999},
		{20, 9, 0}, // overflows uint64
		{0, 5, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, repunit(tt.repeats, tt.digit),
			"repunit(%d, %d)", tt.repeats, tt.digit)
	}
}
