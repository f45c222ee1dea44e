package solver

import "sync"

// The factorial table is process-wide and read-only after first use. It is
// built by repeated checked multiplication and ends just before the first
// product that overflows uint64, which puts 20! in the last slot.
var factorialTable = sync.OnceValue(func() []uint64 {
	table := []uint64{1}
	for k := uint64(1); ; k++ {
		acc := checked(table[len(table)-1])
		if acc.mul(k) {
			return table
		}
		table = append(table, acc.value())
	}
})

// factorialOf returns n!, or 0 when n! does not fit in a uint64.
func factorialOf(n uint64) uint64 {
	table := factorialTable()
	if n < uint64(len(table)) {
		return table[n]
	}
	return 0
}
