package atomic

import "sync/atomic"

// Boolean is a boolean value, all actions of it is atomic
type Boolean uint32

// Get reads the value atomically
func (b *Boolean) Get() bool {
	return atomic.LoadUint32((*uint32)(b)) != 0
}

// Set writes the value atomically
func (b *Boolean) Set(v bool) {
	if v {
		atomic.StoreUint32((*uint32)(b), 1)
	} else {
		atomic.StoreUint32((*uint32)(b), 0)
	}
}

// CompareAndSwap executes the compare-and-swap operation atomically
func (b *Boolean) CompareAndSwap(old, new bool) bool {
	var o, n uint32
	if old {
		o = 1
	}
	if new {
		n = 1
	}
	return atomic.CompareAndSwapUint32((*uint32)(b), o, n)
}
