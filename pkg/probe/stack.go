package probe

import "unsafe"

// StackPointerFunc reads the stack pointer of the calling goroutine or thread.
type StackPointerFunc func() uintptr

// CurrentStackPointer returns an address inside the calling frame's stack.
// The value is opaque; it is only meaningful relative to other readings on the
// same stack.
//
//go:noinline
func CurrentStackPointer() uintptr {
	var marker byte
	return uintptr(unsafe.Pointer(&marker))
}
