package wasmmem

import (
	"fortio.org/safecast"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/fastcall"
	"github.com/wippyai/fastcall/errors"
)

// View wraps a module's entire linear memory as the byte view a dispatcher
// hands to CallbackOptions. Writes through the view's storage land directly
// in the module's memory.
func View(mem api.Memory) (*fastcall.TypedArray[uint8], error) {
	size := mem.Size()
	n, err := safecast.Conv[int](size)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseMemory, errors.KindInvalidData, err, "memory size")
	}
	buf, ok := mem.Read(0, size)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseMemory, nil, 0, n)
	}
	view := fastcall.ViewOf(buf)
	return &view, nil
}

// ViewRange wraps the [offset, offset+length) slice of a module's linear
// memory, the shape a typed-array argument over guest memory takes.
func ViewRange(mem api.Memory, offset, length uint32) (*fastcall.TypedArray[uint8], error) {
	end, err := safecast.Conv[int](uint64(offset) + uint64(length))
	if err != nil {
		return nil, errors.Wrap(errors.PhaseMemory, errors.KindInvalidData, err, "memory range")
	}
	buf, ok := mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseMemory, nil, end, int(mem.Size()))
	}
	view := fastcall.ViewOf(buf)
	return &view, nil
}
