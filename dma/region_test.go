package dma

import (
	"testing"
	"unsafe"

	"github.com/opencore/pcnetkernel/internal/mem"
)

// withHeapOffset sets PhysOffset 1 GiB below a fresh heap address, rounded
// down to 1 MiB, so that heap addresses within 1 GiB of it translate below
// 2^31 with their alignment kept. The default PhysOffset reflects the
// reference QEMU boundary, and a zero offset leaves hosted heap addresses
// above 2^31; both would reject ordinary hosted test addresses.
func withHeapOffset(t *testing.T) {
	saved := mem.PhysOffset
	probe := mem.VirtAddr(unsafe.Pointer(new(byte)))
	mem.PhysOffset = probe&^(1<<20-1) - 1<<30
	t.Cleanup(func() { mem.PhysOffset = saved })
}

func TestReserveAlignment(t *testing.T) {
	withHeapOffset(t)

	r := &Region{used: make(map[uint32][]byte)}

	addr, buf, err := r.Reserve(16, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(buf) != 16 {
		t.Errorf("got buf len %d, want 16", len(buf))
	}

	if addr%16 != 0 {
		t.Errorf("addr %#x not aligned to 16", addr)
	}

	got, ok := r.Lookup(addr)
	if !ok || &got[0] != &buf[0] {
		t.Errorf("Lookup(%#x) did not return the reserved buffer", addr)
	}
}

func TestReleaseForgetsBuffer(t *testing.T) {
	withHeapOffset(t)

	r := &Region{used: make(map[uint32][]byte)}

	addr, _, err := r.Reserve(8, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.Release(addr)

	if _, ok := r.Lookup(addr); ok {
		t.Error("Lookup succeeded after Release")
	}
}

func TestReserveRejectsZeroSize(t *testing.T) {
	withHeapOffset(t)

	r := &Region{used: make(map[uint32][]byte)}

	if _, _, err := r.Reserve(0, 0); err == nil {
		t.Error("expected error reserving zero bytes")
	}
}
