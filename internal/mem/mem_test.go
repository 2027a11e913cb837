package mem

import "testing"

func TestTranslate(t *testing.T) {
	saved := PhysOffset
	PhysOffset = 0x1000
	defer func() { PhysOffset = saved }()

	phys, err := Translate(0x1000 + 0x20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if phys != 0x20 {
		t.Errorf("got phys %#x, want 0x20", phys)
	}
}

func TestTranslateBelowOffset(t *testing.T) {
	saved := PhysOffset
	PhysOffset = 0x1000
	defer func() { PhysOffset = saved }()

	if _, err := Translate(PhysOffset - 1); err == nil {
		t.Error("expected error for address below offset")
	}
}

func TestTranslateAbove32Bit(t *testing.T) {
	saved := PhysOffset
	PhysOffset = 0
	defer func() { PhysOffset = saved }()

	if _, err := Translate(1 << 31); err == nil {
		t.Error("expected error for a physical address of 2^31")
	}

	if _, err := Translate((1 << 31) - 1); err != nil {
		t.Errorf("unexpected error just below 2^31: %v", err)
	}
}
