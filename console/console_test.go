package console

import "testing"

// TestSizePositive verifies Size always reports usable dimensions, whether
// a real terminal answered the probe or the fallback kicked in.
func TestSizePositive(t *testing.T) {
	w, h := Size()
	if w <= 0 || h <= 0 {
		t.Errorf("Size() = (%d, %d), want positive dimensions", w, h)
	}
}

// TestSizeFdBadDescriptor verifies probing a closed descriptor reports an
// error instead of garbage dimensions.
func TestSizeFdBadDescriptor(t *testing.T) {
	if _, _, err := SizeFd(^uintptr(0)); err == nil {
		t.Error("SizeFd on invalid fd: expected error, got nil")
	}
}
