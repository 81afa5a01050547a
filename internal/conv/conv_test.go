package conv

import (
	"math"
	"testing"
)

func TestIntToUint32(t *testing.T) {
	if got := IntToUint32(0); got != 0 {
		t.Errorf("IntToUint32(0) = %d", got)
	}
	if got := IntToUint32(70000); got != 70000 {
		t.Errorf("IntToUint32(70000) = %d", got)
	}
	mustPanic(t, "negative", func() { IntToUint32(-1) })
}

func TestIntToUint16(t *testing.T) {
	if got := IntToUint16(math.MaxUint16); got != math.MaxUint16 {
		t.Errorf("IntToUint16(max) = %d", got)
	}
	mustPanic(t, "too large", func() { IntToUint16(math.MaxUint16 + 1) })
	mustPanic(t, "negative", func() { IntToUint16(-1) })
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
