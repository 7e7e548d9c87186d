package fileio

import "testing"

func TestRelativeToSize(t *testing.T) {
	tests := []struct {
		position int64
		size     int64
		want     int64
	}{
		{0, 100, 0},
		{100, 100, 100},
		{-1, 100, 99},
		{-100, 100, 0},
		{-101, 100, 0},
		{-200, 100, 0},
		{105, 100, 100},
		{150, 100, 100},
		{42, 100, 42},
		{-42, 100, 58},
		{0, 0, 0},
		{-1, 0, 0},
		{1, 0, 0},
		{-1, 2, 1},
	}

	for _, tt := range tests {
		if got := RelativeToSize(tt.position, tt.size); got != tt.want {
			t.Errorf("RelativeToSize(%d, %d) = %d, want %d", tt.position, tt.size, got, tt.want)
		}
	}
}

func TestRelativeToSizeStaysInRange(t *testing.T) {
	for size := int64(0); size <= 16; size++ {
		for position := -3*size - 3; position <= 3*size+3; position++ {
			got := RelativeToSize(position, size)
			if got < 0 || got > size {
				t.Fatalf("RelativeToSize(%d, %d) = %d, outside [0, %d]", position, size, got, size)
			}
			// Applying it again to an absolute offset is a no-op.
			if again := RelativeToSize(got, size); again != got {
				t.Fatalf("RelativeToSize not idempotent at (%d, %d): %d then %d", position, size, got, again)
			}
		}
	}
}
