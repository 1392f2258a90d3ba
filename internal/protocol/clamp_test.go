package protocol

import "testing"

func TestClampU8(t *testing.T) {
	cases := []struct{ v, min, max, want uint8 }{
		{5, 0, 10, 5},
		{15, 0, 10, 10},
		{2, 5, 10, 5},
		{5, 5, 5, 5},
		{0xFF, 0x0C, 0x3F, 0x3F},
	}
	for _, c := range cases {
		if got := ClampU8(c.v, c.min, c.max); got != c.want {
			t.Errorf("ClampU8(%d, %d, %d) = %d, want %d", c.v, c.min, c.max, got, c.want)
		}
	}
}

func TestClampU16(t *testing.T) {
	cases := []struct{ v, min, max, want uint16 }{
		{500, 60, 900, 500},
		{5000, 60, 900, 900},
		{1, 60, 900, 60},
	}
	for _, c := range cases {
		if got := ClampU16(c.v, c.min, c.max); got != c.want {
			t.Errorf("ClampU16(%d, %d, %d) = %d, want %d", c.v, c.min, c.max, got, c.want)
		}
	}
}
