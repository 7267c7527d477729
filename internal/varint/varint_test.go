package varint

import "testing"

func TestDecode_S1Scenarios(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want uint32
	}{
		{"zero", []byte{0x00}, 0},
		{"onebyte-max", []byte{0x7F}, 127},
		{"twobyte", []byte{0x80, 0x01}, 128},
		{"threebyte", []byte{0xE5, 0x8E, 0x26}, 624485},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, pos, err := Decode(c.in, 0)
			if err != nil {
				t.Fatalf("Decode error: %v", err)
			}
			if got != c.want {
				t.Fatalf("Decode(%x) = %d, want %d", c.in, got, c.want)
			}
			if pos != len(c.in) {
				t.Fatalf("cursor at %d, want %d", pos, len(c.in))
			}
		})
	}
}

func TestDecode_Truncated(t *testing.T) {
	if _, _, err := Decode([]byte{0x80}, 0); err != ErrTruncated {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 624485, 1 << 20, 1<<32 - 1}
	for _, v := range values {
		buf := Encode(nil, v)
		got, pos, err := Decode(buf, 0)
		if err != nil {
			t.Fatalf("Decode(Encode(%d)) error: %v", v, err)
		}
		if got != v {
			t.Fatalf("Decode(Encode(%d)) = %d", v, got)
		}
		if pos != len(buf) {
			t.Fatalf("cursor %d, want %d", pos, len(buf))
		}
	}
}

func TestDecodeLiteralDeltas(t *testing.T) {
	var buf []byte
	buf = Encode(buf, 6) // first literal, plain
	buf = Encode(buf, 4) // delta +2 (sign bit clear, magnitude 2)
	buf = Encode(buf, 5) // delta -2 (sign bit set, magnitude 2)

	got, pos, err := DecodeLiteralDeltas(buf, 0, 3)
	if err != nil {
		t.Fatalf("DecodeLiteralDeltas error: %v", err)
	}
	want := []uint32{6, 8, 6}
	for i, w := range want {
		if got[i] != w {
			t.Fatalf("literal[%d] = %d, want %d", i, got[i], w)
		}
	}
	if pos != len(buf) {
		t.Fatalf("cursor %d, want %d", pos, len(buf))
	}
}

func TestDecodeLiteralDeltas_Zero(t *testing.T) {
	got, pos, err := DecodeLiteralDeltas([]byte{0x01}, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil slice for n=0, got %v", got)
	}
	if pos != 0 {
		t.Fatalf("cursor moved for n=0: %d", pos)
	}
}
