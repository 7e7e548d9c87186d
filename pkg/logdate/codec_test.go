package logdate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode(t *testing.T) {
	d := MustNew(2024, 3, 7)

	assert.Equal(t, "2024-03-07", DefaultCodec.Encode(d))
	assert.Equal(t, "20240307", CompactCodec.Encode(d))
	assert.Equal(t, "2024_03_07", Codec{Separator: '_'}.Encode(d))
	assert.Equal(t, "0999-12-31", DefaultCodec.Encode(MustNew(999, 12, 31)))
	assert.Equal(t, "2024-03-07", d.String())
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		codec  Codec
		input  string
		want   Date
		wantOK bool
	}{
		{"separated with extension", DefaultCodec, "2024-03-07.log", MustNew(2024, 3, 7), true},
		{"separated json", DefaultCodec, "2024-03-07.json", MustNew(2024, 3, 7), true},
		{"separated bare", DefaultCodec, "2024-03-07", MustNew(2024, 3, 7), true},
		{"only last extension stripped", DefaultCodec, "2024-03-07.log.gz", Date{}, false},
		{"compact", CompactCodec, "20240307.log", MustNew(2024, 3, 7), true},
		{"compact rejects separated", CompactCodec, "2024-03-07.log", Date{}, false},
		{"separated rejects compact", DefaultCodec, "20240307.log", Date{}, false},
		{"wrong separator", DefaultCodec, "2024_03_07.log", Date{}, false},
		{"separator misplaced", DefaultCodec, "202-403-07.log", Date{}, false},
		{"non digit", DefaultCodec, "2024-0a-07.log", Date{}, false},
		{"sign", CompactCodec, "+2024037.log", Date{}, false},
		{"too short", DefaultCodec, "2024-3-7.log", Date{}, false},
		{"too long", DefaultCodec, "2024-03-077.log", Date{}, false},
		{"month out of range", DefaultCodec, "2024-13-07.log", Date{}, false},
		{"day out of range", DefaultCodec, "2024-03-32.log", Date{}, false},
		{"day zero", DefaultCodec, "2024-03-00.log", Date{}, false},
		{"unrelated name", DefaultCodec, "notes.txt", Date{}, false},
		{"empty", DefaultCodec, "", Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.codec.Decode(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	dates := []Date{
		MustNew(2024, 1, 1),
		MustNew(2024, 12, 31),
		MustNew(1999, 9, 9),
		MustNew(2100, 2, 29),
		MustNew(1, 1, 1),
		MustNew(0, 1, 1),
		MustNew(9999, 12, 31),
	}

	for _, codec := range []Codec{DefaultCodec, CompactCodec} {
		for _, d := range dates {
			got, ok := codec.Decode(codec.Encode(d))
			if !ok || got != d {
				t.Errorf("codec %q: round trip of %v gave %v (ok=%v)", codec.Separator, d, got, ok)
			}

			got, ok = codec.Decode(codec.Encode(d) + ".json")
			if !ok || got != d {
				t.Errorf("codec %q: round trip with extension of %v gave %v (ok=%v)", codec.Separator, d, got, ok)
			}
		}
	}
}

func TestMatchesAfter(t *testing.T) {
	after := MustNew(2024, 3, 7)

	assert.True(t, DefaultCodec.MatchesAfter("2024-03-08.log", &after))
	assert.False(t, DefaultCodec.MatchesAfter("2024-03-07.log", &after))
	assert.False(t, DefaultCodec.MatchesAfter("2024-03-06.log", &after))
	assert.False(t, DefaultCodec.MatchesAfter("garbage.log", &after))
	assert.True(t, DefaultCodec.MatchesAfter("2000-01-01.log", nil))
	assert.False(t, DefaultCodec.MatchesAfter("garbage.log", nil))
}
