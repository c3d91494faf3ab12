package mapping

import (
	"errors"
	"sort"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motor-datasheet/internal/model"
)

func TestLookupPlainVariants(t *testing.T) {
	tests := []struct {
		brake    bool
		encoder  model.Encoder
		expected map[Field]int
	}{
		{false, model.EncoderR4, map[Field]int{"n": 9, "m": 11, "i": 12, "ms": 14, "is": 15}},
		{true, model.EncoderR4, map[Field]int{"n": 34, "m": 36, "i": 37, "ms": 39, "is": 40}},
		{false, model.EncoderRx, map[Field]int{"n": 47, "m": 49, "i": 50, "ms": 52, "is": 53}},
	}

	for _, tt := range tests {
		m, err := Lookup(Variant{Brake: tt.brake, Encoder: tt.encoder})
		require.NoError(t, err)
		assert.Equal(t, tt.expected, m.AsMap(), "brake=%t encoder=%s: %s", tt.brake, tt.encoder, spew.Sdump(m))
	}
}

func TestLookupUndefinedVariant(t *testing.T) {
	_, err := Lookup(Variant{Brake: true, Encoder: model.EncoderRx})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrLookup))

	var verr *VariantError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Brake)
	assert.Equal(t, model.EncoderRx, verr.Encoder)
}

func TestLookupGearIgnoresBrakeAndEncoder(t *testing.T) {
	for _, brake := range []bool{false, true} {
		for _, enc := range model.Encoders {
			m, err := Lookup(Variant{Gearbox: true, Brake: brake, Encoder: enc})
			require.NoError(t, err)
			assert.Equal(t, map[Field]int{"n": 9, "m": 11, "i": 12, "ms": 14, "is": 15}, m.AsMap())
		}
	}
}

func TestMappingKeysFixedAcrossVariants(t *testing.T) {
	want := fieldNames(Fields)
	for v, m := range plainVariants {
		var got []Field
		for _, e := range m {
			got = append(got, e.Field)
		}
		assert.Equal(t, want, fieldNames(got), "variant %+v", v)
	}
	for _, f := range Fields {
		_, ok := PerformanceTargets[f]
		assert.True(t, ok, "field %s has no template row", f)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	m, err := Lookup(Variant{Encoder: model.EncoderR4})
	require.NoError(t, err)
	m[0].Row = 999

	again, err := Lookup(Variant{Encoder: model.EncoderR4})
	require.NoError(t, err)
	assert.Equal(t, 9, again[0].Row)
}

func TestCommonPairs(t *testing.T) {
	want := map[int]int{6: 8, 8: 16, 17: 12, 18: 15, 20: 17, 21: 18, 25: 21, 26: 22, 23: 23}
	got := make(map[int]int)
	for _, p := range CommonPairs {
		got[p.Src] = p.Dst
	}
	assert.Equal(t, want, got)
}

func fieldNames(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	sort.Strings(out)
	return out
}
