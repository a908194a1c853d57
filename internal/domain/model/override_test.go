package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/mortgage-service/internal/domain/model"
	"github.com/bibbank/mortgage-service/pkg/testutil"
)

func TestParseOverrideKind(t *testing.T) {
	for _, kind := range model.OverrideKinds() {
		t.Run(kind.String(), func(t *testing.T) {
			parsed, err := model.ParseOverrideKind(kind.String())
			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
			assert.True(t, parsed.Valid())
		})
	}

	t.Run("case insensitive", func(t *testing.T) {
		parsed, err := model.ParseOverrideKind(" Discrepancy ")
		require.NoError(t, err)
		assert.Equal(t, model.KindDiscrepancy, parsed)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := model.ParseOverrideKind("refund")
		assert.Error(t, err)
		assert.False(t, model.OverrideKind(0).Valid())
		assert.Equal(t, "OverrideKind(9)", model.OverrideKind(9).String())
	})
}

func TestOverrides(t *testing.T) {
	o := model.Overrides{20: testutil.D("250"), 5: testutil.D("1000")}

	t.Run("months are sorted", func(t *testing.T) {
		assert.Equal(t, []int{5, 20}, o.Months())
	})

	t.Run("get reports presence", func(t *testing.T) {
		v, ok := o.Get(5)
		assert.True(t, ok)
		testutil.AssertDecimal(t, "1000", v)

		_, ok = o.Get(6)
		assert.False(t, ok)
	})

	t.Run("clone is independent", func(t *testing.T) {
		c := o.Clone()
		c[7] = testutil.D("1")
		delete(c, 5)

		assert.Len(t, o, 2)
		_, ok := o.Get(5)
		assert.True(t, ok)
	})

	t.Run("nil map clones to an empty map", func(t *testing.T) {
		var none model.Overrides
		c := none.Clone()
		require.NotNil(t, c)
		assert.Empty(t, c)
	})
}
