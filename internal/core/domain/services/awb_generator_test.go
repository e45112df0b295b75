package services_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipdesk/internal/core/domain/services"
)

func TestAWBGenerator_Generate(t *testing.T) {
	generator := services.NewAWBGenerator(rand.New(rand.NewSource(1)))

	t.Run("produces prefix plus a nine digit serial", func(t *testing.T) {
		for range 100 {
			awb, err := generator.Generate("SMC1")

			require.NoError(t, err)
			require.True(t, strings.HasPrefix(awb, "SMC1"))
			serial := strings.TrimPrefix(awb, "SMC1")
			assert.Len(t, serial, 9)
			assert.NotEqual(t, byte('0'), serial[0])
		}
	})

	t.Run("is deterministic for a fixed seed", func(t *testing.T) {
		first, err := services.NewAWBGenerator(rand.New(rand.NewSource(42))).Generate("7X")
		require.NoError(t, err)
		second, err := services.NewAWBGenerator(rand.New(rand.NewSource(42))).Generate("7X")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("rejects an empty prefix", func(t *testing.T) {
		_, err := generator.Generate("  ")
		require.Error(t, err)
	})
}
