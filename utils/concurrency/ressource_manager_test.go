package concurrency

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConcurrency(t *testing.T) {

	t.Run("NoError", func(t *testing.T) {

		acc := make([]int, 8)

		ressources := make([]bool, 4)

		rm := NewRessourceManager(ressources)

		for i := range acc {
			rm.Run(func(r bool) (err error) {
				acc[i]++
				return
			})
		}

		require.NoError(t, rm.Wait())

		for i := range acc {
			require.Equal(t, acc[i], 1)
		}
	})

	t.Run("WithError", func(t *testing.T) {
		acc := make([]int, 8)

		ressources := make([]bool, 4)

		rm := NewRessourceManager(ressources)

		for i := range acc {
			rm.Run(func(r bool) (err error) {
				acc[i]++
				if i == 2 {
					return fmt.Errorf("something bad happened")
				}

				return
			})
		}

		require.Error(t, rm.Wait())
	})
}

func TestBranchManager(t *testing.T) {
	rm := NewBranchManager(2)

	var left, right int

	rm.Run(func(struct{}) error {
		left = 1
		return nil
	})
	rm.Run(func(struct{}) error {
		right = 2
		return nil
	})

	require.NoError(t, rm.Wait())
	require.Equal(t, 1, left)
	require.Equal(t, 2, right)
}
