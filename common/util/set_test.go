package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		t.Run("Add", func(t *testing.T) {
			a := assert.New(t)
			set := NewSet[string]()
			set.Add("Foo")
			set.Add("Foo")
			a.True(set.Contains("Foo"))
			a.Equal(1, set.Len())
		})

		t.Run("Remove", func(t *testing.T) {
			a := assert.New(t)
			set := NewSetOf("Foo", "Bar")

			set.Remove("Bar")
			set.Remove("Fizz")

			a.True(set.Contains("Foo"))
			a.False(set.Contains("Bar"))
			a.False(set.Contains("Fizz"))
			a.Equal(1, set.Len())
		})
	})

	t.Run("int", func(t *testing.T) {
		t.Run("NewSetOf", func(t *testing.T) {
			a := assert.New(t)
			set := NewSetOf(1, 2, 2, 3)

			a.Equal(3, set.Len())
			a.True(set.Contains(1))
			a.True(set.Contains(3))
			a.False(set.Contains(4))
		})

		t.Run("Empty", func(t *testing.T) {
			a := assert.New(t)
			set := NewSetOf[int]()

			a.Equal(0, set.Len())
			a.False(set.Contains(0))
		})
	})

	t.Run("nil", func(t *testing.T) {
		a := assert.New(t)
		var set *Set[string]

		a.False(set.Contains("Foo"))
		a.Equal(0, set.Len())
	})
}
