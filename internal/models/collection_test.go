package models

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int
	Name string
}

func newItems() *Collection[item] {
	return NewCollection[item]()
}

func insertItem(c *Collection[item], name string) item {
	return c.Insert(func(id int) item { return item{ID: id, Name: name} })
}

func TestCollection_InsertAssignsSequentialIds(t *testing.T) {
	c := newItems()
	a := insertItem(c, "a")
	b := insertItem(c, "b")

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 2, c.Len())
}

func TestCollection_DeletedIdNotReused(t *testing.T) {
	c := newItems()
	insertItem(c, "a")
	b := insertItem(c, "b")
	require.True(t, c.Delete(b.ID))

	next := insertItem(c, "c")
	assert.Equal(t, 3, next.ID)
}

func TestCollection_PutAdvancesCounter(t *testing.T) {
	c := newItems()
	c.Put(7, item{ID: 7, Name: "seed"})

	next := insertItem(c, "x")
	assert.Equal(t, 8, next.ID)
}

func TestCollection_ValuesKeepInsertionOrder(t *testing.T) {
	c := newItems()
	c.Put(5, item{ID: 5, Name: "five"})
	c.Put(2, item{ID: 2, Name: "two"})
	insertItem(c, "six")

	names := []string{}
	for _, it := range c.Values() {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"five", "two", "six"}, names)
}

func TestCollection_FilterAndFind(t *testing.T) {
	c := newItems()
	insertItem(c, "a")
	insertItem(c, "b")
	insertItem(c, "a")

	matches := c.Filter(func(it item) bool { return it.Name == "a" })
	assert.Len(t, matches, 2)

	found, ok := c.Find(func(it item) bool { return it.Name == "a" })
	require.True(t, ok)
	assert.Equal(t, 1, found.ID)

	_, ok = c.Find(func(it item) bool { return it.Name == "z" })
	assert.False(t, ok)
}

func TestCollection_UpdateMissing(t *testing.T) {
	c := newItems()
	_, err := c.Update(1, func(it item) (item, error) { return it, nil })
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, c.Len())
}

func TestCollection_UpdateErrorKeepsRecord(t *testing.T) {
	c := newItems()
	insertItem(c, "a")

	boom := errors.New("boom")
	_, err := c.Update(1, func(it item) (item, error) {
		it.Name = "changed"
		return it, boom
	})
	assert.ErrorIs(t, err, boom)

	got, _ := c.Get(1)
	assert.Equal(t, "a", got.Name)
}

func TestCollection_UpdateWhere(t *testing.T) {
	c := newItems()
	insertItem(c, "a")
	insertItem(c, "b")

	updated := c.UpdateWhere(
		func(it item) bool { return it.Name == "b" },
		func(it item) item { it.Name = "B"; return it },
	)
	require.Len(t, updated, 1)
	got, _ := c.Get(2)
	assert.Equal(t, "B", got.Name)
}

func TestCollection_Reset(t *testing.T) {
	c := newItems()
	insertItem(c, "a")
	c.Reset()

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Values())
	assert.Equal(t, 1, insertItem(c, "b").ID)
}

func TestCollection_ConcurrentAccess(t *testing.T) {
	c := newItems()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			insertItem(c, "x")
		}()
		go func() {
			defer wg.Done()
			_ = c.Values()
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, c.Len())
}
