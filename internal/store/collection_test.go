package store

import (
	"testing"
	"time"
)

type item struct {
	ID   int64
	Name string
}

func newItemCollection() *Collection[item] {
	return NewCollection(func(it item) int64 { return it.ID })
}

func TestCollectionInsertAssignsSequentialIDs(t *testing.T) {
	c := newItemCollection()

	for i := 1; i <= 3; i++ {
		rec := c.Insert(func(id int64, _ time.Time) item {
			return item{ID: id}
		})
		if rec.ID != int64(i) {
			t.Fatalf("insert %d: id = %d, want %d", i, rec.ID, i)
		}
	}
	if c.Len() != 3 {
		t.Fatalf("len = %d, want 3", c.Len())
	}
}

func TestCollectionIDsNotReusedAfterRemove(t *testing.T) {
	c := newItemCollection()

	first := c.Insert(func(id int64, _ time.Time) item { return item{ID: id} })
	if _, ok := c.Remove(first.ID); !ok {
		t.Fatalf("remove(%d) failed", first.ID)
	}

	second := c.Insert(func(id int64, _ time.Time) item { return item{ID: id} })
	if second.ID != first.ID+1 {
		t.Fatalf("id after remove = %d, want %d", second.ID, first.ID+1)
	}
}

func TestCollectionGetUpdateRemove(t *testing.T) {
	c := newItemCollection()
	rec := c.Insert(func(id int64, _ time.Time) item {
		return item{ID: id, Name: "alpha"}
	})

	got, ok := c.Get(rec.ID)
	if !ok || got.Name != "alpha" {
		t.Fatalf("get = %+v, %v", got, ok)
	}

	old, updated, ok := c.Update(rec.ID, func(cur item, _ time.Time) item {
		cur.Name = "beta"
		return cur
	})
	if !ok {
		t.Fatal("update: not found")
	}
	if old.Name != "alpha" || updated.Name != "beta" {
		t.Fatalf("update: old=%q updated=%q", old.Name, updated.Name)
	}

	removed, ok := c.Remove(rec.ID)
	if !ok || removed.Name != "beta" {
		t.Fatalf("remove = %+v, %v", removed, ok)
	}
	if _, ok := c.Get(rec.ID); ok {
		t.Fatal("get after remove should fail")
	}

	if _, _, ok := c.Update(rec.ID, func(cur item, _ time.Time) item { return cur }); ok {
		t.Fatal("update after remove should fail")
	}
	if _, ok := c.Remove(rec.ID); ok {
		t.Fatal("second remove should fail")
	}
}

func TestCollectionFilterPreservesInsertionOrder(t *testing.T) {
	c := newItemCollection()
	names := []string{"a", "b", "a", "c", "a"}
	for _, n := range names {
		n := n
		c.Insert(func(id int64, _ time.Time) item { return item{ID: id, Name: n} })
	}

	got := c.Filter(func(it item) bool { return it.Name == "a" })
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 || got[2].ID != 5 {
		t.Fatalf("ids = %d,%d,%d, want 1,3,5", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestCollectionInsertUsesClock(t *testing.T) {
	c := newItemCollection()
	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c.SetClock(func() time.Time { return fixed })

	var seen time.Time
	c.Insert(func(id int64, now time.Time) item {
		seen = now
		return item{ID: id}
	})
	if !seen.Equal(fixed) {
		t.Fatalf("now = %v, want %v", seen, fixed)
	}
}
