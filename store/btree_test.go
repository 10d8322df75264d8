package store

import (
	"bytes"
	"testing"
)

func TestMemStoreSetGetDelete(t *testing.T) {
	db := MemStore()

	k, v := []byte("french"), []byte("fry")

	if has, err := db.Has(k); err != nil || has {
		t.Fatalf("want missing key, got has=%v err=%v", has, err)
	}

	if err := db.Set(k, v); err != nil {
		t.Fatal(err)
	}
	got, err := db.Get(k)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, v) {
		t.Fatalf("want %q, got %q", v, got)
	}

	if err := db.Delete(k); err != nil {
		t.Fatal(err)
	}
	if has, err := db.Has(k); err != nil || has {
		t.Fatalf("key should be gone, got has=%v err=%v", has, err)
	}
}

func TestCacheWrapWriteCommits(t *testing.T) {
	db := MemStore()
	if err := db.Set([]byte("base"), []byte("1")); err != nil {
		t.Fatal(err)
	}

	cache := db.CacheWrap()
	if err := cache.Set([]byte("temp"), []byte("2")); err != nil {
		t.Fatal(err)
	}
	if err := cache.Delete([]byte("base")); err != nil {
		t.Fatal(err)
	}

	// Writes are not visible in the backing store until committed.
	if has, _ := db.Has([]byte("temp")); has {
		t.Fatal("uncommitted write leaked to the backing store")
	}
	if has, _ := db.Has([]byte("base")); !has {
		t.Fatal("uncommitted delete leaked to the backing store")
	}

	// But they are visible through the cache.
	if has, _ := cache.Has([]byte("temp")); !has {
		t.Fatal("cache does not see its own write")
	}
	if has, _ := cache.Has([]byte("base")); has {
		t.Fatal("cache does not see its own delete")
	}

	if err := cache.Write(); err != nil {
		t.Fatal(err)
	}

	if has, _ := db.Has([]byte("temp")); !has {
		t.Fatal("commit did not apply the write")
	}
	if has, _ := db.Has([]byte("base")); has {
		t.Fatal("commit did not apply the delete")
	}
}

func TestCacheWrapDiscardRollsBack(t *testing.T) {
	db := MemStore()
	if err := db.Set([]byte("base"), []byte("1")); err != nil {
		t.Fatal(err)
	}

	cache := db.CacheWrap()
	if err := cache.Set([]byte("temp"), []byte("2")); err != nil {
		t.Fatal(err)
	}
	if err := cache.Delete([]byte("base")); err != nil {
		t.Fatal(err)
	}
	cache.Discard()

	if has, _ := db.Has([]byte("temp")); has {
		t.Fatal("discarded write survived")
	}
	got, err := db.Get([]byte("base"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("1")) {
		t.Fatalf("discarded delete damaged the backing value: %q", got)
	}
}

func TestCacheWrapNested(t *testing.T) {
	db := MemStore()

	outer := db.CacheWrap()
	if err := outer.Set([]byte("a"), []byte("1")); err != nil {
		t.Fatal(err)
	}

	inner := outer.CacheWrap()
	if err := inner.Set([]byte("b"), []byte("2")); err != nil {
		t.Fatal(err)
	}
	// Inner sees through to the outer layer.
	if has, _ := inner.Has([]byte("a")); !has {
		t.Fatal("inner cache does not see outer writes")
	}
	inner.Discard()

	if has, _ := outer.Has([]byte("b")); has {
		t.Fatal("discarded inner write survived in outer layer")
	}
	if err := outer.Write(); err != nil {
		t.Fatal(err)
	}
	if has, _ := db.Has([]byte("a")); !has {
		t.Fatal("outer write was lost")
	}
}
