package wishlist

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/mapmytour/tour-api/internal/pkg/kvstore"
)

func newStore(t *testing.T) (*Store, kvstore.Store) {
	t.Helper()
	kv, err := kvstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	s, err := Load(context.Background(), kv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s, kv
}

func persisted(t *testing.T, kv kvstore.Store) []string {
	t.Helper()
	raw, err := kv.Get(context.Background(), "wishlist")
	if err != nil {
		t.Fatalf("Get wishlist: %v", err)
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		t.Fatalf("persisted wishlist is not a JSON string array: %v", err)
	}
	return ids
}

func TestLoadEmptyWhenKeyMissing(t *testing.T) {
	s, _ := newStore(t)
	if len(s.IDs()) != 0 {
		t.Fatalf("expected empty wishlist, got %v", s.IDs())
	}
}

func TestLoadCorruptValueStartsEmpty(t *testing.T) {
	kv, err := kvstore.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := kv.Set(context.Background(), "wishlist", []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	s, err := Load(context.Background(), kv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.IDs()) != 0 {
		t.Fatalf("corrupt value should start empty, got %v", s.IDs())
	}
}

func TestAddRemovePreservesOrder(t *testing.T) {
	ctx := context.Background()
	s, kv := newStore(t)

	for _, id := range []string{"3", "1", "2"} {
		if err := s.Add(ctx, id); err != nil {
			t.Fatalf("Add(%s): %v", id, err)
		}
	}
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"3", "1", "2"}) {
		t.Fatalf("unexpected order %v", got)
	}

	if err := s.Remove(ctx, "1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	want := []string{"3", "2"}
	if got := s.IDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := persisted(t, kv); !reflect.DeepEqual(got, want) {
		t.Fatalf("persisted %v, in-memory %v", got, want)
	}
}

func TestAddDuplicateIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	if err := s.Add(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"1"}) {
		t.Fatalf("duplicate add changed the set: %v", got)
	}
}

func TestToggleIsInvolution(t *testing.T) {
	ctx := context.Background()
	s, kv := newStore(t)

	if err := s.Add(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	before := s.IDs()

	if err := s.Toggle(ctx, "2"); err != nil {
		t.Fatal(err)
	}
	if !s.IsWishlisted("2") {
		t.Fatal("toggle did not add absent id")
	}
	if err := s.Toggle(ctx, "2"); err != nil {
		t.Fatal(err)
	}
	if s.IsWishlisted("2") {
		t.Fatal("second toggle did not remove id")
	}
	if got := s.IDs(); !reflect.DeepEqual(got, before) {
		t.Fatalf("double toggle changed the set: %v vs %v", got, before)
	}
	if got := persisted(t, kv); !reflect.DeepEqual(got, before) {
		t.Fatalf("persisted state diverged: %v vs %v", got, before)
	}
}

func TestPersistedMatchesInMemoryAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	s, kv := newStore(t)

	steps := []func() error{
		func() error { return s.Add(ctx, "1") },
		func() error { return s.Toggle(ctx, "2") },
		func() error { return s.Remove(ctx, "1") },
		func() error { return s.Toggle(ctx, "2") },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got, want := persisted(t, kv), s.IDs(); !reflect.DeepEqual(got, want) {
			t.Fatalf("step %d: persisted %v, in-memory %v", i, got, want)
		}
	}
}

func TestReloadSeesPersistedState(t *testing.T) {
	ctx := context.Background()
	s, kv := newStore(t)
	if err := s.Add(ctx, "3"); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load(ctx, kv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reloaded.IsWishlisted("3") {
		t.Fatal("reloaded store lost persisted id")
	}
}
