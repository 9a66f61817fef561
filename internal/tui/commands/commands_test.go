package commands

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/osalguero/muster/internal/roster"
)

// fakeRepo is an in-memory Repository for command tests.
type fakeRepo struct {
	elems   []roster.Element
	loadErr error
	saveErr error
	saved   [][]roster.Element
}

func (f *fakeRepo) LoadRoster(ctx context.Context) ([]roster.Element, error) {
	return f.elems, f.loadErr
}

func (f *fakeRepo) SaveRoster(ctx context.Context, elems []roster.Element) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, elems)
	return nil
}

func (f *fakeRepo) AddElement(ctx context.Context, e roster.Element) error { return nil }

func (f *fakeRepo) DeleteElementAt(ctx context.Context, index int) error { return nil }

func (f *fakeRepo) Close() error { return nil }

func TestLoadRoster(t *testing.T) {
	elems := []roster.Element{roster.Character{Name: "A", Points: 10}}
	repo := &fakeRepo{elems: elems}

	msg := LoadRoster(repo)()
	loaded, ok := msg.(RosterLoadedMsg)
	if !ok {
		t.Fatalf("got %T, want RosterLoadedMsg", msg)
	}
	if !reflect.DeepEqual(loaded.Elements, elems) {
		t.Errorf("Elements = %v, want %v", loaded.Elements, elems)
	}
}

func TestLoadRosterError(t *testing.T) {
	repo := &fakeRepo{loadErr: errors.New("boom")}

	msg := LoadRoster(repo)()
	errMsg, ok := msg.(ErrMsg)
	if !ok {
		t.Fatalf("got %T, want ErrMsg", msg)
	}
	if errMsg.Err == nil {
		t.Error("ErrMsg carries no error")
	}
}

func TestSaveRoster(t *testing.T) {
	repo := &fakeRepo{}
	elems := []roster.Element{
		roster.Character{Name: "A", Points: 10},
		roster.Support{Name: "B", Points: 5},
	}

	msg := SaveRoster(repo, elems)()
	saved, ok := msg.(RosterSavedMsg)
	if !ok {
		t.Fatalf("got %T, want RosterSavedMsg", msg)
	}
	if saved.Count != 2 {
		t.Errorf("Count = %d, want 2", saved.Count)
	}
	if len(repo.saved) != 1 || !reflect.DeepEqual(repo.saved[0], elems) {
		t.Errorf("repo saved %v, want one call with %v", repo.saved, elems)
	}
}

func TestSaveRosterError(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("boom")}

	msg := SaveRoster(repo, nil)()
	if _, ok := msg.(ErrMsg); !ok {
		t.Fatalf("got %T, want ErrMsg", msg)
	}
}

func TestSaveRosterNilRepo(t *testing.T) {
	if cmd := SaveRoster(nil, nil); cmd != nil {
		t.Error("SaveRoster(nil repo) returned a command")
	}
}
