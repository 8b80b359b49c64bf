package cliapp

import (
	"path/filepath"
	"testing"
)

func Test_ProfileStore_List_Empty_When_File_Missing(t *testing.T) {
	t.Parallel()

	s := NewProfileStore(filepath.Join(t.TempDir(), "alphabets.yaml"))

	got, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(got) != 0 {
		t.Fatalf("List = %v, want empty", got)
	}
}

func Test_ProfileStore_Save_Then_Get_Round_Trips(t *testing.T) {
	t.Parallel()

	s := NewProfileStore(filepath.Join(t.TempDir(), "alphabets.yaml"))

	want := Profile{Name: "compact", DigitBase: "0123456789", LengthBase: "ABCabc"}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := s.Get("compact")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if !ok {
		t.Fatal("Get: not found after Save")
	}

	if got != want {
		t.Fatalf("Get = %+v, want %+v", got, want)
	}
}

func Test_ProfileStore_Save_Replaces_Existing_Name(t *testing.T) {
	t.Parallel()

	s := NewProfileStore(filepath.Join(t.TempDir(), "alphabets.yaml"))

	first := Profile{Name: "p", DigitBase: "0123456789", LengthBase: "ABCabc"}
	second := Profile{Name: "p", DigitBase: "01234567", LengthBase: "ABab"}

	if err := s.Save(first); err != nil {
		t.Fatalf("Save(first): %v", err)
	}

	if err := s.Save(second); err != nil {
		t.Fatalf("Save(second): %v", err)
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if len(all) != 1 {
		t.Fatalf("List = %v, want exactly one profile named %q", all, "p")
	}

	if all[0] != second {
		t.Fatalf("List[0] = %+v, want %+v", all[0], second)
	}
}

func Test_ProfileStore_List_Sorted_By_Name(t *testing.T) {
	t.Parallel()

	s := NewProfileStore(filepath.Join(t.TempDir(), "alphabets.yaml"))

	for _, name := range []string{"charlie", "alpha", "bravo"} {
		if err := s.Save(Profile{Name: name, DigitBase: "0123456789", LengthBase: "ABCabc"}); err != nil {
			t.Fatalf("Save(%q): %v", name, err)
		}
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	want := []string{"alpha", "bravo", "charlie"}
	for i, name := range want {
		if all[i].Name != name {
			t.Fatalf("List[%d].Name = %q, want %q", i, all[i].Name, name)
		}
	}
}

func Test_ProfileStore_Get_Missing_Profile(t *testing.T) {
	t.Parallel()

	s := NewProfileStore(filepath.Join(t.TempDir(), "alphabets.yaml"))

	_, ok, err := s.Get("ghost")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	if ok {
		t.Fatal("Get: expected not found")
	}
}
