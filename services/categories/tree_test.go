package categories

import (
	"reflect"
	"testing"

	"lifekitadmin/models"
)

var flat = []models.Category{
	{ID: "1", Name: "Home"},
	{ID: "2", Name: "Cleaning", ParentID: "1"},
	{ID: "3", Name: "Beauty"},
	{ID: "4", Name: "Plumbing", ParentID: "1"},
	{ID: "5", Name: "Hair", ParentID: "3"},
}

func names(cats []models.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Name
	}
	return out
}

func TestRoots(t *testing.T) {
	got := names(Roots(flat))
	want := []string{"Home", "Beauty"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Roots = %v, want %v", got, want)
	}
}

func TestChildrenOf(t *testing.T) {
	got := names(ChildrenOf(flat, "1"))
	want := []string{"Cleaning", "Plumbing"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ChildrenOf(1) = %v, want %v", got, want)
	}

	if got := ChildrenOf(flat, "5"); len(got) != 0 {
		t.Errorf("ChildrenOf(leaf) = %v, want empty", names(got))
	}
}

func TestFind(t *testing.T) {
	c, ok := Find(flat, "3")
	if !ok || c.Name != "Beauty" {
		t.Errorf("Find(3) = %v %v, want Beauty true", c.Name, ok)
	}

	if _, ok := Find(flat, "missing"); ok {
		t.Error("Find(missing) reported a match")
	}
}
