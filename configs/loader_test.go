package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
indent?: int
show_tokens?: bool
parallel?: int
files?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var indent int
	err := loader.AssignFirst("indent", &indent)
	if err != nil {
		t.Fatal(err)
	}
	if indent != 4 {
		t.Fatalf("got %v", indent)
	}

	var files []string
	err = loader.AssignFirst("files", &files)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", files); str != "[a.ua b.ua]" {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("parallel", &indent)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var indents []int
	for value, err := range loader.IterCueValues("indent") {
		if err != nil {
			t.Fatal(err)
		}
		var i int
		if err := value.Decode(&i); err != nil {
			t.Fatal(err)
		}
		indents = append(indents, i)
	}
	if str := fmt.Sprintf("%v", indents); str != "[4 8]" {
		t.Fatalf("got %s", str)
	}

	indents = indents[:0]
	for i, err := range All[int](loader, "indent") {
		if err != nil {
			t.Fatal(err)
		}
		indents = append(indents, i)
	}
	if str := fmt.Sprintf("%v", indents); str != "[4 8]" {
		t.Fatalf("got %s", str)
	}
	if str := fmt.Sprintf("%v", loader.Paths()); str != "[test.cue test2.cue]" {
		t.Fatalf("got %s", str)
	}
}

func TestLookup(t *testing.T) {
	loader := NewLoader([]string{"test2.cue"}, testSchema)
	n, ok, err := Lookup[int](loader, "parallel")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || n != 2 {
		t.Fatalf("got %v %v", n, ok)
	}
	_, ok, err = Lookup[bool](loader, "show_tokens")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal()
	}
	if _, _, err := Lookup[string](loader, "indent"); err == nil {
		t.Fatal("should error")
	}
}

func TestEmptyLoader(t *testing.T) {
	var loader Loader
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
	for range All[int](loader, "indent") {
		t.Fatal("should be empty")
	}
	loader = NewLoader(nil, testSchema)
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
}

func TestAll(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var files [][]string
	for v, err := range All[[]string](loader, "files") {
		if err != nil {
			t.Fatal(err)
		}
		files = append(files, v)
	}
	if str := fmt.Sprintf("%v", files); str != "[[a.ua b.ua]]" {
		t.Fatalf("got %s", str)
	}

	var errs int
	for _, err := range All[string](loader, "indent") {
		if err == nil {
			t.Fatal("should error")
		}
		errs++
	}
	if errs != 1 {
		t.Fatalf("got %v", errs)
	}

	loader = NewLoader([]string{"no-such-file.cue"}, "")
	for _, err := range All[int](loader, "indent") {
		if err == nil {
			t.Fatal("should error")
		}
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"no-such-file.cue"}, "")
	if err := loader.Err(); err == nil {
		t.Fatal("should error")
	}
}
