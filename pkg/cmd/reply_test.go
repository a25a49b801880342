package cmd

import (
	"reflect"
	"testing"
)

func TestFlatten(t *testing.T) {
	e := Embed{Title: "t", Fields: []EmbedField{{Name: "n", Value: "v"}}}
	r := Replies{
		Text("a"),
		nil,
		Replies{Text("b"), Text(""), e},
		Embed{},
		Replies{},
		Text("c"),
	}

	got := Flatten(r)
	want := []Reply{Text("a"), Text("b"), e, Text("c")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Flatten = %#v, want %#v", got, want)
	}
}

func TestFlatten_Single(t *testing.T) {
	if got := Flatten(Text("hi")); !reflect.DeepEqual(got, []Reply{Text("hi")}) {
		t.Errorf("Flatten(Text) = %#v", got)
	}
	if got := Flatten(nil); len(got) != 0 {
		t.Errorf("Flatten(nil) = %#v", got)
	}
}

func TestEmbed_IsZero(t *testing.T) {
	if !(Embed{Color: 0xb01e66}).IsZero() {
		t.Error("colour-only embed should count as empty")
	}
	if (Embed{Footer: "f"}).IsZero() {
		t.Error("embed with a footer reported empty")
	}
}
