package event

import (
	"reflect"
	"testing"
)

func TestSource_EmitInOrder(t *testing.T) {
	var src Source[int]
	var got []string

	src.Subscribe(func(v int) { got = append(got, "first") })
	src.Subscribe(func(v int) { got = append(got, "second") })
	src.Subscribe(nil)

	if src.Subscribers() != 2 {
		t.Errorf("Subscribers() = %d, want 2", src.Subscribers())
	}

	src.Emit(1)

	if want := []string{"first", "second"}; !reflect.DeepEqual(got, want) {
		t.Errorf("handlers ran %v, want %v", got, want)
	}
}

func TestSource_EmitWithoutSubscribers(t *testing.T) {
	var src Source[string]
	src.Emit("nobody listening")
}
