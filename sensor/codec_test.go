package sensor

import (
	"errors"
	"testing"
)

func TestDecodeMixedPayload(t *testing.T) {
	data := []byte(`{"gravity": {"x": 0.1, "y": -0.2, "z": 9.81, "label": "up"}, "button_1": 1, "name": "phone", "empty": {}}`)
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	g, ok := got["gravity"]
	if !ok {
		t.Fatal("Expected gravity capability")
	}
	if g["z"] != 9.81 || len(g) != 3 {
		t.Errorf("Expected three numeric gravity axes with z=9.81, got %v", g)
	}

	if v, ok := got["button_1"].Scalar(); !ok || v != 1 {
		t.Errorf("Expected button_1 scalar 1, got %v", got["button_1"])
	}
	if _, ok := got["name"]; ok {
		t.Error("Expected string member to be skipped")
	}
	if _, ok := got["empty"]; ok {
		t.Error("Expected object without numeric members to be skipped")
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, in := range []string{"", "not json", "[1,2,3]", `{"gravity":`} {
		if _, err := Decode([]byte(in)); !errors.Is(err, ErrMalformed) {
			t.Errorf("Decode(%q): expected ErrMalformed, got %v", in, err)
		}
	}
}

func TestEncodeScalarAndVector(t *testing.T) {
	data, err := Encode(map[string]Reading{
		"button_1": {ScalarKey: 0},
		"gravity":  {"z": -4.5},
	})
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if v, ok := back["button_1"].Scalar(); !ok || v != 0 {
		t.Errorf("Expected scalar button, got %v", back["button_1"])
	}
	if back["gravity"]["z"] != -4.5 {
		t.Errorf("Expected z=-4.5, got %v", back["gravity"])
	}
}
