package overlay

import (
	"testing"
)

func TestRegistryLookup(t *testing.T) {
	r := DefaultRegistry()

	t.Run("overlay is case-insensitive", func(t *testing.T) {
		for _, name := range []string{"overlay", "OVERLAY", "Overlay", "oVeRlAy"} {
			f, err := r.Lookup(name)
			if err != nil {
				t.Errorf("Lookup(%q) failed: %v", name, err)
				continue
			}
			if f.Mode != Bytes {
				t.Errorf("Lookup(%q) returned mode %d, want Bytes", name, f.Mode)
			}
		}
	})

	t.Run("overlayUTF8 is case-sensitive", func(t *testing.T) {
		f, err := r.Lookup("overlayUTF8")
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
		if f.Mode != CodePoints {
			t.Errorf("mode = %d, want CodePoints", f.Mode)
		}

		for _, name := range []string{"overlayutf8", "OVERLAYUTF8", "OverlayUtf8"} {
			if _, err := r.Lookup(name); !IsError(err, ErrRegistry) {
				t.Errorf("Lookup(%q) = %v, want ErrRegistry", name, err)
			}
		}
	})

	t.Run("unknown function", func(t *testing.T) {
		if _, err := r.Lookup("substring"); !IsError(err, ErrRegistry) {
			t.Errorf("expected ErrRegistry, got %v", err)
		}
	})
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()

	f := &Function{Name: "splice", Mode: Bytes, MinArgs: 3, MaxArgs: 4}
	if err := r.Register(f); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register(f); !IsError(err, ErrRegistry) {
		t.Errorf("duplicate Register = %v, want ErrRegistry", err)
	}
	if err := r.Register(&Function{Name: "SPLICE"}); !IsError(err, ErrRegistry) {
		t.Errorf("case-colliding Register = %v, want ErrRegistry", err)
	}
	if err := r.Register(&Function{Name: ""}); !IsError(err, ErrRegistry) {
		t.Errorf("empty-name Register = %v, want ErrRegistry", err)
	}
}

func TestRegistryCall(t *testing.T) {
	inputs := MakeStringColumn([]string{"Hello, World!", "Spark SQL"})

	args := []Value{
		StringValue(ColumnString(inputs)),
		StringValue(ConstString("abc")),
		IntValue(ConstInt(1)),
		IntValue(ConstInt(5)),
	}

	col, err := Call("OVERLAY", args, 2)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if got := col.RowString(0); got != "abc, World!" {
		t.Errorf("row 0 = %q, want %q", got, "abc, World!")
	}
	if got := col.RowString(1); got != "abc SQL" {
		t.Errorf("row 1 = %q, want %q", got, "abc SQL")
	}
}

func TestRegistryCallValidation(t *testing.T) {
	str := StringValue(ConstString("abc"))
	num := IntValue(ConstInt(1))

	t.Run("too few arguments", func(t *testing.T) {
		_, err := Call("overlay", []Value{str, str}, 1)
		if !IsError(err, ErrArgument) {
			t.Errorf("expected ErrArgument, got %v", err)
		}
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, err := Call("overlay", []Value{str, str, num, num, num}, 1)
		if !IsError(err, ErrArgument) {
			t.Errorf("expected ErrArgument, got %v", err)
		}
	})

	t.Run("integer where string expected", func(t *testing.T) {
		_, err := Call("overlay", []Value{num, str, num}, 1)
		if !IsError(err, ErrType) {
			t.Errorf("expected ErrType, got %v", err)
		}
	})

	t.Run("string where integer expected", func(t *testing.T) {
		_, err := Call("overlay", []Value{str, str, str}, 1)
		if !IsError(err, ErrType) {
			t.Errorf("expected ErrType, got %v", err)
		}
	})

	t.Run("absent offset", func(t *testing.T) {
		_, err := Call("overlay", []Value{str, str, IntValue(NoLength())}, 1)
		if !IsError(err, ErrType) {
			t.Errorf("expected ErrType, got %v", err)
		}
	})
}

func TestRegistryCallModes(t *testing.T) {
	args := []Value{
		StringValue(ConstString("München")),
		StringValue(ConstString("X")),
		IntValue(ConstInt(2)),
		IntValue(ConstInt(1)),
	}

	byteCol, err := Call("overlay", args, 1)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	cpCol, err := Call("overlayUTF8", args, 1)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}

	// Byte mode splits the two-byte ü; code point mode replaces it whole.
	if got := cpCol.RowString(0); got != "MXnchen" {
		t.Errorf("overlayUTF8 = %q, want %q", got, "MXnchen")
	}
	if byteCol.RowString(0) == cpCol.RowString(0) {
		t.Error("byte and code point modes agreed on a multibyte input")
	}
}
