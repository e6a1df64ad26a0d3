package builtins

import (
	"testing"

	"github.com/pesci-lang/pesci/internal/value"
)

func TestFormatSpecPlainFallsBackToStr(t *testing.T) {
	got, err := formatSpec(value.NewInt(5), "")
	if err != nil {
		t.Fatalf("formatSpec: %v", err)
	}
	if got != "5" {
		t.Fatalf("got %q, want 5", got)
	}
}

func TestFormatSpecFloatPrecision(t *testing.T) {
	got, err := formatSpec(value.NewFloat(3.14159), ".2f")
	if err != nil {
		t.Fatalf("formatSpec: %v", err)
	}
	if got != "3.14" {
		t.Fatalf("got %q, want 3.14", got)
	}
}

func TestFormatSpecWidthPadsNumericRight(t *testing.T) {
	got, err := formatSpec(value.NewInt(5), "3d")
	if err != nil {
		t.Fatalf("formatSpec: %v", err)
	}
	if got != "  5" {
		t.Fatalf("got %q, want %q", got, "  5")
	}
}

func TestFormatSpecHexHeldHighest(t *testing.T) {
	got, err := formatSpec(value.NewInt(255), "x")
	if err != nil {
		t.Fatalf("formatSpec: %v", err)
	}
	if got != "ff" {
		t.Fatalf("got %q, want ff", got)
	}
}

func TestFormatSpecPercent(t *testing.T) {
	got, err := formatSpec(value.NewFloat(0.5), ".0%")
	if err != nil {
		t.Fatalf("formatSpec: %v", err)
	}
	if got != "50%" {
		t.Fatalf("got %q, want 50%%", got)
	}
}

func TestFormatSpecUnknownVerbErrors(t *testing.T) {
	if _, err := formatSpec(value.NewInt(1), "z"); err == nil {
		t.Fatal("expected an error for an unknown format verb")
	}
}

func TestBuiltinFormatDispatchesToFormatSpec(t *testing.T) {
	got, err := builtinFormat([]value.Value{value.NewInt(255), value.NewStr("x")}, nil)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if got.String() != "ff" {
		t.Fatalf("got %q", got)
	}
}
