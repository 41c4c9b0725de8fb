package errcode

import (
	"errors"
	"io"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":             OK,
		"unsupported":    Unsupported,
		"invalid_params": InvalidParams,
		"unknown_pin":    UnknownPin,
		"pin_in_use":     PinInUse,
		"bad_dimensions": BadDimensions,
		"error":          Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if got := Of(nil); got != OK {
		t.Fatalf("Of(nil) = %q", got)
	}
	if got := Of(PinInUse); got != PinInUse {
		t.Fatalf("Of(code) = %q", got)
	}
	if got := Of(New(UnknownPin, "claim", "gpio 99")); got != UnknownPin {
		t.Fatalf("Of(*E) = %q", got)
	}
	if got := Of(io.EOF); got != Error {
		t.Fatalf("Of(foreign) = %q", got)
	}
}

func TestE_MessageAndMatching(t *testing.T) {
	e := &E{C: PinInUse, Op: "validate", Msg: "buzzer and lcd_en share 9", Err: io.ErrUnexpectedEOF}
	if got, want := e.Error(), "validate: pin_in_use: buzzer and lcd_en share 9"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, PinInUse) {
		t.Fatal("errors.Is should match the bare code")
	}
	if errors.Is(e, UnknownPin) {
		t.Fatal("errors.Is matched the wrong code")
	}
	if !errors.Is(e, io.ErrUnexpectedEOF) {
		t.Fatal("cause not reachable through Unwrap")
	}
	if got := (&E{C: Unsupported}).Error(); got != "unsupported" {
		t.Fatalf("bare E = %q", got)
	}
}
