package pins

import "testing"

const wantSequence = "123+456-789*.0=/"

func TestSequenceRowMajor(t *testing.T) {
	if got := Sequence(); got != wantSequence {
		t.Fatalf("Sequence() = %q, want %q", got, wantSequence)
	}
	kp := Default().Keypad
	rows := []string{"123+", "456-", "789*", ".0=/"}
	for r, want := range rows {
		if got := kp.RowString(r); got != want {
			t.Fatalf("row %d = %q, want %q", r, got, want)
		}
	}
	if kp.RowString(4) != "" || kp.RowString(-1) != "" {
		t.Fatal("out of range row should be empty")
	}
}

func TestKeyAt(t *testing.T) {
	cases := []struct {
		row, col int
		want     Key
		ok       bool
	}{
		{0, 0, '1', true},
		{0, 3, '+', true},
		{1, 3, '-', true},
		{2, 3, '*', true},
		{3, 0, '.', true},
		{3, 1, '0', true},
		{3, 2, '=', true},
		{3, 3, '/', true},
		{4, 0, 0, false},
		{0, 4, 0, false},
		{-1, 0, 0, false},
	}
	for _, c := range cases {
		got, ok := KeyAt(c.row, c.col)
		if got != c.want || ok != c.ok {
			t.Errorf("KeyAt(%d,%d) = %q,%v want %q,%v", c.row, c.col, got, ok, c.want, c.ok)
		}
	}
}

func TestKeyForCodeMatchesSequence(t *testing.T) {
	for i := 0; i < KeypadRows*KeypadCols; i++ {
		k, ok := KeyForCode(uint8(i))
		if !ok || byte(k) != wantSequence[i] {
			t.Fatalf("KeyForCode(%d) = %q,%v want %q", i, k, ok, wantSequence[i])
		}
	}
	if _, ok := KeyForCode(NoKey); ok {
		t.Fatal("NoKey resolved to a legend")
	}
	if _, ok := KeyForCode(16); ok {
		t.Fatal("code 16 resolved to a legend")
	}
}

func TestPositionInverse(t *testing.T) {
	for i := 0; i < len(wantSequence); i++ {
		r, c, ok := Position(Key(wantSequence[i]))
		if !ok || r != i/KeypadCols || c != i%KeypadCols {
			t.Fatalf("Position(%q) = %d,%d,%v", wantSequence[i], r, c, ok)
		}
	}
	if _, _, ok := Position('#'); ok {
		t.Fatal("'#' is not on this keypad")
	}
}

func TestLegendClasses(t *testing.T) {
	ops := 0
	digits := 0
	for i := 0; i < len(wantSequence); i++ {
		k := Key(wantSequence[i])
		if IsOperator(k) {
			ops++
		}
		if IsDigit(k) {
			digits++
		}
	}
	if ops != 5 || digits != 10 {
		t.Fatalf("operators=%d digits=%d, want 5 and 10", ops, digits)
	}
	if IsOperator(KeyDecimal) || IsDigit(KeyDecimal) {
		t.Fatal("decimal point is neither digit nor operator")
	}
	for r := 0; r < KeypadRows; r++ {
		k, _ := KeyAt(r, KeypadCols-1)
		if !IsOperator(k) || k == KeyEquals {
			t.Fatalf("fourth column row %d = %q, want arithmetic operator", r, k)
		}
	}
}
