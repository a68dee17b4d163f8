package codex32

import (
	"errors"
	"testing"
)

func TestShortChecksumValid(t *testing.T) {
	// spec scenario: ms1 + SECRETSHARE32, all uppercase, must validate.
	eng := NewShortChecksum()
	if err := eng.InputHRP("MS"); err != nil {
		t.Fatalf("InputHRP: %v", err)
	}
	if err := eng.InputData("SECRETSHARE32"); err != nil {
		t.Fatalf("InputData: %v", err)
	}
	if !eng.IsValid() {
		t.Fatalf("residue %v != target after feeding the tag", eng.Residue())
	}
}

func TestBIPVector1(t *testing.T) {
	const secret = "ms10testsxxxxxxxxxxxxxxxxxxxxxxxxxx4nzvca9cmczlw"
	eng := NewShortChecksum()
	hrp, data := SplitHRP(secret)
	if hrp != "ms" {
		t.Fatalf("HRP = %q, want ms", hrp)
	}
	if err := eng.InputHRP(hrp); err != nil {
		t.Fatalf("InputHRP: %v", err)
	}
	if err := eng.InputData(data); err != nil {
		t.Fatalf("InputData: %v", err)
	}
	if !eng.IsValid() {
		t.Fatalf("%s: expected a valid checksum", secret)
	}
}

func TestChecksumRejectsTamperedChar(t *testing.T) {
	// ms10testsxxxxxxxxxxxxxxxxxxxxxxxxxx4nzvca9cmczlw with one data
	// character swapped for a different bech32 character.
	const tampered = "ms10testsyxxxxxxxxxxxxxxxxxxxxxxxxx4nzvca9cmczlw"
	_, err := New(tampered)
	var target *InvalidChecksumError
	if !errors.As(err, &target) {
		t.Fatalf("expected *InvalidChecksumError, got %T: %v", err, err)
	}
}

func TestChecksumRejectsMixedCase(t *testing.T) {
	eng := NewShortChecksum()
	if err := eng.InputHRP("MS"); err != nil {
		t.Fatalf("InputHRP: %v", err)
	}
	err := eng.InputData("qqqqqQPQQQQQQ")
	var target *InvalidCaseError
	if !errors.As(err, &target) {
		t.Fatalf("expected *InvalidCaseError, got %T: %v", err, err)
	}
}

func TestChecksumDigitsDoNotConstrainCase(t *testing.T) {
	eng := NewShortChecksum()
	if err := eng.InputChar('9'); err != nil {
		t.Fatalf("digit should not set case: %v", err)
	}
	if err := eng.InputChar('A'); err != nil {
		t.Fatalf("first letter after a digit should still be free to set case: %v", err)
	}
	if err := eng.InputChar('a'); err == nil {
		t.Fatal("expected InvalidCaseError mixing lower after the case was set by 'A'")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	eng := NewShortChecksum()
	if err := eng.InputHRP("ms"); err != nil {
		t.Fatal(err)
	}
	before := eng.Residue()

	clone := eng.Clone()
	if err := clone.InputChar('q'); err != nil {
		t.Fatal(err)
	}

	after := eng.Residue()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("feeding the clone mutated the original residue: %v -> %v", before, after)
		}
	}
}

func TestForceResidueToZero(t *testing.T) {
	eng := NewShortChecksum()
	eng.ForceResidueToZero()
	for _, r := range eng.Residue() {
		if r != FeQ {
			t.Fatalf("residue not all Q after ForceResidueToZero: %v", eng.Residue())
		}
	}
}
