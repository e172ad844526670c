package huffcode

import (
	"errors"
	"testing"
)

func TestCode_Text(t *testing.T) {
	type testRow struct {
		hc     Code
		text   string
		quoted string
	}

	testData := [...]testRow{
		{hc: Code{}, text: "", quoted: "\"\""},
		{hc: MakeCode(1, 0x0), text: "0", quoted: "\"0\""},
		{hc: MakeCode(1, 0x1), text: "1", quoted: "\"1\""},
		{hc: MakeCode(4, 0x3), text: "1100", quoted: "\"1100\""},
		{hc: MakeCode(3, 0xff), text: "111", quoted: "\"111\""},
	}
	for _, row := range testData {
		t.Run(row.text, func(t *testing.T) {
			if actual := row.hc.Text(); actual != row.text {
				t.Errorf("wrong text:\n\texpect: %s\n\tactual: %s", row.text, actual)
			}
			if actual := row.hc.String(); actual != row.quoted {
				t.Errorf("wrong string:\n\texpect: %s\n\tactual: %s", row.quoted, actual)
			}
		})
	}
}

func TestParseCode(t *testing.T) {
	for _, str := range []string{"", "0", "1", "0110", "1111111101"} {
		hc, err := ParseCode(str)
		if err != nil {
			t.Errorf("ParseCode(%q): unexpected error: %v", str, err)
			continue
		}
		if int(hc.Size) != len(str) {
			t.Errorf("ParseCode(%q): expected size %d, got %d", str, len(str), hc.Size)
		}
		if hc.Text() != str {
			t.Errorf("ParseCode(%q): round trip gave %q", str, hc.Text())
		}
	}

	for _, str := range []string{"01x", "2", " 0", "0 "} {
		_, err := ParseCode(str)
		if !errors.Is(err, ErrMalformedTable) {
			t.Errorf("ParseCode(%q): expected ErrMalformedTable, got %v", str, err)
		}
	}
}

func TestCode_Long(t *testing.T) {
	var hc Code
	for i := 0; i < MaxCodeSize; i++ {
		hc = hc.Append(uint(i % 3 / 2))
	}
	if hc.Size != MaxCodeSize {
		t.Fatalf("expected size %d, got %d", MaxCodeSize, hc.Size)
	}
	for i := 0; i < MaxCodeSize; i++ {
		if expect, actual := uint(i%3/2), hc.Bit(byte(i)); expect != actual {
			t.Errorf("bit %d: expected %d, got %d", i, expect, actual)
		}
	}

	parsed, err := ParseCode(hc.Text())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed != hc {
		t.Errorf("wrong round trip:\n\texpect: %s\n\tactual: %s", hc, parsed)
	}

	tooLong := hc.Text() + "0"
	if _, err := ParseCode(tooLong); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("expected ErrMalformedTable for %d-bit code, got %v", len(tooLong), err)
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		hc     string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{"", "", true},
		{"0", "", true},
		{"0", "0", true},
		{"0", "1", false},
		{"0110", "01", true},
		{"0110", "011", true},
		{"0110", "010", false},
		{"01", "0110", false},
	}
	for _, row := range testData {
		hc, _ := ParseCode(row.hc)
		prefix, _ := ParseCode(row.prefix)
		if actual := hc.HasPrefix(prefix); actual != row.expect {
			t.Errorf("%s.HasPrefix(%s): expected %v, got %v", hc, prefix, row.expect, actual)
		}
	}
}
