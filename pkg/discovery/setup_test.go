package discovery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSetupURIValid(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantCode     string
		wantCategory AccessoryCategory
		wantFlags    SetupFlags
		wantID       string
	}{
		{"Lightbulb", "X-HM://00522H1VM7OSX", "031-45-154", CategoryLightbulb, SetupFlagIP, "7OSX"},
		{"BridgeBLE", "X-HM://002CJX6BYABCD", "123-45-678", CategoryBridge, SetupFlagIP | SetupFlagBLE, "ABCD"},
		{"LowerCase", "x-hm://00522h1vm7osx", "031-45-154", CategoryLightbulb, SetupFlagIP, "7OSX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseSetupURI(tt.input)
			if err != nil {
				t.Fatalf("ParseSetupURI(%q) error = %v", tt.input, err)
			}
			if p.SetupCode != tt.wantCode {
				t.Errorf("SetupCode = %q, want %q", p.SetupCode, tt.wantCode)
			}
			if p.Category != tt.wantCategory {
				t.Errorf("Category = %v, want %v", p.Category, tt.wantCategory)
			}
			if p.Flags != tt.wantFlags {
				t.Errorf("Flags = %d, want %d", p.Flags, tt.wantFlags)
			}
			if p.SetupID != tt.wantID {
				t.Errorf("SetupID = %q, want %q", p.SetupID, tt.wantID)
			}
			if p.Version != 0 {
				t.Errorf("Version = %d, want 0", p.Version)
			}
		})
	}
}

func TestParseSetupURIInvalid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"WrongPrefix", "HTTP://00522H1VM7OSX", ErrInvalidSetupURI},
		{"Empty", "", ErrInvalidSetupURI},
		{"TooShort", "X-HM://00522H1VM", ErrInvalidSetupURI},
		{"TooLong", "X-HM://00522H1VM7OSXX", ErrInvalidSetupURI},
		{"NotBase36", "X-HM://00522H1V!7OSX", ErrInvalidSetupURI},
		{"BadSetupID", "X-HM://00522H1VM7OS-", ErrInvalidSetupID},
		{"CodeOverflow", "X-HM://00027WR277OSX", ErrInvalidSetupCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSetupURI(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseSetupURI(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestSetupPayloadString(t *testing.T) {
	p, err := NewSetupPayload("03145154", CategoryLightbulb, SetupFlagIP, "7osx")
	require.NoError(t, err)

	assert.Equal(t, "031-45-154", p.SetupCode)
	assert.Equal(t, "7OSX", p.SetupID)
	assert.Equal(t, "X-HM://00522H1VM7OSX", p.String())

	back, err := ParseSetupURI(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestSetupPayloadStringKeepsTrivialCode(t *testing.T) {
	// Labels in the field can carry codes that NewSetupPayload refuses to
	// issue; encoding them must not lose the code.
	for _, code := range []string{"111-11-111", "123-45-678", "000-00-000"} {
		p := &SetupPayload{SetupCode: code, Category: CategoryLightbulb, Flags: SetupFlagIP, SetupID: "ABCD"}

		back, err := ParseSetupURI(p.String())
		if err != nil {
			t.Fatalf("ParseSetupURI(%q) error = %v", p.String(), err)
		}
		if back.SetupCode != code {
			t.Errorf("SetupCode = %q after round trip, want %q", back.SetupCode, code)
		}
		assert.Equal(t, p, back)
	}
}

func TestNewSetupPayloadInvalid(t *testing.T) {
	_, err := NewSetupPayload("111-11-111", CategoryBridge, 0, "ABCD")
	assert.ErrorIs(t, err, ErrInvalidSetupCode)

	_, err = NewSetupPayload("031-45-154", AccessoryCategory(300), 0, "ABCD")
	assert.ErrorIs(t, err, ErrInvalidSetupURI)

	_, err = NewSetupPayload("031-45-154", CategoryBridge, 0, "AB")
	assert.ErrorIs(t, err, ErrInvalidSetupID)
}

func TestParseSetupCode(t *testing.T) {
	tests := []struct {
		input string
		want  uint32
		ok    bool
	}{
		{"031-45-154", 3145154, true},
		{"03145154", 3145154, true},
		{"999-99-998", 99999998, true},
		{"000-00-000", 0, false},
		{"555-55-555", 0, false},
		{"123-45-678", 0, false},
		{"87654321", 0, false},
		{"0314-5154", 0, false},
		{"031-45-15", 0, false},
		{"abc-de-fgh", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseSetupCode(tt.input)
		if tt.ok {
			if err != nil || got != tt.want {
				t.Errorf("ParseSetupCode(%q) = %d, %v; want %d", tt.input, got, err, tt.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidSetupCode) {
			t.Errorf("ParseSetupCode(%q) error = %v, want ErrInvalidSetupCode", tt.input, err)
		}
	}
}

func TestFormatSetupCode(t *testing.T) {
	assert.Equal(t, "031-45-154", FormatSetupCode(3145154))
	assert.Equal(t, "000-00-001", FormatSetupCode(1))
}

func TestComputeSetupHash(t *testing.T) {
	want := []byte{0x5c, 0x8a, 0x27, 0x40}

	assert.Equal(t, want, ComputeSetupHash("7OSX", "AA:BB:CC:DD:EE:FF"))
	assert.Equal(t, want, ComputeSetupHash("7osx", "aa:bb:cc:dd:ee:ff"), "case-insensitive")
}

func TestServiceRecordMatchesSetupID(t *testing.T) {
	rec := &ServiceRecord{
		DeviceID:  "aa:bb:cc:dd:ee:ff",
		SetupHash: []byte{0x5c, 0x8a, 0x27, 0x40},
	}
	assert.True(t, rec.MatchesSetupID("7OSX"))
	assert.False(t, rec.MatchesSetupID("ABCD"))

	p, err := ParseSetupURI("X-HM://00522H1VM7OSX")
	require.NoError(t, err)
	assert.Equal(t, rec.SetupHash, p.SetupHash(rec.DeviceID))

	rec.SetupHash = nil
	assert.False(t, rec.MatchesSetupID("7OSX"))
}
