package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "2023/01/01", "", "not-a-date"}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPeriodKey(t *testing.T) {
	valid := []string{"2024-01", "2024-12", "1999-06"}
	invalid := []string{"2024-13", "2024-00", "2024-1", "2024", "01-2024", ""}
	for _, s := range valid {
		if !IsValidPeriodKey(s) {
			t.Errorf("IsValidPeriodKey(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidPeriodKey(s) {
			t.Errorf("IsValidPeriodKey(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:30", "17:00", "23:59"}
	invalid := []string{"24:00", "8:30", "08:5", "08:60", "0830", ""}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidRFIDUID(t *testing.T) {
	valid := []string{"04A2B3C1", "0011223344556677", "ABCDEF0123456789ABCD"}
	invalid := []string{"04a2b3c1", "04A2B3C", "ABCDEF0123456789ABCDE", "04A2-B3C1", ""}
	for _, s := range valid {
		if !IsValidRFIDUID(s) {
			t.Errorf("IsValidRFIDUID(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidRFIDUID(s) {
			t.Errorf("IsValidRFIDUID(%q) = true, want false", s)
		}
	}
}

func TestIsValidWeekday(t *testing.T) {
	for day := 0; day <= 6; day++ {
		if !IsValidWeekday(day) {
			t.Errorf("IsValidWeekday(%d) = false, want true", day)
		}
	}
	for _, day := range []int{-1, 7, 100} {
		if IsValidWeekday(day) {
			t.Errorf("IsValidWeekday(%d) = true, want false", day)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"2024-0001", "1999-1234"}
	invalid := []string{"20240001", "2024-001", "2024-00001", "abcd-0001", ""}
	for _, s := range valid {
		if !IsValidEmployeeCode(s) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidEmployeeCode(s) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{"2024-01-15T10:30:00Z", "2024-01-15T10:30:00+07:00", "2024-01-15T10:30:00.123Z"}
	invalid := []string{"2024-01-15 10:30:00", "2024-01-15", "10:30:00", ""}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"draft", "finalized", "paid"}
	if !IsInSlice("draft", slice) {
		t.Error("IsInSlice(draft) = false, want true")
	}
	if IsInSlice("reopened", slice) {
		t.Error("IsInSlice(reopened) = true, want false")
	}
	if IsInSlice("draft", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}
