package configs

import "testing"

func TestValidateEmailAddress(t *testing.T) {
	valid := []string{"asha@example.com", "a.b+tag@sub.example.co.in"}
	for _, email := range valid {
		if err := ValidateEmailAddress(email); err != nil {
			t.Errorf("ValidateEmailAddress(%q) = %v", email, err)
		}
	}

	invalid := []string{"", "not-an-email", "missing@domain@twice.com", "@example.com"}
	for _, email := range invalid {
		if err := ValidateEmailAddress(email); err == nil {
			t.Errorf("ValidateEmailAddress(%q) should fail", email)
		}
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "123456789012345"}
	for _, phone := range valid {
		if err := ValidatePhoneNumber(phone); err != nil {
			t.Errorf("ValidatePhoneNumber(%q) = %v", phone, err)
		}
	}

	invalid := []string{"", "12345", "98765 43210", "12ab34cd56", "+1234567890123456"}
	for _, phone := range invalid {
		if err := ValidatePhoneNumber(phone); err == nil {
			t.Errorf("ValidatePhoneNumber(%q) should fail", phone)
		}
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("orchid-gate-77")
	if err != nil {
		t.Fatal(err)
	}
	if err := CheckPassword(hash, "orchid-gate-77"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := CheckPassword(hash, "wrong-password"); err == nil {
		t.Error("wrong password accepted")
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")

	token, err := GenerateSessionToken("admin@veyra.io")
	if err != nil {
		t.Fatal(err)
	}

	email, err := ValidateSessionToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if email != "admin@veyra.io" {
		t.Errorf("email = %q", email)
	}

	if _, err := ValidateSessionToken(token + "tampered"); err == nil {
		t.Error("tampered token accepted")
	}
}
