package validator

import (
	"strings"
	"testing"
)

type mainForm struct {
	Name   string `validate:"required,min=2,max=100,fullname"`
	Email  string `validate:"required,max=100,email"`
	Phone  string `validate:"required,len=10,inmobile"`
	PRN    string `validate:"required,min=5,max=50,alphanum"`
	Branch string `validate:"required,branch"`
	Year   string `validate:"required,academicyear"`
}

func validForm() mainForm {
	return mainForm{
		Name:   "Asha Kulkarni",
		Email:  "asha@example.com",
		Phone:  "9876543210",
		PRN:    "PRN2025A01",
		Branch: "Computer Engineering",
		Year:   "Second Year",
	}
}

func TestValidateStruct_ValidForm(t *testing.T) {
	form := validForm()
	if err := ValidateStruct(&form); err != nil {
		t.Fatalf("Expected valid form to pass, got %v", err)
	}
}

func TestValidateStruct_RequiredFields(t *testing.T) {
	form := mainForm{}
	err := ValidateStruct(&form)
	if err == nil {
		t.Fatal("Expected error for empty form, got nil")
	}

	fields := FormatValidationError(err)
	for _, field := range []string{"name", "email", "phone", "prn", "branch", "year"} {
		msg, ok := fields[field]
		if !ok {
			t.Errorf("Expected error for field %s", field)
			continue
		}
		if msg != "This field is required" {
			t.Errorf("Expected required message for %s, got %q", field, msg)
		}
	}
}

func TestValidateStruct_PhoneFirstDigit(t *testing.T) {
	// Indian mobile numbers start with 6-9; anything else is rejected
	// even at the right length.
	cases := map[string]bool{
		"9876543210": true,
		"8876543210": true,
		"7876543210": true,
		"6876543210": true,
		"5876543210": false,
		"0876543210": false,
		"98765432":   false,
		"98765432101": false,
		"98765a3210": false,
	}

	for phone, want := range cases {
		form := validForm()
		form.Phone = phone
		err := ValidateStruct(&form)
		if got := err == nil; got != want {
			t.Errorf("Phone %q: expected valid=%v, got error %v", phone, want, err)
		}
	}
}

func TestValidateStruct_PhoneErrorMessage(t *testing.T) {
	form := validForm()
	form.Phone = "12345"
	err := ValidateStruct(&form)
	if err == nil {
		t.Fatal("Expected error for bad phone, got nil")
	}

	fields := FormatValidationError(err)
	if fields["phone"] != "Please enter a valid 10-digit mobile number" {
		t.Errorf("Expected mobile number message, got %q", fields["phone"])
	}
}

func TestValidateStruct_NameRejectsDigits(t *testing.T) {
	form := validForm()
	form.Name = "Asha 2nd"
	if err := ValidateStruct(&form); err == nil {
		t.Fatal("Expected error for name with digits, got nil")
	}
}

func TestValidateStruct_NoWhitespaceTrimming(t *testing.T) {
	// Values are validated exactly as submitted. A padded PRN fails
	// alphanum rather than being silently trimmed.
	form := validForm()
	form.PRN = " PRN2025A01"
	err := ValidateStruct(&form)
	if err == nil {
		t.Fatal("Expected padded PRN to be rejected, got nil")
	}

	fields := FormatValidationError(err)
	if fields["prn"] != "PRN should only contain letters and numbers" {
		t.Errorf("Expected alphanum message, got %q", fields["prn"])
	}
}

func TestValidateStruct_PRNLength(t *testing.T) {
	form := validForm()
	form.PRN = "AB12"
	if err := ValidateStruct(&form); err == nil {
		t.Fatal("Expected short PRN to be rejected, got nil")
	}

	form.PRN = strings.Repeat("A", 51)
	if err := ValidateStruct(&form); err == nil {
		t.Fatal("Expected long PRN to be rejected, got nil")
	}
}

func TestValidateStruct_BranchMembership(t *testing.T) {
	form := validForm()
	form.Branch = "Astrology"
	if err := ValidateStruct(&form); err == nil {
		t.Fatal("Expected unknown branch to be rejected, got nil")
	}

	form.Branch = "Other"
	if err := ValidateStruct(&form); err != nil {
		t.Fatalf("Expected Other branch to pass, got %v", err)
	}
}

func TestValidateStruct_YearMembership(t *testing.T) {
	form := validForm()
	form.Year = "Fifth Year"
	if err := ValidateStruct(&form); err == nil {
		t.Fatal("Expected unknown year to be rejected, got nil")
	}

	form.Year = "Graduate"
	if err := ValidateStruct(&form); err != nil {
		t.Fatalf("Expected Graduate year to pass, got %v", err)
	}
}

func TestFormatValidationError_FirstErrorPerField(t *testing.T) {
	form := validForm()
	form.Name = "A"
	err := ValidateStruct(&form)
	if err == nil {
		t.Fatal("Expected error for one-letter name, got nil")
	}

	fields := FormatValidationError(err)
	if _, ok := fields["name"]; !ok {
		t.Error("Expected an error entry for name")
	}
	if len(fields) != 1 {
		t.Errorf("Expected exactly one failing field, got %v", fields)
	}
}
