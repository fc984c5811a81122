package domain

import (
	"testing"
	"time"
)

var earlyBirdEnd = time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)

func TestPrice_BaseTableAfterEarlyBird(t *testing.T) {
	after := earlyBirdEnd.AddDate(0, 0, 1)

	cases := []struct {
		count int
		want  int
	}{
		{1, 299},
		{2, 499},
		{3, 699},
		{4, 899},
		{5, 1495},
	}

	for _, tc := range cases {
		got := Price(tc.count, after, earlyBirdEnd)
		if got != tc.want {
			t.Errorf("Price(%d) after early bird = %d, want %d", tc.count, got, tc.want)
		}
	}
}

func TestPrice_EarlyBirdDiscount(t *testing.T) {
	cases := []struct {
		name  string
		today time.Time
	}{
		{"well before end", earlyBirdEnd.AddDate(0, 0, -5)},
		{"on end date", earlyBirdEnd},
	}

	for _, tc := range cases {
		for count, base := range map[int]int{1: 299, 2: 499, 3: 699, 4: 899} {
			got := Price(count, tc.today, earlyBirdEnd)
			if got != base-EarlyBirdDiscount {
				t.Errorf("%s: Price(%d) = %d, want %d", tc.name, count, got, base-EarlyBirdDiscount)
			}
		}
	}
}

func TestPrice_FlooredAtZero(t *testing.T) {
	if got := Price(0, earlyBirdEnd, earlyBirdEnd); got != 0 {
		t.Errorf("Price(0) during early bird = %d, want 0", got)
	}
}

func TestPrice_Deterministic(t *testing.T) {
	today := earlyBirdEnd.AddDate(0, 0, -1)
	first := Price(3, today, earlyBirdEnd)
	second := Price(3, today, earlyBirdEnd)
	if first != second {
		t.Errorf("Price is not deterministic: %d vs %d", first, second)
	}
}

func TestWindowStatus(t *testing.T) {
	registrationEnd := time.Date(2025, 9, 19, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		today time.Time
		want  RegistrationWindow
	}{
		{"during early bird", time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), WindowEarlyBird},
		{"on early bird end", earlyBirdEnd, WindowEarlyBird},
		{"after early bird", time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), WindowOpen},
		{"on registration end", registrationEnd, WindowOpen},
		{"after registration end", registrationEnd.AddDate(0, 0, 1), WindowClosed},
	}

	for _, tc := range cases {
		if got := WindowStatus(tc.today, earlyBirdEnd, registrationEnd); got != tc.want {
			t.Errorf("%s: WindowStatus = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestGameByID(t *testing.T) {
	game, ok := GameByID("blitzkrieg")
	if !ok {
		t.Fatal("Expected blitzkrieg to be on the roster")
	}
	if game.Name != "Operation Blitzkrieg" {
		t.Errorf("Expected game name 'Operation Blitzkrieg', got %q", game.Name)
	}

	if _, ok := GameByID("chess"); ok {
		t.Error("Expected unknown game id to be rejected")
	}
}

func TestPlaceholderEmail(t *testing.T) {
	email := PlaceholderEmail("PRN12345")
	if email != "PRN12345@temp.technopedia14.com" {
		t.Errorf("Unexpected placeholder email: %s", email)
	}
	if !IsPlaceholderEmail(email) {
		t.Error("Expected synthesized email to be recognized as placeholder")
	}
	if IsPlaceholderEmail("ada@example.com") {
		t.Error("Expected real email to not be a placeholder")
	}
}
