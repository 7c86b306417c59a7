package model

import "testing"

func TestUserMediumValid(t *testing.T) {
	cases := []struct {
		in   UserMedium
		want bool
	}{
		{UserMediumEnglish, true},
		{UserMediumHindi, true},
		{UserMedium("french"), false},
		{UserMedium(""), false},
	}
	for _, tc := range cases {
		if got := tc.in.Valid(); got != tc.want {
			t.Fatalf("Valid(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestApplyClaimsNeverBlanks(t *testing.T) {
	avatar := "https://cdn.example.com/a.png"
	u := UserModel{
		UserEmail:     "old@example.com",
		UserFullName:  "Old Name",
		UserAvatarURL: &avatar,
	}

	u.ApplyClaims("", "", "")

	if u.UserEmail != "old@example.com" || u.UserFullName != "Old Name" {
		t.Fatalf("empty claims overwrote existing profile: %+v", u)
	}
	if u.UserAvatarURL == nil || *u.UserAvatarURL != avatar {
		t.Fatalf("empty picture claim cleared avatar")
	}

	u.ApplyClaims("New@Example.COM", " New Name ", "https://cdn.example.com/b.png")

	if u.UserEmail != "new@example.com" {
		t.Fatalf("email not lowercased: %q", u.UserEmail)
	}
	if u.UserFullName != "New Name" {
		t.Fatalf("name not trimmed: %q", u.UserFullName)
	}
	if u.UserAvatarURL == nil || *u.UserAvatarURL != "https://cdn.example.com/b.png" {
		t.Fatalf("picture claim not applied")
	}
}

func TestBeforeSaveDefaults(t *testing.T) {
	u := UserModel{
		UserEmail:    "  Mixed@Case.IN ",
		UserFullName: " A ",
		UserMedium:   UserMedium("broken"),
	}
	if err := u.BeforeSave(nil); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}
	if u.UserEmail != "mixed@case.in" {
		t.Fatalf("email not normalised: %q", u.UserEmail)
	}
	if u.UserRole != "student" {
		t.Fatalf("role default = %q, want student", u.UserRole)
	}
	if u.UserMedium != UserMediumEnglish {
		t.Fatalf("invalid medium not reset: %q", u.UserMedium)
	}
}

func TestBeforeSaveRoleNormalised(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Mentor", "mentor"},
		{" admin ", "admin"},
		{"superuser", "student"},
		{"", "student"},
	}
	for _, tc := range cases {
		u := UserModel{UserEmail: "x@y.in", UserFullName: "X", UserRole: tc.in}
		if err := u.BeforeSave(nil); err != nil {
			t.Fatalf("BeforeSave(%q): %v", tc.in, err)
		}
		if u.UserRole != tc.want {
			t.Fatalf("role %q normalised to %q, want %q", tc.in, u.UserRole, tc.want)
		}
	}
}
