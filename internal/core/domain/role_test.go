package domain

import "testing"

func TestRoleForEmail(t *testing.T) {
	cases := []struct {
		email   string
		role    Role
		wantErr bool
	}{
		{"juan@gbox.ncf.edu.ph", RoleStudent, false},
		{"JUAN.DELACRUZ@gbox.ncf.edu.ph", RoleStudent, false},
		{"prof@ncf.edu.ph", RoleInstructor, false},
		{"Prof.Reyes@NCF.EDU.PH", RoleInstructor, false},
		{"someone@gmail.com", "", true},
		{"someone@ncf.edu.ph.evil.com", "", true},
		// The staff host is a suffix of the student host; neither may
		// match the other.
		{"x@sub.gbox.ncf.edu.ph", "", true},
		{"@ncf.edu.ph", "", true},
		{"has space@ncf.edu.ph", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		role, err := RoleForEmail(tc.email)
		if tc.wantErr {
			if err != ErrEmailDomainNotAllowed {
				t.Fatalf("%q: expected ErrEmailDomainNotAllowed, got %v", tc.email, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.email, err)
		}
		if role != tc.role {
			t.Fatalf("%q: expected role %s, got %s", tc.email, tc.role, role)
		}
	}
}

func TestRoleAllowsEmail(t *testing.T) {
	student := "ana@gbox.ncf.edu.ph"
	staff := "ana@ncf.edu.ph"
	outside := "ana@example.com"

	if !RoleStudent.AllowsEmail(student) {
		t.Fatalf("student email rejected for student role")
	}
	if RoleStudent.AllowsEmail(staff) {
		t.Fatalf("staff email accepted for student role")
	}

	for _, r := range []Role{RoleInstructor, RoleCurriculumManager, RoleAdmin} {
		if !r.AllowsEmail(staff) {
			t.Fatalf("staff email rejected for %s", r)
		}
		if r.AllowsEmail(student) {
			t.Fatalf("student email accepted for %s", r)
		}
		if r.AllowsEmail(outside) {
			t.Fatalf("outside email accepted for %s", r)
		}
	}

	if Role("ghost").AllowsEmail(staff) {
		t.Fatalf("unknown role must not allow any email")
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"student", "instructor", "curriculum_manager", "admin"} {
		r, err := ParseRole(s)
		if err != nil {
			t.Fatalf("ParseRole(%q): %v", s, err)
		}
		if string(r) != s || !r.Valid() {
			t.Fatalf("ParseRole(%q) = %q", s, r)
		}
	}
	if _, err := ParseRole("teacher"); err != ErrUnknownRole {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}
