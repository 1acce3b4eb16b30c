package roles

import "testing"

func TestParseRole(t *testing.T) {
	for _, s := range []string{"member", "client", "admin"} {
		role, ok := ParseRole(s)
		if !ok {
			t.Errorf("ParseRole(%q) should succeed", s)
		}
		if string(role) != s {
			t.Errorf("ParseRole(%q) = %q", s, role)
		}
	}

	for _, s := range []string{"", "superadmin", "Member", "ADMIN", "guest"} {
		if _, ok := ParseRole(s); ok {
			t.Errorf("ParseRole(%q) should fail", s)
		}
	}
}

func TestCanAccess(t *testing.T) {
	cases := []struct {
		current, required Role
		want              bool
	}{
		{Member, Member, true},
		{Client, Client, true},
		{Admin, Admin, true},
		{Admin, Member, true}, // admins may browse the member pages
		{Admin, Client, false},
		{Client, Member, false},
		{Client, Admin, false},
		{Member, Client, false},
		{Member, Admin, false},
	}

	for _, tc := range cases {
		if got := CanAccess(tc.current, tc.required); got != tc.want {
			t.Errorf("CanAccess(%s, %s) = %v, want %v", tc.current, tc.required, got, tc.want)
		}
	}
}

func TestLoginRoute(t *testing.T) {
	if got := LoginRoute(Admin); got != AdminLoginRoute {
		t.Errorf("LoginRoute(Admin) = %q", got)
	}
	if got := LoginRoute(Client); got != ClientLoginRoute {
		t.Errorf("LoginRoute(Client) = %q", got)
	}
	if got := LoginRoute(Member); got != MemberLoginRoute {
		t.Errorf("LoginRoute(Member) = %q", got)
	}
}
