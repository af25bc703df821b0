package models

import "testing"

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"administrator", RoleAdministrator},
		{"Administrator", RoleAdministrator},
		{"ADMINISTRATOR", RoleAdministrator},
		{"distributor", RoleDistributor},
		{" Distributor ", RoleDistributor},
		{"corporate", RoleCorporate},
		{"", RoleCorporate},
		{"manager", RoleCorporate}, // unknown roles fall back to corporate
	}

	for _, tc := range cases {
		if got := NormalizeRole(tc.in); got != tc.want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
