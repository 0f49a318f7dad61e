package entities

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"NGO", RoleNGO},
		{"ngo", RoleNGO},
		{"  project_manager ", RoleProjectManager},
		{"ADMIN", RoleAdmin},
		{"super_admin", RoleSuperAdmin},
	}
	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if err != nil {
			t.Fatalf("ParseRole(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRole(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParseRole("auditor"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestRoleAllows(t *testing.T) {
	cases := []struct {
		role   Role
		action Action
		want   bool
	}{
		{RoleNGO, ActionSubmit, true},
		{RoleNGO, ActionApprovePM, false},
		{RoleNGO, ActionApproveAdmin, false},
		{RoleProjectManager, ActionSubmit, false},
		{RoleProjectManager, ActionApprovePM, true},
		{RoleProjectManager, ActionApproveAdmin, false},
		{RoleProjectManager, ActionReject, true},
		{RoleProjectManager, ActionVerify, true},
		{RoleAdmin, ActionApprovePM, true},
		{RoleAdmin, ActionApproveAdmin, true},
		{RoleSuperAdmin, ActionApproveAdmin, true},
		{RoleSuperAdmin, ActionSubmit, false},
	}
	for _, tc := range cases {
		if got := tc.role.Allows(tc.action); got != tc.want {
			t.Fatalf("%s.Allows(%d) = %v, want %v", tc.role, tc.action, got, tc.want)
		}
	}
}
