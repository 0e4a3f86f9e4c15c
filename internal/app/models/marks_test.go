package models

import (
	"testing"
)

func TestGradeStatus(t *testing.T) {
	tests := []struct {
		name    string
		i1      int
		i2      int
		i3      int
		total   int
		status  string
	}{
		{"all zero", 0, 0, 0, 0, StatusFail},
		{"clear fail", 5, 5, 5, 15, StatusFail},
		{"just below threshold", 13, 13, 0, 26, StatusFail},
		{"just above threshold", 13, 13, 1, 27, StatusPass},
		{"clear pass", 20, 22, 19, 61, StatusPass},
		{"maximum", 25, 25, 25, 75, StatusPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &InternalMarks{Internal1: tt.i1, Internal2: tt.i2, Internal3: tt.i3}
			if m.Total() != tt.total {
				t.Fatalf("total = %d, want %d", m.Total(), tt.total)
			}
			if m.Status() != tt.status {
				t.Fatalf("status = %q, want %q", m.Status(), tt.status)
			}
		})
	}
}

func TestGradeStatusMatchesThresholdEverywhere(t *testing.T) {
	// The pass predicate must hold for every representable total.
	for total := 0; total <= TotalMax; total++ {
		want := StatusFail
		if float64(total) >= PassThreshold {
			want = StatusPass
		}
		if got := GradeStatus(total); got != want {
			t.Fatalf("GradeStatus(%d) = %q, want %q", total, got, want)
		}
	}
}

func TestValidSubScore(t *testing.T) {
	for _, score := range []int{0, 1, 24, 25} {
		if !ValidSubScore(score) {
			t.Errorf("ValidSubScore(%d) = false, want true", score)
		}
	}
	for _, score := range []int{-1, 26, 100} {
		if ValidSubScore(score) {
			t.Errorf("ValidSubScore(%d) = true, want false", score)
		}
	}
}

func TestRoleTypeIsValid(t *testing.T) {
	for _, role := range []RoleType{RoleStudent, RoleStaff, RoleAdmin} {
		if !role.IsValid() {
			t.Errorf("role %q should be valid", role)
		}
	}
	if RoleType("superuser").IsValid() {
		t.Error("unknown role should not be valid")
	}
}
