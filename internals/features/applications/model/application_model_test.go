package model

import "testing"

func TestStatusPredicates(t *testing.T) {
	tests := []struct {
		status             string
		terminal           bool
		blocksResubmission bool
		valid              bool
	}{
		{StatusPending, false, true, true},
		{StatusApproved, true, true, true},
		{StatusRejected, true, false, true},
		{StatusCancelled, true, false, true},
		{"archived", false, false, false},
		{"", false, false, false},
	}

	for _, tt := range tests {
		if got := IsTerminal(tt.status); got != tt.terminal {
			t.Errorf("IsTerminal(%q) = %v, want %v", tt.status, got, tt.terminal)
		}
		if got := BlocksResubmission(tt.status); got != tt.blocksResubmission {
			t.Errorf("BlocksResubmission(%q) = %v, want %v", tt.status, got, tt.blocksResubmission)
		}
		if got := ValidStatus(tt.status); got != tt.valid {
			t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.valid)
		}
	}
}

// Daftar status pemblokir harus sejalan dengan predikat BlocksResubmission
// dan dengan klausa WHERE index unik parsial uq_application_active:
// pending/approved memblokir aplikasi baru, rejected/cancelled membolehkan
// siswa apply ulang ke beasiswa yang sama.
func TestResubmissionBlockingStatuses(t *testing.T) {
	got := ResubmissionBlockingStatuses()

	want := []string{StatusPending, StatusApproved}
	if len(got) != len(want) {
		t.Fatalf("ResubmissionBlockingStatuses() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ResubmissionBlockingStatuses() = %v, want %v", got, want)
		}
	}

	for _, s := range got {
		if !BlocksResubmission(s) {
			t.Errorf("status %q ada di daftar tapi BlocksResubmission(%q) = false", s, s)
		}
	}
	for _, s := range []string{StatusRejected, StatusCancelled} {
		for _, b := range got {
			if s == b {
				t.Errorf("status %q tidak boleh memblokir apply ulang", s)
			}
		}
	}
}
