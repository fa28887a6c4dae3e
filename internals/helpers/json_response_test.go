package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name           string
		total          int64
		page, perPage  int
		wantTotalPages int
		wantHasNext    bool
		wantHasPrev    bool
	}{
		{"halaman pertama dari tiga", 45, 1, 20, 3, true, false},
		{"halaman tengah", 45, 2, 20, 3, true, true},
		{"halaman terakhir", 45, 3, 20, 3, false, true},
		{"kosong tetap satu halaman", 0, 1, 20, 1, false, false},
		{"perPage nol dinormalisasi", 10, 1, 0, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if p.TotalPages != tt.wantTotalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotalPages)
			}
			if p.HasNext != tt.wantHasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantHasNext)
			}
			if p.HasPrev != tt.wantHasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.wantHasPrev)
			}
		})
	}
}

func TestStatusToErrorCode(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{fiber.StatusBadRequest, "BAD_REQUEST"},
		{fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{fiber.StatusForbidden, "FORBIDDEN"},
		{fiber.StatusNotFound, "NOT_FOUND"},
		{fiber.StatusConflict, "CONFLICT"},
		{fiber.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{fiber.StatusInternalServerError, "INTERNAL_ERROR"},
		{fiber.StatusBadGateway, "INTERNAL_ERROR"},
		{fiber.StatusTeapot, "ERROR"},
	}

	for _, tt := range tests {
		if got := statusToErrorCode(tt.status); got != tt.want {
			t.Errorf("statusToErrorCode(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
