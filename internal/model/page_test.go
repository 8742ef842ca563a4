package model

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		name string
		in   PageRequest
		want PageRequest
	}{
		{"valid", PageRequest{Page: 2, PageSize: 20}, PageRequest{Page: 2, PageSize: 20}},
		{"zero page", PageRequest{Page: 0, PageSize: 20}, PageRequest{Page: 1, PageSize: 20}},
		{"negative page", PageRequest{Page: -3, PageSize: 20}, PageRequest{Page: 1, PageSize: 20}},
		{"zero size", PageRequest{Page: 1, PageSize: 0}, PageRequest{Page: 1, PageSize: 10}},
		{"negative size", PageRequest{Page: 1, PageSize: -5}, PageRequest{Page: 1, PageSize: 10}},
		{"oversized", PageRequest{Page: 1, PageSize: CohortPageSize + 1}, PageRequest{Page: 1, PageSize: CohortPageSize}},
		{"cohort size passes through", CohortPage(), CohortPage()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Clamp(); got != tc.want {
				t.Errorf("Clamp(%+v) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := (PageRequest{Page: 1, PageSize: 10}).Offset(); got != 0 {
		t.Errorf("page 1 offset = %d, want 0", got)
	}
	if got := (PageRequest{Page: 3, PageSize: 25}).Offset(); got != 50 {
		t.Errorf("page 3 offset = %d, want 50", got)
	}
}
