package postgres

import (
	"database/sql"
	"testing"
)

func TestFormatVector(t *testing.T) {
	cases := []struct {
		name string
		in   []float32
		want string
	}{
		{"empty", nil, "[]"},
		{"single", []float32{0.5}, "[0.5]"},
		{"multiple", []float32{0.1, -0.25, 1}, "[0.1,-0.25,1]"},
		{"zero", []float32{0, 0}, "[0,0]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatVector(tc.in); got != tc.want {
				t.Errorf("formatVector(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNullIntRoundTrip(t *testing.T) {
	if got := NullInt(nil); got.Valid {
		t.Error("nil pointer should map to invalid NullInt64")
	}

	page := 7
	ni := NullInt(&page)
	if !ni.Valid || ni.Int64 != 7 {
		t.Errorf("unexpected NullInt64: %+v", ni)
	}

	back := IntPtr(ni)
	if back == nil || *back != 7 {
		t.Errorf("round trip lost value: %v", back)
	}

	if IntPtr(sql.NullInt64{}) != nil {
		t.Error("invalid NullInt64 should map to nil pointer")
	}
}

func TestNullBytes(t *testing.T) {
	if nullBytes(nil) != nil {
		t.Error("nil slice should map to nil")
	}
	if nullBytes([]byte{}) != nil {
		t.Error("empty slice should map to nil")
	}
	if v := nullBytes([]byte(`{"a":1}`)); v == nil {
		t.Error("non-empty slice should pass through")
	}
}
