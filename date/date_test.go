package date

import (
	"encoding/json"
	"testing"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{input: "2024-01-01", want: New(2024, 1, 1)},
		{input: "2025-7-1", want: New(2025, 7, 1)},
		{input: "2020-10-03T10:00:00Z", want: New(2020, 10, 3)},
		{input: "yesterday", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2024, 1, 32), New(2024, 2, 1); got != want {
		t.Errorf("New(2024, 1, 32) = %v, want %v", got, want)
	}
}

func TestJSON(t *testing.T) {
	testCases := []struct {
		input string
		want  Date
		str   string
	}{
		{input: `"2024-1-5"`, want: New(2024, 1, 5), str: "2024-01-05"},
		{input: `"2024-01-05T10:00:00Z"`, want: New(2024, 1, 5), str: "2024-01-05"},
		{input: `""`, want: Date{}, str: ""},
		{input: `null`, want: Date{}, str: ""},
		{input: `"01/02/2024"`, want: Text("01/02/2024"), str: "01/02/2024"},
		{input: `"2024-01-01 10:00:00"`, want: Text("2024-01-01 10:00:00"), str: "2024-01-01 10:00:00"},
		{input: `"Jan 2, 2024"`, want: Text("Jan 2, 2024"), str: "Jan 2, 2024"},
		{input: `1704067200000`, want: Text("1704067200000"), str: "1704067200000"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			var got struct {
				On Date `json:"on"`
			}
			if err := json.Unmarshal([]byte(`{"on":`+tc.input+`}`), &got); err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error: %v", tc.input, err)
			}
			if got.On != tc.want {
				t.Errorf("Unmarshal(%s) = %#v, want %#v", tc.input, got.On, tc.want)
			}
			if s := got.On.String(); s != tc.str {
				t.Errorf("Unmarshal(%s).String() = %q, want %q", tc.input, s, tc.str)
			}

			// a saved date reads back the same.
			data, err := json.Marshal(got.On)
			if err != nil {
				t.Fatalf("Marshal() unexpected error: %v", err)
			}
			var back Date
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error: %v", data, err)
			}
			if back != got.On {
				t.Errorf("Marshal() then Unmarshal() = %#v, want %#v", back, got.On)
			}
		})
	}
}
