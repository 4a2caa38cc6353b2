package utils

import (
	"testing"
)

func TestDecodeLooseJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]interface{}
		wantErr bool
	}{
		{
			name:  "Pure JSON",
			input: `{"location": "Punggol", "price_per_sqft": 650}`,
			want: map[string]interface{}{
				"location":       "Punggol",
				"price_per_sqft": float64(650),
			},
			wantErr: false,
		},
		{
			name: "JSON in markdown code block",
			input: "```json\n" +
				`{"location": "Bedok", "rental_yield": 3.2}` + "\n```",
			want: map[string]interface{}{
				"location":     "Bedok",
				"rental_yield": float64(3.2),
			},
			wantErr: false,
		},
		{
			name:  "JSON with surrounding text",
			input: `Here is the result: {"status": "success", "count": 5} and that's it.`,
			want: map[string]interface{}{
				"status": "success",
				"count":  float64(5),
			},
			wantErr: false,
		},
		{
			name:  "JSON with trailing comma",
			input: `{"location": "Tampines", "percent_increase": 4.1,}`,
			want: map[string]interface{}{
				"location":         "Tampines",
				"percent_increase": float64(4.1),
			},
			wantErr: false,
		},
		{
			name:  "JSON with unquoted keys",
			input: `{location: "Yishun", price_per_sqft: 580}`,
			want: map[string]interface{}{
				"location":       "Yishun",
				"price_per_sqft": float64(580),
			},
			wantErr: false,
		},
		{
			name:    "Empty string",
			input:   "",
			want:    nil,
			wantErr: true,
		},
		{
			name:    "Not JSON at all",
			input:   "no listings were found",
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]interface{}
			err := DecodeLooseJSON(tt.input, &got)

			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeLooseJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantErr {
				return
			}

			if len(got) != len(tt.want) {
				t.Fatalf("DecodeLooseJSON() got = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("DecodeLooseJSON() key %s = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Fence with json tag",
			input: "```json\n{\"test\": true}\n```",
			want:  `{"test": true}`,
		},
		{
			name:  "Fence without tag",
			input: "```\n{\"test\": true}\n```",
			want:  `{"test": true}`,
		},
		{
			name:  "Fenced non-JSON body",
			input: "```\nplain text\n```",
			want:  "",
		},
		{
			name:  "No fence",
			input: `{"test": true}`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripCodeFence(tt.input)
			if got != tt.want {
				t.Errorf("stripCodeFence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBalancedSlice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		open  rune
		close rune
		want  string
	}{
		{
			name:  "Simple object",
			input: `{"a": 1}`,
			open:  '{',
			close: '}',
			want:  `{"a": 1}`,
		},
		{
			name:  "Nested objects",
			input: `{"a": {"b": 2}}`,
			open:  '{',
			close: '}',
			want:  `{"a": {"b": 2}}`,
		},
		{
			name:  "Braces inside string literal",
			input: `{"text": "condo {rare}"}`,
			open:  '{',
			close: '}',
			want:  `{"text": "condo {rare}"}`,
		},
		{
			name:  "Array",
			input: `[1, 2, 3]`,
			open:  '[',
			close: ']',
			want:  `[1, 2, 3]`,
		},
		{
			name:  "Unbalanced",
			input: `{"a": 1`,
			open:  '{',
			close: '}',
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := balancedSlice(tt.input, tt.open, tt.close)
			if got != tt.want {
				t.Errorf("balancedSlice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrettyPrintJSON(t *testing.T) {
	out, err := PrettyPrintJSON(map[string]int{"bedrooms": 3})
	if err != nil {
		t.Fatalf("PrettyPrintJSON() error = %v", err)
	}
	want := "{\n  \"bedrooms\": 3\n}"
	if out != want {
		t.Errorf("PrettyPrintJSON() = %q, want %q", out, want)
	}
}
