package llm

import "testing"

func TestExtractJSONObject(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
		Role string `json:"role"`
	}

	cases := []struct {
		name     string
		raw      string
		wantName string
		wantErr  bool
	}{
		{
			name:     "bare object",
			raw:      `{"name": "Ada", "role": "Engineer"}`,
			wantName: "Ada",
		},
		{
			name:     "fenced block",
			raw:      "```json\n{\"name\": \"Ada\", \"role\": \"Engineer\"}\n```",
			wantName: "Ada",
		},
		{
			name:     "fence without language tag",
			raw:      "```\n{\"name\": \"Ada\", \"role\": \"Engineer\"}\n```",
			wantName: "Ada",
		},
		{
			name:     "surrounding prose",
			raw:      "Sure, here is the JSON you asked for:\n{\"name\": \"Ada\", \"role\": \"Engineer\"}\nLet me know if you need anything else.",
			wantName: "Ada",
		},
		{
			name:     "nested braces",
			raw:      `Result: {"name": "Ada", "role": "Engineer", "extra": {"deep": {"level": 2}}} done`,
			wantName: "Ada",
		},
		{
			name:    "no braces",
			raw:     "I could not produce JSON for that request.",
			wantErr: true,
		},
		{
			name:    "invalid json between braces",
			raw:     "{this is not json}",
			wantErr: true,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var p payload
			err := ExtractJSONObject(c.raw, &p)
			if c.wantErr {
				if err == nil {
					t.Fatalf("ExtractJSONObject(%q) expected error, got none", c.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractJSONObject(%q) error: %v", c.raw, err)
			}
			if p.Name != c.wantName {
				t.Fatalf("name = %q; want %q", p.Name, c.wantName)
			}
		})
	}
}
