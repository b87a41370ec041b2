package llm

import "testing"

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		wantKey string
		wantOK  bool
	}{
		{
			name:    "direct object",
			content: `{"selected_exercises": ["Pushups"], "reasoning": "x"}`,
			wantKey: "selected_exercises",
			wantOK:  true,
		},
		{
			name:    "fenced json block",
			content: "Here you go:\n```json\n{\"selected_exercises\": [\"Pushups\"]}\n```\nHope that helps!",
			wantKey: "selected_exercises",
			wantOK:  true,
		},
		{
			name:    "fenced block without language tag",
			content: "```\n{\"selected_products\": [\"Mat\"]}\n```",
			wantKey: "selected_products",
			wantOK:  true,
		},
		{
			name:    "object buried in prose",
			content: `Sure! Based on the profile I picked {"selected_exercises": ["Plank"]} as requested.`,
			wantKey: "selected_exercises",
			wantOK:  true,
		},
		{
			name:    "braces inside strings do not break scanning",
			content: `answer: {"reasoning": "use {light} weights", "selected_exercises": ["Plank"]}`,
			wantKey: "selected_exercises",
			wantOK:  true,
		},
		{
			name:    "after think block",
			content: "<think>\nlong reasoning with stray { brace\n</think>\n{\"selected_exercises\": [\"Plank\"]}",
			wantKey: "selected_exercises",
			wantOK:  true,
		},
		{
			name:    "top-level array unwraps to first object",
			content: `[{"selected_exercises": ["Plank"]}, {"ignored": true}]`,
			wantKey: "selected_exercises",
			wantOK:  true,
		},
		{
			name:    "no json at all",
			content: "I cannot answer that.",
			wantOK:  false,
		},
		{
			name:    "empty content",
			content: "",
			wantOK:  false,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			obj, err := ExtractJSON(tc.content)
			if tc.wantOK && err != nil {
				t.Fatalf("ExtractJSON: %v", err)
			}
			if !tc.wantOK {
				if err == nil {
					t.Fatalf("expected error, got %v", obj)
				}
				return
			}
			if _, present := obj[tc.wantKey]; !present {
				t.Fatalf("extracted object missing key %q: %v", tc.wantKey, obj)
			}
		})
	}
}
