package usecase

import "testing"

func TestNormalizeAnswer(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips bold markup",
			in:   "The cutoff is **96.5 percentile** this year.",
			want: "The cutoff is 96.5 percentile this year.",
		},
		{
			name: "unifies list markers",
			in:   "* First college\n- Second college\n  * Third college",
			want: "• First college\n• Second college\n• Third college",
		},
		{
			name: "breaks after colon before capitalized clause",
			in:   "Eligibility: Candidates must pass MHT-CET.",
			want: "Eligibility:\nCandidates must pass MHT-CET.",
		},
		{
			name: "leaves lowercase after colon alone",
			in:   "fees: around 85000 per year",
			want: "fees: around 85000 per year",
		},
		{
			name: "collapses blank runs",
			in:   "First paragraph.\n\n\n\nSecond paragraph.",
			want: "First paragraph.\n\nSecond paragraph.",
		},
		{
			name: "trims surrounding whitespace",
			in:   "  \n answer \n\n",
			want: "answer",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeAnswer(tc.in)
			if got != tc.want {
				t.Fatalf("NormalizeAnswer() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeAnswerIdempotent(t *testing.T) {
	inputs := []string{
		"**Cutoffs**: For CSE the closing percentile was 98.2.\n\n* COEP\n* VJTI",
		"Eligibility: Candidates need a valid MHT-CET score.\n\n\nSee the brochure.",
		"plain answer with no markup",
	}
	for _, in := range inputs {
		once := NormalizeAnswer(in)
		twice := NormalizeAnswer(once)
		if once != twice {
			t.Fatalf("NormalizeAnswer not idempotent:\nonce  = %q\ntwice = %q", once, twice)
		}
	}
}
