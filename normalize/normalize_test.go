package normalize

import "testing"

func TestStrip(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		keepApostrophes bool
		want            string
	}{
		{"empty", "", true, ""},
		{"empty strict", "", false, ""},
		{"contraction removed", "They're here", false, "Theyre here"},
		{"contraction kept", "They're here", true, "They're here"},
		{"sentence removed", "They're here, and they're there.", false, "Theyre here and theyre there"},
		{"sentence kept", "They're here, and they're there.", true, "They're here and they're there"},
		{
			"mixed punctuation",
			"Who's there?I have no time for this... nonsense...my guy! a who's-who, veritably.",
			false,
			"Whos thereI have no time for this nonsensemy guy a whoswho veritably",
		},
		{"hyphen always removed", "well-known fact", true, "wellknown fact"},
		{"leading apostrophe dropped", "'tis the season", true, "tis the season"},
		{"trailing apostrophe dropped", "the teachers' lounge", true, "the teachers lounge"},
		{"typographic apostrophe kept", "They’re here", true, "They’re here"},
		{"typographic apostrophe removed", "They’re here", false, "Theyre here"},
		{"digits kept", "room 101, floor 3", true, "room 101 floor 3"},
		{"arabic diacritics survive", "فَا", true, "فَا"},
		{"arabic diacritics survive strict", "فَا!", false, "فَا"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strip(tt.text, tt.keepApostrophes)
			if got != tt.want {
				t.Errorf("Strip(%q, %v) = %q, want %q", tt.text, tt.keepApostrophes, got, tt.want)
			}
		})
	}
}

func TestStripIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"They're here, and they're there.",
		"Who's there?I have no time for this... nonsense...my guy!",
		"well-known — facts; and. more?",
		"فَا",
	}
	for _, keep := range []bool{true, false} {
		for _, in := range inputs {
			once := Strip(in, keep)
			twice := Strip(once, keep)
			if once != twice {
				t.Errorf("Strip(Strip(%q, %v)) = %q, want %q", in, keep, twice, once)
			}
		}
	}
}

func TestStripNeverLengthens(t *testing.T) {
	inputs := []string{
		"plain words",
		"punct!!! everywhere??? ...",
		"they're they'd they'll",
		"فَا",
	}
	for _, keep := range []bool{true, false} {
		for _, in := range inputs {
			out := Strip(in, keep)
			if len([]rune(out)) > len([]rune(in)) {
				t.Errorf("Strip(%q, %v) lengthened input: %q", in, keep, out)
			}
		}
	}
}
