package content

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Movie Recommendation System", "movie-recommendation-system"},
		{"CO₂ Emissions Analysis", "co2-emissions-analysis"},
		{"Darija AI Chatbot (RAG + Gemini)", "darija-ai-chatbot-rag-gemini"},
		{"NextJob — AI-Powered Job Matching", "nextjob-ai-powered-job-matching"},
		{"  Café  ", "cafe"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNavigationItem_Anchor(t *testing.T) {
	if !(NavigationItem{Target: "#about"}).IsAnchor() {
		t.Error("#about should be an anchor")
	}
	if (NavigationItem{Target: "https://example.com"}).IsAnchor() {
		t.Error("URL should not be an anchor")
	}
	if got := (NavigationItem{Target: "#"}).AnchorID(); got != "" {
		t.Errorf("AnchorID(#) = %q, want empty", got)
	}
}
