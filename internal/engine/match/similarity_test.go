package match

import (
	"math"
	"testing"
)

func TestContentSimilarity(t *testing.T) {
	t.Run("identical texts", func(t *testing.T) {
		text := "Senior engineer building distributed systems in Go and Python"
		if got := ContentSimilarity(text, text); math.Abs(got-1.0) > 1e-9 {
			t.Errorf("identical texts = %v, want 1.0", got)
		}
	})

	t.Run("disjoint texts", func(t *testing.T) {
		if got := ContentSimilarity("alpha bravo charlie", "delta echo foxtrot"); got != 0 {
			t.Errorf("disjoint texts = %v, want 0", got)
		}
	})

	t.Run("partial overlap strictly between", func(t *testing.T) {
		got := ContentSimilarity(
			"python developer with docker skills",
			"python developer with kubernetes background",
		)
		if got <= 0 || got >= 1 {
			t.Errorf("partial overlap = %v, want in (0, 1)", got)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		a := "resume text about backend engineering and databases"
		b := "job description mentioning backend services and testing"
		if ab, ba := ContentSimilarity(a, b), ContentSimilarity(b, a); math.Abs(ab-ba) > 1e-12 {
			t.Errorf("not symmetric: %v vs %v", ab, ba)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := ContentSimilarity("", "anything here"); got != 0 {
			t.Errorf("empty resume = %v, want 0", got)
		}
		if got := ContentSimilarity("anything here", ""); got != 0 {
			t.Errorf("empty job = %v, want 0", got)
		}
	})

	t.Run("stop words carry no signal", func(t *testing.T) {
		if got := ContentSimilarity("the and of with", "kubernetes platform"); got != 0 {
			t.Errorf("stop-word-only resume = %v, want 0", got)
		}
	})

	t.Run("more overlap scores higher", func(t *testing.T) {
		jd := "python docker kubernetes postgresql monitoring"
		low := ContentSimilarity("python gardening cooking painting dancing", jd)
		high := ContentSimilarity("python docker kubernetes postgresql deploys", jd)
		if high <= low {
			t.Errorf("high overlap %v should beat low overlap %v", high, low)
		}
	})
}
