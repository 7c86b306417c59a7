package evaluator

import (
	"strings"
	"testing"
)

const structuredAnswer = `Urbanisation in India has outpaced the capacity of municipal institutions, and the result is visible in housing, transport and sanitation deficits across every major city.

The first dimension is fiscal. Municipal bodies raise barely a tenth of their expenditure from their own taxes, which leaves capital works hostage to state transfers. The second dimension is administrative, since parastatal agencies fragment accountability for water, land and transport. The third dimension is political, because short mayoral tenures discourage long-horizon planning. Each of these feeds the others and the deficit compounds.

Reform therefore has to move on all three fronts together. Property tax modernisation, directly elected mayors with five-year tenures, and the unbundling of parastatals into council-accountable utilities would give cities both the money and the mandate they currently lack.

In conclusion, urban governance reform is no longer optional; the census towns of today will be the metros of the next decade, and the institutions must be rebuilt before the population arrives.`

func TestEvaluateDeterministic(t *testing.T) {
	a := Evaluate(structuredAnswer, 250, 10)
	b := Evaluate(structuredAnswer, 250, 10)

	if a.Score != b.Score {
		t.Fatalf("same content scored differently: %v vs %v", a.Score, b.Score)
	}
	if a.Breakdown != b.Breakdown {
		t.Fatalf("same content produced different breakdowns: %+v vs %+v", a.Breakdown, b.Breakdown)
	}
	if a.Feedback != b.Feedback {
		t.Fatalf("same content produced different feedback")
	}
}

func TestEvaluateBounds(t *testing.T) {
	for _, content := range []string{
		structuredAnswer,
		"One short line without much in it.",
		strings.Repeat("word ", 600),
	} {
		res := Evaluate(content, 250, 10)
		if res.Score < 0 || res.Score > 10 {
			t.Fatalf("score out of range: %v for %q...", res.Score, content[:20])
		}
		for _, comp := range []float64{
			res.Breakdown.Introduction, res.Breakdown.Body,
			res.Breakdown.Conclusion, res.Breakdown.Language,
		} {
			if comp < 0 || comp > 10 {
				t.Fatalf("component out of range: %+v", res.Breakdown)
			}
		}
		if res.Feedback == "" {
			t.Fatalf("feedback must never be empty")
		}
		if len(res.Suggestions) == 0 {
			t.Fatalf("suggestions must never be empty")
		}
	}
}

func TestEvaluateStructuredBeatsUnstructured(t *testing.T) {
	unstructured := strings.Repeat("point ", 60) // 60 words, one blob, no sentences

	good := Evaluate(structuredAnswer, 250, 10)
	bad := Evaluate(unstructured, 250, 10)

	if good.Score <= bad.Score {
		t.Fatalf("structured full-length answer (%v) must outscore a 60-word blob (%v)", good.Score, bad.Score)
	}
}

func TestEvaluateScalesWithMarks(t *testing.T) {
	ten := Evaluate(structuredAnswer, 250, 10)
	twenty := Evaluate(structuredAnswer, 250, 20)

	// Same rubric ratio, double the marks.
	if twenty.Score < ten.Score*1.8 || twenty.Score > ten.Score*2.2 {
		t.Fatalf("marks scaling off: 10-mark=%v 20-mark=%v", ten.Score, twenty.Score)
	}
}

func TestSuggestionsTargetWeakComponents(t *testing.T) {
	res := Evaluate("Too short.", 250, 10)
	if len(res.Suggestions) == 0 || len(res.Suggestions) > 3 {
		t.Fatalf("suggestion count out of range: %d", len(res.Suggestions))
	}
}
