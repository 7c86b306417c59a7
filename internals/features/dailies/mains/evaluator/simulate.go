// file: internals/features/dailies/mains/evaluator/simulate.go
package evaluator

import (
	"hash/fnv"
	"math"
	"strings"
)

/*
Simulated answer evaluation. Stands in for an external AI grading call:
deterministic for a given answer so resubmitting identical content yields
the identical result, but shaped like a real rubric (four 0-10 components
weight-normalized to the question's marks).
*/

type Breakdown struct {
	Introduction float64 `json:"introduction"`
	Body         float64 `json:"body"`
	Conclusion   float64 `json:"conclusion"`
	Language     float64 `json:"language"`
}

type Result struct {
	Score       float64
	Breakdown   Breakdown
	Feedback    string
	Suggestions []string
}

// Evaluate grades one answer against the question's word limit and marks.
func Evaluate(content string, wordLimit int, maxMarks float64) Result {
	if wordLimit <= 0 {
		wordLimit = 250
	}

	words := strings.Fields(content)
	wordCount := len(words)
	paragraphs := splitParagraphs(content)
	sentences := countSentences(content)

	// Stable jitter so two structurally identical answers do not tie exactly.
	j := newJitter(content)

	intro := scoreIntroduction(paragraphs, wordLimit) + j.next()
	body := scoreBody(paragraphs, sentences, wordCount, wordLimit) + j.next()
	conclusion := scoreConclusion(paragraphs) + j.next()
	language := scoreLanguage(words, sentences) + j.next()

	b := Breakdown{
		Introduction: clampComponent(intro),
		Body:         clampComponent(body),
		Conclusion:   clampComponent(conclusion),
		Language:     clampComponent(language),
	}

	total := (b.Introduction + b.Body + b.Conclusion + b.Language) / 40.0 * maxMarks
	total = round2(math.Max(0, math.Min(total, maxMarks)))

	return Result{
		Score:       total,
		Breakdown:   b,
		Feedback:    feedbackFor(total, maxMarks),
		Suggestions: suggestionsFor(b),
	}
}

/* =======================
   Structure metrics
======================= */

func splitParagraphs(content string) []string {
	var out []string
	for _, block := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n") {
		if p := strings.TrimSpace(block); p != "" {
			out = append(out, p)
		}
	}
	if len(out) <= 1 {
		// Single-block answers: fall back to line breaks.
		out = out[:0]
		for _, line := range strings.Split(content, "\n") {
			if p := strings.TrimSpace(line); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func countSentences(content string) int {
	n := 0
	for _, r := range content {
		if r == '.' || r == '!' || r == '?' {
			n++
		}
	}
	if n == 0 && strings.TrimSpace(content) != "" {
		n = 1
	}
	return n
}

/* =======================
   Component scores (0-10 before jitter)
======================= */

func scoreIntroduction(paragraphs []string, wordLimit int) float64 {
	if len(paragraphs) == 0 {
		return 0
	}
	introWords := len(strings.Fields(paragraphs[0]))

	// A good opening runs about 10-20% of the limit.
	lo := float64(wordLimit) * 0.10
	hi := float64(wordLimit) * 0.20
	switch {
	case len(paragraphs) == 1:
		// No separate introduction.
		return 4.5
	case float64(introWords) >= lo && float64(introWords) <= hi:
		return 9
	case float64(introWords) > hi:
		return 7
	case introWords >= 10:
		return 6
	default:
		return 3.5
	}
}

func scoreBody(paragraphs []string, sentences, wordCount, wordLimit int) float64 {
	var base float64
	switch {
	case len(paragraphs) >= 3 && len(paragraphs) <= 6:
		base = 9
	case len(paragraphs) == 2:
		base = 6.5
	case len(paragraphs) > 6:
		base = 7.5
	default:
		base = 4
	}

	// Length adequacy against the limit: short answers lose body marks,
	// grossly overlong ones a little.
	ratio := float64(wordCount) / float64(wordLimit)
	switch {
	case ratio < 0.8:
		base *= math.Max(0.4, ratio/0.8)
	case ratio > 1.5:
		base *= 0.9
	}

	if sentences >= 8 {
		base += 0.5
	}
	return base
}

func scoreConclusion(paragraphs []string) float64 {
	if len(paragraphs) < 2 {
		return 3
	}
	last := len(strings.Fields(paragraphs[len(paragraphs)-1]))
	switch {
	case last >= 20 && last <= 80:
		return 8.5
	case last >= 10:
		return 6.5
	default:
		return 4
	}
}

func scoreLanguage(words []string, sentences int) float64 {
	if len(words) == 0 || sentences == 0 {
		return 0
	}

	base := 5.0

	// Readable sentence length.
	avg := float64(len(words)) / float64(sentences)
	if avg >= 10 && avg <= 24 {
		base += 2.5
	} else if avg >= 6 && avg <= 30 {
		base += 1
	}

	// Vocabulary richness.
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[strings.ToLower(strings.Trim(w, ".,;:!?\"'()"))] = struct{}{}
	}
	richness := float64(len(seen)) / float64(len(words))
	if richness > 0.55 {
		base += 1.5
	} else if richness > 0.4 {
		base += 0.5
	}

	return base
}

/* =======================
   Deterministic jitter
======================= */

type jitter struct {
	state uint64
}

func newJitter(content string) *jitter {
	h := fnv.New64a()
	h.Write([]byte(content))
	return &jitter{state: h.Sum64()}
}

// next yields a value in [-0.5, +0.5], advancing the internal state so each
// component gets its own offset.
func (j *jitter) next() float64 {
	j.state = j.state*6364136223846793005 + 1442695040888963407
	return float64(j.state%101)/100.0 - 0.5
}

/* =======================
   Feedback & suggestions
======================= */

func feedbackFor(score, maxMarks float64) string {
	ratio := 0.0
	if maxMarks > 0 {
		ratio = score / maxMarks
	}
	switch {
	case ratio < 0.4:
		return "The answer needs significant rework. Focus on directly addressing the question, building a clear introduction-body-conclusion structure, and writing closer to the word limit."
	case ratio < 0.55:
		return "A fair attempt. The core content is visible but the structure and depth are uneven; strengthen the body with examples and close with a firm conclusion."
	case ratio < 0.7:
		return "A good answer. The structure holds and the arguments land; sharpen the introduction and add one or two concrete examples to push it further."
	default:
		return "An excellent answer. Well structured, adequately detailed and close to the expected length. Keep practising at this standard."
	}
}

func suggestionsFor(b Breakdown) []string {
	var out []string
	if b.Introduction < 6 {
		out = append(out, "Open with a short introduction that frames the question before taking positions.")
	}
	if b.Body < 6 {
		out = append(out, "Break the body into distinct paragraphs, one argument or dimension each, and write closer to the word limit.")
	}
	if b.Conclusion < 6 {
		out = append(out, "End with a separate concluding paragraph that summarises your stance or suggests a way forward.")
	}
	if b.Language < 6 {
		out = append(out, "Vary sentence length and prefer precise vocabulary over repetition.")
	}
	if len(out) > 3 {
		out = out[:3]
	}
	if len(out) == 0 {
		out = append(out, "Add one current-affairs example or committee/report reference to lift the answer further.")
	}
	return out
}

/* =======================
   Small helpers
======================= */

func clampComponent(v float64) float64 {
	return round1(math.Max(0, math.Min(v, 10)))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
