package matching

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func rankedWithScores(scores ...float64) []RankedMatch {
	out := make([]RankedMatch, 0, len(scores))
	for _, s := range scores {
		out = append(out, RankedMatch{CandidateID: uuid.New(), Result: Result{Score: s}})
	}
	return out
}

func TestRank_SortsDescending(t *testing.T) {
	in := rankedWithScores(0.2, 0.9, 0.5, 0.7)

	out := Rank(in, 10)
	for i := 1; i < len(out); i++ {
		if out[i-1].Result.Score < out[i].Result.Score {
			t.Fatalf("position %d: %v < %v", i, out[i-1].Result.Score, out[i].Result.Score)
		}
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	first := RankedMatch{CandidateID: uuid.New(), CandidateName: "first", Result: Result{Score: 0.5}}
	second := RankedMatch{CandidateID: uuid.New(), CandidateName: "second", Result: Result{Score: 0.5}}

	out := Rank([]RankedMatch{first, second}, 10)
	if out[0].CandidateName != "first" || out[1].CandidateName != "second" {
		t.Fatalf("tie broke input order: %s, %s", out[0].CandidateName, out[1].CandidateName)
	}
}

func TestRank_Deterministic(t *testing.T) {
	in := rankedWithScores(0.3, 0.3, 0.9, 0.1, 0.9, 0.3)

	a := Rank(in, 4)
	b := Rank(in, 4)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated ranking of the same input diverged")
	}
}

func TestRank_TruncatesToLimit(t *testing.T) {
	in := rankedWithScores(0.1, 0.2, 0.3, 0.4, 0.5)

	if got := len(Rank(in, 3)); got != 3 {
		t.Fatalf("expected 3 results, got %d", got)
	}
	if got := len(Rank(in, 10)); got != 5 {
		t.Fatalf("expected all 5 results under a large limit, got %d", got)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := rankedWithScores(0.1, 0.9)
	want := make([]RankedMatch, len(in))
	copy(want, in)

	_ = Rank(in, 1)
	if !reflect.DeepEqual(in, want) {
		t.Fatalf("Rank mutated its input")
	}
}
