package query

import (
	"testing"

	"github.com/nomarr/nomarr/internal/models"
)

func testTrack(tags map[string]string) models.Track {
	return models.Track{
		Path: "/music/test.flac",
		Tags: tags,
	}
}

func mustParse(t *testing.T, q string) *Node {
	t.Helper()
	node, err := Parse(q)
	if err != nil {
		t.Fatalf("parse %q failed: %v", q, err)
	}
	return node
}

func TestEval_NilMatchesEverything(t *testing.T) {
	track := testTrack(map[string]string{"artist": "Beatles"})

	if !Eval(nil, track) {
		t.Error("nil query should match every track")
	}
}

func TestEval_StringEqual(t *testing.T) {
	node := mustParse(t, "tag:artist = Beatles")

	if !Eval(node, testTrack(map[string]string{"artist": "Beatles"})) {
		t.Error("expected match")
	}
	if Eval(node, testTrack(map[string]string{"artist": "Stones"})) {
		t.Error("expected no match")
	}
}

func TestEval_MissingTagIsFalse(t *testing.T) {
	track := testTrack(map[string]string{"artist": "Beatles"})

	if Eval(mustParse(t, "tag:mood contains happy"), track) {
		t.Error("missing tag should not match contains")
	}
	if Eval(mustParse(t, "tag:mood notcontains happy"), track) {
		t.Error("missing tag should not match notcontains either")
	}
}

func TestEval_ContainsCaseInsensitive(t *testing.T) {
	track := testTrack(map[string]string{"mood": "Happy/Upbeat"})

	if !Eval(mustParse(t, "tag:mood contains happy"), track) {
		t.Error("contains should be case-insensitive")
	}
	if Eval(mustParse(t, "tag:mood notcontains happy"), track) {
		t.Error("notcontains should be the negation")
	}
}

func TestEval_NumericComparisons(t *testing.T) {
	track := testTrack(map[string]string{"bpm": "128"})

	cases := []struct {
		query string
		want  bool
	}{
		{"tag:bpm > 120", true},
		{"tag:bpm > 128", false},
		{"tag:bpm >= 128", true},
		{"tag:bpm < 200", true},
		{"tag:bpm <= 100", false},
		{"tag:bpm = 128", true},
		{"tag:bpm != 128", false},
	}

	for _, tc := range cases {
		if got := Eval(mustParse(t, tc.query), track); got != tc.want {
			t.Errorf("%q: expected %v, got %v", tc.query, tc.want, got)
		}
	}
}

func TestEval_NumericEqualityAcrossFormats(t *testing.T) {
	track := testTrack(map[string]string{"bpm": "128.0"})

	if !Eval(mustParse(t, "tag:bpm = 128"), track) {
		t.Error("128.0 should equal 128 numerically")
	}
}

func TestEval_OrderingOnNonNumberIsFalse(t *testing.T) {
	track := testTrack(map[string]string{"mood": "happy"})

	if Eval(mustParse(t, "tag:mood > 10"), track) {
		t.Error("ordering comparison on a non-numeric tag should be false")
	}
}

func TestEval_BooleanCombination(t *testing.T) {
	node := mustParse(t, "tag:year > 2000 AND (tag:genre = rock OR tag:genre = pop)")

	match := testTrack(map[string]string{"year": "2010", "genre": "pop"})
	if !Eval(node, match) {
		t.Error("expected match for 2010/pop")
	}

	wrongYear := testTrack(map[string]string{"year": "1999", "genre": "pop"})
	if Eval(node, wrongYear) {
		t.Error("expected no match for 1999/pop")
	}

	wrongGenre := testTrack(map[string]string{"year": "2010", "genre": "jazz"})
	if Eval(node, wrongGenre) {
		t.Error("expected no match for 2010/jazz")
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	tracks := []models.Track{
		testTrack(map[string]string{"genre": "rock", "title": "one"}),
		testTrack(map[string]string{"genre": "jazz", "title": "two"}),
		testTrack(map[string]string{"genre": "rock", "title": "three"}),
	}

	node := mustParse(t, "tag:genre = rock")
	matched := Filter(node, tracks)

	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
	if matched[0].Tag("title") != "one" || matched[1].Tag("title") != "three" {
		t.Error("filter should preserve input order")
	}
}
