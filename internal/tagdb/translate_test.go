package tagdb

import (
	"strings"
	"testing"

	"github.com/nomarr/nomarr/internal/query"
)

func mustParse(t *testing.T, q string) *query.Node {
	t.Helper()
	node, err := query.Parse(q)
	if err != nil {
		t.Fatalf("parse %q failed: %v", q, err)
	}
	return node
}

func TestTranslate_NilIsTrue(t *testing.T) {
	clause, args, err := Translate(nil)
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}
	if clause != "TRUE" {
		t.Errorf("nil query should translate to TRUE, got %q", clause)
	}
	if len(args) != 0 {
		t.Errorf("nil query should have no args, got %v", args)
	}
}

func TestTranslate_StringEqual(t *testing.T) {
	clause, args, err := Translate(mustParse(t, "tag:artist = Beatles"))
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}

	if !strings.Contains(clause, "EXISTS") {
		t.Errorf("term should translate to an EXISTS probe: %q", clause)
	}
	if !strings.Contains(clause, "tt.key = $1") {
		t.Errorf("tag key should bind to $1: %q", clause)
	}
	if len(args) != 2 || args[0] != "artist" || args[1] != "Beatles" {
		t.Errorf("expected args [artist Beatles], got %v", args)
	}
}

func TestTranslate_Contains(t *testing.T) {
	clause, args, err := Translate(mustParse(t, "tag:mood contains happy"))
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}

	if !strings.Contains(clause, "ILIKE") {
		t.Errorf("contains should use ILIKE: %q", clause)
	}
	if len(args) != 2 || args[1] != "happy" {
		t.Errorf("expected value arg 'happy', got %v", args)
	}
}

func TestTranslate_NumericComparison(t *testing.T) {
	clause, args, err := Translate(mustParse(t, "tag:bpm > 120"))
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}

	if !strings.Contains(clause, "::numeric > $2") {
		t.Errorf("numeric comparison should cast the tag value: %q", clause)
	}
	if len(args) != 2 || args[1] != float64(120) {
		t.Errorf("expected numeric arg 120, got %v", args)
	}
}

func TestTranslate_NumericComparisonRejectsNonNumber(t *testing.T) {
	if _, _, err := Translate(mustParse(t, "tag:bpm > fast")); err == nil {
		t.Error("ordering comparison with non-numeric value should fail")
	}
}

func TestTranslate_ParamIndexesAcrossTerms(t *testing.T) {
	clause, args, err := Translate(mustParse(t, "tag:bpm > 120 AND tag:mood contains happy"))
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}

	// Second term must continue the positional numbering
	if !strings.Contains(clause, "tt.key = $3") {
		t.Errorf("second term should bind its key to $3: %q", clause)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %d: %v", len(args), args)
	}
	if args[2] != "mood" || args[3] != "happy" {
		t.Errorf("expected trailing args [mood happy], got %v", args)
	}
}

func TestTranslate_BooleanNesting(t *testing.T) {
	clause, _, err := Translate(mustParse(t, "tag:year > 2000 AND (tag:genre = rock OR tag:genre = pop)"))
	if err != nil {
		t.Fatalf("translate failed: %v", err)
	}

	if !strings.Contains(clause, " AND ") || !strings.Contains(clause, " OR ") {
		t.Errorf("expected both AND and OR in clause: %q", clause)
	}
}
