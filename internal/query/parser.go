// Package query implements the tag-filtering backend: it parses the flat
// query strings produced by the rule compiler (terms of the form
// "tag:<key> <op> <value>" combined with AND/OR and parentheses) and
// evaluates them against track tag sets or translates them to SQL.
package query

import (
	"fmt"
	"strings"

	"github.com/nomarr/nomarr/internal/models"
	"github.com/nomarr/nomarr/internal/rules"
)

// Term is a single tag comparison in a parsed query
type Term struct {
	TagKey   string
	Operator models.RuleOperator
	Value    string
}

// Node is a node in the parsed query tree: either a leaf Term, or a boolean
// combination of two sub-trees.
type Node struct {
	Term  *Term  // non-nil for leaves
	Op    string // "AND" or "OR" for combinations
	Left  *Node
	Right *Node
}

type parser struct {
	tokens []string
	pos    int
}

// Parse parses a compiled query string into a query tree. An empty query
// returns a nil node, which matches every track. Parenthesized groups may
// nest to the same depth limit the rule compiler enforces; deeper queries
// are rejected.
func Parse(input string) (*Node, error) {
	tokens := tokenize(input)
	if len(tokens) == 0 {
		return nil, nil
	}

	p := &parser{tokens: tokens}
	node, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("unexpected token %q at position %d", p.tokens[p.pos], p.pos)
	}
	return node, nil
}

// tokenize splits a query into whitespace-separated tokens, treating
// parentheses as their own tokens regardless of surrounding whitespace.
func tokenize(input string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range input {
		switch r {
		case ' ', '\t', '\n':
			flush()
		case '(', ')':
			flush()
			tokens = append(tokens, string(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// parseExpr parses an OR-level expression. OR binds loosest; AND binds
// tighter; parentheses group.
func (p *parser) parseExpr(depth int) (*Node, error) {
	left, err := p.parseAnd(depth)
	if err != nil {
		return nil, err
	}

	for p.peek() == "OR" {
		p.next()
		right, err := p.parseAnd(depth)
		if err != nil {
			return nil, err
		}
		left = &Node{Op: "OR", Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) parseAnd(depth int) (*Node, error) {
	left, err := p.parsePrimary(depth)
	if err != nil {
		return nil, err
	}

	for p.peek() == "AND" {
		p.next()
		right, err := p.parsePrimary(depth)
		if err != nil {
			return nil, err
		}
		left = &Node{Op: "AND", Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) parsePrimary(depth int) (*Node, error) {
	tok := p.peek()

	if tok == "(" {
		if depth+1 > rules.MaxDepth {
			return nil, fmt.Errorf("query nesting depth exceeds the maximum of %d", rules.MaxDepth)
		}
		p.next()
		node, err := p.parseExpr(depth + 1)
		if err != nil {
			return nil, err
		}
		if p.peek() != ")" {
			return nil, fmt.Errorf("expected closing parenthesis, got %q", p.peek())
		}
		p.next()
		return node, nil
	}

	return p.parseTerm()
}

func (p *parser) parseTerm() (*Node, error) {
	tok := p.next()
	if tok == "" {
		return nil, fmt.Errorf("unexpected end of query, expected a tag term")
	}
	if !strings.HasPrefix(tok, "tag:") {
		return nil, fmt.Errorf("expected tag term, got %q", tok)
	}

	key := strings.TrimPrefix(tok, "tag:")
	if key == "" {
		return nil, fmt.Errorf("empty tag key in term")
	}

	op := p.next()
	if op == "" {
		return nil, fmt.Errorf("tag %q: missing operator", key)
	}

	value := p.next()
	if value == "" || value == "(" || value == ")" || value == "AND" || value == "OR" {
		return nil, fmt.Errorf("tag %q: missing value", key)
	}

	return &Node{Term: &Term{
		TagKey:   key,
		Operator: models.RuleOperator(op),
		Value:    value,
	}}, nil
}

func (p *parser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *parser) next() string {
	tok := p.peek()
	if tok != "" {
		p.pos++
	}
	return tok
}
