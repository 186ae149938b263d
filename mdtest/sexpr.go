// Package mdtest extracts drift test cases from Markdown files and provides
// a small s-expression reader used to canonicalize AST assertions.
package mdtest

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// NodeType represents the type of a Node
type NodeType int

const (
	NodeSymbol NodeType = iota
	NodeString
	NodeNumber
	NodeList
)

// Node is one s-expression datum: an atom or a list.
type Node struct {
	Type  NodeType
	Text  string  // NodeSymbol, NodeString, NodeNumber
	Items []*Node // NodeList
}

// String renders the node canonically: numbers are normalized through
// float64, so "1.0" and "1" compare equal after a Parse/String round trip.
func (n *Node) String() string {
	switch n.Type {
	case NodeSymbol:
		return n.Text
	case NodeString:
		escaped := strings.ReplaceAll(n.Text, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
		return "\"" + escaped + "\""
	case NodeNumber:
		if f, err := strconv.ParseFloat(n.Text, 64); err == nil {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return n.Text
	case NodeList:
		parts := make([]string, len(n.Items))
		for i, item := range n.Items {
			parts[i] = item.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return fmt.Sprintf("UNKNOWN_NODE_TYPE_%d", n.Type)
	}
}

// Parse parses the entire input and returns the top-level datum.
func Parse(input string) (*Node, error) {
	p := &sexprParser{input: input}
	p.skipSpace()

	node, err := p.parseDatum()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("unexpected trailing input at offset %d", p.pos)
	}
	return node, nil
}

type sexprParser struct {
	input string
	pos   int
}

func (p *sexprParser) parseDatum() (*Node, error) {
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of input")
	}

	switch c := p.input[p.pos]; {
	case c == '(':
		return p.parseList()
	case c == '"':
		return p.parseString()
	case c == '-' || unicode.IsDigit(rune(c)):
		return p.parseNumber()
	case isSymbolChar(rune(c)):
		return p.parseSymbol()
	default:
		return nil, fmt.Errorf("unexpected character %q at offset %d", c, p.pos)
	}
}

func (p *sexprParser) parseList() (*Node, error) {
	p.pos++ // consume '('
	var items []*Node
	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("unterminated list")
		}
		if p.input[p.pos] == ')' {
			p.pos++
			return &Node{Type: NodeList, Items: items}, nil
		}
		item, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (p *sexprParser) parseString() (*Node, error) {
	p.pos++ // consume opening quote
	var sb strings.Builder
	for p.pos < len(p.input) && p.input[p.pos] != '"' {
		c := p.input[p.pos]
		if c == '\\' {
			p.pos++
			if p.pos >= len(p.input) {
				break
			}
			switch p.input[p.pos] {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			default:
				return nil, fmt.Errorf("invalid escape sequence \\%c", p.input[p.pos])
			}
		} else {
			sb.WriteByte(c)
		}
		p.pos++
	}
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unterminated string")
	}
	p.pos++ // consume closing quote
	return &Node{Type: NodeString, Text: sb.String()}, nil
}

func (p *sexprParser) parseNumber() (*Node, error) {
	start := p.pos
	if p.input[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.input) && unicode.IsDigit(rune(p.input[p.pos])) {
		p.pos++
	}
	if p.pos < len(p.input) && p.input[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.input) && unicode.IsDigit(rune(p.input[p.pos])) {
			p.pos++
		}
	}
	text := p.input[start:p.pos]
	if text == "-" {
		return nil, fmt.Errorf("lone '-' is not a number")
	}
	return &Node{Type: NodeNumber, Text: text}, nil
}

func (p *sexprParser) parseSymbol() (*Node, error) {
	start := p.pos
	for p.pos < len(p.input) && isSymbolChar(rune(p.input[p.pos])) {
		p.pos++
	}
	return &Node{Type: NodeSymbol, Text: p.input[start:p.pos]}, nil
}

func (p *sexprParser) skipSpace() {
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == ';' {
			for p.pos < len(p.input) && p.input[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		if !unicode.IsSpace(rune(c)) {
			return
		}
		p.pos++
	}
}

func isSymbolChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}
