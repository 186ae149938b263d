package mdtest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// InputType is the fence language of a test case's input
type InputType string

const (
	InputTypeExpr    InputType = "drift-expr"
	InputTypeProgram InputType = "drift-program"
)

// AssertionType is the fence language of an assertion
type AssertionType string

const (
	// AssertionTypeAST asserts the parsed input's s-expression.
	AssertionTypeAST AssertionType = "ast"
	// AssertionTypeType asserts the inferred type rendering of a drift-expr.
	AssertionTypeType AssertionType = "type"
	// AssertionTypeError asserts the first type error's message.
	AssertionTypeError AssertionType = "error"
	// AssertionTypeOK asserts that validation succeeds; its content is ignored.
	AssertionTypeOK AssertionType = "ok"
)

// Assertion is a single assertion fence within a test case
type Assertion struct {
	Type        AssertionType
	Content     string // raw fence content, trailing newline trimmed
	ParsedSexpr *Node  // only for ast assertions
}

// TestCase is one complete test extracted from a Markdown document
type TestCase struct {
	Name       string // heading text after "Test: "
	Input      string
	InputType  InputType
	Assertions []Assertion
}

// ExtractTestCases parses a Markdown document and collects every test case.
// A test case is a "Test: name" heading followed by one input fence and at
// least one assertion fence. Unknown fence languages are an error.
func ExtractTestCases(markdownContent string) ([]TestCase, error) {
	md := goldmark.New()
	source := []byte(markdownContent)
	doc := md.Parser().Parse(text.NewReader(source))

	var testCases []TestCase
	var current *TestCase

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			headingText := extractTextFromNode(n, source)
			if strings.HasPrefix(headingText, "Test: ") {
				if current != nil {
					if err := validateTestCase(current); err != nil {
						return ast.WalkStop, err
					}
					testCases = append(testCases, *current)
				}
				current = &TestCase{Name: strings.TrimPrefix(headingText, "Test: ")}
			}

		case *ast.FencedCodeBlock:
			language := string(n.Language(source))
			content := extractCodeBlockContent(n, source)
			lineNum := lineNumber(n, source)

			if language == "" {
				// Plain code blocks are prose, not test data.
				return ast.WalkContinue, nil
			}
			if !isInputFence(language) && !isAssertionFence(language) {
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence language '%s'", lineNum, language)
			}
			if current == nil {
				return ast.WalkStop, fmt.Errorf("line %d: %s fence found outside of test case", lineNum, language)
			}

			if isInputFence(language) {
				if current.Input != "" {
					return ast.WalkStop, fmt.Errorf("line %d: multiple input fences found in test '%s'", lineNum, current.Name)
				}
				current.Input = strings.TrimRight(content, "\n")
				current.InputType = InputType(language)
				return ast.WalkContinue, nil
			}

			assertion := Assertion{
				Type:    AssertionType(language),
				Content: strings.TrimRight(content, "\n"),
			}
			if assertion.Type == AssertionTypeAST {
				parsed, parseErr := Parse(assertion.Content)
				if parseErr != nil {
					return ast.WalkStop, fmt.Errorf("line %d: failed to parse ast assertion in test '%s': %w", lineNum, current.Name, parseErr)
				}
				assertion.ParsedSexpr = parsed
			}
			current.Assertions = append(current.Assertions, assertion)
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking markdown AST: %w", err)
	}

	if current != nil {
		if err := validateTestCase(current); err != nil {
			return nil, err
		}
		testCases = append(testCases, *current)
	}

	return testCases, nil
}

func isInputFence(language string) bool {
	return language == string(InputTypeExpr) || language == string(InputTypeProgram)
}

func isAssertionFence(language string) bool {
	switch AssertionType(language) {
	case AssertionTypeAST, AssertionTypeType, AssertionTypeError, AssertionTypeOK:
		return true
	default:
		return false
	}
}

func validateTestCase(tc *TestCase) error {
	if tc.Input == "" {
		return fmt.Errorf("test '%s' has no input fence", tc.Name)
	}
	if len(tc.Assertions) == 0 {
		return fmt.Errorf("test '%s' has no assertion fences", tc.Name)
	}
	return nil
}

// extractTextFromNode extracts plain text content from a markdown node
func extractTextFromNode(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if textNode, ok := n.(*ast.Text); ok {
				buf.Write(textNode.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// extractCodeBlockContent extracts the content from a fenced code block
func extractCodeBlockContent(codeBlock *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < codeBlock.Lines().Len(); i++ {
		line := codeBlock.Lines().At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

// lineNumber calculates the 1-based line number of a node for error messages.
func lineNumber(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 1
	}
	startPos := node.Lines().At(0).Start
	lineNum := 1
	for i := 0; i < startPos && i < len(source); i++ {
		if source[i] == '\n' {
			lineNum++
		}
	}
	return lineNum
}
