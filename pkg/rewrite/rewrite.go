package rewrite

import (
	"context"
	"io"
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// 🔄 Rule pairs a recognition pattern with its canonical replacement.
// Rules are ordered: each rule's output must not be re-matched by its own or
// any earlier rule's pattern (except as a fixed point), which is what makes a
// single pass terminate and the whole set idempotent.
type Rule struct {
	Name    string         // Short identifier used in logs
	Pattern *regexp.Regexp // Recognizes an import/export path specifier
	Replace string         // Expansion template ($1-style groups allowed)
}

// 📦 Result holds the outcome of rewriting one file's content
type Result struct {
	OriginalContent  []byte
	ModifiedContent  []byte
	WasModified      bool
	ReplacementCount int
}

// RuleRewriter applies an ordered rule set using regexp replacement
type RuleRewriter struct{}

// 🏭 NewRuleRewriter creates a new RuleRewriter
func NewRuleRewriter() *RuleRewriter {
	return &RuleRewriter{}
}

// Rewrite applies each rule in order to the full content. Content that no
// rule recognizes is passed through byte-for-byte; this never fails on
// input text, only on reader errors.
func (r *RuleRewriter) Rewrite(ctx context.Context, content io.Reader, rules []Rule) (*Result, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &Result{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for _, rule := range rules {
		// Skip empty rules
		if rule.Pattern == nil {
			continue
		}

		// Already-canonical specifiers match their rule but replace to
		// themselves; those fixed points are not counted as replacements.
		replaced := 0
		newContent := rule.Pattern.ReplaceAllStringFunc(currentContent, func(match string) string {
			expansion := rule.Pattern.ReplaceAllString(match, rule.Replace)
			if expansion != match {
				replaced++
			}
			return expansion
		})

		if replaced > 0 {
			result.WasModified = true
			result.ReplacementCount += replaced
		}

		currentContent = newContent
	}

	result.ModifiedContent = []byte(currentContent)
	return result, nil
}

// ValidateRules checks that every rule in the set is well-formed
func (r *RuleRewriter) ValidateRules(rules []Rule) error {
	for i, rule := range rules {
		if rule.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if rule.Pattern == nil {
			return errors.Errorf("rule %d (%s): pattern is required", i, rule.Name)
		}
	}
	return nil
}
