/*
Package rewrite implements the pattern-matching engine that normalizes
import/export path specifiers.

	+-------------+
	|   Rewrite   |
	|  (Engine)   |
	+------+------+
	       |
	+------+------+
	|    Rules    |
	|  (Ordered)  |
	+-------------+

🎯 Purpose:
- Recognizes relative `types/` and `utils/` path specifiers
- Collapses type imports to the canonical shared package
- Localizes deep utils imports to a single `../` level
- Reports whether any replacement occurred

🔄 Flow:
1. Receives full file content from the walker
2. Applies each rule in order over the content
3. Returns original and modified content plus a changed flag

📝 Design Philosophy:
The engine is a pure mapping with no I/O and no error conditions for
content: text that no rule recognizes passes through byte-for-byte. The
rule set is ordered and idempotent — no rule's output satisfies its own
or any earlier rule's pattern except as a fixed point, so one pass over
a file is always enough and re-running the engine on its own output is
a no-op.

🔍 Example:

	rewriter := rewrite.NewRuleRewriter()
	result, err := rewriter.Rewrite(ctx, file, rewrite.DefaultRules(""))
	if result.WasModified {
		// persist result.ModifiedContent
	}
*/
package rewrite
