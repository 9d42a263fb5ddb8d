package rewrite

import "regexp"

// SharedPackage is the canonical package identifier that collapsed type
// imports resolve to.
const SharedPackage = "@convex-panel/shared"

// Specifier patterns. The keyword (`from`, or a bare `import`) must
// immediately precede the opening quote, so quoted strings elsewhere on a
// line are never eligible. The utils pattern additionally requires an
// `import` keyword earlier in the statement: utils localization applies to
// import statements only, never to `export ... from`, while the types rules
// cover both forms. That asymmetry is intentional.
var (
	typesSubpathPattern = regexp.MustCompile(`(from|import) ["'](?:\.\./)+types/[^"']+["']`)
	typesBarePattern    = regexp.MustCompile(`(from|import) ["'](?:\.\./)+types["']`)
	utilsLocalPattern   = regexp.MustCompile(`(\bimport\b[^"'\n]*?from) ["'](?:\.\./)+utils/([^"']+)["']`)
)

// DefaultRules returns the ordered rule set for normalizing a source tree.
//
// The two types rules run first and emit a non-relative specifier, so their
// output can never satisfy the utils rule. The utils rule's own output
// (`../utils/<name>`) still matches its pattern but replaces to itself, a
// fixed point. A bare `../utils` specifier with no trailing segment is never
// matched.
func DefaultRules(sharedPackage string) []Rule {
	if sharedPackage == "" {
		sharedPackage = SharedPackage
	}
	return []Rule{
		{
			Name:    "types-collapse-subpath",
			Pattern: typesSubpathPattern,
			Replace: `$1 "` + sharedPackage + `"`,
		},
		{
			Name:    "types-collapse-bare",
			Pattern: typesBarePattern,
			Replace: `$1 "` + sharedPackage + `"`,
		},
		{
			Name:    "utils-localize",
			Pattern: utilsLocalPattern,
			Replace: `${1} "../utils/${2}"`,
		},
	}
}
