package render

import "strings"

// substitute replaces every placeholder of a declared variable with its
// resolved value. Placeholders look like {{name}} or {{ name }}.
// Substitution is a single non-recursive pass: resolved values are never
// re-scanned, and placeholders naming undeclared variables stay verbatim.
func substitute(body string, values []ResolvedValue) string {
	if len(values) == 0 {
		return body
	}

	pairs := make([]string, 0, len(values)*4)
	for _, v := range values {
		pairs = append(pairs,
			"{{"+v.Name+"}}", v.Value,
			"{{ "+v.Name+" }}", v.Value,
		)
	}

	return strings.NewReplacer(pairs...).Replace(body)
}
