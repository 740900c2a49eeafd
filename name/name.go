// Package name implements the two canonical name forms the schema lowerer
// needs: identifiers for operations (to-identifier) and PascalCase type
// names for declarations (to-type-name). It also strips the lightweight
// HTML markup the source API descriptions wrap descriptions in.
//
// Grounded on Talav-openapi's internal/build/namer.go (schemaNamer) for
// the general shape of a deterministic, unicode-aware namer, and on
// original_source's src/codegen/function_name.rs and
// src/codegen/structs/mod.rs (FunctionName, StructName, Description) for
// the exact transformation rules.
package name

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	forClauseRe = regexp.MustCompile(` for .*$`)
	articleRe   = regexp.MustCompile(`\b(a |an |the )`)
	spaceRunRe  = regexp.MustCompile(`\s+`)
	htmlTagRe   = regexp.MustCompile(`(</?[a-zA-Z][a-zA-Z0-9]*[^>]*>)`)

	titleCaser = cases.Title(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// ToIdentifier maps a free-form title to the identifier form used for
// operation names: strips any trailing " for …" clause, deletes the
// leading articles {a, an, the} wherever they occur, collapses runs of
// whitespace into a single underscore, and lowercases the result.
// extraStopWords, when given (genconfig.Config.StopWords), are stripped
// the same way as the built-in articles, on top of them.
//
// ToIdentifier is idempotent (P1): running it twice on its own output is
// a no-op, since the output contains no stop-word tokens, no " for "
// clause, and no whitespace to collapse.
func ToIdentifier(title string, extraStopWords ...string) string {
	value := forClauseRe.ReplaceAllString(title, "")
	value = stripStopWords(value, extraStopWords)
	value = strings.TrimSpace(value)
	value = spaceRunRe.ReplaceAllString(value, "_")

	return lowerCaser.String(value)
}

// stripStopWords removes the built-in articles and any extra configured
// stop words from value, each matched as a whole word followed by a
// space so "a " isn't stripped out of the middle of a longer word.
func stripStopWords(value string, extra []string) string {
	if len(extra) == 0 {
		return articleRe.ReplaceAllString(value, "")
	}

	words := make([]string, 0, len(extra))
	for _, w := range extra {
		words = append(words, regexp.QuoteMeta(w)+" ")
	}

	re := regexp.MustCompile(`\b(a |an |the |` + strings.Join(words, "|") + `)`)

	return re.ReplaceAllString(value, "")
}

// ToTypeName maps snake_case (or any underscore-separated source) to
// PascalCase: each underscore advances a capitalization flag, each
// non-underscore rune is appended (uppercased when the flag is set, then
// cleared). Non-alphanumeric characters other than underscore are passed
// through unchanged.
//
// ToTypeName applied twice equals applied once (P2): the output has no
// underscores left to drive further capitalization, so a second pass is a
// no-op.
func ToTypeName(source string) string {
	var b strings.Builder
	capitalize := true

	for _, r := range source {
		if r == '_' {
			capitalize = true

			continue
		}

		if capitalize {
			b.WriteString(titleCaser.String(string(r)))
			capitalize = false
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// StripHTML removes simple HTML tags from a description and trims the
// result, e.g. "<p> Hello, <strong>world!</strong> </p>" -> "Hello,
// world!" (P7). Returns "" unchanged if given "".
func StripHTML(description string) string {
	cleaned := htmlTagRe.ReplaceAllString(description, "")

	return strings.TrimSpace(cleaned)
}
