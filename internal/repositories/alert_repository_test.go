package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The candidate query must treat the alert keyword as a literal substring,
// matching the in-process matcher. An unescaped backslash would make
// Postgres read the following wildcard as escaped and silently narrow the
// candidate set, losing true matches.
func TestKeywordOverlapSQLEscapesPattern(t *testing.T) {
	require.Contains(t, keywordOverlapSQL, `replace(replace(replace(content, '\', '\\'), '%', '\%'), '_', '\_')`,
		"keyword must be escaped for every LIKE metacharacter")

	// Backslash must be escaped before the wildcards, or their escape
	// sequences would be doubled right back into metacharacters.
	backslash := strings.Index(keywordOverlapSQL, `'\', '\\'`)
	percent := strings.Index(keywordOverlapSQL, `'%', '\%'`)
	underscore := strings.Index(keywordOverlapSQL, `'_', '\_'`)
	require.NotEqual(t, -1, backslash)
	require.NotEqual(t, -1, percent)
	require.NotEqual(t, -1, underscore)
	assert.Less(t, backslash, percent)
	assert.Less(t, backslash, underscore)
}
