package grc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphisoft/jsontogrc/grc"
)

func TestEscapeStringRoundTrip(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"empty":       "",
		"plain":       "hello",
		"quote":       `say "hi"`,
		"backslash":   `C:\path`,
		"tab":         "a\tb",
		"newline":     "a\nb",
		"mixed":       "a\\b\"c\td\ne",
		"unicode":     "caf\u00e9",
	}

	for name, s := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			escaped := grc.EscapeString(s)

			require.True(t, len(escaped) >= 2, "escaped output must be quoted")
			require.Equal(t, byte('"'), escaped[0])
			require.Equal(t, byte('"'), escaped[len(escaped)-1])

			unescaped := unescapeGRC(t, escaped)
			assert.Equal(t, s, unescaped)
		})
	}
}

func TestEscapeStringEmptyFixedPoint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `""`, grc.EscapeString(""))
	assert.Equal(t, "", unescapeGRC(t, grc.EscapeString("")))
}

// unescapeGRC reverses [grc.EscapeString]'s C escapes for test verification.
func unescapeGRC(t *testing.T, escaped string) string {
	t.Helper()

	require.True(t, len(escaped) >= 2)

	body := escaped[1 : len(escaped)-1]

	var out []rune

	runes := []rune(body)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' || i+1 >= len(runes) {
			out = append(out, runes[i])

			continue
		}

		i++

		switch runes[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case '"':
			out = append(out, '"')
		case '\\':
			out = append(out, '\\')
		default:
			out = append(out, runes[i])
		}
	}

	return string(out)
}

func TestConditionToIfdef(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		condition string
		want      string
		wantErr   bool
	}{
		"single include":  {condition: "+WIN", want: "#if defined (WIN)"},
		"single exclude":  {condition: "-MAC", want: "#if !defined (MAC)"},
		"and":             {condition: "+WIN&+X64", want: "#if defined (WIN) && defined (X64)"},
		"or":              {condition: "+WIN|+MAC", want: "#if defined (WIN) || defined (MAC)"},
		"parens":          {condition: "(+WIN|+MAC)&-BETA", want: "#if ( defined (WIN) || defined (MAC) ) && !defined (BETA)"},
		"invalid token":   {condition: "+WIN^+MAC", wantErr: true},
		"bare identifier": {condition: "WIN", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := grc.ConditionToIfdef(tc.condition)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, grc.ErrConditionHandlingNotImplemented)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConditionToIfdefParenSpacing(t *testing.T) {
	t.Parallel()

	got, err := grc.ConditionToIfdef("(+A)")
	require.NoError(t, err)
	assert.Equal(t, "#if ( defined (A) )", got)
}

func TestConvertIconIDPassthrough(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DG_ERROR_ICON", grc.ConvertIconID("DGErrorIcon"))
	assert.Equal(t, "NoIcon", grc.ConvertIconID("-1"))
	assert.Equal(t, "12345", grc.ConvertIconID("12345"))
}

func TestLJustRJust(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab  ", grc.LJust("ab", 4))
	assert.Equal(t, "  ab", grc.RJust("ab", 4))
	assert.Equal(t, "abcde", grc.LJust("abcde", 2), "wider input is never truncated")
}
