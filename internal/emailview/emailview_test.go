package emailview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEmail = `<html>
<head><title>Payment notification</title><style>body { color: red; }</style></head>
<body>
  <script>var tracking = "x";</script>
  <p>Dear    customer,</p>
  <table>
    <tr><td>Merchant</td><td>Coffee Shop</td></tr>
    <tr><td>Amount</td><td>CHF 12.50</td></tr>
  </table>
  <p>See <a href="https://bank.example/tx/1">details</a>.</p>
  <img src="logo.png"/>
</body>
</html>`

func TestSummarize(t *testing.T) {
	summary, err := Summarize(sampleEmail)
	require.NoError(t, err)

	assert.Equal(t, "Payment notification", summary.Title)
	assert.Equal(t, 1, summary.Links)
	assert.Equal(t, 1, summary.Tables)
	assert.Equal(t, 1, summary.Images)
	assert.Positive(t, summary.TextBytes)
}

func TestPlainText(t *testing.T) {
	text, err := PlainText(sampleEmail)
	require.NoError(t, err)

	assert.Contains(t, text, "Dear customer,")
	assert.Contains(t, text, "Coffee Shop")
	assert.Contains(t, text, "CHF 12.50")
	// Markup, script and style contents are gone.
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "<td>")
}

func TestPlainText_CollapsesBlankLines(t *testing.T) {
	text, err := PlainText("<div>a</div><div></div><div></div><div>b</div>")
	require.NoError(t, err)
	assert.Equal(t, "a\n\nb", text)
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "Dear customer, Merchant", Snippet("<p>Dear customer,</p><p>Merchant</p>", 50))

	short := Snippet(sampleEmail, 10)
	assert.LessOrEqual(t, len([]rune(short)), 11)
	assert.Contains(t, short, "…")
}

func TestMatchCSS(t *testing.T) {
	matches, err := MatchCSS(sampleEmail, "tr td:nth-child(2)")
	require.NoError(t, err)
	assert.Equal(t, []string{"Coffee Shop", "CHF 12.50"}, matches)
}

func TestMatchCSS_NoMatches(t *testing.T) {
	matches, err := MatchCSS(sampleEmail, "div.missing")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestMatchCSS_InvalidSelector(t *testing.T) {
	_, err := MatchCSS(sampleEmail, "td[")
	assert.Error(t, err)
}
