package tools

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestRefJSONShape(t *testing.T) {
	data, err := json.Marshal(Ref(42, ObjectContact))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42,"objectName":"Contact"}`, string(data))
}

func TestSetOptOmitsAbsentValues(t *testing.T) {
	p := Payload{}
	setOpt(p, "header", (*string)(nil))
	setOpt(p, "status", (*int)(nil))
	setOptRef(p, "taxSet", nil, ObjectTaxSet)
	assert.Empty(t, p)

	setOpt(p, "header", strPtr("Rechnung"))
	setOptRef(p, "taxSet", intPtr(3), ObjectTaxSet)
	assert.Equal(t, "Rechnung", p["header"])
	assert.Equal(t, Ref(3, ObjectTaxSet), p["taxSet"])
}

func TestSetOptKeepsZeroValues(t *testing.T) {
	// A provided zero is a real value, not an absent one.
	p := Payload{}
	setOpt(p, "discount", floatPtr(0))
	setOpt(p, "copy", boolPtr(false))
	assert.Equal(t, float64(0), p["discount"])
	assert.Equal(t, false, p["copy"])
}

func TestAddEntityFilterUsesBracketNotation(t *testing.T) {
	q := url.Values{}
	addEntityFilter(q, "contact", strPtr("123"), ObjectContact)

	assert.Equal(t, "123", q.Get("contact[id]"))
	assert.Equal(t, "Contact", q.Get("contact[objectName]"))
	assert.False(t, q.Has("contact"), "flat key must never reach the wire")
	assert.False(t, q.Has("contactId"))
}

func TestAddEntityFilterAbsent(t *testing.T) {
	q := url.Values{}
	addEntityFilter(q, "contact", nil, ObjectContact)
	assert.Empty(t, q)
}

func TestAddPaginationDefaultsLimit(t *testing.T) {
	q := url.Values{}
	addPagination(q, nil, nil)
	assert.Equal(t, "50", q.Get("limit"))
	assert.False(t, q.Has("offset"))

	q = url.Values{}
	addPagination(q, intPtr(10), intPtr(20))
	assert.Equal(t, "10", q.Get("limit"))
	assert.Equal(t, "20", q.Get("offset"))
}

func TestAddEmbedJoinsCommaSeparated(t *testing.T) {
	q := url.Values{}
	addEmbed(q, []string{"contact", "positions"})
	assert.Equal(t, "contact,positions", q.Get("embed"))

	q = url.Values{}
	addEmbed(q, nil)
	assert.False(t, q.Has("embed"))
}

func TestRawResultIndentsJSON(t *testing.T) {
	res, err := rawResult(json.RawMessage(`{"id":1}`))
	require.NoError(t, err)
	require.False(t, res.IsError)

	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "{\n  \"id\": 1\n}", tc.Text)
}

func TestRawResultPassesThroughNonJSON(t *testing.T) {
	res, err := rawResult(json.RawMessage("plain body"))
	require.NoError(t, err)

	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "plain body", tc.Text)
}

func TestErrorResultReportsWithoutProtocolError(t *testing.T) {
	res, err := errorResult(assert.AnError)
	require.NoError(t, err)
	assert.True(t, res.IsError)
}
