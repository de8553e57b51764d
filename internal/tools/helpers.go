// Package tools exposes every sevDesk operation as a named, schema-validated
// MCP tool. Each family file declares its tool schemas, binds arguments into
// typed structs, shapes them into the nested payload the sevDesk API expects
// and renders the remote JSON result as one pretty-printed text block.
package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Object name constants. Every cross-entity reference is transmitted as an
// (id, objectName) pair; the objectName is fixed per field, never
// caller-supplied.
const (
	ObjectContact        = "Contact"
	ObjectCategory       = "Category"
	ObjectStaticCountry  = "StaticCountry"
	ObjectUnity          = "Unity"
	ObjectPart           = "Part"
	ObjectTaxSet         = "TaxSet"
	ObjectTaxRule        = "TaxRule"
	ObjectPaymentMethod  = "PaymentMethod"
	ObjectCheckAccount   = "CheckAccount"
	ObjectSevUser        = "SevUser"
	ObjectAccountingType = "AccountingType"
	ObjectInvoice        = "Invoice"
	ObjectInvoicePos     = "InvoicePos"
	ObjectCreditNote     = "CreditNote"
	ObjectCreditNotePos  = "CreditNotePos"
	ObjectOrder          = "Order"
	ObjectOrderPos       = "OrderPos"
	ObjectVoucher        = "Voucher"
	ObjectVoucherPos     = "VoucherPos"
)

// ObjectRef is the (id, type-tag) reference pair used wherever one entity
// points at another.
type ObjectRef struct {
	ID         int    `json:"id"`
	ObjectName string `json:"objectName"`
}

// Ref builds a reference pair.
func Ref(id int, objectName string) ObjectRef {
	return ObjectRef{ID: id, ObjectName: objectName}
}

// Payload is an outgoing request body. Optional arguments that were not
// provided never appear as keys; no null placeholders are sent.
type Payload map[string]any

// Set unconditionally stores a value.
func (p Payload) Set(key string, v any) {
	p[key] = v
}

// SetRef stores a reference pair for a required entity-valued field.
func (p Payload) SetRef(key string, id int, objectName string) {
	p[key] = Ref(id, objectName)
}

// setOpt stores an optional argument only when it was provided.
func setOpt[T any](p Payload, key string, v *T) {
	if v != nil {
		p[key] = *v
	}
}

// setOptRef stores a reference pair only when the id was provided.
func setOptRef(p Payload, key string, id *int, objectName string) {
	if id != nil {
		p[key] = Ref(*id, objectName)
	}
}

// addString adds an optional string query parameter.
func addString(q url.Values, key string, v *string) {
	if v != nil {
		q.Set(key, *v)
	}
}

// addInt adds an optional integer query parameter.
func addInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

// addBool adds an optional boolean query parameter.
func addBool(q url.Values, key string, v *bool) {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
}

// addEntityFilter rewrites a flat entity-id filter into sevDesk's nested
// bracket notation: field[id] and field[objectName]. The flat key never
// reaches the wire.
func addEntityFilter(q url.Values, field string, id *string, objectName string) {
	if id != nil {
		q.Set(field+"[id]", *id)
		q.Set(field+"[objectName]", objectName)
	}
}

// addEmbed joins the embed list into sevDesk's comma-separated embed
// parameter.
func addEmbed(q url.Values, embed []string) {
	if len(embed) > 0 {
		q.Set("embed", strings.Join(embed, ","))
	}
}

// defaultLimit is applied to every list operation when the caller omits an
// explicit limit.
const defaultLimit = 50

// addPagination adds limit (defaulting to 50) and offset.
func addPagination(q url.Values, limit, offset *int) {
	if limit != nil {
		q.Set("limit", strconv.Itoa(*limit))
	} else {
		q.Set("limit", strconv.Itoa(defaultLimit))
	}
	addInt(q, "offset", offset)
}

// bindArguments decodes the schema-validated argument object into a typed
// struct via a JSON round-trip.
func bindArguments(req mcp.CallToolRequest, out any) error {
	data, err := json.Marshal(req.GetArguments())
	if err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// rawResult renders a remote JSON payload as one two-space-indented text
// block, mirroring the payload unchanged.
func rawResult(raw json.RawMessage) (*mcp.CallToolResult, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		// Not JSON (raw exports); return the body as-is.
		return mcp.NewToolResultText(string(raw)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// errorResult reports a failed invocation back to the caller. Nothing is
// retried or degraded: every failure surfaces as an explicit tool error.
func errorResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
