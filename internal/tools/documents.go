package tools

// Shared shapes for the document families (invoices, credit notes, orders).
// The three families share line-item handling, email dispatch and payment
// booking; only the per-family object names and id fields differ.

// DocumentPosition is one line item of an invoice, credit note or order.
type DocumentPosition struct {
	Name           string   `json:"name"`
	Quantity       float64  `json:"quantity"`
	Price          float64  `json:"price"`
	TaxRate        float64  `json:"taxRate"`
	UnityID        int      `json:"unityId"`
	PartID         *int     `json:"partId"`
	Discount       *float64 `json:"discount"`
	Text           *string  `json:"text"`
	PositionNumber *int     `json:"positionNumber"`
	Optional       *bool    `json:"optional"`
}

// buildPositions maps line items 1:1, preserving input order. A position
// without an explicit positionNumber gets its zero-based array index, so
// the collection's declared order survives the round-trip through sevDesk;
// explicit values pass through unchanged.
func buildPositions(objectName string, positions []DocumentPosition) []Payload {
	out := make([]Payload, 0, len(positions))
	for i, pos := range positions {
		p := Payload{
			"objectName": objectName,
			"name":       pos.Name,
			"quantity":   pos.Quantity,
			"price":      pos.Price,
			"taxRate":    pos.TaxRate,
			"unity":      Ref(pos.UnityID, ObjectUnity),
			"mapAll":     true,
		}
		if pos.PositionNumber != nil {
			p["positionNumber"] = *pos.PositionNumber
		} else {
			p["positionNumber"] = i
		}
		setOptRef(p, "part", pos.PartID, ObjectPart)
		setOpt(p, "discount", pos.Discount)
		setOpt(p, "text", pos.Text)
		setOpt(p, "optional", pos.Optional)
		out = append(out, p)
	}
	return out
}

// positionItemSchema is the JSON schema for one document position, used by
// the create tools' positions array. withOptionalFlag adds the order-only
// "optional" marker.
func positionItemSchema(withOptionalFlag bool) map[string]any {
	properties := map[string]any{
		"name":           map[string]any{"type": "string", "description": "Name/description of the position"},
		"quantity":       map[string]any{"type": "number", "description": "Quantity"},
		"price":          map[string]any{"type": "number", "description": "Unit price"},
		"taxRate":        map[string]any{"type": "number", "description": "Tax rate in percent (e.g., 19)"},
		"unityId":        map[string]any{"type": "number", "description": "Unity ID (1=piece, 2=hour, etc.)"},
		"partId":         map[string]any{"type": "number", "description": "Optional part/article ID"},
		"discount":       map[string]any{"type": "number", "description": "Discount in percent"},
		"text":           map[string]any{"type": "string", "description": "Additional text for this position"},
		"positionNumber": map[string]any{"type": "number", "description": "Position number for ordering"},
	}
	if withOptionalFlag {
		properties["optional"] = map[string]any{"type": "boolean", "description": "Mark position as optional"}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   []string{"name", "quantity", "price", "taxRate", "unityId"},
	}
}

// EmailArgs are the shared arguments of the send-via-email tools.
type EmailArgs struct {
	ToEmail  string  `json:"toEmail"`
	Subject  string  `json:"subject"`
	Text     string  `json:"text"`
	Copy     *bool   `json:"copy"`
	CcEmail  *string `json:"ccEmail"`
	BccEmail *string `json:"bccEmail"`
}

// buildEmailBody shapes the email dispatch payload.
func buildEmailBody(args EmailArgs) Payload {
	p := Payload{
		"toEmail": args.ToEmail,
		"subject": args.Subject,
		"text":    args.Text,
	}
	setOpt(p, "copy", args.Copy)
	setOpt(p, "ccEmail", args.CcEmail)
	setOpt(p, "bccEmail", args.BccEmail)
	return p
}

// PaymentArgs are the shared arguments of the payment booking tools.
type PaymentArgs struct {
	Amount         float64 `json:"amount"`
	Date           string  `json:"date"`
	Type           string  `json:"type"`
	CheckAccountID *int    `json:"checkAccountId"`
	CreateFeed     *bool   `json:"createFeed"`
}

// buildPaymentBody shapes the bookAmount payload. The check account, when
// given, is wrapped as a reference pair.
func buildPaymentBody(args PaymentArgs) Payload {
	p := Payload{
		"amount": args.Amount,
		"date":   args.Date,
		"type":   args.Type,
	}
	setOpt(p, "createFeed", args.CreateFeed)
	setOptRef(p, "checkAccount", args.CheckAccountID, ObjectCheckAccount)
	return p
}
