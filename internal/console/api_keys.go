package console

import "context"

// APIKeysConsole wraps the generic console for the one behavior it cannot
// express: the create response carries the raw key exactly once, and the
// console must surface it until the operator dismisses it.
type APIKeysConsole struct {
	*Console
	revealed string
}

func APIKeys(client *Client) *APIKeysConsole {
	form := func() *Form {
		return &Form{Fields: []Field{
			{Name: "organizationId", Label: "Organization", Kind: Select, Required: true, OptionsFrom: "organizations"},
			{Name: "name", Label: "Name", Kind: Text, Required: true},
			{Name: "expiresAt", Label: "Expires", Kind: DateTime},
		}}
	}
	inner := New(client, Config{
		Title:    "API Keys",
		Resource: "api-keys",
		Columns: []Column{
			{Key: "name", Label: "Name"},
			{Key: "keyPrefix", Label: "Key"},
			{Key: "organization.name", Label: "Organization"},
			{Key: "lastUsedAt", Label: "Last Used"},
			{Key: "expiresAt", Label: "Expires"},
		},
		CreateForm: form(),
		EditForm: &Form{Fields: []Field{
			{Name: "name", Label: "Name", Kind: Text},
			{Name: "expiresAt", Label: "Expires", Kind: DateTime},
		}},
		PrepareCreate: func(values map[string]any) map[string]any {
			return normalizeDates(values, "expiresAt")
		},
		PrepareEdit: func(record Record, values map[string]any) map[string]any {
			return normalizeDates(values, "expiresAt")
		},
	})
	return &APIKeysConsole{Console: inner}
}

// SubmitCreate creates the key and captures the raw secret from the
// response. The list rows only ever show the prefix.
func (c *APIKeysConsole) SubmitCreate(ctx context.Context, values map[string]any) error {
	if c.cfg.PrepareCreate != nil {
		values = c.cfg.PrepareCreate(values)
	}
	created, err := c.client.Create(ctx, c.cfg.Resource, values)
	if err != nil {
		c.errMsg = "Failed to create"
		return err
	}
	if raw, ok := created["rawKey"].(string); ok {
		c.revealed = raw
	}
	c.modal = Modal{}
	c.refresh(ctx)
	return nil
}

// RevealedKey returns the raw key from the most recent create, if the
// operator has not dismissed it yet.
func (c *APIKeysConsole) RevealedKey() (string, bool) {
	return c.revealed, c.revealed != ""
}

func (c *APIKeysConsole) DismissReveal() {
	c.revealed = ""
}
