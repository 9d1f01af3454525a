package console

import "context"

// Column projects one record field into a table cell. Key is a dotted path
// into the record; Render, when set, overrides the default formatting.
type Column struct {
	Key    string
	Label  string
	Render func(v any, ok bool) string
}

type modalKind int

const (
	modalClosed modalKind = iota
	modalCreating
	modalEditing
)

// Modal is the console's form state: closed, creating, or editing one
// record. The three cases are explicit so callers never have to guess from
// the shape of a value.
type Modal struct {
	kind   modalKind
	record Record
}

func (m Modal) Closed() bool   { return m.kind == modalClosed }
func (m Modal) Creating() bool { return m.kind == modalCreating }

// Editing returns the record under edit when the modal is in that state.
func (m Modal) Editing() (Record, bool) {
	if m.kind != modalEditing {
		return nil, false
	}
	return m.record, true
}

// Config describes one entity console declaratively. A console without a
// CreateForm and EditForm is read/delete-only.
type Config struct {
	Title    string
	Resource string
	Columns  []Column
	GetID    func(Record) string

	CreateForm *Form
	EditForm   *Form

	// PrepareCreate and PrepareEdit shape submitted form values into the
	// request payload (date normalization, dropped empty secrets, ...).
	PrepareCreate func(values map[string]any) map[string]any
	PrepareEdit   func(record Record, values map[string]any) map[string]any
}

// Console drives the list/create/edit/delete lifecycle for one entity.
// Create and edit re-fetch the full collection on success; delete removes
// the row locally without a re-fetch. That asymmetry is deliberate and
// load-bearing.
type Console struct {
	cfg    Config
	client *Client

	items  []Record
	loaded bool
	errMsg string
	modal  Modal
}

func New(client *Client, cfg Config) *Console {
	if cfg.GetID == nil {
		cfg.GetID = func(r Record) string {
			id, _ := r["id"].(string)
			return id
		}
	}
	return &Console{cfg: cfg, client: client}
}

func (c *Console) Title() string    { return c.cfg.Title }
func (c *Console) Columns() []Column { return c.cfg.Columns }
func (c *Console) Items() []Record  { return c.items }
func (c *Console) Err() string      { return c.errMsg }
func (c *Console) Modal() Modal     { return c.modal }
func (c *Console) CanCreate() bool  { return c.cfg.CreateForm != nil }
func (c *Console) CanEdit() bool    { return c.cfg.EditForm != nil }

// Loading reports whether the first fetch has resolved yet.
func (c *Console) Loading() bool { return !c.loaded }

// Load fetches the full collection. Failures surface inline; the console
// stays usable.
func (c *Console) Load(ctx context.Context) {
	items, err := c.client.List(ctx, c.cfg.Resource)
	if err != nil {
		c.errMsg = "Failed to load"
	} else {
		c.items = items
	}
	c.loaded = true
}

// BeginCreate opens the create form, loading any cross-entity select
// options first.
func (c *Console) BeginCreate(ctx context.Context) bool {
	if c.cfg.CreateForm == nil {
		return false
	}
	if err := c.cfg.CreateForm.LoadOptions(ctx, c.client); err != nil {
		c.errMsg = "Failed to load"
		return false
	}
	c.modal = Modal{kind: modalCreating}
	return true
}

// BeginEdit opens the edit form pre-populated from the current record.
func (c *Console) BeginEdit(ctx context.Context, id string) bool {
	if c.cfg.EditForm == nil {
		return false
	}
	for _, item := range c.items {
		if c.cfg.GetID(item) == id {
			if err := c.cfg.EditForm.LoadOptions(ctx, c.client); err != nil {
				c.errMsg = "Failed to load"
				return false
			}
			c.modal = Modal{kind: modalEditing, record: item}
			return true
		}
	}
	return false
}

func (c *Console) Cancel() {
	c.modal = Modal{}
}

// SubmitCreate posts the form values and, on success, closes the modal and
// re-fetches the full list. The modal stays open on failure.
func (c *Console) SubmitCreate(ctx context.Context, values map[string]any) error {
	if c.cfg.PrepareCreate != nil {
		values = c.cfg.PrepareCreate(values)
	}
	if _, err := c.client.Create(ctx, c.cfg.Resource, values); err != nil {
		c.errMsg = "Failed to create"
		return err
	}
	c.modal = Modal{}
	c.refresh(ctx)
	return nil
}

// SubmitEdit updates the record under edit and, on success, closes the
// modal and re-fetches the full list.
func (c *Console) SubmitEdit(ctx context.Context, values map[string]any) error {
	record, ok := c.modal.Editing()
	if !ok {
		return nil
	}
	if c.cfg.PrepareEdit != nil {
		values = c.cfg.PrepareEdit(record, values)
	}
	if _, err := c.client.Update(ctx, c.cfg.Resource, c.cfg.GetID(record), values); err != nil {
		c.errMsg = "Failed to update"
		return err
	}
	c.modal = Modal{}
	c.refresh(ctx)
	return nil
}

// Delete asks for confirmation, deletes the item, and removes it from the
// local list immediately, without re-fetching.
func (c *Console) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}
	if err := c.client.Delete(ctx, c.cfg.Resource, id); err != nil {
		c.errMsg = "Failed to delete"
		return err
	}

	kept := c.items[:0]
	for _, item := range c.items {
		if c.cfg.GetID(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	return nil
}

// Rows projects every record through the column list with the default cell
// formatting (or the column's custom renderer).
func (c *Console) Rows() [][]string {
	rows := make([][]string, 0, len(c.items))
	for _, item := range c.items {
		row := make([]string, 0, len(c.cfg.Columns))
		for _, col := range c.cfg.Columns {
			v, ok := Lookup(item, col.Key)
			if col.Render != nil {
				row = append(row, col.Render(v, ok))
			} else {
				row = append(row, FormatCell(v, ok))
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (c *Console) refresh(ctx context.Context) {
	items, err := c.client.List(ctx, c.cfg.Resource)
	if err != nil {
		c.errMsg = "Failed to load"
		return
	}
	c.items = items
}
