package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdminAPI is an in-memory stand-in for the admin resource family. It
// counts list fetches so tests can pin down exactly when the console
// re-fetches and when it does not.
type fakeAdminAPI struct {
	mu        sync.Mutex
	items     map[string][]Record
	listCount map[string]int
	failNext  int // status to answer the next write with, 0 for none
	nextID    int
}

func newFakeAdminAPI() *fakeAdminAPI {
	return &fakeAdminAPI{
		items:     map[string][]Record{},
		listCount: map[string]int{},
	}
}

func (f *fakeAdminAPI) seed(resource string, items ...Record) {
	f.items[resource] = append(f.items[resource], items...)
}

func (f *fakeAdminAPI) lists(resource string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCount[resource]
}

func (f *fakeAdminAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	rest := strings.TrimPrefix(r.URL.Path, "/api/admin/")
	resource, id, _ := strings.Cut(rest, "/")

	if f.failNext != 0 && r.Method != http.MethodGet {
		status := f.failNext
		f.failNext = 0
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{"error": "nope"})
		return
	}

	switch {
	case r.Method == http.MethodGet && id == "":
		f.listCount[resource]++
		items := f.items[resource]
		if items == nil {
			items = []Record{}
		}
		json.NewEncoder(w).Encode(items)

	case r.Method == http.MethodPost:
		var payload Record
		json.NewDecoder(r.Body).Decode(&payload)
		f.nextID++
		payload["id"] = "id-" + strconv.Itoa(f.nextID)
		if resource == "api-keys" {
			payload["keyPrefix"] = "rcp_0123abcd..."
		}
		stored := Record{}
		for k, v := range payload {
			stored[k] = v
		}
		f.items[resource] = append(f.items[resource], stored)
		if resource == "api-keys" {
			// the secret appears in the creation response only
			payload["rawKey"] = "rcp_0123abcdef0123abcdef"
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(payload)

	case r.Method == http.MethodPut:
		for i, item := range f.items[resource] {
			if item["id"] == id {
				var payload Record
				json.NewDecoder(r.Body).Decode(&payload)
				for k, v := range payload {
					item[k] = v
				}
				f.items[resource][i] = item
				json.NewEncoder(w).Encode(item)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"error": "Not found"})

	case r.Method == http.MethodDelete:
		kept := f.items[resource][:0]
		for _, item := range f.items[resource] {
			if item["id"] != id {
				kept = append(kept, item)
			}
		}
		f.items[resource] = kept
		json.NewEncoder(w).Encode(map[string]any{"ok": true})

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestConsole(t *testing.T, api *fakeAdminAPI, build func(*Client) *Console) *Console {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return build(NewClient(srv.URL, "test-token"))
}

func TestConsoleLoadProjectsRows(t *testing.T) {
	api := newFakeAdminAPI()
	api.seed("organizations",
		Record{"id": "o1", "name": "Acme", "slug": "acme", "owner": map[string]any{"email": "a@acme.test"}, "createdAt": "2026-01-02T10:00:00Z"},
		Record{"id": "o2", "name": "Globex", "slug": "globex"},
	)
	c := newTestConsole(t, api, Organizations)

	assert.True(t, c.Loading())
	c.Load(context.Background())
	assert.False(t, c.Loading())
	assert.Empty(t, c.Err())

	rows := c.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme", rows[0][0])
	assert.Equal(t, "a@acme.test", rows[0][2])
	assert.Contains(t, rows[0][3], "2026")
	// missing owner object renders as the placeholder, not a zero value
	assert.Equal(t, "—", rows[1][2])
}

func TestConsoleLoadFailureSurfacesInline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := Organizations(NewClient(srv.URL, ""))
	c.Load(context.Background())
	assert.False(t, c.Loading())
	assert.Equal(t, "Failed to load", c.Err())
}

func TestConsoleDeleteIsOptimistic(t *testing.T) {
	api := newFakeAdminAPI()
	api.seed("plans",
		Record{"id": "p1", "name": "Starter"},
		Record{"id": "p2", "name": "Pro"},
	)
	c := newTestConsole(t, api, Plans)
	c.Load(context.Background())
	require.Len(t, c.Items(), 2)

	fetchesBefore := api.lists("plans")
	require.NoError(t, c.Delete(context.Background(), "p1", func() bool { return true }))

	// the row disappears locally without a round-trip back to the list
	assert.Equal(t, fetchesBefore, api.lists("plans"))
	require.Len(t, c.Items(), 1)
	assert.Equal(t, "p2", c.Items()[0]["id"])
}

func TestConsoleDeleteDeclined(t *testing.T) {
	api := newFakeAdminAPI()
	api.seed("plans", Record{"id": "p1", "name": "Starter"})
	c := newTestConsole(t, api, Plans)
	c.Load(context.Background())

	require.NoError(t, c.Delete(context.Background(), "p1", func() bool { return false }))
	assert.Len(t, c.Items(), 1)
}

func TestConsoleCreateRefetches(t *testing.T) {
	api := newFakeAdminAPI()
	c := newTestConsole(t, api, Plans)
	c.Load(context.Background())

	require.True(t, c.BeginCreate(context.Background()))
	assert.True(t, c.Modal().Creating())

	fetchesBefore := api.lists("plans")
	err := c.SubmitCreate(context.Background(), map[string]any{
		"name": "Pro", "type": "TEAM", "price": 49.0,
	})
	require.NoError(t, err)

	// success closes the modal and re-fetches the collection
	assert.True(t, c.Modal().Closed())
	assert.Equal(t, fetchesBefore+1, api.lists("plans"))
	assert.Len(t, c.Items(), 1)
}

func TestConsoleCreateFailureKeepsModalOpen(t *testing.T) {
	api := newFakeAdminAPI()
	c := newTestConsole(t, api, Plans)
	c.Load(context.Background())
	require.True(t, c.BeginCreate(context.Background()))

	api.failNext = http.StatusConflict
	err := c.SubmitCreate(context.Background(), map[string]any{"name": "Pro"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)

	// the operator keeps their input; the console stays usable
	assert.True(t, c.Modal().Creating())
	assert.Equal(t, "Failed to create", c.Err())
}

func TestConsoleEditRefetches(t *testing.T) {
	api := newFakeAdminAPI()
	api.seed("plans", Record{"id": "p1", "name": "Starter", "type": "INDIVIDUAL", "price": 9.0})
	c := newTestConsole(t, api, Plans)
	c.Load(context.Background())

	require.True(t, c.BeginEdit(context.Background(), "p1"))
	record, editing := c.Modal().Editing()
	require.True(t, editing)
	assert.Equal(t, "Starter", record["name"])

	fetchesBefore := api.lists("plans")
	require.NoError(t, c.SubmitEdit(context.Background(), map[string]any{"name": "Starter v2"}))
	assert.True(t, c.Modal().Closed())
	assert.Equal(t, fetchesBefore+1, api.lists("plans"))
	assert.Equal(t, "Starter v2", c.Items()[0]["name"])
}

func TestConsoleBeginEditUnknownID(t *testing.T) {
	api := newFakeAdminAPI()
	c := newTestConsole(t, api, Plans)
	c.Load(context.Background())
	assert.False(t, c.BeginEdit(context.Background(), "missing"))
	assert.True(t, c.Modal().Closed())
}

func TestFormLoadOptionsResolvesSelects(t *testing.T) {
	api := newFakeAdminAPI()
	api.seed("users",
		Record{"id": "u1", "email": "a@test"},
		Record{"id": "u2", "email": "b@test"},
		Record{"id": "u3"},
	)
	srv := httptest.NewServer(api)
	defer srv.Close()

	form := &Form{Fields: []Field{
		{Name: "ownerId", Kind: Select, OptionsFrom: "users", OptionLabel: "email"},
		{Name: "status", Kind: Select, Options: []Option{{Value: "active", Label: "Active"}}},
	}}
	require.NoError(t, form.LoadOptions(context.Background(), NewClient(srv.URL, "")))

	require.Len(t, form.Fields[0].Options, 3)
	assert.Equal(t, Option{Value: "u1", Label: "a@test"}, form.Fields[0].Options[0])
	// records without the label field fall back to their id
	assert.Equal(t, Option{Value: "u3", Label: "u3"}, form.Fields[0].Options[2])
	// static options are untouched
	assert.Equal(t, "Active", form.Fields[1].Options[0].Label)
}

func TestUsersEditDropsEmptyPassword(t *testing.T) {
	api := newFakeAdminAPI()
	api.seed("users", Record{"id": "u1", "email": "a@test", "role": "USER"})
	c := newTestConsole(t, api, Users)
	c.Load(context.Background())

	require.True(t, c.BeginEdit(context.Background(), "u1"))
	require.NoError(t, c.SubmitEdit(context.Background(), map[string]any{
		"name": "Alice", "password": "",
	}))

	updated := api.items["users"][0]
	assert.Equal(t, "Alice", updated["name"])
	_, sent := updated["password"]
	assert.False(t, sent, "an untouched password field must not reach the wire")
}

func TestSubscriptionsNormalizeFormDates(t *testing.T) {
	api := newFakeAdminAPI()
	c := newTestConsole(t, api, Subscriptions)
	c.Load(context.Background())

	require.NoError(t, c.SubmitCreate(context.Background(), map[string]any{
		"organizationId":     "o1",
		"planId":             "p1",
		"currentPeriodStart": "2026-02-01T09:30",
		"currentPeriodEnd":   "2026-03-01T09:30:00Z",
	}))

	sent := api.items["subscriptions"][0]
	start, _ := sent["currentPeriodStart"].(string)
	assert.Regexp(t, `T\d{2}:\d{2}:\d{2}Z$`, start)
	// values already in wire form pass through unchanged
	assert.Equal(t, "2026-03-01T09:30:00Z", sent["currentPeriodEnd"])
}

func TestAPIKeysOneTimeReveal(t *testing.T) {
	api := newFakeAdminAPI()
	srv := httptest.NewServer(api)
	defer srv.Close()

	c := APIKeys(NewClient(srv.URL, "test-token"))
	c.Load(context.Background())

	_, shown := c.RevealedKey()
	assert.False(t, shown)

	require.NoError(t, c.SubmitCreate(context.Background(), map[string]any{
		"organizationId": "o1", "name": "ci",
	}))

	raw, shown := c.RevealedKey()
	require.True(t, shown)
	assert.Equal(t, "rcp_0123abcdef0123abcdef", raw)

	// the table only ever shows the prefix
	rows := c.Rows()
	require.Len(t, rows, 1)
	for _, cell := range rows[0] {
		assert.NotEqual(t, raw, cell)
	}

	c.DismissReveal()
	_, shown = c.RevealedKey()
	assert.False(t, shown)
}
