package console

// Per-entity consoles. Organizations, Customers, and Integrations are plain
// instantiations of the generic console; the rest mirror the bespoke admin
// pages, keeping the same lifecycle with custom fields (cross-entity
// selects, dropped empty passwords, date normalization).

func Organizations(client *Client) *Console {
	form := func() *Form {
		return &Form{Fields: []Field{
			{Name: "name", Label: "Name", Kind: Text, Required: true},
			{Name: "slug", Label: "Slug", Kind: Text, Required: true},
			{Name: "ownerId", Label: "Owner", Kind: Select, Required: true, OptionsFrom: "users", OptionLabel: "email"},
		}}
	}
	return New(client, Config{
		Title:    "Organizations",
		Resource: "organizations",
		Columns: []Column{
			{Key: "name", Label: "Name"},
			{Key: "slug", Label: "Slug"},
			{Key: "owner.email", Label: "Owner"},
			{Key: "createdAt", Label: "Created"},
		},
		CreateForm: form(),
		EditForm:   form(),
	})
}

func Customers(client *Client) *Console {
	form := func() *Form {
		return &Form{Fields: []Field{
			{Name: "organizationId", Label: "Organization", Kind: Select, Required: true, OptionsFrom: "organizations"},
			{Name: "email", Label: "Email", Kind: Text, Required: true},
			{Name: "name", Label: "Name", Kind: Text},
			{Name: "externalId", Label: "External ID", Kind: Text},
		}}
	}
	return New(client, Config{
		Title:    "Customers",
		Resource: "customers",
		Columns: []Column{
			{Key: "email", Label: "Email"},
			{Key: "name", Label: "Name"},
			{Key: "organization.name", Label: "Organization"},
			{Key: "externalId", Label: "External ID"},
		},
		CreateForm: form(),
		EditForm:   form(),
	})
}

func Integrations(client *Client) *Console {
	typeOptions := []Option{
		{Value: "STRIPE", Label: "Stripe"},
		{Value: "BILLING", Label: "Billing"},
		{Value: "CUSTOM", Label: "Custom"},
	}
	form := func() *Form {
		return &Form{Fields: []Field{
			{Name: "organizationId", Label: "Organization", Kind: Select, Required: true, OptionsFrom: "organizations"},
			{Name: "type", Label: "Type", Kind: Select, Required: true, Options: typeOptions},
			{Name: "name", Label: "Name", Kind: Text, Required: true},
			{Name: "config", Label: "Config", Kind: JSONText},
			{Name: "isActive", Label: "Active", Kind: Checkbox, Default: true},
		}}
	}
	return New(client, Config{
		Title:    "Integrations",
		Resource: "integrations",
		Columns: []Column{
			{Key: "name", Label: "Name"},
			{Key: "type", Label: "Type"},
			{Key: "organization.name", Label: "Organization"},
			{Key: "isActive", Label: "Active", Render: YesNo},
		},
		CreateForm: form(),
		EditForm:   form(),
	})
}

func Users(client *Client) *Console {
	roleOptions := []Option{
		{Value: "ADMIN", Label: "Admin"},
		{Value: "USER", Label: "User"},
	}
	return New(client, Config{
		Title:    "Users",
		Resource: "users",
		Columns: []Column{
			{Key: "email", Label: "Email"},
			{Key: "name", Label: "Name"},
			{Key: "role", Label: "Role"},
			{Key: "createdAt", Label: "Created"},
		},
		CreateForm: &Form{Fields: []Field{
			{Name: "email", Label: "Email", Kind: Text, Required: true},
			{Name: "password", Label: "Password", Kind: Password, Required: true},
			{Name: "name", Label: "Name", Kind: Text},
			{Name: "role", Label: "Role", Kind: Select, Required: true, Options: roleOptions, Default: "USER"},
		}},
		EditForm: &Form{Fields: []Field{
			{Name: "email", Label: "Email", Kind: Text},
			{Name: "password", Label: "New password (leave blank to keep)", Kind: Password},
			{Name: "name", Label: "Name", Kind: Text},
			{Name: "role", Label: "Role", Kind: Select, Options: roleOptions},
		}},
		// an untouched password field must not overwrite the stored hash
		PrepareEdit: func(record Record, values map[string]any) map[string]any {
			if pw, ok := values["password"].(string); ok && pw == "" {
				delete(values, "password")
			}
			return values
		},
	})
}

func Plans(client *Client) *Console {
	typeOptions := []Option{
		{Value: "INDIVIDUAL", Label: "Individual"},
		{Value: "TEAM", Label: "Team"},
		{Value: "ENTERPRISE", Label: "Enterprise"},
	}
	form := func() *Form {
		return &Form{Fields: []Field{
			{Name: "name", Label: "Name", Kind: Text, Required: true},
			{Name: "type", Label: "Type", Kind: Select, Required: true, Options: typeOptions},
			{Name: "price", Label: "Price", Kind: Number, Required: true},
			{Name: "currency", Label: "Currency", Kind: Text, Default: "USD"},
			{Name: "interval", Label: "Interval", Kind: Text, Default: "month"},
			{Name: "features", Label: "Features", Kind: JSONText},
		}}
	}
	return New(client, Config{
		Title:    "Plans",
		Resource: "plans",
		Columns: []Column{
			{Key: "name", Label: "Name"},
			{Key: "type", Label: "Type"},
			{Key: "price", Label: "Price"},
			{Key: "currency", Label: "Currency"},
			{Key: "interval", Label: "Interval"},
		},
		CreateForm: form(),
		EditForm:   form(),
	})
}

func Subscriptions(client *Client) *Console {
	form := func() *Form {
		return &Form{Fields: []Field{
			{Name: "organizationId", Label: "Organization", Kind: Select, Required: true, OptionsFrom: "organizations"},
			{Name: "planId", Label: "Plan", Kind: Select, Required: true, OptionsFrom: "plans"},
			{Name: "status", Label: "Status", Kind: Text, Default: "active"},
			{Name: "currentPeriodStart", Label: "Period Start", Kind: DateTime, Required: true},
			{Name: "currentPeriodEnd", Label: "Period End", Kind: DateTime, Required: true},
		}}
	}
	prepare := func(values map[string]any) map[string]any {
		return normalizeDates(values, "currentPeriodStart", "currentPeriodEnd")
	}
	return New(client, Config{
		Title:    "Subscriptions",
		Resource: "subscriptions",
		Columns: []Column{
			{Key: "organization.name", Label: "Organization"},
			{Key: "plan.name", Label: "Plan"},
			{Key: "status", Label: "Status"},
			{Key: "currentPeriodStart", Label: "Period Start"},
			{Key: "currentPeriodEnd", Label: "Period End"},
		},
		CreateForm:    form(),
		EditForm:      form(),
		PrepareCreate: prepare,
		PrepareEdit: func(record Record, values map[string]any) map[string]any {
			return prepare(values)
		},
	})
}

func RevenueEvents(client *Client) *Console {
	form := func() *Form {
		return &Form{Fields: []Field{
			{Name: "organizationId", Label: "Organization", Kind: Select, Required: true, OptionsFrom: "organizations"},
			{Name: "customerId", Label: "Customer", Kind: Select, OptionsFrom: "customers", OptionLabel: "email"},
			{Name: "amount", Label: "Amount", Kind: Number, Required: true},
			{Name: "currency", Label: "Currency", Kind: Text, Default: "USD"},
			{Name: "type", Label: "Type", Kind: Text, Required: true},
			{Name: "description", Label: "Description", Kind: Text},
			{Name: "effectiveDate", Label: "Effective Date", Kind: DateTime, Required: true},
		}}
	}
	prepare := func(values map[string]any) map[string]any {
		return normalizeDates(values, "effectiveDate")
	}
	return New(client, Config{
		Title:    "Revenue Events",
		Resource: "revenue-events",
		Columns: []Column{
			{Key: "organization.name", Label: "Organization"},
			{Key: "customer.email", Label: "Customer"},
			{Key: "amount", Label: "Amount"},
			{Key: "currency", Label: "Currency"},
			{Key: "type", Label: "Type"},
			{Key: "effectiveDate", Label: "Effective"},
		},
		CreateForm:    form(),
		EditForm:      form(),
		PrepareCreate: prepare,
		PrepareEdit: func(record Record, values map[string]any) map[string]any {
			return prepare(values)
		},
	})
}

func Invoices(client *Client) *Console {
	statusOptions := []Option{
		{Value: "draft", Label: "Draft"},
		{Value: "sent", Label: "Sent"},
		{Value: "paid", Label: "Paid"},
		{Value: "cancelled", Label: "Cancelled"},
		{Value: "overdue", Label: "Overdue"},
	}
	form := func() *Form {
		return &Form{Fields: []Field{
			{Name: "organizationId", Label: "Organization", Kind: Select, Required: true, OptionsFrom: "organizations"},
			{Name: "customerId", Label: "Customer", Kind: Select, OptionsFrom: "customers", OptionLabel: "email"},
			{Name: "number", Label: "Number", Kind: Text, Required: true},
			{Name: "amount", Label: "Amount", Kind: Number, Required: true},
			{Name: "currency", Label: "Currency", Kind: Text, Default: "USD"},
			{Name: "status", Label: "Status", Kind: Select, Options: statusOptions, Default: "draft"},
			{Name: "dueDate", Label: "Due Date", Kind: DateTime},
		}}
	}
	prepare := func(values map[string]any) map[string]any {
		return normalizeDates(values, "dueDate", "paidAt")
	}
	return New(client, Config{
		Title:    "Invoices",
		Resource: "invoices",
		Columns: []Column{
			{Key: "number", Label: "Number"},
			{Key: "organization.name", Label: "Organization"},
			{Key: "customer.email", Label: "Customer"},
			{Key: "amount", Label: "Amount"},
			{Key: "status", Label: "Status"},
			{Key: "dueDate", Label: "Due"},
		},
		CreateForm:    form(),
		EditForm:      form(),
		PrepareCreate: prepare,
		PrepareEdit: func(record Record, values map[string]any) map[string]any {
			return prepare(values)
		},
	})
}

func TeamMembers(client *Client) *Console {
	form := func() *Form {
		return &Form{Fields: []Field{
			{Name: "userId", Label: "User", Kind: Select, Required: true, OptionsFrom: "users", OptionLabel: "email"},
			{Name: "organizationId", Label: "Organization", Kind: Select, Required: true, OptionsFrom: "organizations"},
			{Name: "role", Label: "Role", Kind: Text, Default: "member"},
		}}
	}
	return New(client, Config{
		Title:    "Team Members",
		Resource: "team-members",
		Columns: []Column{
			{Key: "user.email", Label: "User"},
			{Key: "organization.name", Label: "Organization"},
			{Key: "role", Label: "Role"},
		},
		CreateForm: form(),
		EditForm:   form(),
	})
}

func UsageMetrics(client *Client) *Console {
	form := func() *Form {
		return &Form{Fields: []Field{
			{Name: "organizationId", Label: "Organization", Kind: Select, Required: true, OptionsFrom: "organizations"},
			{Name: "metricType", Label: "Metric Type", Kind: Text, Required: true},
			{Name: "value", Label: "Value", Kind: Number, Required: true},
			{Name: "period", Label: "Period", Kind: Text, Required: true},
		}}
	}
	return New(client, Config{
		Title:    "Usage Metrics",
		Resource: "usage-metrics",
		Columns: []Column{
			{Key: "organizationId", Label: "Organization"},
			{Key: "metricType", Label: "Metric"},
			{Key: "value", Label: "Value"},
			{Key: "period", Label: "Period"},
		},
		CreateForm: form(),
		EditForm:   form(),
	})
}
