package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"revenue-copilot/internal/console"
)

// lister is the slice of the console every entity implements, bespoke
// wrappers included.
type lister interface {
	Title() string
	Columns() []console.Column
	Rows() [][]string
	Err() string
	Load(ctx context.Context)
}

var registry = map[string]func(*console.Client) lister{
	"organizations":  func(c *console.Client) lister { return console.Organizations(c) },
	"users":          func(c *console.Client) lister { return console.Users(c) },
	"plans":          func(c *console.Client) lister { return console.Plans(c) },
	"customers":      func(c *console.Client) lister { return console.Customers(c) },
	"subscriptions":  func(c *console.Client) lister { return console.Subscriptions(c) },
	"revenue-events": func(c *console.Client) lister { return console.RevenueEvents(c) },
	"invoices":       func(c *console.Client) lister { return console.Invoices(c) },
	"integrations":   func(c *console.Client) lister { return console.Integrations(c) },
	"api-keys":       func(c *console.Client) lister { return console.APIKeys(c) },
	"team-members":   func(c *console.Client) lister { return console.TeamMembers(c) },
	"usage-metrics":  func(c *console.Client) lister { return console.UsageMetrics(c) },
}

func main() {
	base := flag.String("base", "http://localhost:8080", "API base URL")
	token := flag.String("token", os.Getenv("ADMIN_TOKEN"), "admin JWT")
	resource := flag.String("resource", "", "resource to list (empty lists available resources)")
	flag.Parse()

	if *resource == "" {
		names := make([]string, 0, len(registry))
		for name := range registry {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	build, ok := registry[*resource]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown resource %q\n", *resource)
		os.Exit(1)
	}

	c := build(console.NewClient(*base, *token))
	c.Load(context.Background())
	if msg := c.Err(); msg != "" {
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, col := range c.Columns() {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col.Label)
	}
	fmt.Fprintln(w)
	for _, row := range c.Rows() {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
