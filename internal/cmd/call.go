package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dyapi/dyctl/api"
	"github.com/dyapi/dyctl/internal/dyctl"
	"github.com/dyapi/dyctl/internal/http"
	"github.com/dyapi/dyctl/internal/ui"
	"github.com/dyapi/dyctl/session"
)

// CallCmd sends any operation by name.
type CallCmd struct {
	Operation string   `arg:"" optional:"" help:"Operation to call, e.g. chooseVariations. Prompted for when omitted."`
	Params    []string `short:"p" name:"param" sep:"none" placeholder:"NAME=VALUE" help:"Path parameter. Repeatable."`
	Query     []string `short:"q" sep:"none" placeholder:"NAME=VALUE" help:"Query parameter. Repeatable."`
	List      bool     `short:"l" help:"List the operations and their endpoints."`
	BodyFlags `embed:""`
	Output    string `short:"o" enum:"json,yaml" default:"json" help:"Output format (json, yaml)."`
}

// Run executes the call command.
func (c *CallCmd) Run(ctx context.Context, httpClient http.HTTPDoer, store session.Store, factory dyctl.ServiceFactory, uiProvider ui.Provider) error {
	if c.List {
		for _, op := range api.Operations() {
			ep, _ := api.Lookup(op)
			uiProvider.ShowKeyValue(string(op), ep.Method+" "+ep.Path)
		}
		return nil
	}

	op, err := c.operation(uiProvider)
	if err != nil {
		return err
	}
	ep, ok := api.Lookup(op)
	if !ok {
		return fmt.Errorf("unknown operation %q, run with --list to see them all", op)
	}

	params, err := pairs(c.Params)
	if err != nil {
		return fmt.Errorf("invalid --param: %w", err)
	}
	if err := promptParams(uiProvider, ep, params); err != nil {
		return err
	}
	query, err := pairs(c.Query)
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}

	call := api.Call{PathParams: params, Query: url.Values{}}
	for k, v := range query {
		call.Query.Set(k, v)
	}
	// bodies are only sent to the operations taking one, unless asked for explicitly
	if ep.Body || c.File != "" || len(c.Set) > 0 {
		body, err := c.Body()
		if err != nil {
			return err
		}
		call.Body = body
	}

	svc, err := factory(httpClient, store)
	if err != nil {
		return err
	}
	return send(uiProvider, "Calling "+string(op), c.Output, func() (*api.Response, error) {
		return svc.Do(ctx, op, call)
	})
}

// operation returns the operation to call, asking for it when none was given.
func (c *CallCmd) operation(uiProvider ui.Provider) (api.Operation, error) {
	if c.Operation != "" {
		return api.Operation(c.Operation), nil
	}
	if !uiProvider.Interactive() {
		return "", errors.New("an operation is required, run with --list to see them all")
	}

	ops := api.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = string(op)
	}
	_, name, err := uiProvider.FilterableSelect("Select an operation:", names)
	if err != nil {
		return "", err
	}
	return api.Operation(name), nil
}

// promptParams asks for the path parameters of ep missing from params.
// Without a terminal they are left for the client to report.
func promptParams(uiProvider ui.Provider, ep api.Endpoint, params map[string]string) error {
	if !uiProvider.Interactive() {
		return nil
	}
	for _, name := range ep.PathParams {
		if params[name] != "" {
			continue
		}
		v, err := uiProvider.TextInput(name+":", "", required(name))
		if err != nil {
			return err
		}
		params[name] = v
	}
	return nil
}

// pairs parses NAME=VALUE entries.
func pairs(entries []string) (map[string]string, error) {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		k, v, ok := strings.Cut(e, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("%q is not NAME=VALUE", e)
		}
		m[k] = v
	}
	return m, nil
}

// required returns a TextInput validator rejecting empty values.
func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
