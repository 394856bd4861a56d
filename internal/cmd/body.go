package cmd

import (
	"github.com/dyapi/dyctl/api"
	"github.com/dyapi/dyctl/internal/maps"
	"github.com/dyapi/dyctl/internal/ui"
)

// BodyFlags builds a request body from a file and path=value overrides.
type BodyFlags struct {
	File string   `short:"f" type:"existingfile" help:"YAML or JSON file holding the request body."`
	Set  []string `sep:"none" placeholder:"PATH=VALUE" help:"Set a body field, e.g. --set context.page.type=HOMEPAGE. Applied last."`
}

// Body returns the body read from --file, with fields and then --set merged over it.
// It is an empty object when no flag is given.
func (b BodyFlags) Body(fields ...map[string]any) (api.Envelope, error) {
	body, err := maps.FromYAMLFile(b.File)
	if err != nil {
		return nil, err
	}
	overrides, err := maps.FromSlice(b.Set)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		maps.Merge(body, f)
	}
	maps.Merge(body, overrides)
	return api.Envelope(body), nil
}

// PageFlags describe the page the visitor is on.
type PageFlags struct {
	PageType string   `help:"Page type, e.g. HOMEPAGE, CATEGORY or PRODUCT."`
	Location string   `help:"Page location, usually its URL."`
	PageData []string `sep:"none" help:"Page data, e.g. the SKU of a product page. Repeatable."`
	Locale   string   `help:"Page locale, e.g. en_US."`
}

func (p PageFlags) fields() map[string]any {
	page := map[string]any{}
	if p.PageType != "" {
		page["type"] = p.PageType
	}
	if p.Location != "" {
		page["location"] = p.Location
	}
	if len(p.PageData) > 0 {
		page["data"] = anySlice(p.PageData)
	}
	if p.Locale != "" {
		page["locale"] = p.Locale
	}
	if len(page) == 0 {
		return nil
	}
	return map[string]any{"context": map[string]any{"page": page}}
}

// anySlice converts s to the []any form used by decoded bodies.
func anySlice(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

// send runs fn behind a spinner and renders the body of the response it returns.
func send(uiProvider ui.Provider, message, output string, fn func() (*api.Response, error)) error {
	var resp *api.Response
	err := uiProvider.RunWithSpinner(message, func() error {
		var err error
		resp, err = fn()
		return err
	})
	if err != nil {
		return err
	}
	return RenderOutput(uiProvider, resp.Body, output)
}
