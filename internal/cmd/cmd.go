package cmd

import (
	"errors"
	"net/http"
	"os"

	"github.com/alecthomas/kong"
	"github.com/dyapi/dyctl/api"
	"github.com/dyapi/dyctl/internal/cmd/version"
	"github.com/dyapi/dyctl/internal/dyctl"
	dyhttp "github.com/dyapi/dyctl/internal/http"
	"github.com/dyapi/dyctl/internal/ui"
	"github.com/dyapi/dyctl/session"
	"github.com/pterm/pterm"
)

// Help messages to display for specific error situations.
const (
	// helpAPIKey is displayed if ErrAPIKey is ever returned
	helpAPIKey = `No API key was found.
Set the DY_API_KEY environment variable to the key of your site.
Keys are created in Settings > API Keys and must match the region set by DY_REGION (us or eu).`

	// helpPrecondition is displayed if identity fields are reported missing
	helpPrecondition = `This operation needs a session id and a user id.
dyctl generates both when the session file holds none, check it with "dyctl session show".
Run "dyctl session set" to use known ids, or "dyctl session new --new-user" to start over as a new visitor.`

	// helpUnauthorized is displayed if the API rejects the API key
	helpUnauthorized = `The API key was rejected.
Check that DY_API_KEY holds a server-side key and that DY_REGION matches the region of the site.`
)

func HandleErr(err error) {
	if err == nil {
		return
	}

	pterm.Error.Println(err)

	var errParse *kong.ParseError
	if errors.As(err, &errParse) {
		_ = kong.DefaultHelpPrinter(kong.HelpOptions{}, errParse.Context)
	}

	var errStatus *api.HTTPStatusError
	switch {
	case errors.Is(err, dyctl.ErrAPIKey):
		pterm.Println()
		pterm.Info.Println(helpAPIKey)
	case missingIdentity(err):
		pterm.Println()
		pterm.Info.Println(helpPrecondition)
	case errors.As(err, &errStatus):
		if len(errStatus.Body) > 0 {
			pterm.Println()
			pterm.Println(string(errStatus.Body))
		}
		if errStatus.StatusCode == http.StatusUnauthorized || errStatus.StatusCode == http.StatusForbidden {
			pterm.Println()
			pterm.Info.Println(helpUnauthorized)
		}
	}

	os.Exit(1)
}

// missingIdentity reports whether err is a precondition failure caused by absent identity.
func missingIdentity(err error) bool {
	var errPrecondition *api.PreconditionError
	if !errors.As(err, &errPrecondition) {
		return false
	}
	for _, field := range errPrecondition.Missing {
		if field == "session.id" || field == "user.dyid" {
			return true
		}
	}
	return false
}

type verbose bool

func (v verbose) BeforeApply() error {
	pterm.EnableDebugMessages()
	return nil
}

type Cmd struct {
	Choose   ChooseCmd   `cmd:"" help:"Choose campaign variations for the visitor."`
	Search   SearchCmd   `cmd:"" help:"Run a semantic search for the visitor."`
	Track    TrackCmd    `cmd:"" help:"Report pageviews, engagement and events."`
	Feed     FeedCmd     `cmd:"" help:"Update product feeds and check their transactions."`
	Branch   BranchCmd   `cmd:"" help:"Update branch inventory and report outages."`
	Userdata UserdataCmd `cmd:"" help:"Send user data and external events."`
	Profile  ProfileCmd  `cmd:"" help:"Look up a customer profile."`
	Call     CallCmd     `cmd:"" help:"Call any Experience API operation."`
	Session  SessionCmd  `cmd:"" help:"Manage the stored visitor identity."`
	Version  version.Cmd `cmd:"" help:"Display version information."`
	Verbose  verbose     `short:"v" help:"Enable verbose output."`
}

func (c *Cmd) BeforeApply(kCtx *kong.Context) error {
	kCtx.BindTo(dyhttp.DefaultClient, (*dyhttp.HTTPDoer)(nil))
	kCtx.BindTo(&session.FileStore{}, (*session.Store)(nil))
	kCtx.BindTo(dyctl.NewService, (*dyctl.ServiceFactory)(nil))
	kCtx.BindTo(ui.New(), (*ui.Provider)(nil))
	return nil
}
