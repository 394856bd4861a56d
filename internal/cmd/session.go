package cmd

import (
	"errors"
	"fmt"

	"github.com/dyapi/dyctl/internal/ui"
	"github.com/dyapi/dyctl/session"
)

// SessionCmd groups the commands managing the stored visitor identity.
type SessionCmd struct {
	Show  SessionShowCmd  `cmd:"" help:"Show the stored session and user ids."`
	Set   SessionSetCmd   `cmd:"" help:"Store a session id and a user id."`
	New   SessionNewCmd   `cmd:"" help:"Start a new session for the stored user."`
	Clear SessionClearCmd `cmd:"" help:"Forget the stored visitor identity."`
}

// SessionShowCmd shows the stored identity.
type SessionShowCmd struct {
	Output string `short:"o" enum:"text,json,yaml" default:"text" help:"Output format (text, json, yaml)."`
}

// Run executes the session show command.
func (c *SessionShowCmd) Run(store session.Store, uiProvider ui.Provider) error {
	state, err := session.Load(store)
	if err != nil {
		return err
	}
	if c.Output != "text" {
		return RenderOutput(uiProvider, state, c.Output)
	}

	uiProvider.ShowHeading("Visitor identity")
	uiProvider.ShowKeyValue("Session", orNone(state.SessionID))
	uiProvider.ShowKeyValue("User", orNone(state.UserID))
	if fs, ok := store.(*session.FileStore); ok {
		uiProvider.ShowKeyValue("File", fs.GetPath())
	}
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// SessionSetCmd stores a session id and a user id.
type SessionSetCmd struct {
	SessionID string `arg:"" optional:"" help:"Session id. Prompted for when omitted."`
	UserID    string `arg:"" optional:"" help:"User id (dyid). Prompted for when omitted."`
}

// Run executes the session set command.
func (c *SessionSetCmd) Run(store session.Store, uiProvider ui.Provider) error {
	current, err := session.Load(store)
	if err != nil {
		return err
	}

	sessionID, userID := c.SessionID, c.UserID
	if sessionID == "" || userID == "" {
		if !uiProvider.Interactive() {
			return errors.New("a session id and a user id are required")
		}
	}
	if sessionID == "" {
		def := current.SessionID
		if def == "" {
			def = session.NewSessionID()
		}
		if sessionID, err = uiProvider.TextInput("Session id:", def, required("session id")); err != nil {
			return err
		}
	}
	if userID == "" {
		if userID, err = uiProvider.TextInput("User id:", current.UserID, required("user id")); err != nil {
			return err
		}
	}

	if err := session.Save(store, session.Update{SessionID: &sessionID, UserID: &userID}); err != nil {
		return err
	}
	uiProvider.ShowSuccess(fmt.Sprintf("Stored session %s for user %s", sessionID, userID))
	return nil
}

// SessionNewCmd starts a new session, keeping the stored user unless asked otherwise.
type SessionNewCmd struct {
	NewUser bool `help:"Forget the stored user as well. A new user id is generated on the next call, or taken from the API when it assigns one."`
}

// Run executes the session new command.
func (c *SessionNewCmd) Run(store session.Store, uiProvider ui.Provider) error {
	id := session.NewSessionID()
	u := session.Update{SessionID: &id}
	if c.NewUser {
		none := ""
		u.UserID = &none
	}
	if err := session.Save(store, u); err != nil {
		return err
	}
	uiProvider.ShowSuccess("Started session " + id)
	return nil
}

// SessionClearCmd forgets the stored identity.
type SessionClearCmd struct {
	Yes bool `short:"y" help:"Do not ask for confirmation."`
}

// Run executes the session clear command.
func (c *SessionClearCmd) Run(store session.Store, uiProvider ui.Provider) error {
	if !c.Yes {
		if !uiProvider.Interactive() {
			return errors.New("refusing to clear the identity without a terminal, pass --yes")
		}
		ok, err := uiProvider.Confirm("Forget the stored visitor identity?", false)
		if err != nil {
			return err
		}
		if !ok {
			uiProvider.ShowInfo("Nothing was changed.")
			return nil
		}
	}

	if clearer, ok := store.(session.Clearer); ok {
		if err := clearer.Clear(); err != nil {
			return fmt.Errorf("failed to clear identity: %w", err)
		}
	} else {
		none := ""
		if err := session.Save(store, session.Update{SessionID: &none, UserID: &none}); err != nil {
			return err
		}
	}
	uiProvider.ShowSuccess("Identity cleared")
	return nil
}
