package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/gkeyring/internal/client/keyring"
	"github.com/dmitrijs2005/gkeyring/internal/client/models"
	"github.com/dmitrijs2005/gkeyring/internal/common"
)

const passwordPrompt = "Password: "

// buildRequest validates o and turns it into a Request. The store is only
// used to resolve the default keyring; the password is prompted for when a
// create request has none.
func (a *App) buildRequest(ctx context.Context, store keyring.Store, o *options) (models.Request, error) {
	req := models.Request{
		Mode:      models.ModeQuery,
		Type:      models.ItemType(o.itemType),
		ID:        o.id,
		Columns:   strings.Split(o.output, ","),
		NoNewline: o.noNewline,
		Name:      o.name,
		Secret:    o.password,
	}
	switch {
	case o.set:
		req.Mode = models.ModeCreate
	case o.del:
		req.Mode = models.ModeDelete
	}

	if req.Mode == models.ModeQuery && !req.HasID() && o.params == "" && o.paramsInt == "" {
		return req, usageErrorf("Missing option -p or -i! See --help.")
	}

	text, err := models.ParseTextAttributes(o.params)
	if err != nil {
		return req, usageErrorf("Incorrect syntax of \"-p param1=value1,param2=value2\"! See --help.\nDetails:\n%s", err)
	}
	ints, err := models.ParseIntAttributes(o.paramsInt)
	if err != nil {
		return req, usageErrorf("Incorrect syntax of \"-i param1=value1,param2=value2\"! See --help.\nDetails:\n%s", err)
	}
	req.Attributes = text.Merge(ints)

	req.Keyring = o.keyring
	if req.Keyring == "" {
		req.Keyring, err = store.DefaultKeyring(ctx)
		if err != nil {
			return req, &ExitError{Code: ExitUsage, Message: "Cannot determine the default keyring!\nDetails:\n" + err.Error()}
		}
	}

	if o.secretOnly {
		req.Columns = []string{models.ColumnSecret}
		req.NoNewline = true
	}

	if req.Mode == models.ModeCreate && req.Name == "" {
		return req, usageErrorf("Missing --name! See --help.")
	}
	if req.Mode == models.ModeDelete && !req.HasID() {
		return req, usageErrorf("Missing --id! See --help.")
	}

	if req.Mode == models.ModeCreate && req.Secret == "" {
		pw, err := a.term.ReadPassword(passwordPrompt)
		if err != nil {
			return req, err
		}
		req.Secret = string(pw)
		common.WipeByteArray(pw)
	}

	return req, nil
}
