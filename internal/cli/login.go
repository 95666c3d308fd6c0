package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pwkeeper/internal/common"
)

// Login authenticates an identifier. An unknown identifier and a wrong
// password produce the same output.
func (a *App) Login(ctx context.Context, args []string) error {
	identifier, err := a.identifierArg(args)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.service.Authenticate(ctx, identifier, password)
	if err != nil && !errors.Is(err, common.ErrUnknownIdentifier) {
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Login unsuccessful: invalid identifier or password")
		return common.ErrorUnauthorized
	}

	a.current = identifier
	fmt.Fprintln(a.out, "Login successful")
	return nil
}
