package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pwkeeper/internal/common"
)

func (a *App) Register(ctx context.Context, args []string) error {
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

	err = a.service.Register(ctx, identifier, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDuplicateIdentifier):
			fmt.Fprintf(a.out, "Registration failed: %q is already registered\n", identifier)
		case errors.Is(err, common.ErrInvalidIdentifier):
			fmt.Fprintln(a.out, "Registration failed: identifier must not be empty")
		case errors.Is(err, common.ErrEmptyPassword):
			fmt.Fprintln(a.out, "Registration failed: password must not be empty")
		default:
			fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Registered %q\n", identifier)
	return nil
}
