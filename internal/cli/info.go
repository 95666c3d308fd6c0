package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/pwkeeper/internal/common"
	"github.com/dmitrijs2005/pwkeeper/internal/services"
)

func (a *App) Info(ctx context.Context, args []string) error {
	identifier, err := a.identifierArg(args)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	info, err := a.service.Info(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrUnknownIdentifier) {
			fmt.Fprintf(a.out, "%q is not registered\n", identifier)
		} else {
			fmt.Fprintf(a.out, "error: %v\n", err)
		}
		return err
	}

	printInfo(a.out, info)
	return nil
}

func printInfo(w io.Writer, info *services.CredentialInfo) {
	fmt.Fprintf(w, "Identifier: %s\n", info.Identifier)
	fmt.Fprintf(w, "  Iterations: %d\n", info.Iterations)
	fmt.Fprintf(w, "  Salt (%d bytes): %s\n", info.SaltLength, info.SaltPreview)
	fmt.Fprintf(w, "  Hash (%d bytes): %s\n", info.HashLength, info.HashPreview)
	fmt.Fprintf(w, "  Created: %s\n", info.CreatedAt.Format(time.RFC3339))
}
