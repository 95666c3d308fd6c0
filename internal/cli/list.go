package cli

import (
	"context"
	"fmt"
)

func (a *App) List(ctx context.Context) error {
	ids, err := a.service.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	if len(ids) == 0 {
		fmt.Fprintln(a.out, "No identifiers registered")
		return nil
	}

	for i, id := range ids {
		fmt.Fprintf(a.out, "%3d. %s\n", i+1, id)
	}
	return nil
}
