package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pwkeeper/internal/common"
	"github.com/dmitrijs2005/pwkeeper/internal/repositories/credentials"
	"github.com/dmitrijs2005/pwkeeper/internal/services"
)

type demoLogin struct {
	identifier string
	password   string
	want       bool
}

var (
	demoUsers = []demoLogin{
		{identifier: "alice", password: "SecurePassword123!"},
		{identifier: "bob", password: "MyStrongPass456@"},
	}

	demoLogins = []demoLogin{
		{identifier: "alice", password: "SecurePassword123!", want: true},
		{identifier: "alice", password: "WrongPassword", want: false},
		{identifier: "bob", password: "MyStrongPass456@", want: true},
		{identifier: "charlie", password: "AnyPassword", want: false},
	}
)

// errDemoMismatch marks a demo step whose outcome differed from the expected one.
var errDemoMismatch = errors.New("demo: unexpected outcome")

// Demo runs a scripted walk-through on a fresh in-memory store, leaving the
// configured store untouched.
func (a *App) Demo(ctx context.Context) error {
	svc := services.NewCredentialService(credentials.NewMemoryRepository(), a.hasher, a.logger.With("scenario", "demo"))

	fmt.Fprintln(a.out, "== Registering users")
	for _, u := range demoUsers {
		if err := svc.Register(ctx, u.identifier, []byte(u.password)); err != nil {
			fmt.Fprintf(a.out, "  %s: error: %v\n", u.identifier, err)
			return err
		}
		fmt.Fprintf(a.out, "  %s: registered\n", u.identifier)
	}

	fmt.Fprintln(a.out, "== Registering a duplicate")
	err := svc.Register(ctx, "alice", []byte("AnotherPassword"))
	if !errors.Is(err, common.ErrDuplicateIdentifier) {
		fmt.Fprintf(a.out, "  alice: expected a duplicate error, got %v\n", err)
		return errDemoMismatch
	}
	fmt.Fprintln(a.out, "  alice: rejected, already registered")

	fmt.Fprintln(a.out, "== Stored credential")
	info, err := svc.Info(ctx, "alice")
	if err != nil {
		fmt.Fprintf(a.out, "  error: %v\n", err)
		return err
	}
	printInfo(a.out, info)

	fmt.Fprintln(a.out, "== Logging in")
	for _, l := range demoLogins {
		ok, err := svc.Authenticate(ctx, l.identifier, []byte(l.password))
		if err != nil && !errors.Is(err, common.ErrUnknownIdentifier) {
			fmt.Fprintf(a.out, "  %s: error: %v\n", l.identifier, err)
			return err
		}
		result := "rejected"
		if ok {
			result = "accepted"
		}
		fmt.Fprintf(a.out, "  %-8s %-20q %s\n", l.identifier, l.password, result)
		if ok != l.want {
			return errDemoMismatch
		}
	}

	fmt.Fprintln(a.out, "== Same password, two derivations")
	password := []byte("SamePassword")
	first, err := a.hasher.Derive(password, 0)
	if err != nil {
		fmt.Fprintf(a.out, "  error: %v\n", err)
		return err
	}
	second, err := a.hasher.Derive(password, 0)
	if err != nil {
		fmt.Fprintf(a.out, "  error: %v\n", err)
		return err
	}
	fmt.Fprintf(a.out, "  hash 1: %s\n", common.HexPreview(first.Hash, common.PreviewLength))
	fmt.Fprintf(a.out, "  hash 2: %s\n", common.HexPreview(second.Hash, common.PreviewLength))
	differ := !bytes.Equal(first.Hash, second.Hash)
	fmt.Fprintf(a.out, "  hashes differ: %t\n", differ)
	if !differ {
		return errDemoMismatch
	}

	return nil
}
