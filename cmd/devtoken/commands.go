package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"cash-track/auth"
)

// envFile is the dotenv file consulted for JWT_SECRET.
var envFile = ".env"

// secret resolves the signing key from the flag, then JWT_SECRET (a
// .env file is honoured).
func secret(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("load %s: %w", envFile, err)
	}
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s, nil
	}
	return "", errors.New("no secret: pass -secret or set JWT_SECRET")
}

type issueCmd struct {
	secret string
	issuer string
	uid    string
	email  string
	ttl    time.Duration
	out    io.Writer
}

func (*issueCmd) Name() string     { return "issue" }
func (*issueCmd) Synopsis() string { return "print a signed token for a user" }
func (*issueCmd) Usage() string {
	return `devtoken issue -uid <user> [-email <email>] [-ttl 24h] [-secret <key>] [-issuer <iss>]

  Prints an HS256 token accepted by the API's verifier.
`
}

func (c *issueCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.secret, "secret", "", "Signing secret (defaults to JWT_SECRET)")
	f.StringVar(&c.issuer, "issuer", os.Getenv("JWT_ISSUER"), "Token issuer")
	f.StringVar(&c.uid, "uid", "", "User id carried by the token")
	f.StringVar(&c.email, "email", "", "Email carried by the token")
	f.DurationVar(&c.ttl, "ttl", 24*time.Hour, "Token lifetime")
}

func (c *issueCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	if c.uid == "" {
		fmt.Fprintln(os.Stderr, "Error: -uid is required")
		return subcommands.ExitUsageError
	}
	key, err := secret(c.secret)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	token, err := auth.IssueToken(key, c.issuer, auth.Identity{UserID: c.uid, Email: c.email}, c.ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(out, token)
	return subcommands.ExitSuccess
}

type verifyCmd struct {
	secret string
	issuer string
	out    io.Writer
}

func (*verifyCmd) Name() string     { return "verify" }
func (*verifyCmd) Synopsis() string { return "check a token and print its identity" }
func (*verifyCmd) Usage() string {
	return `devtoken verify [-secret <key>] [-issuer <iss>] <token>
`
}

func (c *verifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.secret, "secret", "", "Signing secret (defaults to JWT_SECRET)")
	f.StringVar(&c.issuer, "issuer", os.Getenv("JWT_ISSUER"), "Expected issuer")
}

func (c *verifyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out := c.out
	if out == nil {
		out = os.Stdout
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one token")
		return subcommands.ExitUsageError
	}
	key, err := secret(c.secret)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	id, err := auth.NewJWTVerifier(key, c.issuer).Verify(ctx, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := json.NewEncoder(out).Encode(id); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
