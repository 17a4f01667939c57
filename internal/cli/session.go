package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/atelier/internal/wire"
)

// PasswordEnv is read when --password is not given.
const PasswordEnv = "ATELIER_PASSWORD"

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the marketplace",
		Long: `Log in and store the session locally.

The password is taken from --password, then $ATELIER_PASSWORD, then read from stdin.

Examples:
  atelier login --email ben@example.com
  ATELIER_PASSWORD=secret atelier login --email ben@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = os.Getenv(PasswordEnv)
			}
			if password == "" {
				var err error
				password, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
			}
			_, err := wire.SessionAdapter().Login(context.Background(), email, password)
			return err
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password")

	return cmd
}

// LogoutCmd returns the logout command
func LogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.SessionAdapter().Logout(context.Background())
		},
	}
}

// WhoAmICmd returns the whoami command
func WhoAmICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.SessionAdapter().WhoAmI(context.Background())
			return err
		},
	}
}

func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Password: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
