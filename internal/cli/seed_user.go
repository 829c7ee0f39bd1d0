package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thanhmai/journal/internal/auth"
	"github.com/thanhmai/journal/internal/config"
	"github.com/thanhmai/journal/internal/entities"
)

// SeedUserCommand creates an account directly in the user file. Admin
// accounts can only be created this way; registration always grants the
// plain "user" role.
type SeedUserCommand struct {
	UsersFile  string
	Username   string
	Password   string
	Role       string
	BcryptCost int
}

func NewSeedUserCommand() *SeedUserCommand {
	return &SeedUserCommand{}
}

func (cmd *SeedUserCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed-user", flag.ExitOnError)

	fs.StringVar(&cmd.UsersFile, "users", filepath.Join(config.DefaultDataDir, "users.json"), "Path to the user file")
	fs.StringVar(&cmd.Username, "username", "", "Username for the new account (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password for the new account (required)")
	fs.StringVar(&cmd.Role, "role", "user", "Role for the new account: admin or user")
	fs.IntVar(&cmd.BcryptCost, "bcrypt-cost", 12, "bcrypt cost factor for the stored hash")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed-user [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create an account directly in the user file, bypassing the API.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seed-user -username alice -password secret -role admin\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Username == "" || cmd.Password == "" {
		fs.Usage()
		return fmt.Errorf("username and password are required")
	}

	role := entities.UserRole(cmd.Role)
	if role != entities.UserRoleAdmin && role != entities.UserRoleUser {
		return fmt.Errorf("invalid role %q: must be admin or user", cmd.Role)
	}

	return nil
}

func (cmd *SeedUserCommand) Run() error {
	users, err := auth.NewUserStore(cmd.UsersFile)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(cmd.Password, cmd.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.User{
		Username:     cmd.Username,
		PasswordHash: hash,
		Role:         entities.UserRole(cmd.Role),
	}
	if err := users.Append(user); err != nil {
		return err
	}

	fmt.Printf("Created %s account %q in %s\n", cmd.Role, cmd.Username, cmd.UsersFile)
	return nil
}
