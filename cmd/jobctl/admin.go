package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/sadhna1118/job-portal-website/internal/database"
	"github.com/sadhna1118/job-portal-website/internal/model"
	"github.com/sadhna1118/job-portal-website/internal/utilities"
)

var errPasswordMismatch = errors.New("passwords do not match")

func createAdminCmd() *cobra.Command {
	var email, username string
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		Long:  "Create an admin account. The password is read from standard input twice.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("Generating admin account"))
			admin, err := createAdmin(db.WithContext(cmd.Context()), cmd.InOrStdin(), out, email, username)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("Admin %s (%s) created with id %d", admin.Username, admin.Email, admin.ID)))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email (prompted when empty)")
	cmd.Flags().StringVar(&username, "username", "", "admin username (prompted when empty)")
	return cmd
}

func prompt(r *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, labelStyle.Render(label))
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// createAdmin prompts for missing fields and a confirmed password, then inserts the account.
func createAdmin(db *gorm.DB, in io.Reader, out io.Writer, email, username string) (model.User, error) {
	r := bufio.NewReader(in)
	var err error
	if email == "" {
		if email, err = prompt(r, out, "Email: "); err != nil {
			return model.User{}, err
		}
	}
	if username == "" {
		if username, err = prompt(r, out, "Username: "); err != nil {
			return model.User{}, err
		}
	}
	password, err := prompt(r, out, "Password: ")
	if err != nil {
		return model.User{}, err
	}
	again, err := prompt(r, out, "Confirm password: ")
	if err != nil {
		return model.User{}, err
	}
	if password != again {
		return model.User{}, errPasswordMismatch
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || username == "" {
		return model.User{}, utilities.ValidationErrors{"Email and username are required"}
	}
	if exists, err := database.EmailExists(db, email); err != nil {
		return model.User{}, err
	} else if exists {
		return model.User{}, utilities.ErrEmailTaken
	}
	if exists, err := database.UsernameExists(db, username); err != nil {
		return model.User{}, err
	} else if exists {
		return model.User{}, utilities.ErrUsernameTaken
	}
	return utilities.CreateAdmin(db, email, username, password)
}
