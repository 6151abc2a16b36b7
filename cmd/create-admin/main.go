// Command create-admin manages admin panel credentials stored in a .env file.
//
// Usage:
//
//	create-admin [-env path] [add|list|check|remove]
//
// Credentials are kept as a JSON map of username to bcrypt hash under
// ADMIN_CREDENTIALS. A legacy ADMIN_USERNAME/ADMIN_PASSWORD_HASH pair is
// folded into the map on the first write.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Kousthubh02/Chillar/internal/auth"
	"github.com/Kousthubh02/Chillar/internal/config"
)

var errCancelled = errors.New("cancelled")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errCancelled) {
			fmt.Println("Setup cancelled.")
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out io.Writer) error {
	flags := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	flags.SetOutput(out)
	envPath := flags.String("env", ".env", "path of the .env file to update")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cmd := "add"
	if flags.NArg() > 0 {
		cmd = strings.ToLower(flags.Arg(0))
	}

	vars, err := readEnv(*envPath)
	if err != nil {
		return err
	}
	admins, err := config.ParseAdminCredentials(vars["ADMIN_CREDENTIALS"], vars["ADMIN_USERNAME"], vars["ADMIN_PASSWORD_HASH"])
	if err != nil {
		return err
	}

	p := &prompter{in: bufio.NewScanner(in), out: out}
	switch cmd {
	case "add":
		return addAdmin(p, *envPath, vars, admins)
	case "list", "check":
		listAdmins(out, admins)
		return nil
	case "remove":
		return removeAdmin(p, *envPath, vars, admins)
	default:
		return fmt.Errorf("unknown command %q (want add, list, check or remove)", cmd)
	}
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// ask prints question and returns the trimmed answer
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errCancelled
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func addAdmin(p *prompter, path string, vars, admins map[string]string) error {
	fmt.Fprintln(p.out, "=== Chillar Admin Setup ===")
	if len(admins) > 0 {
		listAdmins(p.out, admins)
	}

	var username string
	for {
		name, err := p.ask("Enter admin name: ")
		if err != nil {
			return err
		}
		if name == "" {
			fmt.Fprintln(p.out, "Admin name cannot be empty.")
			continue
		}
		if _, exists := admins[name]; !exists {
			username = name
			break
		}

		choice, err := p.ask(fmt.Sprintf("Admin %q already exists. (u)pdate password, (c)hoose different name, or (q)uit? [u/c/q]: ", name))
		if err != nil {
			return err
		}
		switch strings.ToLower(choice) {
		case "u", "update":
			username = name
		case "q", "quit":
			return errCancelled
		}
		if username != "" {
			break
		}
	}

	password, err := p.ask("Enter admin password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return errors.New("password cannot be empty")
	}
	confirm, err := p.ask("Confirm admin password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	hash, err := auth.HashPIN(password)
	if err != nil {
		return err
	}
	admins[username] = hash
	if err := saveAdmins(path, vars, admins); err != nil {
		return err
	}

	fmt.Fprintf(p.out, "Admin %q saved. Total admins: %d\n", username, len(admins))
	fmt.Fprintln(p.out, "Restart the server to load the new credentials.")
	return nil
}

func removeAdmin(p *prompter, path string, vars, admins map[string]string) error {
	if len(admins) == 0 {
		fmt.Fprintln(p.out, "No admin credentials found.")
		return nil
	}
	listAdmins(p.out, admins)

	username, err := p.ask("Enter admin name to remove: ")
	if err != nil {
		return err
	}
	if _, ok := admins[username]; !ok {
		return fmt.Errorf("admin %q not found", username)
	}

	if len(admins) == 1 {
		confirm, err := p.ask("This is the last admin user. Remove it anyway? [y/N]: ")
		if err != nil {
			return err
		}
		if c := strings.ToLower(confirm); c != "y" && c != "yes" {
			return errCancelled
		}
	}

	delete(admins, username)
	if err := saveAdmins(path, vars, admins); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Admin %q removed. Remaining admins: %d\n", username, len(admins))
	return nil
}

func listAdmins(out io.Writer, admins map[string]string) {
	if len(admins) == 0 {
		fmt.Fprintln(out, "No admin credentials found.")
		return
	}

	names := make([]string, 0, len(admins))
	for name := range admins {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "Configured admin users:")
	for i, name := range names {
		fmt.Fprintf(out, "  %d. %s\n", i+1, name)
	}
	fmt.Fprintf(out, "Total: %d admin(s)\n", len(names))
}

// readEnv loads path; a missing file is an empty environment
func readEnv(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return vars, nil
}

// saveAdmins replaces every admin entry with the JSON map and rewrites path
func saveAdmins(path string, vars, admins map[string]string) error {
	encoded, err := json.Marshal(admins)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	delete(vars, "ADMIN_USERNAME")
	delete(vars, "ADMIN_PASSWORD_HASH")
	vars["ADMIN_CREDENTIALS"] = string(encoded)

	if err := godotenv.Write(vars, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
