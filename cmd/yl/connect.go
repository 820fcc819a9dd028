package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zulandar/yardline/internal/config"
	"github.com/zulandar/yardline/internal/db"
	"golang.org/x/term"
	"gorm.io/gorm"
)

const defaultConfigPath = "yardline.yaml"

// connectFromConfig loads the config and opens the store it names.
func connectFromConfig(configPath string) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %s: %w", storeLabel(cfg.Database), err)
	}

	return cfg, gormDB, nil
}

// storeLabel names the configured store for humans.
func storeLabel(d config.DatabaseConfig) string {
	if d.Driver == config.DriverMySQL {
		return fmt.Sprintf("mysql %s:%d/%s", d.Host, d.Port, d.Name)
	}
	return "sqlite " + d.Path
}

// confirm prints prompt and reads a "yes" from the command's input. A real
// stdin that is not a terminal cannot answer, so it is refused outright.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return false, fmt.Errorf("stdin is not a terminal; pass --yes to confirm")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, prompt)
	fmt.Fprintln(out, "This action cannot be undone.")
	fmt.Fprint(out, "Type \"yes\" to confirm: ")
	return readYes(in), nil
}

func readYes(in io.Reader) bool {
	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()) == "yes"
	}
	return false
}
