package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xll-gen/tilerect/internal/templates"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Scaffold a directory with a config, an example polygon and a suite",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInit(args[0], os.Stdout); err != nil {
			fmt.Printf("Error initializing %s: %v\n", args[0], err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

var scaffold = []struct {
	tmpl string
	dest string
}{
	{"tilerect.yaml.tmpl", "tilerect.yaml"},
	{"polygon.txt.tmpl", "polygon.txt"},
	{"suite.yaml.tmpl", "suite.yaml"},
}

// runInit creates dir and writes the scaffold files into it.
// It fails if dir already exists.
func runInit(dir string, w io.Writer) error {
	fmt.Fprintf(w, "Initializing %s...\n", dir)

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		return fmt.Errorf("directory %s already exists", dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data := templates.Project{Name: filepath.Base(dir)}
	for _, f := range scaffold {
		if err := generateFileFromTemplate(f.tmpl, filepath.Join(dir, f.dest), data); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "%s initialized successfully!\n", dir)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  cd %s\n", dir)
	fmt.Fprintln(w, "  tilerect check polygon.txt")
	fmt.Fprintln(w, "  tilerect solve polygon.txt")
	fmt.Fprintln(w, "  tilerect regtest")
	return nil
}

// generateFileFromTemplate renders tmplName with data into destPath.
func generateFileFromTemplate(tmplName, destPath string, data any) error {
	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return templates.Execute(f, tmplName, data)
}
