package main

import (
	"bufio"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/Sheddybata/sdp.app/internal/config"
	"github.com/Sheddybata/sdp.app/internal/geo"
	"github.com/Sheddybata/sdp.app/internal/shared/database"
)

const minSecretBytes = 32

var errEmptyPassword = errors.New("password is empty")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portalctl",
		Short:        "Operator tasks for the SDP member portal",
		SilenceUsage: true,
	}

	root.AddCommand(
		newHashPasswordCmd(),
		newGenSecretCmd(),
		newMigrateCmd(),
		newGeoCmd(),
	)
	return root
}

func newHashPasswordCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Long: `Hashes the admin password with bcrypt. The password is read from the
first argument, or from the first line of stdin when no argument is given.
Surrounding whitespace is trimmed, matching how the login form is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return err
		},
	}

	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost factor")
	return cmd
}

func readPassword(in io.Reader, args []string) (string, error) {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		password = line
	}

	password = strings.TrimSpace(password)
	if password == "" {
		return "", errEmptyPassword
	}
	return password, nil
}

func newGenSecretCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "gen-secret",
		Short: "Print a random secret for SESSION_SECRET or CARD_TOKEN_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size < minSecretBytes {
				return fmt.Errorf("--bytes must be at least %d", minSecretBytes)
			}
			buf := make([]byte, size)
			if _, err := rand.Read(buf); err != nil {
				return fmt.Errorf("generate secret: %w", err)
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), base64.RawURLEncoding.EncodeToString(buf))
			return err
		},
	}

	cmd.Flags().IntVar(&size, "bytes", minSecretBytes, "number of random bytes")
	return cmd
}

func newMigrateCmd() *cobra.Command {
	var env string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and indexes without dropping data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(env)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := database.New(cfg)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer func() {
				if err := db.Close(); err != nil {
					slog.Error("close database", "error", err)
				}
			}()

			if err := database.AutoMigrate(db.DB); err != nil {
				return err
			}
			slog.Info("migration completed", "driver", cfg.Database.Driver, "env", env)
			return nil
		},
	}

	cmd.Flags().StringVar(&env, "env", "local", "Environment (local|dev|production)")
	return cmd
}

func newGeoCmd() *cobra.Command {
	geoCmd := &cobra.Command{
		Use:   "geo",
		Short: "Inspect the state / LGA / ward dataset",
	}

	var (
		file string
		out  string
	)
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the resolved geography as a YAML ward extract",
		Long: `Resolves the geography the server would load (the --file dataset, then the
embedded dataset, then the built-in sample) and writes it in the extract
format accepted by GEO_DATA_FILE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dataset := geo.Resolve(cmd.Context(), geo.DefaultSources(file)...)

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			if err := writeExtract(w, dataset); err != nil {
				return err
			}
			slog.Info("geography exported", "source", dataset.Source(), "states", len(dataset.States()))
			return nil
		},
	}
	export.Flags().StringVar(&file, "file", "", "YAML or JSON ward extract to load first")
	export.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	geoCmd.AddCommand(export)
	return geoCmd
}

func writeExtract(w io.Writer, dataset *geo.Dataset) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(geo.ToExtract(dataset.States())); err != nil {
		return fmt.Errorf("encode extract: %w", err)
	}
	return enc.Close()
}
