package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/glabrego/keepass-cli/internal/app"
	"github.com/glabrego/keepass-cli/internal/audit"
	"github.com/glabrego/keepass-cli/internal/config"
	"github.com/glabrego/keepass-cli/internal/tui"
	tuitheme "github.com/glabrego/keepass-cli/internal/tui/theme"
	"github.com/glabrego/keepass-cli/internal/vault"
)

const exitInterrupted = 130

var flags struct {
	keyFile  string
	password string
	auditDB  string
	logLevel string
	pageSize int
}

var rootCmd = &cobra.Command{
	Use:   "kpcli <database> [entry-title]",
	Short: "Browse a KeePass database in the terminal",
	Long: `Browse the groups and entries of a KeePass (.kdbx) database.

With an entry title, print every entry with exactly that title instead of
browsing. Searching needs the password up front (-p or KPCLI_PASSWORD).`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.keyFile, "keyfile", "k", "", "keyfile used to unlock the database")
	pf.StringVarP(&flags.password, "password", "p", "", "database password (prompted when omitted)")
	pf.StringVar(&flags.auditDB, "audit-db", "", "sqlite file that records viewed entries")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.IntVar(&flags.pageSize, "page-size", 0, "rows shown per menu, 0 shows all")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, tui.ErrInterrupted) {
			os.Exit(exitInterrupted)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig resolves the file and environment settings and applies any
// flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}

	set := cmd.Flags().Changed
	if set("keyfile") {
		cfg.KeyFile = flags.keyFile
	}
	if set("password") {
		password := flags.password
		cfg.Password = &password
	}
	if set("audit-db") {
		cfg.AuditDB = flags.auditDB
	}
	if set("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if set("page-size") {
		cfg.PageSize = flags.pageSize
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = lvl
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger init error: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	dbPath := args[0]
	title := ""
	search := len(args) == 2
	if search {
		title = args[1]
		if !cfg.HasPassword() {
			return errors.New("searching by entry title needs a password from -p or KPCLI_PASSWORD")
		}
	}

	u := unlocker{
		open:         vault.OpenFile,
		readPassword: terminalPassword(os.Stderr),
		logger:       sugar,
	}
	tree, err := u.unlock(dbPath, cfg.Password, cfg.KeyFile, cfg.PasswordAttempts)
	if err != nil {
		return err
	}
	sugar.Infow("database opened", "path", dbPath, "nodes", tree.Len())

	opts := app.Options{
		Out:      cmd.OutOrStdout(),
		Theme:    tuitheme.Default(),
		Logger:   sugar,
		Session:  uuid.NewString(),
		Database: absPath(dbPath),
	}

	if cfg.AuditDB != "" {
		repo, err := openAudit(cmd.Context(), cfg.AuditDB)
		if err != nil {
			return err
		}
		defer repo.Close()
		opts.Recorder = repo
	}

	service := app.NewService(tui.NewPrompter(os.Stdin, cmd.OutOrStdout(), cfg.PageSize), opts)
	if search {
		return service.RunSearch(cmd.Context(), tree, title)
	}
	return service.RunInteractive(cmd.Context(), tree)
}

func openAudit(ctx context.Context, path string) (*audit.Repository, error) {
	repo, err := audit.NewRepository(path)
	if err != nil {
		return nil, fmt.Errorf("audit init error: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := repo.Init(ctx); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("audit schema error: %w", err)
	}
	if err := repo.CheckWritable(ctx); err != nil {
		_ = repo.Close()
		return nil, fmt.Errorf("audit write check failed (%v); verify the audit db is writable: %s", err, path)
	}
	return repo, nil
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
