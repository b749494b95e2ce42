package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"catalogue/app"
	"catalogue/config"
	"catalogue/logging"
)

// rootOptions 全局参数
type rootOptions struct {
	configFile string
	envFiles   []string
	grants     []string
	subject    string
	logLevel   string
	seed       bool

	out io.Writer
}

// NewRootCmd 创建命令树；out 为结果输出目标
func NewRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{out: out}
	cmd := &cobra.Command{
		Use:   "catalogue",
		Short: "Query the product catalogue",
		Long: `catalogue runs lookups and filtered list queries against the catalogue
views (categories, manufacturers, products, reviews) and prints JSON.

Inactive records are only visible with the matching VIEW_INACTIVE_* grant.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "YAML config file")
	flags.StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files loaded before reading the environment (default .env)")
	flags.StringSliceVar(&opts.grants, "grant", nil, "permission granted to the caller (static auth backend)")
	flags.StringVar(&opts.subject, "subject", "", "caller identity used by the redis auth backend")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug|info|warn|error)")
	flags.BoolVar(&opts.seed, "seed", false, "load the demo catalogue into the database before querying")

	cmd.AddCommand(newCategoryCmd(opts))
	cmd.AddCommand(newManufacturerCmd(opts))
	cmd.AddCommand(newProductCmd(opts))
	cmd.AddCommand(newReviewCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// loadConfig 读取配置并叠加命令行参数
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(o.envFiles...); err != nil {
		return nil, err
	}
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}
	if len(o.grants) > 0 {
		cfg.Auth.Grants = append(cfg.Auth.Grants, o.grants...)
	}
	if o.subject != "" {
		cfg.Auth.Subject = o.subject
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.seed {
		cfg.Database.Seed = true
	}
	return cfg, cfg.Validate()
}

// run 装配查询层并执行 fn，结果以 JSON 输出
func (o *rootOptions) run(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) (any, error)) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	ctx := logging.WithRequestID(cmd.Context(), uuid.NewString())

	a, err := app.New(ctx, cfg, app.WithLogOutput(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	defer a.Close()
	logging.SetLogger(a.Logger)

	result, err := fn(a.Context(ctx), a)
	if err != nil {
		a.Logger.Debug(ctx, "query failed", logging.Error(err))
		return err
	}
	return o.print(result)
}

func (o *rootOptions) print(v any) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
