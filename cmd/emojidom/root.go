package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/emojidom"
	"github.com/gogpu/emojidom/assets"
)

const envPrefix = "EMOJIDOM"

// app carries the configuration shared by every subcommand.
type app struct {
	v   *viper.Viper
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: emojidom.Logger()}

	root := &cobra.Command{
		Use:           "emojidom",
		Short:         "Replace emoji in HTML with image elements",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (yaml, toml or json)")
	pf.String("env-file", ".env", "dotenv file loaded before reading the environment")
	pf.String("base", "/png/", "image address prefix")
	pf.String("assets", "", "directory of emoji_u*.png files")
	pf.String("font", "", "CBDT color emoji font to render assets from")
	pf.Int("ppem", assets.DefaultPPEM, "bitmap strike size to read from the font")
	pf.Int("size", 0, "rescale font bitmaps to this many pixels (0 keeps the strike size)")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	_ = a.v.BindPFlags(pf)

	root.AddCommand(
		newRewriteCmd(a),
		newResolveCmd(a),
		newInspectCmd(a),
		newServeCmd(a),
	)
	return root
}

// init loads the dotenv and config files and configures logging.
func (a *app) init(cmd *cobra.Command) error {
	if f := a.v.GetString("env-file"); f != "" {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if f := a.v.GetString("config"); f != "" {
		a.v.SetConfigFile(f)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	emojidom.SetLogger(a.log)
	return nil
}

// store builds the asset store from --assets and --font. It returns nil
// when neither is set.
func (a *app) store() (assets.Store, error) {
	var chain assets.Chain
	if dir := a.v.GetString("assets"); dir != "" {
		chain = append(chain, assets.NewFS(os.DirFS(dir)))
	}
	if path := a.v.GetString("font"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		fonts, err := assets.NewFontStore(data,
			assets.WithPPEM(a.v.GetInt("ppem")),
			assets.WithSize(a.v.GetInt("size")),
			assets.WithFontLogger(a.log),
		)
		switch {
		case errors.Is(err, assets.ErrNoBitmaps):
			a.log.Warn("font has no color bitmaps, ignoring it", "font", path)
		case err != nil:
			return nil, err
		default:
			a.log.Info("font loaded", "font", path, "strikes", fonts.Sizes())
			chain = append(chain, fonts)
		}
	}
	switch len(chain) {
	case 0:
		return nil, nil
	case 1:
		return chain[0], nil
	}
	return chain, nil
}
