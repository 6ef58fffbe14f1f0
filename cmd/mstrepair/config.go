package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MSTREPAIR"

// Config holds every demo setting. Sources, lowest precedence first:
// defaults, config file, MSTREPAIR_* environment, flags.
type Config struct {
	Graph   GraphConfig  `mapstructure:"graph"`
	Log     LogConfig    `mapstructure:"log"`
	MST     MSTConfig    `mapstructure:"mst"`
	Remove  RemoveConfig `mapstructure:"remove"`
	Metrics bool         `mapstructure:"metrics"`
}

// GraphConfig selects the input graph: the fixed sample or a seeded random
// connected graph of Vertices vertices plus Extra edges weighted in [1, MaxWeight].
type GraphConfig struct {
	Kind      string `mapstructure:"kind"       validate:"oneof=sample random"`
	Vertices  int    `mapstructure:"vertices"   validate:"min=2"`
	Extra     int    `mapstructure:"extra"      validate:"min=0"`
	Seed      int64  `mapstructure:"seed"`
	MaxWeight int64  `mapstructure:"max_weight" validate:"min=1"`
}

// LogConfig selects logrus level and formatter.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// MSTConfig selects the tree builder.
type MSTConfig struct {
	Method    string `mapstructure:"method"    validate:"oneof=kruskal prim"`
	Root      int    `mapstructure:"root"      validate:"min=0"`
	Traversal string `mapstructure:"traversal" validate:"oneof=dfs bfs"`
}

// RemoveConfig picks the tree edge to cut: by index when Index >= 0,
// otherwise the first tree edge of weight Weight.
type RemoveConfig struct {
	Index  int   `mapstructure:"index"  validate:"min=-1"`
	Weight int64 `mapstructure:"weight" validate:"min=0"`
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"graph":         "graph.kind",
	"vertices":      "graph.vertices",
	"extra":         "graph.extra",
	"seed":          "graph.seed",
	"max-weight":    "graph.max_weight",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"method":        "mst.method",
	"root":          "mst.root",
	"traversal":     "mst.traversal",
	"remove-index":  "remove.index",
	"remove-weight": "remove.weight",
	"metrics":       "metrics",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("graph.kind", "sample")
	v.SetDefault("graph.vertices", 8)
	v.SetDefault("graph.extra", 8)
	v.SetDefault("graph.seed", 1)
	v.SetDefault("graph.max_weight", 20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("mst.method", "kruskal")
	v.SetDefault("mst.root", 0)
	v.SetDefault("mst.traversal", "dfs")
	v.SetDefault("remove.index", -1)
	v.SetDefault("remove.weight", 3)
	v.SetDefault("metrics", false)
}

// registerFlags declares the flags bound by loadConfig.
func registerFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (yaml, toml or json)")
	fs.String("graph", "sample", "input graph: sample or random")
	fs.Int("vertices", 8, "vertex count of the random graph")
	fs.Int("extra", 8, "edges added to the random graph beyond its spanning tree")
	fs.Int64("seed", 1, "random graph seed")
	fs.Int64("max-weight", 20, "largest random edge weight")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	fs.String("log-format", "text", "log format: text or json")
	fs.String("method", "kruskal", "MST builder: kruskal or prim")
	fs.Int("root", 0, "start vertex for prim")
	fs.String("traversal", "dfs", "component walk: dfs or bfs")
	fs.Int("remove-index", -1, "tree index of the edge to remove (-1: select by --remove-weight)")
	fs.Int64("remove-weight", 3, "weight of the tree edge to remove when --remove-index is -1")
	fs.Bool("metrics", false, "print collected metrics after the run")
}

// loadConfig merges defaults, the optional config file, environment and fs into a validated Config.
func loadConfig(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %q: %w", name, err)
			}
		}
	}

	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// newLogger builds the logrus logger described by cfg.
func newLogger(cfg LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetLevel(level)
	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return l, nil
}
