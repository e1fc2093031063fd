// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

// CommonFlags are accepted by every command.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,,'YAML configuration file'"`
	Output string `subcmd:"output,,'output format: text or yaml, overrides the configuration file'"`
}

type offsetFlags struct {
	CommonFlags
	Years  uint64 `subcmd:"years,0,'number of years'"`
	Months uint64 `subcmd:"months,0,'number of months'"`
	Weeks  uint64 `subcmd:"weeks,0,'number of weeks'"`
	Days   uint64 `subcmd:"days,0,'number of days'"`
}

type spanFlags struct {
	CommonFlags
	Sorted bool `subcmd:"sorted,false,'also list all of the dates in order'"`
}

// Config represents the contents of the file named by --config.
//
//	logging:
//	  level: 3
//	  format: text
//	output: yaml
type Config struct {
	Logging cmdutil.LoggingConfig `yaml:"logging"`
	Output  string                `yaml:"output"`
}

// merge overlays the values set on the command line onto cfg.
func (cfg Config) merge(cf *CommonFlags) Config {
	lf := cf.LoggingFlags
	if lf.Level != 0 {
		cfg.Logging.Level = lf.Level
	}
	if len(lf.File) > 0 {
		cfg.Logging.File = lf.File
	}
	if len(cfg.Logging.Format) == 0 {
		cfg.Logging.Format = lf.Format
	}
	if lf.SourceCode {
		cfg.Logging.SourceCode = true
	}
	if len(cf.Output) > 0 {
		cfg.Output = cf.Output
	}
	if len(cfg.Output) == 0 {
		cfg.Output = "text"
	}
	return cfg
}

func loadConfig(cf *CommonFlags) (Config, error) {
	var cfg Config
	if len(cf.Config) > 0 {
		if err := cmdutil.ParseYAMLConfigFile(cf.Config, &cfg); err != nil {
			return Config{}, err
		}
	}
	cfg = cfg.merge(cf)
	switch cfg.Output {
	case "text", "yaml":
	default:
		return Config{}, fmt.Errorf("unsupported output format %q: must be text or yaml", cfg.Output)
	}
	return cfg, nil
}

type app struct {
	out io.Writer
}

// setup loads the configuration and returns a context carrying the
// configured logger and a printer for the requested output format.
func (a *app) setup(ctx context.Context, cf *CommonFlags) (context.Context, *printer, func(), error) {
	cfg, err := loadConfig(cf)
	if err != nil {
		return ctx, nil, nil, err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return ctx, nil, nil, err
	}
	ctx = ctxlog.Context(ctx, logger.Logger)
	return ctx, &printer{out: a.out, format: cfg.Output}, func() { logger.Close() }, nil
}

type result interface {
	text() string
}

type printer struct {
	out    io.Writer
	format string
}

// print writes results as one line each, or as a single YAML sequence.
func (p *printer) print(results ...result) error {
	if p.format == "yaml" {
		buf, err := yaml.Marshal(results)
		if err != nil {
			return err
		}
		_, err = p.out.Write(buf)
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(p.out, r.text()); err != nil {
			return err
		}
	}
	return nil
}
