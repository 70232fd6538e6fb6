package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/wavekit/wave-nodes-http/internal/app"
	"github.com/wavekit/wave-nodes-http/internal/config"
	"github.com/wavekit/wave-nodes-http/internal/logger"
	"github.com/wavekit/wave-nodes-http/pkg/httpclient"
	"github.com/wavekit/wave-nodes-http/pkg/nodes"
)

var runCmd = &cobra.Command{
	Use:   "run [node]",
	Short: "Execute a catalog node with the given inputs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		log, err := logger.Init(cfg)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Close()

		logger.InfoObj("wavenode starting", "config", cfg)

		cat := nodes.CatalogWithClient(func(opts httpclient.Options) httpclient.Client {
			if opts.UserAgent == "" {
				opts.UserAgent = cfg.UserAgent
			}
			return httpclient.NewRestyClient(opts)
		})

		entry, ok := cat.Lookup(args[0])
		if !ok {
			return fmt.Errorf("no node named %q in catalog", args[0])
		}
		spec := entry.New().Spec()

		values := map[string]any{}
		inputsFile := strings.TrimSpace(viper.GetViper().GetString("inputs"))
		if inputsFile == "" {
			inputsFile = cfg.InputsFile
		}
		if inputsFile != "" {
			values, err = app.LoadValues(inputsFile)
			if err != nil {
				return fmt.Errorf("load inputs: %w", err)
			}
		}

		overrides, _ := cmd.Flags().GetStringArray("set")
		for _, raw := range overrides {
			name, val, parseErr := app.ParseOverride(spec, raw)
			if parseErr != nil {
				return parseErr
			}
			values[name] = val
		}
		logger.DebugObj("inputs resolved", "inputs", values)

		runner, err := app.NewRunner(cat, log)
		if err != nil {
			logger.ErrorObj("failed to initialize runner", "error", err)
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ctx, cancel := context.WithTimeout(ctx, cfg.RunTimeout)
		defer cancel()

		result, runErr := runner.Run(ctx, args[0], values)
		if result == nil {
			return runErr
		}

		if path, _ := cmd.Flags().GetString("extract"); path != "" {
			if runErr == nil {
				extracted, extractErr := app.ExtractOutput(result.Outputs, nodes.OutputExecution, path)
				if extractErr != nil {
					return extractErr
				}
				fmt.Println(extracted)
				return nil
			}
			logger.WarnObj("extraction skipped after run failure", "path", path)
		}

		rendered, err := renderOutputs(cfg.OutputFormat, result.Outputs)
		if err != nil {
			return err
		}
		fmt.Print(rendered)
		return runErr
	},
}

// renderOutputs encodes the collected outputs in the configured format.
func renderOutputs(format string, outputs map[string]any) (string, error) {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(outputs)
		if err != nil {
			return "", fmt.Errorf("encode outputs yaml: %w", err)
		}
		return string(out), nil
	default:
		out, err := json.MarshalIndent(outputs, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode outputs json: %w", err)
		}
		return string(out) + "\n", nil
	}
}
