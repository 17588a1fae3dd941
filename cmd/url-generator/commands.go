package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"vitrine-url-api/internal/app"
	"vitrine-url-api/internal/config"
	"vitrine-url-api/internal/model"
)

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "url-generator",
		Short: "Gera URLs canonicas e variacoes SEO de veiculos",
		Long: `Gera as URLs de veiculos a partir do catalogo de padroes, das
variacoes SpinText/SyntaxText e do verificador de duplicidade.

A configuracao vem das mesmas variaveis de ambiente do servidor
(URL_VARIATIONS_FILE, URL_PLACEHOLDER_ALIASES, URL_APPLY_SYNTAX_RULES, ...).`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		gerarCmd(&logLevel),
		canonicasCmd(&logLevel),
		duplicadosCmd(&logLevel),
		padroesCmd(&logLevel),
		loteCmd(&logLevel),
	)

	return cmd
}

// vehicleFlags binds the fields of a generation request to flags
func vehicleFlags(cmd *cobra.Command, req *model.URLGenerationRequest) {
	cmd.Flags().IntVar(&req.VehicleID, "vehicle-id", 0, "ID do veiculo")
	cmd.Flags().StringVar(&req.Brand, "brand", "", "Marca")
	cmd.Flags().StringVar(&req.Model, "model", "", "Modelo")
	cmd.Flags().IntVar(&req.Year, "year", 0, "Ano")
	cmd.Flags().StringVar(&req.City, "city", "", "Cidade")
	cmd.Flags().StringVar(&req.State, "state", "", "UF")
	cmd.Flags().StringVar(&req.Neighborhood, "neighborhood", "", "Bairro")
	cmd.Flags().StringVar(&req.Language, "language", "", "Idioma (padrao pt-BR)")
}

func gerarCmd(logLevel *string) *cobra.Command {
	var (
		req         model.URLGenerationRequest
		withSitemap bool
	)

	cmd := &cobra.Command{
		Use:   "gerar",
		Short: "Gera todas as URLs do catalogo para um veiculo",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd, *logLevel)
			if err != nil {
				return err
			}
			defer engine.Close()

			if withSitemap {
				out, err := engine.Service.GenerationSitemap(cmd.Context(), req)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			}

			out, err := engine.Service.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	vehicleFlags(cmd, &req)
	cmd.Flags().BoolVar(&withSitemap, "sitemap", false, "Imprime o payload de atualizacao do sitemap")

	return cmd
}

func canonicasCmd(logLevel *string) *cobra.Command {
	var req model.URLGenerationRequest

	cmd := &cobra.Command{
		Use:   "canonicas",
		Short: "Gera a lista curta de URLs canonicas de um veiculo",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd, *logLevel)
			if err != nil {
				return err
			}
			defer engine.Close()

			urls, err := engine.Service.Canonical(req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), model.CanonicalResponse{URLs: urls})
		},
	}

	vehicleFlags(cmd, &req)

	return cmd
}

func duplicadosCmd(logLevel *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "duplicados [url...]",
		Short: "Verifica URLs duplicadas (argumentos ou uma URL por linha do arquivo)",
		RunE: func(cmd *cobra.Command, args []string) error {
			urls := args
			if file != "" {
				fromFile, err := readLines(file)
				if err != nil {
					return err
				}
				urls = append(urls, fromFile...)
			}

			engine, err := newEngine(cmd, *logLevel)
			if err != nil {
				return err
			}
			defer engine.Close()

			out, err := engine.Service.CheckDuplicates(urls)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Arquivo com uma URL por linha")

	return cmd
}

func padroesCmd(logLevel *string) *cobra.Command {
	var categoria string

	cmd := &cobra.Command{
		Use:   "padroes",
		Short: "Lista os padroes de URL do catalogo",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(cmd, *logLevel)
			if err != nil {
				return err
			}
			defer engine.Close()

			templates, err := engine.Service.Templates(categoria)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), model.TemplatesResponse{
				Templates: templates,
				Total:     len(templates),
			})
		},
	}

	cmd.Flags().StringVar(&categoria, "categoria", "", "Filtra por categoria (vehicle, article, brand)")

	return cmd
}

func loteCmd(logLevel *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "lote",
		Short: "Gera as URLs de varios veiculos de um arquivo YAML ou JSON",
		Long: `Le um arquivo no formato

  vehicles:
    - vehicle_id: 1
      brand: Fiat
      model: Argo
      year: 2024

(JSON com a mesma estrutura tambem e aceito) e gera as URLs de cada veiculo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readBatch(file)
			if err != nil {
				return err
			}

			engine, err := newEngine(cmd, *logLevel)
			if err != nil {
				return err
			}
			defer engine.Close()

			if limit := engine.Config.Batch.MaxVehicles; limit > 0 && len(req.Vehicles) > limit {
				return fmt.Errorf("lote com %d veiculos excede o maximo de %d", len(req.Vehicles), limit)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out, runErr := engine.Runner.Run(ctx, req.Vehicles)
			if out != nil {
				if err := printJSON(cmd.OutOrStdout(), out); err != nil {
					return err
				}
			}
			return runErr
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Arquivo com os veiculos")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// newEngine loads the configuration and builds the engine with a logger on
// stderr, keeping stdout for JSON output
func newEngine(cmd *cobra.Command, logLevel string) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	slog.SetDefault(logger)

	return app.New(cfg, logger)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readBatch(path string) (model.BatchRequest, error) {
	var req model.BatchRequest

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("falha ao ler arquivo de lote: %w", err)
	}
	// YAML is a superset of JSON, so one decoder covers both formats
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("falha ao interpretar arquivo de lote: %w", err)
	}
	return req, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir arquivo: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
