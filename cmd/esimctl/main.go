// Copyright 2026 Contributors to the esimkit project.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/esimkit/apiclient"
	"github.com/esimkit/apiclient/auth"
	"github.com/esimkit/apiclient/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	baseURL     string
	credentials string
	caCerts     []string
	timeout     time.Duration
	debug       bool
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	var g globalFlags

	rootCmd := &cobra.Command{
		Use:           "esimctl",
		Short:         "Order and inspect eSIMs through the Airalo Partner API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        cmd.ErrOrStderr(),
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if g.debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.baseURL, "base-url", "", "API base URL (default $AIRALO_BASE_URL or the sandbox)")
	pf.StringVar(&g.credentials, "credentials", "", "dotenv file holding CLIENT_ID and CLIENT_SECRET")
	pf.StringSliceVar(&g.caCerts, "ca-cert", nil, "additional PEM CA certificate(s) to trust")
	pf.DurationVar(&g.timeout, "timeout", 30*time.Second, "overall time allowed for the command")
	pf.BoolVarP(&g.debug, "debug", "d", false, "log HTTP traffic")

	rootCmd.AddCommand(newTokenCmd(&g))
	rootCmd.AddCommand(newOrderCmd(&g))
	rootCmd.AddCommand(newSimsCmd(&g))

	return rootCmd
}

func newClient(g *globalFlags) (*apiclient.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	creds := auth.ClientCredentials{ClientID: cfg.ClientID, ClientSecret: cfg.ClientSecret}
	if g.credentials != "" {
		if creds, err = readCredentials(g.credentials); err != nil {
			return nil, err
		}
	}

	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("no usable credentials (set CLIENT_ID/CLIENT_SECRET or --credentials): %w", err)
	}

	baseURL := cfg.BaseURL
	if g.baseURL != "" {
		baseURL = g.baseURL
	}

	hc := common.NewClient(nil)
	if len(g.caCerts) > 0 {
		tr, err := auth.NewTLSTransport(g.caCerts)
		if err != nil {
			return nil, err
		}
		hc = common.NewClient(tr)
	}

	log.Debug().Str("base_url", baseURL).Str("client_id", creds.ClientID).Msg("creating client")

	return apiclient.New(creds.ClientID, creds.ClientSecret,
		apiclient.WithBaseURL(baseURL),
		apiclient.WithHTTPClient(hc),
		apiclient.WithDebugLogging(g.debug),
	)
}

func newTokenCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Obtain an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(g)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), g.timeout)
			defer cancel()

			tok, err := c.Authenticate(ctx)
			if err != nil {
				return err
			}
			if tok == "" {
				return errors.New("authentication failed")
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
}

func newOrderCmd(g *globalFlags) *cobra.Command {
	var (
		req    apiclient.OrderRequest
		token  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Submit an eSIM order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := req.Validate(); err != nil {
				return err
			}

			if req.Description == "" {
				req.Description = fmt.Sprintf("esimctl %s", uuid.NewString())
			}

			c, err := newClient(g)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), g.timeout)
			defer cancel()

			start := time.Now()
			res, err := c.SubmitOrder(ctx, req, token)
			if err != nil {
				return err
			}

			log.Info().
				Str("order_id", res.OrderID.String()).
				Str("package_id", res.Order.PackageID).
				Int("quantity", res.Order.Quantity).
				Dur("elapsed", time.Since(start)).
				Msg("order submitted")

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res.Raw)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "order %s (%s x%d)\n", res.OrderID, res.Order.PackageID, res.Order.Quantity)
			return writeSims(out, res.Order.Sims)
		},
	}

	cmd.Flags().StringVar(&req.PackageID, "package", "", "package id, e.g. merhaba-7days-1gb")
	cmd.Flags().IntVar(&req.Quantity, "quantity", 1, "number of eSIMs (1-50)")
	cmd.Flags().StringVar(&req.Description, "description", "", "order description (default: generated)")
	cmd.Flags().StringVar(&token, "token", "", "use this access token instead of authenticating")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw API response")
	_ = cmd.MarkFlagRequired("package")

	return cmd
}

func newSimsCmd(g *globalFlags) *cobra.Command {
	var (
		orderID string
		token   string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "sims",
		Short: "List the eSIMs of an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient(g)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), g.timeout)
			defer cancel()

			sims, err := c.ListEsims(ctx, apiclient.ID(orderID), token)
			if err != nil {
				return err
			}

			log.Debug().Str("order_id", orderID).Int("count", len(sims)).Msg("listed sims")

			if asJSON {
				raw := make([]json.RawMessage, 0, len(sims))
				for _, s := range sims {
					raw = append(raw, s.Raw)
				}
				return writeJSON(cmd.OutOrStdout(), raw)
			}

			return writeSims(cmd.OutOrStdout(), sims)
		},
	}

	cmd.Flags().StringVar(&orderID, "order", "", "order id")
	cmd.Flags().StringVar(&token, "token", "", "use this access token instead of authenticating")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw eSIM records")
	_ = cmd.MarkFlagRequired("order")

	return cmd
}

func writeSims(w io.Writer, sims []apiclient.Sim) error {
	for _, s := range sims {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", s.ID, s.ICCID, s.MatchingID); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
