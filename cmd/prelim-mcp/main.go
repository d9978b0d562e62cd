// Command prelim-mcp serves the prelim calculator as an MCP tool over stdio.
//
// Usage:
//
//	prelim-mcp    # speaks MCP on stdin/stdout; logs go to stderr
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/config"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/mcptools"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/notify"
	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/prelim"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// stdout belongs to the MCP transport
	log.SetOutput(os.Stderr)

	if err := config.LoadDotEnv(""); err != nil {
		return err
	}
	cfg := config.FromEnv()
	def := prelim.Variant(cfg.PrelimVariant)
	if _, err := prelim.ConfigFor(def); err != nil {
		return fmt.Errorf("PRELIM_VARIANT: %w", err)
	}

	var onAutoFail mcptools.AutoFailHook
	if cfg.NotifyOnAutoFail {
		n := notify.New(cfg.NotifyURLs, notify.ShoutrrrSender{})
		onAutoFail = func(res prelim.Result, c prelim.Config) {
			if err := n.Notify(notify.AutoFailMessage(res, c)); err != nil {
				log.Printf("notify: %v", err)
			}
		}
	}

	s := server.NewMCPServer(
		"prelim",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	grade := mcptools.NewGradeTool(def, onAutoFail)
	s.AddTool(grade.Definition(), grade.Handle)

	variants := mcptools.NewVariantsTool()
	s.AddTool(variants.Definition(), variants.Handle)

	return server.ServeStdio(s)
}
