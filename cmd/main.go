package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/richinsley/goshaderquad/glfwcontext"
	"github.com/richinsley/goshaderquad/options"
	"github.com/richinsley/goshaderquad/renderer"
)

func init() {
	runtime.LockOSThread()
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func runShader(opts *options.ShaderOptions) int {
	if err := glfwcontext.InitGraphics(); err != nil {
		slog.Error("ERROR: Couldn't initialize GLFW", "error", err)
		return 1
	}
	defer glfwcontext.TerminateGraphics()

	ctx, err := glfwcontext.New(opts, true)
	if err != nil {
		slog.Error("ERROR: Failed to create window", "error", err)
		return 1
	}
	defer ctx.Shutdown()

	r := renderer.NewRenderer(ctx, opts, slog.Default())
	defer r.Shutdown()

	if opts.Check {
		if err := r.LoadCheckScene(); err != nil {
			slog.Error("Failed to initialize check scene", "error", err)
			return 1
		}
		if _, err := r.CheckCorners(); err != nil {
			slog.Error("Corner check failed", "error", err)
			return 1
		}
		slog.Info("Corner check passed")
		return 0
	}

	if err := r.LoadScene(context.Background()); err != nil {
		slog.Error("Failed to initialize scene", "error", err)
		return 1
	}

	slog.Info("Starting interactive render loop...")
	r.Run()
	return 0
}

func main() {
	opts, err := options.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		setupLogging(false)
		slog.Error("Invalid options", "error", err)
		os.Exit(1)
	}
	setupLogging(opts.Verbose)

	os.Exit(runShader(opts))
}
