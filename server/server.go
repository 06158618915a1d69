// Package server exposes an asset store and the rewrite pipeline over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/gogpu/emojidom"
	"github.com/gogpu/emojidom/assets"
	"github.com/gogpu/emojidom/emoji"
)

// DefaultBodyLimit caps the size of a document posted for rewriting.
const DefaultBodyLimit = 8 << 20

// Config configures a Server.
type Config struct {
	// Store holds the images served under /png/.
	Store assets.Store

	// BaseURL is the image address prefix written into rewritten
	// documents. It defaults to "/png/", the server's own asset route.
	BaseURL string

	// BodyLimit caps request bodies; zero means DefaultBodyLimit.
	BodyLimit int

	// Options are applied to every rewrite after the server's own.
	Options []emojidom.Option

	Logger *slog.Logger
}

// Server is an HTTP front end for an asset store.
type Server struct {
	app    *fiber.App
	store  assets.Store
	base   string
	loader *assets.Loader
	opts   []emojidom.Option
	log    *slog.Logger
}

// New returns a Server with its routes registered.
func New(cfg Config) *Server {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "/png/"
	}
	if cfg.BodyLimit <= 0 {
		cfg.BodyLimit = DefaultBodyLimit
	}
	if cfg.Logger == nil {
		cfg.Logger = emojidom.Logger()
	}

	s := &Server{
		store: cfg.Store,
		base:  cfg.BaseURL,
		opts:  cfg.Options,
		log:   cfg.Logger,
	}
	s.loader = assets.NewLoader(s.base, s.store)
	s.app = fiber.New(fiber.Config{
		AppName:               "emojidom",
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.app.Use(recover.New())
	s.register()
	return s
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.log.Info("server: listening", "addr", addr, "base", s.base)
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting for active requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) register() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Get("/png/:name", s.asset)
	s.app.Post("/rewrite", s.rewrite)
	s.app.Get("/resolve", s.resolve)
}

func (s *Server) asset(c *fiber.Ctx) error {
	name := c.Params("name")
	if !emoji.ValidAssetName(name) {
		return fiber.NewError(fiber.StatusNotFound, "unknown asset")
	}
	data, err := s.store.Open(name)
	if errors.Is(err, assets.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "unknown asset")
	}
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400, immutable")
	c.Type("png")
	return c.Send(data)
}

func (s *Server) rewrite(c *fiber.Ctx) error {
	start := time.Now()
	opts := []emojidom.Option{
		emojidom.WithBaseURL(s.base),
		emojidom.WithLoader(s.loader),
		emojidom.WithContext(c.UserContext()),
	}
	if cs := c.Query("charset"); cs != "" {
		opts = append(opts, emojidom.WithCharset(cs))
	}
	opts = append(opts, s.opts...)

	var out bytes.Buffer
	st, err := emojidom.Rewrite(&out, bytes.NewReader(c.Body()), opts...)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	s.log.Debug("server: rewrite", "bytes", len(c.Body()), "images", st.Images, "elapsed", time.Since(start))

	c.Set("X-Emoji-Images", strconv.Itoa(st.Images))
	c.Type("html", "utf-8")
	return c.Send(out.Bytes())
}

// resolvedMatch is one entry of the /resolve response.
type resolvedMatch struct {
	Text      string `json:"text"`
	Codepoint string `json:"codepoint"`
	Kind      string `json:"kind"`
	Ignored   bool   `json:"ignored"`
	Asset     string `json:"asset,omitempty"`
}

func (s *Server) resolve(c *fiber.Ctx) error {
	text := c.Query("text")
	out := []resolvedMatch{}
	for m := range emoji.Default.Matches(text) {
		r := resolvedMatch{
			Text:      m.Text,
			Codepoint: m.Codepoint,
			Kind:      m.Kind().String(),
			Ignored:   emoji.Ignored(m.Codepoint, m.Text),
		}
		if !r.Ignored {
			r.Asset = s.base + emoji.AssetName(m.Codepoint)
		}
		out = append(out, r)
	}
	return c.JSON(out)
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "unexpected error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		s.log.Error("server: request failed", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
