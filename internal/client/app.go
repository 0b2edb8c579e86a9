package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-memo-keeper/internal/adapter"
	"github.com/MKhiriev/go-memo-keeper/internal/logger"
	"github.com/MKhiriev/go-memo-keeper/models"
	"github.com/urfave/cli/v2"
)

const defaultSource = "cli"

var _ Client = (*App)(nil)

type App struct {
	adapter  adapter.CaptureAdapter
	out      io.Writer
	readFile func(string) ([]byte, error)

	logger *logger.Logger
}

// NewApp builds the client around captureAdapter. Results are written to out.
func NewApp(captureAdapter adapter.CaptureAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:  captureAdapter,
		out:      out,
		readFile: os.ReadFile,
		logger:   logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	return a.cliApp().RunContext(ctx, args)
}

func (a *App) cliApp() *cli.App {
	app := &cli.App{
		Name:      "memo-client",
		Usage:     "Submit voice, text and image captures to a go-memo-keeper server",
		Writer:    a.out,
		ErrWriter: a.out,
		Commands: []*cli.Command{
			a.captureCmd(),
			a.versionCmd(),
		},
	}
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

func (a *App) captureCmd() *cli.Command {
	return &cli.Command{
		Name:  "capture",
		Usage: "Submit one capture and print the pipeline result",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Aliases: []string{"u"}, Required: true, Usage: "Username the memos belong to"},
			&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Value: defaultSource, Usage: "Source channel"},
			&cli.StringFlag{Name: "device", Usage: "Device id"},
			&cli.StringFlag{Name: "request-id", Usage: "Client request id (generated by the server when empty)"},
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "Typed transcript"},
			&cli.StringFlag{Name: "audio", Aliases: []string{"a"}, Usage: "Path to an audio recording"},
			&cli.StringFlag{Name: "image", Aliases: []string{"i"}, Usage: "Path to a photo or screenshot"},
			&cli.StringFlag{Name: "content-type", Usage: "Payload content type (guessed from the file extension when empty)"},
			&cli.IntFlag{Name: "expected", Usage: "Expected number of memos in the capture"},
		},
		Action: func(c *cli.Context) error {
			req, err := a.buildRequest(c)
			if err != nil {
				return err
			}

			result, err := a.adapter.Submit(c.Context, req)
			if err != nil {
				a.logger.Err(err).Str("func", "App.capture").Str("input_type", string(req.InputType)).Msg("capture failed")
				return fmt.Errorf("submit capture: %w", err)
			}

			return a.printJSON(result)
		},
	}
}

func (a *App) versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the server version",
		Action: func(c *cli.Context) error {
			version, err := a.adapter.Version(c.Context)
			if err != nil {
				return fmt.Errorf("server version: %w", err)
			}
			_, err = fmt.Fprintln(a.out, version)
			return err
		},
	}
}

func (a *App) buildRequest(c *cli.Context) (models.CaptureRequest, error) {
	req := models.CaptureRequest{
		CaptureMetadata: models.CaptureMetadata{
			Username:  c.String("user"),
			Source:    c.String("source"),
			DeviceID:  c.String("device"),
			RequestID: c.String("request-id"),
		},
		ContentType:       c.String("content-type"),
		ExpectedMemoCount: c.Int("expected"),
	}

	text, audio, image := c.String("text"), c.String("audio"), c.String("image")
	set := 0
	for _, v := range []string{text, audio, image} {
		if v != "" {
			set++
		}
	}
	switch {
	case set == 0:
		return models.CaptureRequest{}, ErrNoInput
	case set > 1:
		return models.CaptureRequest{}, ErrTooManyInputs
	}

	if text != "" {
		req.InputType = models.InputText
		req.Transcript = text
		return req, nil
	}

	path := audio
	req.InputType = models.InputAudio
	if image != "" {
		path = image
		req.InputType = models.InputImage
	}

	data, err := a.readFile(path)
	if err != nil {
		return models.CaptureRequest{}, fmt.Errorf("read %s: %w", path, err)
	}
	if req.InputType == models.InputAudio {
		req.AudioPayload = data
	} else {
		req.ImagePayload = data
	}

	req.OriginalFilename = filepath.Base(path)
	if req.ContentType == "" {
		req.ContentType = contentTypeFromPath(path)
	}
	return req, nil
}

func contentTypeFromPath(path string) string {
	ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
