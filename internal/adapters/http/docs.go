package http

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
)

const docsPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>USV Map API reference</title>
  <style>body{margin:0}</style>
</head>
<body>
  <redoc spec-url="/docs/openapi.json" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
</body>
</html>`

// apiDocs serves the OpenAPI document from a file on disk. The file is read
// on every request so an edited document shows up without a restart.
type apiDocs struct {
	path string
}

// read returns the raw document and its parsed, validated form.
func (d apiDocs) read(ctx context.Context) ([]byte, *openapi3.T, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return nil, nil, err
	}
	loader := &openapi3.Loader{IsExternalRefsAllowed: false}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, nil, err
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, nil, err
	}
	return data, doc, nil
}

// fail maps a read error onto an APIError response.
func (d apiDocs) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return errNotFound(c, "openapi document not found")
	}
	LoggerFromCtx(c.UserContext()).Error("openapi document unreadable", "path", d.path, "error", err)
	return errInternal(c, "openapi document unreadable")
}

// SetupDocs registers the API reference at /docs and the OpenAPI document at
// /docs/openapi.yaml (as written) and /docs/openapi.json (parsed).
func SetupDocs(app *fiber.App, deps *Dependencies) {
	docs := apiDocs{path: deps.openAPIPath()}

	app.Get("/docs", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.SendString(docsPage)
	})

	app.Get("/docs/openapi.yaml", func(c *fiber.Ctx) error {
		data, _, err := docs.read(c.UserContext())
		if err != nil {
			return docs.fail(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/yaml")
		return c.Send(data)
	})

	app.Get("/docs/openapi.json", func(c *fiber.Ctx) error {
		_, doc, err := docs.read(c.UserContext())
		if err != nil {
			return docs.fail(c, err)
		}
		return c.JSON(doc)
	})
}
