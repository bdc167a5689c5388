package web

import (
	"context"
	"errors"
	"time"

	"x-to-markdown/internal/adapters/preview"
	"x-to-markdown/internal/domain"
	"x-to-markdown/internal/usecases"
	"x-to-markdown/pkg/log"
	"x-to-markdown/templates/components"
	"x-to-markdown/templates/pages"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

const markdownContentType = "text/markdown; charset=utf-8"

// Handlers contains the HTTP handlers for the web application.
type Handlers struct {
	convert *usecases.ConvertPostUseCase
	html    *preview.HTML
	timeout time.Duration
}

// NewHandlers creates a new Handlers instance. timeout bounds each upstream
// fetch.
func NewHandlers(convert *usecases.ConvertPostUseCase, html *preview.HTML, timeout time.Duration) *Handlers {
	return &Handlers{
		convert: convert,
		html:    html,
		timeout: timeout,
	}
}

// render is a helper to render templ components. The status already set on
// c is passed to templ, since the adaptor otherwise resets it to 200.
func render(c *fiber.Ctx, component templ.Component) error {
	c.Set("Content-Type", "text/html; charset=utf-8")
	status := c.Response().StatusCode()
	return adaptor.HTTPHandler(templ.Handler(component, templ.WithStatus(status)))(c)
}

// Home renders the landing page with URL input.
func (h *Handlers) Home(c *fiber.Ctx) error {
	return render(c, pages.Home())
}

// FetchPost converts the post behind the submitted form URL. HTMX requests
// get the preview fragment; plain form posts get a full page.
func (h *Handlers) FetchPost(c *fiber.Ctx) error {
	url := c.FormValue("url")

	username, tweetID, err := domain.ParseTweetURL(url)
	if err != nil {
		log.GlobalWarnCtx(c.UserContext(), "invalid post URL", "url", url, "error", err)
		return h.renderError(c, err)
	}

	doc, err := h.convertPost(c, username, tweetID)
	if err != nil {
		return h.renderError(c, err)
	}
	html, err := h.html.Render(doc.Markdown)
	if err != nil {
		log.GlobalErrorCtx(c.UserContext(), "preview failed", "error", err)
		return h.renderError(c, err)
	}

	// Shareable URL mirrors the platform's structure.
	c.Set("HX-Push-Url", "/"+username+"/status/"+tweetID)

	if c.Get("HX-Request") == "true" {
		return render(c, components.DocumentView(html, rawMarkdownURL(username, tweetID)))
	}
	return render(c, pages.Document(doc.Title, html, rawMarkdownURL(username, tweetID)))
}

// ViewPost renders the HTML preview of a post addressed like the platform's
// own URLs, e.g. /jack/status/20.
func (h *Handlers) ViewPost(c *fiber.Ctx) error {
	username := c.Params("username")
	tweetID := c.Params("id")

	doc, err := h.convertPost(c, username, tweetID)
	if err != nil {
		return h.renderError(c, err)
	}
	html, err := h.html.Render(doc.Markdown)
	if err != nil {
		log.GlobalErrorCtx(c.UserContext(), "preview failed", "error", err)
		return h.renderError(c, err)
	}
	return render(c, pages.Document(doc.Title, html, rawMarkdownURL(username, tweetID)))
}

// APIMarkdown returns the raw markdown of a post.
func (h *Handlers) APIMarkdown(c *fiber.Ctx) error {
	username := c.Params("username")
	tweetID := c.Params("id")

	doc, err := h.convertPost(c, username, tweetID)
	if err != nil {
		return c.Status(statusFor(err)).SendString(friendlyError(err))
	}

	c.Set("Content-Type", markdownContentType)
	c.Set("Content-Disposition", `inline; filename="`+doc.Slug+`.md"`)
	return c.SendString(doc.Markdown)
}

// APIConvert renders a status API payload posted as the request body.
func (h *Handlers) APIConvert(c *fiber.Ctx) error {
	doc, err := usecases.ConvertJSON(c.Body())
	if err != nil {
		log.GlobalWarnCtx(c.UserContext(), "convert payload failed", "error", err)
		return c.Status(statusFor(err)).SendString(friendlyError(err))
	}

	c.Set("Content-Type", markdownContentType)
	return c.SendString(doc.Markdown)
}

func (h *Handlers) convertPost(c *fiber.Ctx, username, tweetID string) (*usecases.Document, error) {
	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	doc, err := h.convert.Execute(ctx, tweetID, username)
	if err != nil {
		log.GlobalErrorCtx(ctx, "convert post failed", "username", username, "tweet_id", tweetID, "error", err)
		return nil, err
	}
	return doc, nil
}

// rawMarkdownURL is the APIMarkdown route for a post.
func rawMarkdownURL(username, tweetID string) string {
	return "/api/markdown/" + username + "/" + tweetID
}

// renderError renders a full-page error.
func (h *Handlers) renderError(c *fiber.Ctx, err error) error {
	c.Status(statusFor(err))
	if c.Get("HX-Request") == "true" {
		return render(c, components.ErrorMessage(friendlyError(err)))
	}
	return render(c, pages.Error(friendlyError(err)))
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidURL), errors.Is(err, domain.ErrMalformedPayload):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrTweetNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrTweetPrivate):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrRateLimited):
		return fiber.StatusTooManyRequests
	case errors.Is(err, domain.ErrNoTweetData), errors.Is(err, domain.ErrMalformedArticle):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrFetchFailed):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// friendlyError returns a neutral, non-blaming error message.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrTweetNotFound):
		return "This post couldn't be found. It might be private or no longer available."
	case errors.Is(err, domain.ErrTweetPrivate):
		return "This post isn't available. It might be from a private account."
	case errors.Is(err, domain.ErrInvalidURL):
		return "That doesn't look like a post URL. Try pasting a link from twitter.com or x.com"
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many requests. Please wait a moment and try again."
	case errors.Is(err, domain.ErrMalformedPayload):
		return "That doesn't look like a status API response."
	case errors.Is(err, domain.ErrNoTweetData):
		return "The response didn't contain a post."
	case errors.Is(err, domain.ErrMalformedArticle):
		return "This article couldn't be converted. Its content is missing."
	default:
		return "Unable to load this post right now. Please try again in a moment."
	}
}
